package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanashik/academy/internal/app/models"
	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

func TestCommunicationStatusProgression(t *testing.T) {
	env := newTestEnv(t)

	comm, err := env.CommunicationService.CreateCommunication(env.ctx, &dto.CreateCommunicationRequest{
		Type:          "sms",
		RecipientType: "all",
		Message:       "Practice is cancelled today",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.CommunicationPending, comm.Status)
	assert.Nil(t, comm.SentAt)

	sent, err := env.CommunicationService.UpdateStatus(env.ctx, comm.ID, models.CommunicationSent)
	require.NoError(t, err)
	assert.Equal(t, models.CommunicationSent, sent.Status)
	assert.NotNil(t, sent.SentAt)

	delivered, err := env.CommunicationService.UpdateStatus(env.ctx, comm.ID, models.CommunicationDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.CommunicationDelivered, delivered.Status)
}

func TestCommunicationIllegalTransitions(t *testing.T) {
	env := newTestEnv(t)

	comm, err := env.CommunicationService.CreateCommunication(env.ctx, &dto.CreateCommunicationRequest{
		Type:          "email",
		RecipientType: "student",
		RecipientIDs:  []int64{1},
		Message:       "Fee reminder",
	}, nil)
	require.NoError(t, err)

	// pending cannot jump straight to delivered.
	_, err = env.CommunicationService.UpdateStatus(env.ctx, comm.ID, models.CommunicationDelivered)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)

	// The record is untouched after the rejection.
	got, err := env.CommunicationService.GetCommunication(env.ctx, comm.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CommunicationPending, got.Status)

	// Terminal states accept no transitions.
	_, err = env.CommunicationService.UpdateStatus(env.ctx, comm.ID, models.CommunicationFailed)
	require.NoError(t, err)
	_, err = env.CommunicationService.UpdateStatus(env.ctx, comm.ID, models.CommunicationSent)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
}

func TestCampaignLifecycle(t *testing.T) {
	env := newTestEnv(t)

	campaign, err := env.CampaignService.CreateCampaign(env.ctx, &dto.CreateCampaignRequest{
		Name: "Summer Enrollment Drive",
		Type: "enrollment",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignDraft, campaign.Status)

	// draft cannot pause or complete.
	_, err = env.CampaignService.UpdateStatus(env.ctx, campaign.ID, models.CampaignPaused)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)

	_, err = env.CampaignService.UpdateStatus(env.ctx, campaign.ID, models.CampaignActive)
	require.NoError(t, err)
	_, err = env.CampaignService.UpdateStatus(env.ctx, campaign.ID, models.CampaignPaused)
	require.NoError(t, err)
	_, err = env.CampaignService.UpdateStatus(env.ctx, campaign.ID, models.CampaignActive)
	require.NoError(t, err)
	completed, err := env.CampaignService.UpdateStatus(env.ctx, campaign.ID, models.CampaignCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignCompleted, completed.Status)

	// completed is terminal.
	_, err = env.CampaignService.UpdateStatus(env.ctx, campaign.ID, models.CampaignActive)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
}
