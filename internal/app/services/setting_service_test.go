package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanashik/academy/internal/app/models/dto"
	"github.com/psanashik/academy/internal/pkg/apperrors"
)

func TestUpsertSetting(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.SettingService.UpsertSetting(env.ctx, &dto.UpsertSettingRequest{
		Key:      "academy_name",
		Value:    json.RawMessage(`"PSA Nashik"`),
		Category: "general",
	}, nil)
	require.NoError(t, err)

	// Upserting the same key replaces the value, keeping the entry.
	updated, err := env.SettingService.UpsertSetting(env.ctx, &dto.UpsertSettingRequest{
		Key:      "academy_name",
		Value:    json.RawMessage(`"PSA Nashik Academy"`),
		Category: "general",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := env.SettingService.GetSetting(env.ctx, "academy_name")
	require.NoError(t, err)
	assert.JSONEq(t, `"PSA Nashik Academy"`, string(got.Value))
}

func TestSettingsListAndDelete(t *testing.T) {
	env := newTestEnv(t)

	for key, category := range map[string]string{
		"academy_name":  "general",
		"late_fee":      "payment",
		"sms_enabled":   "notification",
		"session_limit": "security",
	} {
		_, err := env.SettingService.UpsertSetting(env.ctx, &dto.UpsertSettingRequest{
			Key:      key,
			Value:    json.RawMessage(`true`),
			Category: category,
		}, nil)
		require.NoError(t, err)
	}

	all, err := env.SettingService.ListSettings(env.ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	payment, err := env.SettingService.ListSettings(env.ctx, "payment")
	require.NoError(t, err)
	require.Len(t, payment, 1)
	assert.Equal(t, "late_fee", payment[0].Key)

	require.NoError(t, env.SettingService.DeleteSetting(env.ctx, "late_fee"))
	_, err = env.SettingService.GetSetting(env.ctx, "late_fee")
	assert.ErrorIs(t, err, apperrors.ErrSettingNotFound)
}

func TestGPSPingRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedAdmin(t, "admin@psa-nashik.com", "admin123")

	ping, err := env.GPSService.RecordPing(env.ctx, &dto.CreateGPSPingRequest{
		UserID:    admin.ID,
		Latitude:  19.9975,
		Longitude: 73.7898,
		Accuracy:  12.5,
	})
	require.NoError(t, err)
	assert.False(t, ping.Timestamp.IsZero())

	_, err = env.GPSService.RecordPing(env.ctx, &dto.CreateGPSPingRequest{
		UserID:   999,
		Latitude: 19.9975, Longitude: 73.7898,
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
