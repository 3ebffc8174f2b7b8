package models

import "time"

// Communication defines an outbound message based on the 'communications'
// table. Delivery itself is handled by an external provider; this record
// only tracks the status progression.
type Communication struct {
	ID            int64               `json:"id" db:"id"`
	Type          string              `json:"type" db:"type"`                   // sms, email, whatsapp, notification
	RecipientType string              `json:"recipientType" db:"recipient_type"` // student, coach, parent, all
	RecipientIDs  []int64             `json:"recipientIds" db:"recipient_ids"`
	Subject       *string             `json:"subject,omitempty" db:"subject"`
	Message       string              `json:"message" db:"message"`
	Status        CommunicationStatus `json:"status" db:"status"`
	ScheduledAt   *time.Time          `json:"scheduledAt,omitempty" db:"scheduled_at"`
	SentAt        *time.Time          `json:"sentAt,omitempty" db:"sent_at"`
	CreatedBy     *int64              `json:"createdBy,omitempty" db:"created_by"`
	CreatedAt     time.Time           `json:"createdAt" db:"created_at"`
}
