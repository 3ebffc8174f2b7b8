package models

import (
	"encoding/json"
	"time"
)

// SystemSetting defines a configuration entry based on the 'system_settings'
// table. Value is arbitrary JSON; Key is unique.
type SystemSetting struct {
	ID          int64           `json:"id" db:"id"`
	Key         string          `json:"key" db:"key"`
	Value       json.RawMessage `json:"value" db:"value"`
	Description *string         `json:"description,omitempty" db:"description"`
	Category    string          `json:"category" db:"category"` // general, payment, notification, security
	UpdatedBy   *int64          `json:"updatedBy,omitempty" db:"updated_by"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

// BoolValue interprets the setting value as a boolean, returning def when
// the value is absent or not a boolean.
func (s *SystemSetting) BoolValue(def bool) bool {
	if s == nil || len(s.Value) == 0 {
		return def
	}
	var v bool
	if err := json.Unmarshal(s.Value, &v); err != nil {
		return def
	}
	return v
}
