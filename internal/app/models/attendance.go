package models

import "time"

// Attendance defines the attendance model based on the 'attendance' table.
// One record exists per (studentId, batchId, date).
type Attendance struct {
	ID           int64            `json:"id" db:"id"`
	StudentID    int64            `json:"studentId" db:"student_id"`
	BatchID      int64            `json:"batchId" db:"batch_id"`
	Date         time.Time        `json:"date" db:"date"`
	Status       AttendanceStatus `json:"status" db:"status"`
	CheckInTime  *time.Time       `json:"checkInTime,omitempty" db:"check_in_time"`
	CheckOutTime *time.Time       `json:"checkOutTime,omitempty" db:"check_out_time"`
	Notes        *string          `json:"notes,omitempty" db:"notes"`
	MarkedBy     *int64           `json:"markedBy,omitempty" db:"marked_by"`
	CreatedAt    time.Time        `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Batch   *Batch   `json:"batch,omitempty"`
}
