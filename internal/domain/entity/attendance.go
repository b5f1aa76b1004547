package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance is one staff work record: a check-in, optionally closed by a
// check-out. At most one open record per user per day.
type Attendance struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	UserName  string     `gorm:"size:255" json:"user_name"`
	Date      time.Time  `gorm:"type:date;not null;index" json:"date"`
	CheckIn   time.Time  `gorm:"not null" json:"check_in"`
	CheckOut  *time.Time `json:"check_out,omitempty"`
	Note      string     `gorm:"type:text" json:"note"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new attendance record
func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Attendance model
func (Attendance) TableName() string {
	return "attendances"
}
