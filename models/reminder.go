package models

import "time"

const (
	ReminderActive    = "active"
	ReminderTriggered = "triggered" // set by an external notifier, never by this service
	ReminderCompleted = "completed"
	ReminderDeleted   = "deleted"
)

type Reminder struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index" json:"user_id"`
	NameToCall  string    `json:"name_to_call"`
	PhoneNumber string    `json:"phone_number"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"date_time"`
	Status      string    `gorm:"index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
