// File: /models/event.go
package models

import (
	"time"
)

// Event lifecycle tags. Past/future classification is never persisted; it is
// always derived from Datetime vs. the clock. COMPLETED is only set by the
// settlement job once points have been credited.
const (
	EventStatusScheduled = "SCHEDULED"
	EventStatusCompleted = "COMPLETED"
)

type CleanupEvent struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null;size:255"`
	Description  string    `json:"description" gorm:"type:text"`
	Datetime     time.Time `json:"datetime" gorm:"not null"`
	Status       string    `json:"status" gorm:"size:20;default:'SCHEDULED'"`
	RewardPoints int       `json:"reward_points" gorm:"column:reward_points;default:25"`
	ZoneID       uint      `json:"zone_id" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Zone      Zone   `json:"zone" gorm:"foreignKey:ZoneID"`
	Attendees []User `json:"attendees" gorm:"many2many:event_attendees"`
}

// HasAttendee reports membership by user id. Attendees behave as a set: the
// attend endpoint never appends a duplicate row.
func (e *CleanupEvent) HasAttendee(userID uint) bool {
	for _, u := range e.Attendees {
		if u.ID == userID {
			return true
		}
	}
	return false
}
