// File: /repositories/event_repository.go
package repositories

import (
	"errors"
	"time"

	"cleanworld-api/models"
	"gorm.io/gorm"
)

var ErrAlreadyAttending = errors.New("user already attends this event")
var ErrNotAttending = errors.New("user does not attend this event")

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// GetWithAttendees loads an event with its zone and attendee set.
func (r *EventRepository) GetWithAttendees(eventID uint) (*models.CleanupEvent, error) {
	var event models.CleanupEvent
	err := r.db.Preload("Zone").Preload("Attendees").First(&event, "id = ?", eventID).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// AddAttendee registers a user to an event with set semantics: adding an
// existing member is a no-op that reports ErrAlreadyAttending, never a
// duplicate row.
func (r *EventRepository) AddAttendee(eventID, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Table("event_attendees").
			Where("cleanup_event_id = ? AND user_id = ?", eventID, userID).
			Count(&count)
		if count > 0 {
			return ErrAlreadyAttending
		}

		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		event := models.CleanupEvent{ID: eventID}
		return tx.Model(&event).Association("Attendees").Append(&user)
	})
}

// RemoveAttendee is the symmetric operation.
func (r *EventRepository) RemoveAttendee(eventID, userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Table("event_attendees").
			Where("cleanup_event_id = ? AND user_id = ?", eventID, userID).
			Count(&count)
		if count == 0 {
			return ErrNotAttending
		}

		event := models.CleanupEvent{ID: eventID}
		return tx.Model(&event).Association("Attendees").Delete(&models.User{ID: userID})
	})
}

// FindDueForSettlement returns scheduled events whose datetime has passed.
func (r *EventRepository) FindDueForSettlement(now time.Time) ([]models.CleanupEvent, error) {
	var events []models.CleanupEvent
	err := r.db.Preload("Attendees").
		Where("status = ?", models.EventStatusScheduled).
		Where("datetime < ?", now).
		Find(&events).Error
	return events, err
}

// Settle marks an event completed and credits its reward to every attendee,
// all in one transaction so a crash never pays twice or half.
func (r *EventRepository) Settle(event *models.CleanupEvent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CleanupEvent{}).
			Where("id = ? AND status = ?", event.ID, models.EventStatusScheduled).
			Update("status", models.EventStatusCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Someone else settled it first
			return nil
		}

		for _, attendee := range event.Attendees {
			err := tx.Model(&models.User{}).
				Where("id = ?", attendee.ID).
				UpdateColumn("points", gorm.Expr("points + ?", event.RewardPoints)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
