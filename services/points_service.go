// File: /services/points_service.go
package services

import (
	"fmt"
	"time"

	"cleanworld-api/repositories"
)

// PointsService settles finished cleanup events: once an event's datetime has
// passed it is marked COMPLETED and every attendee is credited the event's
// reward points.
type PointsService struct {
	eventRepo *repositories.EventRepository
}

func NewPointsService(eventRepo *repositories.EventRepository) *PointsService {
	return &PointsService{
		eventRepo: eventRepo,
	}
}

// SettleDueEvents processes every scheduled event whose time has passed.
// Individual failures are logged and skipped so one bad event cannot stall
// the rest of the batch.
func (s *PointsService) SettleDueEvents() error {
	due, err := s.eventRepo.FindDueForSettlement(time.Now())
	if err != nil {
		return err
	}

	for i := range due {
		if err := s.eventRepo.Settle(&due[i]); err != nil {
			fmt.Printf("Error settling event %d: %v\n", due[i].ID, err)
			continue
		}
		if len(due[i].Attendees) > 0 {
			fmt.Printf("Settled event %d: %d attendees credited %d points each\n",
				due[i].ID, len(due[i].Attendees), due[i].RewardPoints)
		}
	}

	return nil
}
