// File: /jobs/event_settlement_job.go
package jobs

import (
	"fmt"
	"time"

	"cleanworld-api/repositories"
	"cleanworld-api/services"
	"gorm.io/gorm"
)

// EventSettlementJob periodically completes past events and credits reward
// points to their attendees.
type EventSettlementJob struct {
	db            *gorm.DB
	pointsService *services.PointsService
	ticker        *time.Ticker
	done          chan bool
}

// NewEventSettlementJob creates a new settlement job
func NewEventSettlementJob(db *gorm.DB, interval time.Duration) *EventSettlementJob {
	eventRepo := repositories.NewEventRepository(db)
	pointsService := services.NewPointsService(eventRepo)

	return &EventSettlementJob{
		db:            db,
		pointsService: pointsService,
		ticker:        time.NewTicker(interval),
		done:          make(chan bool),
	}
}

// Start begins the settlement job
func (j *EventSettlementJob) Start() {
	fmt.Println("Event settlement job started")

	go func() {
		// Run immediately on start
		j.settle()

		for {
			select {
			case <-j.ticker.C:
				j.settle()
			case <-j.done:
				fmt.Println("Event settlement job stopped")
				return
			}
		}
	}()
}

// Stop stops the settlement job
func (j *EventSettlementJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *EventSettlementJob) settle() {
	if err := j.pointsService.SettleDueEvents(); err != nil {
		fmt.Printf("Error during event settlement: %v\n", err)
	}
}
