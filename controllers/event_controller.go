// File: /controllers/event_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"cleanworld-api/middleware"
	"cleanworld-api/models"
	"cleanworld-api/repositories"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventController struct {
	db        *gorm.DB
	eventRepo *repositories.EventRepository
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		db:        db,
		eventRepo: repositories.NewEventRepository(db),
	}
}

// CreateEventRequest carries the zone reference the way the web client sends
// it: either an embedded {"zone": {"id": N}} or a bare "zone_id".
type CreateEventRequest struct {
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	Datetime     time.Time `json:"datetime" binding:"required"`
	Status       string    `json:"status"`
	RewardPoints int       `json:"reward_points"`
	Zone         *struct {
		ID uint `json:"id"`
	} `json:"zone"`
	ZoneID uint `json:"zone_id"`
}

func (req *CreateEventRequest) zoneID() uint {
	if req.Zone != nil && req.Zone.ID != 0 {
		return req.Zone.ID
	}
	return req.ZoneID
}

type AttendRequest struct {
	UserID uint `json:"userId"`
}

func (ec *EventController) GetEvents(c *gin.Context) {
	var events []models.CleanupEvent
	if err := ec.db.Preload("Zone").Preload("Attendees").Order("datetime ASC").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

func (ec *EventController) GetEvent(c *gin.Context) {
	eventID := c.Param("id")

	var event models.CleanupEvent
	if err := ec.db.Preload("Zone").Preload("Attendees").First(&event, "id = ?", eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, event)
}

func (ec *EventController) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	zoneID := req.zoneID()
	if zoneID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event must reference a zone"})
		return
	}

	var zone models.Zone
	if err := ec.db.First(&zone, "id = ?", zoneID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
		return
	}

	// Events need at least a day of notice so people can actually show up
	if req.Datetime.Before(time.Now().Add(24 * time.Hour)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event must be scheduled at least 24 hours ahead"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.EventStatusScheduled
	}

	rewardPoints := req.RewardPoints
	if rewardPoints == 0 {
		rewardPoints = zone.Severity.RewardPoints()
	}

	event := models.CleanupEvent{
		Title:        req.Title,
		Description:  req.Description,
		Datetime:     req.Datetime,
		Status:       status,
		RewardPoints: rewardPoints,
		ZoneID:       zone.ID,
	}

	if err := ec.db.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	event.Zone = zone
	event.Attendees = []models.User{}
	c.JSON(http.StatusCreated, event)
}

// Attend registers the authenticated user as an attendee and answers with
// the event carrying the updated attendee set.
func (ec *EventController) Attend(c *gin.Context) {
	userID := middleware.UserID(c)
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	// The body's userId is advisory; it may only name the caller
	var req AttendRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.UserID != 0 && req.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot register another user"})
		return
	}

	if _, err := ec.eventRepo.GetWithAttendees(uint(eventID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	err = ec.eventRepo.AddAttendee(uint(eventID), userID)
	if err != nil && !errors.Is(err, repositories.ErrAlreadyAttending) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join event"})
		return
	}

	// Registering twice is not an error, the membership just stays put
	event, err := ec.eventRepo.GetWithAttendees(uint(eventID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// Unattend removes the authenticated user from the attendee set.
func (ec *EventController) Unattend(c *gin.Context) {
	userID := middleware.UserID(c)
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	var req AttendRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.UserID != 0 && req.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot unregister another user"})
		return
	}

	if _, err := ec.eventRepo.GetWithAttendees(uint(eventID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	err = ec.eventRepo.RemoveAttendee(uint(eventID), userID)
	if err != nil && !errors.Is(err, repositories.ErrNotAttending) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave event"})
		return
	}

	event, err := ec.eventRepo.GetWithAttendees(uint(eventID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}

	c.JSON(http.StatusOK, event)
}
