// File: /client/types.go
package client

import (
	"encoding/json"
	"strconv"
	"time"

	"cleanworld-api/models"
)

// ID is a zone/event/user identifier. The backend hands out numeric ids while
// container zones carry synthetic string ids, so the wire union is collapsed
// into a string here and compared as such everywhere downstream.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes numeric ids back as JSON numbers, which is the shape
// the backend binds, and synthetic container ids as strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseUint(string(id), 10, 64); err == nil {
		return []byte(strconv.FormatUint(n, 10)), nil
	}
	return json.Marshal(string(id))
}

// FromUint builds an ID from a backend numeric id.
func FromUint(n uint) ID {
	return ID(strconv.FormatUint(uint64(n), 10))
}

// EventTime is a tolerant timestamp: the backend serializes LocalDateTime
// without an offset and the datetime-local input drops seconds, so several
// layouts must parse. Garbage decodes to the zero time instead of failing
// the whole event list.
type EventTime time.Time

var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func (t *EventTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = EventTime(time.Time{})
		return nil
	}
	for _, layout := range eventTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = EventTime(parsed)
			return nil
		}
	}
	*t = EventTime(time.Time{})
	return nil
}

func (t EventTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).Format(time.RFC3339))
}

func (t EventTime) Time() time.Time {
	return time.Time(t)
}

func (t EventTime) IsZero() bool {
	return time.Time(t).IsZero()
}

// Zone is the record shape the map and list views work with. Both
// user-reported zones (from the backend) and static recycling containers
// (from the GeoJSON normalizer) share it.
type Zone struct {
	ID          ID              `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	ImgURL      *string         `json:"img_url"`
	AfterImgURL *string         `json:"after_img_url"`
	Severity    models.Severity `json:"severity"`
	Status      string          `json:"status"`
	Residuo     string          `json:"residuo,omitempty"`
	CreatedAt   *time.Time      `json:"created_at"`
}

// IsContainer reports whether the zone is a static recycling container.
// Container zones are immutable, never deletable and never host events.
func (z *Zone) IsContainer() bool {
	return z.Residuo != ""
}

// Event is a scheduled cleanup targeting exactly one zone. The zone
// reference arrives either embedded or as a bare zone_id; ZoneRef hides
// the difference.
type Event struct {
	ID           ID        `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Datetime     EventTime `json:"datetime"`
	Status       string    `json:"status"`
	RewardPoints int       `json:"reward_points"`
	Zone         *Zone     `json:"zone"`
	ZoneID       ID        `json:"zone_id"`
	Attendees    []User    `json:"attendees"`
}

// ZoneRef returns the id of the referenced zone, regardless of which wire
// shape carried it. Empty when the event references nothing.
func (e *Event) ZoneRef() ID {
	if e.Zone != nil && e.Zone.ID != "" && e.Zone.ID != "0" {
		return e.Zone.ID
	}
	return e.ZoneID
}

// HasAttendee reports set membership by user id.
func (e *Event) HasAttendee(userID ID) bool {
	for _, u := range e.Attendees {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// User is the slice of the profile the client needs: identity for
// registration membership, token for authenticated calls.
type User struct {
	ID     ID      `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email,omitempty"`
	Token  string  `json:"token,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Points int     `json:"points,omitempty"`
}
