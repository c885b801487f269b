// File: /models/zone.go
package models

import (
	"time"
)

// Zone statuses. SUCIO is a freshly reported polluted site, LIMPIO means a
// cleanup happened and the after photo should be shown.
const (
	ZoneStatusDirty = "SUCIO"
	ZoneStatusClean = "LIMPIO"
)

type Zone struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null;size:255"`
	Description *string   `json:"description" gorm:"type:text"`
	Latitude    float64   `json:"latitude" gorm:"not null"`
	Longitude   float64   `json:"longitude" gorm:"not null"`
	ImgURL      *string   `json:"img_url" gorm:"column:img_url;size:500"`
	AfterImgURL *string   `json:"after_img_url" gorm:"column:after_img_url;size:500"`
	Severity    Severity  `json:"severity" gorm:"not null;default:2"`
	Status      string    `json:"status" gorm:"not null;size:20;default:'SUCIO'"`
	ReportedID  *uint     `json:"reported_id" gorm:"column:reported_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	ReportedUser *User          `json:"-" gorm:"foreignKey:ReportedID"`
	Events       []CleanupEvent `json:"-" gorm:"foreignKey:ZoneID"`
}
