// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	Avatar    *string   `json:"avatar" gorm:"size:500"`
	Points    int       `json:"points" gorm:"default:0"`
	Rol       int       `json:"rol" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ReportedZones []Zone `json:"-" gorm:"foreignKey:ReportedID"`
}

// IsAdmin: rol 0 is a regular user, anything above grants admin access.
func (u *User) IsAdmin() bool {
	return u.Rol > 0
}
