// File: /models/reward.go
package models

import (
	"time"
)

// Reward is a catalogue entry users spend accumulated points on.
type Reward struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null;size:255"`
	ImgURL    *string   `json:"img_url" gorm:"column:img_url;size:500"`
	Cost      int       `json:"cost" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Redemption records a reward purchase. Code is the voucher delivered to the
// user by email.
type Redemption struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	RewardID  uint      `json:"reward_id" gorm:"not null"`
	Code      string    `json:"code" gorm:"not null;size:64"`
	CreatedAt time.Time `json:"created_at"`

	User   User   `json:"-" gorm:"foreignKey:UserID"`
	Reward Reward `json:"reward" gorm:"foreignKey:RewardID"`
}
