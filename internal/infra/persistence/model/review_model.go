package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. UserID stays NULL until the
// review is confirmed by email.
type ReviewModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title     string     `gorm:"type:varchar(100);not null"`
	Desc      string     `gorm:"type:text;not null"`
	Rating    int        `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Email     string     `gorm:"type:varchar(255);not null"`
	Active    bool       `gorm:"not null;default:false"`
	AddressID uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
