package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// The dedup tuple (num_or_name, street_1, street_2, address_lookup_id) is
// deliberately not a unique constraint: the existence check is application
// level and duplicate rows under concurrent first creation are tolerated.
type AddressModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NumOrName       string    `gorm:"type:varchar(100);not null"`
	Street1         string    `gorm:"type:varchar(200);not null"`
	Street2         string    `gorm:"type:varchar(200);not null;default:''"`
	AddressLookupID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt       time.Time

	Reviews []*ReviewModel `gorm:"foreignKey:AddressID"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
