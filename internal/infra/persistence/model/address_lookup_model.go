package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressLookupModel mirrors the 'address_lookups' table. PostgreSQL
// generates UUIDs via uuid_generate_v7(). Rows are append-only: the resolver
// never updates or deletes a stored locality.
type AddressLookupModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Postcode      string    `gorm:"type:varchar(12);not null;index:idx_address_lookups_postcode_country"`
	CountryCode   string    `gorm:"type:varchar(2);not null;index:idx_address_lookups_postcode_country"`
	Suburb        string    `gorm:"type:varchar(100);not null;default:''"`
	City          string    `gorm:"type:varchar(100);not null;default:''"`
	County        string    `gorm:"type:varchar(100);not null;default:''"`
	StateDistrict string    `gorm:"type:varchar(100);not null;default:''"`
	State         string    `gorm:"type:varchar(100);not null;default:''"`
	Country       string    `gorm:"type:varchar(100);not null;default:''"`
	DisplayName   string    `gorm:"type:text;not null"`
	AddressClass  string    `gorm:"type:varchar(50);not null;default:''"`
	Importance    float64   `gorm:"type:decimal(10,8)"`
	Lat           float64   `gorm:"type:decimal(10,8);not null"`
	Lon           float64   `gorm:"type:decimal(11,8);not null"`
	PlaceID       int64     `gorm:"not null"`
	CreatedAt     time.Time

	Addresses []*AddressModel `gorm:"foreignKey:AddressLookupID"`
}

// TableName explicitly sets the table name for GORM.
func (AddressLookupModel) TableName() string {
	return "address_lookups"
}
