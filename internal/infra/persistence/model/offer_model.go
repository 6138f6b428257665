package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OfferModel mirrors the 'offers' table. UserID references the owning business account.
type OfferModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Image       string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text;not null"`
	OfferType   string    `gorm:"type:varchar(20);not null;default:basic"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User    *UserModel          `gorm:"foreignKey:UserID"`
	Details []*OfferDetailModel `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

// OfferDetailModel mirrors the 'offer_details' table, one row per pricing tier.
// Deleting the parent offer cascades here.
type OfferDetailModel struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OfferID            uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Title              string                      `gorm:"type:varchar(255);not null"`
	Revisions          int                         `gorm:"not null;check:revisions >= 0"`
	DeliveryTimeInDays int                         `gorm:"not null;check:delivery_time_in_days >= 0"`
	Price              float64                     `gorm:"type:decimal(10,2);not null;check:price >= 0"`
	Features           datatypes.JSONSlice[string] `gorm:"not null"`
	OfferType          string                      `gorm:"type:varchar(50);not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferDetailModel) TableName() string {
	return "offer_details"
}
