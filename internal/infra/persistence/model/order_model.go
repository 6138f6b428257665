package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. The price at order time is frozen
// here and never recomputed from the referenced detail.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	OfferID         uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderedDetailID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          string    `gorm:"type:varchar(20);not null;default:pending"`
	Quantity        int       `gorm:"not null;default:1;check:quantity >= 1"`
	PriceAtOrder    float64   `gorm:"type:decimal(10,2);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Customer      *UserModel        `gorm:"foreignKey:CustomerID"`
	Offer         *OfferModel       `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
	OrderedDetail *OfferDetailModel `gorm:"foreignKey:OrderedDetailID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
