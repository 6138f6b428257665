package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table. A reviewer may rate a given
// business at most once, which the composite unique index enforces.
type ReviewModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_business_reviewer"`
	ReviewerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_business_reviewer"`
	Rating         int       `gorm:"type:smallint;not null;check:rating >= 1 AND rating <= 5"`
	Description    string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	BusinessUser *UserModel `gorm:"foreignKey:BusinessUserID;constraint:OnDelete:CASCADE"`
	Reviewer     *UserModel `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
