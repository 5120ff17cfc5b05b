package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassificationModel mirrors the 'classifications' table.
// (user_id, created_at) backs the newest-first history listing.
type ClassificationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_classifications_user_created,priority:1"`
	Title      string    `gorm:"type:varchar(200);not null"`
	Date       time.Time `gorm:"type:date;not null"`
	Subject    string    `gorm:"type:text;not null"`
	Text       string    `gorm:"type:text;not null"`
	Prediction string    `gorm:"type:varchar(16);not null"`
	Confidence *float64
	CreatedAt  time.Time `gorm:"index:idx_classifications_user_created,priority:2,sort:desc"`
	UpdatedAt  time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ClassificationModel) TableName() string {
	return "classifications"
}
