package trains

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrTrainNotFound = errors.New("train not found")

type Train struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Number    string    `gorm:"uniqueIndex;not null" json:"number"`
	Name      string    `gorm:"not null" json:"name"`
	Type      string    `gorm:"not null" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name for Train
func (Train) TableName() string {
	return "trains"
}

type CreateTrainRequest struct {
	Number string `json:"number" binding:"required,min=1,max=20"`
	Name   string `json:"name" binding:"required,min=1,max=255"`
	Type   string `json:"type" binding:"required,min=1,max=100"`
}
