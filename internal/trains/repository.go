package trains

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateTrain(ctx context.Context, train *Train) error
	GetTrainByID(ctx context.Context, id uuid.UUID) (*Train, error)
	GetAllTrains(ctx context.Context) ([]Train, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTrain(ctx context.Context, train *Train) error {
	return r.db.WithContext(ctx).Create(train).Error
}

func (r *repository) GetTrainByID(ctx context.Context, id uuid.UUID) (*Train, error) {
	var train Train
	err := r.db.WithContext(ctx).First(&train, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainNotFound
		}
		return nil, err
	}
	return &train, nil
}

func (r *repository) GetAllTrains(ctx context.Context) ([]Train, error) {
	var trains []Train
	err := r.db.WithContext(ctx).Order("number ASC").Find(&trains).Error
	return trains, err
}
