package trains

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service interface {
	CreateTrain(ctx context.Context, req CreateTrainRequest) (*Train, error)
	GetTrain(ctx context.Context, id uuid.UUID) (*Train, error)
	ListTrains(ctx context.Context) ([]Train, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateTrain(ctx context.Context, req CreateTrainRequest) (*Train, error) {
	train := &Train{
		Number: req.Number,
		Name:   req.Name,
		Type:   req.Type,
	}

	if err := s.repo.CreateTrain(ctx, train); err != nil {
		return nil, fmt.Errorf("failed to create train: %w", err)
	}
	return train, nil
}

func (s *service) GetTrain(ctx context.Context, id uuid.UUID) (*Train, error) {
	return s.repo.GetTrainByID(ctx, id)
}

func (s *service) ListTrains(ctx context.Context) ([]Train, error) {
	return s.repo.GetAllTrains(ctx)
}
