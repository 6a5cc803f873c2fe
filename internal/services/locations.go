package services

import (
	"context"
	"fmt"

	"github.com/okhotnikov/libman/internal/apiclient"
	"github.com/okhotnikov/libman/internal/models"
)

type LocationService struct {
	client *apiclient.Client
}

func NewLocationService(client *apiclient.Client) *LocationService {
	return &LocationService{client: client}
}

func (s *LocationService) List(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	if err := s.client.Get(ctx, "/api/locations", &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *LocationService) Create(ctx context.Context, loc models.Location) (*models.Location, error) {
	var created models.Location
	if err := s.client.Post(ctx, "/api/locations", loc, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *LocationService) Update(ctx context.Context, loc models.Location) (*models.Location, error) {
	var updated models.Location
	if err := s.client.Put(ctx, fmt.Sprintf("/api/locations/%d", loc.ID), loc, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *LocationService) Delete(ctx context.Context, id uint) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/locations/%d", id))
}
