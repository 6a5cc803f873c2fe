package services

import (
	"context"
	"fmt"

	"github.com/okhotnikov/libman/internal/apiclient"
	"github.com/okhotnikov/libman/internal/models"
)

type CopyService struct {
	client *apiclient.Client
}

func NewCopyService(client *apiclient.Client) *CopyService {
	return &CopyService{client: client}
}

func (s *CopyService) List(ctx context.Context) ([]models.BookCopy, error) {
	var copies []models.BookCopy
	if err := s.client.Get(ctx, "/api/copies", &copies); err != nil {
		return nil, err
	}
	return copies, nil
}

func (s *CopyService) ListForBook(ctx context.Context, bookID uint) ([]models.BookCopy, error) {
	var copies []models.BookCopy
	if err := s.client.Get(ctx, fmt.Sprintf("/api/books/%d/copies", bookID), &copies); err != nil {
		return nil, err
	}
	return copies, nil
}

func (s *CopyService) Create(ctx context.Context, c models.BookCopy) (*models.BookCopy, error) {
	var created models.BookCopy
	if err := s.client.Post(ctx, "/api/copies", c, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *CopyService) Update(ctx context.Context, c models.BookCopy) (*models.BookCopy, error) {
	var updated models.BookCopy
	if err := s.client.Put(ctx, fmt.Sprintf("/api/copies/%d", c.ID), c, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *CopyService) Delete(ctx context.Context, id uint) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/copies/%d", id))
}
