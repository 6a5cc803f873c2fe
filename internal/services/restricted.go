package services

import (
	"context"
	"fmt"

	"github.com/okhotnikov/libman/internal/apiclient"
	"github.com/okhotnikov/libman/internal/models"
)

type RestrictedBookService struct {
	client *apiclient.Client
}

func NewRestrictedBookService(client *apiclient.Client) *RestrictedBookService {
	return &RestrictedBookService{client: client}
}

func (s *RestrictedBookService) List(ctx context.Context) ([]models.RestrictedBookGrant, error) {
	var grants []models.RestrictedBookGrant
	if err := s.client.Get(ctx, "/api/restricted-books", &grants); err != nil {
		return nil, err
	}
	return grants, nil
}

func (s *RestrictedBookService) Grant(ctx context.Context, bookID, userID uint) (*models.RestrictedBookGrant, error) {
	req := struct {
		BookID uint `json:"book_id"`
		UserID uint `json:"user_id"`
	}{BookID: bookID, UserID: userID}
	var created models.RestrictedBookGrant
	if err := s.client.Post(ctx, "/api/restricted-books", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *RestrictedBookService) Revoke(ctx context.Context, id uint) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/restricted-books/%d", id))
}
