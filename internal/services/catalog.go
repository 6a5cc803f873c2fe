package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/okhotnikov/libman/internal/apiclient"
	"github.com/okhotnikov/libman/internal/models"
)

// CatalogService is the public, unauthenticated view of the collection.
type CatalogService struct {
	client *apiclient.Client
}

func NewCatalogService(client *apiclient.Client) *CatalogService {
	return &CatalogService{client: client}
}

type CatalogPage struct {
	Total int64         `json:"total"`
	Books []models.Book `json:"books"`
}

func (s *CatalogService) Search(ctx context.Context, query string, page, size int) (*CatalogPage, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("page", fmt.Sprint(page))
	q.Set("size", fmt.Sprint(size))
	var result CatalogPage
	if err := s.client.Get(ctx, "/api/catalog?"+q.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
