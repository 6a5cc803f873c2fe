package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/okhotnikov/libman/internal/apiclient"
	"github.com/okhotnikov/libman/internal/models"
	"github.com/okhotnikov/libman/internal/util"
)

type BookService struct {
	client *apiclient.Client
}

func NewBookService(client *apiclient.Client) *BookService {
	return &BookService{client: client}
}

func (s *BookService) List(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := s.client.Get(ctx, "/api/books", &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *BookService) Get(ctx context.Context, id uint) (*models.Book, error) {
	var book models.Book
	if err := s.client.Get(ctx, fmt.Sprintf("/api/books/%d", id), &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *BookService) Create(ctx context.Context, book models.Book) (*models.Book, error) {
	var created models.Book
	if err := s.client.Post(ctx, "/api/books", book, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *BookService) Update(ctx context.Context, book models.Book) (*models.Book, error) {
	var updated models.Book
	if err := s.client.Put(ctx, fmt.Sprintf("/api/books/%d", book.ID), book, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *BookService) Delete(ctx context.Context, id uint) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/books/%d", id))
}

// Page fetches the full list and applies the table's client-side search and
// pagination, the way the admin views present it.
func (s *BookService) Page(ctx context.Context, query string, page, size int) ([]models.Book, int, error) {
	books, err := s.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	filtered := util.Filter(books, query, func(b models.Book) string {
		return strings.Join([]string{b.Title, b.Author, b.ISBN}, " ")
	})
	return util.Page(filtered, page, size), len(filtered), nil
}
