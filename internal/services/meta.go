package services

import (
	"context"
	"fmt"

	"github.com/okhotnikov/libman/internal/apiclient"
	"github.com/okhotnikov/libman/internal/models"
)

// The category, language and permission resources are flat name lists with
// identical contracts, so they share one generic client.

type namedResource interface {
	models.Category | models.Language | models.Permission
}

type namedService[T namedResource] struct {
	client *apiclient.Client
	base   string
}

func (s *namedService[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := s.client.Get(ctx, s.base, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *namedService[T]) Create(ctx context.Context, item T) (*T, error) {
	var created T
	if err := s.client.Post(ctx, s.base, item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *namedService[T]) Update(ctx context.Context, id uint, item T) (*T, error) {
	var updated T
	if err := s.client.Put(ctx, fmt.Sprintf("%s/%d", s.base, id), item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *namedService[T]) Delete(ctx context.Context, id uint) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s/%d", s.base, id))
}

type CategoryService struct{ namedService[models.Category] }

func NewCategoryService(client *apiclient.Client) *CategoryService {
	return &CategoryService{namedService[models.Category]{client: client, base: "/api/categories"}}
}

type LanguageService struct{ namedService[models.Language] }

func NewLanguageService(client *apiclient.Client) *LanguageService {
	return &LanguageService{namedService[models.Language]{client: client, base: "/api/languages"}}
}

type PermissionService struct{ namedService[models.Permission] }

func NewPermissionService(client *apiclient.Client) *PermissionService {
	return &PermissionService{namedService[models.Permission]{client: client, base: "/api/permissions"}}
}
