package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/okhotnikov/libman/internal/apiclient"
	"github.com/okhotnikov/libman/internal/models"
	"github.com/okhotnikov/libman/internal/util"
)

type UserService struct {
	client *apiclient.Client
}

func NewUserService(client *apiclient.Client) *UserService {
	return &UserService{client: client}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.client.Get(ctx, "/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.client.Get(ctx, fmt.Sprintf("/api/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	RoleID   uint   `json:"role_id"`
	Status   string `json:"status"`
}

func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	var created models.User
	if err := s.client.Post(ctx, "/api/users", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *UserService) Update(ctx context.Context, id uint, req CreateUserRequest) (*models.User, error) {
	var updated models.User
	if err := s.client.Put(ctx, fmt.Sprintf("/api/users/%d", id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/users/%d", id))
}

func (s *UserService) Page(ctx context.Context, query string, page, size int) ([]models.User, int, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	filtered := util.Filter(users, query, func(u models.User) string {
		return strings.Join([]string{u.Username, u.Email, u.FullName}, " ")
	})
	return util.Page(filtered, page, size), len(filtered), nil
}
