package services

import (
	"context"
	"fmt"

	"github.com/okhotnikov/libman/internal/apiclient"
	"github.com/okhotnikov/libman/internal/models"
)

type RoleService struct {
	client *apiclient.Client
}

func NewRoleService(client *apiclient.Client) *RoleService {
	return &RoleService{client: client}
}

func (s *RoleService) List(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := s.client.Get(ctx, "/api/roles", &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *RoleService) Get(ctx context.Context, id uint) (*models.Role, error) {
	var role models.Role
	if err := s.client.Get(ctx, fmt.Sprintf("/api/roles/%d", id), &role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *RoleService) Create(ctx context.Context, role models.Role) (*models.Role, error) {
	var created models.Role
	if err := s.client.Post(ctx, "/api/roles", role, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *RoleService) Update(ctx context.Context, role models.Role) (*models.Role, error) {
	var updated models.Role
	if err := s.client.Put(ctx, fmt.Sprintf("/api/roles/%d", role.ID), role, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *RoleService) Delete(ctx context.Context, id uint) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/roles/%d", id))
}

// SetPermissions replaces the role's permission set with the given IDs.
// PUT on the nested resource is the one canonical contract for this.
func (s *RoleService) SetPermissions(ctx context.Context, roleID uint, permissionIDs []uint) (*models.Role, error) {
	req := struct {
		PermissionIDs []uint `json:"permission_ids"`
	}{PermissionIDs: permissionIDs}
	var updated models.Role
	if err := s.client.Put(ctx, fmt.Sprintf("/api/roles/%d/permissions", roleID), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
