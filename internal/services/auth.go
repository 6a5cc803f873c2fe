// Package services holds the thin per-resource clients of the REST backend.
// Each operation is one HTTP call; errors pass through the apiclient taxonomy.
package services

import (
	"context"
	"net/url"

	"github.com/okhotnikov/libman/internal/apiclient"
	"github.com/okhotnikov/libman/internal/models"
)

type AuthService struct {
	client *apiclient.Client
}

func NewAuthService(client *apiclient.Client) *AuthService {
	return &AuthService{client: client}
}

// IssueToken exchanges credentials for a bearer token at POST /api/token.
// The endpoint is form-encoded for compatibility with the existing backend.
func (s *AuthService) IssueToken(ctx context.Context, username, password string) (string, error) {
	form := url.Values{
		"username": {username},
		"password": {password},
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := s.client.PostForm(ctx, "/api/token", form, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", &apiclient.Error{Kind: apiclient.KindUnknown, Message: "token missing from response"}
	}
	return resp.AccessToken, nil
}

// CurrentUser fetches the profile of the token's owner. The trailing slash is
// part of the backend contract.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.client.Get(ctx, "/api/users/me/", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
