package services

import (
	"context"
	"fmt"

	"github.com/okhotnikov/libman/internal/apiclient"
	"github.com/okhotnikov/libman/internal/models"
)

type LoanService struct {
	client *apiclient.Client
}

func NewLoanService(client *apiclient.Client) *LoanService {
	return &LoanService{client: client}
}

func (s *LoanService) List(ctx context.Context) ([]models.Loan, error) {
	var loans []models.Loan
	if err := s.client.Get(ctx, "/api/loans", &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

type IssueLoanRequest struct {
	CopyID uint   `json:"copy_id"`
	UserID uint   `json:"user_id"`
	DueAt  string `json:"due_at"`
}

func (s *LoanService) Issue(ctx context.Context, req IssueLoanRequest) (*models.Loan, error) {
	var created models.Loan
	if err := s.client.Post(ctx, "/api/loans", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *LoanService) Return(ctx context.Context, id uint) (*models.Loan, error) {
	var returned models.Loan
	if err := s.client.Post(ctx, fmt.Sprintf("/api/loans/%d/return", id), struct{}{}, &returned); err != nil {
		return nil, err
	}
	return &returned, nil
}
