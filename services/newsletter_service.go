package services

import (
	"context"

	"github.com/syedsartaj/travel-adventure/dto"
	"github.com/syedsartaj/travel-adventure/repositories"
)

// NewsletterService wraps subscription handling.
type NewsletterService struct {
	repo *repositories.NewsletterRepository
}

func NewNewsletterService(repo *repositories.NewsletterRepository) *NewsletterService {
	return &NewsletterService{repo: repo}
}

func (s *NewsletterService) Subscribe(ctx context.Context, req dto.SubscribeRequest) (repositories.SubscribeOutcome, error) {
	if req.Email == "" {
		return "", &ValidationError{Field: "email"}
	}
	return s.repo.Subscribe(ctx, req.Email, req.Name)
}
