package user

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// UpsertProfile mirrors the authenticated Supabase user into Postgres.
// Empty fields are left untouched so a token without metadata does not
// erase a previously stored name.
func (s *Service) UpsertProfile(ctx context.Context, userID, email, displayName string) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}

	profile := Profile{UserID: userID}
	if email != "" {
		profile.Email = &email
	}
	if displayName != "" {
		profile.DisplayName = &displayName
	}

	return s.repo.UpsertProfile(ctx, &profile)
}
