package income

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"finance-tracker-go/internal/domain/dashboard"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListIncome(ctx context.Context, userID string, filter ListFilter) ([]IncomeWithSource, error) {
	items, err := s.repo.ListIncome(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []IncomeWithSource{}
	}
	return items, nil
}

func (s *Service) CreateIncome(ctx context.Context, input CreateIncomeInput) (*IncomeWithSource, error) {
	if input.Amount < 0 {
		return nil, fmt.Errorf("amount must not be negative")
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}

	var sourceName *string
	sourceID := normalizeID(input.SourceID)
	if sourceID != nil {
		source, err := s.repo.GetSourceByID(ctx, input.UserID, *sourceID)
		if err != nil {
			return nil, err
		}
		sourceName = &source.Name
	}

	entry := Income{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		SourceID:    sourceID,
		Date:        input.Date,
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
	}

	if err := s.repo.CreateIncome(ctx, &entry); err != nil {
		return nil, err
	}

	return &IncomeWithSource{Income: entry, SourceName: sourceName}, nil
}

func (s *Service) ListSources(ctx context.Context, userID string) ([]Source, error) {
	sources, err := s.repo.ListSources(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sources == nil {
		sources = []Source{}
	}
	return sources, nil
}

func (s *Service) CreateSource(ctx context.Context, input CreateSourceInput) (*Source, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	count, err := s.repo.CountSourcesByName(ctx, input.UserID, name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSourceNameTaken
	}

	source := Source{
		ID:     uuid.NewString(),
		UserID: input.UserID,
		Name:   name,
	}

	if err := s.repo.CreateSource(ctx, &source); err != nil {
		return nil, err
	}

	return &source, nil
}

// ListRecords flattens the user's income entries in [from, to] into
// dashboard records. Entries without a source fall back to the shared
// sentinel label.
func (s *Service) ListRecords(ctx context.Context, userID, from, to string) ([]dashboard.Record, error) {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, fmt.Errorf("invalid from date: %w", err)
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, fmt.Errorf("invalid to date: %w", err)
	}

	items, err := s.repo.ListIncome(ctx, userID, ListFilter{From: &fromDate, To: &toDate})
	if err != nil {
		return nil, err
	}

	records := make([]dashboard.Record, 0, len(items))
	for _, item := range items {
		source := dashboard.OtherSourceLabel
		if item.SourceName != nil && *item.SourceName != "" {
			source = *item.SourceName
		}
		records = append(records, dashboard.Record{
			Amount:   item.Amount,
			Date:     fmt.Sprintf("%04d-%02d-%02d", item.Date.Year(), int(item.Date.Month()), item.Date.Day()),
			Category: source,
		})
	}

	return records, nil
}

func normalizeID(id *string) *string {
	if id == nil {
		return nil
	}
	value := strings.TrimSpace(*id)
	if value == "" {
		return nil
	}
	return &value
}
