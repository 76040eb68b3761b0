package expenses

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

func (s *Service) ListExpenses(ctx context.Context, userID string, filter ListFilter) ([]ExpenseWithCategory, error) {
	items, err := s.repo.ListExpenses(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []ExpenseWithCategory{}
	}
	return items, nil
}

func (s *Service) CreateExpense(ctx context.Context, input CreateExpenseInput) (*ExpenseWithCategory, error) {
	if input.Amount < 0 {
		return nil, fmt.Errorf("amount must not be negative")
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}

	var categoryName *string
	categoryID := normalizeID(input.CategoryID)
	if categoryID != nil {
		category, err := s.repo.GetCategoryByID(ctx, input.UserID, *categoryID)
		if err != nil {
			return nil, err
		}
		categoryName = &category.Name
	}

	expense := Expense{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		CategoryID:  categoryID,
		Date:        input.Date,
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
	}

	if err := s.repo.CreateExpense(ctx, &expense); err != nil {
		return nil, err
	}

	return &ExpenseWithCategory{Expense: expense, CategoryName: categoryName}, nil
}

func (s *Service) ListCategories(ctx context.Context, userID string) ([]Category, error) {
	categories, err := s.repo.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []Category{}
	}
	return categories, nil
}

func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	count, err := s.repo.CountCategoriesByName(ctx, input.UserID, name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryNameTaken
	}

	category := Category{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		Name:        name,
		Description: input.Description,
	}

	if err := s.repo.CreateCategory(ctx, &category); err != nil {
		return nil, err
	}

	return &category, nil
}

// ListRecords flattens the user's expenses in [from, to] into dashboard
// records. Dates are rendered from calendar components so the aggregation
// engine sees the same day the row was stored with.
func (s *Service) ListRecords(ctx context.Context, userID, from, to string) ([]dashboard.Record, error) {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, fmt.Errorf("invalid from date: %w", err)
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, fmt.Errorf("invalid to date: %w", err)
	}

	items, err := s.repo.ListExpenses(ctx, userID, ListFilter{From: &fromDate, To: &toDate})
	if err != nil {
		return nil, err
	}

	records := make([]dashboard.Record, 0, len(items))
	for _, item := range items {
		var category string
		if item.CategoryName != nil {
			category = *item.CategoryName
		}
		records = append(records, dashboard.Record{
			Amount:   item.Amount,
			Date:     fmt.Sprintf("%04d-%02d-%02d", item.Date.Year(), int(item.Date.Month()), item.Date.Day()),
			Category: category,
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
