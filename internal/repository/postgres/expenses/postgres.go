package expenses

import (
	"context"
	"errors"

	expensesdomain "finance-tracker-go/internal/domain/expenses"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListExpenses(ctx context.Context, userID string, filter expensesdomain.ListFilter) ([]expensesdomain.ExpenseWithCategory, error) {
	query := r.db.WithContext(ctx).
		Model(&expensesdomain.Expense{}).
		Where("user_id = ?", userID)
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}

	query = query.Order("date desc, created_at desc")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var rows []expensesdomain.Expense
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	names, err := r.categoryNames(ctx, rows)
	if err != nil {
		return nil, err
	}

	items := make([]expensesdomain.ExpenseWithCategory, 0, len(rows))
	for _, row := range rows {
		item := expensesdomain.ExpenseWithCategory{Expense: row}
		if row.CategoryID != nil {
			if name, ok := names[*row.CategoryID]; ok {
				item.CategoryName = &name
			}
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *PostgresRepository) categoryNames(ctx context.Context, rows []expensesdomain.Expense) (map[string]string, error) {
	ids := make([]string, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if row.CategoryID == nil {
			continue
		}
		if _, ok := seen[*row.CategoryID]; ok {
			continue
		}
		seen[*row.CategoryID] = struct{}{}
		ids = append(ids, *row.CategoryID)
	}

	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var categories []expensesdomain.Category
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	return names, nil
}

func (r *PostgresRepository) CreateExpense(ctx context.Context, expense *expensesdomain.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *PostgresRepository) ListCategories(ctx context.Context, userID string) ([]expensesdomain.Category, error) {
	var categories []expensesdomain.Category
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *expensesdomain.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *PostgresRepository) GetCategoryByID(ctx context.Context, userID, categoryID string) (*expensesdomain.Category, error) {
	var category expensesdomain.Category
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, categoryID).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, expensesdomain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *PostgresRepository) CountCategoriesByName(ctx context.Context, userID, name string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&expensesdomain.Category{}).
		Where("user_id = ? AND lower(name) = lower(?)", userID, name).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
