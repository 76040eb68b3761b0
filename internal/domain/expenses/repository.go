package expenses

import "context"

type Repository interface {
	ListExpenses(ctx context.Context, userID string, filter ListFilter) ([]ExpenseWithCategory, error)
	CreateExpense(ctx context.Context, expense *Expense) error
	ListCategories(ctx context.Context, userID string) ([]Category, error)
	CreateCategory(ctx context.Context, category *Category) error
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*Category, error)
	CountCategoriesByName(ctx context.Context, userID, name string) (int64, error)
}
