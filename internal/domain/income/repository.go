package income

import "context"

type Repository interface {
	ListIncome(ctx context.Context, userID string, filter ListFilter) ([]IncomeWithSource, error)
	CreateIncome(ctx context.Context, entry *Income) error
	ListSources(ctx context.Context, userID string) ([]Source, error)
	CreateSource(ctx context.Context, source *Source) error
	GetSourceByID(ctx context.Context, userID, sourceID string) (*Source, error)
	CountSourcesByName(ctx context.Context, userID, name string) (int64, error)
}
