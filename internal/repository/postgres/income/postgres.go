package income

import (
	"context"
	"errors"

	incomedomain "finance-tracker-go/internal/domain/income"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListIncome(ctx context.Context, userID string, filter incomedomain.ListFilter) ([]incomedomain.IncomeWithSource, error) {
	query := r.db.WithContext(ctx).
		Model(&incomedomain.Income{}).
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

	var rows []incomedomain.Income
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	names, err := r.sourceNames(ctx, rows)
	if err != nil {
		return nil, err
	}

	items := make([]incomedomain.IncomeWithSource, 0, len(rows))
	for _, row := range rows {
		item := incomedomain.IncomeWithSource{Income: row}
		if row.SourceID != nil {
			if name, ok := names[*row.SourceID]; ok {
				item.SourceName = &name
			}
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *PostgresRepository) sourceNames(ctx context.Context, rows []incomedomain.Income) (map[string]string, error) {
	ids := make([]string, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if row.SourceID == nil {
			continue
		}
		if _, ok := seen[*row.SourceID]; ok {
			continue
		}
		seen[*row.SourceID] = struct{}{}
		ids = append(ids, *row.SourceID)
	}

	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var sources []incomedomain.Source
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&sources).Error; err != nil {
		return nil, err
	}
	for _, source := range sources {
		names[source.ID] = source.Name
	}

	return names, nil
}

func (r *PostgresRepository) CreateIncome(ctx context.Context, entry *incomedomain.Income) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *PostgresRepository) ListSources(ctx context.Context, userID string) ([]incomedomain.Source, error) {
	var sources []incomedomain.Source
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&sources).Error; err != nil {
		return nil, err
	}
	return sources, nil
}

func (r *PostgresRepository) CreateSource(ctx context.Context, source *incomedomain.Source) error {
	return r.db.WithContext(ctx).Create(source).Error
}

func (r *PostgresRepository) GetSourceByID(ctx context.Context, userID, sourceID string) (*incomedomain.Source, error) {
	var source incomedomain.Source
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, sourceID).
		First(&source).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, incomedomain.ErrSourceNotFound
		}
		return nil, err
	}
	return &source, nil
}

func (r *PostgresRepository) CountSourcesByName(ctx context.Context, userID, name string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&incomedomain.Source{}).
		Where("user_id = ? AND lower(name) = lower(?)", userID, name).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
