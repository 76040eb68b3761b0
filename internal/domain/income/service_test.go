package income

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeRepo struct {
	income    []IncomeWithSource
	sources   []Source
	created   []*Income
	nameCount int64
}

func (f *fakeRepo) ListIncome(ctx context.Context, userID string, filter ListFilter) ([]IncomeWithSource, error) {
	return f.income, nil
}

func (f *fakeRepo) CreateIncome(ctx context.Context, entry *Income) error {
	f.created = append(f.created, entry)
	return nil
}

func (f *fakeRepo) ListSources(ctx context.Context, userID string) ([]Source, error) {
	return f.sources, nil
}

func (f *fakeRepo) CreateSource(ctx context.Context, source *Source) error {
	return nil
}

func (f *fakeRepo) GetSourceByID(ctx context.Context, userID, sourceID string) (*Source, error) {
	for i := range f.sources {
		if f.sources[i].ID == sourceID && f.sources[i].UserID == userID {
			return &f.sources[i], nil
		}
	}
	return nil, ErrSourceNotFound
}

func (f *fakeRepo) CountSourcesByName(ctx context.Context, userID, name string) (int64, error) {
	return f.nameCount, nil
}

func TestCreateIncomeResolvesSourceName(t *testing.T) {
	repo := &fakeRepo{
		sources: []Source{{ID: "src-1", UserID: "user-1", Name: "Salary"}},
	}
	svc := NewService(repo)

	sourceID := "src-1"
	created, err := svc.CreateIncome(context.Background(), CreateIncomeInput{
		UserID:   "user-1",
		Date:     time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Amount:   50000,
		SourceID: &sourceID,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created.SourceName == nil || *created.SourceName != "Salary" {
		t.Fatalf("expected source name Salary, got %v", created.SourceName)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted entry, got %d", len(repo.created))
	}
}

func TestCreateIncomeRejectsUnknownSource(t *testing.T) {
	svc := NewService(&fakeRepo{})

	sourceID := "missing"
	_, err := svc.CreateIncome(context.Background(), CreateIncomeInput{
		UserID:   "user-1",
		Date:     time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Amount:   100,
		SourceID: &sourceID,
	})
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestCreateSourceRejectsDuplicateName(t *testing.T) {
	svc := NewService(&fakeRepo{nameCount: 1})

	_, err := svc.CreateSource(context.Background(), CreateSourceInput{UserID: "user-1", Name: "Salary"})
	if !errors.Is(err, ErrSourceNameTaken) {
		t.Fatalf("expected ErrSourceNameTaken, got %v", err)
	}
}

func TestListRecordsDefaultsMissingSource(t *testing.T) {
	repo := &fakeRepo{
		income: []IncomeWithSource{
			{
				Income: Income{
					Amount: 500,
					Date:   time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC),
				},
			},
		},
	}
	svc := NewService(repo)

	records, err := svc.ListRecords(context.Background(), "user-1", "2025-08-01", "2025-08-31")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Category != "Other" {
		t.Fatalf("expected Other sentinel, got %q", records[0].Category)
	}
	if records[0].Date != "2025-08-14" {
		t.Fatalf("unexpected date: %s", records[0].Date)
	}
}
