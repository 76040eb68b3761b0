package income

import "time"

type Income struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	UserID      string    `gorm:"type:uuid;index;not null"`
	SourceID    *string   `gorm:"type:uuid;index"`
	Date        time.Time `gorm:"type:date;not null"`
	Amount      float64   `gorm:"type:numeric(12,2);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Income) TableName() string { return "income" }

type Source struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Source) TableName() string { return "income_sources" }

// IncomeWithSource carries the joined source name. SourceName is nil when
// the row has no source attached.
type IncomeWithSource struct {
	Income
	SourceName *string
}

type ListFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type CreateIncomeInput struct {
	UserID      string
	Date        time.Time
	Amount      float64
	SourceID    *string
	Description string
}

type CreateSourceInput struct {
	UserID string
	Name   string
}
