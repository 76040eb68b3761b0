package expenses

import "time"

type Expense struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	UserID      string    `gorm:"type:uuid;index;not null"`
	CategoryID  *string   `gorm:"type:uuid;index"`
	Date        time.Time `gorm:"type:date;not null"`
	Amount      float64   `gorm:"type:numeric(12,2);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

type Category struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	UserID      string    `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// ExpenseWithCategory carries the joined category name so listings and the
// dashboard do not need a second lookup. CategoryName is nil for
// uncategorized expenses.
type ExpenseWithCategory struct {
	Expense
	CategoryName *string
}

type ListFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type CreateExpenseInput struct {
	UserID      string
	Date        time.Time
	Amount      float64
	CategoryID  *string
	Description string
}

type CreateCategoryInput struct {
	UserID      string
	Name        string
	Description *string
}
