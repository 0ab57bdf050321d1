package sqlite

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/menu-api/internal/domain/entity"
)

// Sin tags default: gorm omite los valores cero en el INSERT cuando la columna tiene default,
// y is_available=false o description="" deben persistirse tal cual.

type userModel struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
}

func (userModel) TableName() string { return "users" }

type categoryModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`
}

func (categoryModel) TableName() string { return "categories" }

type menuItemModel struct {
	ID          int64           `gorm:"primaryKey"`
	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CategoryID  int64           `gorm:"not null;index"`
	Category    categoryModel   `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	ImageURL    *string         `gorm:"size:500"`
	IsAvailable bool            `gorm:"not null"`
}

func (menuItemModel) TableName() string { return "menu_items" }

// menuItemRow resultado del JOIN con categories.
type menuItemRow struct {
	ID           int64
	Name         string
	Description  string
	Price        decimal.Decimal
	CategoryID   int64
	ImageURL     *string
	IsAvailable  bool
	CategoryName string
}

func (r menuItemRow) toEntity() *entity.MenuItem {
	return &entity.MenuItem{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		CategoryID:   r.CategoryID,
		ImageURL:     r.ImageURL,
		IsAvailable:  r.IsAvailable,
		CategoryName: r.CategoryName,
	}
}
