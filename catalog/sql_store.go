package catalog

import (
	"context"
	"fmt"
	"time"

	"taste-toffel-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// menuItemRow is the table layout. Seq is what orders the menu; ItemID is
// the public id.
type menuItemRow struct {
	Seq         uint            `gorm:"primaryKey;autoIncrement"`
	ItemID      string          `gorm:"uniqueIndex;not null"`
	Name        string          `gorm:"not null"`
	Description string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:text;not null"`
	Category    string          `gorm:"index;not null"`
	CreatedAt   time.Time
}

func (menuItemRow) TableName() string { return "menu_items" }

func rowFromItem(item models.MenuItem) menuItemRow {
	return menuItemRow{
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    string(item.Category),
	}
}

func (r menuItemRow) item() models.MenuItem {
	return models.MenuItem{
		ID:          r.ItemID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    models.Category(r.Category),
	}
}

// SQLStore keeps the menu in a gorm database. The table is rebuilt when the
// store is created, so a menu never outlives the process.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) (*SQLStore, error) {
	if err := db.Migrator().DropTable(&menuItemRow{}); err != nil {
		return nil, fmt.Errorf("drop menu table: %w", err)
	}
	if err := db.AutoMigrate(&menuItemRow{}); err != nil {
		return nil, fmt.Errorf("migrate menu table: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) List(ctx context.Context) ([]models.MenuItem, error) {
	var rows []menuItemRow
	if err := s.db.WithContext(ctx).Order("seq asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	items := make([]models.MenuItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.item())
	}
	return items, nil
}

func (s *SQLStore) Append(ctx context.Context, item models.MenuItem) error {
	row := rowFromItem(item)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert menu item %s: %w", item.ID, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("item_id = ?", id).Delete(&menuItemRow{})
	if res.Error != nil {
		return false, fmt.Errorf("delete menu item %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *SQLStore) Reset(ctx context.Context, items []models.MenuItem) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&menuItemRow{}).Error; err != nil {
			return fmt.Errorf("clear menu: %w", err)
		}
		for _, item := range items {
			row := rowFromItem(item)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed menu item %s: %w", item.ID, err)
			}
		}
		return nil
	})
}
