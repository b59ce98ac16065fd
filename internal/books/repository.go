package books

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebrosario/bookhaven-backend/pkg/db/models"
)

// Repository provides persistence for catalog records.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// ListAll loads the full collection, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.Book, error) {
	var records []models.Book
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByID loads a single record.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Book, error) {
	var record models.Book
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts the record and returns it with store-assigned fields set.
func (r *Repository) Create(ctx context.Context, record *models.Book) (*models.Book, error) {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Save writes every mutable column of the record (full replace).
func (r *Repository) Save(ctx context.Context, record *models.Book) (*models.Book, error) {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes the record and reports how many rows were affected, so the
// caller can distinguish a missing id from a successful delete.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Book{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// DeleteAll wipes the collection. Used by the seeder.
func (r *Repository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Book{}).Error
}
