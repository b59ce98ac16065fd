package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebrosario/bookhaven-backend/pkg/enums"
)

// Book is the sole catalog entity: one row per physical title.
type Book struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title     string           `gorm:"column:title;not null"`
	Author    string           `gorm:"column:author;not null"`
	Genre     string           `gorm:"column:genre;not null"`
	Year      int              `gorm:"column:year;not null"`
	Status    enums.BookStatus `gorm:"column:status;not null;default:Available"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the table so the model survives renames.
func (Book) TableName() string {
	return "books"
}

// BeforeCreate assigns the id app-side when the dialect has no uuid default.
func (b *Book) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
