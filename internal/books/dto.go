package books

import (
	"time"

	"github.com/google/uuid"

	"github.com/calebrosario/bookhaven-backend/pkg/db/models"
	"github.com/calebrosario/bookhaven-backend/pkg/enums"
)

// BookDTO is the wire representation of a catalog record.
type BookDTO struct {
	ID        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	Author    string           `json:"author"`
	Genre     string           `json:"genre"`
	Year      int              `json:"year"`
	Status    enums.BookStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// NewBookDTO builds a DTO from the persisted model.
func NewBookDTO(book *models.Book) *BookDTO {
	return &BookDTO{
		ID:        book.ID,
		Title:     book.Title,
		Author:    book.Author,
		Genre:     book.Genre,
		Year:      book.Year,
		Status:    book.Status,
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}

// NewBookDTOs maps a slice of models, preserving order.
func NewBookDTOs(records []models.Book) []BookDTO {
	dtos := make([]BookDTO, len(records))
	for i := range records {
		dtos[i] = *NewBookDTO(&records[i])
	}
	return dtos
}
