package books

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/calebrosario/bookhaven-backend/pkg/db/models"
	"github.com/calebrosario/bookhaven-backend/pkg/enums"
	pkgerrors "github.com/calebrosario/bookhaven-backend/pkg/errors"
)

// MinYear is the oldest publication year the catalog accepts.
const MinYear = 1500

// Service exposes catalog record management operations.
type Service interface {
	List(ctx context.Context) ([]BookDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*BookDTO, error)
	Create(ctx context.Context, input CreateBookInput) (*BookDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBookInput) (*BookDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateBookInput holds the payload to create a record. Status is optional
// and defaults to Available.
type CreateBookInput struct {
	Title  string
	Author string
	Genre  string
	Year   int
	Status enums.BookStatus
}

// UpdateBookInput replaces every mutable field of the record. There is no
// partial patch: a field left empty fails validation rather than silently
// keeping its old value.
type UpdateBookInput struct {
	Title  string
	Author string
	Genre  string
	Year   int
	Status enums.BookStatus
}

type service struct {
	repo  *Repository
	cache CollectionCache
}

// NewService constructs the catalog service. The cache may be nil, in which
// case every list goes to the store.
func NewService(repo *Repository, cache CollectionCache) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("book repository required")
	}
	return &service{repo: repo, cache: cache}, nil
}

// List returns the full collection, unfiltered and unpaginated. Filtering
// and pagination are a client responsibility.
func (s *service) List(ctx context.Context) ([]BookDTO, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "db: list books")
	}

	dtos := NewBookDTOs(records)
	if s.cache != nil {
		s.cache.Set(ctx, dtos)
	}
	return dtos, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*BookDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "book not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "db: load book")
	}
	return NewBookDTO(record), nil
}

func (s *service) Create(ctx context.Context, input CreateBookInput) (*BookDTO, error) {
	status := input.Status
	if status == "" {
		status = enums.BookStatusAvailable
	}

	if err := validateFields(input.Title, input.Author, input.Genre, input.Year, status); err != nil {
		return nil, err
	}

	record := &models.Book{
		Title:  strings.TrimSpace(input.Title),
		Author: strings.TrimSpace(input.Author),
		Genre:  strings.TrimSpace(input.Genre),
		Year:   input.Year,
		Status: status,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "db: insert book")
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return NewBookDTO(created), nil
}

// Update is a full-record replace of title/author/genre/year/status.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateBookInput) (*BookDTO, error) {
	if err := validateFields(input.Title, input.Author, input.Genre, input.Year, input.Status); err != nil {
		return nil, err
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "book not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "db: load book")
	}

	record.Title = strings.TrimSpace(input.Title)
	record.Author = strings.TrimSpace(input.Author)
	record.Genre = strings.TrimSpace(input.Genre)
	record.Year = input.Year
	record.Status = input.Status

	updated, err := s.repo.Save(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "db: update book")
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return NewBookDTO(updated), nil
}

// Delete removes the record. Deleting an id that no longer exists returns
// NotFound; repeated deletes are not treated as a no-op.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStoreUnavailable, err, "db: delete book")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "book not found")
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return nil
}

func validateFields(title, author, genre string, year int, status enums.BookStatus) error {
	details := map[string]string{}

	if strings.TrimSpace(title) == "" {
		details["title"] = "is required"
	}
	if strings.TrimSpace(author) == "" {
		details["author"] = "is required"
	}
	if strings.TrimSpace(genre) == "" {
		details["genre"] = "is required"
	}

	currentYear := time.Now().Year()
	if year < MinYear || year > currentYear {
		details["year"] = fmt.Sprintf("must be between %d and %d", MinYear, currentYear)
	}

	if !status.IsValid() {
		details["status"] = fmt.Sprintf("must be one of: %s %s", enums.BookStatusAvailable, enums.BookStatusIssued)
	}

	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return nil
}
