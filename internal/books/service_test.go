package books

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/calebrosario/bookhaven-backend/pkg/enums"
	pkgerrors "github.com/calebrosario/bookhaven-backend/pkg/errors"
)

func newTestService(t *testing.T) (Service, *memoryCache) {
	t.Helper()
	cache := &memoryCache{}
	svc, err := NewService(NewRepository(openTestDB(t)), cache)
	require.NoError(t, err)
	return svc, cache
}

func validInput() CreateBookInput {
	return CreateBookInput{
		Title:  "Dune",
		Author: "Herbert",
		Genre:  "Sci-Fi",
		Year:   1965,
		Status: enums.BookStatusAvailable,
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.False(t, created.CreatedAt.IsZero())
	require.False(t, created.UpdatedAt.IsZero())

	loaded, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, loaded.ID)
	require.Equal(t, "Dune", loaded.Title)
	require.Equal(t, "Herbert", loaded.Author)
	require.Equal(t, "Sci-Fi", loaded.Genre)
	require.Equal(t, 1965, loaded.Year)
	require.Equal(t, enums.BookStatusAvailable, loaded.Status)
}

func TestCreateDefaultsStatusToAvailable(t *testing.T) {
	svc, _ := newTestService(t)

	input := validInput()
	input.Status = ""
	created, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, enums.BookStatusAvailable, created.Status)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	currentYear := time.Now().Year()

	tests := []struct {
		name   string
		mutate func(*CreateBookInput)
		field  string
	}{
		{name: "empty title", mutate: func(in *CreateBookInput) { in.Title = "" }, field: "title"},
		{name: "blank author", mutate: func(in *CreateBookInput) { in.Author = "   " }, field: "author"},
		{name: "empty genre", mutate: func(in *CreateBookInput) { in.Genre = "" }, field: "genre"},
		{name: "year below range", mutate: func(in *CreateBookInput) { in.Year = 1499 }, field: "year"},
		{name: "year in the future", mutate: func(in *CreateBookInput) { in.Year = currentYear + 1 }, field: "year"},
		{name: "unknown status", mutate: func(in *CreateBookInput) { in.Status = "Lost" }, field: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			_, err := svc.Create(ctx, input)
			require.Error(t, err)
			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			require.Equal(t, pkgerrors.CodeValidation, typed.Code())
			details, ok := typed.Details().(map[string]string)
			require.True(t, ok)
			require.Contains(t, details, tt.field)
		})
	}
}

func TestCreateAcceptsCurrentYear(t *testing.T) {
	svc, _ := newTestService(t)

	input := validInput()
	input.Year = time.Now().Year()
	created, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	require.Equal(t, input.Year, created.Year)
}

func TestUpdateIsFullReplace(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateBookInput{
		Title:  "Dune Messiah",
		Author: "Frank Herbert",
		Genre:  "Science Fiction",
		Year:   1969,
		Status: enums.BookStatusIssued,
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Dune Messiah", updated.Title)
	require.Equal(t, enums.BookStatusIssued, updated.Status)

	loaded, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Dune Messiah", loaded.Title)
	require.Equal(t, "Frank Herbert", loaded.Author)
	require.Equal(t, "Science Fiction", loaded.Genre)
	require.Equal(t, 1969, loaded.Year)
	require.Equal(t, enums.BookStatusIssued, loaded.Status)
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), uuid.New(), UpdateBookInput{
		Title:  "x",
		Author: "y",
		Genre:  "z",
		Year:   2000,
		Status: enums.BookStatusAvailable,
	})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestUpdateRejectsEmptyFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, UpdateBookInput{Title: "only a title"})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestDeleteThenGetIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	// Repeated delete on the same id fails rather than succeeding silently.
	err = svc.Delete(ctx, created.ID)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestListServesFromCacheAndMutationsInvalidate(t *testing.T) {
	svc, cache := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	require.Equal(t, 1, cache.invalidations)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, 1, cache.sets)

	// Second list hits the snapshot, not the store.
	again, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, listed, again)
	require.Equal(t, 1, cache.sets)

	_, err = svc.Update(ctx, created.ID, UpdateBookInput{
		Title:  "Dune",
		Author: "Herbert",
		Genre:  "Sci-Fi",
		Year:   1965,
		Status: enums.BookStatusIssued,
	})
	require.NoError(t, err)
	require.Equal(t, 2, cache.invalidations)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.Equal(t, 3, cache.invalidations)
}

type memoryCache struct {
	snapshot      []BookDTO
	ok            bool
	sets          int
	invalidations int
}

func (m *memoryCache) Get(context.Context) ([]BookDTO, bool) {
	if !m.ok {
		return nil, false
	}
	return m.snapshot, true
}

func (m *memoryCache) Set(_ context.Context, records []BookDTO) {
	m.snapshot = records
	m.ok = true
	m.sets++
}

func (m *memoryCache) Invalidate(context.Context) {
	m.snapshot = nil
	m.ok = false
	m.invalidations++
}
