package catalog

import (
	"sort"
	"strings"

	"github.com/calebrosario/bookhaven-backend/internal/books"
)

// PageSize is the fixed number of records shown per page.
const PageSize = 10

// Filter holds the catalog view inputs. Empty values select everything.
type Filter struct {
	Search string
	Genre  string
	Status string
}

// Page is one derived slice of the filtered collection.
type Page struct {
	Items      []books.BookDTO
	Index      int
	TotalPages int
	TotalItems int
}

// Apply derives the filtered collection: substring search on title/author
// (case-insensitive), then genre equality, then status equality. Pure and
// deterministic; input order is preserved.
func Apply(records []books.BookDTO, f Filter) []books.BookDTO {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	filtered := make([]books.BookDTO, 0, len(records))
	for _, record := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(record.Title), search) &&
			!strings.Contains(strings.ToLower(record.Author), search) {
			continue
		}
		if f.Genre != "" && record.Genre != f.Genre {
			continue
		}
		if f.Status != "" && string(record.Status) != f.Status {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// Paginate slices the filtered collection into the requested page. An empty
// collection still reports one page. A page index past the end yields an
// empty item list, not an error.
func Paginate(records []books.BookDTO, page int) Page {
	if page < 1 {
		page = 1
	}

	total := len(records)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * PageSize
	if start > total {
		start = total
	}
	end := start + PageSize
	if end > total {
		end = total
	}

	return Page{
		Items:      records[start:end],
		Index:      page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}

// Genres returns the sorted set of distinct genres, for the filter dropdown.
func Genres(records []books.BookDTO) []string {
	seen := map[string]struct{}{}
	genres := []string{}
	for _, record := range records {
		if _, ok := seen[record.Genre]; ok {
			continue
		}
		seen[record.Genre] = struct{}{}
		genres = append(genres, record.Genre)
	}
	sort.Strings(genres)
	return genres
}
