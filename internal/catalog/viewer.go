package catalog

import (
	"context"
	"sync"

	"github.com/calebrosario/bookhaven-backend/internal/books"
)

// Fetcher loads the full collection from the API.
type Fetcher interface {
	List(ctx context.Context) ([]books.BookDTO, error)
}

// Viewer holds the catalog view state: filter inputs, the page index, and
// the snapshot cache. Changing any filter input resets the page to 1.
// Filtering always runs synchronously over the latest snapshot, so there is
// no race between filtering and fetching.
type Viewer struct {
	mu         sync.Mutex
	fetcher    Fetcher
	cache      *SnapshotCache
	filter     Filter
	page       int
	generation uint64
}

func NewViewer(fetcher Fetcher) *Viewer {
	return &Viewer{
		fetcher: fetcher,
		cache:   NewSnapshotCache(),
		page:    1,
	}
}

func (v *Viewer) SetSearch(search string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.filter.Search != search {
		v.filter.Search = search
		v.page = 1
	}
}

func (v *Viewer) SetGenre(genre string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.filter.Genre != genre {
		v.filter.Genre = genre
		v.page = 1
	}
}

func (v *Viewer) SetStatus(status string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.filter.Status != status {
		v.filter.Status = status
		v.page = 1
	}
}

func (v *Viewer) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if page < 1 {
		page = 1
	}
	v.page = page
}

// Invalidate discards the cached snapshot after a mutation. It also bumps
// the snapshot generation so a fetch that was already in flight cannot
// repopulate the cache with pre-mutation data.
func (v *Viewer) Invalidate() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.generation++
	v.cache.Invalidate(CollectionKey)
}

// View derives the current page. A cold cache triggers a fetch; the result
// is only cached if no invalidation happened while the fetch was in flight.
func (v *Viewer) View(ctx context.Context) (Page, error) {
	v.mu.Lock()
	filter := v.filter
	page := v.page
	generation := v.generation
	v.mu.Unlock()

	snapshot, ok := v.cache.Get(CollectionKey)
	if !ok {
		fetched, err := v.fetcher.List(ctx)
		if err != nil {
			return Page{}, err
		}
		v.mu.Lock()
		if v.generation == generation {
			v.cache.Set(CollectionKey, fetched)
		}
		v.mu.Unlock()
		snapshot = fetched
	}

	return Paginate(Apply(snapshot, filter), page), nil
}

// Genres lists the distinct genres of the current snapshot without fetching.
func (v *Viewer) Genres() []string {
	snapshot, ok := v.cache.Get(CollectionKey)
	if !ok {
		return nil
	}
	return Genres(snapshot)
}
