// Package rentals drives the property browse view: filter state, one fetch
// per change, and the loading / error / empty / grid result states.
package rentals

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/yussufhh/Novella/internal/gateway"
)

type ViewState string

const (
	StateLoading ViewState = "loading"
	StateError   ViewState = "error"
	StateEmpty   ViewState = "empty"
	StateGrid    ViewState = "grid"
)

// Lister is the slice of the gateway the browser needs.
type Lister interface {
	Properties(ctx context.Context, filter gateway.PropertyFilter) (*gateway.PropertiesResponse, error)
}

// Browser holds one browse session's query state. Every filter change bumps a
// generation counter; a response is applied only while its generation is
// still current, so a slow response can never overwrite a newer one.
type Browser struct {
	mu     sync.Mutex
	api    Lister
	logger *log.Logger

	selectedCategory Category
	searchCity       string

	generation uint64
	loading    bool
	errMsg     string
	results    []gateway.Property
	lastFilter gateway.PropertyFilter
}

// View is an immutable snapshot for rendering. Exactly one of the non-grid
// states applies at a time; Properties carries the last good result set even
// in the error state (stale-but-available).
type View struct {
	State      ViewState          `json:"state"`
	Category   Category           `json:"category"`
	City       string             `json:"city"`
	Error      string             `json:"error,omitempty"`
	Properties []gateway.Property `json:"properties"`
}

func NewBrowser(api Lister, logger *log.Logger) *Browser {
	if logger == nil {
		logger = log.Default()
	}
	return &Browser{
		api:              api,
		logger:           logger,
		selectedCategory: CategoryAll,
	}
}

// Refresh issues the initial fetch for the current filter state.
func (b *Browser) Refresh(ctx context.Context) {
	b.fetch(ctx, b.currentFilter())
}

// SetCategory updates the chip and refetches; one call per change.
func (b *Browser) SetCategory(ctx context.Context, c Category) {
	b.mu.Lock()
	b.selectedCategory = c
	b.mu.Unlock()
	b.fetch(ctx, b.currentFilter())
}

// SetCity updates the search box and refetches; one call per change.
func (b *Browser) SetCity(ctx context.Context, city string) {
	b.mu.Lock()
	b.searchCity = strings.TrimSpace(city)
	b.mu.Unlock()
	b.fetch(ctx, b.currentFilter())
}

// Retry re-issues the identical last request.
func (b *Browser) Retry(ctx context.Context) {
	b.mu.Lock()
	filter := b.lastFilter
	b.mu.Unlock()
	b.fetch(ctx, filter)
}

func (b *Browser) currentFilter() gateway.PropertyFilter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return gateway.PropertyFilter{
		City:         b.searchCity,
		PropertyType: b.selectedCategory.propertyType(),
	}
}

func (b *Browser) fetch(ctx context.Context, filter gateway.PropertyFilter) {
	b.mu.Lock()
	b.generation++
	gen := b.generation
	b.loading = true
	b.errMsg = ""
	b.lastFilter = filter
	b.mu.Unlock()

	resp, err := b.api.Properties(ctx, filter)

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.generation {
		// A newer fetch started while this one was in flight; drop it.
		return
	}
	b.loading = false
	if err != nil {
		b.errMsg = err.Error()
		// Previous results stay visible behind the error block.
		return
	}
	b.results = resp.Properties
}

func (b *Browser) Snapshot() View {
	b.mu.Lock()
	defer b.mu.Unlock()

	v := View{
		Category:   b.selectedCategory,
		City:       b.searchCity,
		Error:      b.errMsg,
		Properties: b.results,
	}
	switch {
	case b.loading:
		v.State = StateLoading
	case b.errMsg != "":
		v.State = StateError
	case len(b.results) == 0:
		v.State = StateEmpty
	default:
		v.State = StateGrid
	}
	return v
}
