package rentals

import (
	"context"
	"io"
	"log"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yussufhh/Novella/internal/gateway"
)

type fakeLister struct {
	mu      sync.Mutex
	filters []gateway.PropertyFilter
	respond func(gateway.PropertyFilter) (*gateway.PropertiesResponse, error)
}

func (f *fakeLister) Properties(_ context.Context, filter gateway.PropertyFilter) (*gateway.PropertiesResponse, error) {
	f.mu.Lock()
	f.filters = append(f.filters, filter)
	respond := f.respond
	f.mu.Unlock()
	return respond(filter)
}

func (f *fakeLister) setRespond(fn func(gateway.PropertyFilter) (*gateway.PropertiesResponse, error)) {
	f.mu.Lock()
	f.respond = fn
	f.mu.Unlock()
}

func (f *fakeLister) calls() []gateway.PropertyFilter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]gateway.PropertyFilter(nil), f.filters...)
}

func okLister(titles ...string) *fakeLister {
	resp := &gateway.PropertiesResponse{Properties: sample(titles...)}
	return &fakeLister{respond: func(gateway.PropertyFilter) (*gateway.PropertiesResponse, error) {
		return resp, nil
	}}
}

func newTestLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func sample(titles ...string) []gateway.Property {
	out := make([]gateway.Property, 0, len(titles))
	for i, title := range titles {
		out = append(out, gateway.Property{ID: i + 1, Title: title, City: "Nairobi"})
	}
	return out
}

func TestBrowser_OneFetchPerFilterChange(t *testing.T) {
	api := okLister("Loft")
	b := NewBrowser(api, newTestLogger())
	ctx := context.Background()

	b.Refresh(ctx)
	b.SetCategory(ctx, CategoryVillas)
	b.SetCity(ctx, "  Mombasa ")

	calls := api.calls()
	require.Len(t, calls, 3)
	assert.Equal(t, gateway.PropertyFilter{}, calls[0])
	assert.Equal(t, gateway.PropertyFilter{PropertyType: "villa"}, calls[1])
	assert.Equal(t, gateway.PropertyFilter{PropertyType: "villa", City: "Mombasa"}, calls[2])
}

func TestBrowser_EmptyResultsIsEmptyStateNotError(t *testing.T) {
	api := okLister()
	b := NewBrowser(api, newTestLogger())
	b.Refresh(context.Background())

	v := b.Snapshot()
	assert.Equal(t, StateEmpty, v.State)
	assert.Empty(t, v.Error)
}

func TestBrowser_ErrorKeepsStaleResultsAndRetryRepeatsRequest(t *testing.T) {
	api := okLister("Villa", "Loft")
	b := NewBrowser(api, newTestLogger())
	ctx := context.Background()

	b.SetCity(ctx, "Nairobi")
	require.Equal(t, StateGrid, b.Snapshot().State)

	api.setRespond(func(gateway.PropertyFilter) (*gateway.PropertiesResponse, error) {
		return nil, &gateway.APIError{Message: "Something went wrong"}
	})
	b.Retry(ctx)

	v := b.Snapshot()
	assert.Equal(t, StateError, v.State)
	assert.Equal(t, "Something went wrong", v.Error)
	// Previously rendered results stay available behind the error block.
	assert.Len(t, v.Properties, 2)

	api.setRespond(func(gateway.PropertyFilter) (*gateway.PropertiesResponse, error) {
		return &gateway.PropertiesResponse{Properties: sample("Villa", "Loft")}, nil
	})
	b.Retry(ctx)
	v = b.Snapshot()
	assert.Equal(t, StateGrid, v.State)

	calls := api.calls()
	require.Len(t, calls, 3)
	// Retry re-issues the identical last request, twice.
	assert.Equal(t, calls[0], calls[1])
	assert.Equal(t, calls[1], calls[2])
}

func TestBrowser_StaleResponseNeverOverwritesNewerState(t *testing.T) {
	release := make(chan struct{})
	api := &fakeLister{}
	api.setRespond(func(filter gateway.PropertyFilter) (*gateway.PropertiesResponse, error) {
		if filter.City == "Kisumu" {
			<-release // slow request, held until the newer one lands
			return &gateway.PropertiesResponse{Properties: sample("Stale")}, nil
		}
		return &gateway.PropertiesResponse{Properties: sample("Fresh One", "Fresh Two")}, nil
	})
	b := NewBrowser(api, newTestLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		b.SetCity(ctx, "Kisumu")
	}()
	for len(api.calls()) == 0 {
		runtime.Gosched()
	}

	// Newer filter change completes first.
	b.SetCity(ctx, "Eldoret")

	// Now let the stale response land.
	close(release)
	wg.Wait()

	v := b.Snapshot()
	require.Equal(t, StateGrid, v.State)
	assert.Len(t, v.Properties, 2)
	assert.Equal(t, "Fresh One", v.Properties[0].Title)
	assert.Equal(t, "Eldoret", v.City)
}

func TestParseCategory_UnknownDegradesToAll(t *testing.T) {
	assert.Equal(t, CategoryVillas, ParseCategory("Villas"))
	assert.Equal(t, CategoryAll, ParseCategory("Castles"))
	assert.Equal(t, CategoryAll, ParseCategory(""))
}
