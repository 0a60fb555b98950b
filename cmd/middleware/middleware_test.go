package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"planora/internal/cache"
	"planora/pkg/routes"
)

type fakeViewStore struct {
	data map[string][]byte
}

func newFakeViewStore() *fakeViewStore {
	return &fakeViewStore{data: map[string][]byte{}}
}

func (s *fakeViewStore) Get(ctx context.Context, path string) ([]byte, bool) {
	p, ok := s.data[path]
	return p, ok
}

func (s *fakeViewStore) Set(ctx context.Context, path string, payload []byte) {
	s.data[path] = append([]byte(nil), payload...)
}

// drop removes the entries ViewCache.Invalidate would delete for the
// same entities, resolved through the dependency graph.
func (s *fakeViewStore) drop(entities ...cache.Entity) {
	for _, p := range cache.PathsFor(entities...) {
		delete(s.data, p)
	}
}

func newCachedRouter(store ViewStore, hits *int, status int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	app := gin.New()
	app.GET("/v1/events", CacheView(store, routes.AdminEvents), func(c *gin.Context) {
		*hits++
		c.JSON(status, gin.H{"items": []string{"Gala de charité"}})
	})
	return app
}

func doGet(t *testing.T, app *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	app.ServeHTTP(w, req)
	return w
}

func TestCacheViewSetInvalidateMiss(t *testing.T) {
	store := newFakeViewStore()
	hits := 0
	app := newCachedRouter(store, &hits, http.StatusOK)

	first := doGet(t, app, "/v1/events")
	if hits != 1 {
		t.Fatalf("hits after first request = %d", hits)
	}
	cached, ok := store.Get(context.Background(), routes.AdminEvents)
	if !ok {
		t.Fatal("default render was not cached under its view path")
	}
	if string(cached) != first.Body.String() {
		t.Errorf("cached payload %q differs from response %q", cached, first.Body.String())
	}

	second := doGet(t, app, "/v1/events")
	if hits != 1 {
		t.Errorf("hits after cached request = %d, handler ran again", hits)
	}
	if second.Body.String() != first.Body.String() {
		t.Errorf("cached response %q differs from original %q", second.Body.String(), first.Body.String())
	}

	store.drop(cache.EntityEvent)
	if _, ok := store.Get(context.Background(), routes.AdminEvents); ok {
		t.Fatal("invalidation left the entry in place")
	}

	doGet(t, app, "/v1/events")
	if hits != 2 {
		t.Errorf("hits after invalidation = %d, want a fresh render", hits)
	}
	if _, ok := store.Get(context.Background(), routes.AdminEvents); !ok {
		t.Error("fresh render was not re-cached")
	}
}

func TestCacheViewBypassesParameterizedRequests(t *testing.T) {
	store := newFakeViewStore()
	hits := 0
	app := newCachedRouter(store, &hits, http.StatusOK)

	doGet(t, app, "/v1/events?page=2")
	doGet(t, app, "/v1/events?page=2")

	if hits != 2 {
		t.Errorf("hits = %d, parameterized reads must reach the handler", hits)
	}
	if len(store.data) != 0 {
		t.Errorf("parameterized render was cached: %v", store.data)
	}
}

func TestCacheViewSkipsErrorResponses(t *testing.T) {
	store := newFakeViewStore()
	hits := 0
	app := newCachedRouter(store, &hits, http.StatusInternalServerError)

	doGet(t, app, "/v1/events")
	doGet(t, app, "/v1/events")

	if hits != 2 {
		t.Errorf("hits = %d, failed renders must not be served from cache", hits)
	}
	if len(store.data) != 0 {
		t.Errorf("failed render was cached: %v", store.data)
	}
}

func TestCacheViewNilStorePassesThrough(t *testing.T) {
	hits := 0
	app := newCachedRouter(nil, &hits, http.StatusOK)

	doGet(t, app, "/v1/events")
	doGet(t, app, "/v1/events")

	if hits != 2 {
		t.Errorf("hits = %d, nil store must disable caching", hits)
	}
}
