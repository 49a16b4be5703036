package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/efriedrich/movie-api/internal/config"
)

func testCacheConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:      true,
		TTL:          time.Minute,
		Prefix:       "cache",
		MaxBodyBytes: 1 << 20,
	}
}

// keyFor builds a context the way Echo does for a routed request: the
// registered pattern is the same for every title, only the URL differs.
func keyFor(e *echo.Echo, target string) string {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/movies/:title")
	return cacheKey("cache", c)
}

func TestCacheKey_DistinctPerRequestPath(t *testing.T) {
	t.Parallel()

	e := echo.New()
	casablanca := keyFor(e, "/movies/Casablanca")
	inception := keyFor(e, "/movies/Inception")

	// Two titles routed through the same pattern must never share an entry.
	assert.NotEqual(t, casablanca, inception)
	// The same lookup must keep hitting the same entry.
	assert.Equal(t, casablanca, keyFor(e, "/movies/Casablanca"))
}

func TestCacheKey_DistinctPerQuery(t *testing.T) {
	t.Parallel()

	e := echo.New()
	assert.NotEqual(t, keyFor(e, "/movies?sort=title"), keyFor(e, "/movies"))
}

func TestCatalogCache_PassThroughWithoutRedis(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.GET("/movies", func(c echo.Context) error {
		return c.String(http.StatusOK, "catalog")
	}, CatalogCache(testCacheConfig(), nil))

	rec := doRequest(e, http.MethodGet, "/movies", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "catalog", rec.Body.String())
	// Without a client there is no cache in play at all.
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestCatalogCache_DisabledPassThrough(t *testing.T) {
	t.Parallel()

	cfg := testCacheConfig()
	cfg.Enabled = false

	e := echo.New()
	e.GET("/movies", func(c echo.Context) error {
		return c.String(http.StatusOK, "catalog")
	}, CatalogCache(cfg, nil))

	rec := doRequest(e, http.MethodGet, "/movies", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "catalog", rec.Body.String())
}

func TestLoginRateLimit_PassThroughWithoutRedis(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.POST("/login", func(c echo.Context) error {
		return c.String(http.StatusOK, "in")
	}, LoginRateLimit(config.LoadRateLimitConfig(), nil))

	// A broken or absent limiter must fail open, never lock logins out.
	for range 3 {
		rec := doRequest(e, http.MethodPost, "/login", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "in", rec.Body.String())
	}
}
