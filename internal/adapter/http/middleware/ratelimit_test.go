package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agent-battles-gateway/internal/adapter/http/middleware"
	redisStore "agent-battles-gateway/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// setupRateLimitRouter stands in for DeviceIdentity by trusting the
// X-Test-Device header.
func setupRateLimitRouter(store *redisStore.RateLimitStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	log := zerolog.Nop()

	r.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-Test-Device"); id != "" {
			c.Set(middleware.CtxDeviceID, id)
		}
		if c.GetHeader("X-Test-New") != "" {
			c.Set(middleware.CtxDeviceNew, true)
		}
		c.Next()
	})
	r.GET("/test", middleware.RateLimiter(store, "test", rule, log), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func newRateLimitStore(t *testing.T) (*redisStore.RateLimitStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisStore.NewRateLimitStore(client), mr
}

func doGet(router *gin.Engine, device string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
	if device != "" {
		req.Header.Set("X-Test-Device", device)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	store, _ := newRateLimitStore(t)
	router := setupRateLimitRouter(store)

	for i := 0; i < 3; i++ {
		w := doGet(router, "")
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	store, _ := newRateLimitStore(t)
	router := setupRateLimitRouter(store)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, doGet(router, "").Code)
	}

	w := doGet(router, "")
	assert.Equal(t, 429, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiter_KeyedByDevice(t *testing.T) {
	store, _ := newRateLimitStore(t)
	router := setupRateLimitRouter(store)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, doGet(router, "device-a").Code)
	}
	assert.Equal(t, 429, doGet(router, "device-a").Code)

	// Independent counter
	assert.Equal(t, 200, doGet(router, "device-b").Code)
}

func TestRateLimiter_NewDevicesShareTheIPLimit(t *testing.T) {
	store, _ := newRateLimitStore(t)
	router := setupRateLimitRouter(store)

	newDevice := func(id string) int {
		w := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(context.Background(), "GET", "/test", nil)
		req.Header.Set("X-Test-Device", id)
		req.Header.Set("X-Test-New", "1")
		router.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, newDevice(fmt.Sprintf("minted-%d", i)))
	}
	assert.Equal(t, 429, newDevice("minted-3"), "dropping the cookie does not reset the limit")
	assert.Equal(t, 429, doGet(router, "").Code, "same IP counter")
}

func TestRateLimiter_DegradedModeAllows(t *testing.T) {
	store, mr := newRateLimitStore(t)
	router := setupRateLimitRouter(store)
	mr.Close()

	w := doGet(router, "device-a")
	assert.Equal(t, 200, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimiter_NilStoreDisables(t *testing.T) {
	router := setupRateLimitRouter(nil)

	for i := 0; i < 10; i++ {
		assert.Equal(t, 200, doGet(router, "device-a").Code)
	}
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules()
	assert.Equal(t, int64(120), rules["read"].Limit)
	assert.Equal(t, int64(30), rules["consent"].Limit)
	assert.Equal(t, int64(10), rules["wallet_connect"].Limit)
	assert.Equal(t, int64(10), rules["wallet_callback"].Limit)
	assert.Equal(t, int64(20), rules["wallet_stream"].Limit)
}
