package handler_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"agent-battles-gateway/internal/adapter/http/handler"
	"agent-battles-gateway/internal/adapter/http/middleware"
	"agent-battles-gateway/internal/adapter/storage/memory"
	redisStore "agent-battles-gateway/internal/adapter/storage/redis"
	"agent-battles-gateway/internal/adapter/wallet"
	"agent-battles-gateway/internal/core/domain"
	"agent-battles-gateway/internal/core/ports"
	"agent-battles-gateway/internal/service"
	"agent-battles-gateway/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires the real router, services and Redis adapters on miniredis.
type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
	tokens *service.JWTDeviceTokenService
	audits *recordingAuditRepo
}

type recordingAuditRepo struct {
	mu      sync.Mutex
	entries []domain.AuditLog
}

func (r *recordingAuditRepo) Create(_ context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *log)
	return nil
}

func (r *recordingAuditRepo) actions() []domain.AuditAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.AuditAction
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

func newTestApp(t *testing.T, storage ports.DeviceStorage) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	if storage == nil {
		storage = redisStore.NewDeviceStorage(rdb)
	}

	log := logger.New("debug", false)
	tokens := service.NewJWTDeviceTokenService("test-device-secret-32-bytes!!!!!", time.Hour, "agent-battles-test")
	provider := wallet.NewProvider(rdb, redisStore.NewNonceStore(rdb), service.NewEthSignatureVerifier(), wallet.Options{
		AppName:      "Agent Battles",
		AppURL:       "https://agent-battles.vercel.app",
		ChainID:      8453,
		ChallengeTTL: 5 * time.Minute,
	}, log)
	audits := &recordingAuditRepo{}

	router := handler.SetupRouter(handler.RouterDeps{
		Mode: gin.TestMode,
		App: domain.AppInfo{
			Name:            "Agent Battles",
			ChainID:         8453,
			Network:         "Base Mainnet",
			ContractAddress: "0x0000000000000000000000000000000000000000",
		},
		ConsentSvc:     service.NewConsentService(storage, log),
		WalletSvc:      service.NewWalletSessionService(provider, provider, log),
		TokenSvc:       tokens,
		Cookie:         middleware.CookieOptions{Name: "abg_device"},
		RateLimitStore: redisStore.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{redisStore.NewHealthCheck(rdb)},
		AuditSvc:       service.NewAuditService(audits, log),
		Logger:         log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{server: server, redis: mr, tokens: tokens, audits: audits}
}

// newBrowser returns a client that keeps its device cookie like a browser.
func newBrowser(t *testing.T) *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar, Timeout: 5 * time.Second}
}

func call(t *testing.T, client *http.Client, method, url string, body interface{}, out interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return resp
}

type pageBody struct {
	Consent struct {
		Dismissed    bool `json:"dismissed"`
		ModalVisible bool `json:"modal_visible"`
	} `json:"consent"`
	Disclaimer *domain.Disclaimer `json:"disclaimer"`
	Wallet     struct {
		Kind    string `json:"kind"`
		Label   string `json:"label"`
		Address string `json:"address"`
	} `json:"wallet"`
	App domain.AppInfo `json:"app"`
}

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t, nil)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestSetupRouter_AppliesConfiguredMode(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	newTestApp(t, nil)
	assert.Equal(t, gin.TestMode, gin.Mode())
}

func TestIntegration_DisclaimerShownOncePerBrowser(t *testing.T) {
	app := newTestApp(t, nil)
	browser := newBrowser(t)

	var first pageBody
	resp := call(t, browser, http.MethodGet, app.server.URL+"/api/v1/page", nil, &first)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, first.Consent.ModalVisible)
	require.NotNil(t, first.Disclaimer)
	assert.Equal(t, "I Understand the Risks", first.Disclaimer.ConfirmLabel)
	assert.True(t, first.App.DeploymentPending)

	claims, err := app.tokens.Validate(resp.Header.Get(middleware.HeaderDeviceToken))
	require.NoError(t, err)
	deviceID := claims.DeviceID

	resp = call(t, browser, http.MethodPost, app.server.URL+"/api/v1/consent/acknowledge", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stored, err := app.redis.Get("device:" + deviceID + ":" + domain.AcknowledgmentKey)
	require.NoError(t, err)
	assert.Equal(t, "true", stored)

	var reload pageBody
	call(t, browser, http.MethodGet, app.server.URL+"/api/v1/page", nil, &reload)
	assert.False(t, reload.Consent.ModalVisible)
	assert.True(t, reload.Consent.Dismissed)
	assert.Nil(t, reload.Disclaimer)

	var other pageBody
	call(t, newBrowser(t), http.MethodGet, app.server.URL+"/api/v1/page", nil, &other)
	assert.True(t, other.Consent.ModalVisible, "a different browser has its own storage")

	require.Eventually(t, func() bool {
		for _, a := range app.audits.actions() {
			if a == domain.AuditActionAcknowledge {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestIntegration_StorageUnavailableShowsModalEveryLoad(t *testing.T) {
	app := newTestApp(t, memory.Unavailable{})
	browser := newBrowser(t)

	for i := 0; i < 2; i++ {
		var page pageBody
		call(t, browser, http.MethodGet, app.server.URL+"/api/v1/page", nil, &page)
		assert.True(t, page.Consent.ModalVisible, "load %d", i)

		var ack struct {
			ModalVisible bool `json:"modal_visible"`
		}
		resp := call(t, browser, http.MethodPost, app.server.URL+"/api/v1/consent/acknowledge", nil, &ack)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.False(t, ack.ModalVisible)
	}
}

func TestIntegration_WalletConnectFlow(t *testing.T) {
	app := newTestApp(t, nil)
	browser := newBrowser(t)
	base := app.server.URL + "/api/v1/wallet"

	var session struct {
		Kind  string `json:"kind"`
		Label string `json:"label"`
	}
	call(t, browser, http.MethodGet, base+"/session", nil, &session)
	assert.Equal(t, "connect", session.Kind)
	assert.Equal(t, domain.ConnectLabel, session.Label)

	var connect struct {
		Challenge *struct {
			Message string `json:"message"`
			ChainID int64  `json:"chain_id"`
		} `json:"challenge"`
	}
	resp := call(t, browser, http.MethodPost, base+"/connect", nil, &connect)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.NotNil(t, connect.Challenge)
	assert.Equal(t, int64(8453), connect.Challenge.ChainID)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	sig, err := crypto.Sign(accounts.TextHash([]byte(connect.Challenge.Message)), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()

	var connected struct {
		Kind    string `json:"kind"`
		Label   string `json:"label"`
		Address string `json:"address"`
	}
	resp = call(t, browser, http.MethodPost, base+"/callback", map[string]string{
		"address":   address,
		"signature": hexutil.Encode(sig),
	}, &connected)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "connected", connected.Kind)
	assert.Equal(t, domain.ConnectedLabel, connected.Label)
	assert.Equal(t, address, connected.Address)

	// Replaying the callback finds no pending challenge.
	raw, err := json.Marshal(map[string]string{"address": address, "signature": hexutil.Encode(sig)})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, base+"/callback", bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err = browser.Do(req)
	require.NoError(t, err)
	var replay struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&replay))
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "WALLET_001", replay.ErrorCode)

	// Activating the connected indicator does nothing.
	resp = call(t, browser, http.MethodPost, base+"/connect", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	call(t, browser, http.MethodPost, base+"/disconnect", nil, nil)
	call(t, browser, http.MethodGet, base+"/session", nil, &session)
	assert.Equal(t, "connect", session.Kind)
}

func TestIntegration_WalletStreamFollowsProvider(t *testing.T) {
	app := newTestApp(t, nil)
	browser := newBrowser(t)
	base := app.server.URL + "/api/v1/wallet"

	// Resolve the device first so the stream and the callbacks share it.
	call(t, browser, http.MethodGet, base+"/session", nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/session/stream", nil)
	require.NoError(t, err)
	streamClient := &http.Client{Jar: browser.Jar}
	resp, err := streamClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events := make(chan string, 8)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			if line := scanner.Text(); strings.HasPrefix(line, "data:") {
				events <- strings.TrimPrefix(line, "data:")
			}
		}
		close(events)
	}()

	next := func() string {
		select {
		case e := <-events:
			return e
		case <-time.After(3 * time.Second):
			t.Fatal("no stream event")
			return ""
		}
	}

	assert.Contains(t, next(), `"kind":"connect"`)

	var connect struct {
		Challenge struct {
			Message string `json:"message"`
		} `json:"challenge"`
	}
	call(t, browser, http.MethodPost, base+"/connect", nil, &connect)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	sig, err := crypto.Sign(accounts.TextHash([]byte(connect.Challenge.Message)), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27

	call(t, browser, http.MethodPost, base+"/callback", map[string]string{
		"address":   crypto.PubkeyToAddress(key.PublicKey).Hex(),
		"signature": hexutil.Encode(sig),
	}, nil)
	assert.Contains(t, next(), `"kind":"connected"`)

	call(t, browser, http.MethodPost, base+"/disconnect", nil, nil)
	assert.Contains(t, next(), `"kind":"connect"`)
}

func TestIntegration_ForgedDeviceHeaderRejected(t *testing.T) {
	app := newTestApp(t, nil)

	req, err := http.NewRequest(http.MethodGet, app.server.URL+"/api/v1/consent", nil)
	require.NoError(t, err)
	req.Header.Set(middleware.HeaderDeviceToken, "not-a-token")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_CookielessClientsAreRateLimitedByIP(t *testing.T) {
	app := newTestApp(t, nil)
	client := &http.Client{Timeout: 5 * time.Second}

	accepted, limited := 0, 0
	for i := 0; i < 25; i++ {
		resp := call(t, client, http.MethodPost, app.server.URL+"/api/v1/wallet/connect", nil, nil)
		switch resp.StatusCode {
		case http.StatusAccepted:
			accepted++
		case http.StatusTooManyRequests:
			limited++
		default:
			t.Fatalf("unexpected status %d", resp.StatusCode)
		}
	}

	// A fixed window may roll over mid-run, so at most two windows' worth
	// get through.
	assert.LessOrEqual(t, accepted, 20)
	assert.GreaterOrEqual(t, limited, 5)
	assert.LessOrEqual(t, len(app.redis.Keys()), 2*accepted+4, "rejected requests leave no challenge behind")
}
