// Package wallet is the Redis-backed wallet connection provider. It owns
// the session state of every device; the core only reads its signal and
// asks it to start a connection.
package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"agent-battles-gateway/internal/core/domain"
	"agent-battles-gateway/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const subscriptionBuffer = 8

// Options configures the connection challenge.
type Options struct {
	AppName      string
	AppURL       string
	ChainID      int64
	ChallengeTTL time.Duration
}

// Provider implements ports.WalletProvider and ports.WalletRegistry.
type Provider struct {
	client   *goredis.Client
	nonces   ports.NonceStore
	verifier ports.SignatureVerifier
	opts     Options
	log      zerolog.Logger
}

// NewProvider creates a Redis-backed wallet provider.
func NewProvider(client *goredis.Client, nonces ports.NonceStore, verifier ports.SignatureVerifier, opts Options, log zerolog.Logger) *Provider {
	return &Provider{
		client:   client,
		nonces:   nonces,
		verifier: verifier,
		opts:     opts,
		log:      log,
	}
}

// Signal returns the connection signal of one device.
func (p *Provider) Signal(deviceID string) ports.WalletSignal {
	return &deviceSignal{p: p, deviceID: deviceID}
}

// Connector returns the connection trigger of one device.
func (p *Provider) Connector(deviceID string) ports.WalletConnector {
	return &deviceConnector{p: p, deviceID: deviceID}
}

// PendingChallenge returns the open challenge of a device, or nil.
func (p *Provider) PendingChallenge(ctx context.Context, deviceID string) (*domain.ConnectChallenge, error) {
	raw, err := p.client.Get(ctx, challengeKey(deviceID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get challenge: %w", err)
	}

	var ch domain.ConnectChallenge
	if err := json.Unmarshal(raw, &ch); err != nil {
		return nil, fmt.Errorf("decoding challenge: %w", err)
	}
	return &ch, nil
}

// Complete connects the device once the wallet has signed the pending
// challenge. A bad signature leaves the challenge open.
func (p *Provider) Complete(ctx context.Context, deviceID, address, signature string) (domain.WalletSession, error) {
	ch, err := p.PendingChallenge(ctx, deviceID)
	if err != nil {
		return domain.WalletSession{}, err
	}
	if ch == nil {
		return domain.WalletSession{}, ports.ErrNoPendingChallenge
	}
	if !p.verifier.Verify(address, ch.Message, signature) {
		return domain.WalletSession{}, ports.ErrSignatureMismatch
	}

	fresh, err := p.nonces.CheckAndSet(ctx, deviceID, ch.Nonce, p.opts.ChallengeTTL)
	if err != nil {
		return domain.WalletSession{}, fmt.Errorf("burning challenge: %w", err)
	}
	if !fresh {
		return domain.WalletSession{}, ports.ErrChallengeReplayed
	}

	session := domain.WalletSession{
		Connected: true,
		Address:   common.HexToAddress(address).Hex(),
	}

	pipe := p.client.TxPipeline()
	version := pipe.HIncrBy(ctx, sessionKey(deviceID), "version", 1)
	pipe.HSet(ctx, sessionKey(deviceID), "connected", "1", "address", session.Address)
	pipe.Del(ctx, challengeKey(deviceID))
	if _, err := pipe.Exec(ctx); err != nil {
		return domain.WalletSession{}, fmt.Errorf("redis store session: %w", err)
	}
	session.Version = version.Val()

	p.publish(ctx, deviceID, session)
	return session, nil
}

// Disconnect drops the device's session.
func (p *Provider) Disconnect(ctx context.Context, deviceID string) error {
	pipe := p.client.TxPipeline()
	version := pipe.HIncrBy(ctx, sessionKey(deviceID), "version", 1)
	pipe.HSet(ctx, sessionKey(deviceID), "connected", "0", "address", "")
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis clear session: %w", err)
	}
	p.publish(ctx, deviceID, domain.WalletSession{Version: version.Val()})
	return nil
}

func (p *Provider) current(ctx context.Context, deviceID string) (domain.WalletSession, error) {
	vals, err := p.client.HGetAll(ctx, sessionKey(deviceID)).Result()
	if err != nil {
		return domain.WalletSession{}, fmt.Errorf("redis get session: %w", err)
	}
	version, _ := strconv.ParseInt(vals["version"], 10, 64)
	if vals["connected"] != "1" {
		return domain.WalletSession{Version: version}, nil
	}
	return domain.WalletSession{Connected: true, Address: vals["address"], Version: version}, nil
}

func (p *Provider) requestConnection(ctx context.Context, deviceID string) error {
	now := time.Now().UTC()
	nonce := uuid.New().String()
	ch := domain.ConnectChallenge{
		Nonce:     nonce,
		Message:   p.challengeMessage(nonce, now),
		ChainID:   p.opts.ChainID,
		ExpiresAt: now.Add(p.opts.ChallengeTTL),
	}

	raw, err := json.Marshal(ch)
	if err != nil {
		return fmt.Errorf("encoding challenge: %w", err)
	}
	if err := p.client.Set(ctx, challengeKey(deviceID), raw, p.opts.ChallengeTTL).Err(); err != nil {
		return fmt.Errorf("redis store challenge: %w", err)
	}
	return nil
}

func (p *Provider) challengeMessage(nonce string, issuedAt time.Time) string {
	return fmt.Sprintf("%s wants you to connect your wallet.\n\nURI: %s\nChain ID: %d\nNonce: %s\nIssued At: %s",
		p.opts.AppName, p.opts.AppURL, p.opts.ChainID, nonce, issuedAt.Format(time.RFC3339))
}

// publish is best effort: subscribers that miss it still see the new
// session on their next read.
func (p *Provider) publish(ctx context.Context, deviceID string, s domain.WalletSession) {
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := p.client.Publish(ctx, eventsChannel(deviceID), raw).Err(); err != nil {
		p.log.Warn().Err(err).Str("device_id", deviceID).Msg("wallet session publish failed")
	}
}

func (p *Provider) subscribe(ctx context.Context, deviceID string) (<-chan domain.WalletSession, error) {
	pubsub := p.client.Subscribe(ctx, eventsChannel(deviceID))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("redis subscribe: %w", err)
	}

	out := make(chan domain.WalletSession, subscriptionBuffer)
	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var s domain.WalletSession
				if err := json.Unmarshal([]byte(msg.Payload), &s); err != nil {
					p.log.Warn().Err(err).Str("device_id", deviceID).Msg("dropping malformed wallet event")
					continue
				}
				select {
				case out <- s:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func sessionKey(deviceID string) string    { return "wallet:session:" + deviceID }
func challengeKey(deviceID string) string  { return "wallet:challenge:" + deviceID }
func eventsChannel(deviceID string) string { return "wallet:events:" + deviceID }

type deviceSignal struct {
	p        *Provider
	deviceID string
}

func (s *deviceSignal) Current(ctx context.Context) (domain.WalletSession, error) {
	return s.p.current(ctx, s.deviceID)
}

func (s *deviceSignal) Subscribe(ctx context.Context) (<-chan domain.WalletSession, error) {
	return s.p.subscribe(ctx, s.deviceID)
}

type deviceConnector struct {
	p        *Provider
	deviceID string
}

func (c *deviceConnector) RequestConnection(ctx context.Context) error {
	return c.p.requestConnection(ctx, c.deviceID)
}
