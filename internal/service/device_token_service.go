package service

import (
	"fmt"
	"time"

	"agent-battles-gateway/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTDeviceTokenService implements ports.DeviceTokenService using HS256 JWT.
// The token is the browser's identity for durable storage; it carries no
// user data beyond the device id.
type JWTDeviceTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// NewJWTDeviceTokenService creates a new device token service.
func NewJWTDeviceTokenService(secret string, expiry time.Duration, issuer string) *JWTDeviceTokenService {
	return &JWTDeviceTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
	}
}

// Issue signs a token for deviceID.
func (s *JWTDeviceTokenService) Issue(deviceID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := jwt.RegisteredClaims{
		Subject:   deviceID,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing device token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate parses a device token and returns what it asserts. Tokens without
// an expiry are rejected.
func (s *JWTDeviceTokenService) Validate(tokenString string) (domain.DeviceClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return domain.DeviceClaims{}, fmt.Errorf("parsing device token: %w", err)
	}
	if !token.Valid {
		return domain.DeviceClaims{}, fmt.Errorf("invalid device token")
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return domain.DeviceClaims{}, fmt.Errorf("invalid device id in token: %w", err)
	}

	out := domain.DeviceClaims{DeviceID: claims.Subject, ExpiresAt: claims.ExpiresAt.Time}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}
