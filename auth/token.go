package auth

import (
	"errors"
	"time"

	"SecureEHealth/role"
	"SecureEHealth/util"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the session lifetime used when none is configured.
const DefaultTokenTTL = 480 * time.Minute

// Claims is the signed session payload. It is never persisted.
type Claims struct {
	UserID string    `json:"user_id"`
	Role   role.Role `json:"role"`
	Name   string    `json:"name"`
	jwt.RegisteredClaims
}

// Identity is what a caller supplies to Issue.
type Identity struct {
	AccountID string
	Role      role.Role
	Name      string
}

// TokenService signs and checks HS256 session tokens with one immutable secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type TokenOption func(*TokenService)

// WithClock replaces time.Now for both issuance and validation.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

func NewTokenService(secret string, ttl time.Duration, opts ...TokenOption) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	s := &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

func (s *TokenService) Issue(id Identity) (string, error) {
	issuedAt := s.now()
	claims := Claims{
		UserID: id.AccountID,
		Role:   id.Role,
		Name:   id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate maps every parser failure onto InvalidToken, ExpiredToken or MalformedToken.
func (s *TokenService) Validate(raw string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)

	claims := &Claims{}
	tok, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, util.Wrap(util.MalformedToken, util.TOKEN_MALFORMED, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, util.Wrap(util.ExpiredToken, util.TOKEN_EXPIRED, err)
		default:
			return nil, util.Wrap(util.InvalidToken, util.TOKEN_INVALID, err)
		}
	}
	if !tok.Valid {
		return nil, util.E(util.InvalidToken, util.TOKEN_INVALID)
	}
	if claims.UserID == "" || !claims.Role.Valid() || claims.IssuedAt == nil {
		return nil, util.E(util.MalformedToken, util.TOKEN_MALFORMED)
	}
	return claims, nil
}
