package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// TokenTypeAccess marks tokens that may call the API. Refresh tokens are rejected.
const TokenTypeAccess = "access"

// Claims mirrors the claims minted by the identity provider.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string   `json:"user_id"`
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Type     string   `json:"type"` // "access" or "refresh"
}

// Verifier validates RS256 tokens against the identity provider's public key.
// It never talks to the provider; only the key is shared.
type Verifier struct {
	publicKey *rsa.PublicKey
	issuer    string
}

// NewVerifier parses a PEM encoded RSA public key.
func NewVerifier(publicKeyPEM []byte, issuer string) (*Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("parse jwt public key: %w", err)
	}
	return NewVerifierFromKey(key, issuer), nil
}

// NewVerifierFromKey creates a verifier from an already parsed key.
func NewVerifierFromKey(key *rsa.PublicKey, issuer string) *Verifier {
	return &Verifier{publicKey: key, issuer: issuer}
}

// ValidateToken validates a token and returns its claims.
func (v *Verifier) ValidateToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return v.publicKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != "" && claims.Type != TokenTypeAccess {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Signer mints access tokens. Production tokens come from the identity
// provider; the signer backs local tooling and tests.
type Signer struct {
	privateKey     *rsa.PrivateKey
	issuer         string
	accessDuration time.Duration
}

// GenerateKey creates a fresh 2048-bit RSA key pair.
func GenerateKey() (*rsa.PrivateKey, error) {
	return rsa.GenerateKey(rand.Reader, 2048)
}

// NewSigner creates a signer for the given key.
func NewSigner(privateKey *rsa.PrivateKey, issuer string, accessDuration time.Duration) *Signer {
	return &Signer{
		privateKey:     privateKey,
		issuer:         issuer,
		accessDuration: accessDuration,
	}
}

// Verifier returns a verifier bound to the signer's public key.
func (s *Signer) Verifier() *Verifier {
	return NewVerifierFromKey(&s.privateKey.PublicKey, s.issuer)
}

// IssueAccessToken signs an access token for the given user.
func (s *Signer) IssueAccessToken(userID, username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessDuration)),
		},
		UserID:   userID,
		Username: username,
		Type:     TokenTypeAccess,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(s.privateKey)
}
