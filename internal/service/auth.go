package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidAPIKey = errors.New("invalid API key")
	ErrWeakAPIKey    = errors.New("API key must be at least 24 characters")
)

const minAPIKeyLength = 24

// AuthService checks API keys against a bcrypt hash. With no hash
// configured every request is allowed.
type AuthService struct {
	hash []byte

	// bcrypt is slow on purpose; remember the digest of the last key that
	// matched so steady clients pay for it once.
	mu       sync.RWMutex
	accepted []byte
}

func NewAuthService(apiKeyHash string) (*AuthService, error) {
	if apiKeyHash == "" {
		return &AuthService{}, nil
	}
	if _, err := bcrypt.Cost([]byte(apiKeyHash)); err != nil {
		return nil, fmt.Errorf("API_KEY_HASH is not a bcrypt hash: %w", err)
	}
	return &AuthService{hash: []byte(apiKeyHash)}, nil
}

func (s *AuthService) Enabled() bool {
	return len(s.hash) > 0
}

func (s *AuthService) ValidateAPIKey(key string) error {
	if !s.Enabled() {
		return nil
	}
	if key == "" {
		return ErrInvalidAPIKey
	}

	digest := sha256.Sum256([]byte(key))
	s.mu.RLock()
	cached := s.accepted
	s.mu.RUnlock()
	if cached != nil && hmac.Equal(cached, digest[:]) {
		return nil
	}

	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(key)); err != nil {
		return ErrInvalidAPIKey
	}

	s.mu.Lock()
	s.accepted = digest[:]
	s.mu.Unlock()
	return nil
}

// HashAPIKey produces the value to put in API_KEY_HASH.
func HashAPIKey(key string) (string, error) {
	if len(key) < minAPIKeyLength {
		return "", ErrWeakAPIKey
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
