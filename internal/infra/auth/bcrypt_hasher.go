// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"strings"
	"unicode"

	"enginex/config"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMinPasswordLength = 8
	defaultMaxPasswordLength = 72 // bcrypt ignores bytes beyond 72
)

var forbiddenPasswordWords = []string{"password", "motdepasse", "enginex", "azerty", "123456"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher builds a hasher from the auth and passwordStrength sections.
// Missing sections fall back to bcrypt.DefaultCost and an 8 character minimum.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	strength := config.PasswordStrengthConfig{MinLength: defaultMinPasswordLength, MaxLength: defaultMaxPasswordLength}
	if cfg != nil && cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
	}
	if strength.MinLength <= 0 {
		strength.MinLength = defaultMinPasswordLength
	}
	if strength.MaxLength <= 0 || strength.MaxLength > defaultMaxPasswordLength {
		strength.MaxLength = defaultMaxPasswordLength
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidateStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidateStrength checks the configured rules in order and reports the first failure.
func (h *bcryptHasher) ValidateStrength(password string) error {
	length := len([]rune(password))
	switch {
	case length < h.strength.MinLength:
		return weakPassword("must be at least " + strconv.Itoa(h.strength.MinLength) + " characters long")
	case len(password) > h.strength.MaxLength:
		return weakPassword("must be at most " + strconv.Itoa(h.strength.MaxLength) + " bytes long")
	case h.strength.RequireLowercase && !hasRune(password, unicode.IsLower):
		return weakPassword("must contain at least one lowercase letter")
	case h.strength.RequireUppercase && !hasRune(password, unicode.IsUpper):
		return weakPassword("must contain at least one uppercase letter")
	case h.strength.RequireNumbers && !hasRune(password, unicode.IsDigit):
		return weakPassword("must contain at least one number")
	case h.strength.RequireSpecial && !hasRune(password, isSpecial):
		return weakPassword("must contain at least one special character")
	case !hasRune(password, unicode.IsLetter) && !hasRune(password, unicode.IsDigit):
		return weakPassword("must contain letters or numbers")
	case containsForbiddenWords(password, forbiddenPasswordWords):
		return weakPassword("contains forbidden words")
	}

	return nil
}

func weakPassword(details string) error {
	return domainerrors.ErrPasswordStrength.WithDetails("password " + details)
}

func hasRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func containsForbiddenWords(password string, words []string) bool {
	lower := strings.ToLower(password)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
