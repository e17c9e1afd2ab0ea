package server

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/apivault/apivault/models"
)

type account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash []byte
}

// authManager owns the account registry and the JWT lifecycle of the
// reference server.
type authManager struct {
	signKey  []byte
	issuer   string
	duration time.Duration

	mu       sync.RWMutex
	accounts map[string]*account // keyed by email
}

func newAuthManager(signKey, issuer string, duration time.Duration) *authManager {
	return &authManager{
		signKey:  []byte(signKey),
		issuer:   issuer,
		duration: duration,
		accounts: make(map[string]*account),
	}
}

func (a *authManager) register(email, password, name string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.accounts[email]; exists {
		return models.User{}, ErrEmailAlreadyExists
	}

	acc := &account{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}
	a.accounts[email] = acc

	return models.User{ID: acc.ID, Email: acc.Email, Name: acc.Name}, nil
}

func (a *authManager) login(email, password string) (models.User, error) {
	a.mu.RLock()
	acc, ok := a.accounts[email]
	a.mu.RUnlock()
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return models.User{ID: acc.ID, Email: acc.Email, Name: acc.Name}, nil
}

func (a *authManager) mintToken(user models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"iss":   a.issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(a.duration).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.signKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// parseToken validates the signature and expiry and returns the account id.
func (a *authManager) parseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.signKey, nil
	}, jwt.WithIssuer(a.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return sub, nil
}

func getTokenFromAuthHeader(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
