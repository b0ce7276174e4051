package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"travel_planner/internal/models"
	"travel_planner/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmptyPassword      = errors.New("password is empty")
	ErrPasswordTooLong    = errors.New("password must not exceed 72 bytes")
)

// AuthService handles signup, login and token verification.
type AuthService struct {
	users      repository.Users
	signingKey []byte
	tokenTTL   time.Duration
	now        func() time.Time
}

func NewAuthService(users repository.Users, signingKey string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
		now:        time.Now,
	}
}

// Claims is the token payload: {uid, iat, exp}.
type Claims struct {
	jwt.RegisteredClaims
	UID string `json:"uid"`
}

// SignUp creates the account and returns a token for it.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (AuthResult, error) {
	email := normalizeEmail(in.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if existing != nil {
		return AuthResult{}, ErrUserExists
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return AuthResult{}, err
	}

	user, err := s.users.Create(ctx, models.User{
		UID:          uuid.NewString(),
		Email:        email,
		DisplayName:  strings.TrimSpace(in.DisplayName),
		PasswordHash: hash,
	})
	if err != nil {
		// lost a race against a concurrent signup for the same email
		if errors.Is(err, repository.ErrDuplicate) {
			return AuthResult{}, ErrUserExists
		}
		return AuthResult{}, err
	}
	return s.authResult(user)
}

// Login verifies credentials. Unknown email and wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return AuthResult{}, err
	}
	if u == nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	return s.authResult(*u)
}

// ParseToken verifies signature and expiry and returns the uid claim.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UID == "" {
		return "", ErrInvalidToken
	}
	return claims.UID, nil
}

// GetProfile returns the caller's account.
func (s *AuthService) GetProfile(ctx context.Context, uid string) (models.User, error) {
	u, err := s.users.GetByUID(ctx, uid)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrUserNotFound
	}
	return *u, nil
}

// UpdateProfile changes the display name and/or password. The password is
// re-hashed only when a new one is supplied.
func (s *AuthService) UpdateProfile(ctx context.Context, uid string, in ProfileUpdate) (models.User, error) {
	var patch models.UserPatch
	if in.DisplayName != nil {
		name := strings.TrimSpace(*in.DisplayName)
		patch.DisplayName = &name
	}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return models.User{}, err
		}
		patch.PasswordHash = &hash
	}
	if patch.Empty() {
		return s.GetProfile(ctx, uid)
	}

	u, err := s.users.Update(ctx, uid, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	return u, err
}

func (s *AuthService) authResult(u models.User) (AuthResult, error) {
	token, err := s.issueToken(u.UID)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, User: u.Public()}, nil
}

func (s *AuthService) issueToken(uid string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UID: uid,
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

const maxPasswordBytes = 72

func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	// bcrypt's limit is in bytes; binding's max counts runes
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
