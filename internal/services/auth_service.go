package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/TanpaKamil/admin/internal/models"
	"github.com/TanpaKamil/admin/internal/repo"
	"github.com/TanpaKamil/admin/internal/utils"
)

// Claims binds exactly the authenticated identity: email and record id.
type Claims struct {
	Email  string `json:"email"`
	UserID string `json:"_id"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users  UserStore
	secret []byte
	expiry time.Duration
}

type LoginResult struct {
	AccessToken string
	Email       string
	UserID      string
	ExpiresAt   time.Time
}

func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), expiry: expiry}
}

// Login verifies the credentials and mints a session token. Unknown emails
// and wrong passwords fail the same way so the response leaks nothing about
// which one was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.Unauthorized("Invalid email or password")
		}
		return nil, utils.StorageError("Internal Server Error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, utils.Unauthorized("Invalid email or password")
	}

	if user.Role != models.RoleAdmin {
		return nil, utils.Forbidden("Access denied")
	}

	token, expiresAt, err := s.issueToken(user)
	if err != nil {
		return nil, utils.NewAppError(500, "INTERNAL_ERROR", "Internal Server Error")
	}

	return &LoginResult{
		AccessToken: token,
		Email:       user.Email,
		UserID:      user.ID.Hex(),
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *AuthService) issueToken(user *models.User) (string, time.Time, error) {
	issuedAt := time.Now()
	expiresAt := issuedAt.Add(s.expiry)
	claims := Claims{
		Email:  user.Email,
		UserID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Subject:   user.ID.Hex(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken verifies the signature and expiry of a session token.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
