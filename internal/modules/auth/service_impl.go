package auth

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/autandojam/inventory-backend/internal/modules/user"
	"github.com/dgrijalva/jwt-go"
)

type service struct {
	users         user.Service
	jwtKey        []byte
	tokenLifetime time.Duration
}

// NewService creates a new auth service. The signing key comes from JWT_SECRET and
// the token lifetime from JWT_EXPIRATION_HOURS (default 24).
func NewService(users user.Service) Service {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-in-production-min-32-chars"
	}
	hours, err := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return &service{
		users:         users,
		jwtKey:        []byte(secret),
		tokenLifetime: time.Duration(hours) * time.Hour,
	}
}

func (s *service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !s.users.ValidatePassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, ErrInactiveAccount
	}

	claims := jwt.MapClaims{
		"sub":    u.Username,
		"userId": u.ID.String(),
		"role":   u.Role,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(s.tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:    tokenString,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	}, nil
}

func (s *service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	if v, ok := mapClaims["sub"].(string); ok {
		claims.Username = v
	}
	if v, ok := mapClaims["userId"].(string); ok {
		claims.UserID = v
	}
	if v, ok := mapClaims["role"].(string); ok {
		claims.Role = v
	}
	if claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
