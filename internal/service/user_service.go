package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quizhub/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type UserService struct {
	users         UserStore
	jwtSecret     []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewUserService(users UserStore, jwtSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *UserService {
	return &UserService{
		users:         users,
		jwtSecret:     []byte(jwtSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// Register creates an account. An empty role defaults to USER; the boundary
// restricts the accepted values, so passing ADMIN here is the bootstrap path
// for the first administrator.
func (s *UserService) Register(ctx context.Context, name, email, password, role string) (*models.User, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, models.ErrEmailTaken
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	if role == "" {
		role = models.RoleUser
	}
	now := s.now()
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrUserNotFound) {
		return nil, nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, models.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, nil, models.ErrUserInactive
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	user.RefreshToken = pair.RefreshToken
	if err := s.users.Update(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("persisting refresh token: %w", err)
	}
	return user, pair, nil
}

// Refresh rotates the token pair. The presented refresh token must be the one
// last issued to the user; anything else is rejected.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.refreshSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, models.ErrInvalidToken
	}
	if user.RefreshToken != refreshToken {
		return nil, models.ErrInvalidToken
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}
	user.RefreshToken = pair.RefreshToken
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("persisting refresh token: %w", err)
	}
	return pair, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) UpdateProfile(ctx context.Context, id, name string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = name
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeactivateUser(ctx context.Context, id string) error {
	return s.users.Deactivate(ctx, id)
}

func (s *UserService) issueTokens(user *models.User) (*TokenPair, error) {
	access, err := s.signToken(user, s.jwtSecret, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}
	refresh, err := s.signToken(user, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("signing refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *UserService) signToken(user *models.User, secret []byte, ttl time.Duration) (string, error) {
	now := s.now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "quizhub",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
