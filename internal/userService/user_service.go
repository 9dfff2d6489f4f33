package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/config"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"
)

// UserService handles account registration, login and token verification.
// Every other request trusts the user id this service extracts from the
// token; credentials are never re-checked downstream.
type UserService struct {
	repo repository.UserDB
	cfg  config.AuthConfig
}

// NewUserService creates a new UserService instance
func NewUserService(repo repository.UserDB, cfg config.AuthConfig) *UserService {
	return &UserService{
		repo: repo,
		cfg:  cfg,
	}
}

// Register validates and stores a new account with a salted password hash
func (s *UserService) Register(name, surname, email, password string) (models.User, error) {
	if err := validateRegistration(name, surname, email, password); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	account := models.User{
		UserID:       utils.GenerateID(),
		Name:         name,
		Surname:      surname,
		Email:        email,
		Password:     string(hash),
		RegisteredOn: time.Now().Unix(),
	}

	created, err := s.repo.CreateUser(account)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrEmailTaken) {
			return models.User{}, fmt.Errorf("service: %w", auctionerrors.ErrEmailTaken)
		}
		return models.User{}, fmt.Errorf("service: failed to create user %s: %w", email, err)
	}
	return created, nil
}

// Login checks credentials and issues a signed token carrying the user id
func (s *UserService) Login(email, password string) (string, error) {
	account, err := s.repo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrUserNotFound) {
			return "", fmt.Errorf("service: %w", auctionerrors.ErrUserNotFound)
		}
		return "", fmt.Errorf("service: failed to look up user %s: %w", email, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("service: %w", auctionerrors.ErrWrongPassword)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"_id": account.UserID,
		"iat": now.Unix(),
		"exp": now.Add(s.cfg.TokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.TokenSecret))
	if err != nil {
		return "", fmt.Errorf("service: failed to sign token for user %s: %w", account.UserID, err)
	}
	return token, nil
}

// VerifyToken parses a token and returns the user id it carries
func (s *UserService) VerifyToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.TokenSecret), nil
	})
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("service: %w", auctionerrors.ErrInvalidToken)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("service: %w", auctionerrors.ErrInvalidToken)
	}
	userID, ok := claims["_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("service: %w - missing subject", auctionerrors.ErrInvalidToken)
	}
	return userID, nil
}

// Details returns the profile of an account
func (s *UserService) Details(userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidUser)
	}

	account, err := s.repo.GetUserByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return account, nil
}

func validateRegistration(name, surname, email, password string) error {
	if len(name) < 3 || len(name) > 255 {
		return fmt.Errorf("service: %w - name must be 3 to 255 characters", auctionerrors.ErrInvalidUser)
	}
	if len(surname) < 3 || len(surname) > 255 {
		return fmt.Errorf("service: %w - surname must be 3 to 255 characters", auctionerrors.ErrInvalidUser)
	}
	if len(email) < 6 || len(email) > 255 || !strings.Contains(email, "@") {
		return fmt.Errorf("service: %w - email is not valid", auctionerrors.ErrInvalidUser)
	}
	if len(password) < 6 {
		return fmt.Errorf("service: %w - password must be at least 6 characters", auctionerrors.ErrInvalidUser)
	}
	return nil
}
