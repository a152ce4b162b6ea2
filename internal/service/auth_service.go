package service

import (
	"errors"
	"strings"
	"time"

	"github.com/Sujal20805/Riddler/internal/apperr"
	"github.com/Sujal20805/Riddler/internal/dto"
	"github.com/Sujal20805/Riddler/internal/model"
	"github.com/Sujal20805/Riddler/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, apperr.Validation("Date of birth must be a valid date in YYYY-MM-DD format.")
	}

	existing, err := s.userRepo.FindByUsernameOrEmail(username, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("Register: failed to check existing user")
		return nil, apperr.Internal("Server error during registration", err)
	}
	if existing != nil {
		switch {
		case existing.Username == username && existing.Email == email:
			return nil, apperr.Validation("Username and Email already taken")
		case existing.Email == email:
			return nil, apperr.Validation("Email already taken")
		default:
			return nil, apperr.Validation("Username already taken")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Register: failed to hash password")
		return nil, apperr.Internal("Server error during registration", err)
	}

	user := model.User{
		Username:     username,
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		DateOfBirth:  &dob,
	}
	if err := s.userRepo.Create(&user); err != nil {
		// Unique indexes catch the race where two registrations pass the
		// pre-check with the same username or email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validation("Username or Email already taken")
		}
		log.Error().Err(err).Str("username", username).Msg("Register: failed to create user")
		return nil, apperr.Internal("Server error during registration", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Register: failed to issue token")
		return nil, apperr.Internal("Server error during registration", err)
	}

	log.Info().Str("username", user.Username).Uint("userID", user.ID).Msg("User registered")
	return &dto.AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Token:    token,
	}, nil
}

func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("Invalid username or password")
		}
		log.Error().Err(err).Str("username", username).Msg("Login: failed to look up user")
		return nil, apperr.Internal("Server error during login", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: failed to issue token")
		return nil, apperr.Internal("Server error during login", err)
	}

	log.Info().Str("username", user.Username).Uint("userID", user.ID).Msg("User logged in")
	return &dto.AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Token:    token,
	}, nil
}
