package service

import (
	"errors"
	"strings"

	"github.com/Sujal20805/Riddler/internal/apperr"
	"github.com/Sujal20805/Riddler/internal/dto"
	"github.com/Sujal20805/Riddler/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultLeaderboardLimit applies when the caller does not specify one.
const DefaultLeaderboardLimit = 10

type UserService interface {
	GetProfile(userID uint) (*dto.ProfileResponse, error)
	UpdateProfile(userID uint, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	Leaderboard(limit int) ([]dto.LeaderboardEntryResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(userID uint) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("User not found")
		}
		log.Error().Err(err).Uint("userID", userID).Msg("GetProfile: repository error")
		return nil, apperr.Internal("Server error fetching profile", err)
	}

	var resp dto.ProfileResponse
	if err := copier.Copy(&resp, user); err != nil {
		log.Error().Err(err).Msg("GetProfile: failed to copy user model to response")
		return nil, apperr.Internal("Server error fetching profile", err)
	}
	resp.QuizStats = placeholderQuizStats()
	return &resp, nil
}

func (s *userService) UpdateProfile(userID uint, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("User not found")
		}
		log.Error().Err(err).Uint("userID", userID).Msg("UpdateProfile: repository error")
		return nil, apperr.Internal("Error updating profile", err)
	}

	if req.Username != nil && strings.TrimSpace(*req.Username) != "" {
		user.Username = strings.ToLower(strings.TrimSpace(*req.Username))
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.ProfilePicture != nil && *req.ProfilePicture != "" {
		user.ProfilePicture = *req.ProfilePicture
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return nil, apperr.Validation("Password must be at least 6 characters long")
		}
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			log.Error().Err(hashErr).Msg("UpdateProfile: failed to hash password")
			return nil, apperr.Internal("Error updating profile", hashErr)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validation("Username or Email already exists.")
		}
		log.Error().Err(err).Uint("userID", userID).Msg("UpdateProfile: failed to save user")
		return nil, apperr.Internal("Error updating profile", err)
	}

	log.Info().Uint("userID", userID).Msg("Profile updated")

	var resp dto.ProfileResponse
	if err := copier.Copy(&resp, user); err != nil {
		log.Error().Err(err).Msg("UpdateProfile: failed to copy user model to response")
		return nil, apperr.Internal("Error updating profile", err)
	}
	resp.QuizStats = placeholderQuizStats()
	return &resp, nil
}

// Leaderboard returns the top users by cumulative points. A non-positive
// limit falls back to the default.
func (s *userService) Leaderboard(limit int) ([]dto.LeaderboardEntryResponse, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	users, err := s.userRepo.Leaderboard(limit)
	if err != nil {
		log.Error().Err(err).Int("limit", limit).Msg("Leaderboard: repository error")
		return nil, apperr.Internal("Error fetching leaderboard", err)
	}

	entries := make([]dto.LeaderboardEntryResponse, 0, len(users))
	for _, user := range users {
		entries = append(entries, dto.LeaderboardEntryResponse{
			Username:       user.Username,
			Name:           user.Name,
			TotalPoints:    user.TotalPoints,
			ProfilePicture: user.ProfilePicture,
		})
	}
	return entries, nil
}

func placeholderQuizStats() dto.QuizStats {
	return dto.QuizStats{
		QuizzesTaken:        0,
		AverageScore:        "N/A",
		HighestScore:        "N/A",
		CategoriesCompleted: []string{},
	}
}
