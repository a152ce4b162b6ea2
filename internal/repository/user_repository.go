package repository

import (
	"github.com/Sujal20805/Riddler/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByUsernameOrEmail(username, email string) (*model.User, error)
	Update(user *model.User) error
	AddPoints(userID uint, points int) (int, error)
	Leaderboard(limit int) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername expects the lower-cased form; usernames are stored lower-cased.
func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsernameOrEmail(username, email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ? OR email = ?", username, email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

// AddPoints increments total_points in a single statement so that two
// concurrent submissions by the same user cannot lose an update, and
// returns the new total.
func (r *userRepository) AddPoints(userID uint, points int) (int, error) {
	var total int
	err := r.db.Raw(
		"UPDATE users SET total_points = total_points + ?, updated_at = NOW() WHERE id = ? AND deleted_at IS NULL RETURNING total_points",
		points, userID,
	).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Leaderboard returns the top users by points. created_at is the secondary
// key so ties order deterministically (older accounts first).
func (r *userRepository) Leaderboard(limit int) ([]model.User, error) {
	var users []model.User
	err := r.db.Order("total_points DESC").Order("created_at ASC").Limit(limit).Find(&users).Error
	return users, err
}
