package repository

import (
	"github.com/Sujal20805/Riddler/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByCode(code string) (*model.Quiz, error)
	CodeExists(code string) (bool, error)
	FindAllWithQuestions() ([]model.Quiz, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// Questions are created alongside the quiz via the association.
	return r.db.Create(quiz).Error
}

// FindByCode looks up a quiz by its canonical (upper-cased) code, questions
// preloaded in stored order. Callers must canonicalize before calling.
func (r *quizRepository) FindByCode(code string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_quiz ASC")
	}).Where("quiz_code = ?", code).First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Quiz{}).Where("quiz_code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *quizRepository) FindAllWithQuestions() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_quiz ASC")
	}).Order("quizzes.created_at DESC").Find(&quizzes).Error
	return quizzes, err
}
