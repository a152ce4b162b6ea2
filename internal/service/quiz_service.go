package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Sujal20805/Riddler/internal/apperr"
	"github.com/Sujal20805/Riddler/internal/dto"
	"github.com/Sujal20805/Riddler/internal/model"
	"github.com/Sujal20805/Riddler/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuizService interface {
	CreateQuiz(userID uint, req dto.QuizCreateRequest) (*dto.QuizResponse, error)
	GetAllQuizzes() ([]dto.QuizSummaryResponse, error)
	GetQuizByCode(code string) (*dto.QuizPlayResponse, error)
}

type quizService struct {
	quizRepo  repository.QuizRepository
	allocator QuizCodeAllocator
}

func NewQuizService(quizRepo repository.QuizRepository, allocator QuizCodeAllocator) QuizService {
	return &quizService{quizRepo: quizRepo, allocator: allocator}
}

func (s *quizService) CreateQuiz(userID uint, req dto.QuizCreateRequest) (*dto.QuizResponse, error) {
	if problems := validateQuestions(req.Questions); len(problems) > 0 {
		return nil, apperr.Validation("Quiz validation failed. Check questions and details.", problems...)
	}

	code, err := s.allocator.Allocate(req.QuizCode)
	if err != nil {
		return nil, err
	}

	quiz := model.Quiz{
		QuizCode:    code,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		CreatedByID: userID,
	}
	for i, q := range req.Questions {
		quiz.Questions = append(quiz.Questions, model.Question{
			Text:               strings.TrimSpace(q.Text),
			Image:              q.Image,
			Options:            q.Options,
			CorrectOptionIndex: *q.CorrectOptionIndex,
			Points:             q.Points,
			OrderInQuiz:        i + 1,
		})
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		// The unique index is the real uniqueness guarantee: a concurrent
		// writer can still win between Allocate and Create.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflictf("Quiz code %q is already taken. Try a different one or leave it blank for auto-generation.", code)
		}
		log.Error().Err(err).Str("quizCode", code).Msg("CreateQuiz: failed to persist quiz")
		return nil, apperr.Internal("Server error creating quiz", err)
	}

	log.Info().Str("quizCode", quiz.QuizCode).Uint("quizID", quiz.ID).Uint("userID", userID).Msg("Quiz created")

	var resp dto.QuizResponse
	if err := copier.Copy(&resp, &quiz); err != nil {
		log.Error().Err(err).Msg("CreateQuiz: failed to copy quiz model to response")
		return nil, apperr.Internal("Server error creating quiz", err)
	}
	return &resp, nil
}

func (s *quizService) GetAllQuizzes() ([]dto.QuizSummaryResponse, error) {
	quizzes, err := s.quizRepo.FindAllWithQuestions()
	if err != nil {
		log.Error().Err(err).Msg("GetAllQuizzes: repository error")
		return nil, apperr.Internal("Server error fetching quizzes", err)
	}

	summaries := make([]dto.QuizSummaryResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		summaries = append(summaries, dto.QuizSummaryResponse{
			ID:            quiz.ID,
			QuizCode:      quiz.QuizCode,
			Title:         quiz.Title,
			Description:   quiz.Description,
			QuestionCount: len(quiz.Questions),
			TotalPoints:   quiz.TotalPoints(),
			CreatedAt:     quiz.CreatedAt,
		})
	}
	return summaries, nil
}

// GetQuizByCode returns the play projection: the answer key never appears
// in the response type, so it cannot leak to a player.
func (s *quizService) GetQuizByCode(code string) (*dto.QuizPlayResponse, error) {
	quiz, err := s.quizRepo.FindByCode(NormalizeQuizCode(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Quiz not found")
		}
		log.Error().Err(err).Str("quizCode", code).Msg("GetQuizByCode: repository error")
		return nil, apperr.Internal("Server error fetching quiz", err)
	}

	var resp dto.QuizPlayResponse
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("GetQuizByCode: failed to copy quiz model to play response")
		return nil, apperr.Internal("Server error fetching quiz", err)
	}
	return &resp, nil
}

// validateQuestions applies the domain rules that gin's binding tags cannot
// express, collecting every violation so the client sees them all at once.
func validateQuestions(questions []dto.QuestionCreateRequest) []string {
	var problems []string
	for i, q := range questions {
		label := fmt.Sprintf("Question %d", i+1)

		if strings.TrimSpace(q.Text) == "" {
			problems = append(problems, label+": question text cannot be empty.")
		}
		if len(q.Options) != model.OptionCount {
			problems = append(problems, fmt.Sprintf("%s: must provide exactly %d non-empty options.", label, model.OptionCount))
		} else {
			for _, opt := range q.Options {
				if strings.TrimSpace(opt) == "" {
					problems = append(problems, fmt.Sprintf("%s: must provide exactly %d non-empty options.", label, model.OptionCount))
					break
				}
			}
		}
		if q.CorrectOptionIndex == nil || *q.CorrectOptionIndex < 0 || *q.CorrectOptionIndex >= model.OptionCount {
			problems = append(problems, fmt.Sprintf("%s: correct answer index must be between 0 and %d.", label, model.OptionCount-1))
		}
		if q.Points < 10 || q.Points%10 != 0 {
			problems = append(problems, label+": points must be a positive multiple of 10 (minimum 10).")
		}
	}
	return problems
}
