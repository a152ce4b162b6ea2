package service

import (
	"errors"

	"github.com/Sujal20805/Riddler/internal/apperr"
	"github.com/Sujal20805/Riddler/internal/dto"
	"github.com/Sujal20805/Riddler/internal/model"
	"github.com/Sujal20805/Riddler/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService is the single scoring authority. Players only ever see
// the play projection of a quiz, so the score must be recomputed here from
// the stored answer key, never trusted from the client.
type SubmissionService interface {
	SubmitQuiz(userID uint, code string, req dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
}

type submissionService struct {
	quizRepo repository.QuizRepository
	userRepo repository.UserRepository
}

func NewSubmissionService(quizRepo repository.QuizRepository, userRepo repository.UserRepository) SubmissionService {
	return &submissionService{quizRepo: quizRepo, userRepo: userRepo}
}

func (s *submissionService) SubmitQuiz(userID uint, code string, req dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	quiz, err := s.quizRepo.FindByCode(NormalizeQuizCode(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Quiz not found")
		}
		log.Error().Err(err).Str("quizCode", code).Msg("SubmitQuiz: repository error")
		return nil, apperr.Internal("Server error submitting quiz", err)
	}

	if len(req.Answers) != len(quiz.Questions) {
		return nil, apperr.Validationf("Submission error: Expected %d answers, received %d.", len(quiz.Questions), len(req.Answers))
	}

	score, maxScore := ScoreAnswers(quiz.Questions, req.Answers)

	// Persist before responding: a success reply must mean the points are
	// durably recorded. The increment is a single atomic statement so
	// concurrent submissions by the same user cannot lose an update.
	updatedTotal, err := s.userRepo.AddPoints(userID, score)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Int("score", score).Msg("SubmitQuiz: failed to persist points")
		return nil, apperr.Internal("Server error submitting quiz", err)
	}

	log.Info().
		Str("quizCode", quiz.QuizCode).
		Uint("userID", userID).
		Int("score", score).
		Int("maxScore", maxScore).
		Int("totalPoints", updatedTotal).
		Msg("Quiz submission scored")

	return &dto.SubmitQuizResponse{
		Message:            "Quiz submitted successfully!",
		Score:              score,
		MaxScore:           maxScore,
		UpdatedTotalPoints: updatedTotal,
	}, nil
}

// ScoreAnswers pairs answers with questions positionally and totals the
// points. A nil or out-of-range entry counts as answered incorrectly, not
// as a malformed request. Callers must have checked the lengths match.
func ScoreAnswers(questions []model.Question, answers []*int) (score, maxScore int) {
	for i, question := range questions {
		maxScore += question.Points

		answer := answers[i]
		if answer == nil {
			continue
		}
		if *answer < 0 || *answer >= model.OptionCount {
			continue
		}
		if *answer == question.CorrectOptionIndex {
			score += question.Points
		}
	}
	return score, maxScore
}
