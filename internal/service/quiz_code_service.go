package service

import (
	"errors"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/Sujal20805/Riddler/internal/apperr"
	"github.com/Sujal20805/Riddler/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	codeAlphabet       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	generatedCodeLen   = 6
	maxGenerateRetries = 20
)

// codePattern is the character class allowed in custom codes (after upper-casing).
var codePattern = regexp.MustCompile(`^[A-Z0-9_.-]+$`)

var errQuizCodeExhausted = errors.New("quiz code generation attempts exhausted")

// QuizCodeAllocator produces the short shareable code that identifies a
// quiz. The check here is a best-effort pre-check; the unique index on
// quizzes.quiz_code is the actual correctness backstop under concurrency.
type QuizCodeAllocator interface {
	Allocate(candidate string) (string, error)
}

type quizCodeAllocator struct {
	quizRepo repository.QuizRepository
}

func NewQuizCodeAllocator(quizRepo repository.QuizRepository) QuizCodeAllocator {
	return &quizCodeAllocator{quizRepo: quizRepo}
}

// NormalizeQuizCode canonicalizes a code for storage and lookup. Codes are
// case-insensitive; the upper-cased form is the stored one.
func NormalizeQuizCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (a *quizCodeAllocator) Allocate(candidate string) (string, error) {
	if candidate != "" {
		return a.validateCustom(NormalizeQuizCode(candidate))
	}
	return a.generate()
}

func (a *quizCodeAllocator) validateCustom(code string) (string, error) {
	if !codePattern.MatchString(code) {
		return "", apperr.Validation("Custom quiz code can only contain letters, numbers, hyphens (-), underscores (_), and periods (.).")
	}
	taken, err := a.quizRepo.CodeExists(code)
	if err != nil {
		log.Error().Err(err).Str("quizCode", code).Msg("Allocate: failed to check code existence")
		return "", apperr.Internal("Server error creating quiz", err)
	}
	if taken {
		return "", apperr.Conflictf("Quiz code %q is already taken. Try a different one or leave it blank for auto-generation.", code)
	}
	return code, nil
}

func (a *quizCodeAllocator) generate() (string, error) {
	for attempt := 0; attempt < maxGenerateRetries; attempt++ {
		code := randomCode(generatedCodeLen)
		taken, err := a.quizRepo.CodeExists(code)
		if err != nil {
			log.Error().Err(err).Msg("Allocate: failed to check generated code")
			return "", apperr.Internal("Server error creating quiz", err)
		}
		if !taken {
			return code, nil
		}
	}
	// 36^6 codes make this effectively unreachable; the cap just bounds the worst case.
	log.Error().Int("retries", maxGenerateRetries).Msg("Allocate: exhausted quiz code generation attempts")
	return "", apperr.Internal("Server error creating quiz", errQuizCodeExhausted)
}

func randomCode(length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(codeAlphabet[rand.IntN(len(codeAlphabet))])
	}
	return sb.String()
}
