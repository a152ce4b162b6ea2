package service_test

import (
	"testing"

	"github.com/Sujal20805/Riddler/internal/apperr"
	"github.com/Sujal20805/Riddler/internal/dto"
	"github.com/Sujal20805/Riddler/internal/model"
	"github.com/Sujal20805/Riddler/internal/service"
)

func intPtr(v int) *int { return &v }

func twoQuestionQuiz() *model.Quiz {
	return &model.Quiz{
		QuizCode: "MATH01",
		Title:    "Arithmetic",
		Questions: []model.Question{
			{Text: "1+1?", Options: []string{"1", "2", "3", "4"}, CorrectOptionIndex: 1, Points: 10, OrderInQuiz: 1},
			{Text: "2+1?", Options: []string{"1", "2", "3", "4"}, CorrectOptionIndex: 2, Points: 20, OrderInQuiz: 2},
		},
	}
}

func TestScoreAnswers(t *testing.T) {
	questions := twoQuestionQuiz().Questions

	tests := []struct {
		name      string
		answers   []*int
		wantScore int
	}{
		{name: "all correct", answers: []*int{intPtr(1), intPtr(2)}, wantScore: 30},
		{name: "partially correct", answers: []*int{intPtr(0), intPtr(2)}, wantScore: 20},
		{name: "all wrong", answers: []*int{intPtr(0), intPtr(0)}, wantScore: 0},
		{name: "all unanswered", answers: []*int{nil, nil}, wantScore: 0},
		{name: "out of range counts as wrong", answers: []*int{intPtr(7), intPtr(-1)}, wantScore: 0},
		{name: "mixed nil and correct", answers: []*int{nil, intPtr(2)}, wantScore: 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, maxScore := service.ScoreAnswers(questions, tt.answers)
			if score != tt.wantScore {
				t.Errorf("ScoreAnswers() score = %d, want %d", score, tt.wantScore)
			}
			if maxScore != 30 {
				t.Errorf("ScoreAnswers() maxScore = %d, want 30", maxScore)
			}
			if score < 0 || score > maxScore {
				t.Errorf("score %d out of [0, %d]", score, maxScore)
			}
		})
	}
}

func newSubmissionFixture(t *testing.T) (service.SubmissionService, *fakeUserRepo, uint) {
	t.Helper()
	quizRepo := newFakeQuizRepo()
	if err := quizRepo.Create(twoQuestionQuiz()); err != nil {
		t.Fatalf("seeding quiz: %v", err)
	}
	userRepo := newFakeUserRepo()
	player := &model.User{Username: "alice", Name: "Alice", Email: "alice@example.com", PasswordHash: "x"}
	if err := userRepo.Create(player); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return service.NewSubmissionService(quizRepo, userRepo), userRepo, player.ID
}

func TestSubmitQuizUpdatesTotalPoints(t *testing.T) {
	svc, userRepo, playerID := newSubmissionFixture(t)

	resp, err := svc.SubmitQuiz(playerID, "math01", dto.SubmitQuizRequest{Answers: []*int{intPtr(1), intPtr(2)}})
	if err != nil {
		t.Fatalf("SubmitQuiz failed: %v", err)
	}
	if resp.Score != 30 || resp.MaxScore != 30 {
		t.Errorf("got score %d/%d, want 30/30", resp.Score, resp.MaxScore)
	}
	if resp.UpdatedTotalPoints != 30 {
		t.Errorf("updated total = %d, want 30", resp.UpdatedTotalPoints)
	}

	// A second, partial submission accumulates on top of the first.
	resp, err = svc.SubmitQuiz(playerID, "MATH01", dto.SubmitQuizRequest{Answers: []*int{intPtr(0), intPtr(2)}})
	if err != nil {
		t.Fatalf("second SubmitQuiz failed: %v", err)
	}
	if resp.Score != 20 {
		t.Errorf("second score = %d, want 20", resp.Score)
	}
	if resp.UpdatedTotalPoints != 50 {
		t.Errorf("updated total after second submission = %d, want 50", resp.UpdatedTotalPoints)
	}

	user, _ := userRepo.FindByID(playerID)
	if user.TotalPoints != 50 {
		t.Errorf("persisted total = %d, want 50", user.TotalPoints)
	}
}

func TestSubmitQuizAnswerCountMismatch(t *testing.T) {
	svc, userRepo, playerID := newSubmissionFixture(t)

	_, err := svc.SubmitQuiz(playerID, "MATH01", dto.SubmitQuizRequest{Answers: []*int{intPtr(1)}})
	if err == nil {
		t.Fatal("expected error for mismatched answer count")
	}
	appErr := apperr.From(err)
	if appErr.Kind != apperr.KindValidation {
		t.Errorf("kind = %v, want KindValidation", appErr.Kind)
	}
	if appErr.Message != "Submission error: Expected 2 answers, received 1." {
		t.Errorf("unexpected message %q", appErr.Message)
	}

	// Rejected submissions must not mutate the accumulator.
	user, _ := userRepo.FindByID(playerID)
	if user.TotalPoints != 0 {
		t.Errorf("total points mutated to %d by a rejected submission", user.TotalPoints)
	}
}

func TestSubmitQuizUnknownCode(t *testing.T) {
	svc, _, playerID := newSubmissionFixture(t)

	_, err := svc.SubmitQuiz(playerID, "NOPE99", dto.SubmitQuizRequest{Answers: []*int{intPtr(0), intPtr(1)}})
	if err == nil {
		t.Fatal("expected error for unknown quiz code")
	}
	if appErr := apperr.From(err); appErr.Kind != apperr.KindNotFound {
		t.Errorf("kind = %v, want KindNotFound", appErr.Kind)
	}
}

func TestSubmitQuizZeroScoreStillPersists(t *testing.T) {
	svc, userRepo, playerID := newSubmissionFixture(t)

	resp, err := svc.SubmitQuiz(playerID, "MATH01", dto.SubmitQuizRequest{Answers: []*int{nil, nil}})
	if err != nil {
		t.Fatalf("SubmitQuiz failed: %v", err)
	}
	if resp.Score != 0 || resp.UpdatedTotalPoints != 0 {
		t.Errorf("got score %d total %d, want 0/0", resp.Score, resp.UpdatedTotalPoints)
	}
	user, _ := userRepo.FindByID(playerID)
	if user.TotalPoints != 0 {
		t.Errorf("total points = %d, want 0", user.TotalPoints)
	}
}
