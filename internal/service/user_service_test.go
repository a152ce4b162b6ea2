package service_test

import (
	"testing"
	"time"

	"github.com/Sujal20805/Riddler/internal/apperr"
	"github.com/Sujal20805/Riddler/internal/dto"
	"github.com/Sujal20805/Riddler/internal/model"
	"github.com/Sujal20805/Riddler/internal/service"
)

func strPtr(s string) *string { return &s }

func seedLeaderboardUsers(t *testing.T, userRepo *fakeUserRepo) {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	users := []model.User{
		{Username: "carol", Name: "Carol", Email: "carol@example.com", PasswordHash: "x", TotalPoints: 120, CreatedAt: base.Add(2 * time.Hour)},
		{Username: "alice", Name: "Alice", Email: "alice@example.com", PasswordHash: "x", TotalPoints: 300, CreatedAt: base},
		{Username: "bob", Name: "Bob", Email: "bob@example.com", PasswordHash: "x", TotalPoints: 120, CreatedAt: base.Add(time.Hour)},
		{Username: "dave", Name: "Dave", Email: "dave@example.com", PasswordHash: "x", TotalPoints: 90, CreatedAt: base},
		{Username: "erin", Name: "Erin", Email: "erin@example.com", PasswordHash: "x", TotalPoints: 0, CreatedAt: base},
		{Username: "frank", Name: "Frank", Email: "frank@example.com", PasswordHash: "x", TotalPoints: 60, CreatedAt: base},
	}
	for i := range users {
		if err := userRepo.Create(&users[i]); err != nil {
			t.Fatalf("seeding user %s: %v", users[i].Username, err)
		}
	}
}

func TestLeaderboardOrderingAndLimit(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedLeaderboardUsers(t, userRepo)
	svc := service.NewUserService(userRepo)

	entries, err := svc.Leaderboard(5)
	if err != nil {
		t.Fatalf("Leaderboard failed: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("entry count = %d, want 5", len(entries))
	}

	wantOrder := []string{"alice", "bob", "carol", "dave", "frank"}
	for i, want := range wantOrder {
		if entries[i].Username != want {
			t.Errorf("position %d = %q, want %q (ties break by earliest account)", i, entries[i].Username, want)
		}
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].TotalPoints > entries[i-1].TotalPoints {
			t.Errorf("entries not sorted descending at position %d", i)
		}
	}
}

func TestLeaderboardDefaultLimit(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedLeaderboardUsers(t, userRepo)
	svc := service.NewUserService(userRepo)

	entries, err := svc.Leaderboard(0)
	if err != nil {
		t.Fatalf("Leaderboard failed: %v", err)
	}
	if len(entries) != 6 {
		t.Fatalf("entry count = %d, want all 6 seeded users under the default limit", len(entries))
	}
}

func TestGetProfile(t *testing.T) {
	userRepo := newFakeUserRepo()
	user := &model.User{Username: "alice", Name: "Alice", Email: "alice@example.com", PasswordHash: "x", TotalPoints: 70}
	if err := userRepo.Create(user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	svc := service.NewUserService(userRepo)

	profile, err := svc.GetProfile(user.ID)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if profile.Username != "alice" || profile.TotalPoints != 70 {
		t.Errorf("profile = %+v, want alice with 70 points", profile)
	}

	if _, err := svc.GetProfile(999); err == nil {
		t.Error("expected not found for unknown user")
	}
}

func TestUpdateProfile(t *testing.T) {
	userRepo := newFakeUserRepo()
	user := &model.User{Username: "alice", Name: "Alice", Email: "alice@example.com", PasswordHash: "x"}
	if err := userRepo.Create(user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	svc := service.NewUserService(userRepo)

	profile, err := svc.UpdateProfile(user.ID, dto.UpdateProfileRequest{
		Name: strPtr("Alice B"),
		Bio:  strPtr("quiz enjoyer"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if profile.Name != "Alice B" || profile.Bio != "quiz enjoyer" {
		t.Errorf("profile = %+v, want updated name and bio", profile)
	}
	if profile.Email != "alice@example.com" {
		t.Errorf("email changed unexpectedly to %q", profile.Email)
	}

	_, err = svc.UpdateProfile(user.ID, dto.UpdateProfileRequest{Password: strPtr("short")})
	if err == nil {
		t.Fatal("expected validation error for short password")
	}
	if appErr := apperr.From(err); appErr.Kind != apperr.KindValidation {
		t.Errorf("kind = %v, want KindValidation", appErr.Kind)
	}
}
