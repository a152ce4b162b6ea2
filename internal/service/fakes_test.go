package service_test

import (
	"sort"
	"strings"
	"time"

	"github.com/Sujal20805/Riddler/internal/model"
	"gorm.io/gorm"
)

// fakeQuizRepo is an in-memory stand-in keyed by canonical quiz code.
type fakeQuizRepo struct {
	quizzes map[string]*model.Quiz
	nextID  uint
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: make(map[string]*model.Quiz), nextID: 1}
}

func (f *fakeQuizRepo) Create(quiz *model.Quiz) error {
	key := strings.ToUpper(quiz.QuizCode)
	if _, exists := f.quizzes[key]; exists {
		return gorm.ErrDuplicatedKey
	}
	quiz.ID = f.nextID
	f.nextID++
	for i := range quiz.Questions {
		quiz.Questions[i].ID = f.nextID
		quiz.Questions[i].QuizID = quiz.ID
		f.nextID++
	}
	quiz.CreatedAt = time.Now()
	f.quizzes[key] = quiz
	return nil
}

func (f *fakeQuizRepo) FindByCode(code string) (*model.Quiz, error) {
	quiz, ok := f.quizzes[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

func (f *fakeQuizRepo) CodeExists(code string) (bool, error) {
	_, ok := f.quizzes[code]
	return ok, nil
}

func (f *fakeQuizRepo) FindAllWithQuestions() ([]model.Quiz, error) {
	quizzes := make([]model.Quiz, 0, len(f.quizzes))
	for _, quiz := range f.quizzes {
		quizzes = append(quizzes, *quiz)
	}
	return quizzes, nil
}

// alwaysTakenQuizRepo reports every code as taken, forcing generation to exhaust.
type alwaysTakenQuizRepo struct{ fakeQuizRepo }

func (f *alwaysTakenQuizRepo) CodeExists(string) (bool, error) { return true, nil }

// fakeUserRepo is an in-memory user store.
type fakeUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	for _, existing := range f.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = f.nextID
	f.nextID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByUsernameOrEmail(username, email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Username == username || user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(user *model.User) error {
	for id, existing := range f.users {
		if id == user.ID {
			continue
		}
		if existing.Username == user.Username || existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) AddPoints(userID uint, points int) (int, error) {
	user, ok := f.users[userID]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	user.TotalPoints += points
	return user.TotalPoints, nil
}

func (f *fakeUserRepo) Leaderboard(limit int) ([]model.User, error) {
	users := make([]model.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].TotalPoints != users[j].TotalPoints {
			return users[i].TotalPoints > users[j].TotalPoints
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	if limit < len(users) {
		users = users[:limit]
	}
	return users, nil
}
