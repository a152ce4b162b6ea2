package dto

import "time"

// ErrorResponse is the uniform error body for every non-2xx reply.
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// AuthResponse is returned on successful registration and login.
type AuthResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// QuizStats mirrors the structure the web client renders on the profile
// page. Per-category tracking is not implemented yet, so the values are
// static placeholders.
type QuizStats struct {
	QuizzesTaken        int      `json:"quizzes_taken"`
	AverageScore        string   `json:"average_score"`
	HighestScore        string   `json:"highest_score"`
	CategoriesCompleted []string `json:"categories_completed"`
}

type ProfileResponse struct {
	ID             uint       `json:"id"`
	Username       string     `json:"username"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	DateOfBirth    *time.Time `json:"dob,omitempty"`
	Bio            string     `json:"bio,omitempty"`
	ProfilePicture string     `json:"profile_picture,omitempty"`
	TotalPoints    int        `json:"total_points"`
	CreatedAt      time.Time  `json:"created_at"`
	QuizStats      QuizStats  `json:"quiz_stats"`
}

// QuestionResponse is the authoring view of a question, answer key included.
// Only ever returned to the quiz creator at creation time.
type QuestionResponse struct {
	ID                 uint     `json:"id"`
	Text               string   `json:"text"`
	Image              *string  `json:"image,omitempty"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
	Points             int      `json:"points"`
}

// QuizResponse is the authoring view of a quiz.
type QuizResponse struct {
	ID          uint               `json:"id"`
	QuizCode    string             `json:"quiz_code"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Questions   []QuestionResponse `json:"questions"`
	CreatedByID uint               `json:"created_by"`
	CreatedAt   time.Time          `json:"created_at"`
}

// PlayQuestionResponse deliberately has no correct-option field: the answer
// key must never cross the wire before submission.
type PlayQuestionResponse struct {
	ID      uint     `json:"id"`
	Text    string   `json:"text"`
	Image   *string  `json:"image,omitempty"`
	Options []string `json:"options"`
	Points  int      `json:"points"`
}

// QuizPlayResponse is the public view of a quiz served to players.
type QuizPlayResponse struct {
	ID          uint                   `json:"id"`
	QuizCode    string                 `json:"quiz_code"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Questions   []PlayQuestionResponse `json:"questions"`
	CreatedAt   time.Time              `json:"created_at"`
}

// QuizSummaryResponse is the dashboard listing entry.
type QuizSummaryResponse struct {
	ID            uint      `json:"id"`
	QuizCode      string    `json:"quiz_code"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"question_count"`
	TotalPoints   int       `json:"total_points"`
	CreatedAt     time.Time `json:"created_at"`
}

type SubmitQuizResponse struct {
	Message            string `json:"message"`
	Score              int    `json:"score"`
	MaxScore           int    `json:"max_score"`
	UpdatedTotalPoints int    `json:"updated_total_points"`
}

type LeaderboardEntryResponse struct {
	Username       string `json:"username"`
	Name           string `json:"name,omitempty"`
	TotalPoints    int    `json:"total_points"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}
