package dto

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DateOfBirth string `json:"dob" binding:"required"` // ISO 8601 date, e.g. "2001-04-23"
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest uses pointers so an omitted field means "keep current value".
type UpdateProfileRequest struct {
	Username       *string `json:"username"`
	Name           *string `json:"name"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profile_picture"`
	Password       *string `json:"password"`
}

// QuestionCreateRequest carries one question of a new quiz. Domain rules
// (option count, points multiple, index range) are enforced in the service
// so the client gets the full list of violations at once.
type QuestionCreateRequest struct {
	Text               string   `json:"text" binding:"required"`
	Image              *string  `json:"image"`
	Options            []string `json:"options" binding:"required"`
	CorrectOptionIndex *int     `json:"correct_option_index" binding:"required"`
	Points             int      `json:"points" binding:"required"`
}

type QuizCreateRequest struct {
	Title       string                  `json:"title" binding:"required"`
	Description string                  `json:"description"`
	QuizCode    string                  `json:"quiz_code"` // Optional custom code; generated when blank
	Questions   []QuestionCreateRequest `json:"questions" binding:"required,min=1,dive"`
}

// SubmitQuizRequest is a positionally-ordered answer vector. A nil entry
// means the player left that question unanswered.
type SubmitQuizRequest struct {
	Answers []*int `json:"answers"`
}
