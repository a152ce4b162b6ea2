package model

import (
	"time"

	"gorm.io/gorm"
)

// OptionCount is the fixed number of options every question carries.
const OptionCount = 4

type Question struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	QuizID             uint           `json:"quiz_id" gorm:"not null;index"`
	Text               string         `json:"text" gorm:"type:text;not null"`
	Image              *string        `json:"image,omitempty" gorm:"type:text"` // Base64 blob or URL, opaque to scoring
	Options            []string       `json:"options" gorm:"serializer:json;not null"`
	CorrectOptionIndex int            `json:"correct_option_index" gorm:"not null"`
	Points             int            `json:"points" gorm:"not null"`
	OrderInQuiz        int            `json:"order_in_quiz" gorm:"not null"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}
