package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RatingSentinel is stored as the overall rating when no per-question
// rating could be computed.
const RatingSentinel = "N/A"

// ScoredAnswer is one graded question of a submission. Rating is a
// string-encoded number in [0,10], stored as supplied by the AI
// collaborator without numeric validation.
type ScoredAnswer struct {
	Question   string `json:"question"`
	CorrectAns string `json:"correctAns"`
	UserAns    string `json:"userAns"`
	Feedback   string `json:"feedback"`
	Rating     string `json:"rating"`
}

type ScoredAnswerList []ScoredAnswer

func (l ScoredAnswerList) Value() (driver.Value, error) {
	if l == nil {
		l = ScoredAnswerList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *ScoredAnswerList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// UserAnswer is the scored submission tying one learner to one
// Interview's outcome. The composite unique index enforces at most one
// record per (mockIdRef, userEmail); a second submission overwrites the
// existing record instead of inserting a duplicate.
type UserAnswer struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MockIDRef      string           `gorm:"type:text;not null;uniqueIndex:idx_user_answers_identity;index" json:"mockIdRef"`
	UserEmail      string           `gorm:"type:text;not null;uniqueIndex:idx_user_answers_identity" json:"userEmail"`
	CreatedAtLabel string           `gorm:"type:text" json:"createdAt"`
	OverallRating  string           `gorm:"type:text" json:"overallRating"`
	Answers        ScoredAnswerList `gorm:"type:jsonb;default:'[]'" json:"answers"`
	CreatedAt      time.Time        `gorm:"type:timestamptz;default:now()" json:"-"`
	UpdatedAt      time.Time        `gorm:"type:timestamptz;default:now()" json:"-"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}
