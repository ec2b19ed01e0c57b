package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DraftAnswer is a free-form working-copy answer captured while the
// learner is still inside the session. It is never fed into the
// feedback computation; the scored submission lives in UserAnswer.
type DraftAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type DraftAnswerList []DraftAnswer

func (l DraftAnswerList) Value() (driver.Value, error) {
	if l == nil {
		l = DraftAnswerList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *DraftAnswerList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Interview is the session template: the generated question set plus
// the job metadata it was generated for. mockId is client-generated and
// immutable; json_mock_resp is stored verbatim as supplied by the AI
// collaborator.
type Interview struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MockID         string          `gorm:"type:text;not null;uniqueIndex" json:"mockId"`
	JSONMockResp   datatypes.JSON  `gorm:"type:jsonb;not null" json:"jsonMockResp"`
	JobPosition    string          `gorm:"type:text;not null" json:"jobPosition"`
	JobDesc        string          `gorm:"type:text;not null" json:"jobDesc"`
	JobExperience  float64         `gorm:"not null" json:"jobExperience"`
	CreatedBy      string          `gorm:"type:text;not null" json:"createdBy"`
	CreatedAtLabel string          `gorm:"type:text" json:"createdAt"`
	DraftAnswers   DraftAnswerList `gorm:"type:jsonb;default:'[]'" json:"answers"`
	CreatedAt      time.Time       `gorm:"type:timestamptz;default:now()" json:"-"`
	UpdatedAt      time.Time       `gorm:"type:timestamptz;default:now()" json:"-"`
}

func (Interview) TableName() string {
	return "interviews"
}

func scanJSON(value interface{}, target interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, target)
	case string:
		return json.Unmarshal([]byte(v), target)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}
