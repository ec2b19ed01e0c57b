package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Resume is the resume-builder record. resume_id is client-generated
// like mockId; the section arrays are stored verbatim as supplied by
// the front end.
type Resume struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeID   string         `gorm:"type:text;not null;uniqueIndex" json:"resumeId"`
	Title      string         `gorm:"type:text;not null" json:"title"`
	UserEmail  string         `gorm:"type:text;not null;index" json:"userEmail"`
	FirstName  string         `gorm:"type:text" json:"firstName"`
	LastName   string         `gorm:"type:text" json:"lastName"`
	JobTitle   string         `gorm:"type:text" json:"jobTitle"`
	Address    string         `gorm:"type:text" json:"address"`
	Phone      string         `gorm:"type:text" json:"phone"`
	Email      string         `gorm:"type:text" json:"email"`
	Summary    string         `gorm:"type:text" json:"summary"`
	Experience datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"experience"`
	Education  datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"education"`
	Skills     datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"skills"`
	Hobbies    datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"hobbies"`
	ThemeColor string         `gorm:"type:text;default:'#2563eb'" json:"themeColor"`
	CreatedAt  time.Time      `gorm:"type:timestamptz;default:now()" json:"createdAt"`
	UpdatedAt  time.Time      `gorm:"type:timestamptz;default:now()" json:"-"`
}

func (Resume) TableName() string {
	return "resumes"
}
