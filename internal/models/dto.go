package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type SaveInterviewRequest struct {
	MockID        string          `json:"mockId"`
	JSONMockResp  json.RawMessage `json:"jsonMockResp"`
	JobPosition   string          `json:"jobPosition"`
	JobDesc       string          `json:"jobDesc"`
	JobExperience *float64        `json:"jobExperience"`
	CreatedBy     string          `json:"createdBy"`
	CreatedAt     string          `json:"createdAt"`
}

type QuestionsResponse struct {
	MockID    string          `json:"mockId"`
	Questions json.RawMessage `json:"questions"`
}

type SaveDraftAnswersRequest struct {
	Answers []DraftAnswer `json:"answers"`
}

type SaveUserAnswerRequest struct {
	MockIDRef string         `json:"mockIdRef"`
	UserEmail string         `json:"userEmail"`
	CreatedAt string         `json:"createdAt"`
	Answers   []ScoredAnswer `json:"answers"`
}

type FeedbackQuestion struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Feedback      string `json:"feedback"`
	Rating        string `json:"rating"`
}

type FeedbackResponse struct {
	OverallRating string             `json:"overallRating"`
	Questions     []FeedbackQuestion `json:"questions"`
}

// DashboardEntry is one row of the learner dashboard: a UserAnswer
// joined to its parent Interview. The interview-side fields are
// pointers because the join is outer; an orphaned submission still
// appears, with those fields null.
type DashboardEntry struct {
	ID            uuid.UUID        `json:"id"`
	InterviewID   *uuid.UUID       `json:"interviewId"`
	CreatedAt     string           `json:"createdAt"`
	Answers       ScoredAnswerList `json:"answers"`
	OverallRating string           `json:"overallRating"`
	JobPosition   *string          `json:"jobPosition"`
	JobDesc       *string          `json:"jobDesc"`
	JobExperience *float64         `json:"jobExperience"`
	MockIDRef     string           `json:"mockIdRef"`
}

type GenerateQuestionsRequest struct {
	JobPosition   string   `json:"jobPosition"`
	JobDesc       string   `json:"jobDesc"`
	JobExperience *float64 `json:"jobExperience"`
	QuestionCount int      `json:"questionCount"`
}

type GeneratedQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type GradeAnswerRequest struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
	UserAnswer    string `json:"userAnswer"`
}

type AnswerGrade struct {
	Feedback string `json:"feedback"`
	Rating   string `json:"rating"`
}

type CreateResumeRequest struct {
	Title     string `json:"title"`
	UserEmail string `json:"userEmail"`
	ResumeID  string `json:"resumeId"`
}

type UpdateResumeRequest struct {
	Data map[string]interface{} `json:"data"`
}

// ResumeDraft is the AI-extracted field set returned by the resume
// import flow for the client to confirm.
type ResumeDraft struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	JobTitle  string   `json:"jobTitle"`
	Address   string   `json:"address"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Summary   string   `json:"summary"`
	Skills    []string `json:"skills"`
}
