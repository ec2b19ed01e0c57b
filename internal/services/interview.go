package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"interviewprep/api/internal/apperrors"
	"interviewprep/api/internal/models"
	"interviewprep/api/internal/repositories"
)

// InterviewService owns the session template lifecycle: creation,
// retrieval, the draft-answer working copy, and cascade deletion.
type InterviewService interface {
	Create(req *models.SaveInterviewRequest) (*models.Interview, error)
	Get(mockID string) (*models.Interview, error)
	Questions(mockID string) (*models.QuestionsResponse, error)
	ReplaceDraftAnswers(mockID string, answers []models.DraftAnswer) (*models.Interview, error)
	Delete(interviewID uuid.UUID) error
}

type interviewService struct {
	interviewRepo repositories.InterviewRepository
}

func NewInterviewService(interviewRepo repositories.InterviewRepository) InterviewService {
	return &interviewService{interviewRepo: interviewRepo}
}

// Create implements InterviewService. Required fields are checked for
// presence explicitly; jobExperience arrives as a pointer so a
// legitimate zero-years value passes validation.
func (s *interviewService) Create(req *models.SaveInterviewRequest) (*models.Interview, error) {
	if req.MockID == "" ||
		len(req.JSONMockResp) == 0 ||
		req.JobPosition == "" ||
		req.JobDesc == "" ||
		req.JobExperience == nil ||
		req.CreatedBy == "" ||
		req.CreatedAt == "" {
		return nil, apperrors.Validation("All fields are required!")
	}

	interview := &models.Interview{
		ID:             uuid.New(),
		MockID:         req.MockID,
		JSONMockResp:   datatypes.JSON(req.JSONMockResp),
		JobPosition:    req.JobPosition,
		JobDesc:        req.JobDesc,
		JobExperience:  *req.JobExperience,
		CreatedBy:      req.CreatedBy,
		CreatedAtLabel: req.CreatedAt,
		DraftAnswers:   models.DraftAnswerList{},
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.interviewRepo.Create(interview); err != nil {
		return nil, err
	}

	return interview, nil
}

// Get implements InterviewService.
func (s *interviewService) Get(mockID string) (*models.Interview, error) {
	return s.interviewRepo.FindByMockID(mockID)
}

// Questions implements InterviewService. The stored question set is
// returned verbatim, never re-parsed.
func (s *interviewService) Questions(mockID string) (*models.QuestionsResponse, error) {
	interview, err := s.interviewRepo.FindByMockID(mockID)
	if err != nil {
		return nil, err
	}

	return &models.QuestionsResponse{
		MockID:    interview.MockID,
		Questions: []byte(interview.JSONMockResp),
	}, nil
}

// ReplaceDraftAnswers implements InterviewService. The draft answers
// are a working copy the feedback computation never reads; each call
// replaces the whole list.
func (s *interviewService) ReplaceDraftAnswers(mockID string, answers []models.DraftAnswer) (*models.Interview, error) {
	if answers == nil {
		answers = []models.DraftAnswer{}
	}
	return s.interviewRepo.ReplaceDraftAnswers(mockID, models.DraftAnswerList(answers))
}

// Delete implements InterviewService. Deletion is addressed by the
// store-internal identifier and removes the session together with all
// dependent scored submissions.
func (s *interviewService) Delete(interviewID uuid.UUID) error {
	return s.interviewRepo.DeleteCascade(interviewID)
}
