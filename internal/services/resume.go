package services

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"interviewprep/api/internal/apperrors"
	"interviewprep/api/internal/models"
	"interviewprep/api/internal/repositories"
)

type ResumeService interface {
	Create(req *models.CreateResumeRequest) (*models.Resume, error)
	Get(resumeID string) (*models.Resume, error)
	ListByUser(userEmail string) ([]models.Resume, error)
	Update(resumeID string, data map[string]interface{}) (*models.Resume, error)
	Delete(resumeID string) error
}

type resumeService struct {
	resumeRepo repositories.ResumeRepository
}

func NewResumeService(resumeRepo repositories.ResumeRepository) ResumeService {
	return &resumeService{resumeRepo: resumeRepo}
}

// updatableResumeFields maps the JSON field names the client may send
// to their columns. Anything else in the update payload is ignored.
var updatableResumeFields = map[string]string{
	"title":      "title",
	"firstName":  "first_name",
	"lastName":   "last_name",
	"jobTitle":   "job_title",
	"address":    "address",
	"phone":      "phone",
	"email":      "email",
	"summary":    "summary",
	"themeColor": "theme_color",
	"experience": "experience",
	"education":  "education",
	"skills":     "skills",
	"hobbies":    "hobbies",
}

// jsonResumeFields are the columns stored as jsonb.
var jsonResumeFields = map[string]bool{
	"experience": true,
	"education":  true,
	"skills":     true,
	"hobbies":    true,
}

// Create implements ResumeService.
func (s *resumeService) Create(req *models.CreateResumeRequest) (*models.Resume, error) {
	if req.Title == "" || req.UserEmail == "" || req.ResumeID == "" {
		return nil, apperrors.Validation("All fields are required!")
	}

	resume := &models.Resume{
		ID:        uuid.New(),
		ResumeID:  req.ResumeID,
		Title:     req.Title,
		UserEmail: req.UserEmail,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.resumeRepo.Create(resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// Get implements ResumeService.
func (s *resumeService) Get(resumeID string) (*models.Resume, error) {
	return s.resumeRepo.FindByResumeID(resumeID)
}

// ListByUser implements ResumeService.
func (s *resumeService) ListByUser(userEmail string) ([]models.Resume, error) {
	if userEmail == "" {
		return nil, apperrors.Validation("User email is required!")
	}
	return s.resumeRepo.FindByUser(userEmail)
}

// Update implements ResumeService. The payload is a partial update;
// unknown fields are dropped, section arrays are re-encoded for the
// jsonb columns.
func (s *resumeService) Update(resumeID string, data map[string]interface{}) (*models.Resume, error) {
	if len(data) == 0 {
		return nil, apperrors.Validation("No resume data provided!")
	}

	fields := make(map[string]interface{}, len(data)+1)
	for key, value := range data {
		column, ok := updatableResumeFields[key]
		if !ok {
			continue
		}
		if jsonResumeFields[column] {
			encoded, err := json.Marshal(value)
			if err != nil {
				return nil, apperrors.Validation("Invalid resume data!")
			}
			fields[column] = datatypes.JSON(encoded)
			continue
		}
		fields[column] = value
	}

	if len(fields) == 0 {
		return nil, apperrors.Validation("No updatable resume fields provided!")
	}
	fields["updated_at"] = time.Now()

	return s.resumeRepo.UpdateFields(resumeID, fields)
}

// Delete implements ResumeService.
func (s *resumeService) Delete(resumeID string) error {
	return s.resumeRepo.Delete(resumeID)
}
