package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interviewprep/api/internal/apperrors"
	"interviewprep/api/internal/models"
)

type InterviewRepository interface {
	Create(interview *models.Interview) error
	FindByID(id uuid.UUID) (*models.Interview, error)
	FindByMockID(mockID string) (*models.Interview, error)
	ReplaceDraftAnswers(mockID string, answers models.DraftAnswerList) (*models.Interview, error)
	DeleteCascade(id uuid.UUID) error
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

// Create implements InterviewRepository.
func (r *interviewRepository) Create(interview *models.Interview) error {
	if err := r.db.Create(interview).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("An interview with this mockId already exists")
		}
		return apperrors.Storage("create interview", err)
	}
	return nil
}

// FindByID implements InterviewRepository.
func (r *interviewRepository) FindByID(id uuid.UUID) (*models.Interview, error) {
	var interview models.Interview
	if err := r.db.Where("id = ?", id).First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Interview")
		}
		return nil, apperrors.Storage("find interview", err)
	}
	return &interview, nil
}

// FindByMockID implements InterviewRepository.
func (r *interviewRepository) FindByMockID(mockID string) (*models.Interview, error) {
	var interview models.Interview
	if err := r.db.Where("mock_id = ?", mockID).First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Interview")
		}
		return nil, apperrors.Storage("find interview", err)
	}
	return &interview, nil
}

// ReplaceDraftAnswers implements InterviewRepository. The answers field
// is replaced wholesale, never merged.
func (r *interviewRepository) ReplaceDraftAnswers(mockID string, answers models.DraftAnswerList) (*models.Interview, error) {
	result := r.db.Model(&models.Interview{}).
		Where("mock_id = ?", mockID).
		Update("draft_answers", answers)

	if result.Error != nil {
		return nil, apperrors.Storage("update draft answers", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NotFound("Interview")
	}

	return r.FindByMockID(mockID)
}

// DeleteCascade implements InterviewRepository. The interview and every
// dependent user answer are removed in one transaction, so a failed
// delete never leaves answers behind without their interview.
func (r *interviewRepository) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var interview models.Interview
		if err := tx.Where("id = ?", id).First(&interview).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Interview")
			}
			return apperrors.Storage("find interview", err)
		}

		if err := tx.Delete(&models.Interview{}, "id = ?", id).Error; err != nil {
			return apperrors.Storage("delete interview", err)
		}

		if err := tx.Delete(&models.UserAnswer{}, "mock_id_ref = ?", interview.MockID).Error; err != nil {
			return apperrors.Storage("delete user answers", err)
		}

		return nil
	})
}
