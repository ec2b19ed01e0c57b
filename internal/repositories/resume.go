package repositories

import (
	"errors"

	"gorm.io/gorm"

	"interviewprep/api/internal/apperrors"
	"interviewprep/api/internal/models"
)

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByResumeID(resumeID string) (*models.Resume, error)
	FindByUser(userEmail string) ([]models.Resume, error)
	UpdateFields(resumeID string, fields map[string]interface{}) (*models.Resume, error)
	Delete(resumeID string) error
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(resume *models.Resume) error {
	if err := r.db.Create(resume).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("A resume with this resumeId already exists")
		}
		return apperrors.Storage("create resume", err)
	}
	return nil
}

// FindByResumeID implements ResumeRepository.
func (r *resumeRepository) FindByResumeID(resumeID string) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.Where("resume_id = ?", resumeID).First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Resume")
		}
		return nil, apperrors.Storage("find resume", err)
	}
	return &resume, nil
}

// FindByUser implements ResumeRepository.
func (r *resumeRepository) FindByUser(userEmail string) ([]models.Resume, error) {
	resumes := []models.Resume{}
	err := r.db.
		Where("user_email = ?", userEmail).
		Order("created_at DESC").
		Find(&resumes).Error
	if err != nil {
		return nil, apperrors.Storage("find resumes", err)
	}
	return resumes, nil
}

// UpdateFields implements ResumeRepository. Only the columns present in
// fields change; callers are expected to have whitelisted them.
func (r *resumeRepository) UpdateFields(resumeID string, fields map[string]interface{}) (*models.Resume, error) {
	result := r.db.Model(&models.Resume{}).
		Where("resume_id = ?", resumeID).
		Updates(fields)

	if result.Error != nil {
		return nil, apperrors.Storage("update resume", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NotFound("Resume")
	}

	return r.FindByResumeID(resumeID)
}

// Delete implements ResumeRepository.
func (r *resumeRepository) Delete(resumeID string) error {
	result := r.db.Delete(&models.Resume{}, "resume_id = ?", resumeID)
	if result.Error != nil {
		return apperrors.Storage("delete resume", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Resume")
	}
	return nil
}
