package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"interviewprep/api/internal/apperrors"
	"interviewprep/api/internal/models"
)

type UserAnswerRepository interface {
	Create(answer *models.UserAnswer) error
	FindByIdentity(mockIDRef, userEmail string) (*models.UserAnswer, error)
	FindByMockID(mockIDRef string) ([]models.UserAnswer, error)
	UpdateSubmission(id uuid.UUID, createdAtLabel string, answers models.ScoredAnswerList, overallRating string) error
	ListDashboard(userEmail string) ([]models.DashboardEntry, error)
	DeleteOrphans(limit int) (int64, error)
}

type userAnswerRepository struct {
	db *gorm.DB
}

func NewUserAnswerRepository(db *gorm.DB) UserAnswerRepository {
	return &userAnswerRepository{db: db}
}

// Create implements UserAnswerRepository. A duplicate on the
// (mock_id_ref, user_email) index means another submission won the
// insert race; the caller surfaces it, no auto-retry.
func (r *userAnswerRepository) Create(answer *models.UserAnswer) error {
	if err := r.db.Create(answer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("Duplicate entry detected")
		}
		return apperrors.Storage("create user answer", err)
	}
	return nil
}

// FindByIdentity implements UserAnswerRepository.
func (r *userAnswerRepository) FindByIdentity(mockIDRef, userEmail string) (*models.UserAnswer, error) {
	var answer models.UserAnswer
	err := r.db.
		Where("mock_id_ref = ? AND user_email = ?", mockIDRef, userEmail).
		First(&answer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Feedback")
		}
		return nil, apperrors.Storage("find user answer", err)
	}
	return &answer, nil
}

// FindByMockID implements UserAnswerRepository. Records come back
// oldest-first so the earliest submission is a deterministic choice
// when no learner email scopes the lookup.
func (r *userAnswerRepository) FindByMockID(mockIDRef string) ([]models.UserAnswer, error) {
	var answers []models.UserAnswer
	err := r.db.
		Where("mock_id_ref = ?", mockIDRef).
		Order("created_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, apperrors.Storage("find user answers", err)
	}
	return answers, nil
}

// UpdateSubmission implements UserAnswerRepository. Only the
// resubmittable fields change; the record keeps its identity.
func (r *userAnswerRepository) UpdateSubmission(id uuid.UUID, createdAtLabel string, answers models.ScoredAnswerList, overallRating string) error {
	result := r.db.Model(&models.UserAnswer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"created_at_label": createdAtLabel,
			"answers":          answers,
			"overall_rating":   overallRating,
		})

	if result.Error != nil {
		return apperrors.Storage("update user answer", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Feedback")
	}
	return nil
}

// ListDashboard implements UserAnswerRepository. Left join keeps
// submissions whose parent interview is gone; their interview-side
// columns scan as null.
func (r *userAnswerRepository) ListDashboard(userEmail string) ([]models.DashboardEntry, error) {
	entries := []models.DashboardEntry{}
	err := r.db.Table("user_answers").
		Select(`user_answers.id AS id,
			interviews.id AS interview_id,
			user_answers.created_at_label AS created_at,
			user_answers.answers AS answers,
			user_answers.overall_rating AS overall_rating,
			interviews.job_position AS job_position,
			interviews.job_desc AS job_desc,
			interviews.job_experience AS job_experience,
			user_answers.mock_id_ref AS mock_id_ref`).
		Joins("LEFT JOIN interviews ON interviews.mock_id = user_answers.mock_id_ref").
		Where("user_answers.user_email = ?", userEmail).
		Order("user_answers.created_at DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, apperrors.Storage("list dashboard", err)
	}
	return entries, nil
}

// DeleteOrphans implements UserAnswerRepository. Removes up to limit
// submissions whose mock_id_ref no longer resolves to an interview.
func (r *userAnswerRepository) DeleteOrphans(limit int) (int64, error) {
	result := r.db.Exec(`
		DELETE FROM user_answers
		WHERE id IN (
			SELECT ua.id FROM user_answers ua
			WHERE NOT EXISTS (
				SELECT 1 FROM interviews i WHERE i.mock_id = ua.mock_id_ref
			)
			LIMIT ?
		)`, limit)
	if result.Error != nil {
		return 0, apperrors.Storage("delete orphan user answers", result.Error)
	}
	return result.RowsAffected, nil
}
