package services

import (
	"interviewprep/api/internal/apperrors"
	"interviewprep/api/internal/models"
	"interviewprep/api/internal/repositories"
)

// DashboardService joins a learner's submissions against their parent
// sessions for the dashboard listing.
type DashboardService interface {
	ListUserInterviews(userEmail string) ([]models.DashboardEntry, error)
}

type dashboardService struct {
	answerRepo repositories.UserAnswerRepository
}

func NewDashboardService(answerRepo repositories.UserAnswerRepository) DashboardService {
	return &dashboardService{answerRepo: answerRepo}
}

// ListUserInterviews implements DashboardService. A learner with no
// submissions gets an empty listing, never an error.
func (s *dashboardService) ListUserInterviews(userEmail string) ([]models.DashboardEntry, error) {
	if userEmail == "" {
		return nil, apperrors.Validation("User email is required!")
	}
	return s.answerRepo.ListDashboard(userEmail)
}
