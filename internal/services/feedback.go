package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"interviewprep/api/internal/apperrors"
	"interviewprep/api/internal/models"
	"interviewprep/api/internal/repositories"
)

// FeedbackService owns the scored submission lifecycle: the
// one-record-per-(mockIdRef, userEmail) upsert and the read-shaped
// feedback report.
type FeedbackService interface {
	Submit(req *models.SaveUserAnswerRequest) (created bool, err error)
	Feedback(mockID, userEmail string) (*models.FeedbackResponse, error)
}

type feedbackService struct {
	answerRepo repositories.UserAnswerRepository
}

func NewFeedbackService(answerRepo repositories.UserAnswerRepository) FeedbackService {
	return &feedbackService{answerRepo: answerRepo}
}

// Submit implements FeedbackService. Find-then-update-or-insert on the
// identity pair; the unique index turns a lost insert race into a
// conflict the caller sees, not a duplicate record.
func (s *feedbackService) Submit(req *models.SaveUserAnswerRequest) (bool, error) {
	if req.MockIDRef == "" || req.UserEmail == "" {
		return false, apperrors.Validation("mockIdRef and userEmail are required!")
	}

	overallRating := ComputeOverallRating(req.Answers)
	answers := models.ScoredAnswerList(req.Answers)
	if answers == nil {
		answers = models.ScoredAnswerList{}
	}

	existing, err := s.answerRepo.FindByIdentity(req.MockIDRef, req.UserEmail)
	if err == nil {
		return false, s.answerRepo.UpdateSubmission(existing.ID, req.CreatedAt, answers, overallRating)
	}
	if !isNotFound(err) {
		return false, err
	}

	answer := &models.UserAnswer{
		ID:             uuid.New(),
		MockIDRef:      req.MockIDRef,
		UserEmail:      req.UserEmail,
		CreatedAtLabel: req.CreatedAt,
		OverallRating:  overallRating,
		Answers:        answers,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.answerRepo.Create(answer); err != nil {
		return false, err
	}
	return true, nil
}

// Feedback implements FeedbackService. A userEmail scopes the lookup to
// one learner; without it the earliest submission for the session is
// authoritative. The overall rating is recomputed from the stored
// answers rather than reusing the stored value.
func (s *feedbackService) Feedback(mockID, userEmail string) (*models.FeedbackResponse, error) {
	var record *models.UserAnswer

	if userEmail != "" {
		found, err := s.answerRepo.FindByIdentity(mockID, userEmail)
		if err != nil {
			return nil, err
		}
		record = found
	} else {
		records, err := s.answerRepo.FindByMockID(mockID)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, apperrors.NotFound("Feedback")
		}
		record = &records[0]
	}

	questions := make([]models.FeedbackQuestion, 0, len(record.Answers))
	for _, answer := range record.Answers {
		questions = append(questions, models.FeedbackQuestion{
			Question:      answer.Question,
			UserAnswer:    answer.UserAns,
			CorrectAnswer: answer.CorrectAns,
			Feedback:      answer.Feedback,
			Rating:        answer.Rating,
		})
	}

	return &models.FeedbackResponse{
		OverallRating: ComputeOverallRating(record.Answers),
		Questions:     questions,
	}, nil
}

// ComputeOverallRating is the mean of the parseable per-question
// ratings to one decimal place. Non-numeric ratings are excluded from
// the mean; when nothing parses (or there are no answers at all) the
// sentinel stands in.
func ComputeOverallRating(answers []models.ScoredAnswer) string {
	var sum float64
	var count int

	for _, answer := range answers {
		rating, err := strconv.ParseFloat(strings.TrimSpace(answer.Rating), 64)
		if err != nil {
			continue
		}
		sum += rating
		count++
	}

	if count == 0 {
		return models.RatingSentinel
	}

	return fmt.Sprintf("%.1f", sum/float64(count))
}

func isNotFound(err error) bool {
	var target *apperrors.NotFoundError
	return errors.As(err, &target)
}
