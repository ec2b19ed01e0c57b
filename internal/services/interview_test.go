package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"interviewprep/api/internal/apperrors"
	"interviewprep/api/internal/models"
)

func validSaveRequest() *models.SaveInterviewRequest {
	experience := 3.0
	return &models.SaveInterviewRequest{
		MockID:        "abc123",
		JSONMockResp:  json.RawMessage(`[{"question":"Q1","answer":"A1"}]`),
		JobPosition:   "Backend Developer",
		JobDesc:       "Go, Postgres",
		JobExperience: &experience,
		CreatedBy:     "user@x.com",
		CreatedAt:     "01-01-2026",
	}
}

func TestCreateInterviewRoundTrip(t *testing.T) {
	repo := newFakeInterviewRepo(nil)
	svc := NewInterviewService(repo)

	req := validSaveRequest()
	created, err := svc.Create(req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.MockID != "abc123" {
		t.Errorf("MockID = %q, want %q", created.MockID, "abc123")
	}

	stored, err := svc.Get("abc123")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.JobPosition != req.JobPosition || stored.JobDesc != req.JobDesc ||
		stored.JobExperience != *req.JobExperience || stored.CreatedBy != req.CreatedBy ||
		stored.CreatedAtLabel != req.CreatedAt {
		t.Errorf("stored fields do not match inputs: %+v", stored)
	}
	if string(stored.JSONMockResp) != string(req.JSONMockResp) {
		t.Errorf("JSONMockResp = %s, want stored verbatim", stored.JSONMockResp)
	}
	if len(stored.DraftAnswers) != 0 {
		t.Errorf("DraftAnswers should start empty, got %v", stored.DraftAnswers)
	}
}

func TestCreateInterviewValidation(t *testing.T) {
	svc := NewInterviewService(newFakeInterviewRepo(nil))

	mutations := map[string]func(*models.SaveInterviewRequest){
		"missing mockId":        func(r *models.SaveInterviewRequest) { r.MockID = "" },
		"missing jsonMockResp":  func(r *models.SaveInterviewRequest) { r.JSONMockResp = nil },
		"missing jobPosition":   func(r *models.SaveInterviewRequest) { r.JobPosition = "" },
		"missing jobDesc":       func(r *models.SaveInterviewRequest) { r.JobDesc = "" },
		"missing jobExperience": func(r *models.SaveInterviewRequest) { r.JobExperience = nil },
		"missing createdBy":     func(r *models.SaveInterviewRequest) { r.CreatedBy = "" },
		"missing createdAt":     func(r *models.SaveInterviewRequest) { r.CreatedAt = "" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			req := validSaveRequest()
			mutate(req)
			_, err := svc.Create(req)
			var validationErr *apperrors.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Create() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestCreateInterviewAcceptsZeroExperience(t *testing.T) {
	svc := NewInterviewService(newFakeInterviewRepo(nil))

	req := validSaveRequest()
	zero := 0.0
	req.JobExperience = &zero

	created, err := svc.Create(req)
	if err != nil {
		t.Fatalf("Create() with zero experience error = %v", err)
	}
	if created.JobExperience != 0 {
		t.Errorf("JobExperience = %v, want 0", created.JobExperience)
	}
}

func TestCreateInterviewDuplicateMockID(t *testing.T) {
	svc := NewInterviewService(newFakeInterviewRepo(nil))

	if _, err := svc.Create(validSaveRequest()); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	_, err := svc.Create(validSaveRequest())
	var conflictErr *apperrors.ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("duplicate Create() error = %v, want ConflictError", err)
	}
}

func TestQuestionsReturnsStoredSet(t *testing.T) {
	svc := NewInterviewService(newFakeInterviewRepo(nil))
	req := validSaveRequest()
	if _, err := svc.Create(req); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	questions, err := svc.Questions("abc123")
	if err != nil {
		t.Fatalf("Questions() error = %v", err)
	}
	if questions.MockID != "abc123" {
		t.Errorf("MockID = %q, want %q", questions.MockID, "abc123")
	}
	if string(questions.Questions) != string(req.JSONMockResp) {
		t.Errorf("Questions = %s, want the stored set verbatim", questions.Questions)
	}

	if _, err := svc.Questions("missing"); err == nil {
		t.Fatal("Questions() on unknown mockId should fail")
	}
}

func TestReplaceDraftAnswersIsWholesale(t *testing.T) {
	svc := NewInterviewService(newFakeInterviewRepo(nil))
	if _, err := svc.Create(validSaveRequest()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	first := []models.DraftAnswer{{Question: "Q1", Answer: "draft one"}, {Question: "Q2", Answer: "draft two"}}
	if _, err := svc.ReplaceDraftAnswers("abc123", first); err != nil {
		t.Fatalf("ReplaceDraftAnswers() error = %v", err)
	}

	second := []models.DraftAnswer{{Question: "Q1", Answer: "revised"}}
	updated, err := svc.ReplaceDraftAnswers("abc123", second)
	if err != nil {
		t.Fatalf("ReplaceDraftAnswers() error = %v", err)
	}
	if len(updated.DraftAnswers) != 1 || updated.DraftAnswers[0].Answer != "revised" {
		t.Errorf("DraftAnswers = %v, want full replacement by second call", updated.DraftAnswers)
	}

	var notFoundErr *apperrors.NotFoundError
	if _, err := svc.ReplaceDraftAnswers("missing", second); !errors.As(err, &notFoundErr) {
		t.Fatalf("ReplaceDraftAnswers() on unknown mockId error = %v, want NotFoundError", err)
	}
}

func TestDeleteCascadesToUserAnswers(t *testing.T) {
	answers := newFakeUserAnswerRepo()
	repo := newFakeInterviewRepo(answers)
	answers.interviews = repo
	svc := NewInterviewService(repo)
	feedback := NewFeedbackService(answers)

	created, err := svc.Create(validSaveRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err := feedback.Submit(&models.SaveUserAnswerRequest{
		MockIDRef: "abc123",
		UserEmail: "user@x.com",
		CreatedAt: "01-01-2026",
		Answers:   ratings("9", "7", "8", "6", "10"),
	}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var notFoundErr *apperrors.NotFoundError
	if _, err := svc.Get("abc123"); !errors.As(err, &notFoundErr) {
		t.Errorf("Get() after delete error = %v, want NotFoundError", err)
	}
	if _, err := feedback.Feedback("abc123", ""); !errors.As(err, &notFoundErr) {
		t.Errorf("Feedback() after delete error = %v, want NotFoundError", err)
	}
	if len(answers.records) != 0 {
		t.Errorf("user answers remaining after cascade = %d, want 0", len(answers.records))
	}
}

func TestDeleteUnknownInterview(t *testing.T) {
	svc := NewInterviewService(newFakeInterviewRepo(nil))

	var notFoundErr *apperrors.NotFoundError
	if err := svc.Delete(uuid.New()); !errors.As(err, &notFoundErr) {
		t.Fatalf("Delete() error = %v, want NotFoundError", err)
	}
}

func TestJanitorSweepRemovesOrphansOnly(t *testing.T) {
	answers := newFakeUserAnswerRepo()
	repo := newFakeInterviewRepo(answers)
	answers.interviews = repo
	svc := NewInterviewService(repo)

	if _, err := svc.Create(validSaveRequest()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	answers.records = append(answers.records,
		&models.UserAnswer{ID: uuid.New(), MockIDRef: "abc123", UserEmail: "a@x.com", CreatedAt: time.Now()},
		&models.UserAnswer{ID: uuid.New(), MockIDRef: "ghost", UserEmail: "a@x.com", CreatedAt: time.Now()},
	)

	deleted, err := answers.DeleteOrphans(100)
	if err != nil {
		t.Fatalf("DeleteOrphans() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
	if len(answers.records) != 1 || answers.records[0].MockIDRef != "abc123" {
		t.Errorf("sweep should keep the parented record, got %+v", answers.records)
	}
}
