package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"interviewprep/api/internal/apperrors"
	"interviewprep/api/internal/models"
)

// In-memory repository stand-ins mirroring the store semantics the
// real repositories get from Postgres: unique indexes, not-found
// translation, left-join listing.

type fakeInterviewRepo struct {
	interviews map[string]*models.Interview // keyed by mockID
	answers    *fakeUserAnswerRepo          // cascade target, may be nil
}

func newFakeInterviewRepo(answers *fakeUserAnswerRepo) *fakeInterviewRepo {
	return &fakeInterviewRepo{
		interviews: make(map[string]*models.Interview),
		answers:    answers,
	}
}

func (r *fakeInterviewRepo) Create(interview *models.Interview) error {
	if _, exists := r.interviews[interview.MockID]; exists {
		return apperrors.Conflict("An interview with this mockId already exists")
	}
	clone := *interview
	r.interviews[interview.MockID] = &clone
	return nil
}

func (r *fakeInterviewRepo) FindByID(id uuid.UUID) (*models.Interview, error) {
	for _, interview := range r.interviews {
		if interview.ID == id {
			clone := *interview
			return &clone, nil
		}
	}
	return nil, apperrors.NotFound("Interview")
}

func (r *fakeInterviewRepo) FindByMockID(mockID string) (*models.Interview, error) {
	interview, ok := r.interviews[mockID]
	if !ok {
		return nil, apperrors.NotFound("Interview")
	}
	clone := *interview
	return &clone, nil
}

func (r *fakeInterviewRepo) ReplaceDraftAnswers(mockID string, answers models.DraftAnswerList) (*models.Interview, error) {
	interview, ok := r.interviews[mockID]
	if !ok {
		return nil, apperrors.NotFound("Interview")
	}
	interview.DraftAnswers = answers
	clone := *interview
	return &clone, nil
}

func (r *fakeInterviewRepo) DeleteCascade(id uuid.UUID) error {
	for mockID, interview := range r.interviews {
		if interview.ID == id {
			delete(r.interviews, mockID)
			if r.answers != nil {
				r.answers.deleteByMockID(mockID)
			}
			return nil
		}
	}
	return apperrors.NotFound("Interview")
}

type fakeUserAnswerRepo struct {
	records    []*models.UserAnswer
	interviews *fakeInterviewRepo // join source for ListDashboard
}

func newFakeUserAnswerRepo() *fakeUserAnswerRepo {
	return &fakeUserAnswerRepo{}
}

func (r *fakeUserAnswerRepo) Create(answer *models.UserAnswer) error {
	for _, record := range r.records {
		if record.MockIDRef == answer.MockIDRef && record.UserEmail == answer.UserEmail {
			return apperrors.Conflict("Duplicate entry detected")
		}
	}
	clone := *answer
	r.records = append(r.records, &clone)
	return nil
}

func (r *fakeUserAnswerRepo) FindByIdentity(mockIDRef, userEmail string) (*models.UserAnswer, error) {
	for _, record := range r.records {
		if record.MockIDRef == mockIDRef && record.UserEmail == userEmail {
			clone := *record
			return &clone, nil
		}
	}
	return nil, apperrors.NotFound("Feedback")
}

func (r *fakeUserAnswerRepo) FindByMockID(mockIDRef string) ([]models.UserAnswer, error) {
	var matches []models.UserAnswer
	for _, record := range r.records {
		if record.MockIDRef == mockIDRef {
			matches = append(matches, *record)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})
	return matches, nil
}

func (r *fakeUserAnswerRepo) UpdateSubmission(id uuid.UUID, createdAtLabel string, answers models.ScoredAnswerList, overallRating string) error {
	for _, record := range r.records {
		if record.ID == id {
			record.CreatedAtLabel = createdAtLabel
			record.Answers = answers
			record.OverallRating = overallRating
			return nil
		}
	}
	return apperrors.NotFound("Feedback")
}

func (r *fakeUserAnswerRepo) ListDashboard(userEmail string) ([]models.DashboardEntry, error) {
	entries := []models.DashboardEntry{}
	for _, record := range r.records {
		if record.UserEmail != userEmail {
			continue
		}
		entry := models.DashboardEntry{
			ID:            record.ID,
			CreatedAt:     record.CreatedAtLabel,
			Answers:       record.Answers,
			OverallRating: record.OverallRating,
			MockIDRef:     record.MockIDRef,
		}
		if r.interviews != nil {
			if interview, ok := r.interviews.interviews[record.MockIDRef]; ok {
				entry.InterviewID = &interview.ID
				entry.JobPosition = &interview.JobPosition
				entry.JobDesc = &interview.JobDesc
				entry.JobExperience = &interview.JobExperience
			}
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return r.createdAt(entries[i].ID).After(r.createdAt(entries[j].ID))
	})
	return entries, nil
}

func (r *fakeUserAnswerRepo) DeleteOrphans(limit int) (int64, error) {
	var kept []*models.UserAnswer
	var deleted int64
	for _, record := range r.records {
		hasParent := false
		if r.interviews != nil {
			_, hasParent = r.interviews.interviews[record.MockIDRef]
		}
		if !hasParent && deleted < int64(limit) {
			deleted++
			continue
		}
		kept = append(kept, record)
	}
	r.records = kept
	return deleted, nil
}

func (r *fakeUserAnswerRepo) createdAt(id uuid.UUID) time.Time {
	for _, record := range r.records {
		if record.ID == id {
			return record.CreatedAt
		}
	}
	return time.Time{}
}

func (r *fakeUserAnswerRepo) deleteByMockID(mockID string) {
	var kept []*models.UserAnswer
	for _, record := range r.records {
		if record.MockIDRef != mockID {
			kept = append(kept, record)
		}
	}
	r.records = kept
}

// fakeGemini returns canned responses so no network is involved.
type fakeGemini struct {
	textResponse  string
	jsonResponse  string
	embedResponse []float32
	textErr       error
	jsonErr       error
	embedErr      error
	prompts       []string
}

func (g *fakeGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if g.embedErr != nil {
		return nil, g.embedErr
	}
	if g.embedResponse == nil {
		return []float32{0.1, 0.2, 0.3}, nil
	}
	return g.embedResponse, nil
}

func (g *fakeGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.textErr != nil {
		return "", g.textErr
	}
	return g.textResponse, nil
}

func (g *fakeGemini) GenerateJSON(ctx context.Context, prompt string, temperature float32) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.jsonErr != nil {
		return "", g.jsonErr
	}
	return g.jsonResponse, nil
}

func (g *fakeGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	return g.GenerateText(ctx, prompt, temperature)
}

// fakeQuestionBank records what was stored and serves canned hits.
type fakeQuestionBank struct {
	stored    []models.GeneratedQuestion
	hits      []BankQuestion
	searchErr error
	storeErr  error
}

func (b *fakeQuestionBank) InitCollection() error {
	return nil
}

func (b *fakeQuestionBank) StoreQuestions(ctx context.Context, batchID, jobPosition string, embedding []float32, questions []models.GeneratedQuestion) error {
	if b.storeErr != nil {
		return b.storeErr
	}
	b.stored = append(b.stored, questions...)
	return nil
}

func (b *fakeQuestionBank) SearchSimilar(ctx context.Context, queryEmbedding []float32, limit int) ([]BankQuestion, error) {
	if b.searchErr != nil {
		return nil, b.searchErr
	}
	return b.hits, nil
}

var errFake = fmt.Errorf("fake failure")
