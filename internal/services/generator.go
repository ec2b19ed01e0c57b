package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"interviewprep/api/internal/models"
)

// GeneratorService talks to the generative-AI collaborator: it produces
// the question/answer set an interview session stores verbatim, and
// grades individual recorded answers. The data core never validates or
// regenerates this content.
type GeneratorService interface {
	GenerateQuestionSet(ctx context.Context, jobPosition, jobDesc string, jobExperience float64, count int) (json.RawMessage, []models.GeneratedQuestion, error)
	GradeAnswer(ctx context.Context, question, correctAnswer, userAnswer string) models.AnswerGrade
}

type generatorService struct {
	gemini        GeminiService
	questionBank  QuestionBankService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewGeneratorService(gemini GeminiService, questionBank QuestionBankService, maxRetries int) GeneratorService {
	return &generatorService{
		gemini:        gemini,
		questionBank:  questionBank,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// GenerateQuestionSet implements GeneratorService. Retrieval context is
// best-effort: a question-bank or embedding failure degrades to
// generation without context, never to a failed request.
func (g *generatorService) GenerateQuestionSet(ctx context.Context, jobPosition, jobDesc string, jobExperience float64, count int) (json.RawMessage, []models.GeneratedQuestion, error) {
	if count <= 0 {
		count = 5
	}

	embedding, similarContext := g.retrieveContext(ctx, jobPosition, jobDesc)

	prompt := g.promptBuilder.BuildQuestionSetPrompt(jobPosition, jobDesc, jobExperience, count, similarContext)

	response, err := g.gemini.GenerateJSON(ctx, prompt, 0.7)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate question set: %w", err)
	}

	jsonStr := extractJSON(response)

	var questions []models.GeneratedQuestion
	if err := json.Unmarshal([]byte(jsonStr), &questions); err != nil {
		return nil, nil, fmt.Errorf("failed to parse question set response: %w", err)
	}
	if len(questions) == 0 {
		return nil, nil, fmt.Errorf("question set response contained no questions")
	}

	if embedding != nil {
		batchID := uuid.New().String()
		if err := g.questionBank.StoreQuestions(ctx, batchID, jobPosition, embedding, questions); err != nil {
			log.Printf("⚠️  Failed to store questions in bank: %v\n", err)
		}
	}

	return json.RawMessage(jsonStr), questions, nil
}

// GradeAnswer implements GeneratorService. Per-item degradation: when
// the AI output cannot be produced or parsed, the sentinel grade stands
// in so one bad item never fails a whole submission.
func (g *generatorService) GradeAnswer(ctx context.Context, question, correctAnswer, userAnswer string) models.AnswerGrade {
	sentinel := models.AnswerGrade{
		Feedback: "Unable to generate feedback.",
		Rating:   models.RatingSentinel,
	}

	prompt := g.promptBuilder.BuildAnswerGradingPrompt(question, correctAnswer, userAnswer)

	response, err := g.gemini.GenerateTextWithRetry(ctx, prompt, 0.3, g.maxRetries)
	if err != nil {
		log.Printf("⚠️  Failed to grade answer: %v\n", err)
		return sentinel
	}

	var grade models.AnswerGrade
	if err := json.Unmarshal([]byte(extractJSON(response)), &grade); err != nil {
		log.Printf("⚠️  Failed to parse grading response: %v\n", err)
		return sentinel
	}
	if grade.Rating == "" {
		grade.Rating = models.RatingSentinel
	}
	if grade.Feedback == "" {
		grade.Feedback = sentinel.Feedback
	}

	return grade
}

func (g *generatorService) retrieveContext(ctx context.Context, jobPosition, jobDesc string) ([]float32, string) {
	embedding, err := g.gemini.GenerateEmbedding(ctx, jobPosition+"\n"+jobDesc)
	if err != nil {
		log.Printf("⚠️  Failed to embed job description: %v\n", err)
		return nil, ""
	}

	results, err := g.questionBank.SearchSimilar(ctx, embedding, 5)
	if err != nil {
		log.Printf("⚠️  Failed to search question bank: %v\n", err)
		return embedding, ""
	}

	return embedding, FormatSimilarQuestions(results)
}

// extractJSON tries to extract JSON from text that might contain
// markdown or other formatting around it.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	// Prefer whichever container opens first
	if startArr != -1 && (startObj == -1 || startArr < startObj) && endArr > startArr {
		return text[startArr : endArr+1]
	}
	if startObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}

	return text
}
