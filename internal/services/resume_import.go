package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"

	"interviewprep/api/internal/models"
)

// ResumeImportService turns an uploaded resume PDF into a drafted field
// set the client confirms into a resume record.
type ResumeImportService interface {
	Import(ctx context.Context, file *multipart.FileHeader) (*models.ResumeDraft, error)
}

type resumeImportService struct {
	storage       StorageService
	pdfParser     PDFParserService
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewResumeImportService(storage StorageService, pdfParser PDFParserService, gemini GeminiService) ResumeImportService {
	return &resumeImportService{
		storage:       storage,
		pdfParser:     pdfParser,
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// Import implements ResumeImportService. The uploaded file is only
// needed long enough to extract its text.
func (s *resumeImportService) Import(ctx context.Context, file *multipart.FileHeader) (*models.ResumeDraft, error) {
	filename, filePath, err := s.storage.SaveFile(file, "resume")
	if err != nil {
		return nil, fmt.Errorf("failed to save resume file: %w", err)
	}
	defer func() {
		if err := s.storage.DeleteFile(filename); err != nil {
			log.Printf("⚠️  Failed to clean up resume upload %s: %v\n", filename, err)
		}
	}()

	text, err := s.pdfParser.ExtractText(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume PDF: %w", err)
	}

	prompt := s.promptBuilder.BuildResumeDraftPrompt(text)
	response, err := s.gemini.GenerateJSON(ctx, prompt, 0.3)
	if err != nil {
		return nil, fmt.Errorf("failed to draft resume fields: %w", err)
	}

	var draft models.ResumeDraft
	if err := json.Unmarshal([]byte(extractJSON(response)), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse resume draft response: %w", err)
	}

	return &draft, nil
}
