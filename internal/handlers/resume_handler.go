package handlers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"interviewprep/api/internal/apperrors"
	"interviewprep/api/internal/models"
	"interviewprep/api/internal/services"
)

type ResumeHandler struct {
	resumeService services.ResumeService
	importService services.ResumeImportService
	maxFileSize   int64
}

func NewResumeHandler(
	resumeService services.ResumeService,
	importService services.ResumeImportService,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		resumeService: resumeService,
		importService: importService,
		maxFileSize:   maxFileSize,
	}
}

// HandleCreateResume handles POST /resume/create
func (h *ResumeHandler) HandleCreateResume(c *fiber.Ctx) error {
	var req models.CreateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Invalid request payload")
	}

	resume, err := h.resumeService.Create(&req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Resume created successfully",
		"resumeId": resume.ResumeID,
	})
}

// HandleGetResume handles GET /resume/:resumeId
func (h *ResumeHandler) HandleGetResume(c *fiber.Ctx) error {
	resume, err := h.resumeService.Get(c.Params("resumeId"))
	if err != nil {
		return err
	}
	return c.JSON(resume)
}

// HandleGetUserResumes handles GET /resume/user/:userEmail
func (h *ResumeHandler) HandleGetUserResumes(c *fiber.Ctx) error {
	resumes, err := h.resumeService.ListByUser(c.Params("userEmail"))
	if err != nil {
		return err
	}
	return c.JSON(resumes)
}

// HandleUpdateResume handles PUT /resume/updateResume/:resumeId
func (h *ResumeHandler) HandleUpdateResume(c *fiber.Ctx) error {
	var req models.UpdateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Invalid request payload")
	}

	resume, err := h.resumeService.Update(c.Params("resumeId"), req.Data)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":       "Resume updated successfully",
		"updatedResume": resume,
	})
}

// HandleDeleteResume handles DELETE /resume/deleteResume/:resumeId
func (h *ResumeHandler) HandleDeleteResume(c *fiber.Ctx) error {
	if err := h.resumeService.Delete(c.Params("resumeId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Resume deleted successfully",
	})
}

// HandleImportResume handles POST /resume/import
func (h *ResumeHandler) HandleImportResume(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return apperrors.Validation("A 'resume' PDF file is required")
	}

	if file.Size > h.maxFileSize {
		return apperrors.Validation(fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != ".pdf" {
		return apperrors.Validation("Only PDF resumes are supported")
	}

	draft, err := h.importService.Import(c.Context(), file)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Resume imported successfully",
		"draft":   draft,
	})
}
