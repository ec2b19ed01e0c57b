package handlers

import (
	"github.com/gofiber/fiber/v2"

	"interviewprep/api/internal/apperrors"
	"interviewprep/api/internal/models"
	"interviewprep/api/internal/services"
)

type AnswerHandler struct {
	feedbackService  services.FeedbackService
	dashboardService services.DashboardService
}

func NewAnswerHandler(
	feedbackService services.FeedbackService,
	dashboardService services.DashboardService,
) *AnswerHandler {
	return &AnswerHandler{
		feedbackService:  feedbackService,
		dashboardService: dashboardService,
	}
}

// HandleSaveUserAnswer handles POST /interview/saveUserAnswer
func (h *AnswerHandler) HandleSaveUserAnswer(c *fiber.Ctx) error {
	var req models.SaveUserAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Invalid request payload")
	}

	created, err := h.feedbackService.Submit(&req)
	if err != nil {
		return err
	}

	if created {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "User answers saved successfully",
		})
	}
	return c.JSON(fiber.Map{
		"message": "User answers updated successfully",
	})
}

// HandleGetFeedback handles GET /interview/feedback/:mockId
func (h *AnswerHandler) HandleGetFeedback(c *fiber.Ctx) error {
	report, err := h.feedbackService.Feedback(c.Params("mockId"), c.Query("userEmail"))
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// HandleUserInterviews handles GET /interview/userInterviews
func (h *AnswerHandler) HandleUserInterviews(c *fiber.Ctx) error {
	entries, err := h.dashboardService.ListUserInterviews(c.Query("userEmail"))
	if err != nil {
		return err
	}
	return c.JSON(entries)
}
