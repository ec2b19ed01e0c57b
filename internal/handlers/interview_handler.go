package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"interviewprep/api/internal/apperrors"
	"interviewprep/api/internal/models"
	"interviewprep/api/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
	generatorService services.GeneratorService
}

func NewInterviewHandler(
	interviewService services.InterviewService,
	generatorService services.GeneratorService,
) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
		generatorService: generatorService,
	}
}

// HandleSaveInterview handles POST /interview/saveInterview
func (h *InterviewHandler) HandleSaveInterview(c *fiber.Ctx) error {
	var req models.SaveInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Invalid request payload")
	}

	interview, err := h.interviewService.Create(&req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Interview data saved successfully",
		"mockId":  interview.MockID,
	})
}

// HandleGetInterview handles GET /interview/:mockId
func (h *InterviewHandler) HandleGetInterview(c *fiber.Ctx) error {
	interview, err := h.interviewService.Get(c.Params("mockId"))
	if err != nil {
		return err
	}
	return c.JSON(interview)
}

// HandleGetQuestions handles GET /interview/:mockId/questions
func (h *InterviewHandler) HandleGetQuestions(c *fiber.Ctx) error {
	questions, err := h.interviewService.Questions(c.Params("mockId"))
	if err != nil {
		return err
	}
	return c.JSON(questions)
}

// HandleSaveDraftAnswers handles PUT /interview/:mockId/answers
func (h *InterviewHandler) HandleSaveDraftAnswers(c *fiber.Ctx) error {
	var req models.SaveDraftAnswersRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Invalid request payload")
	}

	interview, err := h.interviewService.ReplaceDraftAnswers(c.Params("mockId"), req.Answers)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":          "Answers saved successfully",
		"updatedInterview": interview,
	})
}

// HandleDeleteInterview handles DELETE /interview/delete/:interviewId
func (h *InterviewHandler) HandleDeleteInterview(c *fiber.Ctx) error {
	interviewID, err := uuid.Parse(c.Params("interviewId"))
	if err != nil {
		return apperrors.Validation("Invalid interview ID format")
	}

	if err := h.interviewService.Delete(interviewID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Interview deleted successfully",
	})
}

// HandleGenerateQuestions handles POST /interview/generate
func (h *InterviewHandler) HandleGenerateQuestions(c *fiber.Ctx) error {
	var req models.GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Invalid request payload")
	}

	if req.JobPosition == "" || req.JobDesc == "" || req.JobExperience == nil {
		return apperrors.Validation("jobPosition, jobDesc and jobExperience are required!")
	}

	raw, _, err := h.generatorService.GenerateQuestionSet(
		c.Context(),
		req.JobPosition,
		req.JobDesc,
		*req.JobExperience,
		req.QuestionCount,
	)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":   "Questions generated successfully",
		"questions": raw,
	})
}

// HandleGradeAnswer handles POST /interview/gradeAnswer
func (h *InterviewHandler) HandleGradeAnswer(c *fiber.Ctx) error {
	var req models.GradeAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("Invalid request payload")
	}

	if req.Question == "" || req.UserAnswer == "" {
		return apperrors.Validation("question and userAnswer are required!")
	}

	grade := h.generatorService.GradeAnswer(c.Context(), req.Question, req.CorrectAnswer, req.UserAnswer)
	return c.JSON(grade)
}
