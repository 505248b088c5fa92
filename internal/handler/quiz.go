package handler

import (
	"errors"
	"fmt"

	"quiz-page/internal/domain"
	"quiz-page/internal/dto"
	"quiz-page/internal/service"
	"quiz-page/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz page
// @Description Generates multiple-choice questions for a topic, renders them
// @Description into a self-contained HTML page and stores the result
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Generation parameters"
// @Success 201 {object} dto.QuizRecordResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	record, err := h.service.GenerateQuiz(c.Context(), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// GetQuizHTML godoc
// @Summary Fetch a generated quiz page
// @Description Returns the stored HTML document for a quiz
// @Tags quiz
// @Produce html
// @Param id path string true "Quiz ID"
// @Success 200 {string} string "HTML document"
// @Failure 404 {string} string "HTML error page"
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuizHTML(c *fiber.Ctx) error {
	id := c.Params("id")
	if !validation.IsValidULID(id) {
		return notFoundPage(c, fmt.Sprintf("Quiz não encontrado com ID: %s", id))
	}

	html, err := h.service.GetQuizHTML(c.Context(), id)
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == domain.ErrNotFound {
			return notFoundPage(c, domainErr.Message)
		}
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// ListQuizzes godoc
// @Summary List generated quizzes
// @Description Returns all stored quiz records in creation order
// @Tags quiz
// @Produce json
// @Success 200 {array} dto.QuizRecordResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	records, err := h.service.ListQuizzes(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(records)
}

// notFoundPage returns the minimal HTML error body for missing quizzes.
func notFoundPage(c *fiber.Ctx, message string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusNotFound).
		SendString(fmt.Sprintf("<html><body><h1>Quiz não encontrado</h1><p>%s</p></body></html>", message))
}
