package quiz

import (
	"net/http"

	"github.com/Sujal20805/Riddler/internal/controller"
	"github.com/Sujal20805/Riddler/internal/dto"
	"github.com/Sujal20805/Riddler/internal/middleware"
	"github.com/Sujal20805/Riddler/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService       service.QuizService
	submissionService service.SubmissionService
}

func NewQuizController(quizService service.QuizService, submissionService service.SubmissionService) *QuizController {
	return &QuizController{
		quizService:       quizService,
		submissionService: submissionService,
	}
}

// CreateQuiz godoc
// @Summary Create a new quiz
// @Description Create a quiz with its questions. The quiz code can be supplied or left blank for auto-generation.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz body dto.QuizCreateRequest true "Quiz data including questions"
// @Success 201 {object} dto.QuizResponse "Created quiz, answer key included (authoring view)"
// @Failure 400 {object} dto.ErrorResponse "Validation failure, messages enumerated"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 409 {object} dto.ErrorResponse "Quiz code already taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized, no token"})
		return
	}

	var req dto.QuizCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing required fields: title and questions array.", Errors: []string{err.Error()}})
		return
	}

	resp, err := c.quizService.CreateQuiz(user.ID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetAllQuizzes godoc
// @Summary List quizzes
// @Description Summary list for the dashboard: code, title, question count and total obtainable points.
// @Tags Quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *QuizController) GetAllQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.GetAllQuizzes()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuizByCode godoc
// @Summary Fetch a quiz for playing
// @Description Case-insensitive lookup by code. The response never contains the answer key.
// @Tags Quizzes
// @Produce json
// @Param quizCode path string true "Quiz code"
// @Success 200 {object} dto.QuizPlayResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{quizCode} [get]
func (c *QuizController) GetQuizByCode(ctx *gin.Context) {
	quiz, err := c.quizService.GetQuizByCode(ctx.Param("quizCode"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// SubmitQuiz godoc
// @Summary Submit answers for a quiz
// @Description Scores the positional answer vector server-side and adds the result to the caller's total points.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quizCode path string true "Quiz code"
// @Param submission body dto.SubmitQuizRequest true "Positional answer vector; null entries mean unanswered"
// @Success 200 {object} dto.SubmitQuizResponse
// @Failure 400 {object} dto.ErrorResponse "Answers not an array, or count mismatch"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes/{quizCode}/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authorized, no token"})
		return
	}

	var req dto.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("quizCode", ctx.Param("quizCode")).Msg("SubmitQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: `Invalid submission format. "answers" should be an array.`})
		return
	}

	resp, err := c.submissionService.SubmitQuiz(user.ID, ctx.Param("quizCode"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
