package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"studytrack/internal/application/command"
	"studytrack/internal/application/interfaces"
	"studytrack/internal/application/query"
	"studytrack/internal/application/services"
	"studytrack/internal/application/session"
	"studytrack/internal/domain/entities"
	"studytrack/internal/i18n"
)

type Handler struct {
	users      interfaces.UserService
	doubts     *services.DoubtService
	studyLogs  *services.StudyLogService
	classes    *services.ClassService
	quizzes    *services.QuizService
	mockTests  *services.MockTestService
	registry   *session.Registry
	translator *i18n.Translator
	timeout    time.Duration
	rateLimit  int
}

func NewHandler(
	users interfaces.UserService,
	doubts *services.DoubtService,
	studyLogs *services.StudyLogService,
	classes *services.ClassService,
	quizzes *services.QuizService,
	mockTests *services.MockTestService,
	registry *session.Registry,
	translator *i18n.Translator,
	timeout time.Duration,
	rateLimit int,
) *Handler {
	return &Handler{
		users:      users,
		doubts:     doubts,
		studyLogs:  studyLogs,
		classes:    classes,
		quizzes:    quizzes,
		mockTests:  mockTests,
		registry:   registry,
		translator: translator,
		timeout:    timeout,
		rateLimit:  rateLimit,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	api := e.Group("/api")
	api.Use(SessionMiddleware(h.registry))
	api.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(h.rateLimit))))

	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout)
	api.GET("/me", h.Me)
	api.PUT("/me/preferences", h.UpdatePreferences)
	api.POST("/me/onboarded", h.CompleteOnboarding)

	api.GET("/doubts", h.ListDoubts)
	api.POST("/doubts", h.SubmitDoubt)
	api.POST("/doubts/:id/response", h.RespondDoubt)

	api.GET("/study-logs", h.StudyLogHistory)
	api.POST("/study-logs", h.CreateStudyLog)

	api.GET("/class-data", h.ListClassData)
	api.POST("/class-data", h.UpsertClassData)

	api.GET("/quizzes", h.ListQuizzes)
	api.POST("/quizzes", h.SubmitQuizResult)

	api.GET("/mock-tests", h.ListMockTests)
	api.POST("/mock-tests", h.CreateMockTest)
	api.POST("/mock-tests/:id/results", h.SubmitMockTestResult)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), h.timeout)
}

func pageQuery(c echo.Context) query.PageQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	return query.PageQuery{Page: page, PageSize: pageSize}
}

type loginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid_body"})
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.users.Authenticate(ctx, currentSession(c), &command.AuthenticateCommand{
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) Logout(c echo.Context) error {
	h.users.Logout(currentSession(c))
	h.registry.Drop(currentToken(c))
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Me(c echo.Context) error {
	user := h.users.CurrentUser(currentSession(c))
	if user == nil {
		return c.NoContent(http.StatusUnauthorized)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdatePreferences(c echo.Context) error {
	var prefs entities.Preferences
	if err := c.Bind(&prefs); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid_body"})
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	user, err := h.users.UpdatePreferences(ctx, currentSession(c), prefs)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) CompleteOnboarding(c echo.Context) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	user, err := h.users.CompleteOnboarding(ctx, currentSession(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

type submitDoubtRequest struct {
	Topic    string `json:"topic"`
	Question string `json:"question"`
}

func (h *Handler) SubmitDoubt(c echo.Context) error {
	var req submitDoubtRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid_body"})
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.doubts.Submit(ctx, currentSession(c), &command.SubmitDoubtCommand{
		Topic:    req.Topic,
		Question: req.Question,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, result.Result)
}

func (h *Handler) ListDoubts(c echo.Context) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var (
		page *query.Paginated[*entities.Doubt]
		err  error
	)
	if c.QueryParam("mine") == "true" {
		page, err = h.doubts.ListMine(ctx, currentSession(c), pageQuery(c))
	} else {
		page, err = h.doubts.List(ctx, pageQuery(c))
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, paginatedResponse(page))
}

type respondDoubtRequest struct {
	Response string `json:"response"`
}

func (h *Handler) RespondDoubt(c echo.Context) error {
	doubtID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid_id"})
	}

	var req respondDoubtRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid_body"})
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.doubts.Respond(ctx, currentSession(c), &command.RespondDoubtCommand{
		DoubtID:  doubtID,
		Response: req.Response,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, result.Result)
}

type createStudyLogRequest struct {
	Date     string   `json:"date"`
	Subject  string   `json:"subject"`
	Topics   []string `json:"topics"`
	Notes    string   `json:"notes"`
	Homework string   `json:"homework"`
	Points   int      `json:"points"`
}

func (h *Handler) CreateStudyLog(c echo.Context) error {
	var req createStudyLogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid_body"})
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.studyLogs.Create(ctx, currentSession(c), &command.CreateStudyLogCommand{
		Date:     req.Date,
		Subject:  req.Subject,
		Topics:   req.Topics,
		Notes:    req.Notes,
		Homework: req.Homework,
		Points:   req.Points,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, result.Result)
}

func (h *Handler) StudyLogHistory(c echo.Context) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	page, err := h.studyLogs.History(ctx, currentSession(c), pageQuery(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, paginatedResponse(page))
}

func (h *Handler) ListClassData(c echo.Context) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	data, err := h.classes.List(ctx)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, data)
}

type upsertClassDataRequest struct {
	Date     string   `json:"date"`
	Subject  string   `json:"subject"`
	Topics   []string `json:"topics"`
	Homework string   `json:"homework"`
	Notes    string   `json:"notes"`
}

func (h *Handler) UpsertClassData(c echo.Context) error {
	var req upsertClassDataRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid_body"})
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.classes.Upsert(ctx, currentSession(c), &command.UpsertClassDataCommand{
		Date:     req.Date,
		Subject:  req.Subject,
		Topics:   req.Topics,
		Homework: req.Homework,
		Notes:    req.Notes,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, result.Result)
}

type submitQuizResultRequest struct {
	Topic string `json:"topic"`
	Score int    `json:"score"`
	Total int    `json:"total"`
}

func (h *Handler) SubmitQuizResult(c echo.Context) error {
	var req submitQuizResultRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid_body"})
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.quizzes.SubmitResult(ctx, currentSession(c), &command.SubmitQuizResultCommand{
		Topic: req.Topic,
		Score: req.Score,
		Total: req.Total,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, result.Result)
}

func (h *Handler) ListQuizzes(c echo.Context) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	results, err := h.quizzes.ListMine(ctx, currentSession(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, results)
}

type createMockTestRequest struct {
	Title        string `json:"title"`
	Subject      string `json:"subject"`
	TotalMarks   int    `json:"total_marks"`
	ScheduledFor string `json:"scheduled_for"`
}

func (h *Handler) CreateMockTest(c echo.Context) error {
	var req createMockTestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid_body"})
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.mockTests.Create(ctx, currentSession(c), &command.CreateMockTestCommand{
		Title:        req.Title,
		Subject:      req.Subject,
		TotalMarks:   req.TotalMarks,
		ScheduledFor: req.ScheduledFor,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, result.Result)
}

func (h *Handler) ListMockTests(c echo.Context) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	page, err := h.mockTests.List(ctx, pageQuery(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, paginatedResponse(page))
}

type submitMockTestResultRequest struct {
	Marks int `json:"marks"`
}

func (h *Handler) SubmitMockTestResult(c echo.Context) error {
	testID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid_id"})
	}

	var req submitMockTestResultRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid_body"})
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.mockTests.SubmitResult(ctx, currentSession(c), &command.SubmitMockTestResultCommand{
		MockTestID: testID,
		Marks:      req.Marks,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, result.Result)
}

// paginatedResponse flattens a page and its bookkeeping for the wire.
func paginatedResponse[T any](page *query.Paginated[T]) map[string]any {
	return map[string]any{
		"items":       page.Items,
		"total_count": page.TotalCount,
		"page":        page.Page,
		"page_size":   page.PageSize,
		"total_pages": page.TotalPages(),
	}
}
