package http

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"carbon-quiz-service/internal/app"
	"carbon-quiz-service/internal/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// adminUser is the only account accepted by the admin endpoints.
const adminUser = "admin"

// Handler serves the JSON API: the public quiz endpoints and the admin dashboard.
type Handler struct {
	bank          domain.Bank
	submissions   *app.SubmissionService
	overview      app.OverviewReader
	admin         *app.AdminService
	adminPassword string
}

func NewHandler(bank domain.Bank, submissions *app.SubmissionService, overview app.OverviewReader, admin *app.AdminService, adminPassword string) *Handler {
	return &Handler{
		bank:          bank,
		submissions:   submissions,
		overview:      overview,
		admin:         admin,
		adminPassword: adminPassword,
	}
}

// NewRouter wires h and ws into a gin engine. An empty corsOrigins allows any origin.
func NewRouter(h *Handler, ws *WSHandler, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	corsCfg.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")
	api.GET("/health", h.health)
	api.GET("/questions", h.questions)
	api.POST("/results", h.submit)

	admin := api.Group("/admin", h.adminAuth()...)
	admin.GET("/overview", h.getOverview)
	admin.GET("/result/:id", h.getResult)
	admin.GET("/export", h.export)

	if ws != nil {
		r.GET("/ws", gin.WrapF(ws.ServeWS))
	}
	return r
}

func (h *Handler) adminAuth() []gin.HandlerFunc {
	if h.adminPassword == "" {
		return []gin.HandlerFunc{func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Admin password not configured."})
		}}
	}
	return []gin.HandlerFunc{gin.BasicAuthForRealm(gin.Accounts{adminUser: h.adminPassword}, "Admin Dashboard")}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) questions(c *gin.Context) {
	c.JSON(http.StatusOK, h.bank)
}

type submitRequest struct {
	User    domain.UserInfo `json:"user"`
	Answers []domain.Answer `json:"answers"`
}

type submitResponse struct {
	ID          int64             `json:"id"`
	Result      domain.QuizResult `json:"result"`
	SubmittedAt string            `json:"submittedAt"`
}

func (h *Handler) submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	sub, err := h.submissions.Submit(c.Request.Context(), req.User, req.Answers)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, submitResponse{
		ID:          sub.ID,
		Result:      sub.Result,
		SubmittedAt: domain.FormatTimestamp(sub.SubmittedAt),
	})
}

func (h *Handler) getOverview(c *gin.Context) {
	ov, err := h.overview.Overview(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ov)
}

func (h *Handler) getResult(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid result id"})
		return
	}
	detail, err := h.admin.Detail(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) export(c *gin.Context) {
	full := c.Query("full") == "1" || c.Query("full") == "true"
	var buf bytes.Buffer
	if err := h.admin.Export(c.Request.Context(), &buf, full); err != nil {
		writeError(c, err)
		return
	}
	filename := "quiz-results.csv"
	if full {
		filename = "quiz-results-full.csv"
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrProgressNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMalformedRecord):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		_ = c.Error(err)
		msg = http.StatusText(status)
	}
	c.JSON(status, gin.H{"error": msg})
}
