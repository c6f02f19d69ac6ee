package program

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/health-api/internal/handler"
	"github.com/clinicore/health-api/internal/model"
	"github.com/clinicore/health-api/internal/service/program"
)

type Handler struct {
	service program.ProgramService
}

func NewHandler(service program.ProgramService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	programs := r.Group("/programs")
	{
		programs.POST("", h.CreateProgram)
		programs.GET("", h.ListPrograms)
	}
}

func (h *Handler) CreateProgram(c *gin.Context) {
	var req model.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	p, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(p, "Program created successfully"))
}

func (h *Handler) ListPrograms(c *gin.Context) {
	programs, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(programs, fmt.Sprintf("Found %d programs", len(programs))))
}
