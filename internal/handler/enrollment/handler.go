package enrollment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/health-api/internal/handler"
	"github.com/clinicore/health-api/internal/model"
	"github.com/clinicore/health-api/internal/service/enrollment"
)

type Handler struct {
	service enrollment.EnrollmentService
}

func NewHandler(service enrollment.EnrollmentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/enroll", h.EnrollPatient)
}

func (h *Handler) EnrollPatient(c *gin.Context) {
	var req model.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	p, err := h.service.Enroll(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(p, "Patient enrolled successfully"))
}
