package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/health-api/internal/handler"
	"github.com/clinicore/health-api/internal/model"
	"github.com/clinicore/health-api/internal/repository"
)

type Handler struct {
	patients repository.PatientRepository
	programs repository.ProgramRepository
}

func NewHandler(patients repository.PatientRepository, programs repository.ProgramRepository) *Handler {
	return &Handler{
		patients: patients,
		programs: programs,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.HealthCheck)
}

// HealthCheck reports record counts; it sits outside the API-key guard.
func (h *Handler) HealthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	patientCount, err := h.patients.Count(ctx)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	programCount, err := h.programs.Count(ctx)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	snapshot := &model.HealthSnapshot{
		Status:   "healthy",
		Patients: patientCount,
		Programs: programCount,
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(snapshot, "System health check"))
}
