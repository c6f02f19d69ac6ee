package patient

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/health-api/internal/handler"
	"github.com/clinicore/health-api/internal/model"
	"github.com/clinicore/health-api/internal/service/enrollment"
	"github.com/clinicore/health-api/internal/service/patient"
)

type Handler struct {
	service     patient.PatientService
	enrollments enrollment.EnrollmentService
}

func NewHandler(service patient.PatientService, enrollments enrollment.EnrollmentService) *Handler {
	return &Handler{
		service:     service,
		enrollments: enrollments,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.POST("", h.RegisterPatient)
		patients.GET("", h.ListPatients)
		patients.GET("/search", h.SearchPatients)
		patients.GET("/:id", h.GetPatient)
		patients.GET("/:id/recommendations", h.GetRecommendations)
	}
}

func (h *Handler) RegisterPatient(c *gin.Context) {
	var req model.RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	p, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(p, "Patient registered successfully"))
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(patients, fmt.Sprintf("Found %d patients", len(patients))))
}

func (h *Handler) SearchPatients(c *gin.Context) {
	var filter model.PatientFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	patients, err := h.service.Search(c.Request.Context(), &filter)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(patients, fmt.Sprintf("Found %d matching patients", len(patients))))
}

func (h *Handler) GetPatient(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(p, "Patient retrieved"))
}

func (h *Handler) GetRecommendations(c *gin.Context) {
	recommendations, err := h.enrollments.Recommend(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(recommendations, "Recommendations generated"))
}
