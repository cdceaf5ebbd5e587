package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	domainerrors "github.com/LancemDev/greenconnect-test/internal/domain/errors"
	"github.com/LancemDev/greenconnect-test/internal/interfaces/http/middleware"
	"github.com/LancemDev/greenconnect-test/internal/interfaces/http/response"
	"github.com/LancemDev/greenconnect-test/internal/usecases"
)

// AssessmentHandler handles assessment endpoints
type AssessmentHandler struct {
	assessmentUsecase *usecases.AssessmentUsecase
	creditUsecase     *usecases.CreditUsecase
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentUsecase *usecases.AssessmentUsecase, creditUsecase *usecases.CreditUsecase) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentUsecase: assessmentUsecase,
		creditUsecase:     creditUsecase,
	}
}

// Request runs an assessment for a project
// POST /api/v1/projects/:id/assessments
func (h *AssessmentHandler) Request(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project ID"))
		return
	}

	assessment, result, err := h.assessmentUsecase.Request(c.Request.Context(), userID, projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"assessment": assessment,
		"result":     result,
	})
}

// List returns all assessments for the authenticated user's project
// GET /api/v1/projects/:id/assessments
func (h *AssessmentHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project ID"))
		return
	}

	assessments, err := h.assessmentUsecase.ListByProject(c.Request.Context(), userID, projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, assessments)
}

// Review approves or rejects a pending assessment
// POST /api/v1/assessments/:id/approve
func (h *AssessmentHandler) Review(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	assessmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid assessment ID"))
		return
	}

	// status defaults to approved; callers may explicitly reject
	input := struct {
		Status string `json:"status" binding:"omitempty,oneof=approved rejected"`
	}{Status: string(entities.AssessmentStatusApproved)}
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if input.Status == "" {
		input.Status = string(entities.AssessmentStatusApproved)
	}

	assessment, err := h.assessmentUsecase.Review(c.Request.Context(), userID, assessmentID, entities.AssessmentStatus(input.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, assessment)
}

// IssueCredits mints a credit lot from an approved assessment
// POST /api/v1/assessments/:id/credits
func (h *AssessmentHandler) IssueCredits(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	assessmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid assessment ID"))
		return
	}

	lot, err := h.creditUsecase.Issue(c.Request.Context(), userID, assessmentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, lot)
}

// ListProjectCredits returns all credit lots issued for the authenticated
// user's project
// GET /api/v1/projects/:id/credits
func (h *AssessmentHandler) ListProjectCredits(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid project ID"))
		return
	}

	lots, err := h.creditUsecase.ListByProject(c.Request.Context(), userID, projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, lots)
}
