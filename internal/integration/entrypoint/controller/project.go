package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/usecase/project"
	"github.com/buildledger/backend/internal/application/usecase/report"
	domainerror "github.com/buildledger/backend/internal/domain/error"
	"github.com/buildledger/backend/internal/integration/entrypoint/dto"
)

// ProjectController handles project endpoints.
type ProjectController struct {
	createUseCase *project.CreateProjectUseCase
	listUseCase   *project.ListProjectsUseCase
	getUseCase    *project.GetProjectUseCase
	updateUseCase *project.UpdateProjectUseCase
	deleteUseCase *project.DeleteProjectUseCase
	reportUseCase *report.NodeTransactionsUseCase
}

// NewProjectController creates a new project controller instance.
func NewProjectController(
	createUseCase *project.CreateProjectUseCase,
	listUseCase *project.ListProjectsUseCase,
	getUseCase *project.GetProjectUseCase,
	updateUseCase *project.UpdateProjectUseCase,
	deleteUseCase *project.DeleteProjectUseCase,
	reportUseCase *report.NodeTransactionsUseCase,
) *ProjectController {
	return &ProjectController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		reportUseCase: reportUseCase,
	}
}

// List handles GET /projects requests.
func (c *ProjectController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve projects",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectListResponse(output.Projects))
}

// Get handles GET /projects/:id requests.
func (c *ProjectController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	projectEntity, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectResponse(projectEntity))
}

// Create handles POST /projects requests.
func (c *ProjectController) Create(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	contractorID, err := uuid.Parse(req.ContractorID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid contractor ID format",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), project.CreateProjectInput{
		Name:         req.Name,
		Description:  req.Description,
		ContractorID: contractorID,
	})
	if err != nil {
		handleProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProjectResponse(output.Project))
}

// Update handles PATCH /projects/:id requests.
func (c *ProjectController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), project.UpdateProjectInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectResponse(output.Project))
}

// Delete handles DELETE /projects/:id requests. The delete cascades down the
// whole hierarchy.
func (c *ProjectController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), project.DeleteProjectInput{ID: id}); err != nil {
		handleProjectError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Transactions handles GET /projects/:id/transactions requests: the roll-up
// of every transaction attached anywhere under the project.
func (c *ProjectController) Transactions(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.reportUseCase.Execute(ctx.Request.Context(), report.NodeTransactionsInput{
		Node: report.NodeRef{Kind: report.NodeProject, ID: id},
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build transaction report",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNodeTransactionsResponse(output))
}

// parseIDParam parses the :id path parameter as a UUID, writing the error
// response on failure.
func parseIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleProjectError maps hierarchy errors to HTTP responses.
func handleProjectError(ctx *gin.Context, err error) {
	var prjErr *domainerror.ProjectError
	if errors.As(err, &prjErr) {
		ctx.JSON(statusCodeForProjectError(prjErr.Code), dto.ErrorResponse{
			Error: prjErr.Message,
			Code:  string(prjErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForProjectError maps hierarchy error codes to HTTP status codes.
func statusCodeForProjectError(code domainerror.ProjectErrorCode) int {
	switch code {
	case domainerror.ErrCodeProjectNotFound,
		domainerror.ErrCodeSiteNotFound,
		domainerror.ErrCodeStageNotFound,
		domainerror.ErrCodeContractorNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeStageOrderTaken:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
