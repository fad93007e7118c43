package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildledger/backend/internal/application/usecase/project"
	"github.com/buildledger/backend/internal/application/usecase/report"
	"github.com/buildledger/backend/internal/integration/entrypoint/dto"
)

// SiteController handles construction site endpoints.
type SiteController struct {
	createUseCase *project.CreateSiteUseCase
	listUseCase   *project.ListSitesUseCase
	getUseCase    *project.GetSiteUseCase
	updateUseCase *project.UpdateSiteUseCase
	deleteUseCase *project.DeleteSiteUseCase
	reportUseCase *report.NodeTransactionsUseCase
}

// NewSiteController creates a new site controller instance.
func NewSiteController(
	createUseCase *project.CreateSiteUseCase,
	listUseCase *project.ListSitesUseCase,
	getUseCase *project.GetSiteUseCase,
	updateUseCase *project.UpdateSiteUseCase,
	deleteUseCase *project.DeleteSiteUseCase,
	reportUseCase *report.NodeTransactionsUseCase,
) *SiteController {
	return &SiteController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		reportUseCase: reportUseCase,
	}
}

// List handles GET /sites?project_id= requests.
func (c *SiteController) List(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Query("project_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "project_id query parameter is required",
		})
		return
	}

	sites, err := c.listUseCase.Execute(ctx.Request.Context(), projectID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve sites",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSiteListResponse(sites))
}

// Get handles GET /sites/:id requests.
func (c *SiteController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	site, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSiteResponse(site))
}

// Create handles POST /sites requests.
func (c *SiteController) Create(ctx *gin.Context) {
	var req dto.CreateSiteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID format",
		})
		return
	}

	input := project.CreateSiteInput{
		ProjectID: projectID,
		Name:      req.Name,
		Address:   req.Address,
	}
	if input.PlannedStartDate, err = parseDateField(req.PlannedStartDate); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid planned_start_date format, expected YYYY-MM-DD"})
		return
	}
	if input.PlannedEndDate, err = parseDateField(req.PlannedEndDate); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid planned_end_date format, expected YYYY-MM-DD"})
		return
	}
	if input.EstimatedBudget, err = parseDecimalField(req.EstimatedBudget); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid estimated_budget value"})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSiteResponse(output.Site))
}

// Update handles PATCH /sites/:id requests.
func (c *SiteController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSiteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := project.UpdateSiteInput{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
	}
	var err error
	if input.PlannedStartDate, err = parseDateField(req.PlannedStartDate); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid planned_start_date format, expected YYYY-MM-DD"})
		return
	}
	if input.PlannedEndDate, err = parseDateField(req.PlannedEndDate); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid planned_end_date format, expected YYYY-MM-DD"})
		return
	}
	if input.ActualEndDate, err = parseDateField(req.ActualEndDate); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid actual_end_date format, expected YYYY-MM-DD"})
		return
	}
	if input.EstimatedBudget, err = parseDecimalField(req.EstimatedBudget); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid estimated_budget value"})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSiteResponse(output.Site))
}

// Delete handles DELETE /sites/:id requests.
func (c *SiteController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		handleProjectError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Transactions handles GET /sites/:id/transactions requests.
func (c *SiteController) Transactions(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.reportUseCase.Execute(ctx.Request.Context(), report.NodeTransactionsInput{
		Node: report.NodeRef{Kind: report.NodeSite, ID: id},
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build transaction report",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNodeTransactionsResponse(output))
}

// parseDateField parses an optional YYYY-MM-DD request field.
func parseDateField(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// parseDecimalField parses an optional decimal request field.
func parseDecimalField(value *string) (*decimal.Decimal, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := decimal.NewFromString(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
