package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/usecase/project"
	"github.com/buildledger/backend/internal/application/usecase/report"
	"github.com/buildledger/backend/internal/integration/entrypoint/dto"
)

// StageController handles stage endpoints.
type StageController struct {
	createUseCase *project.CreateStageUseCase
	listUseCase   *project.ListStagesUseCase
	getUseCase    *project.GetStageUseCase
	updateUseCase *project.UpdateStageUseCase
	deleteUseCase *project.DeleteStageUseCase
	reportUseCase *report.NodeTransactionsUseCase
}

// NewStageController creates a new stage controller instance.
func NewStageController(
	createUseCase *project.CreateStageUseCase,
	listUseCase *project.ListStagesUseCase,
	getUseCase *project.GetStageUseCase,
	updateUseCase *project.UpdateStageUseCase,
	deleteUseCase *project.DeleteStageUseCase,
	reportUseCase *report.NodeTransactionsUseCase,
) *StageController {
	return &StageController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		reportUseCase: reportUseCase,
	}
}

// List handles GET /stages?site_id= requests.
func (c *StageController) List(ctx *gin.Context) {
	siteID, err := uuid.Parse(ctx.Query("site_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "site_id query parameter is required",
		})
		return
	}

	stages, err := c.listUseCase.Execute(ctx.Request.Context(), siteID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve stages",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStageListResponse(stages))
}

// Get handles GET /stages/:id requests.
func (c *StageController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	stage, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		handleProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStageResponse(stage))
}

// Create handles POST /stages requests.
func (c *StageController) Create(ctx *gin.Context) {
	var req dto.CreateStageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	siteID, err := uuid.Parse(req.SiteID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid site ID format",
		})
		return
	}

	input := project.CreateStageInput{
		SiteID: siteID,
		Order:  req.Order,
		Name:   req.Name,
	}
	if input.PlannedStartDate, err = parseDateField(req.PlannedStartDate); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid planned_start_date format, expected YYYY-MM-DD"})
		return
	}
	if input.PlannedEndDate, err = parseDateField(req.PlannedEndDate); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid planned_end_date format, expected YYYY-MM-DD"})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToStageResponse(output.Stage))
}

// Update handles PATCH /stages/:id requests.
func (c *StageController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := project.UpdateStageInput{
		ID:    id,
		Order: req.Order,
		Name:  req.Name,
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

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleProjectError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStageResponse(output.Stage))
}

// Delete handles DELETE /stages/:id requests.
func (c *StageController) Delete(ctx *gin.Context) {
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

// Transactions handles GET /stages/:id/transactions requests.
func (c *StageController) Transactions(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.reportUseCase.Execute(ctx.Request.Context(), report.NodeTransactionsInput{
		Node: report.NodeRef{Kind: report.NodeStage, ID: id},
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build transaction report",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNodeTransactionsResponse(output))
}
