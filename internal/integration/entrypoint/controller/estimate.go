package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/buildledger/backend/internal/application/usecase/estimate"
	"github.com/buildledger/backend/internal/application/usecase/export"
	"github.com/buildledger/backend/internal/application/usecase/report"
	"github.com/buildledger/backend/internal/application/usecase/transaction"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
	"github.com/buildledger/backend/internal/integration/entrypoint/dto"
)

// EstimateController handles estimate endpoints, including the xlsx export
// and bulk transaction generation.
type EstimateController struct {
	createUseCase   *estimate.CreateEstimateUseCase
	listUseCase     *estimate.ListEstimatesUseCase
	getUseCase      *estimate.GetEstimateUseCase
	updateUseCase   *estimate.UpdateEstimateUseCase
	totalsUseCase   *estimate.GetEstimateTotalsUseCase
	exportUseCase   *export.ExportEstimateUseCase
	generateUseCase *transaction.GenerateTransactionsUseCase
	reportUseCase   *report.NodeTransactionsUseCase
}

// NewEstimateController creates a new estimate controller instance.
func NewEstimateController(
	createUseCase *estimate.CreateEstimateUseCase,
	listUseCase *estimate.ListEstimatesUseCase,
	getUseCase *estimate.GetEstimateUseCase,
	updateUseCase *estimate.UpdateEstimateUseCase,
	totalsUseCase *estimate.GetEstimateTotalsUseCase,
	exportUseCase *export.ExportEstimateUseCase,
	generateUseCase *transaction.GenerateTransactionsUseCase,
	reportUseCase *report.NodeTransactionsUseCase,
) *EstimateController {
	return &EstimateController{
		createUseCase:   createUseCase,
		listUseCase:     listUseCase,
		getUseCase:      getUseCase,
		updateUseCase:   updateUseCase,
		totalsUseCase:   totalsUseCase,
		exportUseCase:   exportUseCase,
		generateUseCase: generateUseCase,
		reportUseCase:   reportUseCase,
	}
}

// List handles GET /estimates?stage_id= requests.
func (c *EstimateController) List(ctx *gin.Context) {
	stageID, err := uuid.Parse(ctx.Query("stage_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "stage_id query parameter is required",
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), estimate.ListEstimatesInput{StageID: stageID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve estimates",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEstimateListResponse(output.Estimates))
}

// Get handles GET /estimates/:id requests.
func (c *EstimateController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), estimate.GetEstimateInput{ID: id})
	if err != nil {
		handleEstimateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEstimateResponse(output.Estimate))
}

// Create handles POST /estimates requests.
func (c *EstimateController) Create(ctx *gin.Context) {
	var req dto.CreateEstimateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	stageID, err := uuid.Parse(req.StageID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid stage ID format",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), estimate.CreateEstimateInput{StageID: stageID})
	if err != nil {
		handleEstimateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEstimateResponse(output.Estimate))
}

// Update handles PATCH /estimates/:id requests.
func (c *EstimateController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEstimateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), estimate.UpdateEstimateInput{
		ID:     id,
		Status: entity.EstimateStatus(req.Status),
	})
	if err != nil {
		handleEstimateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEstimateResponse(output.Estimate))
}

// Totals handles GET /estimates/:id/totals requests.
func (c *EstimateController) Totals(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.totalsUseCase.Execute(ctx.Request.Context(), estimate.GetEstimateTotalsInput{EstimateID: id})
	if err != nil {
		handleEstimateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEstimateTotalsResponse(output.Totals))
}

// Export handles GET /estimates/:id/export?audience= requests. The workbook
// is served as an attachment download.
func (c *EstimateController) Export(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	audience := export.Audience(ctx.DefaultQuery("audience", string(export.AudienceSelf)))

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), export.ExportEstimateInput{
		EstimateID: id,
		Audience:   audience,
	})
	if err != nil {
		handleEstimateError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.FileName+`"`)
	ctx.Data(http.StatusOK, output.ContentType, output.Data)
}

// GenerateTransactions handles POST /estimates/:id/generate-transactions
// requests: the atomic conversion of line items into transactions.
func (c *EstimateController) GenerateTransactions(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.GenerateTransactionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := transaction.GenerateTransactionsInput{EstimateID: id}

	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		input.Date = date
	}

	for _, d := range req.Directives {
		directive, err := toItemDirective(d)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: err.Error(),
			})
			return
		}
		input.Directives = append(input.Directives, directive)
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.GenerateTransactionsResponse{CreatedCount: output.CreatedCount})
}

// Transactions handles GET /estimates/:id/transactions requests.
func (c *EstimateController) Transactions(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.reportUseCase.Execute(ctx.Request.Context(), report.NodeTransactionsInput{
		Node: report.NodeRef{Kind: report.NodeEstimate, ID: id},
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build transaction report",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNodeTransactionsResponse(output))
}

// toItemDirective converts a directive request into the use case form.
func toItemDirective(req dto.GenerateItemDirectiveRequest) (transaction.ItemDirective, error) {
	directive := transaction.ItemDirective{
		IncludeExpense:    req.IncludeExpense,
		IncludeIncome:     req.IncludeIncome,
		IncomeDescription: req.IncomeDescription,
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return directive, errors.New("invalid item_id format")
	}
	directive.ItemID = itemID

	if req.IncludeExpense {
		if directive.ExpenseCategoryID, err = uuid.Parse(req.ExpenseCategoryID); err != nil {
			return directive, errors.New("expense_category_id is required when include_expense is set")
		}
		if directive.ExpenseContractorID, err = parseOptionalUUID(req.ExpenseContractorID); err != nil {
			return directive, errors.New("invalid expense_contractor_id format")
		}
	}

	if req.IncludeIncome {
		if directive.IncomeCategoryID, err = uuid.Parse(req.IncomeCategoryID); err != nil {
			return directive, errors.New("income_category_id is required when include_income is set")
		}
		if directive.IncomeContractorID, err = parseOptionalUUID(req.IncomeContractorID); err != nil {
			return directive, errors.New("invalid income_contractor_id format")
		}
	}

	return directive, nil
}

// parseOptionalUUID parses an optional UUID request field.
func parseOptionalUUID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// handleEstimateError maps estimate errors to HTTP responses.
func handleEstimateError(ctx *gin.Context, err error) {
	var estErr *domainerror.EstimateError
	if errors.As(err, &estErr) {
		ctx.JSON(statusCodeForEstimateError(estErr.Code), dto.ErrorResponse{
			Error: estErr.Message,
			Code:  string(estErr.Code),
		})
		return
	}

	var catErr *domainerror.CatalogError
	if errors.As(err, &catErr) {
		ctx.JSON(statusCodeForCatalogError(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

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

// statusCodeForEstimateError maps estimate error codes to HTTP status codes.
func statusCodeForEstimateError(code domainerror.EstimateErrorCode) int {
	switch code {
	case domainerror.ErrCodeEstimateNotFound, domainerror.ErrCodeEstimateItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidEstimateStatus,
		domainerror.ErrCodeInvalidIncomeType,
		domainerror.ErrCodeNegativeQuantity,
		domainerror.ErrCodeInvalidAudience:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
