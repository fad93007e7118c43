package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildledger/backend/internal/application/usecase/estimate"
	"github.com/buildledger/backend/internal/application/usecase/report"
	"github.com/buildledger/backend/internal/domain/entity"
	"github.com/buildledger/backend/internal/integration/entrypoint/dto"
)

// EstimateItemController handles estimate line item endpoints.
type EstimateItemController struct {
	createUseCase *estimate.CreateEstimateItemUseCase
	listUseCase   *estimate.ListEstimateItemsUseCase
	updateUseCase *estimate.UpdateEstimateItemUseCase
	deleteUseCase *estimate.DeleteEstimateItemUseCase
	reportUseCase *report.NodeTransactionsUseCase
}

// NewEstimateItemController creates a new estimate item controller instance.
func NewEstimateItemController(
	createUseCase *estimate.CreateEstimateItemUseCase,
	listUseCase *estimate.ListEstimateItemsUseCase,
	updateUseCase *estimate.UpdateEstimateItemUseCase,
	deleteUseCase *estimate.DeleteEstimateItemUseCase,
	reportUseCase *report.NodeTransactionsUseCase,
) *EstimateItemController {
	return &EstimateItemController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		reportUseCase: reportUseCase,
	}
}

// List handles GET /estimates/:id/items requests. Catalog entries are
// resolved so the client can show names and units.
func (c *EstimateItemController) List(ctx *gin.Context) {
	estimateID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), estimate.ListEstimateItemsInput{EstimateID: estimateID})
	if err != nil {
		handleEstimateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEstimateItemWithPriceItemListResponse(output.Items))
}

// Create handles POST /estimates/:id/items requests.
func (c *EstimateItemController) Create(ctx *gin.Context) {
	estimateID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.CreateEstimateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := estimate.CreateEstimateItemInput{
		EstimateID:   estimateID,
		Description:  req.Description,
		IncomeType:   entity.IncomeType(req.IncomeType),
		IsPercentage: req.IsPercentage,
	}
	if !c.bindItemFields(ctx, req.PriceItemID, req.Quantity, req.UnitPrice, req.IncomeValue,
		&input.PriceItemID, &input.Quantity, &input.UnitPrice, &input.IncomeValue) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleEstimateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEstimateItemResponse(output.Item))
}

// Update handles PATCH /estimate-items/:id requests. All input fields are
// replaced and the derived amounts recomputed.
func (c *EstimateItemController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEstimateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := estimate.UpdateEstimateItemInput{
		ID:           id,
		Description:  req.Description,
		IncomeType:   entity.IncomeType(req.IncomeType),
		IsPercentage: req.IsPercentage,
	}
	if !c.bindItemFields(ctx, req.PriceItemID, req.Quantity, req.UnitPrice, req.IncomeValue,
		&input.PriceItemID, &input.Quantity, &input.UnitPrice, &input.IncomeValue) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleEstimateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEstimateItemResponse(output.Item))
}

// Delete handles DELETE /estimate-items/:id requests. Generated transactions
// survive with the item reference cleared.
func (c *EstimateItemController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), estimate.DeleteEstimateItemInput{ID: id}); err != nil {
		handleEstimateError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Transactions handles GET /estimate-items/:id/transactions requests.
func (c *EstimateItemController) Transactions(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.reportUseCase.Execute(ctx.Request.Context(), report.NodeTransactionsInput{
		Node: report.NodeRef{Kind: report.NodeItem, ID: id},
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build transaction report",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNodeTransactionsResponse(output))
}

// bindItemFields parses the shared line item request fields into the use case
// input, writing the error response on failure.
func (c *EstimateItemController) bindItemFields(
	ctx *gin.Context,
	priceItemID *string, quantity, unitPrice, incomeValue string,
	outPriceItemID **uuid.UUID, outQuantity, outUnitPrice, outIncomeValue *decimal.Decimal,
) bool {
	var err error
	if *outPriceItemID, err = parseOptionalUUID(priceItemID); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid price_item_id format"})
		return false
	}
	if *outQuantity, err = decimal.NewFromString(quantity); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid quantity value"})
		return false
	}
	if *outUnitPrice, err = parseDecimalValue(unitPrice); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid unit_price value"})
		return false
	}
	if *outIncomeValue, err = parseDecimalValue(incomeValue); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid income_value value"})
		return false
	}
	return true
}

// parseDecimalValue parses an optional decimal request field, defaulting to
// zero when absent.
func parseDecimalValue(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}
