package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/application/usecase/transaction"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
	"github.com/buildledger/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests. Type, category and date range
// filters combine with AND semantics.
func (c *TransactionController) List(ctx *gin.Context) {
	filter, ok := c.parseFilter(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{Filter: filter})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transactions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount value",
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	contractorID, err := parseOptionalUUID(req.ContractorID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid contractor ID format",
		})
		return
	}

	attachment, err := c.parseAttachment(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		Amount:       amount,
		Type:         entity.TransactionType(req.Type),
		CategoryID:   categoryID,
		ContractorID: contractorID,
		Description:  req.Description,
		Date:         date,
		Attachment:   attachment,
	})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{ID: id}); err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseFilter parses the list query parameters, writing the error response
// on failure.
func (c *TransactionController) parseFilter(ctx *gin.Context) (adapter.TransactionFilter, bool) {
	var filter adapter.TransactionFilter

	if raw := ctx.Query("type"); raw != "" {
		txType := entity.TransactionType(raw)
		if !entity.IsValidTransactionType(txType) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid type filter"})
			return filter, false
		}
		filter.Type = &txType
	}

	if raw := ctx.Query("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid category_id filter"})
			return filter, false
		}
		filter.CategoryID = &categoryID
	}

	if raw := ctx.Query("start_date"); raw != "" {
		startDate, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid start_date filter, expected YYYY-MM-DD"})
			return filter, false
		}
		filter.StartDate = &startDate
	}

	if raw := ctx.Query("end_date"); raw != "" {
		endDate, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid end_date filter, expected YYYY-MM-DD"})
			return filter, false
		}
		filter.EndDate = &endDate
	}

	return filter, true
}

// parseAttachment resolves the at-most-one-of attachment fields into the
// domain form.
func (c *TransactionController) parseAttachment(req dto.CreateTransactionRequest) (entity.Attachment, error) {
	set := 0
	for _, field := range []*string{req.StageID, req.EstimateID, req.EstimateItemID} {
		if field != nil && *field != "" {
			set++
		}
	}
	if set > 1 {
		return entity.Attachment{}, errors.New("at most one of stage_id, estimate_id and estimate_item_id may be set")
	}

	switch {
	case req.StageID != nil && *req.StageID != "":
		id, err := uuid.Parse(*req.StageID)
		if err != nil {
			return entity.Attachment{}, errors.New("invalid stage_id format")
		}
		return entity.AttachToStage(id), nil
	case req.EstimateID != nil && *req.EstimateID != "":
		id, err := uuid.Parse(*req.EstimateID)
		if err != nil {
			return entity.Attachment{}, errors.New("invalid estimate_id format")
		}
		return entity.AttachToEstimate(id), nil
	case req.EstimateItemID != nil && *req.EstimateItemID != "":
		id, err := uuid.Parse(*req.EstimateItemID)
		if err != nil {
			return entity.Attachment{}, errors.New("invalid estimate_item_id format")
		}
		return entity.AttachToItem(id), nil
	default:
		return entity.Attachment{}, nil
	}
}

// handleTransactionError maps transaction errors to HTTP responses.
func handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(statusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var estErr *domainerror.EstimateError
	if errors.As(err, &estErr) {
		ctx.JSON(statusCodeForEstimateError(estErr.Code), dto.ErrorResponse{
			Error: estErr.Message,
			Code:  string(estErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForTransactionError maps transaction error codes to HTTP status
// codes.
func statusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeTxnCategoryNotFound,
		domainerror.ErrCodeAttachmentTargetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeEmptyDirectives:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
