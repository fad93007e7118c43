package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/buildledger/backend/internal/application/usecase/catalog"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
	"github.com/buildledger/backend/internal/integration/entrypoint/dto"
)

// CatalogController handles catalog endpoints: price items, material types,
// work types and transaction categories.
type CatalogController struct {
	createPriceItemUseCase    *catalog.CreatePriceItemUseCase
	getPriceItemUseCase       *catalog.GetPriceItemUseCase
	createMaterialTypeUseCase *catalog.CreateMaterialTypeUseCase
	createWorkTypeUseCase     *catalog.CreateWorkTypeUseCase
	createCategoryUseCase     *catalog.CreateCategoryUseCase
	listUseCase               *catalog.ListCatalogUseCase
}

// NewCatalogController creates a new catalog controller instance.
func NewCatalogController(
	createPriceItemUseCase *catalog.CreatePriceItemUseCase,
	getPriceItemUseCase *catalog.GetPriceItemUseCase,
	createMaterialTypeUseCase *catalog.CreateMaterialTypeUseCase,
	createWorkTypeUseCase *catalog.CreateWorkTypeUseCase,
	createCategoryUseCase *catalog.CreateCategoryUseCase,
	listUseCase *catalog.ListCatalogUseCase,
) *CatalogController {
	return &CatalogController{
		createPriceItemUseCase:    createPriceItemUseCase,
		getPriceItemUseCase:       getPriceItemUseCase,
		createMaterialTypeUseCase: createMaterialTypeUseCase,
		createWorkTypeUseCase:     createWorkTypeUseCase,
		createCategoryUseCase:     createCategoryUseCase,
		listUseCase:               listUseCase,
	}
}

// ListPriceItems handles GET /price-items requests.
func (c *CatalogController) ListPriceItems(ctx *gin.Context) {
	items, err := c.listUseCase.PriceItems(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve price items",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPriceItemListResponse(items))
}

// GetPriceItem handles GET /price-items/:id requests: the lookup used to
// prefill estimate line item forms.
func (c *CatalogController) GetPriceItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.getPriceItemUseCase.Execute(ctx.Request.Context(), catalog.GetPriceItemInput{ID: id})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPriceItemResponse(output.PriceItem))
}

// CreatePriceItem handles POST /price-items requests.
func (c *CatalogController) CreatePriceItem(ctx *gin.Context) {
	var req dto.CreatePriceItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	typeID, err := parseOptionalUUID(&req.TypeID)
	if err != nil || typeID == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid type ID format",
		})
		return
	}

	pricePerUnit, err := decimal.NewFromString(req.PricePerUnit)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid price_per_unit value",
		})
		return
	}

	output, err := c.createPriceItemUseCase.Execute(ctx.Request.Context(), catalog.CreatePriceItemInput{
		Name:         req.Name,
		Kind:         entity.PriceItemKind(req.Kind),
		TypeID:       *typeID,
		Unit:         req.Unit,
		PricePerUnit: pricePerUnit,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPriceItemResponse(output.PriceItem))
}

// ListMaterialTypes handles GET /material-types requests.
func (c *CatalogController) ListMaterialTypes(ctx *gin.Context) {
	types, err := c.listUseCase.MaterialTypes(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve material types",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMaterialTypeListResponse(types))
}

// CreateMaterialType handles POST /material-types requests.
func (c *CatalogController) CreateMaterialType(ctx *gin.Context) {
	req, ok := bindReferenceRequest(ctx)
	if !ok {
		return
	}

	materialType, err := c.createMaterialTypeUseCase.Execute(ctx.Request.Context(), catalog.CreateReferenceInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMaterialTypeResponse(materialType))
}

// ListWorkTypes handles GET /work-types requests.
func (c *CatalogController) ListWorkTypes(ctx *gin.Context) {
	types, err := c.listUseCase.WorkTypes(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve work types",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWorkTypeListResponse(types))
}

// CreateWorkType handles POST /work-types requests.
func (c *CatalogController) CreateWorkType(ctx *gin.Context) {
	req, ok := bindReferenceRequest(ctx)
	if !ok {
		return
	}

	workType, err := c.createWorkTypeUseCase.Execute(ctx.Request.Context(), catalog.CreateReferenceInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWorkTypeResponse(workType))
}

// ListCategories handles GET /categories requests.
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	categories, err := c.listUseCase.Categories(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(categories))
}

// CreateCategory handles POST /categories requests.
func (c *CatalogController) CreateCategory(ctx *gin.Context) {
	req, ok := bindReferenceRequest(ctx)
	if !ok {
		return
	}

	category, err := c.createCategoryUseCase.Execute(ctx.Request.Context(), catalog.CreateReferenceInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// bindReferenceRequest binds the shared reference entry request body, writing
// the error response on failure.
func bindReferenceRequest(ctx *gin.Context) (dto.CreateReferenceRequest, bool) {
	var req dto.CreateReferenceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return req, false
	}
	return req, true
}

// handleCatalogError maps catalog errors to HTTP responses.
func handleCatalogError(ctx *gin.Context, err error) {
	var catErr *domainerror.CatalogError
	if errors.As(err, &catErr) {
		ctx.JSON(statusCodeForCatalogError(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForCatalogError maps catalog error codes to HTTP status codes.
func statusCodeForCatalogError(code domainerror.CatalogErrorCode) int {
	switch code {
	case domainerror.ErrCodePriceItemNotFound,
		domainerror.ErrCodePriceItemTypeNotFound,
		domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPriceItemKind:
		return http.StatusBadRequest
	case domainerror.ErrCodeCatalogNameTaken, domainerror.ErrCodeCategoryInUse:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
