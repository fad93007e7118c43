// Package export renders estimates into downloadable spreadsheets.
package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/buildledger/backend/internal/application/adapter"
	"github.com/buildledger/backend/internal/domain/entity"
	domainerror "github.com/buildledger/backend/internal/domain/error"
)

// Audience selects whose view of the prices an export shows.
type Audience string

const (
	// AudienceClient prices each row at the client price.
	AudienceClient Audience = "client"
	// AudienceContractor prices each row at the contractor price.
	AudienceContractor Audience = "contractor"
	// AudienceSelf prices each row at the base price and adds a margin column.
	AudienceSelf Audience = "self"
)

// IsValidAudience validates the export audience.
func IsValidAudience(a Audience) bool {
	switch a {
	case AudienceClient, AudienceContractor, AudienceSelf:
		return true
	}
	return false
}

// ExportEstimateInput represents the input for estimate export.
type ExportEstimateInput struct {
	EstimateID uuid.UUID
	Audience   Audience
}

// ExportEstimateOutput carries the rendered workbook.
type ExportEstimateOutput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ExportEstimateUseCase renders an estimate as an xlsx workbook priced for the
// requested audience.
type ExportEstimateUseCase struct {
	estimateRepo adapter.EstimateRepository
	itemRepo     adapter.EstimateItemRepository
}

// NewExportEstimateUseCase creates a new ExportEstimateUseCase instance.
func NewExportEstimateUseCase(estimateRepo adapter.EstimateRepository, itemRepo adapter.EstimateItemRepository) *ExportEstimateUseCase {
	return &ExportEstimateUseCase{
		estimateRepo: estimateRepo,
		itemRepo:     itemRepo,
	}
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Execute builds the workbook.
func (uc *ExportEstimateUseCase) Execute(ctx context.Context, input ExportEstimateInput) (*ExportEstimateOutput, error) {
	if !IsValidAudience(input.Audience) {
		return nil, domainerror.NewEstimateError(
			domainerror.ErrCodeInvalidAudience,
			fmt.Sprintf("invalid export audience: %s", input.Audience),
			domainerror.ErrInvalidAudience,
		)
	}

	estimate, err := uc.estimateRepo.FindByID(ctx, input.EstimateID)
	if err != nil {
		return nil, domainerror.NewEstimateError(
			domainerror.ErrCodeEstimateNotFound,
			"estimate not found",
			domainerror.ErrEstimateNotFound,
		)
	}

	items, err := uc.itemRepo.FindByEstimateWithPriceItems(ctx, estimate.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load estimate items: %w", err)
	}

	data, err := renderWorkbook(items, input.Audience)
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return &ExportEstimateOutput{
		FileName:    fmt.Sprintf("estimate-%s-%s.xlsx", shortID(estimate.ID), input.Audience),
		ContentType: xlsxContentType,
		Data:        data,
	}, nil
}

func renderWorkbook(items []*entity.EstimateItemWithPriceItem, audience Audience) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []interface{}{"#", "Name", "Unit", "Quantity", "Price", "Total"}
	if audience == AudienceSelf {
		headers = append(headers, "Margin")
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}

	var grand decimal.Decimal
	for i, it := range items {
		total := audienceTotal(it.Item, audience)
		grand = grand.Add(total)

		row := []interface{}{
			i + 1,
			it.Name(),
			it.Unit(),
			it.Item.Quantity.InexactFloat64(),
			rowUnitPrice(it.Item, total).InexactFloat64(),
			total.InexactFloat64(),
		}
		if audience == AudienceSelf {
			row = append(row, it.Item.IncomeDisplay())
		}

		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	totalRow := []interface{}{"", "Total", "", "", "", grand.InexactFloat64()}
	cell := fmt.Sprintf("A%d", len(items)+2)
	if err := f.SetSheetRow(sheet, cell, &totalRow); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// audienceTotal picks the row total the audience is allowed to see.
func audienceTotal(item *entity.EstimateItem, audience Audience) decimal.Decimal {
	switch audience {
	case AudienceClient:
		return item.ClientPrice
	case AudienceContractor:
		return item.ContractorPrice
	default:
		return item.BasePrice
	}
}

// rowUnitPrice derives the displayed unit price from the audience total, so
// the printed price times quantity always matches the printed total.
func rowUnitPrice(item *entity.EstimateItem, total decimal.Decimal) decimal.Decimal {
	if item.Quantity.IsZero() {
		return item.UnitPrice
	}
	return total.DivRound(item.Quantity, 2)
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
