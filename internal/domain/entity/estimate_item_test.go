package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(value string) decimal.Decimal {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestComputePricing(t *testing.T) {
	tests := []struct {
		name         string
		quantity     string
		unitPrice    string
		incomeType   IncomeType
		incomeValue  string
		isPercentage bool

		wantBase       string
		wantIncome     string
		wantClient     string
		wantContractor string
	}{
		{
			name:     "markup percentage",
			quantity: "10", unitPrice: "100",
			incomeType: IncomeTypeMarkup, incomeValue: "20", isPercentage: true,
			wantBase: "1000", wantIncome: "200", wantClient: "1200", wantContractor: "1000",
		},
		{
			name:     "kickback flat",
			quantity: "5", unitPrice: "200",
			incomeType: IncomeTypeKickback, incomeValue: "150", isPercentage: false,
			wantBase: "1000", wantIncome: "150", wantClient: "1000", wantContractor: "850",
		},
		{
			name:     "no income type",
			quantity: "3", unitPrice: "50",
			incomeType: IncomeTypeNone, incomeValue: "0", isPercentage: false,
			wantBase: "150", wantIncome: "0", wantClient: "150", wantContractor: "150",
		},
		{
			name:     "zero quantity yields zero base",
			quantity: "0", unitPrice: "100",
			incomeType: IncomeTypeMarkup, incomeValue: "20", isPercentage: true,
			wantBase: "0", wantIncome: "0", wantClient: "0", wantContractor: "0",
		},
		{
			name:     "zero unit price yields zero base",
			quantity: "10", unitPrice: "0",
			incomeType: IncomeTypeMarkup, incomeValue: "20", isPercentage: true,
			wantBase: "0", wantIncome: "0", wantClient: "0", wantContractor: "0",
		},
		{
			name:     "flat income survives zero base",
			quantity: "0", unitPrice: "0",
			incomeType: IncomeTypeMarkup, incomeValue: "300", isPercentage: false,
			wantBase: "0", wantIncome: "300", wantClient: "300", wantContractor: "0",
		},
		{
			name:     "kickback larger than base goes negative",
			quantity: "1", unitPrice: "100",
			incomeType: IncomeTypeKickback, incomeValue: "150", isPercentage: false,
			wantBase: "100", wantIncome: "150", wantClient: "100", wantContractor: "-50",
		},
		{
			name:     "fractional quantity",
			quantity: "2.5", unitPrice: "99.99",
			incomeType: IncomeTypeMarkup, incomeValue: "10", isPercentage: true,
			wantBase: "249.975", wantIncome: "24.9975", wantClient: "274.9725", wantContractor: "249.975",
		},
		{
			name:     "zero income value means no income",
			quantity: "4", unitPrice: "25",
			incomeType: IncomeTypeKickback, incomeValue: "0", isPercentage: true,
			wantBase: "100", wantIncome: "0", wantClient: "100", wantContractor: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePricing(d(tt.quantity), d(tt.unitPrice), tt.incomeType, d(tt.incomeValue), tt.isPercentage)

			if !got.BasePrice.Equal(d(tt.wantBase)) {
				t.Errorf("base price: expected %s, got %s", tt.wantBase, got.BasePrice)
			}
			if !got.IncomeAmount.Equal(d(tt.wantIncome)) {
				t.Errorf("income amount: expected %s, got %s", tt.wantIncome, got.IncomeAmount)
			}
			if !got.ClientPrice.Equal(d(tt.wantClient)) {
				t.Errorf("client price: expected %s, got %s", tt.wantClient, got.ClientPrice)
			}
			if !got.ContractorPrice.Equal(d(tt.wantContractor)) {
				t.Errorf("contractor price: expected %s, got %s", tt.wantContractor, got.ContractorPrice)
			}
		})
	}
}

func TestEstimateItem_Recalculate(t *testing.T) {
	t.Run("new item is already computed", func(t *testing.T) {
		item := NewEstimateItem(newID(), nil, "concrete", d("10"), d("100"), IncomeTypeMarkup, d("20"), true)

		if !item.ClientPrice.Equal(d("1200")) {
			t.Errorf("expected client price 1200, got %s", item.ClientPrice)
		}
	})

	t.Run("recalculate is idempotent", func(t *testing.T) {
		item := NewEstimateItem(newID(), nil, "concrete", d("10"), d("100"), IncomeTypeMarkup, d("20"), true)

		first := item.ClientPrice
		item.Recalculate()
		item.Recalculate()

		if !item.ClientPrice.Equal(first) {
			t.Errorf("expected stable client price %s, got %s", first, item.ClientPrice)
		}
	})

	t.Run("recalculate overwrites stale derived fields", func(t *testing.T) {
		item := NewEstimateItem(newID(), nil, "concrete", d("10"), d("100"), IncomeTypeMarkup, d("20"), true)

		// Simulate corrupted stored values; derived fields are never trusted.
		item.BasePrice = d("999999")
		item.IncomeAmount = d("999999")
		item.Recalculate()

		if !item.BasePrice.Equal(d("1000")) {
			t.Errorf("expected base price 1000, got %s", item.BasePrice)
		}
		if !item.IncomeAmount.Equal(d("200")) {
			t.Errorf("expected income amount 200, got %s", item.IncomeAmount)
		}
	})

	t.Run("input change flows through", func(t *testing.T) {
		item := NewEstimateItem(newID(), nil, "concrete", d("10"), d("100"), IncomeTypeMarkup, d("20"), true)

		item.IncomeType = IncomeTypeKickback
		item.IsPercentage = false
		item.IncomeValue = d("150")
		item.Recalculate()

		if !item.ClientPrice.Equal(d("1000")) {
			t.Errorf("expected client price 1000, got %s", item.ClientPrice)
		}
		if !item.ContractorPrice.Equal(d("850")) {
			t.Errorf("expected contractor price 850, got %s", item.ContractorPrice)
		}
	})
}

func TestEstimateItem_IncomeDisplay(t *testing.T) {
	tests := []struct {
		name string
		item *EstimateItem
		want string
	}{
		{
			name: "percentage",
			item: NewEstimateItem(newID(), nil, "", d("1"), d("1"), IncomeTypeMarkup, d("20"), true),
			want: "20%",
		},
		{
			name: "flat",
			item: NewEstimateItem(newID(), nil, "", d("1"), d("1"), IncomeTypeKickback, d("150"), false),
			want: "150.00",
		},
		{
			name: "none",
			item: NewEstimateItem(newID(), nil, "", d("1"), d("1"), IncomeTypeNone, d("0"), false),
			want: "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.IncomeDisplay(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
