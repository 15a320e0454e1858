package categorizer

import (
	"testing"

	"smsledger/internal/models"
)

func TestCategorize(t *testing.T) {
	c := New()

	tests := []struct {
		name         string
		kind         models.Kind
		counterparty string
		note         string
		expected     string
	}{
		{"income is always income", models.KindIncome, "AMAZON", "refund credited", models.CatIncome},
		{"shopping", models.KindExpense, "AMAZON", "", models.CatShopping},
		{"food with gateway prefix", models.KindExpense, "UPI-SWIGGY", "", models.CatFood},
		{"transport from note", models.KindExpense, models.FallbackExpenseCounterparty, "Rs 250 paid to UBER INDIA", models.CatTransport},
		{"atm is financial", models.KindExpense, "SMS Transaction", "Rs 2000 withdrawn at ATM", models.CatFinancial},
		{"streaming", models.KindExpense, "NETFLIX", "", models.CatLife},
		{"unknown merchant", models.KindExpense, "XYZ TRADERS", "", models.CatGeneral},
		{"current account is not rent", models.KindExpense, models.FallbackExpenseCounterparty, "Rs 120 paid to RAJU TEA STALL from your current account", models.CatGeneral},
		{"chemist is not emi", models.KindExpense, models.FallbackExpenseCounterparty, "Rs 450 spent at WELLNESS CHEMIST on card XX1234", models.CatGeneral},
		{"cola is not ola", models.KindExpense, models.FallbackExpenseCounterparty, "Rs 80 paid to COCA COLA DEPOT", models.CatGeneral},
		{"parent is not rent", models.KindExpense, models.FallbackExpenseCounterparty, "Rs 300 paid to PARENT TEACHER ASSOC", models.CatGeneral},
		{"gossip is not sip", models.KindExpense, "GOSSIP CAFE", "", models.CatFood},
		{"rent as a word", models.KindExpense, models.FallbackExpenseCounterparty, "Rs 15000 paid to LANDLORD for rent", models.CatHousing},
		{"emi as a word", models.KindExpense, models.FallbackExpenseCounterparty, "Rs 4500 EMI debited for loan a/c XX12", models.CatFinancial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Categorize(tt.kind, tt.counterparty, tt.note)
			if got != tt.expected {
				t.Errorf("Categorize(%q, %q): got %q, want %q", tt.counterparty, tt.note, got, tt.expected)
			}
		})
	}
}
