package categorizer

import (
	"smsledger/internal/models"
	"smsledger/internal/utils"
)

// Categorizer suggests a category for a captured transaction
type Categorizer struct {
	rules []rule
}

type rule struct {
	category string
	keywords []string
}

// New creates a new Categorizer instance
func New() *Categorizer {
	return &Categorizer{
		rules: []rule{
			{models.CatFinancial, []string{
				"credit card payment", "emi", "loan", "insurance", "mutual fund",
				"sip", "zerodha", "groww", "atm", "cash withdrawal", "nwd", "atw",
			}},
			{models.CatShopping, []string{
				"amazon", "flipkart", "myntra", "ajio", "meesho", "nykaa",
				"tata cliq", "reliance digital", "croma", "decathlon", "ikea",
				"lifestyle", "westside", "shoppers stop", "pantaloons",
			}},
			{models.CatFood, []string{
				"swiggy", "zomato", "dominos", "pizza", "mcdonalds", "kfc",
				"starbucks", "cafe", "restaurant", "dmart", "bigbasket",
				"blinkit", "zepto", "instamart", "reliance fresh", "more retail",
				"big bazaar", "grocery",
			}},
			{models.CatTransport, []string{
				"uber", "ola", "rapido", "irctc", "redbus", "indigo", "air india",
				"vistara", "makemytrip", "fastag", "metro", "petrol", "fuel",
				"hpcl", "bpcl", "indian oil",
			}},
			{models.CatHousing, []string{
				"rent", "electricity", "bescom", "tata power", "water bill",
				"maintenance", "gas bill", "indane", "urban company",
			}},
			{models.CatComms, []string{
				"airtel", "jio", "vodafone", "vi", "bsnl", "act fibernet",
				"recharge", "broadband", "google", "apple", "microsoft",
			}},
			{models.CatLife, []string{
				"netflix", "hotstar", "spotify", "prime video", "bookmyshow",
				"pvr", "inox", "pharmacy", "apollo", "1mg", "pharmeasy",
				"hospital", "clinic", "gym", "cult",
			}},
		},
	}
}

// Categorize assigns a category based on counterparty and message text
func (c *Categorizer) Categorize(kind models.Kind, counterparty, note string) string {
	if kind == models.KindIncome {
		return models.CatIncome
	}

	text := utils.CleanCounterparty(counterparty) + " " + note
	for _, r := range c.rules {
		if utils.ContainsWord(text, r.keywords...) {
			return r.category
		}
	}

	return models.CatGeneral
}
