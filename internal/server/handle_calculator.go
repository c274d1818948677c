package server

import (
	"net/http"
	"strconv"
)

// CostRange is an indicative min/max in pounds for a one-off cost.
type CostRange struct {
	Name string `json:"name"`
	Min  int    `json:"min"`
	Max  int    `json:"max"`
}

// CostsResponse is the response for GET /api/calculator/costs.
type CostsResponse struct {
	StampDuty      float64     `json:"stampDuty"`
	StampDutyLabel string      `json:"stampDutyLabel"`
	MortgageAmount float64     `json:"mortgageAmount"`
	LoanToValue    float64     `json:"loanToValue"`
	HighLTV        bool        `json:"highLtv"`
	OtherCosts     []CostRange `json:"otherCosts"`
}

// stampDuty computes indicative SDLT for England and Northern Ireland.
// First-time buyers pay nothing up to £300k and 5% on the portion up to
// £500k; above £500k the relief is lost and standard bands apply.
func stampDuty(price float64, firstTimeBuyer bool) (float64, string) {
	if price <= 0 {
		return 0, "Indicative"
	}
	if firstTimeBuyer && price <= 300_000 {
		return 0, "Indicative (0% up to £300k for first-time buyers)"
	}
	if firstTimeBuyer && price <= 500_000 {
		return (price - 300_000) * 0.05, "Indicative (5% on £300,001 to £500k portion)"
	}

	var duty float64
	if price > 250_000 {
		duty += min(price-250_000, 675_000) * 0.05
	}
	if price > 925_000 {
		duty += min(price-925_000, 575_000) * 0.10
	}
	if price > 1_500_000 {
		duty += (price - 1_500_000) * 0.12
	}
	return duty, "Indicative (standard residential rates)"
}

func handleCalculatorCosts() http.HandlerFunc {
	otherCosts := []CostRange{
		{Name: "Legal fees", Min: 700, Max: 1800},
		{Name: "Disbursements", Min: 300, Max: 600},
		{Name: "Survey", Min: 300, Max: 700},
		{Name: "Mortgage fees", Min: 0, Max: 2000},
		{Name: "Moving costs", Min: 500, Max: 1500},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		price, err := strconv.ParseFloat(q.Get("price"), 64)
		if err != nil || price < 0 {
			writeError(w, http.StatusBadRequest, "price must be a non-negative number")
			return
		}
		deposit, err := strconv.ParseFloat(q.Get("deposit"), 64)
		if err != nil || deposit < 0 {
			writeError(w, http.StatusBadRequest, "deposit must be a non-negative number")
			return
		}
		firstTimeBuyer := q.Get("firstTimeBuyer") != "false"

		duty, label := stampDuty(price, firstTimeBuyer)
		mortgage := max(0, price-deposit)

		var ltv float64
		if price > 0 {
			ltv = mortgage / price * 100
		}

		writeJSON(w, http.StatusOK, CostsResponse{
			StampDuty:      duty,
			StampDutyLabel: label,
			MortgageAmount: mortgage,
			LoanToValue:    ltv,
			HighLTV:        ltv > 90,
			OtherCosts:     otherCosts,
		})
	}
}
