package calculations

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Sesiom2704/gapptomobile-v3-sub000/pkg/money"
)

// ReturnSummary - сводка по доходности вложения
type ReturnSummary struct {
	Principal   decimal.Decimal `json:"principal"`
	RatePercent decimal.Decimal `json:"rate_percent"`
	TotalReturn decimal.Decimal `json:"total_return"`
	CapitalGain decimal.Decimal `json:"capital_gain"`
}

// SummarizeReturn считает прирост капитала и фактическую ставку
func SummarizeReturn(principal, totalReturn decimal.Decimal) (*ReturnSummary, error) {
	if !principal.IsPositive() {
		return nil, fmt.Errorf("principal must be positive, got %s", principal)
	}
	if totalReturn.IsNegative() {
		return nil, fmt.Errorf("total return must not be negative, got %s", totalReturn)
	}

	rate := money.Round2(Return.inverse(totalReturn.Div(principal)))

	return &ReturnSummary{
		Principal:   money.Round2(principal),
		RatePercent: rate,
		TotalReturn: money.Round2(totalReturn),
		CapitalGain: money.Round2(totalReturn.Sub(principal)),
	}, nil
}
