package calculations

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Sesiom2704/gapptomobile-v3-sub000/pkg/money"
)

// ScheduleEntry представляет один взнос в графике рассрочки
type ScheduleEntry struct {
	Number         int             `json:"number"`
	Amount         decimal.Decimal `json:"amount"`
	CumulativePaid decimal.Decimal `json:"cumulative_paid"`
	Remaining      decimal.Decimal `json:"remaining"`
}

// InstallmentSchedule рассчитывает график равных взносов.
// Последний взнос забирает остаток округления, так что сумма взносов
// в точности равна итогу.
func InstallmentSchedule(total decimal.Decimal, count int) ([]ScheduleEntry, error) {
	if !total.IsPositive() {
		return nil, fmt.Errorf("total must be positive, got %s", total)
	}
	if count < 1 {
		return nil, fmt.Errorf("installment count must be >= 1, got %d", count)
	}

	per := money.Round2(total.Div(decimal.NewFromInt(int64(count))))
	schedule := make([]ScheduleEntry, 0, count)
	remaining := total
	paid := decimal.Zero

	for n := 1; n <= count; n++ {
		amount := per
		if n == count {
			amount = remaining
		}

		remaining = remaining.Sub(amount)
		paid = paid.Add(amount)

		if remaining.IsNegative() {
			return nil, fmt.Errorf("numeric error: remaining amount became negative at installment %d", n)
		}

		schedule = append(schedule, ScheduleEntry{
			Number:         n,
			Amount:         amount,
			CumulativePaid: paid,
			Remaining:      remaining,
		})
	}

	return schedule, nil
}
