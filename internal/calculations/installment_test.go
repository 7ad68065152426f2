package calculations

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sesiom2704/gapptomobile-v3-sub000/pkg/money"
)

func TestInstallmentSchedule(t *testing.T) {
	tests := []struct {
		name          string
		total         string
		count         int
		wantError     bool
		checkSchedule func(*testing.T, []ScheduleEntry)
	}{
		{
			name:  "even installments",
			total: "1200",
			count: 12,
			checkSchedule: func(t *testing.T, schedule []ScheduleEntry) {
				require.Len(t, schedule, 12)
				for _, e := range schedule {
					assert.True(t, e.Amount.Equal(decimal.NewFromInt(100)), "installment %d = %s", e.Number, e.Amount)
				}
			},
		},
		{
			name:  "last installment absorbs rounding",
			total: "100",
			count: 3,
			checkSchedule: func(t *testing.T, schedule []ScheduleEntry) {
				require.Len(t, schedule, 3)
				assert.Equal(t, "33.33", schedule[0].Amount.StringFixed(2))
				assert.Equal(t, "33.33", schedule[1].Amount.StringFixed(2))
				assert.Equal(t, "33.34", schedule[2].Amount.StringFixed(2))
				assert.Equal(t, "66.67", schedule[0].Remaining.StringFixed(2))
			},
		},
		{
			name:  "single installment",
			total: "59,99",
			count: 1,
			checkSchedule: func(t *testing.T, schedule []ScheduleEntry) {
				require.Len(t, schedule, 1)
				assert.Equal(t, "59.99", schedule[0].Amount.StringFixed(2))
			},
		},
		{
			name:      "zero count",
			total:     "100",
			count:     0,
			wantError: true,
		},
		{
			name:      "zero total",
			total:     "0",
			count:     3,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := money.Parse(tt.total)
			require.NoError(t, err)

			schedule, err := InstallmentSchedule(total, tt.count)
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			// сумма взносов равна итогу, остаток в последнем взносе равен 0
			last := schedule[len(schedule)-1]
			assert.True(t, last.CumulativePaid.Equal(total))
			assert.True(t, last.Remaining.IsZero())

			if tt.checkSchedule != nil {
				tt.checkSchedule(t, schedule)
			}
		})
	}
}

func TestSummarizeReturn(t *testing.T) {
	summary, err := SummarizeReturn(decimal.NewFromInt(1000), decimal.RequireFromString("1234.5"))
	require.NoError(t, err)

	assert.Equal(t, "23.45", summary.RatePercent.StringFixed(2))
	assert.Equal(t, "234.50", summary.CapitalGain.StringFixed(2))

	_, err = SummarizeReturn(decimal.Zero, decimal.NewFromInt(10))
	assert.Error(t, err)

	_, err = SummarizeReturn(decimal.NewFromInt(10), decimal.NewFromInt(-1))
	assert.Error(t, err)
}
