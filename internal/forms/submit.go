package forms

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/calculations"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/metrics"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/validators"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/pkg/money"
)

// Payload - данные для внешнего сохранения записи
type Payload struct {
	FormID       string                       `json:"form_id"`
	Variant      string                       `json:"variant"`
	Mode         string                       `json:"mode,omitempty"`
	Quantity     int64                        `json:"quantity,omitempty"`
	TotalAmount  decimal.Decimal              `json:"total_amount"`
	Participates bool                         `json:"participates,omitempty"`
	Account      string                       `json:"account,omitempty"`
	Schedule     []calculations.ScheduleEntry `json:"schedule,omitempty"`
	Return       *calculations.ReturnSummary  `json:"return,omitempty"`
}

// Submit проверяет запись перед сохранением.
// Payload возвращается только если проверка пройдена.
func (f *Form) Submit(ctx context.Context) (*Payload, validators.Result) {
	ctx, span := f.tracer.Start(ctx, "form.submit")
	defer span.End()

	f.mu.Lock()
	defer f.mu.Unlock()

	span.SetAttributes(
		attribute.String("form_id", f.id.String()),
		attribute.String("variant", f.variant.Name),
	)

	res := f.validate()
	if !res.OK() {
		span.SetAttributes(
			attribute.String("error", "validation_error"),
			attribute.Int("error_count", len(res.Errors)),
		)
		metrics.Submissions.WithLabelValues(f.variant.Name, "rejected").Inc()
		for _, e := range res.Errors {
			metrics.ValidationErrors.WithLabelValues(f.variant.Name, e.Field).Inc()
		}
		slog.WarnContext(ctx, "Form rejected",
			"form_id", f.id,
			"variant", f.variant.Name,
			"errors", len(res.Errors),
		)
		return nil, res
	}

	payload, err := f.payload()
	if err != nil {
		// проверка уже прошла, сюда попадаем только при численной ошибке графика
		span.SetAttributes(attribute.String("error", "calculation_error"))
		metrics.Submissions.WithLabelValues(f.variant.Name, "error").Inc()
		slog.ErrorContext(ctx, "Failed to build payload", "form_id", f.id, "error", err)
		return nil, validators.Result{Errors: []validators.FieldError{{
			Field:  f.variant.FieldName(calculations.FieldTotal),
			Reason: err.Error(),
		}}}
	}

	span.SetAttributes(attribute.Bool("success", true))
	metrics.Submissions.WithLabelValues(f.variant.Name, "ok").Inc()
	slog.InfoContext(ctx, "Form accepted",
		"form_id", f.id,
		"variant", f.variant.Name,
		"total", payload.TotalAmount.StringFixed(2),
	)
	return payload, res
}

func (f *Form) value(field calculations.Field) money.Value {
	// количество берется без усечения, чтобы проверка видела дробный ввод
	return money.ParseValue(f.state.Text(field))
}

func (f *Form) validate() validators.Result {
	switch f.variant {
	case calculations.Split:
		return validators.ValidateSplit(f.cfg, f.splitRecord())
	case calculations.Installment:
		return validators.ValidateInstallment(f.cfg, validators.InstallmentRecord{
			InstallmentCount:     f.value(calculations.FieldMultiplier),
			AmountPerInstallment: f.value(calculations.FieldBase),
			TotalAmount:          f.value(calculations.FieldTotal),
		})
	default:
		return validators.ValidateReturn(f.cfg, validators.ReturnRecord{
			Principal:   f.value(calculations.FieldBase),
			RatePercent: f.value(calculations.FieldMultiplier),
			TotalReturn: f.value(calculations.FieldTotal),
		})
	}
}

func (f *Form) splitRecord() validators.SplitRecord {
	perms := f.selector.Permissions()
	return validators.SplitRecord{
		Mode:          f.selector.Mode(),
		Quantity:      f.value(calculations.FieldMultiplier),
		TotalAmount:   f.value(calculations.FieldTotal),
		PerUnitAmount: f.value(calculations.FieldBase),
		Participates:  perms.Participates,
		Account:       f.account,
	}
}

func (f *Form) payload() (*Payload, error) {
	p := &Payload{
		FormID:  f.id.String(),
		Variant: f.variant.Name,
	}
	total := f.value(calculations.FieldTotal)
	if total.Known {
		p.TotalAmount = money.Round2(total.Amount)
	}

	switch f.variant {
	case calculations.Split:
		rec := f.splitRecord()
		p.Mode = rec.Mode.String()
		p.Quantity = rec.Quantity.Amount.IntPart()
		p.Participates = rec.Participates
		p.Account = rec.Account

	case calculations.Installment:
		count := f.value(calculations.FieldMultiplier).Amount.IntPart()
		schedule, err := calculations.InstallmentSchedule(p.TotalAmount, int(count))
		if err != nil {
			return nil, err
		}
		p.Quantity = count
		p.Schedule = schedule

	case calculations.Return:
		principal := f.value(calculations.FieldBase)
		if principal.Positive() && total.Known {
			summary, err := calculations.SummarizeReturn(principal.Amount, total.Amount)
			if err != nil {
				return nil, err
			}
			p.Return = summary
		}
	}

	return p, nil
}
