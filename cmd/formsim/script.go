package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/config"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/forms"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/modes"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/validators"
	"github.com/Sesiom2704/gapptomobile-v3-sub000/pkg/money"
)

// Script - сценарий событий одной формы
type Script struct {
	Variant string  `json:"variant"`
	Seed    Seed    `json:"seed"`
	Events  []Event `json:"events"`
}

// Seed - начальные значения формы; суммы в том виде, в каком их вводит пользователь
type Seed struct {
	Mode             modes.PaymentMode `json:"mode"`
	Quantity         int               `json:"quantity"`
	InstallmentCount int               `json:"installment_count"`
	TotalAmount      string            `json:"total_amount"`
	Principal        string            `json:"principal"`
	RatePercent      string            `json:"rate_percent"`
	TotalReturn      string            `json:"total_return"`
	Account          string            `json:"account"`
}

// Event - одно действие пользователя
type Event struct {
	Op    string            `json:"op"` // edit, mode, account, submit, schedule
	Field string            `json:"field,omitempty"`
	Value string            `json:"value,omitempty"`
	Mode  modes.PaymentMode `json:"mode,omitempty"`
}

// Step - результат одного события
type Step struct {
	Event      Event              `json:"event"`
	View       *forms.View        `json:"view,omitempty"`
	Payload    *forms.Payload     `json:"payload,omitempty"`
	Validation *validators.Result `json:"validation,omitempty"`
	Schedule   any                `json:"schedule,omitempty"`
	Error      string             `json:"error,omitempty"`
}

func nullAmount(raw string) (decimal.NullDecimal, error) {
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := money.Parse(raw)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

func openForm(cfg *config.Config, tracer trace.Tracer, s Script) (*forms.Form, error) {
	total, err := nullAmount(s.Seed.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("seed total_amount: %w", err)
	}

	switch s.Variant {
	case "split", "":
		return forms.NewSplitForm(cfg, tracer, forms.SplitSeed{
			Mode:        s.Seed.Mode,
			Quantity:    s.Seed.Quantity,
			TotalAmount: total,
			Account:     s.Seed.Account,
		}), nil

	case "installment":
		return forms.NewInstallmentForm(cfg, tracer, forms.InstallmentSeed{
			InstallmentCount: s.Seed.InstallmentCount,
			TotalAmount:      total,
		}), nil

	case "return":
		principal, err := nullAmount(s.Seed.Principal)
		if err != nil {
			return nil, fmt.Errorf("seed principal: %w", err)
		}
		rate, err := nullAmount(s.Seed.RatePercent)
		if err != nil {
			return nil, fmt.Errorf("seed rate_percent: %w", err)
		}
		totalReturn, err := nullAmount(s.Seed.TotalReturn)
		if err != nil {
			return nil, fmt.Errorf("seed total_return: %w", err)
		}
		return forms.NewReturnForm(cfg, tracer, forms.ReturnSeed{
			Principal:   principal,
			RatePercent: rate,
			TotalReturn: totalReturn,
		}), nil
	}
	return nil, fmt.Errorf("unknown variant %q", s.Variant)
}

// Replay читает сценарий и пишет результат каждого события строкой JSON
func Replay(ctx context.Context, cfg *config.Config, tracer trace.Tracer, r io.Reader, w io.Writer) error {
	var s Script
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return fmt.Errorf("failed to decode script: %w", err)
	}

	form, err := openForm(cfg, tracer, s)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	initial := form.View()
	if err := enc.Encode(Step{Event: Event{Op: "open"}, View: &initial}); err != nil {
		return err
	}

	for _, ev := range s.Events {
		step := Step{Event: ev}

		switch ev.Op {
		case "edit":
			v, err := form.Edit(ctx, ev.Field, ev.Value)
			step.setView(v, err)
		case "mode":
			v, err := form.SetMode(ctx, ev.Mode)
			step.setView(v, err)
		case "account":
			v, err := form.SelectAccount(ev.Value)
			step.setView(v, err)
		case "submit":
			payload, res := form.Submit(ctx)
			step.Payload = payload
			step.Validation = &res
		case "schedule":
			schedule, err := form.Schedule()
			if err != nil {
				step.Error = err.Error()
			} else {
				step.Schedule = schedule
			}
		default:
			step.Error = fmt.Sprintf("unknown op %q", ev.Op)
		}

		if err := enc.Encode(step); err != nil {
			return err
		}
	}
	return nil
}

func (s *Step) setView(v forms.View, err error) {
	if err != nil {
		s.Error = err.Error()
		return
	}
	s.View = &v
}
