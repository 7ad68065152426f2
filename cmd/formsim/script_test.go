package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/config"
)

func replay(t *testing.T, script string) []Step {
	t.Helper()

	var out bytes.Buffer
	err := Replay(context.Background(), config.Default(), nil, strings.NewReader(script), &out)
	require.NoError(t, err)

	var steps []Step
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		var s Step
		require.NoError(t, json.Unmarshal(sc.Bytes(), &s))
		steps = append(steps, s)
	}
	require.NoError(t, sc.Err())
	return steps
}

func TestReplaySplit(t *testing.T) {
	steps := replay(t, `{
		"variant": "split",
		"seed": {"mode": "SPLIT_AMONG_MANY", "quantity": 4},
		"events": [
			{"op": "edit", "field": "totalAmount", "value": "100,00"},
			{"op": "account", "value": "acc-1"},
			{"op": "mode", "mode": "GUEST"},
			{"op": "submit"}
		]
	}`)
	require.Len(t, steps, 5)

	assert.Equal(t, "open", steps[0].Event.Op)
	assert.Equal(t, "4", steps[0].View.Text("quantity"))

	assert.Equal(t, "25,00", steps[1].View.Text("perUnitAmount"))
	assert.Equal(t, "acc-1", steps[2].View.Account)

	guest := steps[3].View
	assert.Equal(t, "1", guest.Text("quantity"))
	assert.Equal(t, "100,00", guest.Text("totalAmount"))
	assert.False(t, guest.Participates)
	assert.Empty(t, guest.Account)

	require.NotNil(t, steps[4].Payload)
	assert.Equal(t, "GUEST", steps[4].Payload.Mode)
	assert.True(t, steps[4].Validation.OK())
}

func TestReplayInstallmentSchedule(t *testing.T) {
	steps := replay(t, `{
		"variant": "installment",
		"seed": {"installment_count": 3, "total_amount": "100,00"},
		"events": [{"op": "schedule"}]
	}`)
	require.Len(t, steps, 2)
	assert.Equal(t, "33,33", steps[0].View.Text("amountPerInstallment"))
	assert.Empty(t, steps[1].Error)
	assert.Len(t, steps[1].Schedule, 3)
}

func TestReplayReportsEventErrors(t *testing.T) {
	steps := replay(t, `{
		"variant": "return",
		"events": [
			{"op": "mode", "mode": "GUEST"},
			{"op": "edit", "field": "quantity", "value": "2"},
			{"op": "transfer"}
		]
	}`)
	require.Len(t, steps, 4)
	assert.NotEmpty(t, steps[1].Error)
	assert.NotEmpty(t, steps[2].Error)
	assert.Contains(t, steps[3].Error, "unknown op")
}

func TestReplayRejectsBadScript(t *testing.T) {
	var out bytes.Buffer

	err := Replay(context.Background(), config.Default(), nil, strings.NewReader(`{"variant": "lease"}`), &out)
	assert.ErrorContains(t, err, "unknown variant")

	err = Replay(context.Background(), config.Default(), nil, strings.NewReader(`{"seed": {"total_amount": "abc"}}`), &out)
	assert.ErrorContains(t, err, "seed total_amount")

	err = Replay(context.Background(), config.Default(), nil, strings.NewReader(`not json`), &out)
	assert.Error(t, err)
}
