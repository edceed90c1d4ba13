package commands

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/port402/socialpay-cli/internal/pay"
)

func TestBatchTotal(t *testing.T) {
	descriptor := &pay.BatchDescriptor{
		Platform: pay.PlatformX,
		Payments: []pay.BatchPayment{
			{Receiver: "alice", Amount: decimal.RequireFromString("0.05")},
			{Receiver: "bob", Amount: decimal.RequireFromString("0.5")},
			{Receiver: "carol", Amount: decimal.RequireFromString("1")},
		},
	}

	assert.Equal(t, "1.55", batchTotal(descriptor).String())
}

func TestBatchTotalEmpty(t *testing.T) {
	descriptor := &pay.BatchDescriptor{Platform: pay.PlatformX}
	assert.True(t, batchTotal(descriptor).IsZero())
}
