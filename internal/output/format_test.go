package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 10))
	assert.Equal(t, "exactly-10", truncateText("exactly-10", 10))
	assert.Equal(t, "truncat...", truncateText("truncated text here", 10))
	assert.Equal(t, "...", truncateText("anything", 3))
}

func TestPaymentResultJSONShape(t *testing.T) {
	result := PaymentResult{
		Platform: "x",
		Receiver: "alice",
		Amount:   "0.5",
		Currency: "USDC",
		Network:  "base",
		ExitCode: 0,
	}

	data, err := FormatJSON(result)
	assert.NoError(t, err)
	assert.Contains(t, data, `"platform": "x"`)
	assert.Contains(t, data, `"receiver": "alice"`)
	assert.NotContains(t, data, "transaction")
	assert.NotContains(t, data, "error")
}

func TestCampaignResultJSONShape(t *testing.T) {
	result := CampaignResult{
		Platform: "farcaster",
		Name:     "Launch week",
		Cookies:  5,
		Cost:     "0.5",
		ExitCode: 0,
	}

	data, err := FormatJSON(result)
	assert.NoError(t, err)
	assert.Contains(t, data, `"cookies": 5`)
	assert.Contains(t, data, `"cost": "0.5"`)
	assert.NotContains(t, data, `"id"`)
}
