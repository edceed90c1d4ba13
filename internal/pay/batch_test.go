package pay

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const batchJSON = `{"platform":"x","payments":[{"receiver":"alice","amount":"5¢"},{"receiver":"bob","amount":"$0.5"}]}`

func assertAliceBob(t *testing.T, desc *BatchDescriptor) {
	t.Helper()
	assert.Equal(t, PlatformX, desc.Platform)
	require.Len(t, desc.Payments, 2)

	assert.Equal(t, "alice", desc.Payments[0].Receiver)
	assert.Equal(t, "0.05", desc.Payments[0].Amount.String())
	assert.Equal(t, "bob", desc.Payments[1].Receiver)
	assert.Equal(t, "0.5", desc.Payments[1].Amount.String())
}

func TestBatchParser_CompactForm(t *testing.T) {
	desc, err := NewBatchParser().Parse("x/alice:5¢,bob:$0.5")
	require.NoError(t, err)
	assertAliceBob(t, desc)
}

func TestBatchParser_InlineJSON(t *testing.T) {
	desc, err := NewBatchParser().Parse(batchJSON)
	require.NoError(t, err)
	assertAliceBob(t, desc)
}

func TestBatchParser_CompactAndJSONAgree(t *testing.T) {
	compact, err := NewBatchParser().Parse("x/alice:5¢,bob:$0.5")
	require.NoError(t, err)

	fromJSON, err := NewBatchParser().Parse(batchJSON)
	require.NoError(t, err)

	assert.Equal(t, compact, fromJSON)
}

func TestBatchParser_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payments.json")
	require.NoError(t, os.WriteFile(path, []byte(batchJSON), 0o600))

	desc, err := NewBatchParser().Parse(path)
	require.NoError(t, err)
	assertAliceBob(t, desc)

	// file: prefix works regardless of extension
	desc, err = NewBatchParser().Parse("file:" + path)
	require.NoError(t, err)
	assertAliceBob(t, desc)
}

func TestBatchParser_URL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(batchJSON))
	}))
	defer server.Close()

	desc, err := NewBatchParser().Parse(server.URL)
	require.NoError(t, err)
	assertAliceBob(t, desc)
}

func TestBatchParser_NumericAmounts(t *testing.T) {
	desc, err := NewBatchParser().Parse(`{"platform":"github","payments":[{"receiver":"octocat","amount":0.25}]}`)
	require.NoError(t, err)
	require.Len(t, desc.Payments, 1)
	assert.Equal(t, "0.25", desc.Payments[0].Amount.String())
}

func TestBatchParser_UnreachableURL(t *testing.T) {
	_, err := NewBatchParser().Parse("http://127.0.0.1:1/batch")
	require.Error(t, err)

	var batchErr *BatchParseError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, "unreachable URL", batchErr.Reason)
}

func TestBatchParser_UnreadableFile(t *testing.T) {
	_, err := NewBatchParser().Parse("/nonexistent/payments.json")
	require.Error(t, err)

	var batchErr *BatchParseError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, "unreadable file", batchErr.Reason)
}

func TestBatchParser_InvalidJSON(t *testing.T) {
	_, err := NewBatchParser().Parse(`{"platform":`)
	require.Error(t, err)

	var batchErr *BatchParseError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, "invalid JSON", batchErr.Reason)
}

func TestBatchParser_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no platform", `{"payments":[{"receiver":"alice","amount":1}]}`},
		{"no payments", `{"platform":"x"}`},
		{"entry without receiver", `{"platform":"x","payments":[{"amount":1}]}`},
		{"entry without amount", `{"platform":"x","payments":[{"receiver":"alice"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBatchParser().Parse(tt.input)
			require.Error(t, err)

			var batchErr *BatchParseError
			require.ErrorAs(t, err, &batchErr)
			assert.Contains(t, batchErr.Reason, "missing required field")
		})
	}
}

func TestBatchParser_AllOrNothing(t *testing.T) {
	// Second entry is invalid: nothing is returned for the first.
	desc, err := NewBatchParser().Parse("x/alice:5¢,bad handle:$0.5")
	require.Error(t, err)
	assert.Nil(t, desc)
}

func TestBatchParser_ReceiverValidatedAgainstPlatform(t *testing.T) {
	// Hyphens are valid on github but not on x.
	_, err := NewBatchParser().Parse("x/oct-o-cat:5¢")
	require.Error(t, err)

	_, err = NewBatchParser().Parse("github/oct-o-cat:5¢")
	require.NoError(t, err)
}

func TestBatchParser_CompactMalformedPair(t *testing.T) {
	_, err := NewBatchParser().Parse("x/alice")
	require.Error(t, err)

	var batchErr *BatchParseError
	require.ErrorAs(t, err, &batchErr)
	assert.Contains(t, batchErr.Reason, "receiver:amount")
}
