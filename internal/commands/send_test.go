package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/port402/socialpay-cli/internal/pay"
)

func TestBuildInstruction(t *testing.T) {
	instruction, err := buildInstruction("twitter/alice", "50¢", "lunch")
	require.NoError(t, err)

	assert.Equal(t, pay.PlatformX, instruction.Platform)
	assert.Equal(t, "alice", instruction.Receiver)
	assert.Equal(t, "0.5", instruction.Amount.String())
	assert.Equal(t, "lunch", instruction.Description)
}

func TestBuildInstructionBadTarget(t *testing.T) {
	_, err := buildInstruction("alice", "0.5", "")
	var malformed *pay.MalformedTargetError
	assert.ErrorAs(t, err, &malformed)
}

func TestBuildInstructionBadAmount(t *testing.T) {
	_, err := buildInstruction("x/alice", "-1", "")
	var invalid *pay.InvalidAmountError
	assert.ErrorAs(t, err, &invalid)
}

func TestBuildInstructionBadReceiver(t *testing.T) {
	_, err := buildInstruction("x/way.too.long.username.here", "0.5", "")
	var invalid *pay.InvalidReceiverError
	assert.ErrorAs(t, err, &invalid)
}
