package labels

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	boom := errors.New("connection refused")

	tests := []struct {
		name     string
		resp     Response
		err      error
		wantKind OutcomeKind
		wantMsg  string
	}{
		{"success", Response{Success: true}, nil, OutcomeRegistered, MsgRegistered},
		{"rejected with message", Response{Success: false, Message: "duplicate email"}, nil, OutcomeRejected, "duplicate email"},
		{"rejected without message", Response{Success: false}, nil, OutcomeRejected, MsgRegisterFailed},
		{"transport error", Response{}, boom, OutcomeFailed, MsgRegisterFailed},
		{"error wins over success flag", Response{Success: true}, boom, OutcomeFailed, MsgRegisterFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.resp, tt.err)

			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantMsg, got.Message)
			if tt.err != nil {
				assert.ErrorIs(t, got.Err, tt.err)
			} else {
				assert.NoError(t, got.Err)
			}
		})
	}
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "registered", OutcomeRegistered.String())
	assert.Equal(t, "rejected", OutcomeRejected.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "unknown", OutcomeKind(42).String())
}
