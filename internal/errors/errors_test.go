package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantSetup  bool
		wantOutput bool
	}{
		{
			name:      "Setup error",
			err:       NewSetupError(1000, "data/test/test_data_1000.json", "open", fs.ErrNotExist),
			wantSetup: true,
		},
		{
			name:      "Wrapped setup error",
			err:       fmt.Errorf("suite aborted: %w", NewSetupError(5000, "x.json", "decode", errors.New("bad json"))),
			wantSetup: true,
		},
		{
			name:       "Output error",
			err:        NewOutputError("data/results/go_results.json", "create", fs.ErrPermission),
			wantOutput: true,
		},
		{
			name: "Generic error",
			err:  errors.New("generic error"),
		},
		{
			name: "Nil error",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSetup, IsSetupFailure(tt.err))
			assert.Equal(t, tt.wantOutput, IsOutputFailure(tt.err))
		})
	}
}

func TestErrorMessagesAndUnwrap(t *testing.T) {
	setupErr := NewSetupError(1000, "data/test/test_data_1000.json", "open", fs.ErrNotExist)
	assert.Contains(t, setupErr.Error(), "open data/test/test_data_1000.json")
	assert.Contains(t, setupErr.Error(), "size 1000")
	assert.ErrorIs(t, setupErr, fs.ErrNotExist)

	outErr := NewOutputError("out.json", "encode", fs.ErrPermission)
	assert.Equal(t, "output failed: encode out.json: permission denied", outErr.Error())
	assert.ErrorIs(t, outErr, fs.ErrPermission)
}
