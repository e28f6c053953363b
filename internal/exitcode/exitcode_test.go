package exitcode

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: Success},
		{name: "plain", err: errors.New("boom"), want: RuntimeError},
		{name: "coded", err: New(GateFailed, errors.New("below threshold")), want: GateFailed},
		{name: "wrapped-fmt", err: fmt.Errorf("run: %w", Newf(NoInput, "missing %s", "checks.json")), want: NoInput},
		{name: "wrapped-pkg-errors", err: pkgerrors.Wrap(New(NoInput, errors.New("missing")), "checks"), want: NoInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FromError(tc.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "missing checks.json", Newf(NoInput, "missing %s", "checks.json").Error())
	assert.Equal(t, "exit status 3", New(GateFailed, nil).Error())
}
