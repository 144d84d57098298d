package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// cmpEmpty treats a nil want slice and an empty hit slice as equal.
var cmpEmpty = cmpopts.EquateEmpty()

// approxLoose absorbs the round-off of trigonometric round trips.
var approxLoose = cmpopts.EquateApprox(0, 1e-5)
