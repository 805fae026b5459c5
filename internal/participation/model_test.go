package participation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusDerivation(t *testing.T) {
	tests := []struct {
		name       string
		isPending  bool
		isApproved bool
		want       Status
	}{
		{"pending", true, false, StatusPending},
		{"approved", false, true, StatusApproved},
		{"rejected", false, false, StatusRejected},
		// Both flags set should never be written, but pending must win
		// if it ever shows up.
		{"contradictory flags", true, true, StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Participation{IsPending: tt.isPending, IsApproved: tt.isApproved}
			assert.Equal(t, tt.want, p.Status())
		})
	}
}
