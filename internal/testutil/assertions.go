package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/specialistvlad/suitectl/internal/model"
)

// AssertSteps compares steps with want, one rendered line per step, e.g.
// "${title}=    Get Title".
func AssertSteps(t *testing.T, want []string, steps []*model.Step) {
	t.Helper()

	got := make([]string, 0, len(steps))
	for _, step := range steps {
		got = append(got, step.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}
}
