//go:build fixdebug

package fixutil

import (
	"strings"
	"testing"
)

func TestAssertPanicsInDebugBuilds(t *testing.T) {
	t.Parallel()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Assert(false) did not panic under fixdebug")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "n >= ONE") {
			t.Errorf("panic message %q does not carry the condition", msg)
		}
	}()
	Assert(false, "n >= ONE")
}
