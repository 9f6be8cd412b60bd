package metrics

import (
	"strings"
	"testing"
)

var sinkBytes []byte

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()
	snap := NewMemoryCollector().Snapshot()
	if snap.HeapAlloc == 0 || snap.Sys == 0 {
		t.Errorf("empty snapshot: %+v", snap)
	}
	if !strings.Contains(snap.String(), "GC cycles") {
		t.Errorf("String() = %q", snap.String())
	}
}

func TestMemorySnapshot_Since(t *testing.T) {
	mc := NewMemoryCollector()
	before := mc.Snapshot()
	sinkBytes = make([]byte, 1<<20)
	delta := mc.Snapshot().Since(before)

	if delta.TotalAlloc < 1<<20 {
		t.Errorf("TotalAlloc delta = %d, want at least 1 MiB", delta.TotalAlloc)
	}
	if delta.Mallocs == 0 {
		t.Error("Mallocs delta should count the allocation")
	}
}
