package metrics

import (
	"fmt"
	"runtime"

	"github.com/agbru/fixpoint/internal/format"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc  uint64 // bytes in use by the application
	Sys        uint64 // total bytes obtained from the OS
	TotalAlloc uint64 // cumulative bytes allocated
	Mallocs    uint64 // cumulative heap objects allocated
	NumGC      uint32
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:  m.HeapAlloc,
		Sys:        m.Sys,
		TotalAlloc: m.TotalAlloc,
		Mallocs:    m.Mallocs,
		NumGC:      m.NumGC,
	}
}

// Since returns the allocation counters accumulated between before and s.
// HeapAlloc and Sys keep the values of s.
func (s MemorySnapshot) Since(before MemorySnapshot) MemorySnapshot {
	return MemorySnapshot{
		HeapAlloc:  s.HeapAlloc,
		Sys:        s.Sys,
		TotalAlloc: s.TotalAlloc - before.TotalAlloc,
		Mallocs:    s.Mallocs - before.Mallocs,
		NumGC:      s.NumGC - before.NumGC,
	}
}

func (s MemorySnapshot) String() string {
	return fmt.Sprintf("heap %s, sys %s, allocated %s in %d objects, %d GC cycles",
		format.FormatBytes(s.HeapAlloc), format.FormatBytes(s.Sys),
		format.FormatBytes(s.TotalAlloc), s.Mallocs, s.NumGC)
}
