// Package sysmon provides system-wide CPU and memory usage sampling and a
// description of the host used in benchmark headers.
package sysmon

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	xcpu "golang.org/x/sys/cpu"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Host describes the machine a benchmark ran on.
type Host struct {
	Model       string
	LogicalCPUs int
	TotalMemory uint64
	GOARCH      string
	Features    []string
}

// Describe reads the host description. Fields that cannot be read are left
// empty.
func Describe() Host {
	h := Host{
		LogicalCPUs: runtime.NumCPU(),
		GOARCH:      runtime.GOARCH,
		Features:    Features(),
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		h.Model = strings.TrimSpace(infos[0].ModelName)
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		h.LogicalCPUs = n
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		h.TotalMemory = vmem.Total
	}
	return h
}

// Features lists the instruction set extensions relevant to the kernel's
// 64x64 multiply and shift paths.
func Features() []string {
	var out []string
	add := func(ok bool, name string) {
		if ok {
			out = append(out, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(xcpu.X86.HasSSE42, "sse4.2")
		add(xcpu.X86.HasPOPCNT, "popcnt")
		add(xcpu.X86.HasAVX2, "avx2")
		add(xcpu.X86.HasBMI2, "bmi2")
		add(xcpu.X86.HasADX, "adx")
	case "arm64":
		add(xcpu.ARM64.HasASIMD, "asimd")
		add(xcpu.ARM64.HasATOMICS, "atomics")
	}
	return out
}

// String renders h on one line.
func (h Host) String() string {
	var b strings.Builder
	if h.Model != "" {
		b.WriteString(h.Model)
		b.WriteString(", ")
	}
	b.WriteString(h.GOARCH)
	if len(h.Features) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(h.Features, " "))
		b.WriteString("]")
	}
	return b.String()
}
