package calibration

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"
)

// CurrentProfileVersion is bumped whenever the profile layout or the
// benchmark loop changes in a way that invalidates cached iteration counts.
const CurrentProfileVersion = 1

// DefaultProfileFileName is the profile's file name in the home directory.
const DefaultProfileFileName = ".fixbench_calibration.json"

// CalibrationProfile caches calibrated benchmark iteration counts for one
// machine.
type CalibrationProfile struct {
	ProfileVersion int       `json:"profile_version"`
	CalibratedAt   time.Time `json:"calibrated_at"`

	NumCPU    int    `json:"num_cpu"`
	GOARCH    string `json:"goarch"`
	GOOS      string `json:"goos"`
	GoVersion string `json:"go_version"`
	WordSize  int    `json:"word_size"`

	// Target is the per-pass duration the iterations were calibrated for.
	Target string `json:"target"`
	// Iterations maps operation keys to 128-value chunk counts.
	Iterations map[string]int `json:"iterations"`
	// CalibrationTime is how long calibration took.
	CalibrationTime string `json:"calibration_time"`
}

// NewProfile returns an empty profile stamped with the current host.
func NewProfile() *CalibrationProfile {
	return &CalibrationProfile{
		ProfileVersion: CurrentProfileVersion,
		CalibratedAt:   time.Now(),
		NumCPU:         runtime.NumCPU(),
		GOARCH:         runtime.GOARCH,
		GOOS:           runtime.GOOS,
		GoVersion:      runtime.Version(),
		WordSize:       32 << (^uint(0) >> 63),
		Iterations:     make(map[string]int),
	}
}

// IsValid reports whether the profile was produced on a machine like this
// one by a compatible version.
func (p *CalibrationProfile) IsValid() bool {
	if p == nil {
		return false
	}
	return p.ProfileVersion == CurrentProfileVersion &&
		p.NumCPU == runtime.NumCPU() &&
		p.GOARCH == runtime.GOARCH &&
		p.GOOS == runtime.GOOS &&
		p.WordSize == 32<<(^uint(0)>>63)
}

// IsStale reports whether the profile is older than maxAge.
func (p *CalibrationProfile) IsStale(maxAge time.Duration) bool {
	if p == nil {
		return true
	}
	return time.Since(p.CalibratedAt) > maxAge
}

// Iters returns the calibrated iteration count for key, or fallback.
func (p *CalibrationProfile) Iters(key string, fallback int) int {
	if p == nil {
		return fallback
	}
	if n, ok := p.Iterations[key]; ok && n > 0 {
		return n
	}
	return fallback
}

// Keys returns the calibrated operation keys in sorted order.
func (p *CalibrationProfile) Keys() []string {
	keys := make([]string, 0, len(p.Iterations))
	for k := range p.Iterations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p *CalibrationProfile) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "calibration profile v%d (%s/%s, %d CPUs, %s) from %s, target %s, %d operations",
		p.ProfileVersion, p.GOOS, p.GOARCH, p.NumCPU, p.GoVersion,
		p.CalibratedAt.Format(time.RFC3339), p.Target, len(p.Iterations))
	for _, k := range p.Keys() {
		fmt.Fprintf(&b, "\n  %-20s %d", k, p.Iterations[k])
	}
	return b.String()
}

// SaveProfile writes the profile as indented JSON. The file is replaced
// atomically.
func (p *CalibrationProfile) SaveProfile(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding calibration profile: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating profile directory: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing calibration profile: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing calibration profile: %w", err)
	}
	return nil
}

func loadProfile(path string) (*CalibrationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p CalibrationProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding calibration profile %s: %w", path, err)
	}
	if p.Iterations == nil {
		p.Iterations = make(map[string]int)
	}
	return &p, nil
}

// LoadProfile reads the profile at path and rejects it if it does not match
// this machine.
func LoadProfile(path string) (*CalibrationProfile, error) {
	p, err := loadProfile(path)
	if err != nil {
		return nil, err
	}
	if !p.IsValid() {
		return nil, fmt.Errorf("calibration profile %s was made on a different machine or version", path)
	}
	return p, nil
}

// LoadOrCreateProfile returns the valid profile at path, or a new empty one.
// The boolean reports whether the profile was loaded.
func LoadOrCreateProfile(path string) (*CalibrationProfile, bool) {
	if p, err := LoadProfile(path); err == nil {
		return p, true
	}
	return NewProfile(), false
}

// GetDefaultProfilePath returns ~/.fixbench_calibration.json, or the file
// name alone when the home directory is unknown.
func GetDefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultProfileFileName
	}
	return filepath.Join(home, DefaultProfileFileName)
}
