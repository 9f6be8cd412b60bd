package orchestration

import "testing"

func TestNewProgressAggregator(t *testing.T) {
	t.Parallel()
	tests := []struct {
		numJobs   int
		wantNil   bool
		wantMulti bool
	}{
		{numJobs: 3, wantMulti: true},
		{numJobs: 1},
		{numJobs: 0, wantNil: true},
		{numJobs: -1, wantNil: true},
	}
	for _, tt := range tests {
		agg := NewProgressAggregator(tt.numJobs)
		if (agg == nil) != tt.wantNil {
			t.Errorf("NewProgressAggregator(%d) nil = %v, want %v", tt.numJobs, agg == nil, tt.wantNil)
			continue
		}
		if agg == nil {
			continue
		}
		if agg.NumJobs() != tt.numJobs || agg.IsMultiJob() != tt.wantMulti {
			t.Errorf("NewProgressAggregator(%d): NumJobs=%d IsMultiJob=%v", tt.numJobs, agg.NumJobs(), agg.IsMultiJob())
		}
	}
}

func TestProgressAggregator_Update(t *testing.T) {
	agg := NewProgressAggregator(2)

	ap := agg.Update(ProgressUpdate{JobIndex: 0, Value: 0.5})
	if ap.JobIndex != 0 {
		t.Errorf("expected JobIndex=0, got %d", ap.JobIndex)
	}
	if ap.Value != 0.5 {
		t.Errorf("expected Value=0.5, got %f", ap.Value)
	}
	// Average of [0.5, 0.0] = 0.25
	if ap.AverageProgress != 0.25 {
		t.Errorf("expected AverageProgress=0.25, got %f", ap.AverageProgress)
	}

	ap = agg.Update(ProgressUpdate{JobIndex: 1, Value: 0.5})
	// Average of [0.5, 0.5] = 0.5
	if ap.AverageProgress != 0.5 {
		t.Errorf("expected AverageProgress=0.5, got %f", ap.AverageProgress)
	}
}

func TestProgressAggregator_CalculateAverage(t *testing.T) {
	agg := NewProgressAggregator(2)

	avg := agg.CalculateAverage()
	if avg != 0.0 {
		t.Errorf("expected initial average=0.0, got %f", avg)
	}

	agg.Update(ProgressUpdate{JobIndex: 0, Value: 1.0})
	avg = agg.CalculateAverage()
	if avg != 0.5 {
		t.Errorf("expected average=0.5 after one update, got %f", avg)
	}
}

func TestProgressAggregator_GetETA(t *testing.T) {
	agg := NewProgressAggregator(1)
	if eta := agg.GetETA(); eta != 0 {
		t.Errorf("ETA before any update = %v, want 0", eta)
	}
}

func TestDrainChannel(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, 1, 5} {
		ch := make(chan ProgressUpdate, n)
		for i := 0; i < n; i++ {
			ch <- ProgressUpdate{Value: float64(i) / float64(n)}
		}
		close(ch)
		DrainChannel(ch)
		if len(ch) != 0 {
			t.Errorf("%d updates left after drain", len(ch))
		}
	}
}
