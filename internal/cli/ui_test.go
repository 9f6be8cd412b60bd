package cli

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/fixpoint/internal/cli/mocks"
	"github.com/agbru/fixpoint/internal/orchestration"
)

func TestDisplayProgress_Spinner(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSpinner(ctrl)

	var suffixes []string
	gomock.InOrder(
		s.EXPECT().UpdateSuffix(gomock.Any()).Do(func(v string) { suffixes = append(suffixes, v) }),
		s.EXPECT().Start(),
	)
	s.EXPECT().UpdateSuffix(gomock.Any()).Do(func(v string) { suffixes = append(suffixes, v) }).AnyTimes()
	s.EXPECT().Stop()

	ch := make(chan orchestration.ProgressUpdate, 4)
	ch <- orchestration.ProgressUpdate{JobIndex: 0, Value: 0.5}
	ch <- orchestration.ProgressUpdate{JobIndex: 1, Value: 1}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	displayProgress(&wg, ch, 2, s)
	wg.Wait()

	if len(suffixes) < 2 {
		t.Fatalf("got %d suffix updates, want at least 2", len(suffixes))
	}
	if !strings.Contains(suffixes[0], "Evaluating 2 jobs") {
		t.Errorf("first suffix = %q", suffixes[0])
	}
	if last := suffixes[len(suffixes)-1]; !strings.Contains(last, "100.0%") {
		t.Errorf("final suffix should show completion, got %q", last)
	}
}

func TestDisplayProgress_NoJobsDrains(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSpinner(ctrl)
	// No expectations: the spinner must not be touched.

	ch := make(chan orchestration.ProgressUpdate, 1)
	ch <- orchestration.ProgressUpdate{Value: 1}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	displayProgress(&wg, ch, 0, s)
	wg.Wait()
}

func TestCLIProgressReporter(t *testing.T) {
	t.Parallel()
	ch := make(chan orchestration.ProgressUpdate)
	close(ch)
	var wg sync.WaitGroup
	wg.Add(1)
	CLIProgressReporter{}.DisplayProgress(&wg, ch, 1, &bytes.Buffer{})
	wg.Wait()
}
