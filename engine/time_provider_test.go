package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/sky-dodger/parameter"
)

func TestMonotonicTimeProviderAdvances(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if d := t2.Sub(t1); d < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms between readings, got %v", d)
	}
}

func TestMockTimeProviderDrivesTimestamps(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if got := mock.Now().Format(parameter.ScoreTimestampLayout); got != "2026-03-14 09:26:53" {
		t.Errorf("Unexpected leaderboard timestamp %q", got)
	}

	mock.SetTime(start.Add(-time.Hour))
	if !mock.Now().Equal(start.Add(-time.Hour)) {
		t.Error("SetTime should allow moving backwards")
	}

	got := mock.Advance(90 * time.Minute)
	if want := start.Add(30 * time.Minute); !got.Equal(want) {
		t.Errorf("Expected %v after Advance, got %v", want, got)
	}
}

func TestMockTimeProviderAdvanceSeconds(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	for i := 0; i < 4; i++ {
		mock.AdvanceSeconds(0.25)
	}
	if want := start.Add(time.Second); !mock.Now().Equal(want) {
		t.Errorf("Expected %v after four quarter-second frames, got %v", want, mock.Now())
	}
}

func TestMockTimeProviderConcurrentAdvance(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
	}
	wg.Wait()

	if want := start.Add(400 * time.Millisecond); !mock.Now().Equal(want) {
		t.Errorf("Expected %v after concurrent advances, got %v", want, mock.Now())
	}
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
