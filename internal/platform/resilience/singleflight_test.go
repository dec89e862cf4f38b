package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGroup_DoRunsOncePerKey(t *testing.T) {
	t.Parallel()

	var g Group[[]int]
	var counter atomic.Int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, _, err := g.Do("season:1", func() ([]int, error) {
				counter.Add(1)
				time.Sleep(20 * time.Millisecond)
				return []int{1, 2}, nil
			})
			if err != nil || len(v) != 2 {
				t.Errorf("unexpected result %v, %v", v, err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := counter.Load(); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestGroup_DoReturnsZeroValueOnError(t *testing.T) {
	t.Parallel()

	var g Group[[]int]
	boom := errors.New("boom")

	v, _, err := g.Do("k", func() ([]int, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil slice, got %v", v)
	}
}
