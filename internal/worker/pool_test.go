package worker

import (
	"sync/atomic"
	"testing"
)

func TestPoolRunsAllJobsBeforeStop(t *testing.T) {
	p := NewPool(3)
	var n atomic.Int64
	for i := 0; i < 100; i++ {
		p.Submit(func() { n.Add(1) })
	}
	p.Stop()
	if n.Load() != 100 {
		t.Fatalf("expected 100 jobs run, got %d", n.Load())
	}
}

func TestPoolSurvivesPanickingJob(t *testing.T) {
	p := NewPool(1)
	var ran atomic.Bool
	p.Submit(func() { panic("boom") })
	p.Submit(func() { ran.Store(true) })
	p.Stop()
	if !ran.Load() {
		t.Fatalf("job after a panic did not run")
	}
}
