package timer

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hammamikhairi/commentscreen/internal/logger"
)

func TestTickerFires(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	var count atomic.Int32

	tk := New(log, WithInterval(10*time.Millisecond))
	tk.Start(func() { count.Add(1) })
	defer tk.Stop()

	time.Sleep(200 * time.Millisecond)

	if count.Load() == 0 {
		t.Fatal("expected at least one tick")
	}
}

func TestTickerNoTickAfterStop(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	var count atomic.Int32

	tk := New(log, WithInterval(5*time.Millisecond))
	tk.Start(func() { count.Add(1) })
	time.Sleep(50 * time.Millisecond)
	tk.Stop()

	after := count.Load()
	time.Sleep(50 * time.Millisecond)
	if got := count.Load(); got != after {
		t.Fatalf("ticks fired after Stop: %d -> %d", after, got)
	}
}

func TestTickerStopWaitsForCallback(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	started := make(chan struct{})
	var once sync.Once
	var finished atomic.Bool

	tk := New(log, WithInterval(5*time.Millisecond))
	tk.Start(func() {
		once.Do(func() { close(started) })
		time.Sleep(30 * time.Millisecond)
		finished.Store(true)
	})

	<-started
	tk.Stop()
	if !finished.Load() {
		t.Fatal("Stop returned while a callback was still running")
	}
}

func TestTickerDoubleStartAndStop(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	tk := New(log, WithInterval(time.Hour))

	tk.Stop() // not running: no-op
	tk.Start(func() {})
	tk.Start(func() {}) // ignored
	tk.Stop()
	tk.Stop()

	if tk.Interval() != time.Hour {
		t.Fatalf("expected interval 1h, got %s", tk.Interval())
	}
}

func TestManualFire(t *testing.T) {
	m := NewManual()
	if m.Fire(3) != 0 {
		t.Fatal("expected no ticks before Start")
	}

	n := 0
	m.Start(func() { n++ })
	if !m.Running() {
		t.Fatal("expected running after Start")
	}
	if ran := m.Fire(5); ran != 5 || n != 5 {
		t.Fatalf("expected 5 ticks, got ran=%d n=%d", ran, n)
	}

	m.Stop()
	if m.Fire(1) != 0 || n != 5 {
		t.Fatal("expected no ticks after Stop")
	}
}
