package transport

import (
	"testing"
	"time"
)

func TestBackoffDoublesToCap(t *testing.T) {
	b := newBackoff(time.Second, 4*time.Second)

	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 4 * time.Second}
	for i, w := range want {
		if got := b.next(); got != w {
			t.Fatalf("step %d: want %v got %v", i, w, got)
		}
	}
}

func TestBackoffResetsToInitial(t *testing.T) {
	b := newBackoff(time.Second, 30*time.Second)
	b.next()
	b.next()
	b.reset()

	if got := b.next(); got != time.Second {
		t.Fatalf("expected reset to initial delay, got %v", got)
	}
}
