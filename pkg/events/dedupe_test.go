package events

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDedupeWindow_Seen(t *testing.T) {
	w := NewDedupeWindow(10 * time.Minute)

	assert.False(t, w.Seen("msg-1"))
	assert.True(t, w.Seen("msg-1"))
	assert.False(t, w.Seen("msg-2"))
}

func TestDedupeWindow_EmptyIDNeverDeduped(t *testing.T) {
	w := NewDedupeWindow(10 * time.Minute)

	assert.False(t, w.Seen(""))
	assert.False(t, w.Seen(""))
	assert.Equal(t, 0, w.Len())
}

func TestDedupeWindow_Expiry(t *testing.T) {
	now := time.Now()
	w := NewDedupeWindow(10 * time.Minute)
	w.now = func() time.Time { return now }

	assert.False(t, w.Seen("msg-1"))

	// Still inside the window.
	now = now.Add(9 * time.Minute)
	assert.True(t, w.Seen("msg-1"))

	// The repeat above refreshed nothing; the original expiry passes.
	now = now.Add(2 * time.Minute)
	assert.False(t, w.Seen("msg-1"))
}

func TestDedupeWindow_SweepDropsExpired(t *testing.T) {
	now := time.Now()
	w := NewDedupeWindow(10 * time.Minute)
	w.now = func() time.Time { return now }

	for i := 0; i < 50; i++ {
		w.Seen(fmt.Sprintf("msg-%d", i))
	}
	assert.Equal(t, 50, w.Len())

	now = now.Add(11 * time.Minute)
	w.Seen("fresh")
	assert.Equal(t, 1, w.Len())
}

func TestDedupeWindow_Concurrent(t *testing.T) {
	w := NewDedupeWindow(time.Minute)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				w.Seen(fmt.Sprintf("msg-%d", i))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 200, w.Len())
}
