package lock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGet_SameRoomSameMutex(t *testing.T) {
	l := NewRoomLocker()

	m1 := l.Get(42)
	m2 := l.Get(42)

	assert.Same(t, m1, m2)
	assert.Equal(t, 1, l.Len())
}

func TestGet_DifferentRoomsDifferentMutexes(t *testing.T) {
	l := NewRoomLocker()

	m1 := l.Get(1)
	m2 := l.Get(2)

	assert.NotSame(t, m1, m2)
	assert.Equal(t, 2, l.Len())
}

func TestGet_SerializesSameRoom(t *testing.T) {
	l := NewRoomLocker()

	const goroutines = 100
	counter := 0
	var wg sync.WaitGroup

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			mu := l.Get(7)
			mu.Lock()
			defer mu.Unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestGet_DifferentRoomsDoNotBlock(t *testing.T) {
	l := NewRoomLocker()

	// Hold room 1 for the whole test.
	l.Get(1).Lock()
	defer l.Get(1).Unlock()

	done := make(chan struct{})
	go func() {
		mu := l.Get(2)
		mu.Lock()
		mu.Unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("locking a different room blocked behind room 1")
	}
}

func TestGet_ConcurrentAllocation(t *testing.T) {
	l := NewRoomLocker()

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			l.Get(99)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, l.Len(), "concurrent first use must allocate a single mutex")
}
