package lock

import "sync"

// RoomLocker hands out one mutex per room id, created on first use.
// Holding the mutex serializes booking admissions for that room within
// this process; admissions for different rooms never contend.
type RoomLocker struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewRoomLocker() *RoomLocker {
	return &RoomLocker{locks: make(map[uint]*sync.Mutex)}
}

// Get returns the mutex for the given room id, allocating it on first use.
func (l *RoomLocker) Get(roomID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[roomID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[roomID] = m
	}
	return m
}

// Len reports how many room mutexes have been allocated.
func (l *RoomLocker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
