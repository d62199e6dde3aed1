package engine

import (
	"sync"
	"testing"
)

func TestCivLocksSerializePerID(t *testing.T) {
	l := NewCivLocks()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock(7)
			counter++
			unlock()
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("counter = %d, want 50", counter)
	}
}

func TestLockPairCrossedOrder(t *testing.T) {
	l := NewCivLocks()
	done := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var unlock func()
			// Half the goroutines take the pair in each direction.
			if i%2 == 0 {
				unlock = l.LockPair(1, 2)
			} else {
				unlock = l.LockPair(2, 1)
			}
			unlock()
		}(i)
	}
	go func() {
		wg.Wait()
		close(done)
	}()
	<-done
}

func TestLockPairSameID(t *testing.T) {
	l := NewCivLocks()
	unlock := l.LockPair(3, 3)
	unlock()
	// The lock must be reusable after a same-ID pair.
	unlock = l.Lock(3)
	unlock()
}
