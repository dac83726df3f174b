package usecase

import "sync"

// observerList calls registered callbacks synchronously, in registration
// order. Callbacks run outside the lock so they may unsubscribe themselves.
type observerList[T any] struct {
	mu     sync.Mutex
	nextID uint64
	subs   []observer[T]
}

type observer[T any] struct {
	id uint64
	fn func(T)
}

func (o *observerList[T]) add(fn func(T)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subs = append(o.subs, observer[T]{id: id, fn: fn})
	o.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			for i, s := range o.subs {
				if s.id == id {
					o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (o *observerList[T]) notify(v T) {
	o.mu.Lock()
	subs := make([]observer[T], len(o.subs))
	copy(subs, o.subs)
	o.mu.Unlock()

	for _, s := range subs {
		s.fn(v)
	}
}

func (o *observerList[T]) len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}
