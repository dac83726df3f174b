package usecase

import (
	"strconv"
	"sync"
	"testing"

	"calcplanner/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditHandoff(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		h := NewEditHandoff()
		_, ok := h.Pending()
		assert.False(t, ok)
		_, ok = h.Take()
		assert.False(t, ok)
	})

	t.Run("single slot keeps the last value", func(t *testing.T) {
		h := NewEditHandoff()
		h.SetPending(entities.Estimate{ID: "x"})
		h.SetPending(entities.Estimate{ID: "y"})

		got, ok := h.Pending()
		require.True(t, ok)
		assert.Equal(t, "y", got.ID)
	})

	t.Run("take empties the slot", func(t *testing.T) {
		h := NewEditHandoff()
		h.SetPending(entities.Estimate{ID: "x"})

		got, ok := h.Take()
		require.True(t, ok)
		assert.Equal(t, "x", got.ID)

		_, ok = h.Pending()
		assert.False(t, ok)
	})

	t.Run("clear", func(t *testing.T) {
		h := NewEditHandoff()
		h.SetPending(entities.Estimate{ID: "x"})
		h.Clear()

		_, ok := h.Pending()
		assert.False(t, ok)
	})

	t.Run("stored value is isolated from the caller", func(t *testing.T) {
		h := NewEditHandoff()
		e := entities.Estimate{ID: "x", LineItems: []entities.LineItem{{MaterialID: "1", Quantity: 2}}}
		h.SetPending(e)
		e.LineItems[0].Quantity = 50

		got, _ := h.Pending()
		assert.InDelta(t, 2.0, got.LineItems[0].Quantity, 1e-9)

		got.LineItems[0].Quantity = 70
		again, _ := h.Pending()
		assert.InDelta(t, 2.0, again.LineItems[0].Quantity, 1e-9)
	})

	t.Run("observers see every change", func(t *testing.T) {
		h := NewEditHandoff()
		var seen []string
		cancel := h.Subscribe(func(e *entities.Estimate) {
			if e == nil {
				seen = append(seen, "<nil>")
				return
			}
			seen = append(seen, e.ID)
		})

		h.SetPending(entities.Estimate{ID: "x"})
		h.SetPending(entities.Estimate{ID: "y"})
		h.Take()
		h.Take()
		h.Clear()

		assert.Equal(t, []string{"x", "y", "<nil>", "<nil>"}, seen)

		cancel()
		h.SetPending(entities.Estimate{ID: "z"})
		assert.Len(t, seen, 4)
	})

	t.Run("observer may unsubscribe itself", func(t *testing.T) {
		h := NewEditHandoff()
		calls := 0
		var cancel func()
		cancel = h.Subscribe(func(*entities.Estimate) {
			calls++
			cancel()
		})

		h.SetPending(entities.Estimate{ID: "x"})
		h.SetPending(entities.Estimate{ID: "y"})
		assert.Equal(t, 1, calls)
	})
}

func TestEditHandoff_NotifiesInWriteOrder(t *testing.T) {
	h := NewEditHandoff()

	var (
		mu   sync.Mutex
		last string
	)
	h.Subscribe(func(e *entities.Estimate) {
		mu.Lock()
		defer mu.Unlock()
		if e == nil {
			last = ""
			return
		}
		last = e.ID
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			h.SetPending(entities.Estimate{ID: id})
			if id == "7" {
				h.Clear()
			}
		}(strconv.Itoa(i))
	}
	wg.Wait()

	want := ""
	if p, ok := h.Pending(); ok {
		want = p.ID
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, want, last)
}
