package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"calcplanner/internal/adapter/http/handlers/mocks"
	"calcplanner/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// lockedRecorder lets the test read the stream while the handler writes it.
type lockedRecorder struct {
	mu sync.Mutex
	*httptest.ResponseRecorder
}

func (r *lockedRecorder) Write(b []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ResponseRecorder.Write(b)
}

func (r *lockedRecorder) WriteString(s string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ResponseRecorder.WriteString(s)
}

func (r *lockedRecorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ResponseRecorder.Flush()
}

func (r *lockedRecorder) body() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ResponseRecorder.Body.String()
}

func waitFor(t *testing.T, rec *lockedRecorder, want string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(rec.body(), want) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("stream never contained %q; got %q", want, rec.body())
}

func TestEventsHandler_Stream(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mocks.NewMockICatalogUseCase(ctrl)
	handoff := mocks.NewMockIEditHandoff(ctrl)

	catalogFn := make(chan func([]entities.Material), 1)
	handoffFn := make(chan func(*entities.Estimate), 1)
	var cancelled sync.WaitGroup
	cancelled.Add(2)

	catalog.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(fn func([]entities.Material)) func() {
		catalogFn <- fn
		return cancelled.Done
	})
	handoff.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(fn func(*entities.Estimate)) func() {
		handoffFn <- fn
		return cancelled.Done
	})
	handoff.EXPECT().Pending().Return(entities.Estimate{}, false)

	h := NewEventsHandler(catalog, handoff, time.Hour)
	r := gin.New()
	r.GET("/v1/events", h.Stream)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil).WithContext(ctx)
	rec := &lockedRecorder{ResponseRecorder: httptest.NewRecorder()}

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.ServeHTTP(rec, req)
	}()

	waitFor(t, rec, `event:handoff`+"\n"+`data:{"pending":false}`)

	notifyHandoff := <-handoffFn
	notifyHandoff(&entities.Estimate{ID: "est-1", Name: "Casa"})
	waitFor(t, rec, `"id":"est-1"`)

	notifyCatalog := <-catalogFn
	notifyCatalog([]entities.Material{{ID: "1", Name: "Tijolo", UnitPrice: 30, Unit: "m²"}})
	waitFor(t, rec, "event:catalog")
	waitFor(t, rec, `"unit_price":30`)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("stream did not stop after the client went away")
	}
	cancelled.Wait()

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("unexpected content type %q", ct)
	}
}
