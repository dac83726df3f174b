package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"calcplanner/internal/adapter/http/handlers/mocks"
	"calcplanner/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newHandoffRouter(h *HandoffHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/handoff", h.GetPending)
	r.POST("/v1/handoff/take", h.Take)
	r.DELETE("/v1/handoff", h.Clear)
	return r
}

func TestHandoffHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty slot is 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		handoff := mocks.NewMockIEditHandoff(ctrl)
		r := newHandoffRouter(NewHandoffHandler(handoff))

		handoff.EXPECT().Pending().Return(entities.Estimate{}, false)
		handoff.EXPECT().Take().Return(entities.Estimate{}, false)

		if w := doJSON(r, http.MethodGet, "/v1/handoff", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		w := doJSON(r, http.MethodPost, "/v1/handoff/take", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code := decodeError(t, w).Code; code != "NO_PENDING_EDIT" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("pending and take return the estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		handoff := mocks.NewMockIEditHandoff(ctrl)
		r := newHandoffRouter(NewHandoffHandler(handoff))

		e := entities.Estimate{ID: "est-1", Name: "Casa"}
		handoff.EXPECT().Pending().Return(e, true)
		handoff.EXPECT().Take().Return(e, true)

		for _, req := range []struct{ method, path string }{
			{http.MethodGet, "/v1/handoff"},
			{http.MethodPost, "/v1/handoff/take"},
		} {
			w := doJSON(r, req.method, req.path, "")
			if w.Code != http.StatusOK {
				t.Fatalf("%s %s: expected 200, got %d", req.method, req.path, w.Code)
			}
			var body map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["id"] != "est-1" {
				t.Fatalf("unexpected body: %v", body)
			}
		}
	})

	t.Run("clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		handoff := mocks.NewMockIEditHandoff(ctrl)
		handoff.EXPECT().Clear()

		if w := doJSON(newHandoffRouter(NewHandoffHandler(handoff)), http.MethodDelete, "/v1/handoff", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
