package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"calcplanner/internal/adapter/http/handlers/mocks"
	"calcplanner/internal/domain/entities"
	"calcplanner/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newMaterialRouter(h *MaterialHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/materials", h.ListMaterials)
	r.PATCH("/v1/materials/:id/price", h.UpdatePrice)
	return r
}

func TestMaterialHandler_ListMaterials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewMaterialHandler(uc)

	uc.EXPECT().Load(gomock.Any()).Return(entities.CatalogSnapshot{
		Materials: entities.DefaultMaterials(),
		Source:    entities.SourceFallback,
	})

	w := doJSON(newMaterialRouter(h), http.MethodGet, "/v1/materials", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Materials []map[string]any `json:"materials"`
		Source    string           `json:"source"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body.Materials) != 10 || body.Source != "fallback" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Materials[0]["unit_price"] != 25.5 {
		t.Fatalf("unexpected first material: %v", body.Materials[0])
	}
}

func TestMaterialHandler_UpdatePrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewMaterialHandler(mocks.NewMockICatalogUseCase(ctrl))

		w := doJSON(newMaterialRouter(h), http.MethodPatch, "/v1/materials/1/price", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("null price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewMaterialHandler(mocks.NewMockICatalogUseCase(ctrl))

		w := doJSON(newMaterialRouter(h), http.MethodPatch, "/v1/materials/1/price", `{"unit_price":null}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeError(t, w).Code; code != "INVALID_REQUEST" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("text price keeps its leading number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewMaterialHandler(uc)

		uc.EXPECT().UpdatePrice(gomock.Any(), "1", 12.0).Return(entities.Material{ID: "1", UnitPrice: 12}, nil)

		w := doJSON(newMaterialRouter(h), http.MethodPatch, "/v1/materials/1/price", `{"unit_price":"12abc"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown material", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewMaterialHandler(uc)

		uc.EXPECT().UpdatePrice(gomock.Any(), "42", 10.0).Return(entities.Material{}, usecase.ErrMaterialNotFound)

		w := doJSON(newMaterialRouter(h), http.MethodPatch, "/v1/materials/42/price", `{"unit_price":10}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code := decodeError(t, w).Code; code != "MATERIAL_NOT_FOUND" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("text price is parsed and negatives coerced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewMaterialHandler(uc)

		gomock.InOrder(
			uc.EXPECT().UpdatePrice(gomock.Any(), "1", 30.5).Return(entities.Material{ID: "1", Name: "Tijolo", UnitPrice: 30.5, Unit: "m²"}, nil),
			uc.EXPECT().UpdatePrice(gomock.Any(), "1", 0.0).Return(entities.Material{ID: "1", Name: "Tijolo", Unit: "m²"}, nil),
		)

		r := newMaterialRouter(h)
		w := doJSON(r, http.MethodPatch, "/v1/materials/1/price", `{"unit_price":"30,5"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["unit_price"] != 30.5 {
			t.Fatalf("unexpected body: %v", body)
		}

		if w := doJSON(r, http.MethodPatch, "/v1/materials/1/price", `{"unit_price":-3}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
