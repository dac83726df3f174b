package response

import "calcplanner/internal/domain/entities"

type MaterialResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Unit      string  `json:"unit"`
}

// CatalogResponse reports where the materials came from: stored, default
// (nothing saved yet) or fallback (the stored copy could not be read).
type CatalogResponse struct {
	Materials []MaterialResponse `json:"materials"`
	Source    string             `json:"source"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{ID: m.ID, Name: m.Name, UnitPrice: m.UnitPrice, Unit: m.Unit}
}

func FromCatalog(s entities.CatalogSnapshot) CatalogResponse {
	out := make([]MaterialResponse, 0, len(s.Materials))
	for _, m := range s.Materials {
		out = append(out, FromMaterial(m))
	}
	return CatalogResponse{Materials: out, Source: string(s.Source)}
}
