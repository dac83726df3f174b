package entities

// Material is a catalog entry priced per unit of area.
//
// Catalog entries are seeded from DefaultMaterials (or a catalog.yml seed file)
// and afterwards only their UnitPrice changes.
type Material struct {
	ID        string  `json:"id" mapstructure:"id"`
	Name      string  `json:"name" mapstructure:"name"`
	UnitPrice float64 `json:"unit_price" mapstructure:"unit_price"`
	Unit      string  `json:"unit" mapstructure:"unit"`
}

// CatalogSource tells where a loaded collection came from.
type CatalogSource string

const (
	// SourceStored means the collection was read from storage.
	SourceStored CatalogSource = "stored"
	// SourceDefault means nothing was stored yet and the seed set was used.
	SourceDefault CatalogSource = "default"
	// SourceFallback means storage could not be read or decoded.
	SourceFallback CatalogSource = "fallback"
)

// CatalogSnapshot is the result of loading the catalog.
type CatalogSnapshot struct {
	Materials []Material
	Source    CatalogSource
}

const UnitSquareMeter = "m²"

// DefaultMaterials returns a fresh copy of the built-in seed catalog.
func DefaultMaterials() []Material {
	return []Material{
		{ID: "1", Name: "Tijolo", UnitPrice: 25.50, Unit: UnitSquareMeter},
		{ID: "2", Name: "Bobadilha", UnitPrice: 18.75, Unit: UnitSquareMeter},
		{ID: "3", Name: "Viga de Betão", UnitPrice: 45.00, Unit: UnitSquareMeter},
		{ID: "4", Name: "Blocos de Betão", UnitPrice: 22.30, Unit: UnitSquareMeter},
		{ID: "5", Name: "Argamassa", UnitPrice: 12.80, Unit: UnitSquareMeter},
		{ID: "6", Name: "Reboco", UnitPrice: 15.60, Unit: UnitSquareMeter},
		{ID: "7", Name: "Isolamento Térmico", UnitPrice: 32.40, Unit: UnitSquareMeter},
		{ID: "8", Name: "Impermeabilização", UnitPrice: 28.90, Unit: UnitSquareMeter},
		{ID: "9", Name: "Telhas", UnitPrice: 35.20, Unit: UnitSquareMeter},
		{ID: "10", Name: "Estrutura Metálica", UnitPrice: 65.00, Unit: UnitSquareMeter},
	}
}
