package config

import (
	"errors"
	"fmt"
	"strings"

	"calcplanner/internal/domain/entities"

	"github.com/spf13/viper"
)

// LoadCatalogSeed reads the seed materials from catalog.yml:
//
//	materials:
//	  - id: "1"
//	    name: Tijolo
//	    unit_price: 25.50
//	    unit: m²
//
// When no file exists in paths the built-in defaults are returned and file is
// empty. The seed only matters until the first price edit is stored.
func LoadCatalogSeed(paths []string) (materials []entities.Material, file string, err error) {
	v := viper.New()
	v.SetConfigName("catalog")
	v.SetConfigType("yml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return entities.DefaultMaterials(), "", nil
		}
		return nil, "", fmt.Errorf("read catalog seed: %w", err)
	}

	var seed []entities.Material
	if err := v.UnmarshalKey("materials", &seed); err != nil {
		return nil, v.ConfigFileUsed(), fmt.Errorf("decode catalog seed: %w", err)
	}
	if err := validateSeed(seed); err != nil {
		return nil, v.ConfigFileUsed(), err
	}
	for i := range seed {
		if seed[i].UnitPrice < 0 {
			seed[i].UnitPrice = 0
		}
		if strings.TrimSpace(seed[i].Unit) == "" {
			seed[i].Unit = entities.UnitSquareMeter
		}
	}
	return seed, v.ConfigFileUsed(), nil
}

func validateSeed(seed []entities.Material) error {
	if len(seed) == 0 {
		return errors.New("catalog seed has no materials")
	}
	seen := make(map[string]struct{}, len(seed))
	for i, m := range seed {
		id := strings.TrimSpace(m.ID)
		if id == "" {
			return fmt.Errorf("catalog seed: material %d has no id", i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("catalog seed: duplicate material id %q", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
