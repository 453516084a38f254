package fixture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-content-mirror/models"
)

// LoadSeedFile reads a JSON array of resources, in the same shape as the
// items of a sync page.
func LoadSeedFile(path string) ([]models.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var resources []models.Resource
	if err = json.Unmarshal(data, &resources); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return resources, nil
}
