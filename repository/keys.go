package repository

import "time"

const (
	// Catalog cache: catalog:metals / catalog:stones -> JSON array
	keyCatalogMetals = "catalog:metals"
	keyCatalogStones = "catalog:stones"
)

var ttlCatalog = 10 * time.Minute
