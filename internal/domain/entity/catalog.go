package entity

// CatalogEntry metadatos de una aplicación vertical demostrable.
type CatalogEntry struct {
	ID          string
	Name        string
	Sector      string
	Description string
	IconRef     string
	DemoURL     string
	Features    []string
	GradientRef string
	IsFlagship  bool
}
