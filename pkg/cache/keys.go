package cache

import "github.com/matzehuels/starmap/pkg/galaxy"

// Key type labels, reported through observability hooks.
const (
	KeyTypeGalaxy   = "galaxy"
	KeyTypeArtifact = "artifact"
)

// Keyer derives cache keys.
type Keyer interface {
	// GalaxyKey identifies the document generated from cfg and seed.
	GalaxyKey(cfg galaxy.Config, seed int64) string

	// ArtifactKey identifies a rendering of the document with hash docHash.
	ArtifactKey(docHash, format string) string
}

// DefaultKeyer hashes every key input.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GalaxyKey returns "galaxy:<sha256>".
func (DefaultKeyer) GalaxyKey(cfg galaxy.Config, seed int64) string {
	return hashKey(KeyTypeGalaxy, cfg, seed)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(docHash, format string) string {
	return hashKey(KeyTypeArtifact, docHash, format)
}
