package cache

import "github.com/matzehuels/starmap/pkg/galaxy"

// ScopedKeyer wraps a Keyer with a prefix so several deployments can share
// one Redis instance without seeing each other's entries.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "starmap:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GalaxyKey generates a prefixed galaxy key.
func (k *ScopedKeyer) GalaxyKey(cfg galaxy.Config, seed int64) string {
	return k.prefix + k.inner.GalaxyKey(cfg, seed)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(docHash, format string) string {
	return k.prefix + k.inner.ArtifactKey(docHash, format)
}
