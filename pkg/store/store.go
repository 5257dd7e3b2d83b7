// Package store archives generated galaxies.
//
// The HTTP service saves every galaxy it is asked to keep and serves it back
// by ID. Backends:
//   - [MemoryStore]: process-local, for development and tests
//   - [FileStore]: one JSON file per galaxy in a directory
//   - [MongoStore]: the "galaxies" collection of a MongoDB database
//
// Documents are keyed by [graph.Document.ID], which is derived from the
// config and seed. Saving the same galaxy twice replaces the entry.
package store

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/matzehuels/starmap/pkg/errors"
	"github.com/matzehuels/starmap/pkg/galaxy"
	"github.com/matzehuels/starmap/pkg/graph"
)

// Entry is an archived document.
type Entry struct {
	graph.Document `bson:",inline"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}

// Summary describes an entry without its geometry.
type Summary struct {
	ID        string       `json:"id" bson:"_id"`
	Seed      int64        `json:"seed" bson:"seed"`
	Stats     galaxy.Stats `json:"stats" bson:"stats"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
}

// Store is the interface for galaxy archives.
type Store interface {
	// Save stores doc, replacing an entry with the same ID.
	Save(ctx context.Context, doc graph.Document) (*Entry, error)

	// Get returns the entry with the given ID or a NOT_FOUND error.
	Get(ctx context.Context, id string) (*Entry, error)

	// List returns up to limit summaries, newest first. limit <= 0 means
	// DefaultListLimit.
	List(ctx context.Context, limit int) ([]Summary, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// DefaultListLimit caps List when no limit is given.
const DefaultListLimit = 50

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "galaxy %s not found", id)
}

func listLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}

func (e *Entry) summary() Summary {
	return Summary{ID: e.ID, Seed: e.Seed, Stats: e.Stats, CreatedAt: e.CreatedAt}
}

// newest orders summaries by creation time descending, then by ID.
func newest(s []Summary) {
	slices.SortFunc(s, func(a, b Summary) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }
