// Package storage persists published maps.
//
// A published map is a computed [graph.Layout] stored under a random UUID so
// it can be fetched and re-rendered later. Source documents are never
// stored; only the layout is.
//
// Two backends implement [Store]: [MemoryStore] for tests and single-process
// servers, and [MongoStore] for shared deployments.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/radialmap/pkg/graph"
)

// ErrNotFound is returned when no map has the requested ID.
var ErrNotFound = errors.New("map not found")

// Map is one published layout.
type Map struct {
	ID        string       `json:"id" bson:"_id"`
	Name      string       `json:"name,omitempty" bson:"name,omitempty"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	VizType   string       `json:"viz_type" bson:"viz_type"`
	NodeCount int          `json:"node_count" bson:"node_count"`
	Layout    graph.Layout `json:"layout" bson:"layout"`
}

// Summary is a Map without its layout, as returned by List.
type Summary struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	VizType   string    `json:"viz_type" bson:"viz_type"`
	NodeCount int       `json:"node_count" bson:"node_count"`
}

// Store persists published maps.
type Store interface {
	// Save stores l under a fresh ID and returns the stored record.
	Save(ctx context.Context, name string, l graph.Layout) (Map, error)
	// Get returns ErrNotFound for unknown IDs.
	Get(ctx context.Context, id string) (Map, error)
	// Delete returns ErrNotFound for unknown IDs.
	Delete(ctx context.Context, id string) error
	// List returns up to limit summaries, newest first. limit <= 0 means
	// DefaultListLimit.
	List(ctx context.Context, limit int) ([]Summary, error)
	Close(ctx context.Context) error
}

// DefaultListLimit caps List when no limit is given.
const DefaultListLimit = 50

// newMap validates l, defaulting its viz type, and builds the record Save
// stores.
func newMap(name string, l graph.Layout, now time.Time) (Map, error) {
	if err := l.Validate(); err != nil {
		return Map{}, err
	}
	return Map{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now.UTC().Truncate(time.Millisecond),
		VizType:   l.VizType,
		NodeCount: len(l.Nodes),
		Layout:    l,
	}, nil
}

// Summary returns m without its layout.
func (m Map) Summary() Summary {
	return Summary{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, VizType: m.VizType, NodeCount: m.NodeCount}
}
