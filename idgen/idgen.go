// Package idgen produces key values for INSERT id columns. Generators emit
// pqb.Value so the result drops straight into a statement builder or a bind
// list.
package idgen

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/fast/pqb"
)

// Generator is the interface for key generation.
type Generator interface {
	Generate() (pqb.Value, error)
	Kind() string
}

// UUIDGenerator generates random (v4) UUID values.
type UUIDGenerator struct{}

func (g UUIDGenerator) Generate() (pqb.Value, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return pqb.Value{}, fmt.Errorf("failed to generate UUID: %w", err)
	}
	return pqb.UUIDValue(id), nil
}

func (g UUIDGenerator) Kind() string {
	return "uuid"
}

// ULIDGenerator generates monotonic ULID values as strings. Safe for
// concurrent use.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ULIDGenerator) Generate() (pqb.Value, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(time.Now()), g.entropy)
	if err != nil {
		return pqb.Value{}, fmt.Errorf("failed to generate ULID: %w", err)
	}
	return pqb.StringValue(id.String()), nil
}

func (g *ULIDGenerator) Kind() string {
	return "ulid"
}

// Registry manages generators by kind name.
type Registry struct {
	mu         sync.RWMutex
	generators map[string]Generator
}

var defaultRegistry = NewRegistry()

// NewRegistry creates a registry with the uuid and ulid generators
// preregistered.
func NewRegistry() *Registry {
	r := &Registry{generators: make(map[string]Generator)}
	r.Register("uuid", UUIDGenerator{})
	r.Register("ulid", NewULIDGenerator())
	return r
}

func (r *Registry) Register(name string, g Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[name] = g
}

func (r *Registry) Get(name string) (Generator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.generators[name]
	return g, ok
}

func (r *Registry) Generate(kind string) (pqb.Value, error) {
	g, ok := r.Get(kind)
	if !ok {
		return pqb.Value{}, fmt.Errorf("unknown generator kind: %s", kind)
	}
	return g.Generate()
}

// Register adds a generator to the default registry.
func Register(name string, g Generator) {
	defaultRegistry.Register(name, g)
}

// Generate produces a value from the default registry.
func Generate(kind string) (pqb.Value, error) {
	return defaultRegistry.Generate(kind)
}
