package kind

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind selects how a script step is assembled into text.
type Kind string

const (
	Comment Kind = "comment"
	Generic Kind = "generic"
)

// KindFromString tries to match a string to a step Kind.
func KindFromString(name string) (Kind, bool) {
	switch name {
	case "comment":
		return Comment, true
	case "generic":
		return Generic, true
	}
	return Generic, false
}

//go:embed kinds.yaml
var defaultTable []byte

// Registry maps numeric step ids to their Kind.
// A Registry is never mutated after construction.
type Registry struct {
	kinds map[uint32]Kind
}

var defaultRegistry = mustLoad(defaultTable)

// Default returns the registry built from the embedded step table.
func Default() *Registry {
	return defaultRegistry
}

func mustLoad(data []byte) *Registry {
	r, err := Load(data)
	if err != nil {
		panic(err)
	}
	return r
}

// Load parses a YAML table of kind name to step ids.
func Load(data []byte) (*Registry, error) {
	var table map[string][]uint32
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse step kind table: %w", err)
	}

	kinds := make(map[uint32]Kind)
	for name, ids := range table {
		k, ok := KindFromString(name)
		if !ok {
			return nil, fmt.Errorf("unknown step kind %q", name)
		}
		for _, id := range ids {
			if prev, ok := kinds[id]; ok {
				return nil, fmt.Errorf("step id %d listed as both %s and %s", id, prev, k)
			}
			kinds[id] = k
		}
	}
	return &Registry{kinds: kinds}, nil
}

// Classify returns the Kind for a step id. Unmapped ids are Generic.
func (r *Registry) Classify(id uint32) Kind {
	if k, ok := r.kinds[id]; ok {
		return k
	}
	return Generic
}

// With returns a copy of the registry with overrides applied.
func (r *Registry) With(overrides map[uint32]Kind) *Registry {
	kinds := make(map[uint32]Kind, len(r.kinds)+len(overrides))
	for id, k := range r.kinds {
		kinds[id] = k
	}
	for id, k := range overrides {
		kinds[id] = k
	}
	return &Registry{kinds: kinds}
}
