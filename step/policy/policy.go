package policy

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/scriptdiff/scriptdiff/slice"
	"gopkg.in/yaml.v3"
)

// Policy decides how a boolean parameter is displayed.
type Policy string

const (
	// ValueOnly displays ON or OFF.
	ValueOnly Policy = "value_only"
	// LabeledToggle displays "<label>: ON" or "<label>: OFF".
	LabeledToggle Policy = "labeled_toggle"
	// FlagIfTrue displays the bare label when true and nothing when false.
	FlagIfTrue Policy = "flag_if_true"
)

// Unlisted is used for labels that are missing from the table.
const Unlisted = LabeledToggle

// ErrUnknownPolicy is returned for a policy name that is not one of All().
var ErrUnknownPolicy = errors.New("unknown boolean display policy")

// All returns every Policy.
func All() []Policy {
	return []Policy{ValueOnly, LabeledToggle, FlagIfTrue}
}

// ParsePolicy returns the Policy named s.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(s)
	if !slice.Has(All(), p) {
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
	return p, nil
}

func (p Policy) String() string {
	return string(p)
}

func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

//go:embed labels.yaml
var defaultTable []byte

// Table maps boolean labels to their display Policy.
type Table struct {
	labels map[string]Policy
}

var defaultPolicies = mustLoad(defaultTable)

// Default returns the table built from the embedded label list.
func Default() *Table {
	return defaultPolicies
}

func mustLoad(data []byte) *Table {
	t, err := Load(data)
	if err != nil {
		panic(err)
	}
	return t
}

// Load parses a YAML table of policy name to labels.
func Load(data []byte) (*Table, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse label policy table: %w", err)
	}

	labels := make(map[string]Policy)
	for name, ls := range raw {
		p, err := ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		for _, label := range ls {
			if prev, ok := labels[label]; ok {
				return nil, fmt.Errorf("label %q listed as both %s and %s", label, prev, p)
			}
			labels[label] = p
		}
	}
	return &Table{labels: labels}, nil
}

// Lookup reports the Policy stored for label.
func (t *Table) Lookup(label string) (Policy, bool) {
	p, ok := t.labels[label]
	return p, ok
}

// For returns the Policy to apply to a boolean with the given label.
// Unlabeled booleans always use ValueOnly.
func (t *Table) For(label string) Policy {
	if label == "" {
		return ValueOnly
	}
	if p, ok := t.labels[label]; ok {
		return p
	}
	return Unlisted
}

// With returns a copy of the table with overrides applied.
func (t *Table) With(overrides map[string]Policy) *Table {
	labels := make(map[string]Policy, len(t.labels)+len(overrides))
	for label, p := range t.labels {
		labels[label] = p
	}
	for label, p := range overrides {
		labels[label] = p
	}
	return &Table{labels: labels}
}

// Labels returns every label in the table, sorted.
func (t *Table) Labels() []string {
	labels := make([]string, 0, len(t.labels))
	for label := range t.labels {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// LabelsFor returns the sorted labels mapped to p.
func (t *Table) LabelsFor(p Policy) []string {
	return slice.Filter(t.Labels(), func(label string) bool {
		return t.labels[label] == p
	})
}
