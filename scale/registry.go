package scale

import (
	"github.com/jsphweid/diatonic/interval"
	"github.com/jsphweid/diatonic/util"
)

// Registry maps pattern names to steps and back. It is read only once built
// and safe to share.
type Registry struct {
	byName  map[string]Pattern
	bySteps map[string]Pattern
}

// Default holds Major, Minor and the seven modes.
var Default = NewBuilder().Build()

// Builder collects patterns before they are frozen into a Registry.
type Builder struct {
	byName  map[string]Pattern
	bySteps map[string]Pattern
}

// NewBuilder returns a builder seeded with the canonical patterns. Major and
// Ionian share steps, as do Minor and Aeolian; lookups by steps return Major
// and Minor.
func NewBuilder() *Builder {
	b := &Builder{
		byName:  map[string]Pattern{},
		bySteps: map[string]Pattern{},
	}
	for _, p := range canonical() {
		b.byName[normalizeName(p.Name)] = p
		key := stepsKey(p.Intervals)
		if _, ok := b.bySteps[key]; !ok {
			b.bySteps[key] = p
		}
	}
	return b
}

// Register adds a custom pattern. The name and the steps must both be new.
func (b *Builder) Register(p Pattern) error {
	name := normalizeName(p.Name)
	if name == "" {
		return &InvalidScaleError{Input: p.Name, Reason: "pattern has no name"}
	}
	if len(p.Intervals) == 0 {
		return &InvalidScaleError{Input: p.Name, Reason: "pattern has no steps"}
	}
	for _, s := range p.Intervals {
		if s <= 0 {
			return &InvalidScaleError{Input: p.Name, Reason: "steps must be positive"}
		}
	}
	if _, ok := b.byName[name]; ok {
		return &InvalidScaleError{Input: p.Name, Reason: "name already registered"}
	}
	key := stepsKey(p.Intervals)
	if existing, ok := b.bySteps[key]; ok {
		return &InvalidScaleError{Input: p.Name, Reason: "steps already registered as " + existing.Name}
	}

	p = Pattern{Name: p.Name, Intervals: p.Steps()}
	b.byName[name] = p
	b.bySteps[key] = p
	return nil
}

// Build freezes a copy of the collected patterns. The builder can keep
// registering without affecting registries it already built.
func (b *Builder) Build() *Registry {
	r := &Registry{
		byName:  make(map[string]Pattern, len(b.byName)),
		bySteps: make(map[string]Pattern, len(b.bySteps)),
	}
	for k, v := range b.byName {
		r.byName[k] = v
	}
	for k, v := range b.bySteps {
		r.bySteps[k] = v
	}
	return r
}

// ByName finds a pattern regardless of case, so "dorian" finds Dorian.
func (r *Registry) ByName(name string) (Pattern, error) {
	p, ok := r.byName[normalizeName(name)]
	if !ok {
		return Pattern{}, &InvalidScaleError{Input: name, Reason: "no pattern with that name"}
	}
	return Pattern{Name: p.Name, Intervals: p.Steps()}, nil
}

func (r *Registry) BySteps(steps []interval.Interval) (Pattern, error) {
	key := stepsKey(steps)
	p, ok := r.bySteps[key]
	if !ok {
		return Pattern{}, &InvalidScaleError{Input: key, Reason: "no pattern with those steps"}
	}
	return Pattern{Name: p.Name, Intervals: p.Steps()}, nil
}

// Names returns every registered pattern name, sorted case-insensitively.
func (r *Registry) Names() []string {
	keys := util.SortedKeys(r.byName)
	res := make([]string, len(keys))
	for i, k := range keys {
		res[i] = r.byName[k].Name
	}
	return res
}

func (r *Registry) Len() int {
	return len(r.byName)
}
