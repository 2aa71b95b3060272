// Package model defines the collaborator interfaces the time-vector engine
// consumes but does not own: Loader (a source of raw per-id series data),
// Model (the keyed value container that holds components, vectors, curves
// and expressions), and Populator (the thing that registers ids against
// loaders and catches cross-source duplicates).
//
// These are specified by the engine but implemented by the surrounding
// application; the reference implementations here (Container and
// Populator) exist so the engine's own tests have something concrete to
// exercise the interfaces against.
package model

import (
	"github.com/imarsman/timevecengine/engineerrors"
	"github.com/imarsman/timevecengine/timeindex"
)

// Loader is a source of raw time-series data keyed by id. Ids are unique
// within a single Loader; a Loader implementation that finds a duplicate
// id at load time must surface engineerrors.DuplicateID rather than
// silently overwriting the earlier entry.
type Loader interface {
	// GetIDs returns every id this loader can supply data for.
	GetIDs() []string
	// GetValues returns the raw samples for id.
	GetValues(id string) ([]float64, error)
	// GetIndex returns the time index that id's samples are laid out
	// against.
	GetIndex(id string) (timeindex.Index, error)
	// GetSource returns an opaque handle identifying this loader, used by
	// Populator to attribute an id to the source it came from.
	GetSource() string
	// ClearCache releases any memoized state the loader is holding. A
	// Loader is shared across every vector that reads from it, so cache
	// lifetime is tied to the loader's own lifetime rather than to any one
	// vector's.
	ClearCache()
}

// Value is anything the Model container can hold: a Component, a
// timevector.TimeVector, a Curve, or an Expr, per the engine's value
// taxonomy. It is implemented by whichever concrete types the surrounding
// application defines; the engine only requires that a Value can report
// which kind it is for diagnostic purposes.
type Value interface {
	ValueKind() string
}

// entry pairs a stored Value with the ordered list of aggregator keys that
// produced it, innermost last, so Disaggregate can unwind them in LIFO
// order.
type entry struct {
	value       Value
	aggregators []string
}

// Container is the reference Model implementation: a keyed value store
// with defensive deep-copy semantics on both insert and lookup, so that a
// caller mutating a Value it got back from Get (or is about to pass to
// Set) can never corrupt the container's own copy.
//
// Deep-copy here means "replace with an equivalent Value obtained via
// CopyValue", which every engine-owned Value type (TimeVector
// implementations in particular) supports by construction, being immutable
// value objects; CopyValue is the identity function for them and is only
// load-bearing for mutable application-defined Value types.
type Container struct {
	entries map[string]entry
}

// NewContainer returns an empty Container.
func NewContainer() *Container {
	return &Container{entries: make(map[string]entry)}
}

// CopyValue is the hook a Value implementation can use to assert it must
// be deep-copied on every Set/Get round trip. Immutable Value
// implementations (e.g. every timevector.TimeVector) can return themselves
// unchanged.
type CopyValue interface {
	Value
	CopyValue() Value
}

func copyOf(v Value) Value {
	if c, ok := v.(CopyValue); ok {
		return c.CopyValue()
	}
	return v
}

// Set stores value under key, recording that it was produced by the given
// chain of aggregator keys (outermost first), if any. A defensive copy of
// value is taken so later mutation of the caller's original has no effect
// on the container.
func (c *Container) Set(key string, value Value, aggregators ...string) {
	c.entries[key] = entry{value: copyOf(value), aggregators: aggregators}
}

// Get returns a defensive copy of the value stored under key.
func (c *Container) Get(key string) (Value, error) {
	e, ok := c.entries[key]
	if !ok {
		return nil, engineerrors.MissingKey(key)
	}
	return copyOf(e.value), nil
}

// Delete removes key, if present. Deleting an absent key is a no-op.
func (c *Container) Delete(key string) {
	delete(c.entries, key)
}

// Disaggregate removes every entry whose aggregator chain includes any of
// the given aggregator keys, processing them in LIFO order: the
// most-recently-applied aggregator (last in an entry's chain) is unwound
// first. This mirrors how a stack of aggregation layers must be peeled
// from the top down to keep the remaining layers' bookkeeping consistent.
func (c *Container) Disaggregate(aggregatorKeys ...string) {
	want := make(map[string]bool, len(aggregatorKeys))
	for _, k := range aggregatorKeys {
		want[k] = true
	}

	type victim struct {
		key   string
		depth int
	}
	var victims []victim
	maxDepth := -1
	for key, e := range c.entries {
		depth := -1
		for i := len(e.aggregators) - 1; i >= 0; i-- {
			if want[e.aggregators[i]] {
				depth = len(e.aggregators) - 1 - i
				break
			}
		}
		if depth >= 0 {
			victims = append(victims, victim{key: key, depth: depth})
			if depth > maxDepth {
				maxDepth = depth
			}
		}
	}

	// Shallowest depth (closest to the top of the aggregator stack, i.e.
	// the most recently applied) first.
	for d := 0; d <= maxDepth; d++ {
		for _, v := range victims {
			if v.depth == d {
				delete(c.entries, v.key)
			}
		}
	}
}

// ContentCounts returns, for each distinct ValueKind currently stored, how
// many entries carry it. Useful for reporting what a Container holds
// without dumping every value.
func (c *Container) ContentCounts() map[string]int {
	counts := make(map[string]int)
	for _, e := range c.entries {
		counts[e.value.ValueKind()]++
	}
	return counts
}

// Loaders is anything that can report the set of Loader collaborators it
// depends on, so ClearCaches can reach them without the Container needing
// to know about loaders directly.
type Loaders interface {
	Loaders() []Loader
}

// ClearCaches calls ClearCache on every distinct Loader reachable from the
// container's entries that implement Loaders, deduplicated by GetSource.
// Values that don't read from a loader (most Component and Curve
// implementations) are silently skipped.
func (c *Container) ClearCaches() {
	seen := make(map[string]bool)
	for _, e := range c.entries {
		lv, ok := e.value.(Loaders)
		if !ok {
			continue
		}
		for _, l := range lv.Loaders() {
			source := l.GetSource()
			if seen[source] {
				continue
			}
			seen[source] = true
			l.ClearCache()
		}
	}
}

// Populator registers (id, source) pairs on behalf of one or more Loaders
// and reports an engineerrors.DuplicateIDError the moment the same id is
// registered against more than one source.
type Populator struct {
	sourcesByID map[string][]string
}

// NewPopulator returns an empty Populator.
func NewPopulator() *Populator {
	return &Populator{sourcesByID: make(map[string][]string)}
}

// Register records that id is available from source. It returns a
// DuplicateIDError (listing every source id has been registered against so
// far, including source) the first time id is seen from more than one
// distinct source; registering the same (id, source) pair twice is not an
// error.
func (p *Populator) Register(id, source string) error {
	existing := p.sourcesByID[id]
	for _, s := range existing {
		if s == source {
			return nil
		}
	}
	existing = append(existing, source)
	p.sourcesByID[id] = existing
	if len(existing) > 1 {
		return engineerrors.DuplicateID(id, existing)
	}
	return nil
}

// RegisterLoader registers every id GetIDs reports against GetSource.
func (p *Populator) RegisterLoader(l Loader) error {
	for _, id := range l.GetIDs() {
		if err := p.Register(id, l.GetSource()); err != nil {
			return err
		}
	}
	return nil
}

// Sources returns every source id has been registered against, in
// registration order.
func (p *Populator) Sources(id string) []string {
	return p.sourcesByID[id]
}
