package erc

// pinEntry pairs a pin with the module that owns it.
type pinEntry struct {
	pin    Pin
	module *Module
}

// netMember is one connection's contribution to a named net.
type netMember struct {
	connectionID string
	from         string
	to           string
	kind         ConnectionKind
}

// Index is the set of lookup structures the rule set reads. It is built
// once per run, never mutated afterward, and discarded at return.
type Index struct {
	Modules     []Module
	Connections []Connection

	pinsByID map[string]pinEntry

	// netOrder preserves first-occurrence order of net names across
	// Connections, so rules that iterate "for each net" stay deterministic
	// given a fixed input order.
	netOrder   []string
	netMembers map[string][]netMember

	connectedPins map[string]bool
}

// BuildIndex organizes a raw snapshot into the structures the rule set
// needs. It does not validate connection endpoints; a dangling pin id is
// simply left for each rule to skip on its own. It does refuse a
// snapshot so malformed it cannot be organized at all: duplicate module
// ids or duplicate pin ids across the whole design.
func BuildIndex(modules []Module, connections []Connection) (*Index, error) {
	idx := &Index{
		Modules:       modules,
		Connections:   connections,
		pinsByID:      make(map[string]pinEntry),
		netMembers:    make(map[string][]netMember),
		connectedPins: make(map[string]bool),
	}

	seenModules := make(map[string]bool, len(modules))
	for mi := range modules {
		m := &idx.Modules[mi]
		if m.ID == "" {
			return nil, inputErrorf("module at position %d has no id", mi)
		}
		if seenModules[m.ID] {
			return nil, inputErrorf("duplicate module id %q", m.ID)
		}
		seenModules[m.ID] = true

		for _, p := range m.Pins {
			if p.ID == "" {
				return nil, inputErrorf("module %q has a pin with no id", m.ID)
			}
			if _, exists := idx.pinsByID[p.ID]; exists {
				return nil, inputErrorf("duplicate pin id %q", p.ID)
			}
			idx.pinsByID[p.ID] = pinEntry{pin: p, module: m}
		}
	}

	for _, c := range connections {
		idx.connectedPins[c.From] = true
		idx.connectedPins[c.To] = true

		if c.NetName == nil || *c.NetName == "" {
			continue
		}
		name := *c.NetName
		if _, ok := idx.netMembers[name]; !ok {
			idx.netOrder = append(idx.netOrder, name)
		}
		idx.netMembers[name] = append(idx.netMembers[name], netMember{
			connectionID: c.ID,
			from:         c.From,
			to:           c.To,
			kind:         c.Kind,
		})
	}

	return idx, nil
}

// Pin looks up a pin by id. The bool reports whether it was found; a
// dangling connection endpoint reports false and the caller (a rule) must
// skip it silently.
func (idx *Index) Pin(id string) (Pin, *Module, bool) {
	e, ok := idx.pinsByID[id]
	if !ok {
		return Pin{}, nil, false
	}
	return e.pin, e.module, true
}

// IsConnected reports whether a pin id appears as either endpoint of any
// connection, regardless of net name.
func (idx *Index) IsConnected(pinID string) bool {
	return idx.connectedPins[pinID]
}

// Nets returns net names in first-occurrence order across Connections.
func (idx *Index) Nets() []string {
	return idx.netOrder
}

// NetMembers returns the connections sharing a net name, in the order
// they were encountered while scanning Connections.
func (idx *Index) NetMembers(name string) []netMember {
	return idx.netMembers[name]
}
