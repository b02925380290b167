// registry.go — a bundle of units, aliases and prefixes with lookup rules.
//
// Lookup order within one registry is exact > alias > prefix+base. Prefix
// expansion never crosses registries; the driver layers registries on top of
// each other with a two-pass scheme instead (see engine.go).
package dim

// Registry holds the units of one unit system. Insertion order is preserved
// for units and aliases: the normalizer depends on it to make its candidate
// scans deterministic.
type Registry struct {
	Name string

	units      map[string]Unit
	unitOrder  []string
	aliases    map[string]string
	aliasOrder []string
	prefixes   []Prefix
}

// NewRegistry creates an empty registry with the given system name.
func NewRegistry(name string) *Registry {
	return &Registry{
		Name:    name,
		units:   make(map[string]Unit),
		aliases: make(map[string]string),
	}
}

// AddUnit registers a unit under its symbol. Re-registering a symbol
// replaces the unit but keeps its position.
func (r *Registry) AddUnit(u Unit) {
	if _, ok := r.units[u.Symbol]; !ok {
		r.unitOrder = append(r.unitOrder, u.Symbol)
	}
	r.units[u.Symbol] = u
}

// AddAlias binds a secondary name to the unit registered under of.
func (r *Registry) AddAlias(name, of string) {
	if _, ok := r.aliases[name]; !ok {
		r.aliasOrder = append(r.aliasOrder, name)
	}
	r.aliases[name] = of
}

// AddPrefix registers a multiplicative prefix local to this registry.
func (r *Registry) AddPrefix(symbol string, factor float64) {
	r.prefixes = append(r.prefixes, Prefix{Symbol: symbol, Factor: factor})
}

// FindExact looks sym up among units and aliases, without prefix expansion.
func (r *Registry) FindExact(sym string) (Unit, bool) {
	if u, ok := r.units[sym]; ok {
		return u, true
	}
	if target, ok := r.aliases[sym]; ok {
		if u, ok := r.units[target]; ok {
			return u, true
		}
	}
	return Unit{}, false
}

// Find looks sym up with the full exact > alias > prefix+base rule. A prefix
// hit yields a synthetic unit whose scale is base.Scale*prefix.Factor, whose
// offset is the base offset, and whose symbol is the input symbol. When
// several prefixes match, the longest prefix with a resolvable base wins
// (so "dam" is deca-meter, not d+am).
func (r *Registry) Find(sym string) (Unit, bool) {
	if u, ok := r.FindExact(sym); ok {
		return u, true
	}
	best := -1
	var expanded Unit
	for _, p := range r.prefixes {
		if len(p.Symbol) >= len(sym) || sym[:len(p.Symbol)] != p.Symbol {
			continue
		}
		base, ok := r.FindExact(sym[len(p.Symbol):])
		if !ok {
			continue
		}
		if len(p.Symbol) > best {
			best = len(p.Symbol)
			expanded = Unit{
				Symbol: sym,
				Dim:    base.Dim,
				Scale:  base.Scale * p.Factor,
				Offset: base.Offset,
			}
		}
	}
	if best >= 0 {
		return expanded, true
	}
	return Unit{}, false
}

// Units yields every unit in insertion order.
func (r *Registry) Units() []Unit {
	out := make([]Unit, 0, len(r.unitOrder))
	for _, sym := range r.unitOrder {
		out = append(out, r.units[sym])
	}
	return out
}

// Aliases yields every alias in insertion order.
func (r *Registry) Aliases() []Alias {
	out := make([]Alias, 0, len(r.aliasOrder))
	for _, name := range r.aliasOrder {
		out = append(out, Alias{Name: name, Of: r.aliases[name]})
	}
	return out
}

// Prefixes yields the registry's prefix set.
func (r *Registry) Prefixes() []Prefix { return r.prefixes }
