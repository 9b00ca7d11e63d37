package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// Module is a single unit of learning content in the progression graph.
// Name and Description are opaque display payload; the engine only looks
// at ID, Unit, and Prerequisites.
type Module struct {
	ID            string   `json:"id"`
	Name          string   `json:"name,omitempty"`
	Description   string   `json:"description,omitempty"`
	Unit          int      `json:"unit"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// Catalog is an immutable snapshot of module definitions for one engine
// session. Input order is preserved and is the ordering of last resort for
// every derived listing, so identical inputs always produce identical output.
type Catalog struct {
	modules []Module
	byID    map[string]*Module
	byUnit  map[int][]Module
	units   []int
}

// New builds a catalog from a slice of modules. Duplicate IDs are a
// construction error; everything else (dangling prerequisites, cycles) is
// tolerated and handled defensively at query time.
func New(modules []Module) (*Catalog, error) {
	c := &Catalog{
		modules: slices.Clone(modules),
		byID:    make(map[string]*Module, len(modules)),
		byUnit:  make(map[int][]Module),
	}

	for i := range c.modules {
		m := &c.modules[i]
		if _, exists := c.byID[m.ID]; exists {
			return nil, fmt.Errorf("duplicate module ID: %q", m.ID)
		}
		c.byID[m.ID] = m
		c.byUnit[m.Unit] = append(c.byUnit[m.Unit], *m)
	}

	for unit := range c.byUnit {
		c.units = append(c.units, unit)
	}
	sort.Ints(c.units)

	return c, nil
}

// Len returns the number of modules in the catalog.
func (c *Catalog) Len() int {
	return len(c.modules)
}

// Modules returns all modules in input order.
func (c *Catalog) Modules() []Module {
	return slices.Clone(c.modules)
}

// Get returns the module with the given ID.
func (c *Catalog) Get(id string) (Module, bool) {
	m, ok := c.byID[id]
	if !ok {
		return Module{}, false
	}
	return *m, true
}

// Has reports whether a module with the given ID exists.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// ByUnit returns all modules in the given unit, in input order.
// Unknown units yield an empty slice.
func (c *Catalog) ByUnit(unit int) []Module {
	return slices.Clone(c.byUnit[unit])
}

// Units returns the distinct unit numbers present, ascending.
func (c *Catalog) Units() []int {
	return slices.Clone(c.units)
}
