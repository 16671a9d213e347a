// Package catalog provides the ordered in-memory program store.
package catalog

import "github.com/programrank/programrank/types"

// Catalog is an insertion-ordered collection of programs. Insertion order
// defines the index space used for similarity lookups, so entries are
// never reordered or deduplicated. The zero value is an empty catalog
// ready for use.
type Catalog struct {
	programs []types.Program
}

// New creates a catalog pre-populated with programs, preserving their order.
func New(programs ...types.Program) *Catalog {
	c := &Catalog{}
	for _, p := range programs {
		c.Add(p)
	}
	return c
}

// Add appends a program to the end of the catalog. No validation is
// performed; absent fields are normalized at feature-construction time.
func (c *Catalog) Add(p types.Program) {
	c.programs = append(c.programs, p)
}

// All returns the programs in insertion order. The result is never nil
// and must be treated as read-only.
func (c *Catalog) All() []types.Program {
	if c.programs == nil {
		return []types.Program{}
	}
	return c.programs
}

// Len returns the number of programs in the catalog.
func (c *Catalog) Len() int {
	return len(c.programs)
}

// Documents synthesizes the text document for every program, in catalog order.
func (c *Catalog) Documents() []string {
	docs := make([]string, len(c.programs))
	for i, p := range c.programs {
		docs[i] = p.Document()
	}
	return docs
}
