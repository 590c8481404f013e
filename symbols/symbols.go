// Package symbols tracks label addresses and the instructions still waiting
// for labels that have not been defined yet.
package symbols

import (
	"fmt"
	"sort"
	"strings"

	"github.com/golang/glog"

	"github.com/Urethramancer/pdp8/asmerr"
	"github.com/Urethramancer/pdp8/isa"
)

// Store is the word storage that pending references are patched in.
// *stream.Stream satisfies it.
type Store interface {
	IP() int
	Seek(ip int) int
	Word() (uint16, error)
	Append(v uint16) error
}

// Table maps label names to addresses. Labels referenced before definition
// are kept as a list of patch sites per name.
type Table struct {
	labels  map[string]int
	pending map[string][]int
}

// New creates an empty table.
func New() *Table {
	return &Table{
		labels:  make(map[string]int),
		pending: make(map[string][]int),
	}
}

// Lookup returns the address of a defined label.
func (t *Table) Lookup(name string) (int, bool) {
	addr, ok := t.labels[name]
	return addr, ok
}

// Reference records that the word at site names a label that is not yet
// defined. The word must already hold a basic instruction.
func (t *Table) Reference(name string, site int) {
	t.pending[name] = append(t.pending[name], site)
}

// Define binds name to the current IP of s and rewrites the address field
// of every word waiting on it. The IP is left where it was.
// Redefining a label silently replaces the old address.
func (t *Table) Define(name string, s Store) error {
	at := s.IP()
	sites := t.pending[name]
	if len(sites) > 0 && at > isa.MaxAddr {
		return asmerr.Rangef("label %s at %d is out of reach of %d reference(s); max address is %d",
			name, at, len(sites), isa.MaxAddr)
	}

	for _, site := range sites {
		s.Seek(site)
		w, err := s.Word()
		if err != nil {
			return fmt.Errorf("patching %s: %w", name, err)
		}
		opcode, mode, _ := isa.DecodeBasic(w)
		if err := s.Append(isa.EncodeBasic(opcode, mode, uint8(at))); err != nil {
			return fmt.Errorf("patching %s: %w", name, err)
		}
		glog.V(2).Infof("patched %s at %d -> %d", name, site, at)
	}
	s.Seek(at)

	delete(t.pending, name)
	t.labels[name] = at
	glog.V(1).Infof("label %s = %d", name, at)
	return nil
}

// Labels returns a copy of every defined label.
func (t *Table) Labels() map[string]int {
	out := make(map[string]int, len(t.labels))
	for k, v := range t.labels {
		out[k] = v
	}
	return out
}

// Unresolved lists the labels still waiting for a definition, sorted by name.
func (t *Table) Unresolved() []Unresolved {
	var list []Unresolved
	for name, sites := range t.pending {
		list = append(list, Unresolved{Name: name, Refs: len(sites)})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Check fails if any label was referenced but never defined.
func (t *Table) Check() error {
	list := t.Unresolved()
	if len(list) == 0 {
		return nil
	}
	return asmerr.Wrap(asmerr.Semantic, &UnresolvedError{Labels: list}, "%d undefined label(s)", len(list))
}

// Unresolved is a label name and how many instructions refer to it.
type Unresolved struct {
	Name string
	Refs int
}

// UnresolvedError reports every label left undefined at the end of input.
type UnresolvedError struct {
	Labels []Unresolved
}

func (e *UnresolvedError) Error() string {
	parts := make([]string, len(e.Labels))
	for i, l := range e.Labels {
		parts[i] = fmt.Sprintf("unknown label %s referenced in %d place(s)", l.Name, l.Refs)
	}
	return strings.Join(parts, "; ")
}
