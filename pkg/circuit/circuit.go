// Package circuit implements the circuit builder: it accepts element
// insertions and tracks the node set plus the dynamic/nonlinear/
// voltage-defined element subsets.
package circuit

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/manuelmaiorano/circuit-simulator/pkg/component"
)

// ErrDuplicateName is returned by AddElement when the given name is
// already in use.
var ErrDuplicateName = errors.New("duplicate element name")

// Circuit is the mutable circuit-under-construction: the element set,
// node set, and the behavioral-flag subsets sampled at insertion time.
type Circuit struct {
	ground int

	names    []string // insertion order, stable for the simulation's duration
	elements map[string]component.Element

	nodes map[int]struct{}

	dynamicNames   []string
	nonlinearNames []string
	voltageNames   []string

	log zerolog.Logger
}

// New creates an empty circuit whose reference (0V) node is groundNode.
func New(groundNode int) *Circuit {
	return NewWithLogger(groundNode, zerolog.Nop())
}

// NewWithLogger is New with an explicit logger for build-time diagnostics.
func NewWithLogger(groundNode int, log zerolog.Logger) *Circuit {
	c := &Circuit{
		ground:   groundNode,
		elements: make(map[string]component.Element),
		nodes:    make(map[int]struct{}),
		log:      log,
	}
	c.nodes[groundNode] = struct{}{}
	return c
}

// AddElement inserts el under its own name. The name must be unused.
// Whether el is voltage-defined is determined once, by probing
// el.Companion(1.0, 1.0); the builder trusts that first probe for the
// lifetime of the simulation.
func (c *Circuit) AddElement(el component.Element) error {
	name := el.Name()
	if _, exists := c.elements[name]; exists {
		return fmt.Errorf("add element %s: %w", name, ErrDuplicateName)
	}

	c.elements[name] = el
	c.names = append(c.names, name)

	c.nodes[el.Anode()] = struct{}{}
	c.nodes[el.Cathode()] = struct{}{}

	if el.IsDynamic() {
		c.dynamicNames = append(c.dynamicNames, name)
	}
	if el.IsNonlinear() {
		c.nonlinearNames = append(c.nonlinearNames, name)
	}
	if probe := el.Companion(1.0, 1.0); probe.Kind == component.Voltage {
		c.voltageNames = append(c.voltageNames, name)
	}

	c.log.Debug().Str("element", name).
		Int("anode", el.Anode()).Int("cathode", el.Cathode()).
		Bool("dynamic", el.IsDynamic()).Bool("nonlinear", el.IsNonlinear()).
		Msg("element added")

	return nil
}

// Ground returns the reference node id.
func (c *Circuit) Ground() int { return c.ground }

// NumNodes returns N, the count of distinct node ids seen so far. The
// caller guarantees these are a contiguous 0..N-1 range.
func (c *Circuit) NumNodes() int { return len(c.nodes) }

// ElementNames returns every element name in insertion order.
func (c *Circuit) ElementNames() []string { return c.names }

// Element looks up an element by name.
func (c *Circuit) Element(name string) component.Element { return c.elements[name] }

// DynamicNames returns the names of elements flagged dynamic at insertion.
func (c *Circuit) DynamicNames() []string { return c.dynamicNames }

// NonlinearNames returns the names of elements flagged nonlinear at insertion.
func (c *Circuit) NonlinearNames() []string { return c.nonlinearNames }

// VoltageNames returns the names of voltage-defined elements, in the
// stable insertion order used to assign auxiliary MNA indices.
func (c *Circuit) VoltageNames() []string { return c.voltageNames }

// VoltageAuxIndices assigns each voltage-defined element's auxiliary row/
// column index: N, N+1, ... in VoltageNames order. The map is recomputed
// on every call, so it must be taken after all elements are inserted.
func (c *Circuit) VoltageAuxIndices() map[string]int {
	n := c.NumNodes()
	idx := make(map[string]int, len(c.voltageNames))
	for i, name := range c.voltageNames {
		idx[name] = n + i
	}
	return idx
}
