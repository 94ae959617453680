// Package hierarchy models the folder trees documents are filed into and
// provides the traversals used by the classifiers.
package hierarchy

import (
	"fmt"
	"strings"

	"github.com/micetf/classifieur-numerique/internal/common"
)

// Type selects one of the named hierarchies.
type Type string

// Known hierarchy types.
const (
	// TypeCPC is the shared hierarchy of the digital education advisers.
	TypeCPC Type = "cpc"
	// TypePerso is the user's personal hierarchy.
	TypePerso Type = "perso"
)

// Types lists the known hierarchy types in display order.
func Types() []Type {
	return []Type{TypeCPC, TypePerso}
}

// ParseType validates a hierarchy type name.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownHierarchy, s)
	}
	return t, nil
}

// Valid reports whether t is a known hierarchy type.
func (t Type) Valid() bool {
	return t == TypeCPC || t == TypePerso
}

// Node is either a Leaf or a *Branch.
type Node interface {
	isNode()
}

// Leaf is a folder without sub-folders.
type Leaf struct{}

func (Leaf) isNode() {}

// Branch is a folder with ordered, uniquely named children.
type Branch struct {
	Entries []Entry
}

func (*Branch) isNode() {}

// Entry is a named child of a Branch.
type Entry struct {
	Node Node
	Name string
}

// Folder builds an entry; without children it is a leaf.
func Folder(name string, children ...Entry) Entry {
	if len(children) == 0 {
		return Entry{Name: name, Node: Leaf{}}
	}
	return Entry{Name: name, Node: &Branch{Entries: children}}
}

// NewTree builds a root branch from its top-level folders.
func NewTree(children ...Entry) *Branch {
	return &Branch{Entries: children}
}

// Len returns the number of direct children.
func (b *Branch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Entries)
}

// Child returns the node stored under name.
func (b *Branch) Child(name string) (Node, bool) {
	if b == nil {
		return nil, false
	}
	for _, e := range b.Entries {
		if e.Name == name {
			return e.Node, true
		}
	}
	return nil, false
}

// set stores node under name. An existing name keeps its position and takes
// the new value, the way duplicate keys behave in a JSON object.
func (b *Branch) set(name string, node Node) {
	for i := range b.Entries {
		if b.Entries[i].Name == name {
			b.Entries[i].Node = node
			return
		}
	}
	b.Entries = append(b.Entries, Entry{Name: name, Node: node})
}

// asBranch returns the children of n, or nil for a leaf.
func asBranch(n Node) *Branch {
	switch v := n.(type) {
	case *Branch:
		return v
	case Leaf, nil:
		return nil
	default:
		return nil
	}
}
