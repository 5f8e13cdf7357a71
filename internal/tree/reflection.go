package tree

import "github.com/sadopc/dutree/internal/size"

// Reflection is the public-fields mirror of Node used for JSON
// serialization and for building test fixtures without going through the
// walker. Unlike Node it carries a raw uint64, not a size.Size, because the
// unit (Bytes vs Blocks) that number is measured in lives one level up, in
// the JSON envelope.
type Reflection struct {
	Name     string        `json:"name"`
	Size     uint64        `json:"size"`
	Children []*Reflection `json:"children,omitempty"`
}

// IntoReflection converts n and its whole subtree into its public-fields
// mirror.
func (n *Node) IntoReflection() *Reflection {
	r := &Reflection{Name: n.name, Size: n.data.Uint64()}
	if len(n.children) > 0 {
		r.Children = make([]*Reflection, len(n.children))
		for i, c := range n.children {
			r.Children[i] = c.IntoReflection()
		}
	}
	return r
}

// Unit constructs a size.Size carrying value, of the concrete type the
// tree is rebuilt with; FromReflection uses it to know whether to
// produce Bytes or Blocks nodes.
type Unit func(value uint64) size.Size

// FromReflection rebuilds a Node tree from its reflection, verifying the
// children-sum rule at every directory along the way. unit determines the
// concrete Size implementation used for every node's value.
//
// path is used only to build a located error message; callers at the root
// should pass the reflection's own name or "/".
func FromReflection(r *Reflection, unit Unit, path string) (*Node, error) {
	if len(r.Children) == 0 {
		return File(r.Name, unit(r.Size)), nil
	}

	children := make([]*Node, len(r.Children))
	childPath := func(name string) string {
		if path == "" {
			return name
		}
		return path + "/" + name
	}
	var sum uint64
	for i, cr := range r.Children {
		c, err := FromReflection(cr, unit, childPath(cr.Name))
		if err != nil {
			return nil, err
		}
		children[i] = c
		sum += c.data.Uint64()
	}
	if r.Size < sum {
		return nil, &ErrReflectionInvalid{Path: path}
	}
	return &Node{name: r.Name, data: unit(r.Size), children: children}, nil
}
