// Package scene provides a 2D transform hierarchy built on geom.Mat3.
//
// A Node carries a local transform relative to its parent; the world
// transform is the composition of the parent chain and is cached until a
// transform or the hierarchy changes. Mapping points back from world to
// local space uses the cheap rigid-transform inverse whenever the world
// transform is Euclidean, falling back to the general inverse otherwise.
//
// Nodes are not safe for concurrent mutation; a scene is owned by one
// goroutine at a time, like every other value in geom.
package scene

import (
	"errors"
	"log/slog"

	"github.com/gogpu/geom"
)

// ErrCycle is returned by AttachTo when the new parent is the node itself
// or one of its descendants.
var ErrCycle = errors.New("scene: attach would create a cycle")

// Node is one element of a 2D transform hierarchy.
type Node struct {
	name     string
	local    geom.Mat3[float64]
	parent   *Node
	children []*Node

	// world transform cache, dropped whenever this node or an ancestor
	// changes
	cachedWorld geom.Mat3[float64]
	cacheValid  bool
}

// NewNode creates a detached node with an identity local transform.
// The name only appears in log output.
func NewNode(name string) *Node {
	return &Node{
		name:  name,
		local: geom.Mat3Identity[float64](),
	}
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// Parent returns the node's parent, or nil for a root node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the node's children.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Local returns the node's local transform.
func (n *Node) Local() geom.Mat3[float64] { return n.local }

// SetLocal replaces the node's local transform and drops the cached world
// transforms of the node and everything below it.
func (n *Node) SetLocal(m geom.Mat3[float64]) {
	n.local = m
	n.invalidate()
}

// AttachTo makes the node a child of parent, detaching it from its current
// parent first. Attaching to nil is equivalent to Detach.
func (n *Node) AttachTo(parent *Node) error {
	for p := parent; p != nil; p = p.parent {
		if p == n {
			return ErrCycle
		}
	}
	n.Detach()
	if parent == nil {
		return nil
	}
	n.parent = parent
	parent.children = append(parent.children, n)
	n.invalidate()
	geom.Logger().Debug("scene: node attached",
		slog.String("node", n.name), slog.String("parent", parent.name))
	return nil
}

// Detach removes the node from its parent, making it a root.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
	n.invalidate()
	geom.Logger().Debug("scene: node detached",
		slog.String("node", n.name), slog.String("parent", p.name))
}

// World returns the node's world transform: the composition of every local
// transform from the root down to this node. The result is cached until
// the node or an ancestor changes.
func (n *Node) World() geom.Mat3[float64] {
	if n.cacheValid {
		return n.cachedWorld
	}
	w := n.local
	if n.parent != nil {
		w = n.parent.World().Mul(n.local)
	}
	n.cachedWorld = w
	n.cacheValid = true
	return w
}

// LocalToWorld maps a point from the node's local space into world space.
func (n *Node) LocalToWorld(p geom.Vec2[float64]) geom.Vec2[float64] {
	return n.World().TransformPoint(p)
}

// WorldToLocal maps a point from world space into the node's local space.
// Rigid world transforms take the fast Euclidean inverse; anything with
// scale or shear falls back to the general inverse.
func (n *Node) WorldToLocal(p geom.Vec2[float64]) geom.Vec2[float64] {
	w := n.World()
	if w.IsEuclidean() {
		return w.InvertedEuclidean().TransformPoint(p)
	}
	return w.Inverted().TransformPoint(p)
}

// invalidate drops the world cache of the node and its whole subtree.
func (n *Node) invalidate() {
	n.cacheValid = false
	for _, c := range n.children {
		c.invalidate()
	}
}
