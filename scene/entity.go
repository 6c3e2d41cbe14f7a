// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the scenegraph that mirrors tracked hands, room
// surfaces and placed objects. Entities carry a [Pose] and optional
// visual, collision, physics body and input components.
//
// The scenegraph is not safe for concurrent use; callers serialize
// all mutations through one owner.
package scene

import (
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/tapcube/physics"
)

// Entity is a node in the scenegraph.
type Entity struct {
	Name string

	// Pose is the transform relative to the parent.
	Pose Pose

	// Mesh is the visual shape, nil for invisible entities.
	Mesh physics.Shape

	// Material holds the visual surface properties.
	Material Material

	// Opacity of the rendered mesh, 0 = fully transparent.
	Opacity float32

	// Collision is the collision component, if any.
	Collision *physics.Collision

	// Body is the physics body component, if any.
	Body *physics.Body

	// Input is non-nil for entities that receive gestures.
	Input *InputTarget

	parent   *Entity
	children []*Entity
}

// NewEntity returns a new entity with an identity pose and full opacity.
func NewEntity(name string) *Entity {
	en := &Entity{Name: name, Opacity: 1}
	en.Pose.Defaults()
	return en
}

// NewSolid returns a new entity with the given visual mesh and material,
// with a collision component using the same shape.
func NewSolid(name string, mesh physics.Shape, mat Material) *Entity {
	en := NewEntity(name)
	en.Mesh = mesh
	en.Material = mat
	en.Collision = physics.NewCollision(false, mesh)
	return en
}

// Parent returns the parent entity, or nil.
func (en *Entity) Parent() *Entity {
	return en.parent
}

// NumChildren returns the number of children.
func (en *Entity) NumChildren() int {
	return len(en.children)
}

// AddChild adds the given entity as the last child, removing it from any
// previous parent first.
func (en *Entity) AddChild(kid *Entity) {
	if kid.parent == en {
		return
	}
	kid.RemoveFromParent()
	kid.parent = en
	en.children = append(en.children, kid)
}

// RemoveFromParent detaches the entity from its parent. It is a no-op
// for entities without a parent.
func (en *Entity) RemoveFromParent() {
	par := en.parent
	if par == nil {
		return
	}
	if i := slices.Index(par.children, en); i >= 0 {
		par.children = slices.Delete(par.children, i, i+1)
	}
	en.parent = nil
}

// SetTransformMatrix sets the pose from the given parent-relative matrix.
func (en *Entity) SetTransformMatrix(m *math32.Matrix4) *Entity {
	en.Pose.SetMatrix(m)
	return en
}

// SetPosition sets the parent-relative position.
func (en *Entity) SetPosition(pos math32.Vector3) *Entity {
	en.Pose.SetPos(pos)
	return en
}

// SetCollision sets the [Entity.Collision] component.
func (en *Entity) SetCollision(col *physics.Collision) *Entity {
	en.Collision = col
	return en
}

// SetBody sets the [Entity.Body] component.
func (en *Entity) SetBody(bd *physics.Body) *Entity {
	en.Body = bd
	return en
}

// SetOpacity sets the [Entity.Opacity].
func (en *Entity) SetOpacity(op float32) *Entity {
	en.Opacity = op
	return en
}

// SetInputTarget makes the entity a gesture target for the given input types.
func (en *Entity) SetInputTarget(allowed InputTypes) *Entity {
	en.Input = &InputTarget{Allowed: allowed}
	return en
}

// WorldMatrix returns the transform from the entity to the scene root's
// parent space, composing all parent poses.
func (en *Entity) WorldMatrix() math32.Matrix4 {
	wm := en.Pose.Matrix
	for par := en.parent; par != nil; par = par.parent {
		var nm math32.Matrix4
		nm.MulMatrices(&par.Pose.Matrix, &wm)
		wm = nm
	}
	return wm
}

// WorldPos returns the position of the entity in world space.
func (en *Entity) WorldPos() math32.Vector3 {
	wm := en.WorldMatrix()
	pos, _, _ := wm.Decompose()
	return pos
}

// WalkDown calls fun on the entity and its descendants in depth-first
// order. Returning false from fun skips the children of that entity.
func (en *Entity) WalkDown(fun func(e *Entity) bool) {
	if !fun(en) {
		return
	}
	for _, kid := range en.children {
		kid.WalkDown(fun)
	}
}
