// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/tapcube/physics"
	"github.com/stretchr/testify/assert"
)

func assertVector(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
	assert.InDelta(t, want.Z, got.Z, 1e-5)
}

func TestAddRemoveChild(t *testing.T) {
	root := NewEntity("root")
	a := NewEntity("a")
	b := NewEntity("b")
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(a)
	assert.Equal(t, 2, root.NumChildren())
	assert.Same(t, root, a.Parent())

	a.RemoveFromParent()
	assert.Equal(t, 1, root.NumChildren())
	assert.Nil(t, a.Parent())
	assert.Same(t, root, b.Parent())

	a.RemoveFromParent()
	assert.Equal(t, 1, root.NumChildren())

	// reparenting removes from the old parent
	b.AddChild(a)
	a2 := NewEntity("other")
	a2.AddChild(a)
	assert.Equal(t, 0, b.NumChildren())
	assert.Same(t, a2, a.Parent())
}

func TestWorldMatrix(t *testing.T) {
	root := NewEntity("root")
	grp := NewEntity("group")
	leaf := NewEntity("leaf")
	root.AddChild(grp)
	grp.AddChild(leaf)

	grp.Pose.Pos = math32.Vec3(1, 0, 0)
	grp.Pose.Quat = math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(90))
	grp.Pose.UpdateMatrix()
	leaf.SetPosition(math32.Vec3(0, 0, 1))

	// rotating +Z by 90 degrees around Y gives +X
	assertVector(t, math32.Vec3(2, 0, 0), leaf.WorldPos())
	assertVector(t, math32.Vec3(1, 0, 0), grp.WorldPos())
	assertVector(t, math32.Vec3(0, 0, 0), root.WorldPos())
}

func TestSetTransformMatrix(t *testing.T) {
	var m math32.Matrix4
	m.SetTransform(math32.Vec3(0.5, 1, -2), math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.DegToRad(30)), math32.Vec3(1, 1, 1))
	en := NewEntity("e")
	en.SetTransformMatrix(&m)
	assert.Equal(t, m, en.Pose.Matrix)
	assertVector(t, math32.Vec3(0.5, 1, -2), en.Pose.Pos)
	assert.Equal(t, m, en.WorldMatrix())
}

func TestNewSolid(t *testing.T) {
	pink := color.RGBA{255, 45, 85, 255}
	sd := NewSolid("cube", physics.NewCube(0.1), Material{Color: pink})
	assert.Equal(t, float32(1), sd.Opacity)
	assert.NotNil(t, sd.Collision)
	assert.False(t, sd.Collision.Static)
	assert.Len(t, sd.Collision.Shapes, 1)
	assert.Nil(t, sd.Body)
	assert.Nil(t, sd.Input)

	sd.SetInputTarget(IndirectInput).SetOpacity(0)
	assert.Equal(t, IndirectInput, sd.Input.Allowed)
	assert.Equal(t, DirectInput|IndirectInput, AllInputs)
	assert.Equal(t, float32(0), sd.Opacity)
}

func TestWalkDown(t *testing.T) {
	root := NewEntity("root")
	a := NewEntity("a")
	b := NewEntity("b")
	c := NewEntity("c")
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(c)

	var names []string
	root.WalkDown(func(e *Entity) bool {
		names = append(names, e.Name)
		return true
	})
	assert.Equal(t, []string{"root", "a", "c", "b"}, names)

	names = nil
	root.WalkDown(func(e *Entity) bool {
		names = append(names, e.Name)
		return e.Name != "a"
	})
	assert.Equal(t, []string{"root", "a", "b"}, names)
}
