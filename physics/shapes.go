// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Shape is a collision shape in entity-local coordinates.
type Shape interface {

	// ShapeName returns the kind of shape, for display and logging.
	ShapeName() string

	// BBox returns the local bounding box of the shape.
	BBox() math32.Box3
}

// Sphere is a sphere shape centered on the origin.
type Sphere struct {
	Radius float32
}

func (sp *Sphere) ShapeName() string { return "sphere" }

func (sp *Sphere) BBox() math32.Box3 {
	r := sp.Radius
	return math32.B3(-r, -r, -r, r, r, r)
}

// Box is an axis-aligned box shape centered on the origin.
type Box struct {

	// full size along each axis
	Size math32.Vector3
}

// NewCube returns a box with equal sides of the given length.
func NewCube(size float32) *Box {
	return &Box{Size: math32.Vec3(size, size, size)}
}

func (bx *Box) ShapeName() string { return "box" }

func (bx *Box) BBox() math32.Box3 {
	h := bx.Size.MulScalar(0.5)
	return math32.B3(-h.X, -h.Y, -h.Z, h.X, h.Y, h.Z)
}

// StaticMesh is a triangle mesh shape usable only for static bodies.
type StaticMesh struct {
	Vertices []math32.Vector3
	Faces    [][3]uint32

	bbox math32.Box3
}

// Errors returned by [NewStaticMesh].
var (
	ErrEmptyMesh    = errors.New("physics: mesh has no triangles")
	ErrFaceIndex    = errors.New("physics: mesh face index out of range")
	ErrDegenerate   = errors.New("physics: mesh has degenerate triangle")
	ErrNonFiniteVtx = errors.New("physics: mesh has non-finite vertex")
)

// NewStaticMesh validates the given geometry and returns a static mesh
// shape for it. Faces index into vertices.
func NewStaticMesh(vertices []math32.Vector3, faces [][3]uint32) (*StaticMesh, error) {
	if len(vertices) < 3 || len(faces) == 0 {
		return nil, ErrEmptyMesh
	}
	bb := math32.B3Empty()
	for i, v := range vertices {
		if !finite(v.X) || !finite(v.Y) || !finite(v.Z) {
			return nil, fmt.Errorf("%w: vertex %d", ErrNonFiniteVtx, i)
		}
		bb.ExpandByPoint(v)
	}
	nv := uint32(len(vertices))
	for i, f := range faces {
		if f[0] >= nv || f[1] >= nv || f[2] >= nv {
			return nil, fmt.Errorf("%w: face %d %v with %d vertices", ErrFaceIndex, i, f, nv)
		}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return nil, fmt.Errorf("%w: face %d %v", ErrDegenerate, i, f)
		}
	}
	return &StaticMesh{Vertices: vertices, Faces: faces, bbox: bb}, nil
}

func (sm *StaticMesh) ShapeName() string { return "static-mesh" }

func (sm *StaticMesh) BBox() math32.Box3 { return sm.bbox }

// NumTriangles returns the number of triangles in the mesh.
func (sm *StaticMesh) NumTriangles() int { return len(sm.Faces) }

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
