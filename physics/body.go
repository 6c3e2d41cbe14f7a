// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package physics provides the physics components attached to scene
// entities: body modes, rigid parameters, materials and collision shapes.
// Simulation itself is done by the platform.
package physics

import "fmt"

// Modes are the ways a physics body can be driven.
type Modes int32

const (
	// Static bodies never move and take part in collisions only.
	Static Modes = iota

	// Kinematic bodies are moved by the application, not by simulation.
	Kinematic

	// Dynamic bodies are moved by simulation (gravity, collisions).
	Dynamic
)

func (md Modes) String() string {
	switch md {
	case Static:
		return "Static"
	case Kinematic:
		return "Kinematic"
	case Dynamic:
		return "Dynamic"
	}
	return fmt.Sprintf("Modes(%d)", int32(md))
}

// Rigid contains the rigid body properties of a body.
type Rigid struct {

	// mass of the body; zero for static and kinematic bodies
	Mass float32

	// surface material
	Material Material
}

// Body is the physics body component of an entity.
type Body struct {

	// how the body is driven
	Mode Modes

	// rigid body properties, including mass, friction and restitution
	Rigid Rigid

	// shapes used for the body mass distribution; if empty, the
	// collision shapes of the entity are used
	Shapes []Shape
}

// NewBody returns a new body in the given mode with the default material.
func NewBody(mode Modes, shapes ...Shape) *Body {
	bd := &Body{Mode: mode, Shapes: shapes}
	bd.Rigid.Material.Defaults()
	return bd
}

// SetMass sets the [Rigid.Mass] of the body.
func (bd *Body) SetMass(mass float32) *Body {
	bd.Rigid.Mass = mass
	return bd
}

// SetMaterial sets the [Rigid.Material] of the body.
func (bd *Body) SetMaterial(mat Material) *Body {
	bd.Rigid.Material = mat
	return bd
}

// IsDynamic returns whether the body is moved by simulation.
func (bd *Body) IsDynamic() bool {
	return bd.Mode == Dynamic
}

// Validate checks that mass is consistent with the body mode.
func (bd *Body) Validate() error {
	switch bd.Mode {
	case Dynamic:
		if bd.Rigid.Mass <= 0 {
			return fmt.Errorf("physics.Body: dynamic body needs positive mass, has %g", bd.Rigid.Mass)
		}
	case Static, Kinematic:
	default:
		return fmt.Errorf("physics.Body: invalid mode %v", bd.Mode)
	}
	return bd.Rigid.Material.Validate()
}

// Collision is the collision component of an entity.
type Collision struct {

	// collision shapes, in entity-local coordinates
	Shapes []Shape

	// static collisions never move the entity
	Static bool
}

// NewCollision returns a new collision component with the given shapes.
func NewCollision(static bool, shapes ...Shape) *Collision {
	return &Collision{Shapes: shapes, Static: static}
}
