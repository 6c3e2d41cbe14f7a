// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "fmt"

// Material holds the surface properties used when bodies collide.
type Material struct {

	// coefficient of friction, 0 = frictionless
	Friction float32

	// coefficient of restitution (bounce), 0 = no bounce, 1 = fully elastic
	Restitution float32
}

// Defaults sets the default material values.
func (mt *Material) Defaults() {
	mt.Friction = 0.5
	mt.Restitution = 0
}

// NewMaterial returns a material with the given friction and restitution.
func NewMaterial(friction, restitution float32) Material {
	return Material{Friction: friction, Restitution: restitution}
}

// Validate returns an error if a coefficient is out of range.
func (mt *Material) Validate() error {
	if mt.Friction < 0 {
		return fmt.Errorf("physics.Material: negative friction %g", mt.Friction)
	}
	if mt.Restitution < 0 || mt.Restitution > 1 {
		return fmt.Errorf("physics.Material: restitution %g out of [0, 1]", mt.Restitution)
	}
	return nil
}
