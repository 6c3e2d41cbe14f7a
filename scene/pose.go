// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/core/math32"

// Pose contains the full specification of position and orientation,
// always relative to the parent entity.
type Pose struct {

	// position of center of entity (relative to parent)
	Pos math32.Vector3

	// scale (relative to parent)
	Scale math32.Vector3

	// rotation specified as a Quat (relative to parent)
	Quat math32.Quat

	// local matrix; contains all position, rotation and scale information (relative to parent)
	Matrix math32.Matrix4
}

// Defaults sets the identity pose.
func (ps *Pose) Defaults() {
	ps.Pos.Set(0, 0, 0)
	ps.Scale.Set(1, 1, 1)
	ps.Quat.SetIdentity()
	ps.UpdateMatrix()
}

// UpdateMatrix updates the local transform matrix based on its position, quaternion, and scale.
func (ps *Pose) UpdateMatrix() {
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// SetMatrix sets the local transformation matrix and updates Pos, Scale, Quat.
// The matrix is kept exactly as given.
func (ps *Pose) SetMatrix(m *math32.Matrix4) {
	ps.Matrix = *m
	ps.Pos, ps.Quat, ps.Scale = ps.Matrix.Decompose()
}

// SetPos sets the position and updates the matrix.
func (ps *Pose) SetPos(pos math32.Vector3) {
	ps.Pos = pos
	ps.UpdateMatrix()
}
