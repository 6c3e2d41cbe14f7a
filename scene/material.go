// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "image/color"

// Material contains the visual surface properties of an entity.
type Material struct {

	// main color of the surface
	Color color.RGBA

	// unlit materials ignore scene lighting
	Unlit bool

	// metallic surfaces reflect their environment
	Metallic bool
}

// InputTypes are bit flags for the kinds of input an entity accepts.
type InputTypes int32

const (
	// DirectInput is touch by the hands.
	DirectInput InputTypes = 1 << iota

	// IndirectInput is gaze and pinch from a distance.
	IndirectInput

	// AllInputs accepts both direct and indirect input.
	AllInputs = DirectInput | IndirectInput
)

// InputTarget marks an entity as a target for gestures.
type InputTarget struct {
	Allowed InputTypes
}
