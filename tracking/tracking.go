// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tracking defines the boundary to the spatial-tracking platform:
// hand and room-mesh anchors, their update streams, the session that
// starts the data providers, and collision shape generation from
// reconstructed geometry.
package tracking

import (
	"context"
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/tapcube/physics"
	"github.com/google/uuid"
)

// DataProvider is a source of anchor updates run by a [Session].
type DataProvider interface {

	// Name returns the provider name, used in logs and errors.
	Name() string
}

// HandProvider streams hand anchor updates.
type HandProvider interface {
	DataProvider

	// AnchorUpdates returns a channel of hand updates in delivery order.
	// The channel is closed when the stream ends or ctx is done.
	AnchorUpdates(ctx context.Context) <-chan HandUpdate
}

// ReconstructionProvider streams room mesh anchor updates.
type ReconstructionProvider interface {
	DataProvider

	// AnchorUpdates returns a channel of mesh updates in delivery order.
	// The channel is closed when the stream ends or ctx is done.
	AnchorUpdates(ctx context.Context) <-chan MeshUpdate
}

// Session requests authorization and runs the given providers.
type Session interface {
	Run(ctx context.Context, providers ...DataProvider) error
}

// ShapeGenerator derives collision shapes from reconstructed geometry.
type ShapeGenerator interface {

	// GenerateStaticMesh returns a static collision shape for the anchor
	// geometry, or a [*ConversionError].
	GenerateStaticMesh(ctx context.Context, anchor MeshAnchor) (physics.Shape, error)
}

// Geometry is raw reconstructed surface geometry, in anchor coordinates.
type Geometry struct {
	Vertices []math32.Vector3
	Faces    [][3]uint32
}

// MeshAnchor is a reconstructed room surface.
type MeshAnchor struct {

	// stable identifier assigned by the platform
	ID uuid.UUID

	// transform from the anchor to the world origin
	OriginFromAnchor math32.Matrix4

	Geometry Geometry
}

// MeshUpdate is one record of the room reconstruction stream.
type MeshUpdate struct {
	Event  AnchorEvent
	Anchor MeshAnchor
}

// ConversionError is returned when geometry cannot be turned into a shape.
type ConversionError struct {
	ID     uuid.UUID
	Reason error
}

func (ce *ConversionError) Error() string {
	return fmt.Sprintf("tracking: cannot convert mesh anchor %s: %v", ce.ID, ce.Reason)
}

func (ce *ConversionError) Unwrap() error {
	return ce.Reason
}
