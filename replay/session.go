// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replay

import (
	"context"
	"fmt"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/tapcube/physics"
	"cogentcore.org/tapcube/tracking"
)

var (
	// ErrNotAuthorized is returned when the user denied world sensing.
	ErrNotAuthorized = errors.New("replay: world sensing not authorized")

	// ErrProviderUnavailable is returned when a provider is not supported.
	ErrProviderUnavailable = errors.New("replay: data provider not supported")
)

// controlled is implemented by the feeds a [Session] can start and stop.
type controlled interface {
	start()
	stop()
}

// Session is a [tracking.Session] for replayed feeds.
type Session struct {

	// Denied simulates the user denying authorization.
	Denied bool

	// Unavailable names providers that are not supported.
	Unavailable []string
}

// Run starts all of the given feeds, or stops all of them and returns
// an error if authorization is denied or any provider is unavailable.
func (ss *Session) Run(ctx context.Context, providers ...tracking.DataProvider) error {
	err := ss.check(ctx, providers)
	for _, p := range providers {
		fc, ok := p.(controlled)
		if !ok {
			continue
		}
		if err != nil {
			fc.stop()
		} else {
			fc.start()
		}
	}
	return err
}

func (ss *Session) check(ctx context.Context, providers []tracking.DataProvider) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ss.Denied {
		return ErrNotAuthorized
	}
	for _, p := range providers {
		if slices.Contains(ss.Unavailable, p.Name()) {
			return fmt.Errorf("%w: %s", ErrProviderUnavailable, p.Name())
		}
	}
	return nil
}

// MeshShapes is a [tracking.ShapeGenerator] producing static mesh shapes.
type MeshShapes struct{}

func (MeshShapes) GenerateStaticMesh(ctx context.Context, ma tracking.MeshAnchor) (physics.Shape, error) {
	if err := ctx.Err(); err != nil {
		return nil, &tracking.ConversionError{ID: ma.ID, Reason: err}
	}
	sm, err := physics.NewStaticMesh(ma.Geometry.Vertices, ma.Geometry.Faces)
	if err != nil {
		return nil, &tracking.ConversionError{ID: ma.ID, Reason: err}
	}
	return sm, nil
}
