// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cube is a small augmented reality model: it tracks the hands
// and the room, keeps invisible collision markers on the index fingertips,
// mirrors reconstructed room surfaces as static collision patches, and
// places a dynamic physics cube above every tap.
package cube

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/tapcube/physics"
	"cogentcore.org/tapcube/scene"
	"cogentcore.org/tapcube/tracking"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	// FingertipColor is the (invisible) color of fingertip markers.
	FingertipColor = color.RGBA{0, 255, 255, 255}

	// CubeColor is the color of placed cubes.
	CubeColor = color.RGBA{255, 45, 85, 255}
)

// Platform bundles the spatial tracking services the model runs on.
type Platform struct {
	Session        tracking.Session
	Hands          tracking.HandProvider
	Reconstruction tracking.ReconstructionProvider
	Shapes         tracking.ShapeGenerator
}

// Model owns the content entity and all entities under it.
// All scene mutations go through its mutex, so the update loops,
// the tap handler and readers can run on separate goroutines.
type Model struct {

	// Config holds the model parameters; it must not change after NewModel.
	Config *Config

	platform Platform

	// mu guards the content tree and the maps below.
	mu sync.Mutex

	content *scene.Entity

	meshEntities map[uuid.UUID]*scene.Entity

	fingerEntities map[tracking.Chirality]*scene.Entity

	cubes []*scene.Entity
}

// NewModel returns a new model running on the given platform.
// A nil config uses [DefaultConfig].
func NewModel(cfg *Config, pf Platform) *Model {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	md := &Model{
		Config:         cfg,
		platform:       pf,
		content:        scene.NewEntity("content"),
		meshEntities:   make(map[uuid.UUID]*scene.Entity),
		fingerEntities: make(map[tracking.Chirality]*scene.Entity),
	}
	for _, ch := range tracking.Chiralities {
		md.fingerEntities[ch] = md.newFingertip(ch)
	}
	return md
}

// newFingertip returns a tiny invisible kinematic sphere.
func (md *Model) newFingertip(ch tracking.Chirality) *scene.Entity {
	sp := &physics.Sphere{Radius: md.Config.FingertipRadius}
	en := scene.NewSolid("fingertip-"+ch.String(), sp, scene.Material{Color: FingertipColor, Unlit: true})
	en.SetBody(physics.NewBody(physics.Kinematic, sp).SetMass(0)).SetOpacity(0)
	return en
}

// SetupContent attaches the fingertip markers to the content entity
// and returns it. It is safe to call more than once.
func (md *Model) SetupContent() *scene.Entity {
	md.mu.Lock()
	defer md.mu.Unlock()
	for _, ch := range tracking.Chiralities {
		md.content.AddChild(md.fingerEntities[ch])
	}
	return md.content
}

// Run sets up the content and runs the session, both update loops and
// the tap handler until they all end. Cancelling ctx shuts everything
// down. taps may be nil.
func (md *Model) Run(ctx context.Context, taps <-chan math32.Vector3) error {
	md.SetupContent()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		md.RunSession(ctx)
		return nil
	})
	eg.Go(func() error {
		return md.ProcessHandUpdates(ctx)
	})
	eg.Go(func() error {
		return md.ProcessReconstructionUpdates(ctx)
	})
	if taps != nil {
		eg.Go(func() error {
			return md.HandleTaps(ctx, taps)
		})
	}
	return eg.Wait()
}

// RunSession starts the reconstruction and hand tracking providers.
// A failure is logged and otherwise ignored.
func (md *Model) RunSession(ctx context.Context) {
	err := md.platform.Session.Run(ctx, md.platform.Reconstruction, md.platform.Hands)
	if err != nil {
		errors.Log(fmt.Errorf("failed to start session: %w", err))
		return
	}
	slog.Info("session started")
}

// consume calls fun on each item of updates in order, until updates is
// closed (nil) or ctx is done (ctx.Err()). An error from fun ends it.
func consume[T any](ctx context.Context, updates <-chan T, fun func(T) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case up, ok := <-updates:
			if !ok {
				return nil
			}
			if err := fun(up); err != nil {
				return err
			}
		}
	}
}

//////// Content access

// Content returns the content entity.
func (md *Model) Content() *scene.Entity {
	return md.content
}

// Marker returns the fingertip marker for the given hand.
func (md *Model) Marker(ch tracking.Chirality) *scene.Entity {
	md.mu.Lock()
	defer md.mu.Unlock()
	return md.fingerEntities[ch]
}

// MarkerMatrix returns the current transform of the given hand's marker.
func (md *Model) MarkerMatrix(ch tracking.Chirality) math32.Matrix4 {
	md.mu.Lock()
	defer md.mu.Unlock()
	return md.fingerEntities[ch].Pose.Matrix
}

// MeshCount returns the number of room patches.
func (md *Model) MeshCount() int {
	md.mu.Lock()
	defer md.mu.Unlock()
	return len(md.meshEntities)
}

// MeshEntity returns the room patch for the given anchor, if any.
func (md *Model) MeshEntity(id uuid.UUID) (*scene.Entity, bool) {
	md.mu.Lock()
	defer md.mu.Unlock()
	en, ok := md.meshEntities[id]
	return en, ok
}

// Cubes returns the placed cubes in placement order.
func (md *Model) Cubes() []*scene.Entity {
	md.mu.Lock()
	defer md.mu.Unlock()
	return append([]*scene.Entity(nil), md.cubes...)
}

// NumContent returns the number of children of the content entity.
func (md *Model) NumContent() int {
	md.mu.Lock()
	defer md.mu.Unlock()
	return md.content.NumChildren()
}
