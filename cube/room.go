// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"context"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/tapcube/physics"
	"cogentcore.org/tapcube/scene"
	"cogentcore.org/tapcube/tracking"
)

// ProcessReconstructionUpdates mirrors room mesh updates into room
// patches until the reconstruction stream ends. Updates that break the
// anchor contract are logged and skipped, or end the loop with the
// error if [Config.StrictAnchors] is set.
func (md *Model) ProcessReconstructionUpdates(ctx context.Context) error {
	updates := md.platform.Reconstruction.AnchorUpdates(ctx)
	return consume(ctx, updates, func(up tracking.MeshUpdate) error {
		err := md.ApplyMeshUpdate(ctx, up)
		if err == nil {
			return nil
		}
		if md.Config.StrictAnchors {
			return err
		}
		errors.Log(err)
		return nil
	})
}

// ApplyMeshUpdate applies one room mesh update to the room patches.
// Geometry that cannot be converted to a collision shape is dropped
// without error. It returns an [*UnknownAnchorError] for an update of an
// anchor that was never added, and an [*UnsupportedEventError] for an
// invalid event.
func (md *Model) ApplyMeshUpdate(ctx context.Context, up tracking.MeshUpdate) error {
	ma := &up.Anchor
	if !up.Event.IsValid() {
		return &UnsupportedEventError{ID: ma.ID, Event: up.Event}
	}
	if up.Event == tracking.Removed {
		md.removeMesh(ma)
		return nil
	}

	shape, err := md.platform.Shapes.GenerateStaticMesh(ctx, *ma)
	if err != nil {
		slog.Debug("dropping room mesh update", "event", up.Event, "id", ma.ID, "err", err)
		return nil
	}

	md.mu.Lock()
	defer md.mu.Unlock()
	en, has := md.meshEntities[ma.ID]
	switch up.Event {
	case tracking.Added:
		if has {
			md.updateMesh(en, ma, shape)
			return nil
		}
		en = md.newMeshEntity(ma, shape)
		md.meshEntities[ma.ID] = en
		md.content.AddChild(en)
	case tracking.Updated:
		if !has {
			return &UnknownAnchorError{ID: ma.ID}
		}
		md.updateMesh(en, ma, shape)
	}
	return nil
}

// newMeshEntity returns a static, input-targetable room patch.
func (md *Model) newMeshEntity(ma *tracking.MeshAnchor, shape physics.Shape) *scene.Entity {
	en := scene.NewEntity("room-mesh-" + ma.ID.String())
	en.SetTransformMatrix(&ma.OriginFromAnchor)
	en.SetCollision(physics.NewCollision(true, shape))
	en.SetBody(physics.NewBody(physics.Static))
	en.SetInputTarget(scene.AllInputs)
	return en
}

func (md *Model) updateMesh(en *scene.Entity, ma *tracking.MeshAnchor, shape physics.Shape) {
	en.SetTransformMatrix(&ma.OriginFromAnchor)
	en.Collision.Shapes = []physics.Shape{shape}
}

// removeMesh detaches and forgets the patch for the anchor, if any.
func (md *Model) removeMesh(ma *tracking.MeshAnchor) {
	md.mu.Lock()
	defer md.mu.Unlock()
	en, has := md.meshEntities[ma.ID]
	if !has {
		return
	}
	en.RemoveFromParent()
	delete(md.meshEntities, ma.ID)
}
