// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"context"

	"cogentcore.org/core/math32"
	"cogentcore.org/tapcube/tracking"
)

// ProcessHandUpdates moves the fingertip markers for every hand update
// until the hand tracking stream ends.
func (md *Model) ProcessHandUpdates(ctx context.Context) error {
	updates := md.platform.Hands.AnchorUpdates(ctx)
	return consume(ctx, updates, func(up tracking.HandUpdate) error {
		md.ApplyHandUpdate(up)
		return nil
	})
}

// ApplyHandUpdate moves the marker of the updated hand to its index
// fingertip. It returns false, leaving the marker where it was, if the
// hand or the fingertip is not tracked.
func (md *Model) ApplyHandUpdate(up tracking.HandUpdate) bool {
	ha := &up.Anchor
	if !ha.Tracked {
		return false
	}
	tip, ok := ha.Skeleton.Joint(tracking.IndexFingerTip)
	if !ok || !tip.Tracked {
		return false
	}
	jointXf := &tip.AnchorFromJoint
	if md.Config.ParentRelativeJoints {
		jointXf = &tip.ParentFromJoint
	}
	mtx := FingertipTransform(&ha.OriginFromAnchor, jointXf)

	md.mu.Lock()
	defer md.mu.Unlock()
	en := md.fingerEntities[ha.Chirality]
	if en == nil {
		return false
	}
	en.SetTransformMatrix(&mtx)
	return true
}

// FingertipTransform returns the world transform of a joint:
// originFromAnchor * jointXf.
func FingertipTransform(originFromAnchor, jointXf *math32.Matrix4) math32.Matrix4 {
	var mtx math32.Matrix4
	mtx.MulMatrices(originFromAnchor, jointXf)
	return mtx
}
