// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"context"
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/tapcube/physics"
	"cogentcore.org/tapcube/scene"
)

// AddCube places a new dynamic cube [Config.TapOffset] above the given
// tap location, in scene coordinates, and returns it.
func (md *Model) AddCube(tap math32.Vector3) *scene.Entity {
	cfg := md.Config
	pos := tap.Add(math32.Vec3(0, cfg.TapOffset, 0))
	box := physics.NewCube(cfg.CubeSize)

	md.mu.Lock()
	defer md.mu.Unlock()
	en := scene.NewSolid(fmt.Sprintf("cube-%d", len(md.cubes)), box, scene.Material{Color: CubeColor})
	en.SetPosition(pos).SetInputTarget(scene.IndirectInput)
	en.SetBody(cfg.CubeBody(en.Collision.Shapes...))
	md.cubes = append(md.cubes, en)
	md.content.AddChild(en)
	return en
}

// HandleTaps places a cube for every tap location received, in order,
// until taps is closed or ctx is done.
func (md *Model) HandleTaps(ctx context.Context, taps <-chan math32.Vector3) error {
	return consume(ctx, taps, func(tap math32.Vector3) error {
		md.AddCube(tap)
		return nil
	})
}
