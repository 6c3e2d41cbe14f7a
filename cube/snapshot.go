// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"slices"
	"strings"

	"cogentcore.org/core/math32"
	"cogentcore.org/tapcube/physics"
	"cogentcore.org/tapcube/scene"
	"cogentcore.org/tapcube/tracking"
)

// Snapshot is a plain summary of the model content, for output.
type Snapshot struct {
	Markers []MarkerInfo `toml:"markers"`
	Patches []PatchInfo  `toml:"patches"`
	Cubes   []CubeInfo   `toml:"cubes"`
}

// MarkerInfo describes a fingertip marker.
type MarkerInfo struct {
	Hand string     `toml:"hand"`
	Pos  [3]float32 `toml:"pos"`
}

// PatchInfo describes a room patch.
type PatchInfo struct {
	ID        string     `toml:"id"`
	Pos       [3]float32 `toml:"pos"`
	Triangles int        `toml:"triangles"`
}

// CubeInfo describes a placed cube.
type CubeInfo struct {
	Name string     `toml:"name"`
	Pos  [3]float32 `toml:"pos"`
}

func array3(v math32.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// Snapshot returns a summary of the current content. Patches are
// sorted by anchor ID; cubes are the dynamic bodies in content order.
func (md *Model) Snapshot() *Snapshot {
	md.mu.Lock()
	defer md.mu.Unlock()
	sn := &Snapshot{}
	for _, ch := range tracking.Chiralities {
		en := md.fingerEntities[ch]
		sn.Markers = append(sn.Markers, MarkerInfo{Hand: ch.String(), Pos: array3(en.WorldPos())})
	}
	for id, en := range md.meshEntities {
		pi := PatchInfo{ID: id.String(), Pos: array3(en.WorldPos())}
		for _, sh := range en.Collision.Shapes {
			if sm, ok := sh.(*physics.StaticMesh); ok {
				pi.Triangles += sm.NumTriangles()
			}
		}
		sn.Patches = append(sn.Patches, pi)
	}
	slices.SortFunc(sn.Patches, func(a, b PatchInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	md.content.WalkDown(func(en *scene.Entity) bool {
		if en.Body != nil && en.Body.IsDynamic() {
			sn.Cubes = append(sn.Cubes, CubeInfo{Name: en.Name, Pos: array3(en.WorldPos())})
		}
		return true
	})
	return sn
}
