// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/tapcube/cube"
	"cogentcore.org/tapcube/replay"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roomTrace = "../../replay/testdata/room.yaml"

func assertPos(t *testing.T, want, got [3]float32) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5)
	}
}

func TestRunTrace(t *testing.T) {
	tr, err := replay.Load(roomTrace)
	require.NoError(t, err)
	sn, err := run(context.Background(), cube.DefaultConfig(), tr)
	require.NoError(t, err)

	require.Len(t, sn.Patches, 2)
	assert.Equal(t, "3f2b8c1e-6d5a-4f1b-9c0e-7a8d9e0f1a2b", sn.Patches[0].ID)
	assert.Equal(t, 2, sn.Patches[0].Triangles)
	assert.Equal(t, "9a1c2d3e-4f50-4a6b-8c7d-0e1f2a3b4c5d", sn.Patches[1].ID)
	assert.Equal(t, 1, sn.Patches[1].Triangles)
	assertPos(t, [3]float32{0, 0.76, -1}, sn.Patches[1].Pos)

	require.Len(t, sn.Markers, 2)
	assertPos(t, [3]float32{-0.2, 1.1, -0.57}, sn.Markers[0].Pos)
	assertPos(t, [3]float32{0.03, 1.1, -0.4}, sn.Markers[1].Pos)

	require.Len(t, sn.Cubes, 2)
	assertPos(t, [3]float32{0, 0.95, -1}, sn.Cubes[0].Pos)
	assertPos(t, [3]float32{0.25, 0.2, 0.5}, sn.Cubes[1].Pos)
}

func TestRunTraceDenied(t *testing.T) {
	tr, err := replay.Load(roomTrace)
	require.NoError(t, err)
	tr.Denied = true
	sn, err := run(context.Background(), cube.DefaultConfig(), tr)
	require.NoError(t, err)
	assert.Empty(t, sn.Patches)
	assertPos(t, [3]float32{0, 0, 0}, sn.Markers[0].Pos)
	assert.Len(t, sn.Cubes, 2)
}

func TestRunWritesSnapshot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "scene.toml")
	cfg := cube.DefaultConfig()
	cfg.Trace = roomTrace
	cfg.Output = out
	cfg.ErrorsOnly = true
	require.NoError(t, Run(cfg))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	var sn cube.Snapshot
	require.NoError(t, toml.Unmarshal(b, &sn))
	assert.Len(t, sn.Patches, 2)
	assert.Len(t, sn.Cubes, 2)
	assert.Equal(t, "right", sn.Markers[1].Hand)
}

func TestRunNoTrace(t *testing.T) {
	cfg := cube.DefaultConfig()
	cfg.ErrorsOnly = true
	assert.Error(t, Run(cfg))
	cfg.Trace = "testdata/missing.yaml"
	assert.Error(t, Run(cfg))
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := cube.DefaultConfig()
	cfg.Trace = roomTrace
	cfg.ErrorsOnly = true
	cfg.CubeMass = 0
	assert.ErrorContains(t, Run(cfg), "positive mass")

	cfg = cube.DefaultConfig()
	cfg.Trace = roomTrace
	cfg.ErrorsOnly = true
	cfg.CubeFriction = -3
	assert.ErrorContains(t, Run(cfg), "negative friction")

	cfg = cube.DefaultConfig()
	cfg.Trace = roomTrace
	cfg.ErrorsOnly = true
	cfg.CubeSize = -0.1
	assert.ErrorContains(t, Run(cfg), "cube size")
}

func TestRunTraceInterval(t *testing.T) {
	tr, err := replay.Load(roomTrace)
	require.NoError(t, err)
	cfg := cube.DefaultConfig()
	cfg.Interval = 0.001
	sn, err := run(context.Background(), cfg, tr)
	require.NoError(t, err)
	assert.Len(t, sn.Patches, 2)
	assert.Len(t, sn.Cubes, 2)
}
