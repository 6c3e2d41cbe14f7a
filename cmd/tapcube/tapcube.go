// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tapcube replays a recorded hand and room tracking session
// through the tapcube model and reports the resulting scene.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/tapcube/cube"
	"cogentcore.org/tapcube/logx"
	"cogentcore.org/tapcube/replay"
	"github.com/pelletier/go-toml/v2"
)

func main() {
	opts := cli.DefaultOptions("tapcube", "Tapcube replays a recorded hand and room tracking session and places cubes where the user taps.")
	opts.DefaultFiles = []string{"tapcube.toml"}
	cli.Run(opts, &cube.Config{}, Run)
}

// Run replays the trace file given in the config.
func Run(c *cube.Config) error {
	logx.UserLevel = logx.LevelFromFlags(c.Debug, !c.ErrorsOnly, c.ErrorsOnly)
	logx.SetDefaultLogger()

	if err := c.Validate(); err != nil {
		return err
	}
	if c.Trace == "" {
		return errors.New("tapcube: no trace file given")
	}
	tr, err := replay.Load(c.Trace)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sn, err := run(ctx, c, tr)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	slog.Info("replay finished", "patches", len(sn.Patches), "cubes", len(sn.Cubes))
	for _, mk := range sn.Markers {
		slog.Info("fingertip", "hand", mk.Hand, "pos", mk.Pos)
	}
	if c.Output == "" {
		return nil
	}
	return writeSnapshot(c.Output, sn)
}

// run runs the model on the trace until all of its streams end.
func run(ctx context.Context, c *cube.Config, tr *replay.Trace) (*cube.Snapshot, error) {
	hands, room := tr.Feeds()
	hands.Interval = c.ReplayInterval()
	room.Interval = c.ReplayInterval()
	slog.Debug("replaying trace", "hands", hands.Len(), "meshes", room.Len(), "taps", len(tr.TapRecords))
	md := cube.NewModel(c, cube.Platform{
		Session:        tr.Session(),
		Hands:          hands,
		Reconstruction: room,
		Shapes:         replay.MeshShapes{},
	})
	err := md.Run(ctx, replay.TapChannel(tr.Taps()))
	return md.Snapshot(), err
}

// writeSnapshot saves the snapshot to the given TOML file.
func writeSnapshot(path string, sn *cube.Snapshot) error {
	b, err := toml.Marshal(sn)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0666)
}
