// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"fmt"
	"time"

	"cogentcore.org/core/cli"
	"cogentcore.org/core/math32"
	"cogentcore.org/tapcube/physics"
)

// Config is the configuration information for the tapcube model and cli.
type Config struct {

	// Trace is the replay trace file (YAML) to run.
	Trace string `posarg:"0" required:"-"`

	// Output is an optional TOML file the final scene snapshot is written to.
	Output string `flag:"o,output"`

	// TapOffset is how far above the tap location a cube is placed.
	TapOffset float32 `default:"0.2"`

	// CubeSize is the side length of placed cubes.
	CubeSize float32 `default:"0.1"`

	// CubeMass is the mass of placed cubes.
	CubeMass float32 `default:"1"`

	// CubeFriction is the friction coefficient of placed cubes.
	CubeFriction float32 `default:"0.8"`

	// CubeRestitution is the restitution (bounce) of placed cubes.
	CubeRestitution float32 `default:"0"`

	// FingertipRadius is the radius of the fingertip marker spheres.
	FingertipRadius float32 `default:"0.005"`

	// ParentRelativeJoints places fingertip markers using the joint
	// transform relative to its parent joint instead of relative to the
	// hand anchor (the wrist).
	ParentRelativeJoints bool

	// StrictAnchors stops room reconstruction on a mesh update that
	// violates the add/update/remove contract, instead of logging it
	// and continuing.
	StrictAnchors bool

	// Interval is the delay in seconds between replayed tracking
	// records; zero replays them as fast as they are consumed.
	Interval float32 `default:"0"`

	// Debug turns on debug logging.
	Debug bool `flag:"d,debug"`

	// ErrorsOnly only logs errors.
	ErrorsOnly bool `flag:"errors-only"`
}

// DefaultConfig returns a new config with all default values set.
func DefaultConfig() *Config {
	cfg := &Config{}
	cli.SetFromDefaults(cfg)
	return cfg
}

// ReplayInterval returns [Config.Interval] as a duration.
func (cfg *Config) ReplayInterval() time.Duration {
	return time.Duration(cfg.Interval * float32(time.Second))
}

// CubeBody returns a new physics body for a placed cube.
func (cfg *Config) CubeBody(shapes ...physics.Shape) *physics.Body {
	mat := physics.NewMaterial(cfg.CubeFriction, cfg.CubeRestitution)
	return physics.NewBody(physics.Dynamic, shapes...).SetMass(cfg.CubeMass).SetMaterial(mat)
}

// Validate returns an error if a cube or marker parameter would build an
// invalid entity.
func (cfg *Config) Validate() error {
	if !finite(cfg.TapOffset) {
		return fmt.Errorf("cube.Config: tap offset %g is not finite", cfg.TapOffset)
	}
	if !(cfg.CubeSize > 0) || !finite(cfg.CubeSize) {
		return fmt.Errorf("cube.Config: cube size must be positive, is %g", cfg.CubeSize)
	}
	if !(cfg.FingertipRadius > 0) || !finite(cfg.FingertipRadius) {
		return fmt.Errorf("cube.Config: fingertip radius must be positive, is %g", cfg.FingertipRadius)
	}
	if cfg.Interval < 0 {
		return fmt.Errorf("cube.Config: negative replay interval %g", cfg.Interval)
	}
	if err := cfg.CubeBody(physics.NewCube(cfg.CubeSize)).Validate(); err != nil {
		return fmt.Errorf("cube.Config: %w", err)
	}
	return nil
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
