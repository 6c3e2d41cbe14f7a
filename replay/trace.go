// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package replay implements the tracking platform from a recorded trace
// file, so that the model can run without a headset.
//
// A trace is a YAML document:
//
//	denied: false
//	unavailable: [hand-tracking]
//	hands:
//	  - hand: left
//	    anchor: {pos: [0, 1, -0.3], rot: [0, 0, 0]}
//	    joints:
//	      - name: indexFingerTip
//	        anchor: {pos: [0.02, 0.01, -0.17]}
//	        parent: {pos: [0, 0, -0.025]}
//	meshes:
//	  - event: added
//	    id: 3f2b8c1e-6d5a-4f1b-9c0e-7a8d9e0f1a2b
//	    anchor: {pos: [0, 0, 0]}
//	    vertices: [[-1, 0, -1], [1, 0, -1], [1, 0, 1]]
//	    faces: [[0, 1, 2]]
//	taps:
//	  - [0, 0.8, -0.5]
//
// Rotations are Euler angles in degrees.
package replay

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/tapcube/tracking"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Provider names used by [Trace.Feeds].
const (
	HandTrackingName        = "hand-tracking"
	SceneReconstructionName = "scene-reconstruction"
)

// Transform is a position, rotation and scale in a trace.
type Transform struct {
	Pos [3]float32 `yaml:"pos"`

	// Euler angles in degrees
	Rot [3]float32 `yaml:"rot"`

	// defaults to 1, 1, 1
	Scale *[3]float32 `yaml:"scale"`
}

// Matrix returns the transform as a matrix.
func (tf *Transform) Matrix() math32.Matrix4 {
	sc := math32.Vec3(1, 1, 1)
	if tf.Scale != nil {
		sc = vec3(*tf.Scale)
	}
	q := math32.NewQuatEuler(vec3(tf.Rot).MulScalar(math32.DegToRadFactor))
	var m math32.Matrix4
	m.SetTransform(vec3(tf.Pos), q, sc)
	return m
}

func vec3(a [3]float32) math32.Vector3 {
	return math32.Vec3(a[0], a[1], a[2])
}

// JointRecord is one joint of a hand record.
type JointRecord struct {
	Name      tracking.JointName `yaml:"name"`
	Untracked bool               `yaml:"untracked"`
	Parent    Transform          `yaml:"parent"`
	Anchor    Transform          `yaml:"anchor"`
}

// HandRecord is one hand update in a trace.
type HandRecord struct {
	Hand      tracking.Chirality `yaml:"hand"`
	Untracked bool               `yaml:"untracked"`
	Anchor    Transform          `yaml:"anchor"`
	Joints    []JointRecord      `yaml:"joints"`
}

// MeshRecord is one room mesh update in a trace.
type MeshRecord struct {
	Event    tracking.AnchorEvent `yaml:"event"`
	ID       uuid.UUID            `yaml:"id"`
	Anchor   Transform            `yaml:"anchor"`
	Vertices [][3]float32         `yaml:"vertices"`
	Faces    [][3]uint32          `yaml:"faces"`
}

// Trace is a recorded tracking session.
type Trace struct {

	// Denied simulates the user denying authorization.
	Denied bool `yaml:"denied"`

	// Unavailable names providers that fail to start.
	Unavailable []string `yaml:"unavailable"`

	HandRecords []HandRecord `yaml:"hands"`
	MeshRecords []MeshRecord `yaml:"meshes"`
	TapRecords  [][3]float32 `yaml:"taps"`
}

// Load reads a trace from the given YAML file.
func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tr, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("replay: %s: %w", path, err)
	}
	return tr, nil
}

// Parse parses a YAML trace. Unknown fields are an error.
func Parse(data []byte) (*Trace, error) {
	tr := &Trace{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(tr)
	if errors.Is(err, io.EOF) {
		return tr, nil
	}
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// Hands returns the hand updates of the trace. The first update for
// each hand is an added event and the rest are updated events.
func (tr *Trace) Hands() []tracking.HandUpdate {
	seen := map[tracking.Chirality]bool{}
	ups := make([]tracking.HandUpdate, 0, len(tr.HandRecords))
	for _, hr := range tr.HandRecords {
		ev := tracking.Updated
		if !seen[hr.Hand] {
			ev = tracking.Added
			seen[hr.Hand] = true
		}
		ha := tracking.HandAnchor{
			Chirality:        hr.Hand,
			Tracked:          !hr.Untracked,
			OriginFromAnchor: hr.Anchor.Matrix(),
		}
		if len(hr.Joints) > 0 {
			ha.Skeleton = &tracking.HandSkeleton{Joints: make(map[tracking.JointName]tracking.Joint, len(hr.Joints))}
			for _, jr := range hr.Joints {
				ha.Skeleton.Joints[jr.Name] = tracking.Joint{
					Name:            jr.Name,
					Tracked:         !jr.Untracked,
					ParentFromJoint: jr.Parent.Matrix(),
					AnchorFromJoint: jr.Anchor.Matrix(),
				}
			}
		}
		ups = append(ups, tracking.HandUpdate{Event: ev, Anchor: ha})
	}
	return ups
}

// Meshes returns the room mesh updates of the trace.
func (tr *Trace) Meshes() []tracking.MeshUpdate {
	ups := make([]tracking.MeshUpdate, 0, len(tr.MeshRecords))
	for _, mr := range tr.MeshRecords {
		geom := tracking.Geometry{Faces: mr.Faces}
		for _, v := range mr.Vertices {
			geom.Vertices = append(geom.Vertices, vec3(v))
		}
		ups = append(ups, tracking.MeshUpdate{
			Event: mr.Event,
			Anchor: tracking.MeshAnchor{
				ID:               mr.ID,
				OriginFromAnchor: mr.Anchor.Matrix(),
				Geometry:         geom,
			},
		})
	}
	return ups
}

// Taps returns the tap locations of the trace.
func (tr *Trace) Taps() []math32.Vector3 {
	taps := make([]math32.Vector3, len(tr.TapRecords))
	for i, tp := range tr.TapRecords {
		taps[i] = vec3(tp)
	}
	return taps
}

// Session returns a session that fails as configured in the trace.
func (tr *Trace) Session() *Session {
	return &Session{Denied: tr.Denied, Unavailable: tr.Unavailable}
}

// Feeds returns new hand tracking and scene reconstruction feeds
// replaying the trace.
func (tr *Trace) Feeds() (*HandFeed, *MeshFeed) {
	return NewFeed(HandTrackingName, tr.Hands()), NewFeed(SceneReconstructionName, tr.Meshes())
}
