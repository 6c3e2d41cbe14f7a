// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracking

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Chirality is the handedness of a hand anchor.
type Chirality int32

const (
	Left Chirality = iota
	Right
)

// Chiralities lists both hands.
var Chiralities = []Chirality{Left, Right}

func (ch Chirality) String() string {
	switch ch {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Chirality(%d)", int32(ch))
}

func (ch Chirality) MarshalText() ([]byte, error) {
	return []byte(ch.String()), nil
}

func (ch *Chirality) UnmarshalText(text []byte) error {
	switch string(text) {
	case "left":
		*ch = Left
	case "right":
		*ch = Right
	default:
		return fmt.Errorf("tracking: unknown chirality %q", text)
	}
	return nil
}

// JointName names a joint of the hand skeleton.
type JointName int32

const (
	Wrist JointName = iota
	ThumbKnuckle
	ThumbIntermediateBase
	ThumbIntermediateTip
	ThumbTip
	IndexFingerMetacarpal
	IndexFingerKnuckle
	IndexFingerIntermediateBase
	IndexFingerIntermediateTip
	IndexFingerTip

	// JointNameN is the number of joint names.
	JointNameN
)

var jointNames = [...]string{
	"wrist",
	"thumbKnuckle",
	"thumbIntermediateBase",
	"thumbIntermediateTip",
	"thumbTip",
	"indexFingerMetacarpal",
	"indexFingerKnuckle",
	"indexFingerIntermediateBase",
	"indexFingerIntermediateTip",
	"indexFingerTip",
}

func (jn JointName) String() string {
	if jn < 0 || jn >= JointNameN {
		return fmt.Sprintf("JointName(%d)", int32(jn))
	}
	return jointNames[jn]
}

func (jn JointName) MarshalText() ([]byte, error) {
	return []byte(jn.String()), nil
}

func (jn *JointName) UnmarshalText(text []byte) error {
	for i, nm := range jointNames {
		if nm == string(text) {
			*jn = JointName(i)
			return nil
		}
	}
	return fmt.Errorf("tracking: unknown joint name %q", text)
}

// Joint is one joint of a hand skeleton.
type Joint struct {
	Name    JointName
	Tracked bool

	// transform from the joint to its parent joint
	ParentFromJoint math32.Matrix4

	// transform from the joint to the hand anchor (the wrist),
	// the root of the skeleton
	AnchorFromJoint math32.Matrix4
}

// HandSkeleton holds the joints of a tracked hand.
type HandSkeleton struct {
	Joints map[JointName]Joint
}

// Joint returns the joint of the given name, if the skeleton has it.
func (sk *HandSkeleton) Joint(name JointName) (Joint, bool) {
	if sk == nil {
		return Joint{}, false
	}
	jt, ok := sk.Joints[name]
	return jt, ok
}

// HandAnchor is the tracked pose of one hand.
type HandAnchor struct {
	Chirality Chirality
	Tracked   bool

	// transform from the anchor (the wrist) to the world origin
	OriginFromAnchor math32.Matrix4

	// Skeleton is nil when the platform has no skeleton for the hand.
	Skeleton *HandSkeleton
}

// HandUpdate is one record of the hand tracking stream.
type HandUpdate struct {
	Event  AnchorEvent
	Anchor HandAnchor
}
