// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracking

import (
	"testing"

	"cogentcore.org/core/base/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorEventText(t *testing.T) {
	for ev := Added; ev < AnchorEventN; ev++ {
		b, err := ev.MarshalText()
		require.NoError(t, err)
		var got AnchorEvent
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, ev, got)
	}
	var ev AnchorEvent
	assert.Error(t, ev.UnmarshalText([]byte("moved")))
	assert.False(t, AnchorEvent(9).IsValid())
	assert.Equal(t, "AnchorEvent(9)", AnchorEvent(9).String())
}

func TestChiralityText(t *testing.T) {
	var ch Chirality
	require.NoError(t, ch.UnmarshalText([]byte("right")))
	assert.Equal(t, Right, ch)
	assert.Error(t, ch.UnmarshalText([]byte("both")))
	assert.Equal(t, "left", Left.String())
}

func TestJointName(t *testing.T) {
	var jn JointName
	require.NoError(t, jn.UnmarshalText([]byte("indexFingerTip")))
	assert.Equal(t, IndexFingerTip, jn)
	assert.Error(t, jn.UnmarshalText([]byte("pinkyTip")))
	assert.Equal(t, "JointName(99)", JointName(99).String())
}

func TestSkeletonJoint(t *testing.T) {
	var sk *HandSkeleton
	_, ok := sk.Joint(IndexFingerTip)
	assert.False(t, ok)

	sk = &HandSkeleton{Joints: map[JointName]Joint{
		IndexFingerTip: {Name: IndexFingerTip, Tracked: true},
	}}
	jt, ok := sk.Joint(IndexFingerTip)
	assert.True(t, ok)
	assert.True(t, jt.Tracked)
	_, ok = sk.Joint(ThumbTip)
	assert.False(t, ok)
}

func TestConversionError(t *testing.T) {
	reason := errors.New("no triangles")
	id := uuid.MustParse("8d3c1b0a-4b3e-4b7e-9a3e-2f1c5d6e7f80")
	var err error = &ConversionError{ID: id, Reason: reason}
	assert.ErrorIs(t, err, reason)
	assert.Contains(t, err.Error(), id.String())
	var ce *ConversionError
	assert.True(t, errors.As(err, &ce))
}
