// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/tapcube/tracking"
	"github.com/google/uuid"
)

var (
	// ErrUnknownAnchor matches updates for mesh anchors that were never added.
	ErrUnknownAnchor = errors.New("cube: update for unknown mesh anchor")

	// ErrUnsupportedEvent matches updates with an event outside added, updated, removed.
	ErrUnsupportedEvent = errors.New("cube: unsupported anchor event")
)

// UnknownAnchorError is returned for an updated event on a mesh anchor
// that has no room patch.
type UnknownAnchorError struct {
	ID uuid.UUID
}

func (ue *UnknownAnchorError) Error() string {
	return fmt.Sprintf("cube: update for unknown mesh anchor %s", ue.ID)
}

func (ue *UnknownAnchorError) Is(target error) bool {
	return target == ErrUnknownAnchor
}

// UnsupportedEventError is returned for a mesh update with an invalid event.
type UnsupportedEventError struct {
	ID    uuid.UUID
	Event tracking.AnchorEvent
}

func (ue *UnsupportedEventError) Error() string {
	return fmt.Sprintf("cube: unsupported anchor event %v for mesh anchor %s", ue.Event, ue.ID)
}

func (ue *UnsupportedEventError) Is(target error) bool {
	return target == ErrUnsupportedEvent
}

// IsContractViolation returns whether err reports a mesh update that
// breaks the add-before-update-before-remove contract of the platform.
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrUnknownAnchor) || errors.Is(err, ErrUnsupportedEvent)
}
