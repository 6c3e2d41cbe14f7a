// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracking

import "fmt"

// AnchorEvent tags an anchor update.
type AnchorEvent int32

const (
	// Added is the first update for an anchor.
	Added AnchorEvent = iota

	// Updated changes an anchor that was already added.
	Updated

	// Removed is the last update for an anchor.
	Removed

	// AnchorEventN is the number of valid anchor events.
	AnchorEventN
)

var anchorEventNames = [...]string{"added", "updated", "removed"}

// IsValid returns whether the event is one of the known events.
func (ev AnchorEvent) IsValid() bool {
	return ev >= Added && ev < AnchorEventN
}

func (ev AnchorEvent) String() string {
	if !ev.IsValid() {
		return fmt.Sprintf("AnchorEvent(%d)", int32(ev))
	}
	return anchorEventNames[ev]
}

func (ev AnchorEvent) MarshalText() ([]byte, error) {
	return []byte(ev.String()), nil
}

func (ev *AnchorEvent) UnmarshalText(text []byte) error {
	for i, nm := range anchorEventNames {
		if nm == string(text) {
			*ev = AnchorEvent(i)
			return nil
		}
	}
	return fmt.Errorf("tracking: unknown anchor event %q", text)
}
