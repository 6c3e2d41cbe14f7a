// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replay

import (
	"context"
	"sync"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/tapcube/tracking"
)

// HandFeed is a replayed hand tracking provider.
type HandFeed = Feed[tracking.HandUpdate]

// MeshFeed is a replayed room reconstruction provider.
type MeshFeed = Feed[tracking.MeshUpdate]

// Feed is a data provider that replays a fixed list of records once its
// [Session] has started it. Records are delivered in order, then the
// stream closes. If the session fails to start, the stream closes
// without delivering anything.
type Feed[T any] struct {

	// Interval is the delay before each record; zero delivers as fast
	// as the consumer reads.
	Interval time.Duration

	name    string
	records []T

	started   chan struct{}
	stopped   chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewFeed returns a new feed with the given provider name and records.
func NewFeed[T any](name string, records []T) *Feed[T] {
	return &Feed[T]{
		name:    name,
		records: records,
		started: make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (fd *Feed[T]) Name() string {
	return fd.name
}

// Len returns the number of records in the feed.
func (fd *Feed[T]) Len() int {
	return len(fd.records)
}

func (fd *Feed[T]) start() {
	fd.startOnce.Do(func() { close(fd.started) })
}

func (fd *Feed[T]) stop() {
	fd.stopOnce.Do(func() { close(fd.stopped) })
}

// AnchorUpdates returns a new stream of the feed records. Each call
// replays the records from the start.
func (fd *Feed[T]) AnchorUpdates(ctx context.Context) <-chan T {
	ch := make(chan T)
	go func() {
		defer close(ch)
		select {
		case <-fd.started:
		case <-fd.stopped:
			return
		case <-ctx.Done():
			return
		}
		for _, rec := range fd.records {
			if fd.Interval > 0 && !fd.wait(ctx) {
				return
			}
			select {
			case ch <- rec:
			case <-fd.stopped:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// wait sleeps for the interval, returning false if the feed is
// stopped or ctx is done first.
func (fd *Feed[T]) wait(ctx context.Context) bool {
	tm := time.NewTimer(fd.Interval)
	defer tm.Stop()
	select {
	case <-tm.C:
		return true
	case <-fd.stopped:
		return false
	case <-ctx.Done():
		return false
	}
}

// TapChannel returns a closed, buffered channel holding the given taps.
func TapChannel(taps []math32.Vector3) <-chan math32.Vector3 {
	ch := make(chan math32.Vector3, len(taps))
	for _, tp := range taps {
		ch <- tp
	}
	close(ch)
	return ch
}
