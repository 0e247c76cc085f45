// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uid implements unique ID provision for graphs.
package uid

import "math"

// Max is the maximum ID that can be allocated by a Set.
const Max = math.MaxInt64 - 1

// Set tracks IDs in use by a graph and hands out fresh ones, preferring
// released IDs over ever-increasing new ones.
type Set struct {
	used map[int64]bool
	free map[int64]bool
	next int64
}

// NewSet returns a ready to use Set.
func NewSet() *Set {
	return &Set{used: make(map[int64]bool), free: make(map[int64]bool)}
}

// NewID returns an ID not currently in use. The ID is not considered in
// use until it is passed to Use, so repeated calls without an intervening
// Use may return the same ID.
func (s *Set) NewID() int64 {
	for id := range s.free {
		return id
	}
	for s.next <= Max && s.used[s.next] {
		s.next++
	}
	if s.next <= Max {
		return s.next
	}
	for id := int64(0); id <= Max; id++ {
		if !s.used[id] {
			return id
		}
	}
	panic("uid: unable to find free ID")
}

// Use marks id as in use.
func (s *Set) Use(id int64) {
	delete(s.free, id)
	s.used[id] = true
	if id < Max && id >= s.next {
		s.next = id + 1
	}
}

// Release frees id for reuse.
func (s *Set) Release(id int64) {
	delete(s.used, id)
	s.free[id] = true
}
