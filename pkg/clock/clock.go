// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package clock manages how much wall-clock time a search is allowed to
// use, deriving a deadline from the UCI go command's time controls.
package clock

import (
	"time"

	"github.com/corvidchess/corvid/pkg/piece"
)

// Clock decides how long a search may run and reports when it is done.
type Clock interface {
	// Start computes the initial search deadline.
	Start()

	// Extend is called when the search wants more time to finish its
	// current iteration; extension is not always honored.
	Extend()

	// Expired reports whether the deadline has passed.
	Expired() bool
}

// Normal is the standard clock, deriving its deadline from the side to
// move's remaining time reported by the GUI (a twentieth of it).
// Increment and MovesToGo are stored but not used.
type Normal struct {
	Us piece.Color

	Time, Increment [piece.ColorN]int
	MovesToGo       int

	deadline time.Time
}

var _ Clock = (*Normal)(nil)

func (c *Normal) Start() {
	c.deadline = time.Now().Add((time.Duration(c.Time[c.Us]) * time.Millisecond) / 20)
}

func (c *Normal) Extend() {
	c.deadline = c.deadline.Add((time.Duration(c.Time[c.Us]) * time.Millisecond) / 30)
}

func (c *Normal) Expired() bool {
	return time.Now().After(c.deadline)
}

// MoveTime is the fixed-per-move clock used for the UCI "movetime"
// search option. Its deadline cannot be extended.
type MoveTime struct {
	Duration int
	deadline time.Time
}

var _ Clock = (*MoveTime)(nil)

func (c *MoveTime) Start() {
	c.deadline = time.Now().Add(time.Duration(c.Duration) * time.Millisecond)
}

func (c *MoveTime) Extend() {
	// fixed movetime search: deadline is never extended
}

func (c *MoveTime) Expired() bool {
	return time.Now().After(c.deadline)
}

// Infinite never expires, used for the UCI "infinite" and "ponder"
// search modes where the GUI itself sends "stop".
type Infinite struct{}

var _ Clock = Infinite{}

func (Infinite) Start()        {}
func (Infinite) Extend()       {}
func (Infinite) Expired() bool { return false }
