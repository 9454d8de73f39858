// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

package move

import "fmt"

// Variation represents a principal variation: a list of moves that can
// be played one after the other starting from some position.
type Variation struct {
	moves []Move
}

// Move returns the ith move of the variation, or Null if it doesn't
// exist.
func (v *Variation) Move(i int) Move {
	if len(v.moves) <= i {
		return Null
	}

	return v.moves[i]
}

// Len returns the number of moves in the variation.
func (v *Variation) Len() int {
	return len(v.moves)
}

// Clear empties the variation.
func (v *Variation) Clear() {
	v.moves = v.moves[:0]
}

// Update replaces the variation's moves with pMove followed by line's
// moves, i.e. it grafts a child variation onto a new root move.
func (v *Variation) Update(pMove Move, line Variation) {
	v.Clear()
	v.moves = append(v.moves, pMove)
	v.moves = append(v.moves, line.moves...)
}

// String converts the variation into a space separated move list.
func (v Variation) String() string {
	str := fmt.Sprintf("%v", v.moves)
	return str[1 : len(str)-1]
}
