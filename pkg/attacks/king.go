// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

package attacks

import (
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/square"
)

// kingAttacksFrom generates an attack bitboard containing all the
// possible squares a king can move to from the given square. Castling
// is not part of this table; it is handled by pkg/board since it
// depends on castling rights and check state.
func kingAttacksFrom(from square.Square) bitboard.Board {
	b := board{origin: from}

	b.addAttack(1, 0)   // E
	b.addAttack(1, 1)   // NE
	b.addAttack(0, 1)   // N
	b.addAttack(-1, 0)  // W
	b.addAttack(0, -1)  // S
	b.addAttack(1, -1)  // SE
	b.addAttack(-1, 1)  // NW
	b.addAttack(-1, -1) // SW

	return b.board
}
