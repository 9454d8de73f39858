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
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Queen returns the attack set of a queen on s given the combined board
// occupancy: the union of a rook's and a bishop's attacks from s.
func Queen(s square.Square, occupied bitboard.Board) bitboard.Board {
	return Rook(s, occupied) | Bishop(s, occupied)
}

// Of returns the attack set of the given piece type on square s given
// the combined board occupancy. occupied is unused for leaper attacks.
func Of(t piece.Type, s square.Square, occupied bitboard.Board) bitboard.Board {
	switch t {
	case piece.Bishop:
		return Bishop(s, occupied)
	case piece.Rook:
		return Rook(s, occupied)
	case piece.Queen:
		return Queen(s, occupied)
	case piece.Knight:
		return Knight[s]
	case piece.King:
		return King[s]
	default:
		panic("attacks.Of: unknown piece type")
	}
}
