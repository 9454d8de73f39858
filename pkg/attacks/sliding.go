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

// ray traces a single slider ray starting one step away from s in the
// direction (df, dr), stopping at and including the first blocker in
// occ, or at the edge of the board.
func ray(s square.Square, occ bitboard.Board, df, dr int) bitboard.Board {
	var b bitboard.Board

	f := int(s.File()) + df
	r := int(s.Rank()) + dr

	for f >= int(square.FileA) && f <= int(square.FileH) && r >= int(square.Rank1) && r <= int(square.Rank8) {
		sq := square.From(square.File(f), square.Rank(r))
		b.Set(sq)

		if occ.IsSet(sq) {
			break
		}

		f += df
		r += dr
	}

	return b
}

// bishopAttacks returns the diagonal attack set of a bishop on s given
// the combined occupancy occ, traced ray by ray until a blocker (or the
// board edge) is reached.
func bishopAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	return ray(s, occ, 1, 1) | ray(s, occ, 1, -1) | ray(s, occ, -1, 1) | ray(s, occ, -1, -1)
}

// bishopMask returns the relevant-occupancy mask of a bishop on s: the
// interior squares of its diagonals, excluding the board edge since
// blockers there never change the attack set.
func bishopMask(s square.Square) bitboard.Board {
	return bishopAttacks(s, bitboard.Empty) &^ (bitboard.Rank1 | bitboard.Rank8 | bitboard.FileA | bitboard.FileH)
}

// rookAttacks returns the orthogonal attack set of a rook on s given the
// combined occupancy occ, traced ray by ray until a blocker (or the
// board edge) is reached.
func rookAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	return ray(s, occ, 0, 1) | ray(s, occ, 0, -1) | ray(s, occ, 1, 0) | ray(s, occ, -1, 0)
}

// rookMask returns the relevant-occupancy mask of a rook on s: the
// interior squares of its files/ranks, excluding the board edge.
func rookMask(s square.Square) bitboard.Board {
	vertical := (ray(s, bitboard.Empty, 0, 1) | ray(s, bitboard.Empty, 0, -1)) &^ (bitboard.Rank1 | bitboard.Rank8)
	horizontal := (ray(s, bitboard.Empty, 1, 0) | ray(s, bitboard.Empty, -1, 0)) &^ (bitboard.FileA | bitboard.FileH)
	return vertical | horizontal
}
