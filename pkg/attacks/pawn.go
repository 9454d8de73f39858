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

func whitePawnPushFrom(s square.Square) bitboard.Board {
	b := board{origin: s}
	b.addAttack(0, 1)
	return b.board
}

func blackPawnPushFrom(s square.Square) bitboard.Board {
	b := board{origin: s}
	b.addAttack(0, -1)
	return b.board
}

func whitePawnAttacksFrom(s square.Square) bitboard.Board {
	b := board{origin: s}

	b.addAttack(1, 1)  // NE
	b.addAttack(-1, 1) // NW

	return b.board
}

func blackPawnAttacksFrom(s square.Square) bitboard.Board {
	b := board{origin: s}

	b.addAttack(1, -1)  // SE
	b.addAttack(-1, -1) // SW

	return b.board
}

// Pawn returns the set of squares the pawn of color c on square s may
// attack, i.e. its diagonal capture squares irrespective of whether an
// enemy piece actually occupies them.
func Pawn(c piece.Color, s square.Square) bitboard.Board {
	return PawnCapt[c][s]
}

// PawnPushes returns the set of squares the pawn of color c on square s
// may push to, given the combined occupancy of the board. It includes
// the double push from the starting rank when the intervening square is
// empty.
func PawnPushes(c piece.Color, s square.Square, occupied bitboard.Board) bitboard.Board {
	single := PawnPush[c][s] &^ occupied
	if single == bitboard.Empty {
		return bitboard.Empty
	}

	startRank := square.Rank2
	if c == piece.Black {
		startRank = square.Rank7
	}

	var double bitboard.Board
	if s.Rank() == startRank {
		double = single.Up(c) &^ occupied
	}

	return single | double
}
