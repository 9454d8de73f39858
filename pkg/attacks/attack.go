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

// Package attacks implements precalculated attack tables for the
// leaping pieces (pawn, knight, king) and magic-bitboard based attack
// tables for the sliding pieces (bishop, rook, queen), along with
// precalculated between/line geometry tables.
package attacks

import (
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// lookup tables for precalculated attack boards of non-sliding pieces.
var (
	King      [square.N]bitboard.Board
	Knight    [square.N]bitboard.Board
	PawnPush  [piece.ColorN][square.N]bitboard.Board
	PawnCapt  [piece.ColorN][square.N]bitboard.Board
)

// init initializes the attack bitboard lookup tables for non-sliding
// pieces by computing the bitboards for each square.
func init() {
	for s := square.A1; s <= square.H8; s++ {
		King[s] = kingAttacksFrom(s)
		Knight[s] = knightAttacksFrom(s)
		PawnPush[piece.White][s] = whitePawnPushFrom(s)
		PawnPush[piece.Black][s] = blackPawnPushFrom(s)
		PawnCapt[piece.White][s] = whitePawnAttacksFrom(s)
		PawnCapt[piece.Black][s] = blackPawnAttacksFrom(s)
	}
}

// board is a small helper used by the leaper-generation functions below
// to accumulate attack squares relative to an origin square.
type board struct {
	origin square.Square
	board  bitboard.Board
}

// addAttack adds the given square to the provided attack bitboard, but
// only if the square lies on the board, i.e, within A1 to H8.
func (b *board) addAttack(fileOffset square.File, rankOffset square.Rank) {
	attackFile := b.origin.File() + fileOffset
	attackRank := b.origin.Rank() + rankOffset

	switch {
	case attackFile < square.FileA, attackFile > square.FileH,
		attackRank < square.Rank1, attackRank > square.Rank8:
		return
	}

	attackSquare := square.From(attackFile, attackRank)
	b.board.Set(attackSquare)
}
