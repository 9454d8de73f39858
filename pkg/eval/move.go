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

package eval

import (
	"math"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
)

// MoveFunc scores a single move for ordering purposes.
type MoveFunc func(move.Move) MoveScore

// MoveScore represents the ordering score of a move.
type MoveScore uint16

// constants representing move ordering scores
const (
	PVMove       MoveScore = math.MaxUint16
	MvvLvaOffset MoveScore = 100
	DefaultMove  MoveScore = 0
)

// MvvLva scores a capture by the value of its victim against the value
// of its attacker: a weak piece capturing a valuable one sorts first.
// score = MvvLvaOffset + MvvLva[victim][attacker]
var MvvLva = [piece.TypeN][piece.TypeN]MoveScore{
	// attackers: none  P   N   B   R   Q   K
	piece.Pawn:   {16, 15, 14, 13, 12, 11, 10},
	piece.Knight: {26, 25, 24, 23, 22, 21, 20},
	piece.Bishop: {36, 35, 34, 33, 32, 31, 30},
	piece.Rook:   {46, 45, 44, 43, 42, 41, 40},
	piece.Queen:  {56, 55, 54, 53, 52, 51, 50},
}

// OfMove returns a MoveFunc which orders moves for the given position,
// ranking pv first, then captures/promotions by MVV-LVA, then quiets.
func OfMove(p *board.Position, pv move.Move) MoveFunc {
	return func(m move.Move) MoveScore {
		switch {
		case m == pv:
			return PVMove

		case m.IsCapture(), m.IsPromotion():
			victim := piece.NoType
			if m.IsEnPassant() {
				victim = piece.Pawn
			} else if m.IsCapture() {
				victim = p.Mailbox[m.To()].Type()
			}
			attacker := p.Mailbox[m.From()].Type()
			return MvvLvaOffset + MvvLva[victim][attacker]

		default:
			return DefaultMove
		}
	}
}
