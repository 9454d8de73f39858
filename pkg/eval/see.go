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

package eval

import (
	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

var seeValue = [piece.TypeN]Eval{
	piece.Pawn:   100,
	piece.Knight: 400,
	piece.Bishop: 400,
	piece.Rook:   600,
	piece.Queen:  1000,
	piece.King:   30000,
}

// SEE performs a static exchange evaluation of the given move on p. It
// reports whether the resulting capture sequence's material balance
// beats the given threshold.
func SEE(p *board.Position, m move.Move, threshold Eval) bool {
	source, target := m.From(), m.To()

	attacker := p.Mailbox[source].Type()
	victim := attacker
	if m.IsEnPassant() {
		victim = piece.Pawn
	} else if p.Mailbox[target] != piece.NoPiece {
		victim = p.Mailbox[target].Type()
	} else {
		victim = piece.NoType
	}

	balance := seeValue[victim] // win the victim
	if balance < threshold {
		// even winning the victim for free doesn't beat threshold
		return false
	}

	balance -= seeValue[attacker] // lose the attacker
	if balance >= threshold {
		// even losing the attacker for nothing still beats threshold
		return true
	}

	occupied := p.Occupied()
	occupied.Unset(source)
	sideToMove := p.SideToMove.Other()

	attackers := attackersTo(p, target, occupied) & occupied

	diagonal := p.PieceBBs[piece.Bishop] | p.PieceBBs[piece.Queen]
	straight := p.PieceBBs[piece.Rook] | p.PieceBBs[piece.Queen]

	for {
		friends := attackers & p.ColorBBs[sideToMove]
		if friends == bitboard.Empty {
			break
		}

		for attacker = piece.Pawn; attacker < piece.King; attacker++ {
			if friends&p.PieceBBs[attacker] != bitboard.Empty {
				break
			}
		}

		if attacker == piece.King && (attackers&^friends) != bitboard.Empty {
			// king can't capture into a square still covered by the enemy
			break
		}

		source = (friends & p.PieceBBs[attacker]).FirstOne()

		occupied.Unset(source)
		sideToMove = sideToMove.Other()

		balance = -balance - seeValue[attacker]
		if balance >= threshold {
			break
		}

		// reveal x-ray attackers behind the piece that just captured
		switch attacker {
		case piece.Pawn, piece.Bishop:
			attackers |= attacks.Bishop(target, occupied) & diagonal
		case piece.Rook:
			attackers |= attacks.Rook(target, occupied) & straight
		case piece.Queen:
			attackers |= attacks.Bishop(target, occupied)&diagonal | attacks.Rook(target, occupied)&straight
		}

		attackers &= occupied
	}

	// sideToMove is whoever failed to recapture; we win the exchange
	// unless that's us
	return sideToMove != p.SideToMove
}

func attackersTo(p *board.Position, s square.Square, blockers bitboard.Board) bitboard.Board {
	diagonal := p.PieceBBs[piece.Bishop] | p.PieceBBs[piece.Queen]
	straight := p.PieceBBs[piece.Rook] | p.PieceBBs[piece.Queen]

	return attacks.King[s]&p.PieceBBs[piece.King] |
		attacks.Knight[s]&p.PieceBBs[piece.Knight] |
		attacks.PawnCapt[piece.White][s]&p.Pawns(piece.Black) |
		attacks.PawnCapt[piece.Black][s]&p.Pawns(piece.White) |
		attacks.Bishop(s, blockers)&diagonal |
		attacks.Rook(s, blockers)&straight
}
