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

package board

import (
	"github.com/corvidchess/corvid/internal/util"
	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// MakeMove plays the given legal move on the Position.
func (p *Position) MakeMove(m move.Move) {
	p.History[p.Ply] = Undo{
		Move:            m,
		CastlingRights:  p.CastlingRights,
		CapturedPiece:   piece.NoPiece,
		EnPassantTarget: p.EnPassantTarget,
		DrawClock:       p.DrawClock,
		Hash:            p.Hash,
	}

	// the half-move clock counts plys since the last pawn push or
	// capture, for detecting draws by the 50-move rule
	p.DrawClock++

	if m == move.Null {
		p.makeNullMove()
		return
	}

	from := m.From()
	to := m.To()
	flag := m.Flag()

	movingPiece := p.Mailbox[from]
	if movingPiece.Type() == piece.Pawn {
		p.DrawClock = 0
	}

	if p.EnPassantTarget != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}
	p.EnPassantTarget = square.None

	captureSq := to
	if flag == move.EnPassant {
		captureSq = square.From(to.File(), from.Rank())
	}

	if m.IsCapture() {
		p.History[p.Ply].CapturedPiece = p.Mailbox[captureSq]
		p.DrawClock = 0
		p.ClearSquare(captureSq)
	}

	if flag == move.Castling {
		rookInfo := castling.Rooks[to]
		p.ClearSquare(rookInfo.From)
		p.FillSquare(rookInfo.To, rookInfo.RookType)
	}

	if flag == move.DoublePawnPush {
		// the en passant target is the midpoint of the double push,
		// set only when an enemy pawn could actually capture there
		epTarget := square.Square((int(from) + int(to)) / 2)
		them := p.SideToMove.Other()
		if p.Pawns(them)&attacks.PawnCapt[p.SideToMove][epTarget] != 0 {
			p.EnPassantTarget = epTarget
			p.Hash ^= zobrist.EnPassant[epTarget.File()]
		}
	}

	p.ClearSquare(from)

	toPiece := movingPiece
	if m.IsPromotion() {
		toPiece = piece.New(m.Promotion(), p.SideToMove)
	}
	p.FillSquare(to, toPiece)

	p.Hash ^= zobrist.Castling[p.CastlingRights] // remove old rights
	p.CastlingRights &^= castling.RightUpdates[from]
	p.CastlingRights &^= castling.RightUpdates[to]
	p.Hash ^= zobrist.Castling[p.CastlingRights] // put new rights

	p.Ply++
	if p.SideToMove = p.SideToMove.Other(); p.SideToMove == piece.White {
		p.FullMoves++
	}
	p.Hash ^= zobrist.SideToMove
}

func (p *Position) makeNullMove() {
	if p.EnPassantTarget != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}
	p.EnPassantTarget = square.None

	p.Ply++
	if p.SideToMove = p.SideToMove.Other(); p.SideToMove == piece.White {
		p.FullMoves++
	}
	p.Hash ^= zobrist.SideToMove
}

// UnmakeMove unmakes the last move played on the Position.
func (p *Position) UnmakeMove() {
	if p.SideToMove = p.SideToMove.Other(); p.SideToMove == piece.Black {
		p.FullMoves--
	}
	p.Ply--

	undo := p.History[p.Ply]
	p.EnPassantTarget = undo.EnPassantTarget
	p.DrawClock = undo.DrawClock
	p.CastlingRights = undo.CastlingRights

	m := undo.Move
	if m == move.Null {
		p.Hash = undo.Hash
		return
	}

	from := m.From()
	to := m.To()
	flag := m.Flag()

	movedPiece := p.Mailbox[to]
	if m.IsPromotion() {
		movedPiece = piece.New(piece.Pawn, p.SideToMove)
	}

	p.ClearSquare(to)
	p.FillSquare(from, movedPiece)

	switch {
	case flag == move.Castling:
		rookInfo := castling.Rooks[to]
		p.ClearSquare(rookInfo.To)
		p.FillSquare(rookInfo.From, rookInfo.RookType)

	case flag == move.EnPassant:
		p.FillSquare(square.From(to.File(), from.Rank()), undo.CapturedPiece)

	case m.IsCapture():
		p.FillSquare(to, undo.CapturedPiece)
	}

	p.Hash = undo.Hash
}

// NewMove builds the move.Move that plays a piece from "from" to "to",
// filling in the correct flag from the current position. It does not
// handle promotions; callers need piece.New(piece, to promote to) via
// move.NewPromotion instead.
func (p *Position) NewMove(from, to square.Square) move.Move {
	pieceType := p.Mailbox[from].Type()

	switch {
	case pieceType == piece.King && util.Abs(to-from) == 2:
		return move.New(from, to, move.Castling)
	case pieceType == piece.Pawn && to == p.EnPassantTarget:
		return move.New(from, to, move.EnPassant)
	case pieceType == piece.Pawn && util.Abs(to-from) == 16:
		return move.New(from, to, move.DoublePawnPush)
	case p.Mailbox[to] != piece.NoPiece:
		return move.New(from, to, move.Capture)
	default:
		return move.New(from, to, move.Normal)
	}
}

// NewMoveFromUCI parses a UCI long algebraic move string (e.g. "e2e4",
// "e7e8q") against the position's legal moves, so that its flag is
// always filled in correctly. It reports false if no legal move matches.
func (p *Position) NewMoveFromUCI(s string) (move.Move, bool) {
	from := square.New(s[:2])
	to := square.New(s[2:4])

	var promo piece.Type = piece.NoType
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = piece.Queen
		case 'r':
			promo = piece.Rook
		case 'b':
			promo = piece.Bishop
		case 'n':
			promo = piece.Knight
		}
	}

	for _, m := range p.GenerateMoves(false) {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() != (promo != piece.NoType) {
			continue
		}
		if m.IsPromotion() && m.Promotion() != promo {
			continue
		}
		return m, true
	}

	return move.Null, false
}
