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

// Package board implements a complete chess position: its bitboard and
// mailbox representations, FEN parsing/emission, legal move generation,
// and reversible make/unmake of moves.
package board

import (
	"fmt"

	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// MaxPlys bounds the length of a single game's move history.
const MaxPlys = 1024

// Mailbox is an 8x8 piece-centric view of a Position, indexed directly
// by square.Square; it is kept in sync with the bitboards.
type Mailbox [square.N]piece.Piece

// Position represents the full state of a chess position: piece
// placement, side to move, castling rights, en passant target, the
// 50-move clock, and a Zobrist hash kept up to date incrementally.
type Position struct {
	Hash     zobrist.Key
	Mailbox  Mailbox
	PieceBBs [piece.TypeN]bitboard.Board
	ColorBBs [piece.ColorN]bitboard.Board

	Kings [piece.ColorN]square.Square

	SideToMove      piece.Color
	EnPassantTarget square.Square
	CastlingRights  castling.Rights

	// CheckN is the number of pieces currently checking SideToMove's
	// king (0, 1, or 2). CheckMask is the set of squares a friendly
	// piece may move to in order to resolve the check(s): the checker
	// itself, and, for a sliding checker, the squares between it and
	// the king. It is Universe when the king isn't in check.
	CheckN    int
	CheckMask bitboard.Board

	// PinnedHV/PinnedD hold, respectively, the orthogonal and diagonal
	// pin rays of SideToMove's pieces: a piece on one of these rays may
	// only move along the ray without exposing its king.
	PinnedHV bitboard.Board
	PinnedD  bitboard.Board

	Ply       int
	FullMoves int
	DrawClock int

	History [MaxPlys]Undo
}

// Undo holds the irreversible state needed to unmake a move.
type Undo struct {
	Move            move.Move
	CastlingRights  castling.Rights
	CapturedPiece   piece.Piece
	EnPassantTarget square.Square
	DrawClock       int
	Hash            zobrist.Key
}

// String renders the position as an ASCII board, its FEN, and its hash.
func (p Position) String() string {
	return fmt.Sprintf("%s\nFen: %s\nKey: %016X\n", p.Mailbox, p.FEN(), uint64(p.Hash))
}

// String renders the Mailbox as an 8x8 grid, rank 8 first.
func (b Mailbox) String() string {
	s := "+---+---+---+---+---+---+---+---+\n"

	for rank := square.Rank8; ; rank-- {
		s += "| "
		for file := square.FileA; file <= square.FileH; file++ {
			s += b[square.From(file, rank)].String() + " | "
		}
		s += fmt.Sprintf("%d\n", rank+1)
		s += "+---+---+---+---+---+---+---+---+\n"

		if rank == square.Rank1 {
			break
		}
	}

	s += "  a   b   c   d   e   f   g   h\n"
	return s
}

// Occupied returns the union of both color occupancy bitboards.
func (p *Position) Occupied() bitboard.Board {
	return p.ColorBBs[piece.White] | p.ColorBBs[piece.Black]
}

// ClearSquare removes the piece on s from every tracked board, updating
// the Zobrist hash. s must currently be occupied.
func (p *Position) ClearSquare(s square.Square) {
	pc := p.Mailbox[s]

	p.ColorBBs[pc.Color()].Unset(s)
	p.PieceBBs[pc.Type()].Unset(s)
	p.Mailbox[s] = piece.NoPiece
	p.Hash ^= zobrist.PieceSquare[pc][s]
}

// FillSquare places pc on s, updating every tracked board and the
// Zobrist hash. s must currently be empty.
func (p *Position) FillSquare(s square.Square, pc piece.Piece) {
	c := pc.Color()
	t := pc.Type()

	p.ColorBBs[c].Set(s)
	p.PieceBBs[t].Set(s)
	p.Mailbox[s] = pc
	p.Hash ^= zobrist.PieceSquare[pc][s]

	if t == piece.King {
		p.Kings[c] = s
	}
}

// Pawns, Knights, Bishops, Rooks, Queens, and King return the bitboard
// of the given color's pieces of that type.
func (p *Position) Pawns(c piece.Color) bitboard.Board   { return p.PieceBBs[piece.Pawn] & p.ColorBBs[c] }
func (p *Position) Knights(c piece.Color) bitboard.Board { return p.PieceBBs[piece.Knight] & p.ColorBBs[c] }
func (p *Position) Bishops(c piece.Color) bitboard.Board { return p.PieceBBs[piece.Bishop] & p.ColorBBs[c] }
func (p *Position) Rooks(c piece.Color) bitboard.Board   { return p.PieceBBs[piece.Rook] & p.ColorBBs[c] }
func (p *Position) Queens(c piece.Color) bitboard.Board  { return p.PieceBBs[piece.Queen] & p.ColorBBs[c] }
func (p *Position) KingBB(c piece.Color) bitboard.Board  { return p.PieceBBs[piece.King] & p.ColorBBs[c] }

// IsInCheck reports whether c's king is currently attacked.
func (p *Position) IsInCheck(c piece.Color) bool {
	return p.IsAttacked(p.Kings[c], c.Other())
}

// IsDraw reports whether the position is a draw by the 50-move rule or
// by a repetition. Any repetition (not just threefold) is treated as a
// draw, since a recurring position is never worth continuing towards.
func (p *Position) IsDraw() bool {
	return p.DrawClock >= 100 || p.IsRepetition()
}

// IsRepetition reports whether the current position has occurred
// before since the last irreversible move (pawn push or capture),
// which is as far back as a repetition could possibly reach.
func (p *Position) IsRepetition() bool {
	depth := p.Ply - p.DrawClock
	if depth < 0 {
		depth = 0
	}

	for i := p.Ply - 2; i >= depth; i -= 2 {
		if p.History[i].Hash == p.Hash {
			return true
		}
	}

	return false
}

// IsAttacked reports whether s is attacked by any of them's pieces.
func (p *Position) IsAttacked(s square.Square, them piece.Color) bool {
	occ := p.Occupied()

	if attacks.PawnCapt[them.Other()][s]&p.Pawns(them) != bitboard.Empty {
		return true
	}

	if attacks.Knight[s]&p.Knights(them) != bitboard.Empty {
		return true
	}

	if attacks.King[s]&p.KingBB(them) != bitboard.Empty {
		return true
	}

	queens := p.Queens(them)

	if attacks.Bishop(s, occ)&(p.Bishops(them)|queens) != bitboard.Empty {
		return true
	}

	return attacks.Rook(s, occ)&(p.Rooks(them)|queens) != bitboard.Empty
}
