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

package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// StartFEN is the FEN of the standard chess starting position, split on
// whitespace as NewPosition expects.
var StartFEN = strings.Fields("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

// NewPosition builds a Position from a FEN already split into its six
// whitespace-separated fields. It returns an error if any field is not
// syntactically valid FEN, rather than silently building a malformed
// Position.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
func NewPosition(fen []string) (*Position, error) {
	if len(fen) != 6 {
		return nil, fmt.Errorf("fen: expected 6 fields, got %d", len(fen))
	}

	var p Position
	p.EnPassantTarget = square.None

	switch fen[1] {
	case "w":
		p.SideToMove = piece.White
	case "b":
		p.SideToMove = piece.Black
		p.Hash ^= zobrist.SideToMove
	default:
		return nil, fmt.Errorf("fen: invalid side to move %q", fen[1])
	}

	// FEN ranks are listed from rank 8 down to rank 1, each rank from
	// file A to file H, the opposite of this package's A1=0 numbering.
	ranks := strings.Split(fen[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen: expected 8 ranks in piece placement, got %d", len(ranks))
	}

	for i, rankData := range ranks {
		rank := square.Rank(7 - i)
		file := square.FileA

		for _, id := range rankData {
			if file > square.FileH {
				return nil, fmt.Errorf("fen: rank %q overflows the board", rankData)
			}

			if id >= '1' && id <= '8' {
				file += square.File(id - '0')
				continue
			}

			pc, ok := piece.NewFromStringChecked(string(id))
			if !ok {
				return nil, fmt.Errorf("fen: invalid piece %q", id)
			}

			p.FillSquare(square.From(file, rank), pc)
			file++
		}

		if file != square.FileH+1 {
			return nil, fmt.Errorf("fen: rank %q does not fill all 8 files", rankData)
		}
	}

	rights, err := castling.NewRights(fen[2])
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}
	p.CastlingRights = rights
	p.Hash ^= zobrist.Castling[p.CastlingRights]

	ep, err := square.NewChecked(fen[3])
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}
	// only record the en passant target if a pawn could actually
	// capture there, mirroring the check MakeMove applies to a double
	// pawn push, so a FEN-loaded position and the same position reached
	// by playing the push hash identically
	if ep != square.None && p.Pawns(p.SideToMove)&attacks.PawnCapt[p.SideToMove.Other()][ep] != 0 {
		p.EnPassantTarget = ep
		p.Hash ^= zobrist.EnPassant[p.EnPassantTarget.File()]
	}

	p.DrawClock, err = strconv.Atoi(fen[4])
	if err != nil {
		return nil, fmt.Errorf("fen: invalid halfmove clock %q", fen[4])
	}

	p.FullMoves, err = strconv.Atoi(fen[5])
	if err != nil {
		return nil, fmt.Errorf("fen: invalid fullmove number %q", fen[5])
	}

	return &p, nil
}

// FEN returns the FEN string of the current Position.
func (p *Position) FEN() string {
	return fmt.Sprintf("%s %s %s %s %d %d",
		p.piecePlacement(), p.SideToMove, p.CastlingRights, p.EnPassantTarget, p.DrawClock, p.FullMoves)
}

// piecePlacement returns the piece-placement field of the FEN, rank 8
// down to rank 1, file A to file H within each rank.
func (p *Position) piecePlacement() string {
	var sb strings.Builder

	for rank := square.Rank8; ; rank-- {
		empty := 0
		for file := square.FileA; file <= square.FileH; file++ {
			pc := p.Mailbox[square.From(file, rank)]
			if pc == piece.NoPiece {
				empty++
				continue
			}

			if empty > 0 {
				fmt.Fprint(&sb, empty)
				empty = 0
			}
			sb.WriteString(pc.String())
		}

		if empty > 0 {
			fmt.Fprint(&sb, empty)
		}

		if rank == square.Rank1 {
			break
		}
		sb.WriteByte('/')
	}

	return sb.String()
}
