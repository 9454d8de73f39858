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

// Package piece implements representations of chess colors, piece
// types, and colored pieces, and related utility functions.
//
// The King, Queen, Rook, Knight, Bishop, and Pawn are represented by the
// K, Q, R, N, B, and P strings respectively, with uppercase for white
// and lowercase for black. The strings w and b represent the White and
// Black colors respectively.
package piece

// Color represents the color of a Piece.
type Color uint8

// the two piece colors.
const (
	White Color = iota
	Black

	ColorN = 2
)

// NewColor creates an instance of Color from the given id ("w" or "b").
func NewColor(id string) Color {
	switch id {
	case "w":
		return White
	case "b":
		return Black
	default:
		panic("new color: invalid color id")
	}
}

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ Black
}

// String converts a Color to it's string representation.
func (c Color) String() string {
	if c == Black {
		return "b"
	}
	return "w"
}

// Type represents the type/kind of a chess piece, independent of color.
type Type uint8

// constants representing chess piece types.
const (
	NoType Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	TypeN = 7
)

func (t Type) String() string {
	return string(" pnbrqk"[t])
}

// Promotions lists the piece types a pawn may promote to, in the order
// the spec's move-generation table prefers them (queen first).
var Promotions = [4]Type{Queen, Rook, Bishop, Knight}

// Piece represents a colored chess piece.
// Format: MSB [color 1 bit][type 3 bits] LSB
type Piece uint8

// NoPiece represents the absence of a piece on a square.
const NoPiece Piece = 0

// constants representing every colored piece.
const (
	WhitePawn   Piece = Piece(White)<<3 | Piece(Pawn)
	WhiteKnight Piece = Piece(White)<<3 | Piece(Knight)
	WhiteBishop Piece = Piece(White)<<3 | Piece(Bishop)
	WhiteRook   Piece = Piece(White)<<3 | Piece(Rook)
	WhiteQueen  Piece = Piece(White)<<3 | Piece(Queen)
	WhiteKing   Piece = Piece(White)<<3 | Piece(King)

	BlackPawn   Piece = Piece(Black)<<3 | Piece(Pawn)
	BlackKnight Piece = Piece(Black)<<3 | Piece(Knight)
	BlackBishop Piece = Piece(Black)<<3 | Piece(Bishop)
	BlackRook   Piece = Piece(Black)<<3 | Piece(Rook)
	BlackQueen  Piece = Piece(Black)<<3 | Piece(Queen)
	BlackKing   Piece = Piece(Black)<<3 | Piece(King)
)

// N is the number of piece/color slots, including the NoPiece value.
const N = 16

const (
	colorOffset = 3
	typeMask    = (1 << colorOffset) - 1
)

// New creates a new Piece with the given type and color.
func New(t Type, c Color) Piece {
	return Piece(c)<<colorOffset | Piece(t)
}

// NewFromString creates an instance of Piece from the given piece id.
func NewFromString(id string) Piece {
	p, ok := NewFromStringChecked(id)
	if !ok {
		panic("new piece: invalid piece id")
	}
	return p
}

// NewFromStringChecked is the non-panicking form of NewFromString, for
// callers parsing piece ids from untrusted input such as a FEN string.
func NewFromStringChecked(id string) (Piece, bool) {
	switch id {
	case "K":
		return WhiteKing, true
	case "Q":
		return WhiteQueen, true
	case "R":
		return WhiteRook, true
	case "N":
		return WhiteKnight, true
	case "B":
		return WhiteBishop, true
	case "P":
		return WhitePawn, true
	case "k":
		return BlackKing, true
	case "q":
		return BlackQueen, true
	case "r":
		return BlackRook, true
	case "n":
		return BlackKnight, true
	case "b":
		return BlackBishop, true
	case "p":
		return BlackPawn, true
	default:
		return NoPiece, false
	}
}

// String converts a Piece into it's string representation.
func (p Piece) String() string {
	return string(" PNBRQK  pnbrqk"[p])
}

// Type returns the piece type of the given Piece.
func (p Piece) Type() Type {
	return Type(p & typeMask)
}

// Color returns the piece color of the given Piece.
func (p Piece) Color() Color {
	return Color(p >> colorOffset)
}

// Is checks if the type of the given Piece matches the given type.
func (p Piece) Is(target Type) bool {
	return p.Type() == target
}

// IsColor checks if the color of the given Piece matches the given Color.
func (p Piece) IsColor(target Color) bool {
	return p.Color() == target
}
