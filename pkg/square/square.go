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

// Package square declares constants representing every square on a
// chessboard, and related utility functions.
//
// Squares are represented using the algebraic notation.
// https://www.chessprogramming.org/Algebraic_Chess_Notation
// The null square is represented using the "-" symbol.
//
// Squares are numbered file-major with file A as 0 and rank 1 as 0, so
// A1 = 0 and H8 = 63. This matches the little-endian rank-file mapping
// pkg/bitboard uses for its 64-bit sets.
package square

import "fmt"

// New creates a new instance of a Square from the given identifier.
func New(id string) Square {
	switch {
	case id == "-":
		return None
	case len(id) != 2:
		panic("new square: invalid square id")
	}

	return From(fileFrom(string(id[0])), rankFrom(string(id[1])))
}

// NewChecked is the non-panicking form of New, for callers parsing a
// square id from untrusted input such as a FEN en passant field.
func NewChecked(id string) (Square, error) {
	if id == "-" {
		return None, nil
	}

	if len(id) != 2 || id[0] < 'a' || id[0] > 'h' || id[1] < '1' || id[1] > '8' {
		return None, fmt.Errorf("invalid square %q", id)
	}

	return From(fileFrom(string(id[0])), rankFrom(string(id[1]))), nil
}

// From creates a new instance of a Square from the given file and rank.
func From(file File, rank Rank) Square {
	return Square(int(rank)<<3 | int(file))
}

// Square represents a square on a chessboard.
type Square int8

// None represents the absence of a square.
const None Square = -1

// N is the number of squares on a chessboard.
const N = 64

// constants representing every square on the board.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63
)

// String converts a square into it's algebraic string representation.
func (s Square) String() string {
	if s == None {
		return "-"
	}

	// <file><rank>
	return s.File().String() + s.Rank().String()
}

// File returns the file of the given square.
func (s Square) File() File {
	return File(s) & 7
}

// Rank returns the rank of the given square.
func (s Square) Rank() Rank {
	return Rank(s) >> 3
}

func (s Square) Diagonal() Diagonal {
	return Diagonal(s.Rank()) - Diagonal(s.File()) + 7
}

func (s Square) AntiDiagonal() AntiDiagonal {
	return AntiDiagonal(s.Rank()) + AntiDiagonal(s.File())
}
