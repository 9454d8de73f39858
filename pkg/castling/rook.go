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

package castling

import (
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// RookInfo describes the rook move that accompanies a king's castling
// move to a particular target square.
type RookInfo struct {
	From, To square.Square
	RookType piece.Piece
}

// Rooks is indexed by the king's target square during a castling move,
// and gives the accompanying rook move. Squares that are never a king's
// castling target hold the zero RookInfo.
var Rooks = [square.N]RookInfo{
	square.G1: {From: square.H1, To: square.F1, RookType: piece.WhiteRook},
	square.C1: {From: square.A1, To: square.D1, RookType: piece.WhiteRook},
	square.G8: {From: square.H8, To: square.F8, RookType: piece.BlackRook},
	square.C8: {From: square.A8, To: square.D8, RookType: piece.BlackRook},
}

// RightUpdates is indexed by a square touched by a move (its source or
// target) and gives the castling rights that move revokes. Moving a rook
// from, or capturing a piece on, its home square revokes that side's
// rights on that wing; moving the king revokes both of its side's
// rights. Every other square is the zero Rights and revokes nothing.
var RightUpdates = [square.N]Rights{
	square.A1: WhiteQueenside, square.E1: White, square.H1: WhiteKingside,
	square.A8: BlackQueenside, square.E8: Black, square.H8: BlackKingside,
}
