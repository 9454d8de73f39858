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

// Package move declares the packed representation of a chess move.
package move

import (
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Move represents a chess move, packed into 16 bits.
//
// Format: MSB -> LSB
// [15..12 flag][11..6 to][5..0 from]
type Move uint16

// Null represents a "do nothing" move, used for pruning and errors.
const Null Move = 0

const (
	fromWidth = 6
	toWidth   = 6

	fromOffset = 0
	toOffset   = fromOffset + fromWidth
	flagOffset = toOffset + toWidth

	fromMask = (1 << fromWidth) - 1
	toMask   = (1 << toWidth) - 1
	flagMask = 0xf
)

// Flag represents the 4-bit tactical annotation of a Move.
type Flag uint16

// the sixteen move flags, encoding capture and promotion information
// alongside the move's tactical classification.
const (
	Normal             Flag = 0b0000
	DoublePawnPush     Flag = 0b0001
	Castling           Flag = 0b0010
	Capture            Flag = 0b0100
	EnPassant          Flag = 0b0101
	PromoKnight        Flag = 0b1000
	PromoBishop        Flag = 0b1001
	PromoRook          Flag = 0b1010
	PromoQueen         Flag = 0b1011
	CapturePromoKnight Flag = 0b1100
	CapturePromoBishop Flag = 0b1101
	CapturePromoRook   Flag = 0b1110
	CapturePromoQueen  Flag = 0b1111
)

// bit 2 of the flag (0b0100) marks captures, bit 3 (0b1000) promotions.
const (
	captureBit   = 0b0100
	promotionBit = 0b1000
)

// promoType maps a promotion flag to the piece type it promotes to.
var promoType = [16]piece.Type{
	PromoKnight:        piece.Knight,
	PromoBishop:        piece.Bishop,
	PromoRook:          piece.Rook,
	PromoQueen:         piece.Queen,
	CapturePromoKnight: piece.Knight,
	CapturePromoBishop: piece.Bishop,
	CapturePromoRook:   piece.Rook,
	CapturePromoQueen:  piece.Queen,
}

// promoFlag maps a promotion piece type to its quiet and capturing flag.
var promoFlag = [piece.TypeN]struct{ quiet, capture Flag }{
	piece.Knight: {PromoKnight, CapturePromoKnight},
	piece.Bishop: {PromoBishop, CapturePromoBishop},
	piece.Rook:   {PromoRook, CapturePromoRook},
	piece.Queen:  {PromoQueen, CapturePromoQueen},
}

// New creates a new Move value from the given source, target, and flag.
func New(from, to square.Square, flag Flag) Move {
	return Move(from)<<fromOffset | Move(to)<<toOffset | Move(flag)<<flagOffset
}

// NewPromotion creates a promotion Move to the given piece type, marked
// as a capture if isCapture is true.
func NewPromotion(from, to square.Square, promo piece.Type, isCapture bool) Move {
	flags := promoFlag[promo]
	if isCapture {
		return New(from, to, flags.capture)
	}
	return New(from, to, flags.quiet)
}

// From returns the source square of the move.
func (m Move) From() square.Square {
	return square.Square((m >> fromOffset) & fromMask)
}

// To returns the target square of the move.
func (m Move) To() square.Square {
	return square.Square((m >> toOffset) & toMask)
}

// Flag returns the tactical flag of the move.
func (m Move) Flag() Flag {
	return Flag((m >> flagOffset) & flagMask)
}

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool {
	return Flag(m>>flagOffset)&captureBit != 0
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return Flag(m>>flagOffset)&promotionBit != 0
}

// Promotion returns the piece type the move promotes to. It panics if
// the move is not a promotion.
func (m Move) Promotion() piece.Type {
	if !m.IsPromotion() {
		panic("move: Promotion called on a non-promoting move")
	}
	return promoType[m.Flag()]
}

// IsCastling reports whether the move is a castling move.
func (m Move) IsCastling() bool {
	return m.Flag() == Castling
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == EnPassant
}

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m.Flag() == DoublePawnPush
}

// IsQuiet reports whether the move is neither a capture nor a promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// String converts a move to its long algebraic notation, e.g. "e2e4",
// "e1g1" (castling), "d7d8q" (promotion), "0000" (null).
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += m.Promotion().String()
	}

	return s
}
