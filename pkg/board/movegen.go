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
	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/castling"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// genState holds the per-call utility bitboards used by GenerateMoves.
// It is kept separate from Position since none of it outlives a single
// move generation call.
type genState struct {
	*Position

	Us, Them piece.Color

	// Down adds to a square to give the square "below" it, i.e. towards
	// Us's own back rank.
	Down square.Square

	PromotionRankBB  bitboard.Board
	EnPassantRankBB  bitboard.Board
	DoublePushRankBB bitboard.Board

	CapturesOnly bool

	Friends, Enemies, Occupied bitboard.Board

	// Target is the set of squares a non-king piece may move to;
	// KingTarget additionally excludes squares seen by the enemy.
	Target, KingTarget bitboard.Board

	SeenByEnemy bitboard.Board
}

// GenerateMoves returns every fully legal move available to the side to
// move. capturesOnly restricts generation to captures, promotions, and
// en passant, as used by quiescence search.
func (p *Position) GenerateMoves(capturesOnly bool) []move.Move {
	var s genState
	s.Position = p
	s.init(capturesOnly)

	// 31 is the average number of legal moves in a position.
	// https://chess.stackexchange.com/a/24325/33336
	moves := make([]move.Move, 0, 31)

	s.appendKingMoves(&moves)

	if s.CheckN >= 2 {
		// only king moves are legal in double check
		return moves
	}

	s.appendKnightMoves(&moves)
	s.appendBishopMoves(&moves)
	s.appendRookMoves(&moves)
	s.appendQueenMoves(&moves)
	s.appendPawnMoves(&moves)

	return moves
}

func (s *genState) init(capturesOnly bool) {
	s.CapturesOnly = capturesOnly

	s.Us = s.SideToMove
	s.Them = s.Us.Other()

	s.Friends = s.ColorBBs[s.Us]
	s.Enemies = s.ColorBBs[s.Them]
	s.Occupied = s.Friends | s.Enemies

	if s.Us == piece.White {
		s.Down = -8
		s.PromotionRankBB = bitboard.Rank8
		s.EnPassantRankBB = bitboard.Rank5
		s.DoublePushRankBB = bitboard.Rank3
	} else {
		s.Down = 8
		s.PromotionRankBB = bitboard.Rank1
		s.EnPassantRankBB = bitboard.Rank4
		s.DoublePushRankBB = bitboard.Rank6
	}

	s.calculateCheckmask()
	s.calculatePinmask()

	s.SeenByEnemy = s.seenSquares(s.Them)

	if capturesOnly {
		s.Target = s.Enemies & s.CheckMask
		s.KingTarget = s.Enemies &^ s.SeenByEnemy
	} else {
		s.Target = ^s.Friends & s.CheckMask
		s.KingTarget = ^s.Friends &^ s.SeenByEnemy
	}
}

// calculateCheckmask computes CheckN and CheckMask for the side to move.
// CheckMask is the set of squares a friendly piece may move to in order
// to resolve every current check: the checker(s) themselves, plus, for
// a sliding checker, the squares between it and the king. It is the
// Universe when the king isn't in check; under double check it is not
// used, since only king moves are generated then.
func (s *genState) calculateCheckmask() {
	s.CheckN = 0
	s.CheckMask = bitboard.Empty

	kingSq := s.Kings[s.Us]

	pawns := s.Pawns(s.Them) & attacks.PawnCapt[s.Us][kingSq]
	knights := s.Knights(s.Them) & attacks.Knight[kingSq]
	bishops := (s.Bishops(s.Them) | s.Queens(s.Them)) & attacks.Bishop(kingSq, s.Occupied)
	rooks := (s.Rooks(s.Them) | s.Queens(s.Them)) & attacks.Rook(kingSq, s.Occupied)

	// a pawn and a knight can't check the king simultaneously since
	// neither is a sliding piece capable of a discovered attack
	switch {
	case pawns != bitboard.Empty:
		s.CheckMask |= pawns
		s.CheckN++
	case knights != bitboard.Empty:
		s.CheckMask |= knights
		s.CheckN++
	}

	if bishops != bitboard.Empty {
		if bishops.Count() > 1 {
			// double check by two bishops/queens
			s.CheckN += 2
		} else {
			bishopSq := bishops.FirstOne()
			s.CheckMask |= attacks.Between[kingSq][bishopSq] | bitboard.Squares[bishopSq]
			s.CheckN++
		}
	}

	if s.CheckN < 2 && rooks != bitboard.Empty {
		if s.CheckN == 0 && rooks.Count() > 1 {
			// double check by two rooks/queens, mask stays empty
			s.CheckN++
		} else {
			rookSq := rooks.FirstOne()
			s.CheckMask |= attacks.Between[kingSq][rookSq] | bitboard.Squares[rookSq]
			s.CheckN++
		}
	}

	if s.CheckN == 0 {
		s.CheckMask = bitboard.Universe
	}
}

// calculatePinmask computes the diagonal and orthogonal pin rays of the
// side to move's pieces: a piece on one of these rays may only move
// along it without exposing its own king to check.
func (s *genState) calculatePinmask() {
	kingSq := s.Kings[s.Us]

	s.PinnedD = bitboard.Empty
	s.PinnedHV = bitboard.Empty

	// treat the king as a rook/bishop and see which enemy sliders it
	// would attack if friendly pieces were transparent; a ray with
	// exactly one friendly piece on it is a pin
	for rooks := (s.Rooks(s.Them) | s.Queens(s.Them)) & attacks.Rook(kingSq, s.Enemies); rooks != bitboard.Empty; {
		rook := rooks.Pop()
		ray := attacks.Between[kingSq][rook] | bitboard.Squares[rook]
		if (ray & s.Friends).Count() == 1 {
			s.PinnedHV |= ray
		}
	}

	for bishops := (s.Bishops(s.Them) | s.Queens(s.Them)) & attacks.Bishop(kingSq, s.Enemies); bishops != bitboard.Empty; {
		bishop := bishops.Pop()
		ray := attacks.Between[kingSq][bishop] | bitboard.Squares[bishop]
		if (ray & s.Friends).Count() == 1 {
			s.PinnedD |= ray
		}
	}
}

// seenSquares returns every square attacked by by's pieces. The king of
// the other side is never considered a blocker for a slider's ray, since a king in check
// must move off the ray and would otherwise expose the blocked squares.
func (s *genState) seenSquares(by piece.Color) bitboard.Board {
	pawns := s.Pawns(by)
	knights := s.Knights(by)
	bishops := s.Bishops(by)
	rooks := s.Rooks(by)
	queens := s.Queens(by)

	blockers := s.Occupied &^ s.KingBB(by.Other())

	seen := pawnAttacksLeft(pawns, by) | pawnAttacksRight(pawns, by)

	for knights != bitboard.Empty {
		seen |= attacks.Knight[knights.Pop()]
	}
	for bishops != bitboard.Empty {
		seen |= attacks.Bishop(bishops.Pop(), blockers)
	}
	for rooks != bitboard.Empty {
		seen |= attacks.Rook(rooks.Pop(), blockers)
	}
	for queens != bitboard.Empty {
		seen |= attacks.Queen(queens.Pop(), blockers)
	}

	seen |= attacks.King[s.Kings[by]]

	return seen
}

func (s *genState) appendKingMoves(moves *[]move.Move) {
	kingSq := s.Kings[s.Us]
	targets := attacks.King[kingSq] & s.KingTarget

	s.serializeMoves(moves, kingSq, targets)

	if s.CheckN == 0 && !s.CapturesOnly {
		s.appendCastlingMoves(moves)
	}
}

func (s *genState) appendKnightMoves(moves *[]move.Move) {
	// a pinned knight can never move without exposing its king
	for knights := s.Knights(s.Us) &^ (s.PinnedD | s.PinnedHV); knights != bitboard.Empty; {
		from := knights.Pop()
		s.serializeMoves(moves, from, attacks.Knight[from]&s.Target)
	}
}

func (s *genState) appendBishopMoves(moves *[]move.Move) {
	s.appendDiagonalSliderMoves(moves, s.Bishops(s.Us))
}

func (s *genState) appendRookMoves(moves *[]move.Move) {
	s.appendOrthogonalSliderMoves(moves, s.Rooks(s.Us))
}

func (s *genState) appendQueenMoves(moves *[]move.Move) {
	queens := s.Queens(s.Us)
	s.appendDiagonalSliderMoves(moves, queens)
	s.appendOrthogonalSliderMoves(moves, queens)
}

func (s *genState) appendDiagonalSliderMoves(moves *[]move.Move, sliders bitboard.Board) {
	sliders &^= s.PinnedHV

	pinned := sliders & s.PinnedD
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		s.serializeMoves(moves, from, attacks.Bishop(from, s.Occupied)&s.Target&s.PinnedD)
	}

	unpinned := sliders &^ s.PinnedD
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		s.serializeMoves(moves, from, attacks.Bishop(from, s.Occupied)&s.Target)
	}
}

func (s *genState) appendOrthogonalSliderMoves(moves *[]move.Move, sliders bitboard.Board) {
	sliders &^= s.PinnedD

	pinned := sliders & s.PinnedHV
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		s.serializeMoves(moves, from, attacks.Rook(from, s.Occupied)&s.Target&s.PinnedHV)
	}

	unpinned := sliders &^ s.PinnedHV
	for unpinned != bitboard.Empty {
		from := unpinned.Pop()
		s.serializeMoves(moves, from, attacks.Rook(from, s.Occupied)&s.Target)
	}
}

// pawnAttacksLeft/Right shift every pawn in bb towards its left/right
// diagonal capture square, from the mover's point of view.
func pawnAttacksLeft(bb bitboard.Board, c piece.Color) bitboard.Board {
	if c == piece.White {
		return bb.Up(c).West()
	}
	return bb.Up(c).East()
}

func pawnAttacksRight(bb bitboard.Board, c piece.Color) bitboard.Board {
	if c == piece.White {
		return bb.Up(c).East()
	}
	return bb.Up(c).West()
}

func (s *genState) appendPawnMoves(moves *[]move.Move) {
	pawns := s.Pawns(s.Us)

	pushTarget := s.CheckMask &^ s.Occupied
	captureTarget := s.Enemies & s.CheckMask

	pawnsThatAttack := pawns &^ s.PinnedHV
	unpinnedAttackers := pawnsThatAttack &^ s.PinnedD
	pinnedAttackers := pawnsThatAttack & s.PinnedD

	attacksL := pawnAttacksLeft(unpinnedAttackers, s.Us) & captureTarget
	attacksL |= pawnAttacksLeft(pinnedAttackers, s.Us) & captureTarget & s.PinnedD

	attacksR := pawnAttacksRight(unpinnedAttackers, s.Us) & captureTarget
	attacksR |= pawnAttacksRight(pinnedAttackers, s.Us) & captureTarget & s.PinnedD

	// delta to add to a capture's target square to recover its source:
	// the inverse of the (file, rank) step the capture itself took.
	var leftDelta, rightDelta square.Square
	if s.Us == piece.White {
		leftDelta = s.Down + 1
		rightDelta = s.Down - 1
	} else {
		leftDelta = s.Down - 1
		rightDelta = s.Down + 1
	}

	s.appendPawnCaptures(moves, attacksL&^s.PromotionRankBB, leftDelta)
	s.appendPawnCaptures(moves, attacksR&^s.PromotionRankBB, rightDelta)
	s.appendPawnPromotionCaptures(moves, attacksL&s.PromotionRankBB, leftDelta)
	s.appendPawnPromotionCaptures(moves, attacksR&s.PromotionRankBB, rightDelta)

	pawnsThatPush := pawns &^ s.PinnedD
	unpinnedPushers := pawnsThatPush &^ s.PinnedHV
	pinnedPushers := pawnsThatPush & s.PinnedHV

	singleUnpinned := unpinnedPushers.Up(s.Us)
	singlePinned := pinnedPushers.Up(s.Us) & s.PinnedHV

	single := (singleUnpinned | singlePinned) &^ s.Occupied
	double := (single & s.DoublePushRankBB).Up(s.Us) & pushTarget
	single &= pushTarget

	if s.CapturesOnly {
		// only pushes that promote are generated in captures-only mode
		single &= s.PromotionRankBB
		double = bitboard.Empty
	}

	quietSingle := single &^ s.PromotionRankBB
	for quietSingle != bitboard.Empty {
		to := quietSingle.Pop()
		*moves = append(*moves, move.New(to+s.Down, to, move.Normal))
	}

	for double != bitboard.Empty {
		to := double.Pop()
		*moves = append(*moves, move.New(to+2*s.Down, to, move.DoublePawnPush))
	}

	promoSingle := single & s.PromotionRankBB
	for promoSingle != bitboard.Empty {
		to := promoSingle.Pop()
		s.appendPromotions(moves, to+s.Down, to, false)
	}

	s.appendEnPassant(moves, pawnsThatAttack)
}

func (s *genState) appendPawnCaptures(moves *[]move.Move, targets bitboard.Board, delta square.Square) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		*moves = append(*moves, move.New(to+delta, to, move.Capture))
	}
}

func (s *genState) appendPawnPromotionCaptures(moves *[]move.Move, targets bitboard.Board, delta square.Square) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		s.appendPromotions(moves, to+delta, to, true)
	}
}

func (s *genState) appendPromotions(moves *[]move.Move, from, to square.Square, isCapture bool) {
	for _, promo := range piece.Promotions {
		*moves = append(*moves, move.NewPromotion(from, to, promo, isCapture))
	}
}

// appendEnPassant handles the single available en passant capture,
// including the rare case where capturing would expose the king to a
// horizontal rook/queen pin along the en passant rank.
func (s *genState) appendEnPassant(moves *[]move.Move, pawnsThatAttack bitboard.Board) {
	if s.EnPassantTarget == square.None {
		return
	}

	epSquare := s.EnPassantTarget
	epPawn := epSquare + s.Down

	epMask := bitboard.Squares[epSquare] | bitboard.Squares[epPawn]
	if s.CheckMask&epMask == bitboard.Empty {
		// en passant neither captures the checker nor blocks the check
		return
	}

	kingSq := s.Kings[s.Us]
	kingOnEPRank := bitboard.Squares[kingSq] & s.EnPassantRankBB
	enemyRooksQueens := (s.Rooks(s.Them) | s.Queens(s.Them)) & s.EnPassantRankBB
	possiblePin := kingOnEPRank != bitboard.Empty && enemyRooksQueens != bitboard.Empty

	for candidates := attacks.PawnCapt[s.Them][epSquare] & pawnsThatAttack; candidates != bitboard.Empty; {
		from := candidates.Pop()

		// pinned diagonally along a ray that doesn't include the target
		if s.PinnedD.IsSet(from) && !s.PinnedD.IsSet(epSquare) {
			continue
		}

		removed := bitboard.Squares[from] | bitboard.Squares[epPawn]
		if possiblePin && attacks.Rook(kingSq, s.Occupied&^removed)&enemyRooksQueens != bitboard.Empty {
			break
		}

		*moves = append(*moves, move.New(from, epSquare, move.EnPassant))
	}
}

func (s *genState) appendCastlingMoves(moves *[]move.Move) {
	switch s.Us {
	case piece.White:
		if s.CastlingRights&castling.WhiteKingside != 0 &&
			(s.Occupied|s.SeenByEnemy)&bitboard.F1G1 == bitboard.Empty {
			*moves = append(*moves, move.New(square.E1, square.G1, move.Castling))
		}
		if s.CastlingRights&castling.WhiteQueenside != 0 &&
			s.Occupied&bitboard.B1C1D1 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C1D1 == bitboard.Empty {
			*moves = append(*moves, move.New(square.E1, square.C1, move.Castling))
		}
	case piece.Black:
		if s.CastlingRights&castling.BlackKingside != 0 &&
			(s.Occupied|s.SeenByEnemy)&bitboard.F8G8 == bitboard.Empty {
			*moves = append(*moves, move.New(square.E8, square.G8, move.Castling))
		}
		if s.CastlingRights&castling.BlackQueenside != 0 &&
			s.Occupied&bitboard.B8C8D8 == bitboard.Empty &&
			s.SeenByEnemy&bitboard.C8D8 == bitboard.Empty {
			*moves = append(*moves, move.New(square.E8, square.C8, move.Castling))
		}
	}
}

// serializeMoves expands a to-square bitboard into moves from a single
// source square, tagging each as a capture if the destination holds an
// enemy piece.
func (s *genState) serializeMoves(moves *[]move.Move, from square.Square, targets bitboard.Board) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		flag := move.Normal
		if s.Enemies.IsSet(to) {
			flag = move.Capture
		}
		*moves = append(*moves, move.New(from, to, flag))
	}
}
