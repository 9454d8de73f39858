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
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// materialValue holds the centipawn value of each piece type, excluding
// the king, which has no material value.
var materialValue = [piece.TypeN]Eval{
	piece.Pawn:   100,
	piece.Knight: 320,
	piece.Bishop: 330,
	piece.Rook:   500,
	piece.Queen:  900,
}

// Material evaluates a position by the raw material balance of the side
// to move, ignoring piece placement entirely.
func Material(p *board.Position) Eval {
	var score Eval
	for s := square.A1; s < square.N; s++ {
		pc := p.Mailbox[s]
		if pc == piece.NoPiece {
			continue
		}

		v := materialValue[pc.Type()]
		if pc.Color() == p.SideToMove {
			score += v
		} else {
			score -= v
		}
	}
	return score
}
