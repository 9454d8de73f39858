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

package attacks

import (
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/square"
)

// Between[a][b] holds the squares strictly between a and b if they lie
// on a shared rank, file, or diagonal; otherwise it is empty.
var Between [square.N][square.N]bitboard.Board

// Line[a][b] holds every square on the rank, file, or diagonal shared by
// a and b, including a and b themselves; otherwise it is empty.
var Line [square.N][square.N]bitboard.Board

// the eight directions a queen may slide in, as (file, rank) deltas.
var queenDirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func init() {
	for a := square.A1; a <= square.H8; a++ {
		for _, d := range queenDirs {
			var between bitboard.Board
			var full bitboard.Board
			full.Set(a)

			f := int(a.File()) + d[0]
			r := int(a.Rank()) + d[1]

			for f >= int(square.FileA) && f <= int(square.FileH) && r >= int(square.Rank1) && r <= int(square.Rank8) {
				b := square.From(square.File(f), square.Rank(r))
				full.Set(b)

				Between[a][b] = between
				Line[a][b] = full | lineRemainder(a, b, d) | lineRemainder(a, b, [2]int{-d[0], -d[1]})

				between.Set(b)

				f += d[0]
				r += d[1]
			}
		}
	}
}

// lineRemainder extends the line from a through b backwards past a, so
// that Line[a][b] contains the full line rather than just the ray from
// a towards b.
func lineRemainder(a, b square.Square, d [2]int) bitboard.Board {
	var rem bitboard.Board

	f := int(a.File()) - d[0]
	r := int(a.Rank()) - d[1]

	for f >= int(square.FileA) && f <= int(square.FileH) && r >= int(square.Rank1) && r <= int(square.Rank8) {
		rem.Set(square.From(square.File(f), square.Rank(r)))
		f -= d[0]
		r -= d[1]
	}

	return rem
}
