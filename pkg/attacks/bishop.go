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

// Bishop returns the attack set of a bishop on s given the combined
// board occupancy, via a fancy-magic lookup into SliderAttacks.
func Bishop(s square.Square, occupied bitboard.Board) bitboard.Board {
	magic := BishopMagics[s]
	return SliderAttacks[magic.Index(occupied, 64-bishopBits)]
}
