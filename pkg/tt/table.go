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

// Package tt implements a lock-free transposition table, caching search
// results across positions that transpose into each other so repeated
// work is not redone. Each slot is a single packed atomic word, so
// concurrent probers never observe a torn read as anything worse than a
// key mismatch, which is treated as a miss.
package tt

import (
	"math/bits"
	"sync/atomic"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// bit layout of a packed Entry within its uint64 word:
//
//	[63..42] value (22 bits, signed)
//	[41..40] flag  (2 bits)
//	[39..32] depth (8 bits)
//	[31..16] move  (16 bits)
//	[15..0]  key   (16 bits, low bits of the position's Zobrist hash)
//
// A literal i16 value field (as a naive reading of the spec's entry
// layout suggests) cannot represent this engine's ±100000 mate scores;
// it is widened here to 22 bits, the smallest width that keeps the
// entry inside one 64-bit word while comfortably covering Mate.
const (
	keyBits   = 16
	moveBits  = 16
	depthBits = 8
	flagBits  = 2
	valueBits = 64 - keyBits - moveBits - depthBits - flagBits

	keyShift   = 0
	moveShift  = keyShift + keyBits
	depthShift = moveShift + moveBits
	flagShift  = depthShift + depthBits
	valueShift = flagShift + flagBits

	keyMask  = (1 << keyBits) - 1
	moveMask = (1 << moveBits) - 1
	flagMask = (1 << flagBits) - 1

	valueSignBit = 1 << (valueBits - 1)
	valueMask    = (1 << valueBits) - 1
)

// NewTable creates a new transposition table sized to at most mbs
// megabytes.
func NewTable(mbs int) *Table {
	size := (mbs * 1024 * 1024) / 8
	return &Table{
		table: make([]atomic.Uint64, size),
		size:  uint64(size),
	}
}

// Table is a fixed-size, lock-free hash table of search results,
// indexed by Zobrist key.
type Table struct {
	table []atomic.Uint64
	size  uint64
}

// Clear zeroes every entry in the table, used on the UCI "ucinewgame"
// command to discard results from a previous game.
func (tt *Table) Clear() {
	for i := range tt.table {
		tt.table[i].Store(0)
	}
}

// Resize rebuilds the table to hold at most mbs megabytes, discarding
// its previous contents.
func (tt *Table) Resize(mbs int) {
	size := (mbs * 1024 * 1024) / 8
	*tt = Table{table: make([]atomic.Uint64, size), size: uint64(size)}
}

// Store inserts entry into the table, replacing the existing slot only
// if it is depth-preferred: its depth is at least the incumbent's.
func (tt *Table) Store(entry Entry) {
	slot := &tt.table[tt.indexOf(entry.Hash)]

	if existing := unpack(slot.Load()); existing.Type != NoEntry && existing.Depth > entry.Depth {
		return
	}

	slot.Store(entry.pack())
}

// Probe looks up hash in the table. The returned bool is false if no
// usable entry exists for hash: either the slot is empty or it holds a
// position whose low 16 key bits differ from hash's. A different position
// with the same slot and the same low 16 bits is reported as a hit.
func (tt *Table) Probe(hash zobrist.Key) (Entry, bool) {
	entry := unpack(tt.table[tt.indexOf(hash)].Load())
	entry.Hash = hash
	return entry, entry.Type != NoEntry && entry.key16 == uint16(hash)&keyMask
}

// indexOf maps a hash to a table index using Lemire's fast-range
// multiplicative reduction in place of a division.
// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
func (tt *Table) indexOf(hash zobrist.Key) uint64 {
	index, _ := bits.Mul64(uint64(hash), tt.size)
	return index
}

// Entry is a single transposition table slot, unpacked into its
// logical fields for easy use by search.
type Entry struct {
	Hash  zobrist.Key // full key of the position that stored this entry
	key16 uint16      // low 16 bits of Hash, as stored in the packed word

	Move  move.Move // best/pv move found for this position
	Value Eval      // stored score, in tt mate-distance form
	Type  EntryType // whether Value is exact or a bound
	Depth uint8     // depth the position was searched to
}

func (entry Entry) pack() uint64 {
	value := uint64(entry.Value) & valueMask
	return uint64(uint16(entry.Hash)&keyMask)<<keyShift |
		uint64(entry.Move)<<moveShift |
		uint64(entry.Depth)<<depthShift |
		uint64(entry.Type)<<flagShift |
		value<<valueShift
}

func unpack(word uint64) Entry {
	value := int64((word >> valueShift) & valueMask)
	if value&valueSignBit != 0 {
		value -= 1 << valueBits // sign-extend
	}

	return Entry{
		key16: uint16((word >> keyShift) & keyMask),
		Move:  move.Move((word >> moveShift) & moveMask),
		Depth: uint8((word >> depthShift) & ((1 << depthBits) - 1)),
		Type:  EntryType((word >> flagShift) & flagMask),
		Value: Eval(value),
	}
}

// EntryType classifies the score stored in an Entry.
type EntryType uint8

const (
	NoEntry    EntryType = iota // slot is empty
	ExactEntry                  // Value is the exact score
	LowerBound                  // Value is a fail-high lower bound
	UpperBound                  // Value is a fail-low upper bound
)

// EvalFrom converts a search-time score ("plys to mate from the search
// root") into the form stored in the table ("plys to mate from this
// position"), so the entry stays valid when probed from other roots.
func EvalFrom(score eval.Eval, plys int) Eval {
	switch {
	case score > eval.WinInMaxPly:
		score += eval.Eval(plys)
	case score < eval.LoseInMaxPly:
		score -= eval.Eval(plys)
	}
	return Eval(score)
}

// Eval is a score as stored in the table, using "plys to mate from this
// position" instead of search's "plys to mate from the root".
type Eval eval.Eval

// Eval converts a stored score back to search's "plys to mate from the
// root" form, given the current search ply.
func (e Eval) Eval(plys int) eval.Eval {
	score := eval.Eval(e)
	switch {
	case score > eval.WinInMaxPly:
		score -= eval.Eval(plys)
	case score < eval.LoseInMaxPly:
		score += eval.Eval(plys)
	}
	return score
}
