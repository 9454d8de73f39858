// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

// Package engine wires together the board, search, and UCI layers into
// a running engine, and declares the UCI commands and options it
// supports.
package engine

import (
	"strconv"

	"github.com/corvidchess/corvid/internal/diag"
	"github.com/corvidchess/corvid/internal/engine/cmd"
	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/internal/engine/options"
	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/config"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/uci"
	"github.com/corvidchess/corvid/pkg/uci/option"
)

// NewClient builds a ready-to-run UCI client wired to a fresh search
// Context over the starting position, with every supported command and
// option registered.
func NewClient() uci.Client {
	client := uci.NewClient()

	startpos, err := board.NewPosition(board.StartFEN)
	if err != nil {
		panic(err)
	}

	engine := &context.Engine{
		Client: client,
		Search: search.NewContext(startpos, eval.PeSTO),
	}

	engine.OptionSchema = option.NewSchema()
	engine.OptionSchema.AddOption("Hash", options.NewHash(engine))
	engine.OptionSchema.AddOption("Ponder", options.NewPonder(engine))
	engine.OptionSchema.AddOption("Threads", options.NewThreads(engine))
	if err := engine.OptionSchema.SetDefaults(); err != nil {
		panic(err)
	}

	applyConfig(engine)

	client.AddCommand(cmd.NewD(engine))
	client.AddCommand(cmd.NewUci(engine))
	client.AddCommand(cmd.NewUciNewGame(engine))
	client.AddCommand(cmd.NewPosition(engine))
	client.AddCommand(cmd.NewSetOption(engine))
	client.AddCommand(cmd.NewGo(engine))
	client.AddCommand(cmd.NewStop(engine))
	client.AddCommand(cmd.NewPonderHit(engine))

	return client
}

// applyConfig loads corvid.toml, if present, and feeds any values it
// sets over the option schema as if "setoption" had been received,
// so a non-zero Hash/Threads or a Ponder of true overrides the
// built-in defaults before the GUI ever sends a command.
func applyConfig(engine *context.Engine) {
	cfg, err := config.Load()
	if err != nil {
		diag.Logger().Warningf("config: %v", err)
		return
	}

	if cfg.Hash != 0 {
		_ = engine.OptionSchema.SetOption("Hash", []string{strconv.Itoa(cfg.Hash)})
	}
	if cfg.Threads != 0 {
		_ = engine.OptionSchema.SetOption("Threads", []string{strconv.Itoa(cfg.Threads)})
	}
	if cfg.Ponder {
		_ = engine.OptionSchema.SetOption("Ponder", []string{"true"})
	}
}
