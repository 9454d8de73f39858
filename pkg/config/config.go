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

// Package config loads engine defaults from a TOML file, so a UCI
// frontend that never sends "setoption" still gets the operator's
// preferred hash size, thread count, and pondering setting.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// FileName is the config file corvid looks for in the current
// directory on startup.
const FileName = "corvid.toml"

// Config holds the engine defaults loadable from FileName. Its fields
// mirror the UCI options of the same name, and zero values mean
// "leave the engine's own default untouched".
type Config struct {
	Hash    int  `toml:"hash"`
	Threads int  `toml:"threads"`
	Ponder  bool `toml:"ponder"`
}

// Load reads FileName from the working directory. A missing file is
// not an error; it just yields a zero-value Config, leaving every
// option at its built-in default.
func Load() (Config, error) {
	var cfg Config

	data, err := os.ReadFile(FileName)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	_, err = toml.Decode(string(data), &cfg)
	return cfg, err
}
