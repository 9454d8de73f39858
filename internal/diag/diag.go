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

// Package diag sets up structured logging for the engine. UCI requires
// stdout to carry only protocol traffic, so diagnostic output goes to
// stderr instead, through a package-level *logging.Logger that other
// packages pull with Logger.
package diag

import (
	"os"

	"github.com/op/go-logging"
)

// log is the shared logger instance, configured by Init.
var log = logging.MustGetLogger("corvid")

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:.4s}%{color:reset} %{message}`,
)

// Init wires the package logger to a leveled, formatted stderr backend.
// It should be called once, before any other package logs.
func Init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// Logger returns the engine's shared logger, for use by packages that
// want to report warnings or errors without depending on op/go-logging
// directly.
func Logger() *logging.Logger {
	return log
}
