// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package reporter accumulates the non-fatal diagnostics produced while
// walking a compilation: warnings never abort the pipeline the way an
// errs.Error does, so they are collected separately and returned
// alongside a successful result.
package reporter

import "github.com/kralicky/recipec/ast"

// Handler collects warnings in the order they are raised. Unlike the
// teacher's concurrent reporter.Handler, this one assumes single-threaded,
// non-suspending use per spec.md §5 and needs no locking.
type Handler struct {
	warnings []ast.Warning
}

// Warn records a warning against the given token.
func (h *Handler) Warn(token ast.Token, message string) {
	h.warnings = append(h.warnings, ast.Warning{Token: token, Message: message})
}

// Extend appends warnings collected elsewhere (e.g. from a parsed Ast)
// in the order they were produced.
func (h *Handler) Extend(warnings []ast.Warning) {
	h.warnings = append(h.warnings, warnings...)
}

// Warnings returns all warnings collected so far, in the order raised.
func (h *Handler) Warnings() []ast.Warning {
	return h.warnings
}
