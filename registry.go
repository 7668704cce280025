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

package recipec

import (
	"path/filepath"

	"github.com/kralicky/recipec/ast"
)

// source is one entry on the driver's work stack (§4.1): the absolute
// path to load, plus every contextual field the front end needs to
// attribute tokens and resolve further imports/modules correctly.
type source struct {
	path                string
	fileDepth           int
	submoduleDepth      int
	namepath            []string
	workingDirectory    string
	importOffset        int
	ancestorsInFilePath []string
}

// registry holds per-file identity for the whole compilation: absolute
// path to the relative path the loader reported, the raw source text,
// and the parsed Ast, keyed uniformly by canonicalized absolute path so
// that an import chain and a module tree referencing the same file
// agree on a single entry (§9 open question: both sides use
// canonicalize).
type registry struct {
	relative map[string]string
	text     map[string]string
	asts     map[string]*ast.Ast
}

func newRegistry() *registry {
	return &registry{
		relative: make(map[string]string),
		text:     make(map[string]string),
		asts:     make(map[string]*ast.Ast),
	}
}

// canonicalize is the single normalization function applied to both
// import and module target paths before they are used as registry keys,
// so that the same underlying file is never loaded or analyzed twice
// under two different-looking absolute paths.
func canonicalize(path string) string {
	return filepath.Clean(path)
}
