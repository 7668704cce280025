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

// Package recipec is the front-end compiler: it walks a recipefile's
// import and module graph (Phase C, see driver.go) and folds the
// resulting ASTs into a resolved Justfile tree (Phase A, see
// github.com/kralicky/recipec/analyzer). Reading source text, lexing,
// and parsing are supplied by the embedder through the Loader and
// Frontend interfaces; the driver itself only checks whether import and
// module target files exist and scans module directories for candidates.
package recipec

import (
	"fmt"
	"os"
	"path/filepath"
)

// Loader reads the text of a source file given its root and target
// paths, returning the path relative to root that should be recorded
// for diagnostics. It is the compiler's sole file I/O collaborator.
type Loader interface {
	Load(root, target string) (relative string, text string, err error)
}

// FileLoader reads source files from the local filesystem.
type FileLoader struct{}

func (FileLoader) Load(root, target string) (string, string, error) {
	data, err := os.ReadFile(target)
	if err != nil {
		return "", "", err
	}
	relative, err := filepath.Rel(filepath.Dir(root), target)
	if err != nil {
		relative = target
	}
	return relative, string(data), nil
}

// MapLoader serves source text from an in-memory map keyed by absolute
// path, for use in tests that don't want to touch a filesystem.
type MapLoader map[string]string

func (m MapLoader) Load(root, target string) (string, string, error) {
	text, ok := m[target]
	if !ok {
		return "", "", fmt.Errorf("recipec: no source registered for %q", target)
	}
	relative, err := filepath.Rel(filepath.Dir(root), target)
	if err != nil {
		relative = target
	}
	return relative, text, nil
}
