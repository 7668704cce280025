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
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kralicky/recipec/errs"
)

// canonicalExtension is the file extension a bare `mod name` searches
// for alongside the well-known justfile names (§4.1.1).
const canonicalExtension = ".just"

// wellKnownNames are matched case-insensitively against directory
// entries when searching a module's own directory for its source file.
var wellKnownNames = []string{"justfile", ".justfile"}

// findModuleFile implements §4.1.1: given a parent directory and module
// name, generate every candidate path in order, then filter to those
// that exist. The directory scan is sorted before matching so that the
// candidate list is deterministic across platforms (§9).
func findModuleFile(parent, module string) []string {
	var candidates []string

	direct := filepath.Join(parent, module+canonicalExtension)
	if fileExists(direct) {
		candidates = append(candidates, direct)
	}

	nested := filepath.Join(parent, module, "mod"+canonicalExtension)
	if fileExists(nested) {
		candidates = append(candidates, nested)
	}

	directory := filepath.Join(parent, module)
	if entries, err := os.ReadDir(directory); err == nil {
		var names []string
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		sort.Strings(names)
		for _, name := range names {
			for _, wellKnown := range wellKnownNames {
				if strings.EqualFold(name, wellKnown) {
					candidates = append(candidates, filepath.Join(directory, name))
				}
			}
		}
	}

	return candidates
}

// expandTilde implements §4.1.2: a leading `~/` is replaced by the
// user's home directory, with any further leading slashes trimmed.
func expandTilde(path string, pos errs.Pos) (string, error) {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errs.NewHomeDirectoryUnavailable(pos)
	}
	return filepath.Join(home, strings.TrimLeft(rest, "/")), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func isAncestor(ancestors []string, target string) bool {
	for _, a := range ancestors {
		if a == target {
			return true
		}
	}
	return false
}
