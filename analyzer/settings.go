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

package analyzer

import (
	"github.com/kralicky/recipec/ast"
	"github.com/kralicky/recipec/errs"
)

// Settings is the folded form of a module's `set` directives (§6).
// Everything beyond AllowDuplicateRecipes and AllowDuplicateVariables is
// recorded for the benefit of an execution layer this compiler does not
// implement; it is never interpreted here.
type Settings struct {
	AllowDuplicateRecipes   bool
	AllowDuplicateVariables bool
	DotenvLoad              bool
	DotenvFilename          string
	DotenvPath              string
	DotenvRequired          bool
	Export                  bool
	Fallback                bool
	IgnoreComments          bool
	PositionalArguments     bool
	Quiet                   bool
	Tempdir                 string
	Unstable                bool
	WindowsPowershell       bool
	WindowsShell            []string
	Shell                   []string
}

// foldSettings converts the set-accumulator for a module into a Settings
// record, failing on the first same-name duplicate (§4.2 step 3).
func foldSettings(sets []ast.Set) (Settings, error) {
	var out Settings

	first := make(map[string]int, len(sets))
	for _, set := range sets {
		name := set.Name.Lexeme
		if line, seen := first[name]; seen {
			return Settings{}, errs.NewDuplicateSet(set.Name.Pos(), name, line)
		}
		first[name] = set.Name.Line

		switch name {
		case "allow-duplicate-recipes":
			out.AllowDuplicateRecipes = boolOrImplied(set.Value)
		case "allow-duplicate-variables":
			out.AllowDuplicateVariables = boolOrImplied(set.Value)
		case "dotenv-load":
			out.DotenvLoad = boolOrImplied(set.Value)
		case "dotenv-filename":
			out.DotenvFilename = stringOr(set.Value, "")
		case "dotenv-path":
			out.DotenvPath = stringOr(set.Value, "")
		case "dotenv-required":
			out.DotenvRequired = boolOrImplied(set.Value)
		case "export":
			out.Export = boolOrImplied(set.Value)
		case "fallback":
			out.Fallback = boolOrImplied(set.Value)
		case "ignore-comments":
			out.IgnoreComments = boolOrImplied(set.Value)
		case "positional-arguments":
			out.PositionalArguments = boolOrImplied(set.Value)
		case "quiet":
			out.Quiet = boolOrImplied(set.Value)
		case "tempdir":
			out.Tempdir = stringOr(set.Value, "")
		case "unstable":
			out.Unstable = boolOrImplied(set.Value)
		case "windows-powershell":
			out.WindowsPowershell = boolOrImplied(set.Value)
		case "windows-shell":
			out.WindowsShell = set.Value.List
		case "shell":
			out.Shell = set.Value.List
		}
	}

	return out, nil
}

func boolOrImplied(v ast.SettingValue) bool {
	if v.Implied {
		return true
	}
	return v.Bool != nil && *v.Bool
}

func stringOr(v ast.SettingValue, fallback string) string {
	if v.String != nil {
		return *v.String
	}
	return fallback
}
