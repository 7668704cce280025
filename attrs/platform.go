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

package attrs

import "github.com/kralicky/recipec/ast"

// Platform identifies the host family the analyzer is gating recipe
// enablement against (§4.4). It is supplied by the embedder; this
// package does not read runtime.GOOS itself, since the spec treats
// platform gating as represented, not enforced, by the compiler.
type Platform int

const (
	Linux Platform = iota
	Macos
	Windows
)

// Enabled reports whether a recipe carrying the given attributes is
// enabled on the given platform. Absence of any platform attribute means
// always enabled; presence of one or more means enabled only if one of
// them matches (`unix` covers both Linux and Macos).
func Enabled(attributes []ast.Attribute, platform Platform) bool {
	hasPlatformAttr := false
	for _, a := range attributes {
		switch a.Kind {
		case ast.AttributeLinux:
			hasPlatformAttr = true
			if platform == Linux {
				return true
			}
		case ast.AttributeMacos:
			hasPlatformAttr = true
			if platform == Macos {
				return true
			}
		case ast.AttributeUnix:
			hasPlatformAttr = true
			if platform == Linux || platform == Macos {
				return true
			}
		case ast.AttributeWindows:
			hasPlatformAttr = true
			if platform == Windows {
				return true
			}
		}
	}
	return !hasPlatformAttr
}
