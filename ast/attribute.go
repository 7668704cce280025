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

package ast

// AttributeKind is the closed registry of bracketed annotations a recipe
// or alias may carry. The attrs package is responsible for constructing
// values of this type with their arity validated; this type itself is
// pure data.
type AttributeKind string

const (
	AttributeConfirm             AttributeKind = "confirm"
	AttributeDoc                 AttributeKind = "doc"
	AttributeGroup               AttributeKind = "group"
	AttributeLinux               AttributeKind = "linux"
	AttributeMacos               AttributeKind = "macos"
	AttributeUnix                AttributeKind = "unix"
	AttributeWindows             AttributeKind = "windows"
	AttributeNoCd                AttributeKind = "no-cd"
	AttributeNoExitMessage       AttributeKind = "no-exit-message"
	AttributeNoQuiet             AttributeKind = "no-quiet"
	AttributePositionalArguments AttributeKind = "positional-arguments"
	AttributePrivate             AttributeKind = "private"
)

// Attribute is one bracketed annotation as it appears on a recipe or
// alias, e.g. `[group('lint')]` or `[private]`.
type Attribute struct {
	Token    Token
	Kind     AttributeKind
	Argument *string
}

// IsPlatform reports whether this attribute gates recipe enablement by
// platform (§4.4).
func (a Attribute) IsPlatform() bool {
	switch a.Kind {
	case AttributeLinux, AttributeMacos, AttributeUnix, AttributeWindows:
		return true
	default:
		return false
	}
}
