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

import (
	"testing"

	"github.com/kralicky/recipec/ast"
	"github.com/stretchr/testify/assert"
)

func attr(kind ast.AttributeKind) ast.Attribute {
	return ast.Attribute{Kind: kind}
}

func TestEnabledNoPlatformAttributeAlwaysEnabled(t *testing.T) {
	t.Parallel()

	attrs := []ast.Attribute{attr(ast.AttributeDoc)}
	assert.True(t, Enabled(attrs, Linux))
	assert.True(t, Enabled(attrs, Macos))
	assert.True(t, Enabled(attrs, Windows))
}

func TestEnabledMatchingPlatformAttribute(t *testing.T) {
	t.Parallel()

	attrs := []ast.Attribute{attr(ast.AttributeLinux)}
	assert.True(t, Enabled(attrs, Linux))
	assert.False(t, Enabled(attrs, Macos))
	assert.False(t, Enabled(attrs, Windows))
}

func TestEnabledUnixCoversLinuxAndMacos(t *testing.T) {
	t.Parallel()

	attrs := []ast.Attribute{attr(ast.AttributeUnix)}
	assert.True(t, Enabled(attrs, Linux))
	assert.True(t, Enabled(attrs, Macos))
	assert.False(t, Enabled(attrs, Windows))
}

func TestEnabledMismatchedPlatformDisables(t *testing.T) {
	t.Parallel()

	attrs := []ast.Attribute{attr(ast.AttributeWindows)}
	assert.False(t, Enabled(attrs, Linux))
	assert.False(t, Enabled(attrs, Macos))
	assert.True(t, Enabled(attrs, Windows))
}

func TestEnabledMultiplePlatformAttributesAnyMatch(t *testing.T) {
	t.Parallel()

	attrs := []ast.Attribute{attr(ast.AttributeLinux), attr(ast.AttributeWindows)}
	assert.True(t, Enabled(attrs, Linux))
	assert.False(t, Enabled(attrs, Macos))
	assert.True(t, Enabled(attrs, Windows))
}
