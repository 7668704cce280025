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
	"log/slog"
	"path/filepath"

	"github.com/kralicky/recipec/analyzer"
	"github.com/kralicky/recipec/ast"
	"github.com/kralicky/recipec/attrs"
	"github.com/kralicky/recipec/errs"
)

// Frontend lexes and parses one source file's text into an Ast. Lexing
// and parsing are external collaborators (§1): this package only fixes
// the contract a conforming front end must satisfy.
type Frontend interface {
	Parse(ctx ParseContext, text string) (*ast.Ast, error)
}

// ParseContext carries the contextual fields a front end needs to
// attribute tokens and to seed further resolution: the file's absolute
// path, its import depth and module depth from the root, its qualified
// module namepath, and the directory relative paths inside it resolve
// against.
type ParseContext struct {
	Path             string
	FileDepth        int
	SubmoduleDepth   int
	Namepath         []string
	WorkingDirectory string
}

// Compiler is the Phase C driver: it walks the import/module graph from
// a root path using Loader and Frontend, then folds the result with the
// analyzer package (Phase A).
type Compiler struct {
	Loader   Loader
	Frontend Frontend
	// UnstableFeatures gates `mod` syntax (§9 open question: imports are
	// always stable; modules require this flag).
	UnstableFeatures bool
	// Platform is passed through to the analyzer for recipe attribute
	// gating (§4.4): recipes whose platform attributes do not match it are
	// skipped. This compiler never inspects the host OS itself.
	Platform attrs.Platform
}

// Compile loads rootPath and everything it transitively imports or
// declares as a module, then returns the resolved Justfile.
func (c *Compiler) Compile(rootPath string) (*analyzer.Justfile, error) {
	root := canonicalize(rootPath)
	reg := newRegistry()
	var loadedPaths []string

	workStack := []*source{{
		path:                root,
		workingDirectory:    filepath.Dir(root),
		ancestorsInFilePath: []string{root},
	}}

	for len(workStack) > 0 {
		cur := workStack[len(workStack)-1]
		workStack = workStack[:len(workStack)-1]

		relative, text, err := c.Loader.Load(root, cur.path)
		if err != nil {
			return nil, err
		}
		loadedPaths = append(loadedPaths, relative)

		parsed, err := c.Frontend.Parse(ParseContext{
			Path:             cur.path,
			FileDepth:        cur.fileDepth,
			SubmoduleDepth:   cur.submoduleDepth,
			Namepath:         cur.namepath,
			WorkingDirectory: cur.workingDirectory,
		}, text)
		if err != nil {
			return nil, err
		}

		reg.relative[cur.path] = relative
		reg.text[cur.path] = text
		reg.asts[cur.path] = parsed

		next, err := c.visitItems(cur, parsed)
		if err != nil {
			return nil, err
		}
		workStack = append(workStack, next...)
	}

	a := analyzer.New(reg.asts, c.Platform)
	return a.Analyze(root, loadedPaths)
}

// visitItems is §4.1 step 4: for each Module/Import item in an already
// parsed Ast, resolve its target and mutate its ResolvedAbsolute field
// in place, returning the new work-stack entries it produced.
func (c *Compiler) visitItems(cur *source, parsed *ast.Ast) ([]*source, error) {
	var next []*source

	for _, item := range parsed.Items {
		switch it := item.(type) {
		case *ast.ModuleItem:
			entry, err := c.resolveModule(cur, it)
			if err != nil {
				return nil, err
			}
			if entry != nil {
				next = append(next, entry)
			}

		case *ast.ImportItem:
			entry, err := c.resolveImport(cur, it)
			if err != nil {
				return nil, err
			}
			if entry != nil {
				next = append(next, entry)
			}
		}
	}

	return next, nil
}

func (c *Compiler) resolveModule(cur *source, it *ast.ModuleItem) (*source, error) {
	if !c.UnstableFeatures {
		return nil, errs.NewUnstableFeature(it.Name.Pos(), "modules")
	}

	var target string

	if it.RelativePath != nil {
		expanded, err := expandTilde(it.RelativePath.Lexeme, it.RelativePath.Pos())
		if err != nil {
			return nil, err
		}
		candidate := filepath.Join(cur.workingDirectory, expanded)
		if fileExists(candidate) {
			target = canonicalize(candidate)
		}
	} else {
		candidates := findModuleFile(cur.workingDirectory, it.Name.Lexeme)
		switch len(candidates) {
		case 0:
			// handled below as missing.
		case 1:
			target = canonicalize(candidates[0])
		default:
			slog.Warn("multiple module-file candidates found", "module", it.Name.Lexeme, "candidates", candidates)
			return nil, errs.NewAmbiguousModuleFile(it.Name.Pos(), it.Name.Lexeme, candidates)
		}
	}

	if target == "" {
		if it.Optional {
			return nil, nil
		}
		return nil, errs.NewMissingModuleFile(it.Name.Pos(), it.Name.Lexeme)
	}

	if isAncestor(cur.ancestorsInFilePath, target) {
		return nil, errs.NewCircularImport(it.Name.Pos(), cur.path, target)
	}

	it.ResolvedAbsolute = &target

	return &source{
		path:                target,
		fileDepth:           cur.fileDepth,
		submoduleDepth:      cur.submoduleDepth + 1,
		namepath:            append(append([]string{}, cur.namepath...), it.Name.Lexeme),
		workingDirectory:    filepath.Dir(target),
		ancestorsInFilePath: append(append([]string{}, cur.ancestorsInFilePath...), target),
	}, nil
}

func (c *Compiler) resolveImport(cur *source, it *ast.ImportItem) (*source, error) {
	expanded, err := expandTilde(it.RelativePath.Lexeme, it.RelativePath.Pos())
	if err != nil {
		return nil, err
	}

	target := canonicalize(filepath.Join(cur.workingDirectory, expanded))

	if !fileExists(target) {
		if it.Optional {
			return nil, nil
		}
		return nil, errs.NewMissingImportFile(it.RelativePath.Pos(), it.RelativePath.Lexeme)
	}

	if isAncestor(cur.ancestorsInFilePath, target) {
		return nil, errs.NewCircularImport(it.RelativePath.Pos(), cur.path, target)
	}

	it.ResolvedAbsolute = &target

	return &source{
		path:                target,
		fileDepth:           cur.fileDepth + 1,
		submoduleDepth:      cur.submoduleDepth,
		namepath:            cur.namepath,
		workingDirectory:    filepath.Dir(target),
		importOffset:        it.RelativePath.Offset,
		ancestorsInFilePath: append(append([]string{}, cur.ancestorsInFilePath...), target),
	}, nil
}
