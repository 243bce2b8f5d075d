// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package hcl loads test-definition documents written in HCL into the
// document model. It implements config.Loader.
//
// A path to a directory becomes a directory document whose children are the
// suite files and sub-directories found in it. A `*.resource.hcl` file is a
// resource file, any other `*.hcl` file is a suite file, and `__init__.hcl`
// holds a directory's own settings, variables and keywords.
//
// Step rows are handed to the populator exactly like rows typed into an
// editor, so both share one row grammar.
//
// Expressions are evaluated without variables or functions. Variable cells
// such as ${name} collide with HCL interpolation and are written $${name}.
package hcl
