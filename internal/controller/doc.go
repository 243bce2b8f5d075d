// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package controller is the view-adapter layer between an editor and the
// document model. It gives every kind of document the same navigable surface
// (settings, children, tables) and tracks whether unsaved changes exist.
//
// # Core Concepts
//
//   - Document: one controller per document variant (directory, suite file,
//     resource file), chosen by New from the datafile's Kind. A Document is
//     the only controller that stores the dirty flag.
//
//   - Table controllers: fresh views over one table of a document. Ranging
//     over All yields fresh entity or item controllers in table order.
//
//   - Entity controllers: a test case or user keyword, with its settings and
//     steps. ParseStepsFromRows replaces the steps wholesale.
//
//   - Item controllers: a variable, import or metadata entry.
//
// Every non-root controller receives its parent at construction and
// delegates Dirty and MarkDirty to it, so marking anything dirty marks the
// owning document. Controllers are views, not caches: repeated calls to
// Settings, Tests, Keywords and friends return new controllers, and callers
// must not rely on identity across calls.
//
// The package is single-threaded by design. It performs no I/O and no
// validation; errors from collaborators are returned unchanged.
package controller
