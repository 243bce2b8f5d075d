// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory object graph of test-definition
// documents: directories of suites, suite files and resource files, together
// with their tables of settings, variables, test cases and keywords.
//
// # Core Concepts
//
//   - Datafile: one document. Its Kind is the explicit discriminator that
//     the controller layer dispatches on; no type inspection is needed.
//
//   - Tables: SettingTable, VariableTable, TestCaseTable and KeywordTable.
//     Each table keeps a back-reference to the Datafile that owns it, so any
//     object can answer "which file do I belong to".
//
//   - Entities: TestCase and UserKeyword. Both own an ordered, replaceable
//     sequence of Steps and their own setting values.
//
//   - Setting values: small structs (Documentation, Fixture, Tags, ...) that
//     are always allocated, so editors can take a pointer to a field and
//     fill it in later. IsSet reports whether the user gave a value.
//
// Why a separate model package?
//
// The model is produced by a loader (see package hcl) and consumed by the
// controller layer. Neither side needs to know about the other: the loader
// never sees controllers, and controllers never parse text. The model is
// deliberately dumb. It performs no validation of names, arguments or step
// content; rejecting bad input is a concern of whoever produced it.
package model
