// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package benchtest is used for benchmarking utext against the
// golang.org/x/text normalization and case mapping packages.
//
// It is not part of the utext package since it would add x/text as a test
// dependency of every benchmark. Run with -xtext to benchmark x/text with
// the same inputs.
package benchtest
