// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package utext transforms UTF-8 encoded text: conversion to and from
// UTF-16 and UTF-32, Unicode normalization (NFC, NFD, NFKC and NFKD),
// locale sensitive case mapping, code point seeking and general category
// tests.
//
// Functions that produce text take a destination and a source buffer and
// return the number of destination code units written:
//
//	n, err := utext.ToUpper(dst, src, utext.DefaultLocale)
//
// A nil destination measures the output without writing it, so a caller
// can size its buffer exactly:
//
//	n, _ := utext.Normalize(nil, src, utext.NFC)
//	dst := make([]byte, n)
//	n, err := utext.Normalize(dst, src, utext.NFC)
//
// The destination and source must not share memory. None of the functions
// allocate and they are safe for concurrent use. The ustring package wraps
// them for callers that prefer strings.
//
// Malformed UTF-8 is never an error: each maximal malformed subsequence is
// replaced with U+FFFD (the Unicode replacement character).
package utext

// BUG(cvieth): Text with more than 30 consecutive non-starters is split
// into multiple segments instead of inserting U+034F COMBINING GRAPHEME
// JOINER, so normalization of such text differs from the stream-safe
// text format.
