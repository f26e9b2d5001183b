// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext

// An Error is returned by the functions of this package. Errors are
// comparable and should be matched with errors.Is.
type Error struct {
	code int
	msg  string
}

func (e *Error) Error() string { return "utext: " + e.msg }

// Is reports whether target is the same kind of error as e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code == e.code
}

var (
	// ErrInvalidData is returned when required input is empty.
	ErrInvalidData = &Error{1, "invalid data"}

	// ErrNotEnoughSpace is returned when the destination buffer is too
	// small. The output written before the failing code point is valid and
	// its length is returned with the error.
	ErrNotEnoughSpace = &Error{2, "not enough space"}

	// ErrOverlappingParameters is returned when the source and destination
	// buffers share memory. Nothing is written.
	ErrOverlappingParameters = &Error{3, "overlapping parameters"}

	// ErrInvalidFlag is returned for an unsupported flag combination or an
	// unknown locale.
	ErrInvalidFlag = &Error{4, "invalid flag"}

	// ErrUnmatchedHighSurrogatePair is returned when a high surrogate is
	// not followed by a low surrogate. The surrogate is replaced with
	// U+FFFD and conversion continues.
	ErrUnmatchedHighSurrogatePair = &Error{5, "unmatched high surrogate pair"}

	// ErrUnmatchedLowSurrogatePair is returned when a low surrogate is not
	// preceded by a high surrogate. The surrogate is replaced with U+FFFD
	// and conversion continues.
	ErrUnmatchedLowSurrogatePair = &Error{6, "unmatched low surrogate pair"}
)
