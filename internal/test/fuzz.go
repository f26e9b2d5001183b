// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package test

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/charlievieth/utext/internal/casemap"
)

var exhaustiveFuzz = flag.Bool("exhaustive", false, "Run exhaustive fuzz tests (slow).")

// Curated ranges that exercise composition, reordering and case mapping.
// Random assigned code points rarely combine with each other.
var (
	latinRunes    = runeRange(0x00C0, 0x024F)
	markRunes     = runeRange(0x0300, 0x036F)
	greekRunes    = runeRange(0x0370, 0x03FF)
	cyrillicRunes = runeRange(0x0400, 0x04FF)
	jamoRunes     = append(append(runeRange(0x1100, 0x1112), runeRange(0x1161, 0x1175)...), runeRange(0x11A8, 0x11C2)...)
	compatRunes   = append(runeRange(0xFB00, 0xFB06), runeRange(0x2460, 0x2473)...)
	specialRunes  = []rune{
		'\u0130', '\u0131', '\u00DF', '\u03A3', '\u03C2', '\u212A',
		'\u1E9E', '\u0149', '\u01C5', '\u1F80', '\u0CC6', '\u0CC2',
		'\u0CD5', '\u0B47', '\u0B3E', '\u0F71', '\u0F72', '\u0F80',
	}
)

func runeRange(lo, hi rune) []rune {
	rs := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		rs = append(rs, r)
	}
	return rs
}

func cryptoRandInt(t testing.TB) int64 {
	var b [8]byte
	if _, err := io.ReadFull(crand.Reader, b[:]); err != nil {
		if t != nil {
			t.Fatal(err)
		}
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func pick(rr *rand.Rand, rs []rune) rune { return rs[rr.Intn(len(rs))] }

func randRune(rr *rand.Rand) rune {
	switch n := rr.Intn(100); {
	case n < 25:
		return pick(rr, markRunes)
	case n < 40:
		return pick(rr, latinRunes)
	case n < 50:
		return pick(rr, greekRunes)
	case n < 55:
		return pick(rr, cyrillicRunes)
	case n < 65:
		if n&1 == 0 {
			return rr.Int31n(11172) + 0xAC00 // Hangul syllable
		}
		return pick(rr, jamoRunes)
	case n < 70:
		return pick(rr, compatRunes)
	case n < 80:
		return pick(rr, specialRunes)
	default:
		return rr.Int31n(128)
	}
}

// randString returns a valid UTF-8 string of at most maxRunes runes.
func randString(rr *rand.Rand, buf []rune, maxRunes int) string {
	n := rr.Intn(maxRunes) + 1
	buf = buf[:0]
	for i := 0; i < n; i++ {
		buf = append(buf, randRune(rr))
	}
	return string(buf)
}

// randInvalidString returns a string that may contain invalid UTF-8.
func randInvalidString(rr *rand.Rand, buf []rune, maxRunes int) string {
	s := randString(rr, buf, maxRunes)
	if rr.Intn(2) == 0 {
		return s
	}
	b := []byte(s)
	for i := rr.Intn(3) + 1; i > 0; i-- {
		j := rr.Intn(len(b) + 1)
		bad := [...]string{"\xFF", "\x80", "\xC0\x80", "\xE2\x82", "\xED\xA0\x80", "\xF4\x90\x80\x80"}
		b = append(b[:j], append([]byte(bad[rr.Intn(len(bad))]), b[j:]...)...)
	}
	return string(b)
}

func fuzzNumCPU() int {
	numCPU := runtime.NumCPU()
	if numCPU < 1 {
		numCPU = 1
	}
	return numCPU
}

func randomTestSeeds(t *testing.T) []int64 {
	seeds := []int64{
		1,
		time.Now().UnixNano(),
		cryptoRandInt(t),
	}
	if !testing.Short() {
		numCPU := fuzzNumCPU()
		for i := len(seeds); i < numCPU; i++ {
			seeds = append(seeds, cryptoRandInt(t))
		}
	}
	return seeds
}

func runRandomTest(t *testing.T, fn func(t *fuzzTest)) {
	if *exhaustiveFuzz && testing.Short() {
		t.Fatal(`Cannot combine "-short" and "-exhaustive" flags`)
	}
	// Count is the total number of test iterations to run.
	count := 2_000
	if testing.Short() {
		count /= 4
	}
	seeds := randomTestSeeds(t)
	if *exhaustiveFuzz {
		count = 2_000_000 / len(seeds)
		t.Logf("N: %d", count)
	}
	for _, seed := range seeds {
		seed := seed
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			t.Parallel()
			start := time.Now()
			if testing.Verbose() {
				t.Cleanup(func() { t.Logf("duration: %s", time.Since(start)) })
			}
			tt := newFuzzTest(t, seed)
			for i := 0; i < count; i++ {
				fn(tt)
			}
		})
		if t.Failed() && testing.Short() {
			return
		}
	}
}

type fuzzTest struct {
	testing.TB
	rr  *rand.Rand
	buf []rune // scratch space for generating strings
}

func newFuzzTest(t *testing.T, seed int64) *fuzzTest {
	return &fuzzTest{
		TB:  &testWrapper{T: t},
		rr:  rand.New(rand.NewSource(seed)),
		buf: make([]rune, 0, 32),
	}
}

// Strings are kept well below the 30 non-starter limit of the stream safe
// format so that no segment is split.
const maxFuzzRunes = 24

// NormalizeFuzz compares fn with the form of golang.org/x/text on random
// valid strings.
func NormalizeFuzz(t *testing.T, form norm.Form, fn TransformFunc) {
	runRandomTest(t, func(t *fuzzTest) {
		s := randString(t.rr, t.buf, maxFuzzRunes)
		want := form.String(s)
		got, err := fn(s)
		if err != nil {
			t.Errorf("Normalize(%+q): unexpected error: %v", s, err)
			return
		}
		if got != want {
			t.Errorf("Normalize\n"+
				"S:    %+q\n"+
				"Got:  %+q\n"+
				"Want: %+q\n"+
				"Runes:\n"+
				"S:    %U\n"+
				"Got:  %U\n"+
				"Want: %U\n",
				s, got, want, []rune(s), []rune(got), []rune(want))
		}
	})
}

// CaseFuzz compares fn with caser, using the default locale, on random
// valid strings. Only context free mappings can be compared this way.
func CaseFuzz(t *testing.T, caser cases.Caser, fn CaseFunc) {
	runRandomTest(t, func(t *fuzzTest) {
		s := randString(t.rr, t.buf, maxFuzzRunes)
		want := caser.String(s)
		got, err := fn(s, casemap.Default)
		if err != nil {
			t.Errorf("Case(%+q): unexpected error: %v", s, err)
			return
		}
		if got != want {
			t.Errorf("Case\n"+
				"S:    %+q\n"+
				"Got:  %+q\n"+
				"Want: %+q\n",
				s, got, want)
		}
	})
}

// OutputFuzz checks that fn accepts any input, including invalid UTF-8,
// and always produces valid UTF-8.
func OutputFuzz(t *testing.T, name string, fn TransformFunc) {
	runRandomTest(t, func(t *fuzzTest) {
		s := randInvalidString(t.rr, t.buf, maxFuzzRunes)
		got, err := fn(s)
		if err != nil {
			t.Errorf("%s(%+q): unexpected error: %v", name, s, err)
			return
		}
		if !utf8.ValidString(got) {
			t.Errorf("%s(%+q) = %+q: invalid UTF-8", name, s, got)
		}
		if len(s) > 0 && len(got) == 0 {
			t.Errorf("%s(%+q): empty output", name, s)
		}
		if strings.Contains(s, "\uFFFD") && !strings.Contains(got, "\uFFFD") {
			t.Errorf("%s(%+q) = %+q: lost U+FFFD", name, s, got)
		}
	})
}

var _ testing.TB = (*testWrapper)(nil)

// A testWrapper wraps a testing.T and will immediately fail the test
// if more that N errors occur.
type testWrapper struct {
	*testing.T
	fails int32
}

func (c *testWrapper) check() {
	c.T.Helper()
	if n := atomic.AddInt32(&c.fails, 1); n >= 10 {
		// We run tests in parallel so only call Fatal on the
		// test that crossed the threshold.
		if n == 10 {
			c.T.Fatal("Too many errors:", n)
		} else {
			c.T.FailNow() // Abort subsequent tests
		}
		panic(fmt.Sprintf("aborting test: too many errors: %d", n)) // unreachable
	}
}

func (c *testWrapper) Error(args ...any) {
	c.T.Helper()
	c.T.Error(args...)
	c.check()
}

func (c *testWrapper) Errorf(format string, args ...any) {
	c.T.Helper()
	c.T.Errorf(format, args...)
	c.check()
}

func (c *testWrapper) Fatal(args ...any) {
	c.T.Helper()
	c.T.Fatal(args...)
	c.check()
}

func (c *testWrapper) Fatalf(format string, args ...any) {
	c.T.Helper()
	c.T.Fatalf(format, args...)
	c.check()
}
