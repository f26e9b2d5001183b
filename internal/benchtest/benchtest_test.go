// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package benchtest

import (
	"flag"
	"strings"
	"testing"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/charlievieth/utext"
)

var benchXText = flag.Bool("xtext", false, "Use golang.org/x/text in benchmarks (for comparison)")

var benchInputs = []struct {
	name string
	s    string
}{
	{"ASCII", strings.Repeat("The quick brown fox jumps over the lazy dog. ", 64)},
	{"Latin", strings.Repeat("\u00C7a me pla\u00EEt, Stra\u00DFe \u00FCber \u00D6l. ", 64)},
	{"Greek", strings.Repeat("\u1F48\u03B4\u03C5\u03C3\u03C3\u03B5\u03CD\u03C2 \u1F04\u03BB\u03C6\u03B1 \u03B2\u1FC6\u03C4\u03B1 \u039F\u0394\u039F\u03A3. ", 64)},
	{"Hangul", strings.Repeat("\uD55C\uAD6D\uC5B4 \uD14D\uC2A4\uD2B8 \uAC01 ", 64)},
	{"Decomposed", strings.Repeat("A\u030Ae\u0301a\u0323\u0302 ", 64)},
}

func benchNormalize(b *testing.B, flags utext.Flags, form norm.Form) {
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			src := []byte(in.s)
			b.SetBytes(int64(len(src)))
			if *benchXText {
				dst := make([]byte, 0, len(src)*3)
				for i := 0; i < b.N; i++ {
					dst = form.Append(dst[:0], src...)
				}
				return
			}
			n, err := utext.Normalize(nil, src, flags)
			if err != nil {
				b.Fatal(err)
			}
			dst := make([]byte, n)
			for i := 0; i < b.N; i++ {
				utext.Normalize(dst, src, flags)
			}
		})
	}
}

func BenchmarkNFC(b *testing.B)  { benchNormalize(b, utext.NFC, norm.NFC) }
func BenchmarkNFD(b *testing.B)  { benchNormalize(b, utext.NFD, norm.NFD) }
func BenchmarkNFKC(b *testing.B) { benchNormalize(b, utext.NFKC, norm.NFKC) }
func BenchmarkNFKD(b *testing.B) { benchNormalize(b, utext.NFKD, norm.NFKD) }

func benchCase(b *testing.B, fn func(dst, src []byte, l utext.Locale) (int, error), caser cases.Caser) {
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			src := []byte(in.s)
			b.SetBytes(int64(len(src)))
			if *benchXText {
				for i := 0; i < b.N; i++ {
					caser.Bytes(src)
				}
				return
			}
			n, err := fn(nil, src, utext.DefaultLocale)
			if err != nil {
				b.Fatal(err)
			}
			dst := make([]byte, n)
			for i := 0; i < b.N; i++ {
				fn(dst, src, utext.DefaultLocale)
			}
		})
	}
}

func BenchmarkToUpper(b *testing.B)  { benchCase(b, utext.ToUpper, cases.Upper(language.Und)) }
func BenchmarkToLower(b *testing.B)  { benchCase(b, utext.ToLower, cases.Lower(language.Und)) }
func BenchmarkToTitle(b *testing.B)  { benchCase(b, utext.ToTitle, cases.Title(language.Und)) }
func BenchmarkCasefold(b *testing.B) { benchCase(b, utext.Casefold, cases.Fold()) }

func BenchmarkUTF8ToUTF16(b *testing.B) {
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			src := []byte(in.s)
			b.SetBytes(int64(len(src)))
			dst := make([]uint16, len(src))
			for i := 0; i < b.N; i++ {
				utext.UTF8ToUTF16(dst, src)
			}
		})
	}
}

func BenchmarkIsNormalized(b *testing.B) {
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			src := []byte(in.s)
			b.SetBytes(int64(len(src)))
			if *benchXText {
				for i := 0; i < b.N; i++ {
					norm.NFC.QuickSpan(src)
				}
				return
			}
			for i := 0; i < b.N; i++ {
				utext.IsNormalized(src, utext.NFC)
			}
		})
	}
}
