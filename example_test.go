// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package utext_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/charlievieth/utext"
)

func ExampleNormalize() {
	src := []byte("A\u030A") // A + COMBINING RING ABOVE

	// Measure then convert.
	n, _ := utext.Normalize(nil, src, utext.NFC)
	dst := make([]byte, n)
	n, err := utext.Normalize(dst, src, utext.NFC)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d %+q\n", n, dst[:n])
	// Output:
	// 2 "\u00c5"
}

func ExampleIsNormalized() {
	fmt.Println(utext.IsNormalized([]byte("A\u030A"), utext.NFD))
	fmt.Println(utext.IsNormalized([]byte("A\u030A"), utext.NFC))
	fmt.Println(utext.IsNormalized([]byte("\u00C5"), utext.NFD))
	// Output:
	// Yes 3 <nil>
	// Maybe 1 <nil>
	// No 0 <nil>
}

func ExampleToUpper() {
	dst := make([]byte, 32)
	n, _ := utext.ToUpper(dst, []byte("stra\u00DFe"), utext.DefaultLocale)
	fmt.Println(string(dst[:n]))

	n, _ = utext.ToUpper(dst, []byte("istanbul"), utext.Turkish)
	fmt.Printf("%+q\n", dst[:n])
	// Output:
	// STRASSE
	// "\u0130STANBUL"
}

func ExampleToUpper_notEnoughSpace() {
	dst := make([]byte, 5)
	n, err := utext.ToUpper(dst, []byte("stra\u00DFe"), utext.DefaultLocale)
	fmt.Println(string(dst[:n]), errors.Is(err, utext.ErrNotEnoughSpace))
	// Output:
	// STRAS true
}

func ExampleToTitle() {
	dst := make([]byte, 32)
	n, _ := utext.ToTitle(dst, []byte("RE/wind=cool"), utext.DefaultLocale)
	fmt.Println(string(dst[:n]))
	// Output:
	// Re/Wind=Cool
}

func ExampleCasefold() {
	dst := make([]byte, 32)
	n, _ := utext.Casefold(dst, []byte("Stra\u00DFe"), utext.DefaultLocale)
	fmt.Println(string(dst[:n]))
	// Output:
	// strasse
}

func ExampleUTF8ToUTF16() {
	dst := make([]uint16, 4)
	n, _ := utext.UTF8ToUTF16(dst, []byte("a\U0001F600"))
	fmt.Printf("%04X\n", dst[:n])
	// Output:
	// [0061 D83D DE00]
}

func ExampleUTF16ToUTF8() {
	dst := make([]byte, 8)
	n, err := utext.UTF16ToUTF8(dst, []uint16{'a', 0xD800})
	fmt.Printf("%+q %v\n", dst[:n], err)
	// Output:
	// "a\ufffd" <nil>
}

func ExampleUTF32ToUTF8() {
	dst := make([]byte, 8)
	n, err := utext.UTF32ToUTF8(dst, []rune{'a', 0xD800})
	fmt.Printf("%+q %v\n", dst[:n], err)
	// Output:
	// "a\ufffd" utext: unmatched high surrogate pair
}

func ExampleSeek() {
	text := []byte("a\u20AC\U0001F600b")
	fmt.Println(utext.Seek(text, 0, 2, io.SeekStart))
	fmt.Println(utext.Seek(text, 0, -1, io.SeekEnd))
	fmt.Println(utext.Len(text))
	// Output:
	// 4
	// 8
	// 4
}

func ExampleIs() {
	fmt.Println(utext.Is('5', utext.ClassDigit))
	fmt.Println(utext.Is('x', utext.Letter|utext.Number))
	fmt.Println(utext.Is(' ', utext.ClassPunct))
	fmt.Println(utext.CategoryOf('A'))
	// Output:
	// true
	// true
	// false
	// Lu
}
