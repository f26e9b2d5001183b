// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// gentables generates the Unicode property tables used by utext
// (internal/tables/tables_gen.go) from the data compiled into the
// golang.org/x/text and unicode packages. The tables must be regenerated
// if this code is changed (`go run -tags gen gen.go`).
package main

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/schollz/progressbar/v3"
	flag "github.com/spf13/pflag"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

func init() {
	initLogs()
}

func initLogs() {
	log.SetPrefix("gentables: ")
	log.SetFlags(log.Lshortfile)
	log.SetOutput(os.Stdout) // use stdout instead of stderr
}

const (
	maxRune = unicode.MaxRune

	// No code point at or above normLimit has a decomposition, a non-zero
	// combining class or a case mapping.
	normLimit = 0x30000
)

// categoryNames and categoryConsts must match the order of the Category
// constants in internal/tables. Cn must be last.
var categoryNames = [...]string{
	"Lu", "Ll", "Lt", "Lm", "Lo",
	"Mn", "Mc", "Me",
	"Nd", "Nl", "No",
	"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po",
	"Sm", "Sc", "Sk", "So",
	"Zs", "Zl", "Zp",
	"Cc", "Cf", "Cs", "Co", "Cn",
}

var categoryConsts = [...]string{
	"LetterUppercase", "LetterLowercase", "LetterTitlecase", "LetterModifier", "LetterOther",
	"MarkNonSpacing", "MarkSpacing", "MarkEnclosing",
	"NumberDecimal", "NumberLetter", "NumberOther",
	"PunctuationConnector", "PunctuationDash", "PunctuationOpen", "PunctuationClose",
	"PunctuationInitial", "PunctuationFinal", "PunctuationOther",
	"SymbolMath", "SymbolCurrency", "SymbolModifier", "SymbolOther",
	"SeparatorSpace", "SeparatorLine", "SeparatorParagraph",
	"Control", "Format", "Surrogate", "PrivateUse", "Unassigned",
}

// Mapping kinds in the order of the Kind constants in internal/tables.
const (
	kindDecompose = iota
	kindCompatibilityDecompose
	kindUppercase
	kindLowercase
	kindTitlecase
	kindCasefold
	numKinds
)

var kindNames = [numKinds]struct {
	Const string // name of the tables.Kind constant
	Var   string // prefix of the generated variables
}{
	{"Decompose", "decompose"},
	{"CompatibilityDecompose", "compatibility"},
	{"Uppercase", "uppercase"},
	{"Lowercase", "lowercase"},
	{"Titlecase", "titlecase"},
	{"Casefold", "casefold"},
}

// Quick check verdicts, these match tables.Verdict.
const (
	qcYes = iota
	qcMaybe
	qcNo
)

// Normalization forms, these match tables.Form.
const (
	formNFC = iota
	formNFD
	formNFKC
	formNFKD
)

type record struct {
	Cat uint8 // index into categoryNames
	CCC uint8
	QC  uint8 // 2 bits per form
}

type recordRange struct {
	Lo, Hi rune
	record
}

type pair struct {
	Key uint64
	R   rune
}

func pairKey(a, b rune) uint64 { return uint64(a)<<21 | uint64(b) }

// database is the generator's view of the tables, see internal/tables.
type database struct {
	Version string
	Records []recordRange
	Maps    [numKinds]map[rune]string
	Pairs   []pair
}

type builder struct {
	cats   []uint8
	ccc    []uint8
	qc     []uint8
	maps   [numKinds]map[rune]string
	pairs  []pair
	second map[rune]bool // second code point of a composition pair
}

// Hangul syllables are composed and decomposed arithmetically.
const (
	hangulSBase  = 0xAC00
	hangulSCount = 11172
	hangulVBase  = 0x1161
	hangulVCount = 21
	hangulTBase  = 0x11A7
	hangulTCount = 28
)

func isHangulSyllable(r rune) bool {
	return hangulSBase <= r && r < hangulSBase+hangulSCount
}

func isHangulSecond(r rune) bool {
	return hangulVBase <= r && r < hangulVBase+hangulVCount ||
		hangulTBase < r && r < hangulTBase+hangulTCount
}

func isSurrogate(r rune) bool { return 0xD800 <= r && r <= 0xDFFF }

// newProgressBar only draws the bar if stdout is a terminal.
func newProgressBar(max int, desc string) *progressbar.ProgressBar {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return progressbar.Default(int64(max), desc)
	}
	return progressbar.DefaultSilent(int64(max), desc)
}

// build derives the tables from the golang.org/x/text and unicode packages.
func build() *database {
	start := time.Now()
	b := builder{
		cats:   make([]uint8, maxRune+1),
		ccc:    make([]uint8, normLimit),
		qc:     make([]uint8, normLimit),
		second: make(map[rune]bool),
	}
	for i := range b.maps {
		b.maps[i] = make(map[rune]string)
	}
	steps := []func(){
		b.loadCategories,
		b.loadDecompositions,
		b.loadCompositions,
		b.loadQuickCheck,
		b.loadCaseMappings,
	}
	bar := newProgressBar(len(steps), "building tables")
	for _, fn := range steps {
		fn()
		if err := bar.Add(1); err != nil {
			log.Panicf("error updating progress bar: %v", err)
		}
	}
	bar.Close()

	db := &database{
		Version: norm.Version,
		Records: b.records(),
		Maps:    b.maps,
		Pairs:   b.pairs,
	}
	log.Printf("built tables in %s: records: %d pairs: %d decompositions: %d "+
		"compatibility: %d upper: %d lower: %d title: %d fold: %d",
		time.Since(start), len(db.Records), len(db.Pairs),
		len(db.Maps[kindDecompose]), len(db.Maps[kindCompatibilityDecompose]),
		len(db.Maps[kindUppercase]), len(db.Maps[kindLowercase]),
		len(db.Maps[kindTitlecase]), len(db.Maps[kindCasefold]))
	return db
}

func (b *builder) loadCategories() {
	cn := uint8(len(categoryNames) - 1)
	for i := range b.cats {
		b.cats[i] = cn
	}
	for i, name := range categoryNames {
		rt := unicode.Categories[name]
		if rt == nil {
			continue // Cn
		}
		visit(rt, func(r rune) {
			b.cats[r] = uint8(i)
		})
	}
}

// loadDecompositions records the full decomposition of every code point.
// Hangul syllables are omitted.
func (b *builder) loadDecompositions() {
	var buf [utf8.UTFMax]byte
	for r := rune(0); r < normLimit; r++ {
		if isSurrogate(r) {
			continue
		}
		n := utf8.EncodeRune(buf[:], r)
		p := norm.NFD.Properties(buf[:n])
		b.ccc[r] = p.CCC()
		if isHangulSyllable(r) {
			continue
		}
		if d := p.Decomposition(); d != nil {
			b.maps[kindDecompose][r] = string(d)
		}
		if d := norm.NFKD.Properties(buf[:n]).Decomposition(); d != nil {
			b.maps[kindCompatibilityDecompose][r] = string(d)
		}
	}
}

// single returns the code point of s if s encodes exactly one.
func single(s string) (rune, bool) {
	r, n := utf8.DecodeRuneInString(s)
	return r, n > 0 && n == len(s)
}

// loadCompositions inverts the canonical decompositions. The composite of a
// pair must survive NFC, which removes composition exclusions, singletons
// and non-starter decompositions.
func (b *builder) loadCompositions() {
	for r, d := range b.maps[kindDecompose] {
		rs := []rune(d)
		if len(rs) < 2 {
			continue
		}
		first, ok := single(norm.NFC.String(string(rs[:len(rs)-1])))
		if !ok {
			continue
		}
		second := rs[len(rs)-1]
		if norm.NFC.String(string([]rune{first, second})) != string(r) {
			continue
		}
		b.pairs = append(b.pairs, pair{Key: pairKey(first, second), R: r})
		b.second[second] = true
	}
	slices.SortFunc(b.pairs, func(a, b pair) int {
		return cmp.Compare(a.Key, b.Key)
	})
	b.pairs = slices.CompactFunc(b.pairs, func(a, b pair) bool {
		return a.Key == b.Key
	})
}

func (b *builder) loadQuickCheck() {
	for r := rune(0); r < normLimit; r++ {
		if isSurrogate(r) {
			continue
		}
		_, canonical := b.maps[kindDecompose][r]
		_, compat := b.maps[kindCompatibilityDecompose][r]
		hangul := isHangulSyllable(r)
		second := b.second[r] || isHangulSecond(r)
		s := string(r)

		nfd, nfkd := qcYes, qcYes
		if canonical || hangul {
			nfd = qcNo
		}
		if compat || hangul {
			nfkd = qcNo
		}
		nfc, nfkc := qcYes, qcYes
		if canonical && norm.NFC.String(s) != s {
			nfc = qcNo
		} else if second {
			nfc = qcMaybe
		}
		if compat && norm.NFKC.String(s) != s {
			nfkc = qcNo
		} else if second {
			nfkc = qcMaybe
		}
		b.qc[r] = uint8(nfc<<(2*formNFC) | nfd<<(2*formNFD) |
			nfkc<<(2*formNFKC) | nfkd<<(2*formNFKD))
	}
}

func hasCase(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r) ||
		unicode.SimpleFold(r) != r || unicode.ToUpper(r) != r ||
		unicode.ToLower(r) != r
}

// loadCaseMappings records the full (multi code point) case mappings of
// every cased code point. Context dependent rules are applied by the case
// mapping engine and are not part of the tables.
func (b *builder) loadCaseMappings() {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	title := cases.Title(language.Und)
	fold := cases.Fold()
	for r := rune(0); r < normLimit; r++ {
		if isSurrogate(r) || !hasCase(r) {
			continue
		}
		s := string(r)
		u := upper.String(s)
		if u != s {
			b.maps[kindUppercase][r] = u
		}
		if l := lower.String(s); l != s {
			b.maps[kindLowercase][r] = l
		}
		// Titlecase letters map to themselves, record them so that they
		// are not mistaken for code points without a titlecase form.
		if t := title.String(s); t != s || u != s {
			b.maps[kindTitlecase][r] = t
		}
		if f := fold.String(s); f != s {
			b.maps[kindCasefold][r] = f
		}
	}
}

// records merges adjacent code points with identical properties.
func (b *builder) records() []recordRange {
	var a []recordRange
	var cur recordRange
	for r := rune(0); r <= maxRune; r++ {
		rec := record{Cat: b.cats[r]}
		if r < normLimit {
			rec.CCC = b.ccc[r]
			rec.QC = b.qc[r]
		}
		if r > 0 && rec == cur.record {
			cur.Hi = r
			continue
		}
		if r > 0 {
			a = append(a, cur)
		}
		cur = recordRange{Lo: r, Hi: r, record: rec}
	}
	return append(a, cur)
}

// visit visits all runes in the given RangeTable in order, calling fn for each.
func visit(rt *unicode.RangeTable, fn func(rune)) {
	for _, r16 := range rt.R16 {
		for r := rune(r16.Lo); r <= rune(r16.Hi); r += rune(r16.Stride) {
			fn(r)
		}
	}
	for _, r32 := range rt.R32 {
		for r := rune(r32.Lo); r <= rune(r32.Hi); r += rune(r32.Stride) {
			fn(r)
		}
	}
}

const header = `// Code generated by running "go run -tags gen gen.go" in github.com/charlievieth/utext. DO NOT EDIT.

package tables

`

// maxDataLine is the maximum length of a quoted data string on one line.
const maxDataLine = 64

// writeGo writes the Go source of db to w. The output is not formatted.
func (db *database) writeGo(w *bytes.Buffer) {
	w.WriteString(header)
	w.WriteString("// UnicodeVersion is the Unicode version of the normalization and case\n" +
		"// mapping data.\n")
	fmt.Fprintf(w, "const UnicodeVersion = %q\n\n", db.Version)

	w.WriteString("var defaultDatabase = Database{\n" +
		"version: UnicodeVersion,\n" +
		"records: recordTable,\n" +
		"maps: mappingTables,\n" +
		"pairs: pairTable,\n" +
		"}\n\n")

	w.WriteString("var mappingTables = [numKinds]mappingTable{\n")
	for _, k := range kindNames {
		fmt.Fprintf(w, "%s: {entries: %sEntries, data: %sData},\n", k.Const, k.Var, k.Var)
	}
	w.WriteString("}\n\n")

	fmt.Fprintf(w, "// Size: %d entries\n", len(db.Records))
	w.WriteString("var recordTable = []recordRange{\n")
	for _, rr := range db.Records {
		fmt.Fprintf(w, "{0x%04x, 0x%04x, Record{%s, %d, 0x%02x}},\n",
			rr.Lo, rr.Hi, categoryConsts[rr.Cat], rr.CCC, rr.QC)
	}
	w.WriteString("}\n\n")

	for i, k := range kindNames {
		writeMapping(w, k.Var, db.Maps[i])
	}

	fmt.Fprintf(w, "// Size: %d entries\n", len(db.Pairs))
	w.WriteString("var pairTable = []pair{\n")
	for i, p := range db.Pairs {
		fmt.Fprintf(w, "{0x%x, 0x%04x},", p.Key, p.R)
		if i%3 == 2 || i == len(db.Pairs)-1 {
			w.WriteByte('\n')
		} else {
			w.WriteByte(' ')
		}
	}
	w.WriteString("}\n")
}

// writeMapping writes the sorted entries of m and the string they index.
func writeMapping(w *bytes.Buffer, name string, m map[rune]string) {
	keys := maps.Keys(m)
	slices.Sort(keys)

	var data strings.Builder
	fmt.Fprintf(w, "// Size: %d entries\n", len(keys))
	fmt.Fprintf(w, "var %sEntries = []mapping{\n", name)
	for i, r := range keys {
		s := m[r]
		fmt.Fprintf(w, "{0x%04x, %d, %d},", r, data.Len(), len(s))
		if i%4 == 3 || i == len(keys)-1 {
			w.WriteByte('\n')
		} else {
			w.WriteByte(' ')
		}
		data.WriteString(s)
	}
	w.WriteString("}\n\n")

	fmt.Fprintf(w, "// Size: %d bytes\n", data.Len())
	fmt.Fprintf(w, "const %sData string = \"\"", name)
	var line strings.Builder
	flush := func() {
		if line.Len() > 0 {
			fmt.Fprintf(w, " +\n\"%s\"", line.String())
			line.Reset()
		}
	}
	for _, r := range data.String() {
		q := strconv.QuoteToASCII(string(r))
		q = q[1 : len(q)-1]
		if line.Len()+len(q) > maxDataLine {
			flush()
		}
		line.WriteString(q)
	}
	flush()
	w.WriteString("\n\n")
}

func writeTemp(name string, b []byte) {
	dir, err := os.MkdirTemp("", "utext-gen-*")
	if err != nil {
		log.Panic(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b, 0644); err != nil {
		log.Panic(err)
	}
	log.Println("TMPFILE:", path)
}

// generate returns the formatted Go source of db.
func generate(db *database, name string) []byte {
	var w bytes.Buffer
	db.writeGo(&w)
	src, err := format.Source(w.Bytes())
	if err != nil {
		writeTemp(filepath.Base(name), w.Bytes())
		log.Panic(err)
	}
	return src
}

func runCommand(dir string, args ...string) {
	cmd := exec.Command("go", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Printf("Error:   %v", err)
		log.Printf("Command: %s", strings.Join(cmd.Args, " "))
		log.Printf("Output:  %s", bytes.TrimSpace(out))
		log.Panicf("Failed to build generated file: %v\n", err)
	}
}

// testBuild builds and tests the tables package with the generated file
// swapped in using an overlay, so a broken file is never written.
func testBuild(tablesFile string, data []byte, skipTests bool) {
	tablesFile, err := filepath.Abs(tablesFile)
	if err != nil {
		log.Panic(err)
	}
	dir, err := os.MkdirTemp("", "utext.*")
	if err != nil {
		log.Panic(err)
	}

	tables := filepath.Join(dir, filepath.Base(tablesFile))
	overlay := filepath.Join(dir, "overlay.json")

	type overlayJSON struct {
		Replace map[string]string
	}

	overlayData, err := json.Marshal(overlayJSON{
		Replace: map[string]string{
			tablesFile: tables,
		},
	})
	if err != nil {
		log.Panic(err)
	}

	if err := os.WriteFile(overlay, overlayData, 0644); err != nil {
		log.Panic(err)
	}
	if err := os.WriteFile(tables, data, 0644); err != nil {
		log.Panic(err)
	}

	pkgDir := filepath.Dir(tablesFile)
	runCommand(pkgDir, "build", "-overlay="+overlay, ".")
	if !skipTests {
		runCommand(pkgDir, "test", "-overlay="+overlay, ".")
	}

	os.RemoveAll(dir) // Only remove temp dir if successful
}

func dataEqual(filename string, data []byte) bool {
	got, err := os.ReadFile(filename)
	return err == nil && bytes.Equal(got, data)
}

func writeFile(name string, data []byte) {
	if dataEqual(name, data) {
		return
	}

	f, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+".tmp.*")
	if err != nil {
		log.Fatal(err)
	}
	tmp := f.Name()
	exit := func(err error) {
		os.Remove(tmp)
		log.Panic(err)
	}
	if err := f.Close(); err != nil {
		exit(err)
	}
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		exit(err)
	}
	if err := os.Rename(tmp, name); err != nil {
		exit(err)
	}
}

type options struct {
	Output    string
	DryRun    bool
	SkipBuild bool
	SkipTests bool
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	fs := flag.NewFlagSet("gentables", flag.ContinueOnError)
	fs.SetOutput(output)
	opts := &options{}
	fs.StringVarP(&opts.Output, "output", "o", filepath.Join("internal", "tables", "tables_gen.go"),
		"write the generated tables to this file")
	fs.BoolVar(&opts.DryRun, "dry-run", false,
		"report if generate would change the generated tables file and exit non-zero")
	fs.BoolVar(&opts.SkipBuild, "skip-build", false, "skip building the tables package (testing only)")
	fs.BoolVar(&opts.SkipTests, "skip-tests", false, "skip running tests")
	fs.Usage = func() {
		fmt.Fprint(output, "Usage: gentables [OPTION]...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}
	return opts, nil
}

func realMain(args []string) int {
	opts, err := parseFlags(args, os.Stdout)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		log.Println(err)
		return 2
	}

	// The case mappings come from the unicode package and the normalization
	// data from x/text so they must agree.
	if norm.Version != unicode.Version {
		log.Printf("Unicode version of golang.org/x/text/unicode/norm %q != unicode.Version %q",
			norm.Version, unicode.Version)
		return 1
	}

	src := generate(build(), opts.Output)
	if dataEqual(opts.Output, src) {
		log.Printf("exiting - no changes: %s", opts.Output)
		return 0
	}
	if opts.DryRun {
		log.Printf("WARN: would change %s "+
			"(remove -dry-run flag to update the generated files)", opts.Output)
		return 1
	}
	if opts.SkipBuild {
		log.Println("skipping go build")
	} else {
		testBuild(opts.Output, src, opts.SkipTests)
	}
	writeFile(opts.Output, src)
	log.Printf("successfully generated: %s (Unicode %s)", opts.Output, norm.Version)
	return 0
}

func main() {
	if code := realMain(os.Args[1:]); code != 0 {
		os.Exit(code)
	}
}
