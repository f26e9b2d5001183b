// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// ucdcheck downloads the Unicode Character Database files of a Unicode
// version and checks the utext tables and normalization against them.
//
// The files are cached so that subsequent runs do not use the network.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	flag "github.com/spf13/pflag"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/term"

	"github.com/charlievieth/utext/internal/tables"
)

func init() {
	log.SetPrefix("ucdcheck: ")
	log.SetFlags(log.Lshortfile)
	log.SetOutput(os.Stderr)
}

const (
	unicodeDataFile       = "UnicodeData.txt"
	caseFoldingFile       = "CaseFolding.txt"
	normalizationTestFile = "NormalizationTest.txt"
)

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "utext", "ucd")
}

type config struct {
	Version   string
	CacheDir  string
	BaseURL   string
	Offline   bool
	MaxErrors int
	Timeout   time.Duration
	Checks    []string
}

func parseFlags(args []string, output io.Writer) (*config, error) {
	fs := flag.NewFlagSet("ucdcheck", flag.ContinueOnError)
	fs.SetOutput(output)
	conf := &config{}
	fs.StringVarP(&conf.Version, "unicode", "u", tables.UnicodeVersion, "Unicode version to check against")
	fs.StringVar(&conf.CacheDir, "cache-dir", defaultCacheDir(), "directory UCD files are cached in")
	fs.StringVar(&conf.BaseURL, "base-url", "https://www.unicode.org/Public", "base URL of the UCD")
	fs.BoolVar(&conf.Offline, "offline", false, "only use cached files")
	fs.IntVarP(&conf.MaxErrors, "max-errors", "n", 50, "stop after this many failures (0 for no limit)")
	fs.DurationVar(&conf.Timeout, "timeout", 5*time.Minute, "download timeout")
	fs.StringSliceVar(&conf.Checks, "check", []string{"data", "fold", "norm"}, "checks to run")
	fs.Usage = func() {
		fmt.Fprint(output, "Usage: ucdcheck [OPTION]...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	for _, c := range conf.Checks {
		if _, ok := checkFiles[c]; !ok {
			return nil, fmt.Errorf("invalid check: %q", c)
		}
	}
	return conf, nil
}

var checkFiles = map[string]string{
	"data": unicodeDataFile,
	"fold": caseFoldingFile,
	"norm": normalizationTestFile,
}

func (c *config) filename(name string) string {
	return filepath.Join(c.CacheDir, c.Version, name)
}

func run(ctx context.Context, conf *config) ([]failure, error) {
	client := &http.Client{Timeout: conf.Timeout}
	isTerm := term.IsTerminal(int(os.Stderr.Fd()))
	chk := checker{
		maxErrors: conf.MaxErrors,
		newBar: func(n int, desc string) *progressbar.ProgressBar {
			if !isTerm {
				return progressbar.DefaultSilent(int64(n), desc)
			}
			return progressbar.Default(int64(n), desc)
		},
	}
	for _, check := range conf.Checks {
		name := checkFiles[check]
		filename := conf.filename(name)
		if conf.Offline {
			if _, err := os.Stat(filename); err != nil {
				return nil, fmt.Errorf("offline: %w", err)
			}
		} else {
			cached, err := fetch(ctx, client, fileURL(conf.BaseURL, conf.Version, name), filename)
			if err != nil {
				return nil, err
			}
			if !cached {
				log.Printf("downloaded: %s", filename)
			}
		}
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		switch check {
		case "data":
			var ranges []unicodeDataRange
			if ranges, err = parseUnicodeData(f); err == nil {
				chk.checkUnicodeData(ranges)
			}
		case "fold":
			var folds []caseFolding
			if folds, err = parseCaseFolding(f); err == nil {
				chk.checkCaseFolding(folds)
			}
		case "norm":
			var tests []normalizationTest
			if tests, err = parseNormalizationTest(f); err == nil {
				chk.checkNormalization(tests)
			}
		}
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return chk.failures, nil
}

// summarize returns the number of failures per check in check order.
func summarize(failures []failure) ([]string, map[string]int) {
	counts := make(map[string]int)
	for _, f := range failures {
		counts[f.Check]++
	}
	names := maps.Keys(counts)
	slices.Sort(names)
	return names, counts
}

func realMain(args []string) int {
	conf, err := parseFlags(args, os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		log.Println(err)
		return 2
	}
	if conf.Version != tables.UnicodeVersion {
		log.Printf("warning: checking Unicode %s tables against version %s",
			tables.UnicodeVersion, conf.Version)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failures, err := run(ctx, conf)
	if err != nil {
		log.Println(err)
		return 1
	}
	if len(failures) == 0 {
		fmt.Printf("ok: Unicode %s\n", conf.Version)
		return 0
	}

	isTerm := term.IsTerminal(int(os.Stdout.Fd()))
	red := func(s string) string {
		if !isTerm {
			return s
		}
		return "\x1b[31;m" + s + "\x1b[0;m"
	}
	for _, f := range failures {
		fmt.Printf("%s: %s\n", red(f.Check), f.Msg)
	}
	names, counts := summarize(failures)
	for _, name := range names {
		fmt.Printf("%s: %d failures\n", name, counts[name])
	}
	return 1
}

func main() {
	os.Exit(realMain(os.Args[1:]))
}
