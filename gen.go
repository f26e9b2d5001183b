//go:build gen
// +build gen

// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// gen regenerates internal/tables/tables_gen.go with internal/gentables and
// then checks the tables against the Unicode Character Database with
// internal/ucdcheck: go run -tags gen gen.go [gentables flags]
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
)

var projectRoot = sync.OnceValue(func() string {
	cmd := exec.Command("go", "list", "-f", "{{.Dir}}", "github.com/charlievieth/utext")
	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Fatalf("error running command %q: %v\n\n%s\n",
			cmd.Args, err, bytes.TrimSpace(out))
	}
	dir := string(bytes.TrimSpace(out))
	if _, err := os.Stat(dir); err != nil {
		log.Fatal(err)
	}
	return dir
})

func buildTool(name string) string {
	exe := filepath.Join(projectRoot(), "bin", name)
	if runtime.GOOS == "windows" {
		exe += ".exe"
	}
	cmd := exec.Command("go", "build", "-o", exe, "./internal/"+name)
	cmd.Dir = projectRoot()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		log.Fatalf("error running command %q: %v", cmd.Args, err)
	}
	return exe
}

func runTool(exe string, args ...string) error {
	cmd := exec.Command(exe, args...)
	cmd.Dir = projectRoot()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error running command %q: %w", cmd.Args, err)
	}
	return nil
}

func realMain(args []string) int {
	gentables := buildTool("gentables")
	ucdcheck := buildTool("ucdcheck")
	if err := runTool(gentables, args...); err != nil {
		log.Println(err)
		return 1
	}
	if err := runTool(ucdcheck); err != nil {
		log.Println(err)
		return 1
	}
	return 0
}

func main() {
	log.SetPrefix("gen: ")
	log.SetFlags(log.Lshortfile)
	if code := realMain(os.Args[1:]); code != 0 {
		log.Fatal("exit:", code)
	}
}
