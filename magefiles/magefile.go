//go:build mage

// Package main contains Mage build targets for toolshed developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "toolshed"
	cmdPkg  = "./cmd/toolshed"
)

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the CLI binary into bin/. The sqlite driver needs cgo.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunWithV(buildEnv, "go", "build", "-ldflags", ldflags(), "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

var buildEnv = map[string]string{"CGO_ENABLED": "1"}

// ldflags stamps the version reported by "toolshed version".
func ldflags() string {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	return "-X main.version=" + version
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Check runs vet and then the tests.
func Check() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	mg.Deps(Test)
	return nil
}

// Install compiles the CLI into GOBIN with the same flags as Build.
func Install() error {
	return sh.RunWithV(buildEnv, "go", "install", "-ldflags", ldflags(), cmdPkg)
}

// Clean removes build output and the local store.
func Clean() error {
	for _, p := range []string{binDir, ".toolshed"} {
		if err := sh.Rm(p); err != nil {
			return err
		}
	}
	return nil
}

// Stats prints non-blank Go line counts per package, production and tests.
func Stats() error {
	prod, tests, err := countGoLines(".")
	if err != nil {
		return err
	}

	pkgs := make([]string, 0, len(prod))
	for p := range prod {
		pkgs = append(pkgs, p)
	}
	for p := range tests {
		if _, ok := prod[p]; !ok {
			pkgs = append(pkgs, p)
		}
	}
	sort.Strings(pkgs)

	var totalProd, totalTest int
	for _, p := range pkgs {
		fmt.Printf("%-24s %6d %6d\n", p, prod[p], tests[p])
		totalProd += prod[p]
		totalTest += tests[p]
	}
	fmt.Printf("%-24s %6d %6d\n", "total", totalProd, totalTest)
	return nil
}

// countGoLines walks root and counts non-blank lines in Go files, keyed by
// package directory. Underscore and dot directories are skipped, as the go
// tool does.
func countGoLines(root string) (prod, tests map[string]int, err error) {
	prod = map[string]int{}
	tests = map[string]int{}
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == binDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := 0
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				n++
			}
		}
		dir := filepath.Dir(path)
		if strings.HasSuffix(path, "_test.go") {
			tests[dir] += n
		} else {
			prod[dir] += n
		}
		return nil
	})
	return prod, tests, err
}
