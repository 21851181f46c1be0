//go:build stave

package main

import (
	"fmt"
	"strings"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target when running `stave` with no arguments.
var Default = All

// Aliases for common targets.
var Aliases = map[string]interface{}{
	"b": Build,
	"t": Test,
	"c": Clean,
}

// All runs vet, test and build.
func All() error {
	st.Deps(Vet, Test)
	st.Deps(Build)
	return nil
}

// Build compiles bin/huric with version information.
func Build() error {
	rebuild, err := target.Glob("bin/huric", "**/*.go", "**/*.sql", "go.mod", "go.sum")
	if err != nil {
		return fmt.Errorf("checking rebuild: %w", err)
	}
	if !rebuild {
		if st.Verbose() {
			fmt.Println("huric is up to date")
		}
		return nil
	}

	return sh.RunV("go", "build", "-ldflags", buildLdflags(), "-o", "bin/huric", "./cmd/huric")
}

// buildLdflags returns ldflags for version injection.
func buildLdflags() string {
	tag, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")

	return fmt.Sprintf(
		"-X main.BuildTag=%s -X main.BuildCommit=%s",
		strings.TrimSpace(tag),
		strings.TrimSpace(commit),
	)
}

// Test runs all tests with coverage.
func Test() error {
	return sh.RunV("go", "test", "-cover", "./...")
}

// Vet runs go vet on all packages.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin/")
}

// Convert builds huric and converts the default datasets. HURIC_DATA_PATH
// and HURIC_CONLL_PATH are read by huric itself.
func Convert() error {
	st.Deps(Build)
	return sh.RunV("./bin/huric")
}
