//go:build mage

// Package main contains Mage build targets for austral-map developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// projectDirs lists the directories the conversions read from and write to.
var projectDirs = []string{
	"docs/planes_pdf",
	"docs/planes_json",
}

const (
	binDir       = "bin"
	binName      = "austral-map"
	cmdPkg       = "./cmd/austral-map"
	planWorkbook = "docs/planes_pdf/planes_parseados.xlsx"
)

// Init creates the docs directories used by the plans conversion.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + gitVersion()
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return err
	}
	fmt.Println("Built", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Plans converts the default plan workbook into docs/planes_json.
func Plans() error {
	mg.Deps(Init, Build)
	if _, err := os.Stat(planWorkbook); err != nil {
		return fmt.Errorf("plan workbook: %w", err)
	}
	return sh.RunV(filepath.Join(binDir, binName), "plans", planWorkbook, "--summary")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

func gitVersion() string {
	v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || strings.TrimSpace(v) == "" {
		return "dev"
	}
	return strings.TrimSpace(v)
}
