// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package office re-encodes legacy spreadsheets with a LibreOffice CLI.
// It is the fallback path when a BIFF .xls workbook cannot be parsed
// directly: the file is converted to .xlsx next to the source and read again.
package office

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	binSoffice     = "soffice"
	binLibreoffice = "libreoffice"
)

// ErrNotFound is returned when no LibreOffice binary is available.
var ErrNotFound = errors.New("LibreOffice CLI not found")

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) error
	Stat(path string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run discards the converter's stdout and stderr; only the exit status matters.
func (o *osExecutor) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

func (o *osExecutor) Stat(path string) error {
	_, err := os.Stat(path)
	return err
}

// Office converts spreadsheets with a resolved LibreOffice binary.
type Office struct {
	bin    string
	outDir string
	exec   executor
}

// Option configures Detect.
type Option func(*config)

type config struct {
	binary string
	outDir string
}

// WithBinary uses an explicit converter binary instead of PATH lookup.
func WithBinary(bin string) Option {
	return func(c *config) { c.binary = bin }
}

// WithOutputDir writes converted files to dir instead of the source's directory.
func WithOutputDir(dir string) Option {
	return func(c *config) { c.outDir = dir }
}

var defaultExec = &osExecutor{}

// Detect resolves the converter binary: an explicit binary when configured,
// otherwise soffice, then libreoffice. It returns ErrNotFound when none exists.
func Detect(opts ...Option) (*Office, error) {
	return detect(defaultExec, opts...)
}

func detect(exec executor, opts ...Option) (*Office, error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	candidates := []string{binSoffice, binLibreoffice}
	if cfg.binary != "" {
		candidates = []string{cfg.binary}
	}

	for _, c := range candidates {
		path, err := exec.LookPath(c)
		if err != nil {
			continue
		}
		return &Office{bin: path, outDir: cfg.outDir, exec: exec}, nil
	}

	return nil, fmt.Errorf("%w: looked for %s", ErrNotFound, strings.Join(candidates, ", "))
}

// Name returns the resolved binary path.
func (o *Office) Name() string { return o.bin }

// ConvertToXLSX re-encodes src as .xlsx and returns the path of the new file.
func (o *Office) ConvertToXLSX(ctx context.Context, src string) (string, error) {
	outDir := o.outDir
	if outDir == "" {
		outDir = filepath.Dir(src)
	}

	args := []string{"--headless", "--convert-to", "xlsx", src, "--outdir", outDir}
	if err := o.exec.Run(ctx, o.bin, args...); err != nil {
		return "", fmt.Errorf("converting %s with %s: %w", src, o.bin, err)
	}

	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	out := filepath.Join(outDir, base+".xlsx")
	if err := o.exec.Stat(out); err != nil {
		return "", fmt.Errorf("%s produced no output for %s: %w", o.bin, src, err)
	}
	return out, nil
}
