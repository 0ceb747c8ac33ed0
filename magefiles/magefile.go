//go:build mage

// Package main provides build targets for lvmaze using Mage.
//
// Usage:
//
//	mage build   Compile the lvmaze binary to bin/
//	mage test    Run all tests with the race detector
//	mage cover   Write coverage.out and print the per-function summary
//	mage lint    Run go vet and golangci-lint
//	mage clean   Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "lvmaze"
	binaryDir  = "bin"
	cmdDir     = "./cmd/lvmaze"
	coverFile  = "coverage.out"
)

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the lvmaze binary to bin/, stamping the version from
// LVMAZE_VERSION when set.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	version := os.Getenv("LVMAZE_VERSION")
	if version == "" {
		version = "dev"
	}
	return sh.RunV(binGo, "build", "-v",
		"-ldflags", "-X main.version="+version,
		"-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs every package's tests with the race detector.
func Test() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Cover runs the tests with coverage.
func Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile="+coverFile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+coverFile)
}

// Lint runs go vet, then golangci-lint.
func Lint() error {
	if err := sh.RunV(binGo, "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV(binLint, "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	mg.Deps(cleanCover)
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

func cleanCover() error {
	return sh.Rm(coverFile)
}
