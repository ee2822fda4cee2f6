//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the metamock project using Mage.
//
// Usage:
//
//	mage build            Compile metamock binary to bin/
//	mage test:all         Run all tests (unit + integration)
//	mage test:unit        Run only unit tests (exclude integration)
//	mage test:integration Run only integration tests (builds first)
//	mage test:cover       Run unit tests with a coverage profile
//	mage lint             Run golangci-lint
//	mage clean            Remove build artifacts
//	mage install          Install metamock to GOPATH/bin
//	mage stats            Print Go LOC as a JSON record
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "metamock"
	binaryDir  = "bin"
	cmdDir     = "./cmd/metamock"
)

// Build compiles the metamock binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Fixtures builds the binary and writes the starter fixture file into
// .metamock/ unless one already exists.
func Fixtures() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName), "init")
}
