//go:build mage

package main

import (
	"github.com/magefile/mage/sh"
)

// Installs the application.
func Install() error {
	version, err := sh.Output("git", "describe", "--always", "--long", "--dirty")
	if err != nil {
		return err
	}
	return sh.Run("go", "install", "-ldflags", "-X main.version="+version)
}

// Creates an executable for the current platform.
func Build() error {
	version, err := sh.Output("git", "describe", "--always", "--long", "--dirty")
	if err != nil {
		return err
	}
	return sh.Run("go", "build", "-ldflags", "-X main.version="+version)
}

// Runs the test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}
