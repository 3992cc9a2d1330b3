//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the huffpack command into ./bin.
func Build() error {
	mg.Deps(Vet)
	fmt.Println("Building huffpack executable...")
	return goCmd("build", "-o", "./bin/huffpack", "./cmd/huffpack")
}

// Test runs the unit tests.
func Test() error {
	fmt.Println("Running tests...")
	return goCmd("test", "./...")
}

// Vet runs go vet over every package.
func Vet() error {
	return goCmd("vet", "./...")
}

func goCmd(args ...string) error {
	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
