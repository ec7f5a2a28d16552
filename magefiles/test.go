//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

const coverProfile = "coverage.out"

// Runs the unit tests.
func (Test) Unit() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs the unit tests with the race detector.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

// Runs the unit tests and prints a per-function coverage summary.
func (Test) Cover() error {
	mg.Deps(Build.Vet)
	if _, err := executeCmd("go", withArgs("test", "-coverprofile="+coverProfile, "./..."), withStream()); err != nil {
		return err
	}
	out, err := executeCmd("go", withArgs("tool", "cover", "-func="+coverProfile))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
