package core

import (
	"log"
	"os"
	"path/filepath"
)

// Getwd tries to find the project root, i.e. the closest parent directory holding go.mod.
// go-test changes the working directory to the test package being run, so config files
// must not be resolved against os.Getwd() directly.
// Falls back to the working directory when no go.mod is found (eg. a deployed binary).
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	currDir := wd
	for {
		if fi, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil && !fi.IsDir() {
			return currDir
		}
		newDir := filepath.Dir(currDir)
		if newDir == currDir {
			return wd
		}
		currDir = newDir
	}
}
