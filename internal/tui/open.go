package tui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener invokes an external PDF viewer for a result's source file.
type Opener interface {
	Open(path string, page int) error
}

// SystemOpener shells out to the platform's document opener. Neither Preview
// nor xdg-open accepts a target page, so page is currently unused.
type SystemOpener struct{}

func (SystemOpener) Open(path string, page int) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", "-a", "Preview", path).Start()
	case "linux":
		return exec.Command("xdg-open", path).Start()
	default:
		return fmt.Errorf("no PDF viewer integration for %s", runtime.GOOS)
	}
}
