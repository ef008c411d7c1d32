// Package opener hands saved decks to the desktop application registered
// for presentations.
package opener

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/fredcamaral/pptxgen/internal/domain/entities"
	"github.com/fredcamaral/pptxgen/internal/domain/ports"
)

// Viewer is a program that can display a .pptx file
type Viewer struct {
	Name    string
	Command string
	Args    func(path string) []string
}

// Opener implements ports.DeckOpener
type Opener struct {
	viewers []Viewer
}

// NewOpener creates an opener with the viewers known for this platform
func NewOpener() *Opener {
	return &Opener{viewers: platformViewers(runtime.GOOS)}
}

// Open starts the first available viewer on path and returns without
// waiting for it to exit
func (o *Opener) Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		return entities.NewNotFoundError("open deck", path, err)
	}

	viewer, err := o.selectViewer()
	if err != nil {
		return fmt.Errorf("viewer selection: %w", err)
	}

	cmd := exec.Command(viewer.Command, viewer.Args(path)...) // #nosec G204 - command comes from the fixed viewer table
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching %s: %w", viewer.Name, err)
	}

	// Don't wait for the viewer to close
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}

// selectViewer returns the first viewer whose executable is in PATH
func (o *Opener) selectViewer() (*Viewer, error) {
	if len(o.viewers) == 0 {
		return nil, errors.New("no viewers known for this platform")
	}

	for _, candidate := range o.viewers {
		if _, err := exec.LookPath(candidate.Command); err == nil {
			return &candidate, nil
		}
	}

	return nil, errors.New("no presentation viewer found on this system")
}

func platformViewers(goos string) []Viewer {
	pathOnly := func(path string) []string { return []string{path} }

	switch goos {
	case "darwin":
		return []Viewer{
			{Name: "Default", Command: "open", Args: pathOnly},
		}
	case "linux", "freebsd", "openbsd":
		return []Viewer{
			{Name: "xdg-open", Command: "xdg-open", Args: pathOnly},
			{Name: "LibreOffice Impress", Command: "soffice", Args: func(path string) []string {
				return []string{"--impress", path}
			}},
			{Name: "LibreOffice Impress", Command: "libreoffice", Args: func(path string) []string {
				return []string{"--impress", path}
			}},
		}
	case "windows":
		return []Viewer{
			{Name: "Default", Command: "cmd", Args: func(path string) []string {
				return []string{"/c", "start", "", path}
			}},
		}
	default:
		return nil
	}
}

var _ ports.DeckOpener = (*Opener)(nil)
