// Package editor runs external programs on a selected file.
package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/skratchdot/open-golang/open"

	"github.com/LFroesch/burrow/internal/config"
	"github.com/LFroesch/burrow/internal/logger"
)

// SystemDefault is the program name that hands the file to the platform's
// default opener instead of a named executable.
const SystemDefault = "@system"

// Choice is one entry of the "open with" menu.
type Choice struct {
	Label   string
	Program string
}

// Choices builds the menu from the configured editors.
func Choices(editors []config.Editor, systemOpener bool) []Choice {
	choices := make([]Choice, 0, len(editors)+1)
	for _, e := range editors {
		choices = append(choices, Choice{Label: e.Label, Program: e.Program})
	}
	if systemOpener {
		choices = append(choices, Choice{Label: "Open with system default", Program: SystemDefault})
	}
	return choices
}

// Launcher starts program on path and returns once it has exited.
type Launcher interface {
	Launch(path, program string) error
}

// ExecLauncher runs programs as child processes. Their stdout and stderr go
// to the null device; their exit status is ignored.
type ExecLauncher struct {
	Stdin io.Reader
}

// NewExecLauncher returns a launcher reading from the process's stdin.
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{Stdin: os.Stdin}
}

// SetStdin replaces the reader handed to child processes.
func (l *ExecLauncher) SetStdin(r io.Reader) {
	l.Stdin = r
}

// Launch blocks until the program exits. It fails only when the program
// cannot be found or started.
func (l *ExecLauncher) Launch(path, program string) error {
	log := logger.WithField("program", program).WithField("path", path)

	if program == SystemDefault {
		err := ignoreExitStatus(open.Run(path))
		if err != nil {
			log.WithError(err).Warn("system opener failed")
			return fmt.Errorf("open %s: %w", path, err)
		}
		return nil
	}

	resolved, err := exec.LookPath(program)
	if err != nil {
		log.WithError(err).Warn("editor not found")
		return fmt.Errorf("launch %s: %w", program, err)
	}

	cmd := exec.Command(resolved, path)
	cmd.Stdin = l.Stdin
	// nil Stdout/Stderr means the null device

	log.Debug("launching editor")
	if err := ignoreExitStatus(cmd.Run()); err != nil {
		log.WithError(err).Warn("editor failed to start")
		return fmt.Errorf("launch %s: %w", program, err)
	}
	return nil
}

func ignoreExitStatus(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}
