package editor

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
)

// Launch runs the editor command with the terminal attached. A non-zero
// exit is reported to the caller; the session that produced the selection
// has already ended by then.
func Launch(cmd Command) error {
	if _, err := exec.LookPath(cmd.Program); err != nil {
		return fmt.Errorf("editor %s not found: %w", cmd.Program, err)
	}

	log.Printf("launching %s %s", cmd.Program, strings.Join(cmd.Args, " "))
	c := exec.Command(cmd.Program, cmd.Args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("editor %s failed: %w", cmd.Program, err)
	}
	return nil
}
