package ui

import (
	"fmt"
	"os"

	"github.com/noborus/ov/oviewer"

	"idseek/internal/domain"
)

// PageFile shows the file behind a match in the ov pager so the user can
// read the surrounding code before committing to an editor launch.
func PageFile(m domain.Match) error {
	f, err := os.Open(m.File)
	if err != nil {
		return fmt.Errorf("cannot view %s: %w", m.File, err)
	}
	defer f.Close()

	root, err := oviewer.NewRoot(f)
	if err != nil {
		return err
	}

	// Leave the screen alone on exit; the caller redraws
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
