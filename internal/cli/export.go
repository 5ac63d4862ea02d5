package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/habitrack/internal/dateutil"
)

type ExportCmd struct {
	File   string `arg:"" optional:"" help:"Output file; defaults to habitrack-YYYY-MM-DD.json."`
	Stdout bool   `help:"Write to stdout instead of a file."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	if c.Stdout {
		return ctx.Store.Export(os.Stdout)
	}

	path := c.File
	if path == "" {
		path = fmt.Sprintf("habitrack-%s.json", dateutil.Format(ctx.Tracker.Now()))
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := ctx.Store.Export(f); err != nil {
		return err
	}

	fmt.Printf("Exported data to %s\n", path)
	return nil
}
