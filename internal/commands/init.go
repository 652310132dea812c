package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerload/internal/config"
)

func newInitCommand() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default " + config.DefaultPath,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(dir, prefix)
		},
	}

	cmd.Flags().StringVar(&prefix, "journal-prefix", "", "journal number prefix (default MY-)")

	return cmd
}

func runInit(dir, prefix string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, config.DefaultPath)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	cfg := config.Default()
	if prefix != "" {
		cfg.JournalPrefix = prefix
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
