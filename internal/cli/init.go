package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/treykane/cli-blocks/internal/blocks"
	"github.com/treykane/cli-blocks/internal/config"
)

func (c *CLI) initCommand() *cobra.Command {
	var (
		force      bool
		setDefault bool
	)

	cmd := &cobra.Command{
		Use:   "init <document>",
		Short: "Write the sample block document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.NormalizeDocumentPath(args[0])
			if err != nil {
				return fmt.Errorf("invalid document: %w", err)
			}
			if err := writeSample(path, force); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Wrote %s\n", path)

			if setDefault {
				if err := saveDefaultDocument(path); err != nil {
					return err
				}
				fmt.Fprintln(c.out, "Set as default document")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing document")
	cmd.Flags().BoolVar(&setDefault, "set-default", false, "open this document when blocks runs without arguments")
	return cmd
}

// writeSample writes the sample document to path. Existing files are only
// replaced when force is set.
func writeSample(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create document dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(blocks.SampleDocument()), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	log.Info("wrote sample document", "path", path)
	return nil
}

// saveDefaultDocument records path as the configured document, keeping the
// rest of the config.
func saveDefaultDocument(path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Document = path
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}
