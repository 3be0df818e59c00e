// Package cli implements the blocks command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/treykane/cli-blocks/internal/app"
	"github.com/treykane/cli-blocks/internal/blocks"
	"github.com/treykane/cli-blocks/internal/config"
	"github.com/treykane/cli-blocks/internal/logging"
)

var version = "dev" // set via -ldflags "-X github.com/treykane/cli-blocks/internal/cli.version=..."

var log = logging.New("cli")

// CLI holds shared state for all commands.
type CLI struct {
	out    io.Writer
	errOut io.Writer

	// runProgram drives the editor until it exits. Tests replace it.
	runProgram func(ctx context.Context, m *app.Model) error
}

// New creates a CLI writing command output to out and warnings to errOut.
func New(out, errOut io.Writer) *CLI {
	return &CLI{out: out, errOut: errOut, runProgram: runTea}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var rtl bool

	root := &cobra.Command{
		Use:   "blocks [document]",
		Short: "Edit nested block documents in the terminal",
		Long: `blocks opens a block document (TOML) in a two-pane terminal editor. The
selected block gets a floating toolbar with its breadcrumb and a button to
navigate up to the parent block.

Without a document argument the document from ~/.cli-blocks/config.json is
opened, or a sample document when none is configured.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.openEditor(cmd.Context(), args, rtl)
		},
	}
	root.Flags().BoolVar(&rtl, "rtl", false, "use a right-to-left layout")

	root.AddCommand(c.outlineCommand())
	root.AddCommand(c.initCommand())
	return root
}

// openEditor resolves the document and runs the TUI on it.
func (c *CLI) openEditor(ctx context.Context, args []string, rtl bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if rtl {
		cfg.RTL = true
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	store, path, err := resolveDocument(arg, cfg)
	if err != nil {
		return err
	}

	model := app.New(app.Options{Store: store, DocumentPath: path, Config: cfg})
	runErr := c.runProgram(ctx, model)
	model.Close()
	if model.Modified() {
		fmt.Fprintln(c.errOut, "warning: unsaved changes were discarded")
	}
	return runErr
}

func runTea(ctx context.Context, m *app.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// loadConfig reads the user config, falling back to defaults when none
// has been saved yet.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNotConfigured) {
		return config.Default(), nil
	}
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveDocument picks the document to edit: the argument, then the
// configured document, then the sample. A path that does not exist yet
// opens the sample and is created on the first write.
func resolveDocument(arg string, cfg config.Config) (*blocks.Store, string, error) {
	path := cfg.Document
	if arg != "" {
		normalized, err := config.NormalizeDocumentPath(arg)
		if err != nil {
			return nil, "", fmt.Errorf("invalid document: %w", err)
		}
		path = normalized
	}
	if path == "" {
		log.Debug("no document configured, opening sample")
		return blocks.Sample(), "", nil
	}

	store, err := blocks.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Info("document does not exist yet, starting from sample", "path", path)
		return blocks.Sample(), path, nil
	}
	if err != nil {
		return nil, "", err
	}
	return store, path, nil
}
