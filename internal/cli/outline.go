package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treykane/cli-blocks/internal/blocks"
	"github.com/treykane/cli-blocks/internal/breadcrumb"
	"github.com/treykane/cli-blocks/internal/config"
)

const defaultOutlineWidth = 60

func (c *CLI) outlineCommand() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "outline <document>",
		Short: "Print the block tree with each block's breadcrumb",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.NormalizeDocumentPath(args[0])
			if err != nil {
				return fmt.Errorf("invalid document: %w", err)
			}
			store, err := blocks.Load(path)
			if err != nil {
				return err
			}
			return writeOutline(c.out, store, width)
		},
	}
	cmd.Flags().IntVar(&width, "width", defaultOutlineWidth, "maximum breadcrumb width in columns")
	return cmd
}

// writeOutline prints one line per block, depth-first: the indented title
// followed by the breadcrumb as the toolbar would show it.
func writeOutline(w io.Writer, store *blocks.Store, width int) error {
	crumbs := breadcrumb.New(store)
	rtl := store.Settings().IsRTL

	var walk func(parent string, depth int) error
	walk = func(parent string, depth int) error {
		for _, id := range store.Order(parent) {
			block, _ := store.Block(id)
			title := strings.Repeat("  ", depth) + breadcrumb.Title(block.Name)
			if _, err := fmt.Fprintf(w, "%-24s %s\n", title, crumbs.Render(id, width, rtl)); err != nil {
				return err
			}
			if err := walk(id, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk("", 0)
}
