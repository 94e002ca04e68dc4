package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhansendev/drawnet/pkg/render/surface"
)

// newFontsCmd creates the fonts command for listing fonts available to
// the raster surface. The optional argument filters by substring.
func newFontsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts [filter]",
		Short: "List system fonts usable for raster labels",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = strings.ToLower(args[0])
			}

			names := make([]string, 0, 64)
			for _, path := range surface.ListFonts() {
				name := filepath.Base(path)
				if filter != "" && !strings.Contains(strings.ToLower(name), filter) {
					continue
				}
				names = append(names, name)
			}
			sort.Strings(names)

			if len(names) == 0 {
				printWarning("No matching fonts found; PNG output falls back to the embedded default face")
				return nil
			}
			fmt.Println(StyleTitle.Render("Available fonts"))
			for _, name := range names {
				fmt.Println("  " + StyleValue.Render(name))
			}
			printInfo("%d font(s); pass a name to render --font", len(names))
			return nil
		},
	}
}
