package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/floppy/internal/disk"
)

// completeImageNames provides shell completion for floppy disk images on the
// configured drive.
func completeImageNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	drive, err := disk.NewDrive(cfg.Disk)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	images, err := drive.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return filterPrefix(images, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func filterPrefix(names []string, prefix string) []string {
	var matches []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}
