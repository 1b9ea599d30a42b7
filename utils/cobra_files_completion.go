package utils

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// CaseFileExtensions are the file extensions offered for --case completion.
var CaseFileExtensions = []string{".yaml", ".yml"}

// CompleteFilesByExtension completes directories and files ending in one of
// extensions, relative to the directory being typed.
func CompleteFilesByExtension(extensions []string) func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		dir, prefix := filepath.Split(toComplete)
		if dir == "" {
			dir = "."
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var suggestions []string
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") || !strings.HasPrefix(name, prefix) {
				continue
			}

			suggestion := name
			if dir != "." {
				suggestion = filepath.Join(dir, name)
			}

			switch {
			case entry.IsDir():
				suggestions = append(suggestions, suggestion+"/")
			case HasExtension(name, extensions):
				suggestions = append(suggestions, suggestion)
			}
		}

		slices.Sort(suggestions)
		return suggestions, cobra.ShellCompDirectiveNoFileComp
	}
}

func HasExtension(filename string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return slices.Contains(extensions, ext)
}
