package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zehraz1/portfolio/internal/wrap"
)

var wrapCmd = &cobra.Command{
	Use:   "wrap [file]",
	Short: "Wrap text the way the editor does",
	Long: `Wrap a file (or stdin) into lines of at most --width characters, using
the same rules as the editor view. Characters are counted as grapheme
clusters.

Examples:
  portfolio wrap notes.txt --width 40
  echo "some long text" | portfolio wrap --width 10 --numbers`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWrap,
}

func init() {
	rootCmd.AddCommand(wrapCmd)

	wrapCmd.Flags().IntP("width", "w", 80, "maximum characters per line")
	wrapCmd.Flags().BoolP("numbers", "n", false, "prefix lines with line numbers")
}

func runWrap(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	numbers, _ := cmd.Flags().GetBool("numbers")
	if width < 1 {
		return fmt.Errorf("--width must be at least 1, got %d", width)
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	// a trailing newline ends the last line rather than adding an empty one
	lines := wrap.Lines(strings.TrimSuffix(string(data), "\n"), width)
	if numbers {
		lines = wrap.Numbered(lines)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return err
		}
	}
	return nil
}
