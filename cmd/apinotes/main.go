package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"apinotes/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "apinotes",
	Short: "Inspect API notes override records",
	Long:  `apinotes encodes and decodes the packed nullability payloads carried by API notes method records`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor decides colorization for the writer the command actually prints
// to: "auto" only colorizes when that writer is a terminal, so redirected
// output stays plain even while the process stdout is a tty.
func useColor(cmd *cobra.Command, out io.Writer) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	switch colorFlag {
	case "on":
		return true
	case "auto":
		if f, ok := out.(*os.File); ok {
			return isTerminal(f)
		}
	}
	return false
}
