package cmd

import (
	"fmt"
	"os"

	"github.com/YoshihikoAbe/ozip2zip/ozip"
	"github.com/spf13/cobra"
)

// identifyCmd represents the identify command
var identifyCmd = &cobra.Command{
	Use:   "identify FILES...",
	Short: "Find the key of OZIP containers without decrypting them",
	Args:  cobra.MinimumNArgs(1),
	Run:   runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) {
	ks, err := getKeySource()
	if err != nil {
		fatal("failed to initialize key source:", err)
	}
	table := ks.Candidates()

	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			fatal(err)
		}
		key, err := ozip.Identify(f, ks)
		f.Close()
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), name+":", err)
			continue
		}

		line := fmt.Sprintf("%s: key %d %s", name, table.Index(key), key)
		if label := key.Label(); label != "" {
			line += " (" + label + ")"
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}
