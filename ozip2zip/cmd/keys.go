package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/YoshihikoAbe/ozip2zip/keyring"
	"github.com/spf13/cobra"
)

// keysCmd represents the keys command
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the candidate key table",
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)

	// Cobra supports local flags which will only run when this command
	// is called directly, e.g.:
	// keysCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
	keysCmd.Flags().BoolP("json", "j", false, "Print the table as a key file")
}

func runKeys(cmd *cobra.Command, args []string) {
	ks, err := getKeySource()
	if err != nil {
		fatal("failed to initialize key source:", err)
	}
	table := ks.Candidates()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		b, err := json.MarshalIndent(keyring.MemoryKeySource{Name: "ozip2zip", Keys: table}, "", " ")
		if err != nil {
			fatal(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return
	}

	for i, key := range table {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", i, key, key.Label())
	}
}
