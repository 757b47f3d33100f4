package cmd

import (
	"fmt"

	"github.com/YoshihikoAbe/ozip2zip/keyring"
	"github.com/YoshihikoAbe/ozip2zip/ozip"
	"github.com/spf13/cobra"
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt FILES...",
	Short: "Pack ZIP archives into OZIP containers",
	Long: `Pack ZIP archives into OZIP containers, written as FILE.ozip.
The first candidate key is used unless --key is given.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runEncrypt,
}

func init() {
	rootCmd.AddCommand(encryptCmd)

	// Here you will define your flags and configuration settings.

	// Cobra supports Persistent Flags which will work for this command
	// and all subcommands, e.g.:
	// encryptCmd.PersistentFlags().String("foo", "", "A help for foo")
}

func runEncrypt(cmd *cobra.Command, args []string) {
	ks, err := getKeySource()
	if err != nil {
		fatal("failed to initialize key source:", err)
	}
	var key keyring.Key
	if table := ks.Candidates(); len(table) > 0 {
		key = table[0]
	}

	for _, inName := range args {
		outName := inName + ".ozip"
		if err := ozip.EncryptFile(inName, outName, key); err != nil {
			fatal(inName+":", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), inName, "->", outName)
	}
}
