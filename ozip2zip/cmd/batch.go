package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/YoshihikoAbe/ozip2zip/batch"
	"github.com/spf13/cobra"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch FILES...",
	Short: "Convert several OZIP containers concurrently",
	Args:  cobra.MinimumNArgs(1),
	Run:   runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Here you will define your flags and configuration settings.

	// Cobra supports local flags which will only run when this command
	// is called directly, e.g.:
	// batchCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
	batchCmd.Flags().IntP("workers", "w", 0, "Number of workers. Specify a value less than one, and the number of logical CPUs available to the process will be used")
}

func runBatch(cmd *cobra.Command, args []string) {
	ks, err := getKeySource()
	if err != nil {
		fatal("failed to initialize key source:", err)
	}

	start := time.Now()
	results := batch.Run(context.Background(), args, batch.Options{
		Workers: cfg.Workers,
		Suffix:  cfg.Suffix,
		Keys:    ks,
		Logger:  log,
	})

	noDec := 0
	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), result.Input+": decrypt failed:", result.Err)
			continue
		}
		noDec++
	}
	fmt.Fprintf(cmd.OutOrStdout(), "decrypted %d/%d files\n", noDec, len(args))
	log.Debugw("batch finished", "elapsed", time.Since(start))
}
