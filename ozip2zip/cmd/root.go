package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/YoshihikoAbe/ozip2zip/keyring"
	"github.com/YoshihikoAbe/ozip2zip/logger"
	"github.com/YoshihikoAbe/ozip2zip/ozip"
)

var (
	cfgFile string
	cfg     *Config
	log     *zap.SugaredLogger = zap.NewNop().Sugar()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ozip2zip FILE",
	Short: "Decrypt OZIP firmware containers into ZIP archives",
	Long: `ozip2zip converts an OZIP firmware container into the ZIP archive it wraps.
The decryption key is discovered by trying every candidate key in the key table.
The archive is written next to the input, as FILE.zip.`,
	Args:    cobra.ExactArgs(1),
	Version: "1.2",

	PersistentPreRunE: setup,
	RunE:              runConvert,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is ./ozip2zip.yaml)")
	rootCmd.PersistentFlags().String("keys", "", "JSON key file replacing the built-in key table")
	rootCmd.PersistentFlags().StringP("key", "k", "", "Use this hex encoded key instead of searching the key table")
	rootCmd.PersistentFlags().String("suffix", ozip.DefaultSuffix, "Suffix appended to input file names to form output file names")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// setup runs after argument validation so that a bad command line never
// touches the filesystem.
func setup(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	c, err := loadConfig(cmd, cfgFile)
	if err != nil {
		return err
	}
	cfg = c
	log = logger.New(cfg.LogLevel)
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	inName := args[0]
	outName := ozip.OutputName(inName, cfg.Suffix)

	ks, err := getKeySource()
	if err != nil {
		return err
	}

	log.Debugw("decrypting", "input", inName, "output", outName)
	key, err := ozip.ConvertFile(inName, outName, ks)
	if err != nil {
		return fmt.Errorf("%s: %w", inName, err)
	}
	log.Debugw("key found", "key", key, "label", key.Label())

	fmt.Fprintln(cmd.OutOrStdout(), inName, "->", outName)
	return nil
}

func getKeySource() (keyring.KeySource, error) {
	if cfg.Key != "" {
		key, err := keyring.ParseKey(cfg.Key)
		if err != nil {
			return nil, err
		}
		return keyring.Table{key}, nil
	}
	if cfg.Keys != "" {
		return keyring.LoadKeyFile(cfg.Keys)
	}
	return keyring.Default, nil
}

func fatal(v ...any) {
	fmt.Fprintln(os.Stderr, v...)
	os.Exit(1)
}
