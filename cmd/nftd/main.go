package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/log"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// globalFlags are shared by all commands.
type globalFlags struct {
	home     string
	logLevel string
}

func rootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:   "nftd",
		Short: "Admin controlled NFT registry ABCI application",
		Long: `nftd runs a registry of non-fungible tokens that only its admin can
mint and burn. It is an ABCI application and must be connected to a
tendermint node.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".nftd")
	root.PersistentFlags().StringVar(&flags.home, "home", defaultHome, "directory to store files under")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "one of debug, info, error or none")

	root.AddCommand(
		initCmd(&flags),
		startCmd(&flags),
		versionCmd(),
	)
	return root
}

// newLogger returns a tendermint logger writing to w, filtered to the
// given level.
func newLogger(w io.Writer, level string) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(w))
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewFilter(logger, opt).With("module", "nftd"), nil
}
