package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ostafen/gofdisk/internal/env"
)

const AppName = "gofdisk"

func Execute() error {
	rootCmd := &cobra.Command{
		Use:     AppName,
		Short:   AppName + " - partition table editor built on libfdisk",
		Version: env.Version,
	}

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			logrus.SetLevel(logrus.DebugLevel)
		}
	}

	rootCmd.AddCommand(DefineListCommand())
	rootCmd.AddCommand(DefineCreateCommand())
	rootCmd.AddCommand(DefineWipeCommand())

	return rootCmd.Execute()
}
