package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ostafen/gofdisk/pkg/fdisk"
)

func DefineWipeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "wipe <device>",
		Short:        "Destroy all signatures on a device and write an empty table",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunWipe,
	}

	cmd.Flags().StringP("label", "l", "gpt", "partition table kind to write afterwards")

	return cmd
}

func RunWipe(cmd *cobra.Command, args []string) error {
	path := args[0]

	labelName, _ := cmd.Flags().GetString("label")
	kind, ok := fdisk.ParseTableKind(labelName)
	if !ok {
		return fmt.Errorf("unknown table kind %q", labelName)
	}

	sess, err := fdisk.NewSession().Device(path).ReadWrite().WipeMetadata().Build()
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.CreateTable(kind); err != nil {
		return err
	}
	if err := sess.Write(); err != nil {
		return err
	}
	fmt.Printf("Wiped %s and wrote an empty %s table\n", path, kind)
	return nil
}
