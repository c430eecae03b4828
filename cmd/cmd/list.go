// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ostafen/gofdisk/internal/blkdev"
	"github.com/ostafen/gofdisk/pkg/fdisk"
	"github.com/ostafen/gofdisk/pkg/util/format"
)

func DefineListCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "list <device>",
		Short:        "Print the partition table of a device or image file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunList,
	}
}

func RunList(cmd *cobra.Command, args []string) error {
	path := args[0]

	info, err := blkdev.Stat(path)
	if err != nil {
		return err
	}

	sess, err := fdisk.NewSession().Device(path).Build()
	if err != nil {
		return err
	}
	defer sess.Close()

	kind := "regular file"
	if info.IsBlock {
		kind = "block device"
	}
	fmt.Printf("Device: %s (%s, %s, %d-byte sectors)\n",
		path, kind, format.FormatBytes(info.Size), sess.SectorSize())

	if !sess.HasPartitionTable() {
		if name := sess.CollisionName(); name != "" {
			fmt.Printf("No partition table; %s signature detected\n", name)
		} else {
			fmt.Println("No partition table")
		}
		return nil
	}
	fmt.Printf("Table:  %s\n\n", sess.Label())

	parts, err := sess.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NUM\tSTART\tSECTORS\tSIZE\tNAME\tTYPE")
	for _, p := range parts {
		size := int64(p.SizeInSectors * sess.SectorSize())
		typ := p.TypeName
		if typ == "" {
			typ = p.Type
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\t%s\n",
			p.Number+1, p.Start, p.SizeInSectors, format.FormatBytes(size), p.Name, typ)
	}
	return w.Flush()
}
