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
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ostafen/gofdisk/pkg/fdisk"
	"github.com/ostafen/gofdisk/pkg/util/format"
)

func DefineCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "create <device>",
		Short:        "Create a new partition table and write it to disk",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunCreate,
	}

	cmd.Flags().StringP("label", "l", "gpt", "partition table kind (gpt, dos, sun, sgi, bsd)")
	cmd.Flags().Bool("wipe", false, "wipe existing filesystem/RAID/table signatures first")
	cmd.Flags().StringSliceP("part", "p", nil,
		"partition spec <type>:<size>[:<name>], e.g. L:1GB:rootfs or 0x83:512MB; repeatable")

	return cmd
}

func RunCreate(cmd *cobra.Command, args []string) error {
	path := args[0]

	labelName, _ := cmd.Flags().GetString("label")
	kind, ok := fdisk.ParseTableKind(labelName)
	if !ok {
		return fmt.Errorf("unknown table kind %q", labelName)
	}
	wipe, _ := cmd.Flags().GetBool("wipe")
	specs, _ := cmd.Flags().GetStringSlice("part")

	builder := fdisk.NewSession().Device(path).ReadWrite()
	if wipe {
		builder = builder.WipeMetadata()
	}
	sess, err := builder.Build()
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.CreateTable(kind); err != nil {
		return err
	}

	list, err := parsePartSpecs(specs, kind, sess.SectorSize())
	if err != nil {
		return err
	}
	if err := sess.AppendPartitions(list); err != nil {
		return err
	}

	if err := sess.Write(); err != nil {
		return err
	}
	fmt.Printf("Wrote %s table with %d partition(s) to %s\n", kind, len(list), path)
	return nil
}

// parsePartSpecs turns <type>:<size>[:<name>] specs into partition
// templates. The type field is a GUID or a (0x-prefixed) code; the
// shorthands L (Linux data), S (swap) and E (EFI system) follow sfdisk.
func parsePartSpecs(specs []string, kind fdisk.TableKind, sectorSize uint64) (fdisk.PartitionList, error) {
	var list fdisk.PartitionList

	for _, spec := range specs {
		fields := strings.SplitN(spec, ":", 3)
		if len(fields) < 2 {
			return nil, fmt.Errorf("invalid partition spec %q, want <type>:<size>[:<name>]", spec)
		}

		ptype, err := parsePartType(fields[0], kind)
		if err != nil {
			return nil, err
		}

		size, err := format.ParseBytes(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid size in %q: %w", spec, err)
		}

		pb := fdisk.NewPartitionTemplate().
			Type(ptype).
			SizeInSectors(int64(size / sectorSize))
		if len(fields) == 3 {
			pb = pb.Name(fields[2])
		}

		p, err := pb.Build()
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

func parsePartType(s string, kind fdisk.TableKind) (fdisk.PartType, error) {
	guidKind := kind == fdisk.GPT

	switch strings.ToUpper(s) {
	case "L":
		if guidKind {
			return fdisk.NewPartType().GUID(fdisk.GUIDLinuxData).Build()
		}
		return fdisk.NewPartType().Code(fdisk.CodeLinux).Build()
	case "S":
		if guidKind {
			return fdisk.NewPartType().GUID(fdisk.GUIDLinuxSwap).Build()
		}
		return fdisk.NewPartType().Code(fdisk.CodeLinuxSwap).Build()
	case "E":
		if guidKind {
			return fdisk.NewPartType().GUID(fdisk.GUIDEFISystem).Build()
		}
		return fdisk.NewPartType().Code(fdisk.CodeEFI).Build()
	}

	if code, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 32); err == nil && len(s) <= 4 {
		return fdisk.NewPartType().Code(uint(code)).Build()
	}
	return fdisk.NewPartType().GUID(s).Build()
}
