// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/seiyab/gz-tools/deflate"
	"github.com/urfave/cli/v2"
)

const (
	formatTable = "table"
	formatCbor  = "cbor"
)

func blocksCommand() *cli.Command {
	return &cli.Command{
		Name:  "blocks",
		Usage: "List the blocks of a stream",
		Flags: []cli.Flag{
			inputFlag,
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatTable,
				Usage:   "Output format: table, cbor",
			},
		},
		Action: blocksAction,
	}
}

func blocksAction(c *cli.Context) error {
	format := c.String("format")
	if format != formatTable && format != formatCbor {
		return fmt.Errorf("invalid format %q: must be 'table' or 'cbor'", format)
	}
	in, err := openInput(c.String("input"))
	if err != nil {
		return err
	}
	defer in.Close()
	return listBlocks(in, os.Stdout, format, slog.Default())
}

func listBlocks(in io.Reader, out io.Writer, format string, logger *slog.Logger) error {
	stream, err := deflate.DecodeReader(in, deflate.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	index := stream.Index()
	switch format {
	case formatCbor:
		cborData, err := deflate.MarshalIndex(index)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, hex.EncodeToString(cborData))
		return err
	default:
		return writeBlockTable(out, index)
	}
}

func writeBlockTable(w io.Writer, index []deflate.BlockInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTYPE\tFINAL\tOFFSET\tINPUT\tSIZE")
	for i, info := range index {
		fmt.Fprintf(tw, "%d\t%s\t%t\t%s\t%s\t%s\n",
			i,
			info.Type,
			info.Final,
			humanize.Comma(info.Offset),
			humanize.Comma(info.InputLength),
			humanize.Bytes(uint64(info.Size)),
		)
	}
	return tw.Flush()
}
