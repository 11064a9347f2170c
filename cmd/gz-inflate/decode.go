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
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/seiyab/gz-tools/deflate"
	"github.com/urfave/cli/v2"
)

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "Decode a stream and write the payload",
		Flags: []cli.Flag{
			inputFlag,
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "-",
				Usage:   "Path to write the decoded payload to, or - for stdout",
			},
			&cli.IntFlag{
				Name:  "max-output",
				Value: 0,
				Usage: "Fail once the decoded payload exceeds this many bytes (0 for no limit)",
			},
		},
		Action: decodeAction,
	}
}

func decodeAction(c *cli.Context) error {
	in, err := openInput(c.String("input"))
	if err != nil {
		return err
	}
	defer in.Close()

	var out io.Writer = os.Stdout
	if path := c.String("output"); path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	_, err = decodeStream(in, out, c.Int("max-output"), slog.Default())
	return err
}

// decodeStream copies the decoded payload of the stream read from in to out
func decodeStream(in io.Reader, out io.Writer, maxOutput int, logger *slog.Logger) (int64, error) {
	r := deflate.NewReader(
		in,
		deflate.WithLogger(logger),
		deflate.WithMaxOutputSize(maxOutput),
	)
	n, err := io.Copy(out, r)
	if err != nil {
		return n, fmt.Errorf("decode: %w", err)
	}
	logger.Info(
		"decoded stream",
		"blocks", r.Blocks(),
		"input", humanize.Bytes(uint64(r.InputOffset())),
		"output", humanize.Bytes(uint64(n)),
	)
	return n, nil
}
