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

	"github.com/seiyab/gz-tools/deflate"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/blake2b"
)

func digestCommand() *cli.Command {
	return &cli.Command{
		Name:  "digest",
		Usage: "Print the BLAKE2b-256 hash of the decoded payload",
		Flags: []cli.Flag{
			inputFlag,
		},
		Action: digestAction,
	}
}

func digestAction(c *cli.Context) error {
	in, err := openInput(c.String("input"))
	if err != nil {
		return err
	}
	defer in.Close()
	sum, err := payloadDigest(in, slog.Default())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, hex.EncodeToString(sum))
	return err
}

func payloadDigest(in io.Reader, logger *slog.Logger) ([]byte, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(h, deflate.NewReader(in, deflate.WithLogger(logger))); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return h.Sum(nil), nil
}
