// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The selsort command sorts a fixed sample with selection sort and prints
// the result to stdout as space-separated decimals.
//
// It takes no arguments. Its output is always:
//
// 	1 2 3 4 5
//
// with a trailing space before the newline.
package main

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/selsort/selsort/selsort"
)

func main() {
	if err := Run(os.Stdout); err != nil {
		logger, lerr := zap.NewProduction()
		if lerr != nil {
			os.Exit(1)
		}
		logger.Fatal("selsort failed", zap.Error(err))
	}
}

// Run sorts the sample and writes it to out.
func Run(out io.Writer) error {
	data := [...]int{5, 4, 3, 2, 1}
	selsort.Sort(data[:])

	w := bufio.NewWriter(out)
	var buf []byte
	for _, v := range data {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, ' ')
		if _, err := w.Write(buf); err != nil {
			return xerrors.Errorf("writing %d: %w", v, err)
		}
	}
	if err := w.WriteByte('\n'); err != nil {
		return xerrors.Errorf("writing newline: %w", err)
	}
	if err := w.Flush(); err != nil {
		return xerrors.Errorf("flushing output: %w", err)
	}
	return nil
}
