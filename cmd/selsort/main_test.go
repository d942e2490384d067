// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/xerrors"
)

func TestRun(t *testing.T) {
	out := bytes.Buffer{}

	if err := Run(&out); err != nil {
		t.Fatal(err)
	}

	want := "1 2 3 4 5 \n"
	if out.String() != want {
		t.Fatalf("\ngot: %q\nwant: %q", out.String(), want)
	}
}

var errClosed = errors.New("closed pipe")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestRunWriteError(t *testing.T) {
	err := Run(failWriter{})
	if err == nil {
		t.Fatal("Run succeeded writing to a failing writer")
	}
	if !xerrors.Is(err, errClosed) {
		t.Errorf("Run error %v does not wrap %v", err, errClosed)
	}
}
