package main

import (
	"golang.org/x/sys/windows"
	"os"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

/* Colour codes render on older consoles only once virtual terminal processing is switched on;
if either stream refuses, knotsum falls back to plain output. */
func init() {
	for _, f := range [...]*os.File{os.Stdout, os.Stderr} {
		if err := enableVT(windows.Handle(f.Fd())); err != nil {
			pNoCodesDefault = true
			break
		}
	}
	pNoCodes = pNoCodesDefault
}

func enableVT(h windows.Handle) error {
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return err
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return nil
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
