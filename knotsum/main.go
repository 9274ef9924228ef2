package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	. "fmt"
	"github.com/p7r0x7/knothash"
	"github.com/p7r0x7/vainpath"
	. "github.com/spf13/pflag"
	"go.uber.org/zap"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure, invalid = 0, 1, 2

var warnings = 0

// target is one command-line argument along with the message read from it.
type target struct {
	name  string
	msg   []byte
	delta time.Duration
	ok    bool
}

func main() { os.Exit(program()) }

// help prints a usage menu and quietly exits if no non-flag arguments are given. To consistently
// correctly render this menu in most terminal windows, its content should be no wider than 80
// columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "knotsum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "Knot hash digests and checksums.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-bt] [-j <int>] [-n <int>] [--quiet|no-codes] [--strict] -|PATH..."+n,
		spaces, "[-bt] [-j <int>] [-n <int>] [--quiet|no-codes] [--strict] -s STRING..."+n,
		spaces, "-c [-t] [-n <int>] [--quiet|no-codes] [--strict] -|PATH..."+n,
		spaces, "-c [-t] [-n <int>] [--quiet|no-codes] [--strict] -s STRING..."+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Long-form flag equivalents are"+n+
		"above. `-` is treated as a reference to ", os.Stdin.Name(), " on this platform."+n)
}

// This program is a command-line interface for knothash: It handles various flags and an unlimited
// number of arguments, reading every target first and then hashing them together.
func program() int {
	defer logger.Sync()
	if pDebug {
		if cf, err := os.Create("cpu.prof"); err == nil {
			_ = pprof.StartCPUProfile(cf)
			defer pprof.StopCPUProfile()
		}
	}

	if pHelp || NArg() == 0 {
		help()
		return success
	} else if pSize <= 0 {
		Fprint(os.Stderr, purp, "Ring size should be at least 1.", zero, n)
		return invalid
	}

	targets := read(Args())
	var code int
	if pChecksum {
		code = checksums(targets)
	} else {
		code = digests(targets)
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is a directory or is otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are directories or are otherwise inaccessible.", zero, n)
		}
	}
	if code == success && warnings > 0 {
		return failure
	}
	return code
}

func read(args []string) []target {
	targets, stdin := make([]target, len(args)), false
	for i, arg := range args {
		t, start := &targets[i], time.Now()
		t.name = arg
		switch {
		case pString:
			t.msg, t.ok = []byte(arg), true
		case arg == "-" || arg == os.Stdin.Name():
			if stdin {
				warn(arg, os.ErrClosed) /* STDIN should not be reused. */
				continue
			}
			stdin = true
			msg, err := io.ReadAll(os.Stdin)
			if err != nil {
				warn(arg, err)
				continue
			}
			t.msg, t.ok = msg, true
		default:
			msg, err := os.ReadFile(arg)
			if err != nil {
				warn(arg, err)
				continue
			}
			t.msg, t.ok = msg, true
		}
		if pTrim && !pString {
			t.msg = bytes.TrimSpace(t.msg)
		}
		t.delta = time.Since(start)
		logger.Debug("read target", zap.String("target", arg), zap.Int("bytes", len(t.msg)),
			zap.Duration("took", t.delta))
	}
	return targets
}

func digests(targets []target) int {
	var inputs []string
	for _, t := range targets {
		if t.ok {
			inputs = append(inputs, string(t.msg))
		}
	}
	start := time.Now()
	sums, err := knothash.SumAll(context.Background(), pSize, inputs, pJobs)
	delta := time.Since(start)
	if err != nil {
		logger.Error("hashing failed", zap.Int("size", pSize), zap.Error(err))
		if pStrict {
			panic(err)
		}
		return invalid
	}
	logger.Debug("hashed targets", zap.Int("count", len(sums)), zap.Int("jobs", pJobs),
		zap.Duration("took", delta))

	for _, t := range targets {
		if !t.ok {
			continue
		}
		str := sums[0]
		sums = sums[1:]
		if pBase64 {
			raw, _ := hex.DecodeString(str)
			str = base64.StdEncoding.EncodeToString(raw)
		}
		emit(str, t)
	}
	if pTime && !pQuiet {
		Fprint(os.Stderr, purp, "hashed in ", zero, round(delta).String(), n)
	}
	return success
}

func checksums(targets []target) int {
	for _, t := range targets {
		if !t.ok {
			continue
		}
		lengths := knothash.ParseLengths(string(t.msg))
		product, err := knothash.SparseHash(pSize, lengths)
		if err != nil {
			logger.Error("checksum failed", zap.String("target", t.name), zap.Int("size", pSize),
				zap.Error(err))
			if pStrict {
				panic(err)
			}
			return invalid
		}
		logger.Debug("checksummed target", zap.String("target", t.name), zap.Ints("lengths", lengths))
		emit(strconv.Itoa(product), t)
	}
	return success
}

func emit(str string, t target) {
	delta := ""
	if pTime {
		delta = " (" + round(t.delta).String() + ")"
	}
	if pQuiet {
		Print(str, n)
	} else if pString {
		Print(yell, str, zero, `  "`, t.name, `"`, delta, n)
	} else if pNoCodes {
		Print(str, `  `, filepath.Clean(t.name), delta, n)
	} else {
		Print(yell, str, zero, `  `, und, vainpath.Simplify(t.name), zero, delta, n)
	}
}

func round(d time.Duration) time.Duration {
	if d.Microseconds() > 99 {
		return d.Truncate(10 * time.Microsecond)
	}
	return d
}

func warn(target string, err error) {
	logger.Warn("target unreadable", zap.String("target", target), zap.Error(err))
	if pStrict {
		panic(err)
	}
	warnings++
}
