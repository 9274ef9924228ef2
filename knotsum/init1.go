package main

import (
	"github.com/p7r0x7/knothash"
	. "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pJobs, pSize, pNoCodesDefault = 0, 0, false
var pHelp, pBase64, pChecksum, pNoCodes, pQuiet, pStrict, pString, pTime, pTrim, pDebug bool
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"
var logger = zap.NewNop()

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	BoolVarP(&pBase64, "base64", "b", false,
		purp+"render digests in base64"+zero+" (default hex)")

	BoolVarP(&pChecksum, "checksum", "c", false,
		purp+"read each target as comma-separated lengths and print"+zero+
			n+purp+"the single-round checksum instead of a digest"+zero)

	BoolVar(&pDebug, "debug", false, "")
	CommandLine.MarkHidden("debug")

	IntVarP(&pJobs, "jobs", "j", 0,
		purp+"digest at most this many targets at once"+zero+" (default NumCPU)")

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	Bool("quiet", false,
		purp+"suppress non-breaking errors and print ONLY digests"+zero+
			n+"(enables --no-codes)")

	IntVarP(&pSize, "size", "n", knothash.RingSize,
		purp+"set the number of values in the knotted ring"+zero)

	BoolVar(&pStrict, "strict", false,
		purp+"cause knotsum to panic on any error"+zero)

	BoolVarP(&pString, "string", "s", false,
		purp+"process arguments instead as UTF-8 strings to be hashed"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to read each target and to hash them"+zero)

	BoolVar(&pTrim, "trim", true,
		purp+"strip leading and trailing whitespace from file contents"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()
	pStrict = pStrict || pDebug

	if !pQuiet {
		logger = newLogger()
	}
}

// newLogger writes warnings and errors to stderr, or everything down to debug under --debug.
func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if pDebug {
		config.Level.SetLevel(zapcore.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
