package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"qoistream/pkg/convert"
)

const usage = `Usage: qoistream COMMAND [OPTIONS]

Commands:
  encode   encode a PNG, JPEG, GIF or QOI image to QOI
  decode   decode a QOI image to PNG
  inspect  print header, opcode statistics and pixel digest of a QOI image
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("qoistream: ")

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

func run(cmd string, args []string) error {
	switch cmd {
	case "encode":
		flags, err := convert.ParseEncodeFlags(args, os.Stderr)
		if err != nil {
			return err
		}
		return convert.EncodeFile(flags, logger(flags.Verbose))
	case "decode":
		flags, err := convert.ParseDecodeFlags(args, os.Stderr)
		if err != nil {
			return err
		}
		return convert.DecodeFile(flags, logger(flags.Verbose))
	case "inspect":
		flags, err := convert.ParseInspectFlags(args, os.Stderr)
		if err != nil {
			return err
		}
		report, err := convert.InspectFile(flags)
		if err != nil {
			return err
		}
		_, err = report.WriteTo(os.Stdout)
		return err
	}
	fmt.Fprint(os.Stderr, usage)
	return fmt.Errorf("unknown command %q", cmd)
}

// logger returns the standard logger when verbose, otherwise a discarding one.
func logger(verbose bool) *log.Logger {
	if verbose {
		return log.Default()
	}
	return log.New(io.Discard, "", 0)
}
