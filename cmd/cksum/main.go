// Command cksum computes the POSIX cksum CRC-32 of its arguments, or of
// standard input when given none, matching the interface of the standard
// cksum(1) utility plus a couple of interop flags.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/samrussell/coreutils/pkg/cksum"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cksum", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var raw bool
	var tag bool
	var algorithm string
	fs.BoolVar(&raw, "r", false, "print the CRC as raw big-endian bytes instead of decimal")
	fs.BoolVar(&raw, "raw", false, "print the CRC as raw big-endian bytes instead of decimal")
	fs.BoolVar(&tag, "tag", false, "print in BSD cksum's tagged form: CRC (name) = crc length")
	fs.StringVar(&algorithm, "a", "crc32", "checksum algorithm to use (only crc32/cksum is supported)")
	fs.StringVar(&algorithm, "algorithm", "crc32", "checksum algorithm to use (only crc32/cksum is supported)")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if algorithm != "crc32" && algorithm != "cksum" {
		fmt.Fprintf(stderr, "cksum: unsupported algorithm %q: only crc32/cksum is supported\n", algorithm)
		return 2
	}

	paths := fs.Args()
	if len(paths) == 0 {
		return sumOne(stdin, "-", raw, tag, stdout, stderr)
	}

	exit := 0
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "cksum: %s: %v\n", path, err)
			exit = 1
			continue
		}
		if rc := sumOne(f, path, raw, tag, stdout, stderr); rc != 0 {
			exit = rc
		}
		f.Close()
	}
	return exit
}

// sumOne computes and prints the Result for a single named byte source.
// name is "-" for stdin, matching cksum(1)'s convention of omitting a name
// for standard input.
func sumOne(r io.Reader, name string, raw, tag bool, stdout, stderr io.Writer) int {
	res, err := cksum.Sum(r)
	if err != nil {
		fmt.Fprintf(stderr, "cksum: %s: %v\n", name, err)
		return 1
	}

	switch {
	case tag:
		fmt.Fprintf(stdout, "CRC (%s) = %d %d\n", displayName(name), res.CRC32, res.Length)
	case raw:
		stdout.Write([]byte{
			byte(res.CRC32 >> 24), byte(res.CRC32 >> 16), byte(res.CRC32 >> 8), byte(res.CRC32),
		})
	default:
		if name == "-" {
			fmt.Fprintf(stdout, "%d %d\n", res.CRC32, res.Length)
		} else {
			fmt.Fprintf(stdout, "%d %d %s\n", res.CRC32, res.Length, name)
		}
	}
	return 0
}

func displayName(name string) string {
	if name == "-" {
		return "standard input"
	}
	return name
}
