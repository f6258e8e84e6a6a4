// Command stegano hides text messages in images and recovers them.
//
// Usage:
//
//	stegano encode <in> <plaintext> <out> --source <file>
//	stegano decode <in> --source <file>
//
// The reference text file may be plain or compressed (.gz, .zst, .lz4).
// Its xxHash64 fingerprint is printed to stderr so both parties can check
// they are working from byte-identical reference bytes. Output images are
// always written as PNG; re-encoding them lossily is the receiver's
// prerogative and the codec's job to survive.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/arloliu/stegano"
	"github.com/arloliu/stegano/imageio"
	"github.com/arloliu/stegano/source"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "stegano: %s\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage:\n")
	fmt.Fprintf(os.Stderr, "  stegano encode <in> <plaintext> <out> --source <file>\n")
	fmt.Fprintf(os.Stderr, "  stegano decode <in> --source <file>\n")
}

// reorderArgs moves flag tokens in front of positionals so flags may
// follow the positional arguments, as in
// "stegano encode in.png message out.png --source ref.txt".
// The flag package stops parsing at the first positional otherwise.
func reorderArgs(args []string) []string {
	var flags, positionals []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			positionals = append(positionals, a)
			continue
		}
		flags = append(flags, a)
		if !strings.Contains(a, "=") && i+1 < len(args) {
			// Value-taking flag with a separate value token.
			flags = append(flags, args[i+1])
			i++
		}
	}

	return append(flags, positionals...)
}

// loadReference reads the shared reference text and reports its
// fingerprint for out-of-band comparison.
func loadReference(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--source is required")
	}

	reference, err := source.Load(path)
	if err != nil {
		return "", err
	}
	reference = source.Normalize(reference)
	fmt.Fprintf(os.Stderr, "reference fingerprint: %016x\n", source.Fingerprint(reference))

	return reference, nil
}

func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	sourcePath := fs.String("source", "", "reference text file shared by both parties")
	if err := fs.Parse(reorderArgs(args)); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		usage()
		return fmt.Errorf("encode needs <in> <plaintext> <out>")
	}
	in, plaintext, out := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	reference, err := loadReference(*sourcePath)
	if err != nil {
		return err
	}

	img, err := imageio.Load(in)
	if err != nil {
		return err
	}

	marked, err := stegano.Encode(img, plaintext, reference)
	if err != nil {
		return err
	}

	return imageio.SavePNG(out, marked)
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	sourcePath := fs.String("source", "", "reference text file shared by both parties")
	if err := fs.Parse(reorderArgs(args)); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		usage()
		return fmt.Errorf("decode needs <in>")
	}

	reference, err := loadReference(*sourcePath)
	if err != nil {
		return err
	}

	img, err := imageio.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	msg, err := stegano.Decode(img, reference)
	if err != nil {
		return err
	}

	fmt.Println(msg)

	return nil
}
