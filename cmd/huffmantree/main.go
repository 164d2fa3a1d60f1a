// Command huffmantree builds the Huffman tree for a string, prints the tree,
// and prints the string's encoding.
package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffmantree"
)

const progName = "huffmantree"

const defaultInput = "Huffman for fun"

var log = logging.MustGetLogger(progName)

var leveledLogBackend logging.LeveledBackend

func usageMessage() string {
	return strings.Join([]string{
		"Usage: " + progName + " [OPTIONS] [INPUT]\n",
		"\n",
		"Builds the Huffman tree for INPUT (default \"" + defaultInput + "\"),\n",
		"prints it, and prints the encoding of INPUT.\n",
		"\n",
		"Options:\n",
		"  -d, --debug        log at DEBUG level, including the code table\n",
		"  -x, --hex          also print the encoding packed into bytes, in hex\n",
		"      --decode BITS  decode BITS (a string of 0 and 1) with the tree\n",
		"  -h, --help         print this message\n",
	}, "")
}

func usageErrorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: "+format+"\n\n", append([]interface{}{progName}, args...)...)
	io.WriteString(os.Stderr, usageMessage())
	os.Exit(2)
}

func exitError(err error) {
	log.Errorf("%v", err)
	os.Exit(1)
}

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{color:bold}%{level:6s}%{color:reset} %{module:-12s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func main() {
	startLogging()

	ourFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	var debugLogging bool
	var hexOutput bool
	var decodeArg string
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")
	ourFlags.BoolVar(&hexOutput, "hex", false, "")
	ourFlags.BoolVar(&hexOutput, "x", false, "")
	ourFlags.StringVar(&decodeArg, "decode", "", "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	input := defaultInput
	switch ourFlags.NArg() {
	case 0:
	case 1:
		input = ourFlags.Arg(0)
	default:
		usageErrorf("too many arguments")
	}

	if err := run(os.Stdout, input, decodeArg, hexOutput); err != nil {
		exitError(err)
	}
}

func run(w io.Writer, input string, decodeArg string, hexOutput bool) error {
	tree, err := huffmantree.Build(input)
	if err != nil {
		return err
	}

	if _, err := tree.Dump(w); err != nil {
		return err
	}

	encoder := huffmantree.NewEncoder(tree)
	if log.IsEnabledFor(logging.DEBUG) {
		var buf bytes.Buffer
		_, _ = encoder.Dump(&buf)
		log.Debugf("code table:\n%s", buf.String())
	}

	bits := encoder.Encode(input)
	fmt.Fprintf(w, "string: %q\n", input)
	fmt.Fprintf(w, "encoded: %s\n", bits)
	log.Infof("%d symbols encoded in %d bits (fixed-width baseline: %d bits)",
		len([]rune(input)), len(bits), 8*len([]rune(input)))

	if hexOutput {
		var buf bytes.Buffer
		if _, err := bits.WriteTo(&buf); err != nil {
			return err
		}
		fmt.Fprintf(w, "packed: %s\n", hex.EncodeToString(buf.Bytes()))
	}

	decoder := huffmantree.NewDecoder(tree)
	if decoded := decoder.Decode(bits); decoded != input {
		return fmt.Errorf("round trip mismatch: decoded %q", decoded)
	}

	if decodeArg != "" {
		toDecode, err := huffmantree.ParseBits(decodeArg)
		if err != nil {
			return err
		}
		decoded, err := decoder.DecodeStrict(toDecode)
		if err != nil {
			log.Warningf("%v", err)
		}
		fmt.Fprintf(w, "decoded: %q\n", decoded)
	}

	return nil
}
