// blz4 compresses and decompresses files in the LZ4 legacy frame
// format.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jibsen/blz4"
	"github.com/jibsen/blz4/compress"
)

// Command line flags
var (
	levelFlags  [5]bool // -5 .. -9
	flagOptimal bool
	flagDecomp  bool
	flagVerbose bool
	flagVersion bool
	flagHelp    bool
)

func init() {
	for i := range levelFlags {
		flag.BoolVar(&levelFlags[i], fmt.Sprintf("%d", i+5), false, "")
	}
	flag.BoolVar(&flagOptimal, "optimal", false, "optimal but very slow compression")
	flag.BoolVar(&flagDecomp, "d", false, "decompress")
	flag.BoolVar(&flagDecomp, "decompress", false, "decompress")
	flag.BoolVar(&flagVerbose, "v", false, "verbose mode")
	flag.BoolVar(&flagVerbose, "verbose", false, "verbose mode")
	flag.BoolVar(&flagVersion, "V", false, "print version and exit")
	flag.BoolVar(&flagVersion, "version", false, "print version and exit")
	flag.BoolVar(&flagHelp, "h", false, "print this help and exit")
	flag.BoolVar(&flagHelp, "help", false, "print this help and exit")

	flag.Usage = printSyntax
}

func printSyntax() {
	fmt.Fprintf(os.Stderr, "usage: blz4 [options] INFILE OUTFILE\n"+
		"\n"+
		"options:\n"+
		"  -5                     compress faster (default)\n"+
		"  -9                     compress better\n"+
		"  -optimal               optimal but very slow compression\n"+
		"  -d, -decompress        decompress\n"+
		"  -h, -help              print this help and exit\n"+
		"  -v, -verbose           verbose mode\n"+
		"  -V, -version           print version and exit\n")
}

func printVersion() {
	fmt.Printf("blz4 %s\n", blz4.Version)
}

// countingWriter counts the bytes passed through to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// ratio returns x as a percentage of y. When x*100 would overflow,
// y is divided by 100 instead.
func ratio(x, y int64) int64 {
	const maxInt64 = 1<<63 - 1

	if x <= maxInt64/100 {
		x *= 100
	} else {
		y /= 100
	}

	if y == 0 {
		y = 1
	}

	return x / y
}

func compressFile(inName, outName string, level compress.Level) error {
	in, err := os.Open(inName)
	if err != nil {
		return fmt.Errorf("unable to open input file '%s'", inName)
	}
	defer in.Close()

	out, err := os.Create(outName)
	if err != nil {
		return fmt.Errorf("unable to open output file '%s'", outName)
	}
	defer out.Close()

	start := time.Now()

	cw := &countingWriter{w: out}

	w, err := compress.NewWriterLevel(cw, level)
	if err != nil {
		return err
	}

	inSize, err := io.Copy(w, in)
	if err != nil {
		return err
	}

	if err := w.Close(); err != nil {
		return err
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "in %d out %d ratio %d%% time %.2f\n",
			inSize, cw.n, ratio(cw.n, inSize), time.Since(start).Seconds())
	}

	return nil
}

func decompressFile(inName, outName string) error {
	in, err := os.Open(inName)
	if err != nil {
		return fmt.Errorf("unable to open input file '%s'", inName)
	}
	defer in.Close()

	out, err := os.Create(outName)
	if err != nil {
		return fmt.Errorf("unable to open output file '%s'", outName)
	}
	defer out.Close()

	start := time.Now()

	inInfo, err := in.Stat()
	if err != nil {
		return err
	}

	outSize, err := io.Copy(out, compress.NewReader(in))
	if err != nil {
		return err
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "in %d out %d ratio %d%% time %.2f\n",
			inInfo.Size(), outSize, ratio(inInfo.Size(), outSize),
			time.Since(start).Seconds())
	}

	return nil
}

func run() int {
	flag.Parse()

	if flagHelp {
		printSyntax()
		return 0
	}

	if flagVersion {
		printVersion()
		return 0
	}

	level := compress.DefaultLevel
	for i, set := range levelFlags {
		if set {
			level = compress.Level(i + 5)
		}
	}
	if flagOptimal {
		level = compress.OptimalLevel
	}

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "blz4: wrong number of arguments")
		printSyntax()
		return 1
	}

	inName := flag.Arg(0)
	outName := flag.Arg(1)

	var err error
	if flagDecomp {
		err = decompressFile(inName, outName)
	} else {
		err = compressFile(inName, outName, level)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "blz4: %v\n", err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run())
}
