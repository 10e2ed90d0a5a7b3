package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/cockroachdb/errors"
	"github.com/hsiafan/vlog"
	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"
)

var logger = vlog.CurrentPackageLogger()

func init() {
	logger.SetAppenders(vlog.NewConsole2Appender())
}

const (
	exitOK           = 0
	exitInvalidRange = 1
	exitFailure      = 2
)

// Config is user config for one merge run
type Config struct {
	ranges      string
	file        string
	charset     string
	output      string
	interactive bool
}

var rangesQuestion = &survey.Input{
	Message: "Please input the zipcode ranges:",
	Help:    "Bracketed five digit ranges separated by spaces, e.g. [94133,94133] [94200,94299]",
}

// prompt for the range line on a terminal. replaced in tests.
var askRanges = func() (string, error) {
	var line string
	err := survey.AskOne(rangesQuestion, &line)
	return line, err
}

func main() {
	var fd = os.Stdin.Fd()
	var interactive = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr, interactive))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, interactive bool) int {
	var flagSet = flag.NewFlagSet(args[0], flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] [ranges...]\n", args[0])
		flagSet.PrintDefaults()
	}
	var filePath = flagSet.StringP("file", "f", "", "Read ranges from the first line of file. If not set, read from arguments or stdin")
	var charset = flagSet.StringP("charset", "c", "", "Charset of the input, such as gbk or iso-8859-1. Default utf-8")
	var output = flagSet.StringP("output", "o", "", "Write result to file [output] instead of stdout")
	if err := flagSet.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitFailure
	}

	var config = &Config{
		ranges:      strings.Join(flagSet.Args(), " "),
		file:        *filePath,
		charset:     *charset,
		output:      *output,
		interactive: interactive,
	}
	if config.ranges != "" && config.file != "" {
		fmt.Fprintln(stderr, "ranges arguments and file cannot be used together.")
		flagSet.Usage()
		return exitFailure
	}

	line, err := readInput(config, stdin)
	if err != nil {
		logger.Error("read zip code ranges error:", err)
		return exitFailure
	}

	merged, err := MergeZipRanges(line)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, ErrInvalidRange) {
			return exitInvalidRange
		}
		return exitFailure
	}

	var printer = newPrinter(stdout, config.output)
	if config.prompted() {
		if err := printer.printHeader(); err != nil {
			logger.Error("write output error:", err)
			return exitFailure
		}
	}
	if err := printer.printRanges(merged); err != nil {
		logger.Error("write output error:", err)
		return exitFailure
	}
	if err := printer.finish(); err != nil {
		logger.Error("write output file", config.output, "error:", err)
		return exitFailure
	}
	return exitOK
}

// if the ranges are asked for on the terminal
func (c *Config) prompted() bool {
	return c.ranges == "" && c.file == "" && c.interactive
}

// get the range line from arguments, file, terminal prompt or stdin, in this order
func readInput(config *Config, stdin io.Reader) (string, error) {
	var line string
	var err error
	switch {
	case config.ranges != "":
		line = config.ranges
	case config.file != "":
		line, err = readRangeFile(config.file, config.charset)
	case config.interactive:
		line, err = askRanges()
	default:
		line, err = readRangeLine(stdin, config.charset)
	}
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "read input"), ErrExtractRanges)
	}
	return line, nil
}
