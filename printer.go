package main

import (
	"bytes"
	"io"
)

// Printer renders merged ranges, to the console or to an output file.
// File output is buffered and only written on finish.
type Printer struct {
	console io.Writer
	output  string
	buffer  *bytes.Buffer
}

func newPrinter(console io.Writer, output string) *Printer {
	return &Printer{console: console, output: output, buffer: new(bytes.Buffer)}
}

func (printer *Printer) writer() io.Writer {
	if printer.output == "" {
		return printer.console
	}
	return printer.buffer
}

func (printer *Printer) printHeader() error {
	_, err := io.WriteString(printer.console, "\nMerged zipcode ranges:\n\n")
	return err
}

func (printer *Printer) printRanges(ranges []ZipRange) error {
	_, err := io.WriteString(printer.writer(), NewRangeSet(ranges...).String()+"\n")
	return err
}

func (printer *Printer) finish() error {
	if printer.output == "" {
		return nil
	}
	return writeToFile(printer.buffer, printer.output)
}
