package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

func writeToFile(r io.Reader, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, r)
	return err
}

// wrap reader to decode text in charset to utf-8. empty charset means utf-8 already.
func newCharsetReader(r io.Reader, charset string) (io.Reader, error) {
	if charset == "" {
		return r, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, errors.Wrapf(err, "unsupported charset %s", charset)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// read the first line, without line terminator. empty input gives an empty line.
func readFirstLine(r io.Reader) (string, error) {
	var br = bufio.NewReader(r)
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// read the first line of r, decoded from charset
func readRangeLine(r io.Reader, charset string) (string, error) {
	cr, err := newCharsetReader(r, charset)
	if err != nil {
		return "", err
	}
	return readFirstLine(cr)
}

func readRangeFile(filename string, charset string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return readRangeLine(f, charset)
}
