package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFirstLine(t *testing.T) {
	line, err := readFirstLine(strings.NewReader("[94133,94133] [94200,94299]\r\n[1,2]\n"))
	require.NoError(t, err)
	assert.Equal(t, "[94133,94133] [94200,94299]", line)

	line, err = readFirstLine(strings.NewReader("[94133,94133]"))
	require.NoError(t, err)
	assert.Equal(t, "[94133,94133]", line)

	line, err = readFirstLine(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "", line)
}

// utf-16le encodes ascii text as each byte followed by a zero byte
func utf16le(str string) []byte {
	var data = make([]byte, 0, len(str)*2)
	for i := 0; i < len(str); i++ {
		data = append(data, str[i], 0)
	}
	return data
}

func TestReadRangeLine_Charset(t *testing.T) {
	line, err := readRangeLine(bytes.NewReader(utf16le("[94133,94133] [94200,94299]\n")), "utf-16le")
	require.NoError(t, err)
	assert.Equal(t, "[94133,94133] [94200,94299]", line)

	line, err = readRangeLine(strings.NewReader("[95746, 95766]\n"), "iso-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "[95746, 95766]", line)
}

func TestReadRangeLine_UnknownCharset(t *testing.T) {
	_, err := readRangeLine(strings.NewReader("[95746, 95766]"), "no-such-charset")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-charset")
}

func TestReadRangeFile(t *testing.T) {
	var filename = filepath.Join(t.TempDir(), "ranges.txt")
	require.NoError(t, os.WriteFile(filename, []byte("[95746, 95766] [95756, 95776]\n"), 0644))

	line, err := readRangeFile(filename, "")
	require.NoError(t, err)
	assert.Equal(t, "[95746, 95766] [95756, 95776]", line)

	_, err = readRangeFile(filepath.Join(t.TempDir(), "missing.txt"), "")
	assert.True(t, os.IsNotExist(err))
}

func TestWriteToFile(t *testing.T) {
	var filename = filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, writeToFile(strings.NewReader("[1, 9]\n"), filename))
	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "[1, 9]\n", string(data))
}
