package hadoop

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeInputFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func collectRecords(t *testing.T, in *Input) []KeyValue {
	t.Helper()
	var records []KeyValue
	err := in.each(func(key, value any) error {
		records = append(records, KeyValue{Key: key, Value: value})
		return nil
	})
	require.NoError(t, err)
	return records
}

func TestInput_MultiFileConcatenation(t *testing.T) {
	dir := t.TempDir()
	f1 := writeInputFile(t, dir, "f1.txt", "a\nb\n")
	f2 := writeInputFile(t, dir, "f2.txt", "c\n")

	in := NewInput()
	require.NoError(t, in.SetInputPaths(NewJob(nil), f1, f2))

	require.Equal(t, []KeyValue{
		{0, "a"},
		{1, "b"},
		{2, "c"},
	}, collectRecords(t, in))
}

func TestInput_StripsLineEndings(t *testing.T) {
	dir := t.TempDir()
	path := writeInputFile(t, dir, "crlf.txt", "one\r\ntwo\nthree")

	in := NewInput()
	require.NoError(t, in.SetInputPaths(NewJob(nil), path))

	require.Equal(t, []KeyValue{
		{0, "one"},
		{1, "two"},
		{2, "three"},
	}, collectRecords(t, in))
}

func TestInput_LinesLongerThanDefaultScannerLimit(t *testing.T) {
	dir := t.TempDir()
	long := strings.Repeat("x", 2*bufio.MaxScanTokenSize)
	path := writeInputFile(t, dir, "long.txt", long+"\nshort\n")

	in := NewInput()
	require.NoError(t, in.SetInputPaths(NewJob(nil), path))

	records := collectRecords(t, in)
	require.Len(t, records, 2)
	require.Equal(t, long, records[0].Value)
	require.Equal(t, "short", records[1].Value)
}

func TestInput_Restartable(t *testing.T) {
	dir := t.TempDir()
	path := writeInputFile(t, dir, "f.txt", "a\nb\n")

	in := NewInput()
	require.NoError(t, in.SetInputPaths(NewJob(nil), path))

	first := collectRecords(t, in)
	second := collectRecords(t, in)
	require.Equal(t, first, second)
}

func TestInput_MissingFile(t *testing.T) {
	in := NewInput()
	missing := filepath.Join(t.TempDir(), "nope.txt")
	require.NoError(t, in.SetInputPaths(NewJob(nil), missing))

	err := in.each(func(key, value any) error { return nil })
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestInput_RejectsRelativePath(t *testing.T) {
	in := NewInput()
	err := in.SetInputPaths(NewJob(nil), "relative/path.txt")
	require.ErrorIs(t, err, ErrJobNotConfigured)
}

func TestInput_RejectsEmptyPathList(t *testing.T) {
	in := NewInput()
	err := in.SetInputPaths(NewJob(nil))
	require.ErrorIs(t, err, ErrJobNotConfigured)
}

func TestInput_CustomFormatFunc(t *testing.T) {
	dir := t.TempDir()
	path := writeInputFile(t, dir, "f.txt", "alpha\nbeta\n")

	in := NewInput()
	in.SetFormatFunc(func(lineID int, line string) (any, any) {
		return line, lineID
	})
	require.NoError(t, in.SetInputPaths(NewJob(nil), path))

	require.Equal(t, []KeyValue{
		{"alpha", 0},
		{"beta", 1},
	}, collectRecords(t, in))
}
