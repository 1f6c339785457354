package hadoop

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxLineBytes bounds a single input line; bufio.Scanner's default 64KB
// token limit is too small for arbitrary text input.
const maxLineBytes = 16 << 20

// InputFormatFunc shapes one raw input line into the (key, value) record fed
// to the mapper. lineID is the zero-based line index across the whole input
// file list; line has its terminator already stripped.
type InputFormatFunc func(lineID int, line string) (key, value any)

func defaultInputFormat(lineID int, line string) (any, any) {
	return lineID, line
}

// Input turns an ordered list of text files into the record sequence consumed
// by the map phase: one record per line, keyed by the zero-based line index
// over the logical concatenation of all files (keys do not reset per file).
type Input struct {
	paths  []string
	format InputFormatFunc
}

func NewInput() *Input {
	return &Input{format: defaultInputFormat}
}

// SetFormatFunc replaces the default (lineID, line) record shape.
func (in *Input) SetFormatFunc(format InputFormatFunc) {
	in.format = format
}

// SetInputPaths attaches this source to the job. Paths must be absolute; the
// list must not be empty. Existence is only checked when the job runs.
func (in *Input) SetInputPaths(job *Job, paths ...string) error {
	if len(paths) == 0 {
		return fmt.Errorf("set input paths: %w: empty path list", ErrJobNotConfigured)
	}
	for _, path := range paths {
		if !filepath.IsAbs(path) {
			return fmt.Errorf("set input paths: %w: path %q is not absolute", ErrJobNotConfigured, path)
		}
	}
	in.paths = paths
	job.setInput(in)
	return nil
}

// each reads every input file in list order and calls fn once per record.
// Iteration restarts from the first file on every call.
func (in *Input) each(fn func(key, value any) error) error {
	lineID := 0
	for _, path := range in.paths {
		if err := in.eachLine(path, &lineID, fn); err != nil {
			return err
		}
	}
	return nil
}

func (in *Input) eachLine(path string, lineID *int, fn func(key, value any) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	for scanner.Scan() {
		// Scanner strips the \n; CRLF input still carries the \r here.
		line := strings.TrimSuffix(scanner.Text(), "\r")
		key, value := in.format(*lineID, line)
		if err := fn(key, value); err != nil {
			return err
		}
		*lineID++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input %s: %w", path, err)
	}
	return nil
}
