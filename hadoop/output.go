package hadoop

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// OutputFormatFunc renders one result pair as the exact bytes appended to the
// output file. The default includes the trailing newline; a custom func must
// supply its own.
type OutputFormatFunc func(key, value any) string

func defaultOutputFormat(key, value any) string {
	return fmt.Sprintf("%v %v\n", key, value)
}

// Output serializes the reduce phase's result pairs to a single file, one
// pair per line in write order, truncating any previous file at that path.
type Output struct {
	path   string
	format OutputFormatFunc
}

func NewOutput() *Output {
	return &Output{format: defaultOutputFormat}
}

// SetFormatFunc replaces the default "<key> <value>\n" line format.
func (out *Output) SetFormatFunc(format OutputFormatFunc) {
	out.format = format
}

// SetOutputPath attaches this sink to the job. The path must be absolute.
func (out *Output) SetOutputPath(job *Job, path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("set output path: %w: path %q is not absolute", ErrJobNotConfigured, path)
	}
	out.path = path
	job.setOutput(out)
	return nil
}

// write materializes the result pairs. It is called only after the reduce
// phase has fully succeeded, so a failed job never commits partial output.
func (out *Output) write(results []KeyValue) (err error) {
	file, err := os.Create(out.path)
	if err != nil {
		return fmt.Errorf("create output %s: %w", out.path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output %s: %w", out.path, cerr)
		}
	}()

	w := bufio.NewWriter(file)
	for _, kv := range results {
		if _, err := w.WriteString(out.format(kv.Key, kv.Value)); err != nil {
			return fmt.Errorf("write output %s: %w", out.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output %s: %w", out.path, err)
	}
	return nil
}
