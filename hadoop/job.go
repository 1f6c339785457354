package hadoop

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
	"github.com/google/uuid"
)

var (
	// ErrJobNotConfigured reports a run attempted before mapper, reducer,
	// input paths and output path were all set.
	ErrJobNotConfigured = errors.New("job not fully configured")
	// ErrJobAlreadyRun reports a second Run on a job that already started.
	ErrJobAlreadyRun = errors.New("job already run")
	// ErrJobNotRun reports a success query before the job reached a terminal
	// state.
	ErrJobNotRun = errors.New("job has not reached a terminal state")
)

// JobState is the lifecycle state of a Job.
type JobState int

const (
	JobCreated JobState = iota
	JobConfigured
	JobRunning
	JobSucceeded
	JobFailed
)

func (s JobState) String() string {
	switch s {
	case JobCreated:
		return "created"
	case JobConfigured:
		return "configured"
	case JobRunning:
		return "running"
	case JobSucceeded:
		return "succeeded"
	case JobFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Job is one configured unit of map-reduce work, executed at most once. It is
// built empty, configured through setters, consumed by Run and terminal
// afterwards. A Job is not safe for concurrent use; execution is strictly
// sequential on the caller's goroutine.
type Job struct {
	id      string
	config  map[string]string
	mapper  Mapper
	reducer Reducer
	input   *Input
	output  *Output
	compare KeyComparator
	state   JobState
	err     error
}

// NewJob creates an unconfigured job. config may be nil; its entries are
// copied and later served to user code via Context.Configuration.
func NewJob(config map[string]string) *Job {
	job := &Job{
		id:      uuid.New().String(),
		config:  make(map[string]string, len(config)),
		compare: defaultKeyComparator,
	}
	for k, v := range config {
		job.config[k] = v
	}
	return job
}

// ID returns the generated job identifier.
func (j *Job) ID() string {
	return j.id
}

// State returns the job's current lifecycle state.
func (j *Job) State() JobState {
	return j.state
}

func (j *Job) SetMapper(m Mapper) {
	j.mapper = m
	j.checkConfigured()
}

func (j *Job) SetReducer(r Reducer) {
	j.reducer = r
	j.checkConfigured()
}

// SetKeyComparator replaces the default key order used by the shuffle. The
// comparator must impose a total order on every key the mapper emits.
func (j *Job) SetKeyComparator(compare KeyComparator) {
	j.compare = compare
}

func (j *Job) setInput(in *Input) {
	j.input = in
	j.checkConfigured()
}

func (j *Job) setOutput(out *Output) {
	j.output = out
	j.checkConfigured()
}

func (j *Job) checkConfigured() {
	if j.state == JobCreated && j.mapper != nil && j.reducer != nil && j.input != nil && j.output != nil {
		j.state = JobConfigured
	}
}

// Run executes the job: record source → map phase → shuffle/sort → reduce
// phase → output write, strictly in sequence. Any failure moves the job to
// JobFailed and leaves the output file untouched; output is written only
// after the reduce phase fully completes. A second Run on the same job is
// rejected with ErrJobAlreadyRun and has no side effects.
func (j *Job) Run() error {
	if j.state == JobRunning || j.state == JobSucceeded || j.state == JobFailed {
		return fmt.Errorf("run: %w (state %s)", ErrJobAlreadyRun, j.state)
	}
	if j.state != JobConfigured {
		return j.fail(j.missingConfig())
	}

	j.state = JobRunning
	glog.V(1).Infof("job %s: starting, %d input file(s)", j.id, len(j.input.paths))

	intermediate, err := j.runMapPhase()
	if err != nil {
		return j.fail(err)
	}
	glog.V(1).Infof("job %s: map phase complete, %d intermediate pair(s)", j.id, len(intermediate))

	groups, err := shuffle(intermediate, j.compare)
	if err != nil {
		return j.fail(fmt.Errorf("shuffle: %w", err))
	}
	glog.V(1).Infof("job %s: shuffle complete, %d group(s)", j.id, len(groups))

	results, err := j.runReducePhase(groups)
	if err != nil {
		return j.fail(err)
	}
	glog.V(1).Infof("job %s: reduce phase complete, %d result pair(s)", j.id, len(results))

	if err := j.output.write(results); err != nil {
		return j.fail(err)
	}

	j.state = JobSucceeded
	glog.V(1).Infof("job %s: succeeded", j.id)
	return nil
}

// IsSuccessful reports whether the job reached JobSucceeded. Querying a job
// that has not reached a terminal state is an error.
func (j *Job) IsSuccessful() (bool, error) {
	if j.state != JobSucceeded && j.state != JobFailed {
		return false, fmt.Errorf("is successful: %w (state %s)", ErrJobNotRun, j.state)
	}
	return j.state == JobSucceeded, nil
}

// Err returns the failure that moved the job to JobFailed, or nil.
func (j *Job) Err() error {
	return j.err
}

func (j *Job) fail(err error) error {
	j.state = JobFailed
	j.err = err
	glog.V(1).Infof("job %s: failed: %v", j.id, err)
	return err
}

func (j *Job) missingConfig() error {
	var missing string
	switch {
	case j.mapper == nil:
		missing = "mapper"
	case j.reducer == nil:
		missing = "reducer"
	case j.input == nil:
		missing = "input paths"
	default:
		missing = "output path"
	}
	return fmt.Errorf("run: %w: missing %s", ErrJobNotConfigured, missing)
}

func (j *Job) runMapPhase() ([]KeyValue, error) {
	ctx := newContext(j.config)
	if h, ok := j.mapper.(SetupHook); ok {
		if err := h.Setup(ctx); err != nil {
			return nil, fmt.Errorf("mapper setup: %w", err)
		}
	}
	err := j.input.each(func(key, value any) error {
		if err := j.mapper.Map(key, value, ctx); err != nil {
			return fmt.Errorf("mapping error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if h, ok := j.mapper.(CleanupHook); ok {
		if err := h.Cleanup(ctx); err != nil {
			return nil, fmt.Errorf("mapper cleanup: %w", err)
		}
	}
	return ctx.pairs, nil
}

func (j *Job) runReducePhase(groups []group) ([]KeyValue, error) {
	ctx := newContext(j.config)
	if h, ok := j.reducer.(SetupHook); ok {
		if err := h.Setup(ctx); err != nil {
			return nil, fmt.Errorf("reducer setup: %w", err)
		}
	}
	for _, g := range groups {
		if err := j.reducer.Reduce(g.key, newValueIterator(g.values), ctx); err != nil {
			return nil, fmt.Errorf("reduce error for key %v: %w", g.key, err)
		}
	}
	if h, ok := j.reducer.(CleanupHook); ok {
		if err := h.Cleanup(ctx); err != nil {
			return nil, fmt.Errorf("reducer cleanup: %w", err)
		}
	}
	return ctx.pairs, nil
}
