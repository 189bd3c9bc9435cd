package job

import "time"

type Option func(*Job)

// WithBaseDir sets the work tree the output files are written into.
func WithBaseDir(dir string) Option {
	return func(j *Job) {
		j.baseDir = dir
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(j *Job) {
		j.timeout = timeout
	}
}

// WithGate enables the commit step. Without a gate the run stops after
// writing the output files.
func WithGate(gate Committer) Option {
	return func(j *Job) {
		j.gate = gate
	}
}

func WithProber(prober hostProber) Option {
	return func(j *Job) {
		j.prober = prober
	}
}

func WithChecker(checker proxyChecker) Option {
	return func(j *Job) {
		j.checker = checker
	}
}
