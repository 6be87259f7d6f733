package otp

import "go.uber.org/multierr"

// Result represents the outcome of processing a single request.
type Result struct {
	// Input file path, or the name hint for key generation
	Input string

	// Output file paths that were committed
	Outputs []string

	// Total size in bytes of the committed outputs
	OutputSize int64

	// Any error that occurred during processing
	Error error
}

// Report collects the results of one batch, in request order.
type Report struct {
	Results []Result
}

// Processed returns the number of requests that completed without error.
func (r Report) Processed() int {
	var n int

	for _, res := range r.Results {
		if res.Error == nil {
			n++
		}
	}

	return n
}

// Errored returns the number of requests that reported an error.
func (r Report) Errored() int {
	return len(r.Results) - r.Processed()
}

// Size returns the total number of bytes written by the batch.
func (r Report) Size() int64 {
	var total int64

	for _, res := range r.Results {
		total += res.OutputSize
	}

	return total
}

// Err combines the errors of all failed requests, or returns nil.
func (r Report) Err() error {
	var err error

	for _, res := range r.Results {
		err = multierr.Append(err, res.Error)
	}

	return err
}

// Merge appends the results of other to r.
func (r *Report) Merge(other Report) {
	r.Results = append(r.Results, other.Results...)
}
