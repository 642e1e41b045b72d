// Package types holds the records exchanged between the sampler and the plotting pipeline.
package types

// Sample is one monitoring observation of a process.
type Sample struct {
	// TS is the elapsed time in seconds since monitoring started.
	TS float64 `json:"ts"`
	// CPU is the utilization in percent. Values above 100 are valid on multi-core hosts.
	CPU float64 `json:"cpu"`
	// RSS is the resident memory size in bytes.
	RSS uint64 `json:"rss"`
}

// Opts describes what was monitored and where the chart goes.
type Opts struct {
	// PID is set when a running process was attached to.
	PID *int
	// Command holds the invoked command line when no PID is set.
	Command []string
	// Output is the destination image path.
	Output string
}
