// procplot renders recorded process CPU/RSS samples into a dual-axis chart.
//
// Samples come from a recorder run (JSON lines or CSV with ts,cpu,rss). The chart title is
// "PID <n>" when --pid is given, otherwise the command tokens after "--".
//
//	procplot render --input run.jsonl --output run.png --pid 4242
//	procplot render -i run.csv -o run.svg -- make -j8
//	procplot summary -i run.jsonl
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
