package main

import (
	"fmt"
	"os"

	"lokey/internal/engine"
	"lokey/internal/plan"
)

// emitPlan applies a planned write set (unless dryRun) and prints the result.
// An empty plan is a silent success in human mode.
func emitPlan(e *engine.Engine, command string, ops []plan.WriteOp, dryRun bool, format string) {
	applied := false
	if !dryRun && len(ops) > 0 {
		if err := e.Apply(ops); err != nil {
			fmt.Fprintf(os.Stderr, "Error applying changes: %v\n", err)
			os.Exit(1)
		}
		applied = true
	}

	resp := &PlanResponse{
		Command: command,
		DryRun:  dryRun,
		Applied: applied,
		Ops:     ops,
	}
	output, err := FormatResponse(resp, OutputFormat(format))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(output)
}
