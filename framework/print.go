package framework

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	passColor   = color.New(color.FgGreen)
	failColor   = color.New(color.FgRed)
	overallPass = color.New(color.FgGreen, color.Bold)
	overallFail = color.New(color.FgRed, color.Bold)
)

// PrintResults prints the per-step summary for an entire flow. The allSteps
// list is the full planned order, so steps that were never reached after a
// failure still appear in the table as "not run".
func PrintResults(results Results, allSteps []string) {
	executed := make(map[StepID]StepResult, len(results.Steps))
	for _, r := range results.Steps {
		executed[r.StepID] = r
	}

	fmt.Println("Flow summary:")
	passed := 0
	for _, name := range allSteps {
		fmt.Printf("  %-24s ", name)
		result, ran := executed[StepID(name)]
		switch {
		case !ran:
			fmt.Println("not run")
		case result.Failed():
			failColor.Println("FAIL")
		case len(result.Warnings) > 0:
			passed++
			passColor.Println("PASS (with warnings)")
		default:
			passed++
			passColor.Println("PASS")
		}
	}

	if results.OK() && len(results.Steps) == len(allSteps) {
		overallPass.Printf("\nAll %d steps passed\n", len(allSteps))
	} else {
		overallFail.Printf("\n%d of %d steps passed; flow failed\n", passed, len(allSteps))
	}
}
