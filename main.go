package main

import (
	"fmt"
	"os"

	"github.com/bcgov/traction-flow-tests/client"
	"github.com/bcgov/traction-flow-tests/flowtests"
	"github.com/bcgov/traction-flow-tests/framework"
)

const defaultBaseURL = "http://localhost:8032"

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	apiClient := client.NewTenantProxyClient(params.baseURL)

	fmt.Printf("Running tenant onboarding flow against %s\n", params.baseURL)
	fmt.Println()

	stepLogger := &ConsoleStepLogger{
		DebugOutputOnFailure: params.debug,
		DebugOutputOnSuccess: params.debug,
	}

	results := flowtests.RunFlow(apiClient, stepLogger)

	fmt.Println()
	framework.PrintResults(results, flowtests.AllSteps)
	if !results.OK() {
		fmt.Printf("\nTo retry: %s\n", params.RetryCommand(os.Args[0]))
		os.Exit(1)
	}
}
