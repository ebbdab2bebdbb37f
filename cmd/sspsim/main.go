// sspsim is a Secure Simple Pairing conformance simulator.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/backkem/sspsim/internal/btaddr"
	"github.com/backkem/sspsim/internal/config"
	"github.com/backkem/sspsim/internal/events"
	"github.com/backkem/sspsim/internal/harness"
	"github.com/backkem/sspsim/internal/logging"
	"github.com/backkem/sspsim/internal/scenario"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const defaultLogLevel = "info"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "pair":
		runPair(args)
	case "scenarios":
		printScenarios()
	case "version", "--version", "-v":
		fmt.Printf("sspsim %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`sspsim - Secure Simple Pairing conformance simulator

Usage:
  sspsim <command> [flags]

Commands:
  pair        Run a simulated pairing between two scripted hosts
  scenarios   List the built-in IO-capability scenarios
  version     Print version information

Flags for pair:
  --scenario  Scenario name (see 'sspsim scenarios'), default: display-yes-no
  --reject    Have the responder decline every user prompt
  --log       Log level: error|warn|info|debug|trace (default: info)
  --events    Write JSON Line events to: stdout, stderr, or a file path

Examples:
  sspsim scenarios
  sspsim pair --scenario display-yes-no
  sspsim pair --scenario passkey-entry --events stdout
  sspsim pair --scenario numeric-comparison --reject
  sspsim pair --scenario out-of-band
`)
}

func printScenarios() {
	fmt.Print(`Built-in scenarios:
  display-yes-no        Numeric Comparison User Confirm, both sides DisplayYesNo
  numeric-comparison     Numeric Comparison Just Works, both sides NoInputNoOutput
  passkey-entry          Passkey Entry, KeyboardOnly initiator vs DisplayOnly responder
  out-of-band            Out of Band, both sides present OOB data
`)
}

func runPair(args []string) {
	fs := flag.NewFlagSet("pair", flag.ExitOnError)

	scenarioName := fs.String("scenario", "display-yes-no", "Scenario name")
	reject := fs.Bool("reject", false, "Have the responder decline every user prompt")
	logLevel := fs.String("log", defaultLogLevel, "Log level: error|warn|info|debug|trace")
	eventsOutput := fs.String("events", "", "Write JSON Line events to: stdout, stderr, or a file path")

	fs.Parse(args)

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewLogger(level)

	emitter, err := createEmitter(*eventsOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating event emitter: %v\n", err)
		os.Exit(1)
	}
	defer emitter.Close()

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config: %v", err)
		def := config.Default()
		cfg = &def
	}

	initiatorParams, responderParams, err := resolveScenario(*scenarioName, *cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	initiatorSide := harness.Side{
		Addr:                     btaddr.Random(),
		Script:                   scenario.AcceptAll(initiatorParams),
		SecureConnectionsSupport: true,
	}
	responderScript := scenario.AcceptAll(responderParams)
	if *reject {
		responderScript = scenario.RejectUserPrompts(responderParams)
	}
	responderSide := harness.Side{
		Addr:                     btaddr.Random(),
		Script:                   responderScript,
		SecureConnectionsSupport: true,
	}

	logger.Info("sspsim %s starting, scenario=%s", Version, *scenarioName)

	initResult, respResult := harness.Run(initiatorSide, responderSide, emitter)

	printResult(responderSide.Addr, initResult, logger)
	printResult(initiatorSide.Addr, respResult, logger)

	if initResult.Err != nil || respResult.Err != nil {
		os.Exit(1)
	}
}

// printResult logs one side's outcome tagged to the peer it paired with.
func printResult(peer btaddr.Addr, result harness.Result, logger *logging.Logger) {
	if result.Err != nil {
		logger.Pairing(peer, "failed: %v", result.Err)
		return
	}
	logger.Pairing(peer, "complete, method=%s keytype=%s", result.Stats.Method, result.Stats.KeyType)
}

func resolveScenario(name string, cfg config.Config) (initiator, responder scenario.Params, err error) {
	switch name {
	case "display-yes-no":
		p := scenario.DisplayYesNoMITM()
		return p, p, nil
	case "numeric-comparison":
		p := scenario.NoInputNoOutputNoMITM()
		return p, p, nil
	case "passkey-entry":
		return scenario.KeyboardOnlyMITM(), scenario.DisplayOnlyMITM(), nil
	case "out-of-band":
		p := scenario.OutOfBandMITM()
		return p, p, nil
	default:
		io, oob, auth := cfg.Params()
		return scenario.Params{}, scenario.Params{}, fmt.Errorf("unknown scenario %q (defaults: io=%s oob=%s auth=%s)", name, io, oob, auth)
	}
}

func createEmitter(output string) (events.Emitter, error) {
	switch output {
	case "":
		return events.NopEmitter{}, nil
	case "stdout":
		return events.NewAsyncJSONLineWriter(os.Stdout), nil
	case "stderr":
		return events.NewAsyncJSONLineWriter(os.Stderr), nil
	default:
		f, err := os.Create(output)
		if err != nil {
			return nil, fmt.Errorf("failed to create events output file: %w", err)
		}
		return events.NewAsyncJSONLineWriter(f), nil
	}
}
