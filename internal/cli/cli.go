package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtopo/internal/app"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// ExitUsage is the exit code for malformed command lines.
const ExitUsage = 2

const usage = `
lvtopo - deterministic synthetic network topologies.

Usage:
  lvtopo gen   [options] TOPOLOGY ARG...
  lvtopo gen   -topology ring -args 10 [options]
  lvtopo build [options] MANIFEST
  lvtopo kinds

Commands:
  gen    Generate one topology and write it as YAML or JSON.
  build  Generate every fixture listed in a YAML or HCL manifest.
  kinds  List topology kinds and their parameters.

Run 'lvtopo COMMAND -h' for the options of a command.
`

// Parse turns argv (without the program name) into an app.Config. It returns
// shouldExit=true when help was printed and nothing else should run.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	if len(args) == 0 {
		fmt.Fprint(output, usage)
		return nil, true, nil
	}

	cmd := args[0]
	switch cmd {
	case "-h", "-help", "--help", "help":
		fmt.Fprint(output, usage)
		return nil, true, nil
	case app.CommandGen, app.CommandBuild, app.CommandKinds:
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unknown command %q; run 'lvtopo help'", cmd)}
	}

	flagSet := flag.NewFlagSet("lvtopo "+cmd, flag.ContinueOnError)
	flagSet.SetOutput(output)

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	metricsFlag := flagSet.String("metrics-out", "", "Write Prometheus metrics in text format to this file.")

	var (
		topologyFlag, argsFlag, manifestFlag, outFlag, formatFlag *string
		verifyFlag                                                *bool
	)
	switch cmd {
	case app.CommandGen:
		topologyFlag = flagSet.String("topology", "", "Topology kind, e.g. 'ring' or 'k_ary_tree'.")
		argsFlag = flagSet.String("args", "", "Comma-separated generator arguments, e.g. '3,5'.")
		outFlag = flagSet.String("out", "", "Output file. Empty writes to stdout. A '.sz' suffix compresses.")
		formatFlag = flagSet.String("format", "", "Output format: 'yaml' or 'json'. Defaults to the -out extension, then yaml.")
		verifyFlag = flagSet.Bool("verify", false, "Verify the generated topology before writing it.")
	case app.CommandBuild:
		manifestFlag = flagSet.String("manifest", "", "Path to a .yaml, .yml or .hcl manifest.")
		outFlag = flagSet.String("out", "", "Output directory. Empty prints a summary only.")
		formatFlag = flagSet.String("format", "yaml", "Output format: 'yaml' or 'json'.")
		verifyFlag = flagSet.Bool("verify", false, "Verify every fixture before writing it.")
	}

	if err := flagSet.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	cfg := app.Config{
		Command:    cmd,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
		MetricsOut: *metricsFlag,
	}
	rest := flagSet.Args()
	switch cmd {
	case app.CommandGen:
		cfg.Topology = *topologyFlag
		cfg.Args = parseArgs(*argsFlag)
		if cfg.Topology == "" && len(rest) > 0 {
			cfg.Topology, rest = rest[0], rest[1:]
		}
		for _, s := range rest {
			cfg.Args = append(cfg.Args, parseArg(s))
		}
		rest = nil
	case app.CommandBuild:
		cfg.Manifest = *manifestFlag
		if cfg.Manifest == "" && len(rest) > 0 {
			cfg.Manifest, rest = rest[0], rest[1:]
		}
	}
	if len(rest) > 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(rest, " "))}
	}
	if outFlag != nil {
		cfg.Out = *outFlag
		cfg.Format = strings.ToLower(*formatFlag)
		cfg.Verify = *verifyFlag
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	return config, false, nil
}

// parseArgs splits a comma-separated list. Empty input yields nil.
func parseArgs(s string) []interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]interface{}, 0, len(parts))
	for _, p := range parts {
		out = append(out, parseArg(p))
	}

	return out
}

// parseArg returns an int when s is a decimal integer and the trimmed string
// otherwise, leaving the type decision to builder.Generate.
func parseArg(s string) interface{} {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}

	return s
}
