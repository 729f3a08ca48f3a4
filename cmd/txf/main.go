// txf is a command-line tool for validating, sanitizing and storing TXF
// token files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/unicitynetwork/cli-sub013/config"
	klog "github.com/unicitynetwork/cli-sub013/internal/log"
)

const version = "0.1.0"

func main() {
	cfg, flags, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		usage()
		os.Exit(0)
	}
	if err != nil {
		fatal("%v", err)
	}
	if flags.Help {
		usage()
		os.Exit(0)
	}
	if flags.Version {
		fmt.Printf("txf version %s\n", version)
		os.Exit(0)
	}
	if err := klog.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("init logging: %v", err)
	}

	args := flags.Args
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]
	klog.CLI.Debug().Str("command", cmd).Strs("args", cmdArgs).Msg("Dispatching")

	switch cmd {
	case "validate":
		cmdValidate(cfg, cmdArgs)
	case "status":
		cmdStatus(cmdArgs)
	case "sanitize":
		cmdSanitize(cmdArgs)
	case "upgrade":
		cmdUpgrade(cmdArgs)
	case "check-transfer":
		cmdCheckTransfer(cmdArgs)
	case "origin":
		cmdOrigin(cfg, cmdArgs)
	case "store":
		cmdStore(cfg, cmdArgs)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: txf [global flags] <command> [flags]

Global flags:
  --config <path>       Config file (default: <datadir>/txf.conf)
  --datadir <path>      Data directory (default: ~/.txf)
  --origin-rpc <url>    Proof-of-work node JSON-RPC endpoint
  --log-level <level>   debug, info (default), warn, error, off
  --log-json            Output logs as JSON
  --log-file <path>     Also write JSON logs to a file

Commands:
  validate [--allow-uncommitted] [--json] <file>
                                  Validate a token file or legacy package
  status [--json] <file>          Show declared and inferred token status
  sanitize [--out <file>] <file>  Strip private key material for export
  upgrade [--out <file>] <file>   Lift a legacy token into the extended format
  check-transfer [--json] <file>  Validate a legacy offline-transfer package

  origin encode --height <n>      Print a coin origin proof payload
  origin decode <hex|json>        Decode and check a coin origin proof
  origin verify <file>            Resolve a token's coin origin proof on the ledger

  store put <file>                Sanitize and store a token in the vault
  store get [--out <file>] <id>   Print a stored token
  store list                      List stored tokens
  store delete <id>               Remove a token from the vault

A file argument of "-" reads standard input. Commands that check a token
exit with status 1 when it has errors.
`)
}

// ── I/O helpers ─────────────────────────────────────────────────────────

func readInput(path string) []byte {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		fatal("read %s: %v", path, err)
	}
	return data
}

// writeOutput writes exported bytes to path, or to stdout when path is
// empty. Files are created owner-only.
func writeOutput(path string, data []byte) {
	if path == "" {
		os.Stdout.Write(data)
		fmt.Println()
		return
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		fatal("write %s: %v", path, err)
	}
	klog.CLI.Info().Str("file", path).Int("bytes", len(data)).Msg("Wrote sanitized output")
}

func fileArg(fs *flag.FlagSet, usage string) string {
	if fs.NArg() != 1 {
		fatal("Usage: txf %s", usage)
	}
	return fs.Arg(0)
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
