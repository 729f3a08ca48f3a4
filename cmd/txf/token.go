package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/unicitynetwork/cli-sub013/config"
	klog "github.com/unicitynetwork/cli-sub013/internal/log"
	"github.com/unicitynetwork/cli-sub013/pkg/txf"
)

// isOfflinePackage reports whether data is a standalone legacy package
// rather than a token record.
func isOfflinePackage(data []byte) bool {
	var probe struct {
		Type string `json:"type"`
	}
	return json.Unmarshal(data, &probe) == nil && probe.Type == txf.OfflineTransferType
}

// printResult prints a validation verdict and exits 1 when it has errors.
func printResult(r txf.Result, asJSON bool) {
	if asJSON {
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			fatal("encode result: %v", err)
		}
		fmt.Println(string(out))
	} else {
		if r.IsValid() {
			fmt.Println("Valid:    yes")
		} else {
			fmt.Println("Valid:    no")
		}
		for _, e := range r.Errors {
			fmt.Printf("  error:   %s\n", e)
		}
		for _, w := range r.Warnings {
			fmt.Printf("  warning: %s\n", w)
		}
	}
	if !r.IsValid() {
		os.Exit(1)
	}
}

// validatePackageData decodes and validates a standalone legacy package.
// Decode failures are reported in the result like any other problem.
func validatePackageData(data []byte) txf.Result {
	pkg, err := txf.DecodeOfflineTransfer(data)
	if err != nil {
		var r txf.Result
		r.Errorf("malformed offline transfer JSON: %v", err)
		return r
	}
	return txf.ValidateOfflineTransfer(pkg)
}

// loadToken decodes and structurally checks a token file, exiting with the
// verdict if it is unusable.
func loadToken(path string, asJSON bool) *txf.Token {
	tok, r := txf.Load(readInput(path))
	if tok == nil {
		printResult(r, asJSON)
	}
	return tok
}

// ── validate ────────────────────────────────────────────────────────────

func cmdValidate(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	allowUncommitted := fs.Bool("allow-uncommitted", cfg.Validate.AllowUncommitted, "Accept an uncommitted last transfer")
	asJSON := fs.Bool("json", false, "Print the result as JSON")
	fs.Parse(args)
	path := fileArg(fs, "validate [--allow-uncommitted] [--json] <file>")

	data := readInput(path)
	if isOfflinePackage(data) {
		printResult(validatePackageData(data), *asJSON)
		return
	}

	tok, r := txf.Load(data)
	if tok != nil {
		r = txf.Validate(tok, txf.Options{Chain: txf.ChainOptions{AllowUncommitted: *allowUncommitted}})
	}
	klog.Validate.Info().
		Str("file", path).
		Bool("valid", r.IsValid()).
		Int("errors", len(r.Errors)).
		Int("warnings", len(r.Warnings)).
		Msg("Token validated")
	printResult(r, *asJSON)
}

// ── status ──────────────────────────────────────────────────────────────

func cmdStatus(args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "Print the report as JSON")
	fs.Parse(args)
	tok := loadToken(fileArg(fs, "status [--json] <file>"), *asJSON)

	r := txf.CheckStatusConsistency(tok)
	inferred := txf.InferStatus(tok)

	if *asJSON {
		out, err := json.MarshalIndent(map[string]interface{}{
			"declared":          tok.Status,
			"inferred":          inferred,
			"format":            tok.Format().String(),
			"transactions":      len(tok.Transactions),
			"hasCompleteProofs": tok.HasCompleteProofs(),
			"consistency":       r,
		}, "", "  ")
		if err != nil {
			fatal("encode status: %v", err)
		}
		fmt.Println(string(out))
		if !r.IsValid() {
			os.Exit(1)
		}
		return
	}

	declared := string(tok.Status)
	if declared == "" {
		declared = "(none)"
	}
	fmt.Printf("Declared:     %s\n", declared)
	fmt.Printf("Inferred:     %s\n", inferred)
	fmt.Printf("Format:       %s\n", tok.Format())
	fmt.Printf("Transactions: %d\n", len(tok.Transactions))
	fmt.Printf("Proofs:       %v\n", tok.HasCompleteProofs())
	if tok.Status.Valid() && tok.Status.IsTerminal() {
		fmt.Println("Terminal:     yes")
	}
	printResult(r, false)
}

// ── sanitize ────────────────────────────────────────────────────────────

func cmdSanitize(args []string) {
	fs := flag.NewFlagSet("sanitize", flag.ExitOnError)
	out := fs.String("out", "", "Output file (default: stdout)")
	fs.Parse(args)
	data := readInput(fileArg(fs, "sanitize [--out <file>] <file>"))

	var (
		exported []byte
		err      error
	)
	if isOfflinePackage(data) {
		pkg, decErr := txf.DecodeOfflineTransfer(data)
		if decErr != nil {
			fatal("decode package: %v", decErr)
		}
		exported, err = txf.MarshalOfflineTransferForExport(pkg)
	} else {
		tok, decErr := txf.Decode(data)
		if decErr != nil {
			fatal("decode token: %v", decErr)
		}
		exported, err = txf.MarshalForExport(tok)
	}
	if err != nil {
		fatal("encode: %v", err)
	}
	writeOutput(*out, exported)
}

// ── upgrade ─────────────────────────────────────────────────────────────

func cmdUpgrade(args []string) {
	fs := flag.NewFlagSet("upgrade", flag.ExitOnError)
	out := fs.String("out", "", "Output file (default: stdout)")
	fs.Parse(args)
	tok := loadToken(fileArg(fs, "upgrade [--out <file>] <file>"), false)

	before := tok.Format()
	up := txf.UpgradeToExtended(tok)
	klog.CLI.Info().
		Stringer("from", before).
		Str("status", string(up.Status)).
		Msg("Token upgraded")

	exported, err := txf.MarshalForExport(up)
	if err != nil {
		fatal("encode: %v", err)
	}
	writeOutput(*out, exported)
}

// ── check-transfer ──────────────────────────────────────────────────────

func cmdCheckTransfer(args []string) {
	fs := flag.NewFlagSet("check-transfer", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "Print the result as JSON")
	fs.Parse(args)
	data := readInput(fileArg(fs, "check-transfer [--json] <file>"))

	if isOfflinePackage(data) {
		printResult(validatePackageData(data), *asJSON)
		return
	}
	tok, err := txf.Decode(data)
	if err != nil {
		var r txf.Result
		r.Errorf("malformed token JSON: %v", err)
		printResult(r, *asJSON)
		return
	}
	if tok.OfflineTransfer == nil {
		fatal("no offline transfer package in file")
	}
	printResult(txf.ValidateOfflineTransfer(tok.OfflineTransfer), *asJSON)
}
