package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/unicitynetwork/cli-sub013/config"
	klog "github.com/unicitynetwork/cli-sub013/internal/log"
	"github.com/unicitynetwork/cli-sub013/internal/rpcclient"
	"github.com/unicitynetwork/cli-sub013/pkg/origin"
)

func cmdOrigin(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fatal("Usage: txf origin <encode|decode|verify> ...")
	}
	switch args[0] {
	case "encode":
		cmdOriginEncode(args[1:])
	case "decode":
		cmdOriginDecode(args[1:])
	case "verify":
		cmdOriginVerify(cfg, args[1:])
	default:
		fatal("unknown origin command: %s", args[0])
	}
}

func cmdOriginEncode(args []string) {
	fs := flag.NewFlagSet("origin encode", flag.ExitOnError)
	height := fs.Int64("height", -1, "Block height of the minting block")
	fs.Parse(args)
	if *height < 0 {
		fatal("Usage: txf origin encode --height <n>")
	}

	p := origin.New(*height)
	fmt.Printf("Payload:   %s\n", origin.Serialize(p))
	fmt.Printf("TokenData: %s\n", origin.TokenDataHex(p))
}

func cmdOriginDecode(args []string) {
	if len(args) != 1 {
		fatal("Usage: txf origin decode <hex|json>")
	}
	in := strings.TrimSpace(args[0])
	data := []byte(in)
	if !strings.HasPrefix(in, "{") {
		b, err := hex.DecodeString(strings.TrimPrefix(in, "0x"))
		if err != nil {
			fatal("payload is neither JSON nor hex: %v", err)
		}
		data = b
	}

	p, err := origin.ExtractFromTokenData(data)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Version:     %s\n", p.Version)
	fmt.Printf("BlockHeight: %d\n", p.BlockHeight)
	if !origin.ValidateProofStructure(p) {
		fatal("proof does not pass structure validation (expected version %s)", origin.Version)
	}
	fmt.Println("Structure:   ok")
}

func cmdOriginVerify(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("origin verify", flag.ExitOnError)
	fs.Parse(args)
	tok := loadToken(fileArg(fs, "origin verify <file>"), false)

	p, err := origin.ExtractFromToken(tok)
	if err != nil {
		fatal("%v", err)
	}
	if cfg.Origin.RPC == "" {
		fatal("no ledger endpoint configured (set origin.rpc or --origin-rpc)")
	}

	client := rpcclient.NewWithTimeout(cfg.Origin.RPC, cfg.Origin.Timeout)
	if cfg.Origin.User != "" {
		client.SetBasicAuth(cfg.Origin.User, cfg.Origin.Password)
	}
	v := &origin.Verifier{Headers: client}

	defer klog.Benchmark("origin verify")()
	h, err := v.Verify(p)
	if err != nil {
		fatal("verify: %v", err)
	}

	fmt.Printf("Height:      %d\n", h.Height)
	fmt.Printf("Block:       %s\n", h.Hash)
	fmt.Printf("Merkle Root: %s\n", h.MerkleRoot)
	fmt.Printf("Bits:        %s\n", h.Bits)
	ts := time.Unix(h.Time, 0).UTC()
	fmt.Printf("Timestamp:   %s\n", ts.Format("2006-01-02 15:04:05 UTC"))
}
