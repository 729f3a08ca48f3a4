package main

import (
	"flag"
	"fmt"

	"github.com/unicitynetwork/cli-sub013/config"
	"github.com/unicitynetwork/cli-sub013/internal/storage"
	"github.com/unicitynetwork/cli-sub013/internal/tokenstore"
	"github.com/unicitynetwork/cli-sub013/pkg/txf"
	"github.com/unicitynetwork/cli-sub013/pkg/types"
)

func cmdStore(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fatal("Usage: txf store <put|get|list|delete> ...")
	}
	if err := config.EnsureDataDirs(cfg); err != nil {
		fatal("%v", err)
	}
	db, err := storage.NewBadger(cfg.VaultDir())
	if err != nil {
		fatal("open vault: %v", err)
	}
	store := tokenstore.NewStore(db)

	// Subcommands return errors so the vault is closed before exit.
	switch args[0] {
	case "put":
		err = cmdStorePut(store, args[1:])
	case "get":
		err = cmdStoreGet(store, args[1:])
	case "list":
		err = cmdStoreList(store)
	case "delete":
		err = cmdStoreDelete(store, args[1:])
	default:
		err = fmt.Errorf("unknown store command: %s", args[0])
	}
	if cerr := db.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close vault: %w", cerr)
	}
	if err != nil {
		fatal("%v", err)
	}
}

func cmdStorePut(store *tokenstore.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: txf store put <file>")
	}
	tok, r := txf.Load(readInput(args[0]))
	if tok == nil {
		return r.Err()
	}
	id, err := store.Put(tok)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

func cmdStoreGet(store *tokenstore.Store, args []string) error {
	fs := flag.NewFlagSet("store get", flag.ExitOnError)
	out := fs.String("out", "", "Output file (default: stdout)")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: txf store get [--out <file>] <id>")
	}
	id, err := types.HexToHash(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	data, err := store.Get(id)
	if err != nil {
		return err
	}
	writeOutput(*out, data)
	return nil
}

func cmdStoreList(store *tokenstore.Store) error {
	entries, err := store.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("Vault is empty.")
		return nil
	}
	fmt.Printf("%-64s  %-12s  %-4s  %s\n", "ID", "STATUS", "TXS", "TOKEN")
	for _, e := range entries {
		status := string(e.Status)
		if status == "" {
			status = "-"
		}
		fmt.Printf("%-64s  %-12s  %-4d  %s\n", e.ID, status, e.Transactions, e.TokenID)
	}
	return nil
}

func cmdStoreDelete(store *tokenstore.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: txf store delete <id>")
	}
	id, err := types.HexToHash(args[0])
	if err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	if err := store.Delete(id); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", id.Short())
	return nil
}
