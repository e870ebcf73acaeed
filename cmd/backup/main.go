// Command finance-backup exports, imports and rolls over the configured
// store without running the API server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/wealthpath/finance-tracker/internal/config"
	"github.com/wealthpath/finance-tracker/internal/logger"
	"github.com/wealthpath/finance-tracker/internal/repository"
	"github.com/wealthpath/finance-tracker/internal/service"
	"github.com/wealthpath/finance-tracker/internal/store"
)

const usage = `usage: finance-backup [flags] <export|import|rollover>

  export    write a JSON backup to -file (stdout when empty)
  import    replace debts, fixed bills and incomes with the backup in -file (stdin when empty)
  rollover  reset recurring bills paid in an earlier month

flags:
`

func main() {
	file := flag.String("file", "", "Backup file path")
	askPass := flag.Bool("ask-passphrase", false, "Prompt for the file store passphrase")
	timeout := flag.Duration("timeout", time.Minute, "Overall timeout")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	// Logs go to stderr so an export can be piped from stdout.
	logger.Setup(cfg.Env, os.Stderr)

	if *askPass {
		pass, err := promptPassphrase()
		if err != nil {
			fmt.Fprintln(os.Stderr, "reading passphrase:", err)
			os.Exit(1)
		}
		cfg.Store.Passphrase = pass
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg, flag.Arg(0), *file); err != nil {
		logger.Error("finance-backup failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, command, file string) error {
	st, closeStore, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	debtRepo := repository.NewDebtRepository(st)
	billRepo := repository.NewFixedBillRepository(st)
	incomeRepo := repository.NewIncomeRepository(st)

	switch command {
	case "export":
		data, err := service.NewBackupService(debtRepo, billRepo, incomeRepo, time.Now).ExportJSON(ctx)
		if err != nil {
			return err
		}
		if file == "" {
			_, err = os.Stdout.Write(append(data, '\n'))
			return err
		}
		if err := os.WriteFile(file, data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", file, err)
		}
		logger.Info("Backup exported", "file", file, "bytes", len(data))
		return nil

	case "import":
		raw, err := readInput(file)
		if err != nil {
			return err
		}
		data, err := service.NewBackupService(debtRepo, billRepo, incomeRepo, time.Now).Import(ctx, raw)
		if err != nil {
			return err
		}
		fmt.Printf("imported %d debts, %d fixed bills, %d incomes\n", len(data.Debts), len(data.FixedBills), len(data.Incomes))
		return nil

	case "rollover":
		n, err := service.NewFixedBillService(billRepo, time.Now).Rollover(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("reset %d bills\n", n)
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func readInput(file string) ([]byte, error) {
	if file == "" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	return data, nil
}

func promptPassphrase() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, "Store passphrase: ")
	pass, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(pass), nil
}
