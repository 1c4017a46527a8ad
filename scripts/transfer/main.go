// transfer sends coins through a wallet daemon's JSON-RPC interface.
//
// Usage:
//
//	go run ./scripts/transfer [flags] address:amount [address:amount ...]
//
// Connection settings come from the environment:
//
//	UPLEXA_WALLET_RPC_URL       (default http://127.0.0.1:21065/json_rpc)
//	UPLEXA_WALLET_RPC_USERNAME
//	UPLEXA_WALLET_RPC_PASSWORD
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	uplexa "github.com/complex-gh/uplexa-go"
	"github.com/complex-gh/uplexa-go/walletrpc"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type config struct {
	URL      string `default:"http://127.0.0.1:21065/json_rpc"`
	Username string
	Password string
}

func main() {
	var (
		account   uint
		priority  string
		paymentID string
		outdir    string
		dryRun    bool
		verbosity int
	)
	flag.UintVar(&account, "a", 0, "source account index")
	flag.StringVar(&priority, "p", "normal", "priority: unimportant, normal, elevated or priority")
	flag.StringVar(&paymentID, "i", "", "payment ID, or \"new\" for a random one")
	flag.StringVar(&outdir, "o", "", "save raw transaction blobs to this directory")
	flag.BoolVar(&dryRun, "d", false, "construct but do not relay (implies saving blobs)")
	flag.BoolFunc("v", "increase verbosity (repeatable)", func(string) error {
		verbosity++
		return nil
	})
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	switch verbosity {
	case 0:
		log = log.Level(zerolog.WarnLevel)
	case 1:
		log = log.Level(zerolog.InfoLevel)
	default:
		log = log.Level(zerolog.DebugLevel)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: transfer [flags] address:amount [address:amount ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(log, account, priority, paymentID, outdir, dryRun, flag.Args()); err != nil {
		log.Error().Err(err).Msg("transfer failed")
		os.Exit(1)
	}
}

func run(log zerolog.Logger, account uint, priority, paymentID, outdir string, dryRun bool, args []string) error {
	var cfg config
	if err := envconfig.Process("uplexa_wallet_rpc", &cfg); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	prio, err := walletrpc.ParsePriority(priority)
	if err != nil {
		return err
	}

	// A dry run always keeps the constructed transactions around.
	if dryRun && outdir == "" {
		outdir = "."
	}

	dests := make([]walletrpc.Destination, 0, len(args))
	for _, arg := range args {
		dest, err := parseDestination(arg)
		if err != nil {
			return err
		}
		dests = append(dests, dest)
	}

	req := walletrpc.TransferRequest{
		Destinations: dests,
		AccountIndex: uint32(account),
		Priority:     prio,
		DoNotRelay:   dryRun,
		GetTxHex:     dryRun || outdir != "",
		GetTxKeys:    true,
	}
	switch paymentID {
	case "":
	case "new":
		pid, err := uplexa.NewRandomPaymentID()
		if err != nil {
			return err
		}
		log.Info().Str("payment_id", pid.String()).Msg("generated payment ID")
		req.PaymentID = pid.String()
	default:
		pid, err := uplexa.ParsePaymentID(paymentID)
		if err != nil {
			return err
		}
		req.PaymentID = pid.String()
	}

	client := walletrpc.New(cfg.URL,
		walletrpc.WithBasicAuth(cfg.Username, cfg.Password),
		walletrpc.WithLogger(log))
	ctx := context.Background()

	height, err := client.GetHeight(ctx)
	if err != nil {
		return err
	}
	log.Debug().Uint64("height", height).Msg("wallet synced")

	balance, err := client.GetBalance(ctx, uint32(account))
	if err != nil {
		return err
	}
	log.Info().
		Str("balance", uplexa.FromAtomic(balance.Balance).String()).
		Str("unlocked", uplexa.FromAtomic(balance.UnlockedBalance).String()).
		Msg("account balance")

	res, err := client.TransferSplit(ctx, req)
	if err != nil {
		return err
	}

	for i, hash := range res.TxHashes {
		fmt.Printf("tx %d: %s\n", i, hash)
		if i < len(res.Amounts) {
			fmt.Printf("  amount: %s\n", uplexa.FromAtomic(res.Amounts[i]))
		}
		if i < len(res.Fees) {
			fmt.Printf("  fee:    %s\n", uplexa.FromAtomic(res.Fees[i]))
		}
		if i < len(res.TxKeys) {
			fmt.Printf("  key:    %s\n", res.TxKeys[i])
		}
		if outdir != "" && i < len(res.TxBlobs) {
			name := filepath.Join(outdir, hash+".tx")
			if err := os.WriteFile(name, []byte(res.TxBlobs[i]), 0o600); err != nil {
				return fmt.Errorf("save blob: %w", err)
			}
			fmt.Printf("  saved:  %s\n", name)
		}
	}
	if dryRun {
		fmt.Println("dry run: transactions were not relayed")
	}
	return nil
}

// parseDestination splits "address:amount", validates the address and
// converts the amount to atomic units.
func parseDestination(s string) (walletrpc.Destination, error) {
	addr, amount, ok := strings.Cut(s, ":")
	if !ok {
		return walletrpc.Destination{}, fmt.Errorf("destination %q is not address:amount", s)
	}
	parsed, err := uplexa.ParseAddress(addr)
	if err != nil {
		return walletrpc.Destination{}, err
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return walletrpc.Destination{}, fmt.Errorf("%w: %q", uplexa.ErrInvalidAmount, amount)
	}
	atomic, err := uplexa.ToAtomic(value)
	if err != nil {
		return walletrpc.Destination{}, err
	}
	return walletrpc.Destination{Address: parsed.String(), Amount: atomic}, nil
}
