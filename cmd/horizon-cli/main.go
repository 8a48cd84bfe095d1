// Command horizon-cli is a small query tool for a Horizon ledger service:
// it fetches single resources and walks paginated collections from the
// command line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/lumenlab/horizon-client/pkg/client"
	"github.com/lumenlab/horizon-client/pkg/endpoint"
	"github.com/lumenlab/horizon-client/pkg/logging"
	"github.com/lumenlab/horizon-client/pkg/page"
	"github.com/lumenlab/horizon-client/pkg/resources"
)

func main() {
	logging.Setup(logging.Config{
		Level:  logging.LogLevel(getEnv("LOG_LEVEL", "warn")),
		Pretty: true,
		Output: os.Stderr,
	})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	c, err := newClient()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create client")
	}
	defer c.Close()

	ctx := context.Background()

	switch os.Args[1] {
	case "account-details":
		err = accountDetails(ctx, c, os.Args[2:])
	case "account-transactions":
		err = accountTransactions(ctx, c, os.Args[2:])
	case "ledgers":
		err = ledgers(ctx, c, os.Args[2:])
	case "assets":
		err = assets(ctx, c, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("Command failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: horizon-cli <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  account-details <account-id>")
	fmt.Fprintln(os.Stderr, "  account-transactions <account-id> [-limit n] [-desc]")
	fmt.Fprintln(os.Stderr, "  ledgers [-limit n] [-desc] [-cursor c]")
	fmt.Fprintln(os.Stderr, "  assets [-limit n]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "environment:")
	fmt.Fprintln(os.Stderr, "  HORIZON_URL  base URL (default https://horizon.stellar.org)")
	fmt.Fprintln(os.Stderr, "  REDIS_URL    optional Redis address for response caching")
	fmt.Fprintln(os.Stderr, "  USER_AGENT   client identification header")
}

func newClient() (*client.Client, error) {
	var redisClient *redis.Client
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: redisURL})
	}

	cfg := client.DefaultConfig(redisClient)
	cfg.Host = getEnv("HORIZON_URL", cfg.Host)
	cfg.UserAgent = getEnv("USER_AGENT", cfg.UserAgent)
	return client.New(cfg)
}

func accountDetails(ctx context.Context, c *client.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("account-details: account ID is required")
	}

	req, err := endpoint.Encode(endpoint.AccountDetails(args[0]), c.Host())
	if err != nil {
		return err
	}

	resp, err := c.Do(req.WithContext(ctx))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("account-details: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var account resources.Account
	if err := json.Unmarshal(body, &account); err != nil {
		return fmt.Errorf("decode account: %w", err)
	}

	fmt.Printf("ID:       %s\n", account.ID)
	fmt.Printf("Sequence: %s\n", account.Sequence)
	for _, b := range account.Balances {
		fmt.Printf("Balance:  %s %s\n", b.Amount, b.Asset)
	}
	return nil
}

func accountTransactions(ctx context.Context, c *client.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("account-transactions: account ID is required")
	}
	account := args[0]

	fs := flag.NewFlagSet("account-transactions", flag.ExitOnError)
	limit := fs.Uint("limit", 0, "per-page record limit")
	desc := fs.Bool("desc", false, "walk newest first")
	fs.Parse(args[1:])

	d := endpoint.AccountTransactions(account)
	d = applyFlags(d, "", *limit, *desc)

	fetcher := page.NewFetcher[resources.Transaction](c, c.Host())
	it := page.NewIterator(fetcher, d)

	return page.Paginate(ctx, page.NewPager(), it, func(txn resources.Transaction) {
		fmt.Printf("ID:             %s\n", txn.ID)
		fmt.Printf("source account: %s\n", txn.SourceAccount)
		fmt.Printf("created at:     %s\n", txn.CreatedAt)
		fmt.Println()
	})
}

func ledgers(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("ledgers", flag.ExitOnError)
	limit := fs.Uint("limit", 0, "per-page record limit")
	desc := fs.Bool("desc", false, "walk newest first")
	cursor := fs.String("cursor", "", "resume from a paging token")
	fs.Parse(args)

	d := applyFlags(endpoint.Ledgers(), *cursor, *limit, *desc)

	fetcher := page.NewFetcher[resources.Ledger](c, c.Host())
	it := page.NewIterator(fetcher, d)

	return page.Paginate(ctx, page.NewPager(), it, func(l resources.Ledger) {
		fmt.Printf("sequence:     %d\n", l.Sequence)
		fmt.Printf("hash:         %s\n", l.Hash)
		fmt.Printf("transactions: %d\n", l.TransactionCount)
		fmt.Printf("closed at:    %s\n", l.ClosedAt)
		fmt.Println()
	})
}

func assets(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("assets", flag.ExitOnError)
	limit := fs.Uint("limit", 0, "per-page record limit")
	fs.Parse(args)

	d := applyFlags(endpoint.Assets(), "", *limit, false)

	fetcher := page.NewFetcher[resources.Asset](c, c.Host())
	it := page.NewIterator(fetcher, d)

	return page.Paginate(ctx, page.NewPager(), it, func(a resources.Asset) {
		fmt.Printf("asset:    %s\n", a.Identifier)
		fmt.Printf("amount:   %s\n", a.Amount)
		fmt.Printf("accounts: %d\n", a.NumAccounts)
		fmt.Println()
	})
}

// applyFlags folds the common query flags into a descriptor.
func applyFlags(d endpoint.Descriptor, cursor string, limit uint, desc bool) endpoint.Descriptor {
	if cursor != "" {
		d = d.WithCursor(cursor)
	}
	if limit > 0 {
		d = d.WithLimit(limit)
	}
	if desc {
		d = d.WithOrder(endpoint.OrderDesc)
	}
	return d
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
