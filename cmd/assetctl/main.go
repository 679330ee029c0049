package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - migrate: Create or update the slot and loyalty tables
// - sweep:   Remove unreferenced objects from a category bucket
// - inspect: Decode an image and preview its compressed output
// - token:   Issue an access token for local testing

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	sweepCmd := flag.NewFlagSet("sweep", flag.ExitOnError)
	inspectCmd := flag.NewFlagSet("inspect", flag.ExitOnError)
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)

	// sweep parameters
	sweepCategory := sweepCmd.String("category", "banner", "Asset category whose bucket is swept (banner, category, product, review)")

	// inspect parameters
	inspectFile := inspectCmd.String("file", "", "Image file to inspect")

	// token parameters
	tokenUser := tokenCmd.String("user", "", "User ID (uuid) placed in the sub claim")
	tokenEmail := tokenCmd.String("email", "", "Email claim")
	tokenRole := tokenCmd.String("role", "customer", "Comma separated roles")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := assetctlFlags{
		Migrate: migrateFlags{cmd: migrateCmd},
		Sweep: sweepFlags{
			cmd:      sweepCmd,
			category: sweepCategory,
		},
		Inspect: inspectFlags{
			cmd:  inspectCmd,
			file: inspectFile,
		},
		Token: tokenFlags{
			cmd:   tokenCmd,
			user:  tokenUser,
			email: tokenEmail,
			role:  tokenRole,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type assetctlFlags struct {
	Migrate migrateFlags
	Sweep   sweepFlags
	Inspect inspectFlags
	Token   tokenFlags
}

type migrateFlags struct {
	cmd *flag.FlagSet
}

type sweepFlags struct {
	cmd      *flag.FlagSet
	category *string
}

type inspectFlags struct {
	cmd  *flag.FlagSet
	file *string
}

type tokenFlags struct {
	cmd   *flag.FlagSet
	user  *string
	email *string
	role  *string
}

func runSubcommand(ctx context.Context, flags *assetctlFlags) error {
	switch os.Args[1] {
	case "migrate":
		return handleMigrate(flags)
	case "sweep":
		return handleSweep(ctx, flags)
	case "inspect":
		return handleInspect(flags)
	case "token":
		return handleToken(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleMigrate(flags *assetctlFlags) error {
	if err := flags.Migrate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse migrate flags")
	}

	return runMigrate()
}

func handleSweep(ctx context.Context, flags *assetctlFlags) error {
	if err := flags.Sweep.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse sweep flags")
	}

	return runSweep(ctx, *flags.Sweep.category)
}

func handleInspect(flags *assetctlFlags) error {
	if err := flags.Inspect.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse inspect flags")
	}

	if *flags.Inspect.file == "" {
		return errors.New("--file flag is required for inspect command")
	}

	return runInspect(*flags.Inspect.file)
}

func handleToken(flags *assetctlFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	if *flags.Token.user == "" {
		return errors.New("--user flag is required for token command")
	}

	return runToken(*flags.Token.user, *flags.Token.email, *flags.Token.role)
}

func printUsage() {
	fmt.Println("Usage: assetctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  migrate    Create or update the slot and loyalty tables")
	fmt.Println("  sweep      Remove unreferenced objects from a category bucket")
	fmt.Println("  inspect    Decode an image and preview its compressed output")
	fmt.Println("  token      Issue an access token for local testing")
	fmt.Println("")
	fmt.Println("Use 'assetctl <command> -h' for more information about a command.")
}
