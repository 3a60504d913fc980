package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/x/devnet"
	"github.com/iov-one/quorum/x/multisig"
	"github.com/tendermint/tendermint/libs/log"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch err.(type) {
	case nil:
	case usageError:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// usageError is returned when the program was invoked with invalid arguments.
type usageError string

func (e usageError) Error() string {
	return string(e)
}

func run(args []string, out, errOut io.Writer) error {
	fl := flag.NewFlagSet("quorumaddr", flag.ContinueOnError)
	fl.SetOutput(errOut)
	fl.Usage = func() {
		fmt.Fprintf(errOut, `Usage:
	quorumaddr [options] [NAME ...]

Build a multisig address shared by all given roles, using an in-memory signer
network. Roles are taken from the fixture file first and then from the
command line. Keys of roles given by name only are derived from the name, so
the result is deterministic.

`)
		fl.PrintDefaults()
	}
	var (
		thresholdFl = fl.Int("threshold", 0, "Number of required signatures. Overrides the fixture value.")
		fixtureFl   = fl.String("fixture", "", "Path to a JSON fixture file describing roles.")
		formatFl    = fl.String("format", "hex", "Address output format: hex or bech32.")
		hrpFl       = fl.String("hrp", "tiov", "Human readable part used by the bech32 format.")
		logFl       = fl.String("log", "error", "Log level: debug, info, error or none.")
		verifyFl    = fl.Bool("verify", false, "Require all roles to return the same address.")
		headerFl    = fl.Bool("header", true, "Display contracts table header.")
	)
	if err := fl.Parse(args); err != nil {
		return usageError(err.Error())
	}

	fx := &fixture{}
	if *fixtureFl != "" {
		loaded, err := loadFixture(*fixtureFl)
		if err != nil {
			return err
		}
		fx = loaded
	}
	for _, name := range fl.Args() {
		fx.Roles = append(fx.Roles, fixtureRole{Name: name})
	}
	if *thresholdFl != 0 {
		fx.Threshold = *thresholdFl
	}
	if fx.Threshold < 1 {
		return usageError("threshold must be greater than zero")
	}
	if len(fx.Roles) == 0 {
		return usageError("at least one role is required")
	}

	format, err := addressFormatter(*formatFl, *hrpFl)
	if err != nil {
		return err
	}
	logger, err := newLogger(errOut, *logFl)
	if err != nil {
		return err
	}

	registry := devnet.NewRegistry(logger)
	signers, err := fx.signers(registry)
	if err != nil {
		return err
	}
	roles := make([]quorum.Role, len(signers))
	for i, s := range signers {
		roles[i] = s
	}

	b := multisig.Builder{Logger: logger, VerifyConsistency: *verifyFl}
	addr, err := b.Build(roles, fx.Threshold)
	if err != nil {
		return err
	}

	enc, err := format(addr)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, enc)
	fmt.Fprintln(out)
	return printContracts(out, registry.Contracts(), format, *headerFl)
}

type formatter func(quorum.Address) (string, error)

func addressFormatter(name, hrp string) (formatter, error) {
	switch name {
	case "hex":
		return func(a quorum.Address) (string, error) { return a.String(), nil }, nil
	case "bech32":
		if hrp == "" {
			return nil, usageError("bech32 format requires a human readable part")
		}
		return func(a quorum.Address) (string, error) { return a.Bech32(hrp) }, nil
	default:
		return nil, usageError(fmt.Sprintf("unknown address format %q", name))
	}
}

func newLogger(w io.Writer, level string) (log.Logger, error) {
	if level == "none" {
		return log.NewNopLogger(), nil
	}
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, usageError(err.Error())
	}
	return log.NewFilter(log.NewTMLogger(log.NewSyncWriter(w)), opt), nil
}

func printContracts(out io.Writer, contracts []*devnet.Contract, format formatter, header bool) error {
	w := tabwriter.NewWriter(out, 2, 0, 2, ' ', 0)
	defer w.Flush()

	if header {
		fmt.Fprintln(w, "id\taddress\tthreshold\tconfirmed\tdescription")
	}
	for _, c := range contracts {
		enc, err := format(c.Address)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d/%d\t%s\n",
			c.ID, enc, c.Threshold, len(c.Confirmed), len(c.Members), c.Description)
	}
	return nil
}
