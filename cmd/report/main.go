// Command report prints the dashboard view of an engagement dataset to stdout.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AMESmith/customer-dashboard/internal/config"
	"github.com/AMESmith/customer-dashboard/internal/domain"
	"github.com/AMESmith/customer-dashboard/internal/logger"
	"github.com/AMESmith/customer-dashboard/internal/mapper"
	"github.com/AMESmith/customer-dashboard/internal/service"
	"github.com/AMESmith/customer-dashboard/internal/source"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const appName = "Customer Engagement Report"

type options struct {
	seed           int64
	count          int
	fixture        string
	accountManager string
	products       []string
	paymentMethods []string
	minValue       int64
	maxValue       int64
	stageOrder     string
	jsonOutput     bool
	verbose        bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("report", pflag.ContinueOnError)
	flagSet.Int64Var(&opts.seed, "seed", source.DefaultSeed, "synthetic generator seed")
	flagSet.IntVar(&opts.count, "count", source.DefaultCount, "number of synthetic records")
	flagSet.StringVar(&opts.fixture, "fixture", "", "load records from a YAML fixture instead of the generator")
	flagSet.StringVar(&opts.accountManager, "account-manager", domain.AllAccountManagers, "account manager to filter on (All = no constraint)")
	flagSet.StringArrayVar(&opts.products, "product", nil, "allowed product, repeatable (default: all)")
	flagSet.StringArrayVar(&opts.paymentMethods, "payment-method", nil, "allowed payment method, repeatable (default: all)")
	flagSet.Int64Var(&opts.minValue, "min-value", 0, "minimum contract value (default: observed minimum)")
	flagSet.Int64Var(&opts.maxValue, "max-value", 0, "maximum contract value (default: observed maximum)")
	flagSet.StringVar(&opts.stageOrder, "stage-order", string(domain.StageOrderLexicographic), "pipeline order: lexicographic or funnel")
	flagSet.BoolVar(&opts.jsonOutput, "json", false, "print the view as JSON")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log dataset loading to stderr")
	flagSet.SetOutput(os.Stderr)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	log, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var src source.RecordSource = source.NewSyntheticSource(opts.seed, opts.count)
	if opts.fixture != "" {
		src = source.NewFixtureSource(opts.fixture)
	}

	ctx := context.Background()
	svc, err := service.NewDashboardService(ctx, src, domain.StageOrder(opts.stageOrder), log)
	if err != nil {
		return err
	}

	criteria := buildCriteria(flagSet, &opts, svc.DefaultCriteria())
	view, err := svc.View(ctx, criteria, "")
	if err != nil {
		return err
	}

	dto := mapper.ToDashboardViewDTO(view, criteria)
	if opts.jsonOutput {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(dto)
	}
	return renderText(out, dto)
}

// buildCriteria overlays the flags the user set on the all-pass criteria
func buildCriteria(flagSet *pflag.FlagSet, opts *options, defaults domain.FilterCriteria) domain.FilterCriteria {
	criteria := defaults

	if opts.accountManager != "" && opts.accountManager != domain.AllAccountManagers {
		am := opts.accountManager
		criteria.AccountManager = &am
	}
	if flagSet.Changed("product") {
		products := make([]domain.Product, 0, len(opts.products))
		for _, p := range opts.products {
			if p != "" {
				products = append(products, domain.Product(p))
			}
		}
		criteria.Products = domain.NewSet(products...)
	}
	if flagSet.Changed("payment-method") {
		methods := make([]domain.PaymentMethod, 0, len(opts.paymentMethods))
		for _, m := range opts.paymentMethods {
			if m != "" {
				methods = append(methods, domain.PaymentMethod(m))
			}
		}
		criteria.PaymentMethods = domain.NewSet(methods...)
	}
	if flagSet.Changed("min-value") {
		criteria.ValueRange.Min = opts.minValue
	}
	if flagSet.Changed("max-value") {
		criteria.ValueRange.Max = opts.maxValue
	}
	return criteria
}

// newLogger logs to stderr at debug level when verbose, and discards otherwise
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	log, err := logger.NewLogger(
		&config.LoggingConfig{Level: "debug", Format: "console"},
		&config.AppConfig{Name: appName, Environment: "development"},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}
