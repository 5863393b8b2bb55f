// Package roll parses roll command flags and evaluates one roll request.
package roll

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/louisbranch/dicetrace/internal/core/cde"
	"github.com/louisbranch/dicetrace/internal/core/dice"
	entrypoint "github.com/louisbranch/dicetrace/internal/platform/cmd"
	apperrors "github.com/louisbranch/dicetrace/internal/platform/errors"
	i18ncatalog "github.com/louisbranch/dicetrace/internal/platform/i18n/catalog"
	"github.com/louisbranch/dicetrace/internal/random"
	"github.com/louisbranch/dicetrace/internal/roll"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/dicetrace/internal/cmd/roll"

// Config holds roll command configuration.
type Config struct {
	// RequestFile is the YAML request path; empty or "-" reads stdin.
	RequestFile string `env:"ROLL_REQUEST_FILE"`
	// Element switches output to a CDE interpretation for that element.
	Element string `env:"ROLL_ELEMENT"`
	// Seed replays a roll; zero draws a fresh seed.
	Seed    int64  `env:"ROLL_SEED"`
	Locale  string `env:"ROLL_LOCALE" envDefault:"en-US"`
	Verbose bool   `env:"ROLL_VERBOSE"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.RequestFile, "request", cfg.RequestFile, "YAML roll request file (default: stdin)")
	fs.StringVar(&cfg.Element, "element", cfg.Element, "interpret the roll as a CDE roll for this element")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "output locale")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose output")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run evaluates the configured request and writes the result to out.
// Diagnostics go to errOut. Domain errors are returned localized.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	bundle := i18ncatalog.Default()
	locale := bundle.Resolve(cfg.Locale)
	printer := bundle.Printer(locale)
	logger := log.New(errOut, "", 0)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "roll.Run", trace.WithAttributes(
		attribute.String("roll.locale", locale),
		attribute.String("roll.element", cfg.Element),
	))
	defer span.End()

	sprintf := func(key string, args ...any) string {
		return printer.Sprintf(key, args...)
	}
	err := run(ctx, cfg, in, out, logger, bundle, locale, sprintf)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(apperrors.GetCode(err)))
		if cfg.Verbose {
			logErrorStatus(logger, err, locale)
		}
		return &localizedError{message: apperrors.UserMessage(err, locale), err: err}
	}
	return nil
}

func run(
	ctx context.Context,
	cfg Config,
	in io.Reader,
	out io.Writer,
	logger *log.Logger,
	bundle *i18ncatalog.Bundle,
	locale string,
	sprintf func(key string, args ...any) string,
) error {
	span := trace.SpanFromContext(ctx)

	req, err := readRequest(cfg.RequestFile, in)
	if err != nil {
		return err
	}

	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		return err
	}
	span.SetAttributes(
		attribute.Int64("roll.seed", seed),
		attribute.Int("roll.terms", len(req.Terms)),
	)
	if cfg.Verbose {
		logger.Println(sprintf("cli.seed", seed))
		logger.Println(sprintf("cli.terms", len(req.Terms)))
	}

	result, err := roll.Evaluate(req, dice.NewSeededSource(seed))
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Int64("roll.total", result.Total()))

	if element := strings.TrimSpace(cfg.Element); element != "" {
		interpreted, err := cde.Interpret(result, element)
		if err != nil {
			return err
		}
		fmt.Fprint(out, interpreted.Render(cde.LocalizedLabels(bundle.Lookup(locale))))
		return nil
	}

	fmt.Fprintln(out, result.String())
	if outcome, ok := roll.Check(req, result); ok {
		key := "cli.check.failure"
		if outcome.Success {
			key = "cli.check.success"
		}
		fmt.Fprintln(out, sprintf(key, outcome.Difficulty, outcome.Margin))
	}
	return nil
}

func readRequest(path string, in io.Reader) (roll.Request, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == "-" {
		if in == nil {
			return roll.Request{}, apperrors.WithMetadata(
				apperrors.CodeRequestUnreadable,
				"request input is required",
				map[string]string{"Path": "stdin"},
			)
		}
		return roll.DecodeRequest(in)
	}
	f, err := os.Open(path)
	if err != nil {
		return roll.Request{}, apperrors.WrapWithMetadata(
			apperrors.CodeRequestUnreadable,
			"open request",
			map[string]string{"Path": path},
			err,
		)
	}
	defer f.Close()
	return roll.DecodeRequest(f)
}

// localizedError carries the user-facing message while keeping the domain
// error reachable through errors.As.
type localizedError struct {
	message string
	err     error
}

func (e *localizedError) Error() string { return e.message }

func (e *localizedError) Unwrap() error { return e.err }
