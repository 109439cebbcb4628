// Command iexfetch prints IEX API data as JSON, CSV or PSV.
//
// Usage:
//
//	iexfetch [-config iexfetch.yaml] <command> [args...]
//
// Commands:
//
//	quote SYMBOL              market quote
//	chart SYMBOL [RANGE]      chart bars, RANGE is one of 5y 2y 1y ytd 6m 3m 1m 1d
//	company SYMBOL            company profile
//	news SYMBOL [N]           latest news
//	list [CATEGORY]           ranked list, e.g. gainers
//	symbols                   symbols IEX supports for trading
//	corporate-actions [DATE]  daily list corporate actions, DATE is YYYYMMDD or sample
//	market                    traded volume per venue
//	tops SYMBOL,...           top of book
//	auction SYMBOL,...        auction information
//	adtv SYMBOL [RANGE]       average daily trading volume
//	stream CHANNEL SYMBOL,... prints tops, last or deep messages until interrupted
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"github.com/iexdata/iex-api-go/iex"
	"github.com/iexdata/iex-api-go/iex/stock"
	"github.com/iexdata/iex-api-go/iex/stream"
)

var errUsage = errors.New("usage: iexfetch [-config file] <command> [args...]")

func main() {
	configPath := flag.String("config", "iexfetch.yaml", "config file path")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, flag.Args(), os.Stdout); err != nil {
		logger.Error().Err(err).Msg("iexfetch failed")
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newLogger(cfg *Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var out io.Writer = os.Stderr
	if cfg.Log.Console {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func formatOf(name string) iex.Format {
	switch name {
	case "csv":
		return iex.CSV
	case "psv":
		return iex.PSV
	}
	return iex.JSON
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func run(ctx context.Context, cfg *Config, logger zerolog.Logger, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	client := iex.NewClient(iex.ClientOpts{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Logger:  &logger,
	})
	var opts []iex.RequestOption
	if len(cfg.Filter) > 0 {
		opts = append(opts, iex.WithFilter(cfg.Filter...))
	}
	format := formatOf(cfg.Format)

	// stockCmd prints e for symbol in the configured format.
	stockCmd := func(symbol string, e stock.Endpoint) error {
		if symbol == "" {
			return errUsage
		}
		if format != iex.JSON {
			b, err := client.ExportStock(ctx, format, symbol, e, opts...)
			if err != nil {
				return err
			}
			_, err = out.Write(b)
			return err
		}
		resp, err := client.Request(ctx, symbol, e, opts...)
		if err != nil {
			return err
		}
		return printJSON(out, resp)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "quote":
		return stockCmd(arg(rest, 0), stock.Quote{})
	case "company":
		return stockCmd(arg(rest, 0), stock.Company{})
	case "chart":
		rng, err := stock.ParseDuration(arg(rest, 1))
		if err != nil {
			return err
		}
		return stockCmd(arg(rest, 0), stock.Chart{Range: rng})
	case "news":
		e := stock.News{}
		if s := arg(rest, 1); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("invalid news count: %w", err)
			}
			e.Last = &n
		}
		return stockCmd(arg(rest, 0), e)
	case "list":
		category, err := stock.ParseListCategory(arg(rest, 0))
		if err != nil {
			return err
		}
		return stockCmd("market", stock.List{Category: category})
	case "symbols":
		v, err := client.GetSymbols(ctx, opts...)
		return printResult(out, v, err)
	case "corporate-actions":
		list, err := parseDailyList(arg(rest, 0))
		if err != nil {
			return err
		}
		v, err := client.GetCorporateActions(ctx, list, opts...)
		return printResult(out, v, err)
	case "market":
		v, err := client.GetMarket(ctx, opts...)
		return printResult(out, v, err)
	case "tops":
		v, err := client.GetTOPS(ctx, splitSymbols(arg(rest, 0)), opts...)
		return printResult(out, v, err)
	case "auction":
		v, err := client.GetAuction(ctx, splitSymbols(arg(rest, 0)), opts...)
		return printResult(out, v, err)
	case "adtv":
		rng, err := stock.ParseDuration(arg(rest, 1))
		if err != nil {
			return err
		}
		if arg(rest, 0) == "" {
			return errUsage
		}
		v, err := iex.NewIndicators(iex.IndicatorsOpts{Client: client}).ADTV(ctx, arg(rest, 0), rng)
		return printResult(out, v, err)
	case "stream":
		return runStream(ctx, cfg, logger, arg(rest, 0), splitSymbols(arg(rest, 1)), out)
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func parseDailyList(s string) (iex.DailyList, error) {
	switch s {
	case "":
		return iex.DailyList{}, nil
	case "sample":
		return iex.DailyList{Sample: true}, nil
	}
	t, err := time.Parse("20060102", s)
	if err != nil {
		return iex.DailyList{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	d := civil.DateOf(t)
	return iex.DailyList{Date: &d}, nil
}

func splitSymbols(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func printResult(out io.Writer, v any, err error) error {
	if err != nil {
		return err
	}
	return printJSON(out, v)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runStream(ctx context.Context, cfg *Config, logger zerolog.Logger, channel string, symbols []string, out io.Writer) error {
	var ch stream.Channel
	switch channel {
	case "tops":
		ch = stream.TOPSChannel
	case "last":
		ch = stream.LastChannel
	case "deep":
		ch = stream.DEEPChannel
	default:
		return fmt.Errorf("%w: unknown channel %q", errUsage, channel)
	}
	if len(symbols) == 0 {
		return errUsage
	}

	enc := json.NewEncoder(out)
	emit := func(v any) {
		if err := enc.Encode(v); err != nil {
			logger.Warn().Err(err).Msg("write failed")
		}
	}
	c := stream.NewClient(ch,
		stream.WithBaseURL(cfg.WebsocketURL),
		stream.WithLogger(stream.ZerologLogger(logger)),
		stream.WithReconnectSettings(cfg.Stream.ReconnectLimit, cfg.Stream.ReconnectDelay),
		stream.WithSymbols(symbols...),
		stream.WithTOPSHandler(func(t iex.TOPS) { emit(t) }),
		stream.WithLastHandler(func(l iex.LastSale) { emit(l) }),
		stream.WithDeepHandler(func(m stream.DeepMessage) { emit(m) }),
	)
	if err := c.Connect(ctx); err != nil {
		return err
	}
	logger.Info().Str("channel", channel).Strs("symbols", symbols).Msg("streaming")
	return <-c.Terminated()
}
