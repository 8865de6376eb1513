package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/coinledger/money"
	"github.com/coinledger/money/internal/config"
	"github.com/coinledger/money/internal/logging"
)

// app is the state shared by all commands, built before any of them runs.
type app struct {
	cfg   *config.Config
	reg   *money.Registry
	codec *money.Codec
	log   zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "walletmoney",
		Short:         "Exact-precision fiat and crypto amounts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().String("config", "", "config file path (default: ./walletmoney.yaml)")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().Bool("symbol", true, "render currency symbols (default from config)")

	root.AddCommand(
		a.parseCmd(),
		a.formatCmd(),
		a.convertCmd(),
		a.balanceCmd(),
		a.encodeCmd(),
		a.decodeCmd(),
		a.currenciesCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if cmd.Flags().Changed("symbol") {
		cfg.Display.IncludeSymbol, _ = cmd.Flags().GetBool("symbol")
	}

	reg, err := cfg.Registry()
	if err != nil {
		return fmt.Errorf("failed to build currency registry: %w", err)
	}

	a.cfg = cfg
	a.reg = reg
	a.codec = money.NewCodec(reg)
	a.log = logging.New(cfg.Logging, cmd.ErrOrStderr())
	a.log.Debug().
		Str("command", cmd.Name()).
		Int("currencies", reg.Len()).
		Msg("configured")
	return nil
}

func (a *app) display(v money.Value) string {
	return v.DisplayString(a.cfg.Display.IncludeSymbol)
}

// --- Parse Command ---

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [code] [major]",
		Short: "Convert a major-unit amount to minor units",
		Example: `  walletmoney parse BTC 1.5
  walletmoney parse ETH 0,25`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			curr, err := a.reg.Parse(args[0])
			if err != nil {
				return err
			}
			v, err := money.ParseValue(curr, args[1])
			if err != nil {
				return err
			}
			a.log.Debug().Str("currency", curr.Code()).Str("input", args[1]).Str("minor", v.MinorString()).Msg("parsed")
			fmt.Fprintln(cmd.OutOrStdout(), v.MinorString())
			return nil
		},
	}
}

// --- Format Command ---

func (a *app) formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format [code] [minor]",
		Short: "Render a minor-unit amount for display",
		Example: `  walletmoney format USD 1050
  walletmoney format USD -- -1050`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			curr, err := a.reg.Parse(args[0])
			if err != nil {
				return err
			}
			v, err := money.NewValueFromMinor(curr, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.display(v))
			return nil
		},
	}
}

// --- Convert Command ---

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [from] [to] [rate] [major]",
		Short: "Convert an amount with an exchange rate",
		Long:  "Convert an amount of the from currency, where rate is the number of to units per from unit.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := a.reg.Parse(args[0])
			if err != nil {
				return err
			}
			to, err := a.reg.Parse(args[1])
			if err != nil {
				return err
			}
			rate, err := money.ParseExchRate(from, to, args[2])
			if err != nil {
				return err
			}
			v, err := money.ParseValue(from, args[3])
			if err != nil {
				return err
			}
			pair, err := money.NewPairFromRate(v, rate)
			if err != nil {
				return err
			}
			a.log.Debug().Stringer("rate", rate).Stringer("pair", pair).Msg("converted")
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", a.display(pair.Base()), a.display(pair.Quote()))
			return nil
		},
	}
}

// --- Balance Command ---

func (a *app) balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance [code] [current] [previous]",
		Short: "Show the change between two balances",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			curr, err := a.reg.Parse(args[0])
			if err != nil {
				return err
			}
			current, err := money.ParseValue(curr, args[1])
			if err != nil {
				return err
			}
			previous, err := money.ParseValue(curr, args[2])
			if err != nil {
				return err
			}
			info, err := money.BalanceInfoBetween(current, previous)
			if err != nil {
				return err
			}
			pct, err := decimal.NewFromString(info.ChangePercentage)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "balance:\t%s\n", a.display(info.Balance))
			fmt.Fprintf(w, "change:\t%s\n", a.display(info.Change))
			fmt.Fprintf(w, "change %%:\t%s%%\n", pct.Shift(2).String())
			return w.Flush()
		},
	}
}

// --- Encode / Decode Commands ---

func (a *app) encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [code] [major]",
		Short: "Print the JSON wire form of an amount",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			curr, err := a.reg.Parse(args[0])
			if err != nil {
				return err
			}
			v, err := money.ParseValue(curr, args[1])
			if err != nil {
				return err
			}
			data, err := a.codec.Encode(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [json]",
		Short: "Decode a JSON amount in either wire shape",
		Example: `  walletmoney decode '{"amount":150000000,"currency":"BTC"}'
  walletmoney decode '{"value":"150000000","currency":"BTC"}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, shape, err := a.codec.DecodeShape([]byte(args[0]))
			if err != nil {
				a.log.Warn().Err(err).Stringer("shape", shape).Msg("decode failed")
				return err
			}
			a.log.Debug().Stringer("shape", shape).Msg("decoded")
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s shape)\n", a.display(v), shape)
			return nil
		},
	}
}

// --- Currencies Command ---

func (a *app) currenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "currencies [fiat|crypto]",
		Short:     "List known currencies",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"fiat", "crypto"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := []money.Kind{money.Fiat, money.Crypto}
			if len(args) == 1 {
				k, err := money.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []money.Kind{k}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tKIND\tPRECISION\tSYMBOL\tNAME")
			for _, k := range kinds {
				for _, c := range a.reg.Currencies(k) {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", c.Code(), c.Kind(), c.Precision(), c.Symbol(), c.Name())
				}
			}
			return w.Flush()
		},
	}
}

// --- Version Command ---

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "walletmoney %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
		},
	}
}
