package main

import (
	"github.com/iwvelando/gear-rental/internal/config"
	"github.com/iwvelando/gear-rental/internal/gear"
	"github.com/iwvelando/gear-rental/internal/inventory"
	"github.com/iwvelando/gear-rental/internal/rental"
	"github.com/iwvelando/gear-rental/pkg/constants"
	"github.com/iwvelando/gear-rental/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the state shared by all subcommands once the root command has
// loaded configuration.
type app struct {
	configLocation string
	logLevel       string
	outputFormat   string

	conf   *config.Configuration
	logger *zap.Logger
	root   gear.Node
}

// newRootCmd creates the top-level "gear-rental" command and registers all
// subcommands. The returned app carries the logger once the command has
// started running.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:           "gear-rental",
		Short:         "Rental equipment kit pricing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configLocation, "config", constants.DefaultConfigFile, "path to configuration file")
	flags.StringVar(&a.outputFormat, "output-format", "", "type of output override: pretty, csv")
	flags.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newDiscountCmd(a),
		newAdjustCmd(a),
	)

	return root, a
}

// load reads configuration, initialises logging and builds the inventory.
// An explicitly given config file must exist; the default one is optional.
func (a *app) load(cmd *cobra.Command) error {
	var err error
	if cmd.Flags().Changed("config") {
		a.conf, err = config.LoadConfiguration(a.configLocation)
	} else {
		a.conf, _, err = config.LoadConfigurationOrDefault(a.configLocation)
	}
	if err != nil {
		return err
	}

	a.logger, err = initializeLogger(a.conf.Logging, a.logLevel)
	if err != nil {
		return err
	}

	// Determine output format (CLI override takes precedence over config)
	if a.outputFormat == "" {
		a.outputFormat = a.conf.Output.Format
	}
	if a.outputFormat == "" {
		a.outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(a.outputFormat); err != nil {
		return err
	}

	for _, warning := range a.conf.ValidateConfiguration() {
		a.logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	a.root, err = inventory.Load(*a.conf)
	if err != nil {
		a.logger.Error("failed to build inventory",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func newDiscountCmd(a *app) *cobra.Command {
	var discount float64

	cmd := &cobra.Command{
		Use:   "discount",
		Short: "Show every kit's rental price with the kit discount applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("discount") {
				discount = a.conf.Discount
			}
			return rental.ApplyDiscount(a.logger, cmd.OutOrStdout(), a.root, discount, a.outputFormat)
		},
	}

	cmd.Flags().Float64Var(&discount, "discount", constants.DefaultDiscount, "kit discount as a decimal, i.e. 0.05 equals 5%")
	return cmd
}

func newAdjustCmd(a *app) *cobra.Command {
	var (
		discount   float64
		adjustment float64
		sign       string
	)

	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Permanently adjust all gear prices, then show kit discounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("discount") {
				discount = a.conf.Discount
			}
			if !cmd.Flags().Changed("adjust") {
				adjustment = a.conf.Adjustment.Fraction
			}
			if !cmd.Flags().Changed("sign") {
				sign = a.conf.Adjustment.Sign
			}
			return rental.ApplyAdjustmentThenDiscount(a.logger, cmd.OutOrStdout(), a.root, discount, adjustment, sign, a.outputFormat)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&discount, "discount", constants.DefaultDiscount, "kit discount as a decimal, i.e. 0.05 equals 5%")
	flags.Float64Var(&adjustment, "adjust", constants.DefaultAdjustment, "price adjustment as a decimal, i.e. 0.12 equals 12%")
	flags.StringVar(&sign, "sign", constants.DefaultSign, "direction of the price adjustment: + or -")
	return cmd
}
