package main

import (
	"errors"
	"fleet-dashboard-service/calculator"
	"fleet-dashboard-service/formatting"
	"fmt"
	"github.com/spf13/cobra"
	"strconv"
	"time"
)

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <weight|price|odometer> <raw>",
		Short: "Render raw keystrokes through a decimal mask",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, ok := formatting.MaskFor(args[0])
			if !ok {
				return fmt.Errorf("unknown format kind %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), mask.Format(args[1]))
			return nil
		},
	}
}

func newQuoteCmd() *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "quote <weight>",
		Short: "Estimate the Miami to Panama shipping cost",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := calculator.ParseUnit(unit)
			if err != nil {
				return err
			}
			weight := formatting.Weight.Format(args[0])
			price, ok := calculator.Estimate(weight, u)
			if !ok {
				return errors.New("weight must be greater than zero")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", weight, u, calculator.FormatPrice(price))
			return nil
		},
	}

	cmd.Flags().StringVar(&unit, "unit", string(calculator.Pound), "Weight unit (lb or kg)")
	return cmd
}

func newElapsedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "elapsed <milliseconds>",
		Short: "Render a duration as HH:MM:SS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid milliseconds %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatting.Elapsed(time.Duration(ms)*time.Millisecond))
			return nil
		},
	}
}
