package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/pensionview/retirement-projection/internal/calculation"
	"github.com/pensionview/retirement-projection/internal/config"
	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/pensionview/retirement-projection/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// paramFlags are the per-command overrides of the stored parameters. Rates
// are in percent.
type paramFlags struct {
	deposit        float64
	capital        float64
	retire         int
	duration       int
	lastYear       int
	depositGrowth  float64
	marketRate     float64
	payoutGrowth   float64
	ignoreSnapshot bool
}

func (f *paramFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Float64Var(&f.deposit, "deposit", 0, "Monthly deposit")
	fs.Float64Var(&f.capital, "capital", 0, "Initial capital")
	fs.IntVar(&f.retire, "retire", 0, "Retirement start year")
	fs.IntVar(&f.duration, "duration", 0, "Retirement duration in years")
	fs.IntVar(&f.lastYear, "last-year", 0, "Last projected year (default: end of the payout phase)")
	fs.Float64Var(&f.depositGrowth, "deposit-growth", 0, "Annual deposit growth in percent")
	fs.Float64Var(&f.marketRate, "market-rate", 0, "Annual market return in percent")
	fs.Float64Var(&f.payoutGrowth, "payout-growth", 0, "Annual payout growth in percent")
	fs.BoolVar(&f.ignoreSnapshot, "defaults", false, "Start from the settings instead of the last saved parameters")
}

// apply overrides p with every flag the user set and reports whether any did.
func (f *paramFlags) apply(fs *pflag.FlagSet, p domain.ProjectionParameters) (domain.ProjectionParameters, bool) {
	explicitLastYear := fs.Changed("last-year")
	changed := false
	fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "deposit":
			p.MonthlyDeposit = f.deposit
		case "capital":
			p.InitialCapital = f.capital
		case "retire":
			p.RetirementStartYear = f.retire
		case "duration":
			p.RetirementDuration = f.duration
		case "last-year":
			p.LastYear = f.lastYear
		case "deposit-growth":
			p.DepositGrowthRate = domain.RateFromPercent(f.depositGrowth)
		case "market-rate":
			p.MarketRate = domain.RateFromPercent(f.marketRate)
		case "payout-growth":
			p.RetirementGrowthRate = domain.RateFromPercent(f.payoutGrowth)
		default:
			return
		}
		changed = true
	})
	if !explicitLastYear && p.LastYear < p.RetirementEndYear() {
		p.LastYear = p.RetirementEndYear()
	}
	return p, changed
}

// snapshotSource is the part of the store parameter resolution needs.
type snapshotSource interface {
	Latest(ctx context.Context) (store.Snapshot, error)
}

// baseParameters returns the last-known-good parameters: the newest snapshot
// re-based to the current year, or the settings defaults when there is none
// or it cannot be read.
func baseParameters(ctx context.Context, src snapshotSource, defaults config.ProjectionSettings, year int) (domain.ProjectionParameters, string) {
	fallback := defaults.Parameters(year)
	if src == nil {
		return fallback, "settings"
	}
	snap, err := src.Latest(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.Warnf("loading saved parameters failed, using defaults: %v", err)
		}
		return fallback, "settings"
	}
	p := snap.Parameters
	if p.CurrentYear < year {
		p.CurrentYear = year
	}
	if p.LastYear < p.CurrentYear {
		p.LastYear = p.RetirementEndYear()
	}
	if err := config.ValidateParameters(p); err != nil {
		logger.Warnf("saved parameters %q are no longer valid, using defaults: %v", snap.Name, err)
		return fallback, "settings"
	}
	return p, fmt.Sprintf("snapshot %q", snap.Name)
}

// resolveParameters applies the command's overrides to the last-known-good
// parameters. Overrides that fail validation are reported and dropped.
func resolveParameters(ctx context.Context, cmd *cobra.Command, f *paramFlags, src snapshotSource) (domain.ProjectionParameters, error) {
	if f.ignoreSnapshot {
		src = nil
	}
	base, origin := baseParameters(ctx, src, settings.Projection, calculation.CurrentYear())
	logger.Debugf("base parameters from %s", origin)

	p, overridden := f.apply(cmd.Flags(), base)
	if err := config.ValidateParameters(p); err != nil {
		if !overridden {
			return p, err
		}
		if baseErr := config.ValidateParameters(base); baseErr != nil {
			return base, err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Ignoring overrides (%v); using %s.\n", err, origin)
		return base, nil
	}
	return p, nil
}
