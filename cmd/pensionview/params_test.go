package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pensionview/retirement-projection/internal/calculation"
	"github.com/pensionview/retirement-projection/internal/config"
	"github.com/pensionview/retirement-projection/internal/domain"
	"github.com/pensionview/retirement-projection/internal/store"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnapshots struct {
	snap store.Snapshot
	err  error
}

func (f fakeSnapshots) Latest(context.Context) (store.Snapshot, error) { return f.snap, f.err }

func savedParams() domain.ProjectionParameters {
	return domain.ProjectionParameters{
		CurrentYear:          2024,
		LastYear:             2080,
		MonthlyDeposit:       450,
		DepositGrowthRate:    0.01,
		MarketRate:           0.05,
		RetirementStartYear:  2060,
		RetirementGrowthRate: 0.02,
		RetirementDuration:   20,
	}
}

func TestBaseParameters(t *testing.T) {
	defaults := config.DefaultSettings().Projection
	ctx := context.Background()

	t.Run("no store uses settings", func(t *testing.T) {
		p, origin := baseParameters(ctx, nil, defaults, 2025)
		assert.Equal(t, "settings", origin)
		assert.Equal(t, defaults.Parameters(2025), p)
	})

	t.Run("nothing saved uses settings", func(t *testing.T) {
		p, origin := baseParameters(ctx, fakeSnapshots{err: store.ErrNotFound}, defaults, 2025)
		assert.Equal(t, "settings", origin)
		assert.Equal(t, 300.0, p.MonthlyDeposit)
	})

	t.Run("read failure uses settings", func(t *testing.T) {
		_, origin := baseParameters(ctx, fakeSnapshots{err: errors.New("disk on fire")}, defaults, 2025)
		assert.Equal(t, "settings", origin)
	})

	t.Run("snapshot is rebased to the current year", func(t *testing.T) {
		src := fakeSnapshots{snap: store.Snapshot{Name: "mine", Parameters: savedParams()}}
		p, origin := baseParameters(ctx, src, defaults, 2026)
		assert.Equal(t, `snapshot "mine"`, origin)
		assert.Equal(t, 2026, p.CurrentYear)
		assert.Equal(t, 2080, p.LastYear)
		assert.Equal(t, 450.0, p.MonthlyDeposit)
	})

	t.Run("stale snapshot uses settings", func(t *testing.T) {
		stale := savedParams()
		stale.RetirementStartYear = 2025
		src := fakeSnapshots{snap: store.Snapshot{Name: "old", Parameters: stale}}
		_, origin := baseParameters(ctx, src, defaults, 2030)
		assert.Equal(t, "settings", origin)
	})
}

func newParamCommand(t *testing.T, args ...string) (*cobra.Command, *paramFlags) {
	t.Helper()
	f := &paramFlags{}
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	cmd.Flags().String("format", "", "")
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, f
}

func TestParamFlagsApply(t *testing.T) {
	cmd, f := newParamCommand(t, "--deposit", "500", "--market-rate", "4.5", "--retire", "2070", "--format", "json")
	p, changed := f.apply(cmd.Flags(), savedParams())
	assert.True(t, changed)
	assert.Equal(t, 500.0, p.MonthlyDeposit)
	assert.InDelta(t, 0.045, p.MarketRate.Fraction(), 1e-12)
	assert.Equal(t, 2070, p.RetirementStartYear)
	assert.Equal(t, 2090, p.LastYear, "horizon extended to the end of the payout phase")
	assert.InDelta(t, 0.01, p.DepositGrowthRate.Fraction(), 1e-12, "unset flags keep the base value")

	cmd, f = newParamCommand(t, "--format", "json")
	p, changed = f.apply(cmd.Flags(), savedParams())
	assert.False(t, changed, "non-parameter flags are not overrides")
	assert.Equal(t, savedParams(), p)

	cmd, f = newParamCommand(t, "--last-year", "2050")
	p, _ = f.apply(cmd.Flags(), savedParams())
	assert.Equal(t, 2050, p.LastYear, "an explicit horizon is kept")
}

func TestResolveParametersFallsBackOnInvalidOverride(t *testing.T) {
	settings = config.DefaultSettings()
	calculation.SetNowFunc(func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) })
	t.Cleanup(func() { calculation.SetNowFunc(time.Now) })

	src := fakeSnapshots{snap: store.Snapshot{Name: "mine", Parameters: savedParams()}}

	cmd, f := newParamCommand(t, "--deposit", "-10")
	p, err := resolveParameters(context.Background(), cmd, f, src)
	require.NoError(t, err)
	assert.Equal(t, 450.0, p.MonthlyDeposit)
	assert.Equal(t, 2025, p.CurrentYear)

	cmd, f = newParamCommand(t, "--deposit", "600")
	p, err = resolveParameters(context.Background(), cmd, f, src)
	require.NoError(t, err)
	assert.Equal(t, 600.0, p.MonthlyDeposit)

	cmd, f = newParamCommand(t, "--defaults")
	p, err = resolveParameters(context.Background(), cmd, f, src)
	require.NoError(t, err)
	assert.Equal(t, 300.0, p.MonthlyDeposit)
	assert.Equal(t, 2065, p.RetirementStartYear)
}
