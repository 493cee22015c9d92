package peselgo_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/peselgo"
	"github.com/hupe1980/peselgo/peseltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestEqual(t *testing.T) {
	d, err := peselgo.NewDecimal(2290486168)
	require.NoError(t, err)
	other, err := peselgo.NewDecimal(60032417874)
	require.NoError(t, err)

	assert.True(t, peselgo.Equal(d, d))
	assert.True(t, peselgo.Equal(d, d.Binary()))
	assert.True(t, peselgo.Equal(d.Binary().Decimal(), d))
	assert.False(t, peselgo.Equal(d, other))
	assert.False(t, peselgo.Equal(d.Binary(), other.Binary()))
}

func TestSex_String(t *testing.T) {
	assert.Equal(t, "male", peselgo.Male.String())
	assert.Equal(t, "female", peselgo.Female.String())
}

func TestRepresentationsAgree(t *testing.T) {
	gen := peseltest.NewGenerator(1)

	for range 500 {
		d := gen.Decimal()
		b := d.Binary()

		require.True(t, peselgo.Equal(d, b), "value %d", d.Uint64())
		assert.Equal(t, d.YearSection(), b.YearSection())
		assert.Equal(t, d.MonthSection(), b.MonthSection())
		assert.Equal(t, d.DaySection(), b.DaySection())
		assert.Equal(t, d.OrdinalSection(), b.OrdinalSection())
		assert.Equal(t, d.ControlSection(), b.ControlSection())
		assert.Equal(t, d.Year(), b.Year())
		assert.Equal(t, d.DateOfBirth(), b.DateOfBirth())
		assert.Equal(t, d.Sex(), b.Sex())
		assert.Equal(t, d.String(), b.String())
	}
}

func TestValidateConcurrent(t *testing.T) {
	gen := peseltest.NewGenerator(42)
	values := gen.Values(2000)

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(16)

	for _, value := range values {
		g.Go(func() error {
			if err := peselgo.Validate(value); err != nil {
				return fmt.Errorf("value %d: %w", value, err)
			}
			d, err := peselgo.NewDecimal(value)
			if err != nil {
				return err
			}
			if got := d.Binary().Uint64(); got != value {
				return fmt.Errorf("value %d: round trip returned %d", value, got)
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
