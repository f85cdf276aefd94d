package numberfield_test

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numberfield/pkg/numberfield"
)

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	minFrac := enConfig()
	minFrac.SetMinimumFractionDigits(2)

	alwaysShown := enConfig()
	alwaysShown.DecimalSeparatorAlwaysShown = true

	integers := enConfig()
	integers.SetDecimalsAllowed(false)

	wideGroups := enConfig()
	wideGroups.SetGroupingSize(4)

	ungrouped := enConfig()
	ungrouped.GroupingUsed = false

	precise := enConfig()
	precise.SetDecimalPrecision(16)

	tests := []struct {
		name      string
		canonical string
		cfg       numberfield.Config
		want      string
	}{
		{name: "en grouping", canonical: "1234567.891", cfg: enConfig(), want: "1,234,567.89"},
		{name: "de grouping", canonical: "1234567.891", cfg: deConfig(), want: "1.234.567,89"},
		{name: "negative", canonical: "-1234.5", cfg: enConfig(), want: "-1,234.5"},
		{name: "short integer", canonical: "100", cfg: enConfig(), want: "100"},
		{name: "first group", canonical: "1000", cfg: enConfig(), want: "1,000"},
		{name: "trailing zeros trimmed", canonical: "2.50", cfg: enConfig(), want: "2.5"},
		{name: "minimum fraction digits", canonical: "2.5", cfg: minFrac, want: "2.50"},
		{name: "minimum fraction on integer", canonical: "7", cfg: minFrac, want: "7.00"},
		{name: "half to even down", canonical: "0.125", cfg: enConfig(), want: "0.12"},
		{name: "half to even up", canonical: "0.135", cfg: enConfig(), want: "0.14"},
		{name: "separator always shown", canonical: "12", cfg: alwaysShown, want: "12."},
		{name: "integers round half to even", canonical: "12.5", cfg: integers, want: "12"},
		{name: "integers round up", canonical: "13.5", cfg: integers, want: "14"},
		{name: "negative zero", canonical: "-0.001", cfg: enConfig(), want: "0"},
		{name: "grouping size four", canonical: "12345678", cfg: wideGroups, want: "1234,5678"},
		{name: "grouping unused", canonical: "1234567", cfg: ungrouped, want: "1234567"},
		{name: "sixteen fraction digits", canonical: "0.1234567890123456", cfg: precise, want: "0.1234567890123456"},
		{name: "exponent input", canonical: "1e3", cfg: enConfig(), want: "1,000"},
		{name: "empty", canonical: "", cfg: enConfig(), want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := numberfield.Shared().Format(tt.canonical, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()
		_, err := numberfield.Shared().Format("abc", enConfig())
		assert.ErrorIs(t, err, numberfield.ErrFormat)
	})
}

func TestFormatter_Parse(t *testing.T) {
	t.Parallel()

	ungrouped := enConfig()
	ungrouped.GroupingUsed = false

	tests := []struct {
		name    string
		display string
		cfg     numberfield.Config
		want    string
	}{
		{name: "en grouped", display: "1,234.5", cfg: enConfig(), want: "1234.5"},
		{name: "de grouped", display: "2.546,99", cfg: deConfig(), want: "2546.99"},
		{name: "negative", display: "-12,5", cfg: deConfig(), want: "-12.5"},
		{name: "trailing separator", display: "12,", cfg: deConfig(), want: "12"},
		{name: "leading separator", display: ",5", cfg: deConfig(), want: "0.5"},
		{name: "negative leading separator", display: "-,5", cfg: deConfig(), want: "-0.5"},
		{name: "trailing zeros", display: "1,500", cfg: enConfig(), want: "1500"},
		{name: "fraction zeros", display: "1.500", cfg: enConfig(), want: "1.5"},
		{name: "negative zero", display: "-0", cfg: enConfig(), want: "0"},
		{name: "whitespace", display: "  12 ", cfg: enConfig(), want: "12"},
		{name: "blank", display: "   ", cfg: enConfig(), want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := numberfield.Shared().Parse(tt.display, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	failures := []struct {
		name    string
		display string
		cfg     numberfield.Config
	}{
		{name: "two decimal separators", display: "1.2.3", cfg: enConfig()},
		{name: "letters", display: "12a", cfg: enConfig()},
		{name: "lone sign", display: "-", cfg: enConfig()},
		{name: "grouping in fraction", display: "1.2,3", cfg: enConfig()},
		{name: "grouping not used", display: "1,234", cfg: ungrouped},
		{name: "sign in the middle", display: "1-2", cfg: enConfig()},
		{name: "foreign separator", display: "12,5", cfg: func() numberfield.Config {
			cfg := deConfig()
			cfg.GroupingSeparator = ' '
			cfg.DecimalSeparator = '.'
			return cfg
		}()},
	}
	for _, tt := range failures {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := numberfield.Shared().Parse(tt.display, tt.cfg)
			assert.ErrorIs(t, err, numberfield.ErrUnparseable)
		})
	}

	t.Run("beyond decimal precision stays plain", func(t *testing.T) {
		t.Parallel()
		got, err := numberfield.Shared().Parse("12345678901234567890123", enConfig())
		require.NoError(t, err)
		assert.NotContains(t, got, "e")
		assert.Len(t, got, 23)
	})
}

func TestFormatter_RoundTrip(t *testing.T) {
	t.Parallel()

	fm := numberfield.NewFormatter()
	for _, cfg := range []numberfield.Config{enConfig(), deConfig()} {
		for _, canonical := range []string{"0", "-5", "1234.5", "999999.99", "0.01"} {
			display, err := fm.Format(canonical, cfg)
			require.NoError(t, err)
			back, err := fm.Parse(display, cfg)
			require.NoError(t, err)
			assert.Equal(t, canonical, back, display)
		}
	}
}

func TestFormatter_RoundTripWithinPrecision(t *testing.T) {
	t.Parallel()

	values := []string{
		"1.23456",
		"-0.005",
		"0.0000001",
		"12345678901234567",
		"0.12345678901234567",
		"-98765.4321",
		"2.5",
	}

	fm := numberfield.NewFormatter()
	for _, precision := range []int{1, 2, 16} {
		precision := precision
		for _, base := range []numberfield.Config{enConfig(), deConfig()} {
			cfg := base
			cfg.SetDecimalPrecision(precision)
			for _, canonical := range values {
				canonical := canonical
				t.Run(fmt.Sprintf("%d/%c/%s", precision, cfg.DecimalSeparator, canonical), func(t *testing.T) {
					t.Parallel()

					want, err := strconv.ParseFloat(canonical, 64)
					require.NoError(t, err)

					display, err := fm.Format(canonical, cfg)
					require.NoError(t, err)
					back, err := fm.Parse(display, cfg)
					require.NoError(t, err)
					assert.NotContains(t, back, "e")

					got, err := strconv.ParseFloat(back, 64)
					require.NoError(t, err)
					assert.InDelta(t, want, got, math.Pow10(-precision), "display %q", display)
				})
			}
		}
	}
}

func TestFormatter_Concurrent(t *testing.T) {
	t.Parallel()

	fm := numberfield.NewFormatter()

	long := enConfig()
	long.SetMinimumFractionDigits(4)

	cases := []struct {
		cfg  numberfield.Config
		want string
	}{
		{cfg: enConfig(), want: "1,234,567.5"},
		{cfg: deConfig(), want: "1.234.567,5"},
		{cfg: long, want: "1,234,567.5000"},
	}

	parses := []struct {
		cfg     numberfield.Config
		display string
	}{
		{cfg: deConfig(), display: "1.234.567,5"},
		{cfg: enConfig(), display: "1,234,567.5"},
		{cfg: long, display: "1,234,567.5000"},
	}

	const workers = 32
	const iterations = 200

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				if (w+i)%2 == 0 {
					p := parses[(w+i)%len(parses)]
					got, err := fm.Parse(p.display, p.cfg)
					if err != nil {
						errs <- err
						return
					}
					if got != "1234567.5" {
						errs <- fmt.Errorf("parse %q: got %q, want %q", p.display, got, "1234567.5")
						return
					}
					continue
				}
				c := cases[(w+i)%len(cases)]
				got, err := fm.Format("1234567.5", c.cfg)
				if err != nil {
					errs <- err
					return
				}
				if got != c.want {
					errs <- fmt.Errorf("format: got %q, want %q", got, c.want)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestPlainDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    float64
		want string
	}{
		{v: 1.2e9, want: "1200000000"},
		{v: 1e-7, want: "0.0000001"},
		{v: 2.5, want: "2.5"},
		{v: -42, want: "-42"},
		{v: math.Copysign(0, -1), want: "0"},
		{v: 1e21, want: "1" + strings.Repeat("0", 21)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			got, err := numberfield.PlainDecimal(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := numberfield.PlainDecimal(v)
		assert.ErrorIs(t, err, numberfield.ErrNotFinite)
	}
}
