package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, baseURL string) *Config {
	t.Helper()
	t.Setenv("IEX_API_BASE_URL", baseURL)
	t.Setenv("IEX_WS_BASE_URL", "")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	return cfg
}

func TestRunQuote(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stock/aapl/quote", r.URL.Path)
		fmt.Fprint(w, `{"symbol":"AAPL","latestPrice":215.5}`)
	}))
	defer ts.Close()

	var out bytes.Buffer
	err := run(context.Background(), testConfig(t, ts.URL), zerolog.Nop(), []string{"quote", "aapl"}, &out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"symbol":"AAPL","latestPrice":215.5}`, out.String())
}

func TestRunExportCSV(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stock/aapl/chart/1m", r.URL.Path)
		assert.Equal(t, "csv", r.URL.Query().Get("format"))
		fmt.Fprint(w, "date,close\n2018-10-23,215.5\n")
	}))
	defer ts.Close()

	cfg := testConfig(t, ts.URL)
	cfg.Format = "csv"
	var out bytes.Buffer
	err := run(context.Background(), cfg, zerolog.Nop(), []string{"chart", "aapl", "1m"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "date,close\n2018-10-23,215.5\n", out.String())
}

func TestRunCorporateActionsSample(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ref-data/daily-list/corporate-actions/sample", r.URL.Path)
		fmt.Fprint(w, `[{"EffectiveDate":"2017-11-10","IPOFlag":"N","CurrentRoundLotSize":"100"}]`)
	}))
	defer ts.Close()

	var out bytes.Buffer
	err := run(context.Background(), testConfig(t, ts.URL), zerolog.Nop(), []string{"corporate-actions", "sample"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"EffectiveDate": "2017-11-10"`)
	assert.Contains(t, out.String(), `"CurrentRoundLotSize": "100"`)
}

func TestRunADTV(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stock/aapl/chart/3m", r.URL.Path)
		fmt.Fprint(w, `[{"volume":10},{"volume":20}]`)
	}))
	defer ts.Close()

	var out bytes.Buffer
	err := run(context.Background(), testConfig(t, ts.URL), zerolog.Nop(), []string{"adtv", "aapl", "3m"}, &out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"AverageVolume":15,"Days":2}`, out.String())
}

func TestRunUsage(t *testing.T) {
	cfg := testConfig(t, "http://iex.test")
	for _, args := range [][]string{
		nil,
		{"bogus"},
		{"quote"},
		{"stream", "nope", "AAPL"},
	} {
		err := run(context.Background(), cfg, zerolog.Nop(), args, &bytes.Buffer{})
		assert.ErrorIs(t, err, errUsage, args)
	}
	assert.Error(t, run(context.Background(), cfg, zerolog.Nop(), []string{"chart", "aapl", "9y"}, &bytes.Buffer{}))
	assert.Error(t, run(context.Background(), cfg, zerolog.Nop(), []string{"corporate-actions", "2017-11-10"}, &bytes.Buffer{}))
}
