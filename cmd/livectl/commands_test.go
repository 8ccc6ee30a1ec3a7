package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/scheduler"
)

func run(t *testing.T, url string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--url", url, "--token", "tok"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestSyncCmd(t *testing.T) {
	var called atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called.Store(r.Method == http.MethodPost &&
			r.URL.Path == "/api/campaigns/sync/tiktok" &&
			r.Header.Get("Authorization") == "Bearer tok")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"platform":"tiktok","status":"accepted"}`))
	}))
	defer srv.Close()

	out, err := run(t, srv.URL, "sync", "tiktok")

	require.NoError(t, err)
	assert.True(t, called.Load())
	assert.Contains(t, out, "resync de tiktok accepted")
}

func TestSyncCmd_PlataformaInvalida(t *testing.T) {
	_, err := run(t, "http://127.0.0.1:0", "sync", "orkut")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStatusCmd(t *testing.T) {
	completed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal([]scheduler.PlatformSyncStatus{
			{Platform: domain.PlatformMeta, Runs: 4, Failures: 1, LastCompletedAt: &completed, LastError: "boom"},
			{Platform: domain.PlatformGoogle},
		})
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	out, err := run(t, srv.URL, "status")

	require.NoError(t, err)
	assert.Contains(t, out, "PLATFORM")
	assert.Contains(t, out, "meta")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "google")
}

func TestBudgetCmd(t *testing.T) {
	var body atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/campaigns/live/meta/123/budget" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		raw, _ := io.ReadAll(r.Body)
		body.Store(string(raw))
		_, _ = w.Write([]byte(`{"entity_key":"meta:123","mutation_state":"committed"}`))
	}))
	defer srv.Close()

	out, err := run(t, srv.URL, "budget", "meta", "123", "5000", "--type", "campaign", "--previous", "4000")

	require.NoError(t, err)
	assert.Contains(t, out, "meta:123: committed")
	assert.JSONEq(t, `{"new_budget_cents":5000,"entity_type":"campaign","previous_budget_cents":4000}`, body.Load().(string))
}

func TestBudgetCmd_ErroDaAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"LIVE_003","message":"busy"}`))
	}))
	defer srv.Close()

	_, err := run(t, srv.URL, "budget", "meta", "123", "5000")

	var apiErr *apiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "LIVE_003", apiErr.Code)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestActivityCmd(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// primeira tentativa falha e o GET é repetido
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		if r.URL.Query().Get("limit") != "5" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`[{"entity_id":"a1","platform":"meta","entity_type":"adset","action":"budget_change",
			"old_budget":4000,"new_budget":5000,"budget_delta_cents":1000,"budget_change_pct":25,
			"created_at":"2026-03-01T12:00:00Z"}]`))
	}))
	defer srv.Close()

	out, err := run(t, srv.URL, "activity", "a1", "--limit", "5")

	require.NoError(t, err)
	assert.Equal(t, int32(2), requests.Load())
	assert.Contains(t, out, "budget_change")
	assert.Contains(t, out, "10.00 (+25.0%)")
}

func TestStatusCmd_JSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"platform":"meta","runs":2}]`))
	}))
	defer srv.Close()

	out, err := run(t, srv.URL, "status", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"platform": "meta"`)
	assert.Contains(t, out, `"runs": 2`)
}
