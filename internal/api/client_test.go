package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// httptest keeps idle connections in the shared transport pool.
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func newTestClient(t *testing.T, initData string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:   srv.URL,
		BotPrefix: "/women",
		Timeout:   2 * time.Second,
		InitData:  initData,
	}, nil)
}

func TestFetchProfile_SendsTokenInHeaderAndBody(t *testing.T) {
	c := newTestClient(t, "tok123", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/women/tg/profile", r.URL.Path)
		assert.Equal(t, "tok123", r.Header.Get("x-telegram-init-data"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tok123", body["initData"])

		_, _ = w.Write([]byte(`{"ok":true,"profile":{"ref_code":"r1","done_count":3}}`))
	})

	p, err := c.FetchProfile(context.Background())
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "r1", p.RefCode)
	assert.Equal(t, 3, p.DoneCount)
}

func TestFetchProfile_UnauthenticatedDegradesToNil(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without init data")
	})

	p, err := c.FetchProfile(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestFetchProfile_HTTPErrorCarriesStatusAndBody(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusForbidden)
	})

	_, err := c.FetchProfile(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.Status)
	assert.Contains(t, statusErr.Body, "boom")
}

func TestFetchProfile_NonJSONBodyIsError(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway timeout</html>"))
	})

	_, err := c.FetchProfile(context.Background())
	assert.ErrorContains(t, err, "non-JSON")
}

func TestFetchPrompts_MapsRecords(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/women/prompt/list", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 1, body["page"])
		assert.EqualValues(t, 200, body["limit"])

		_, _ = w.Write([]byte(`{"items":[
			{"id":7,"title":"Портрет","prompt_text":"txt","image_url":"http://img",
			 "categories":["портрет","неон"],"copies_by_user":2,"favorites_count":4,"is_favorite":true},
			{"id":8,"title":"Без тегов"}
		]}`))
	})

	prompts, err := c.FetchPrompts(context.Background())
	require.NoError(t, err)
	require.Len(t, prompts, 2)

	assert.Equal(t, 7, prompts[0].ID)
	assert.Equal(t, "портрет", prompts[0].Category)
	assert.Equal(t, []string{"портрет", "неон"}, prompts[0].Tags)
	assert.Equal(t, 2, prompts[0].Copies)
	assert.Equal(t, 4, prompts[0].Favorites)
	assert.True(t, prompts[0].IsFavorite)

	assert.Equal(t, "без категории", prompts[1].Category)
	assert.Empty(t, prompts[1].Tags)
}

func TestFetchPrompts_MissingListYieldsEmpty(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	prompts, err := c.FetchPrompts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, prompts)
}

func TestFetchPrompts_WorksWithoutAuth(t *testing.T) {
	// The list endpoint is readable anonymously; only the token header is
	// omitted.
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("x-telegram-init-data"))
		_, _ = w.Write([]byte(`[{"id":1}]`))
	})

	prompts, err := c.FetchPrompts(context.Background())
	require.NoError(t, err)
	assert.Len(t, prompts, 1)
}

func TestToggleFavorite_FullResponse(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 9, body["prompt_id"])

		_, _ = w.Write([]byte(`{"ok":true,"is_favorite":true,"favorites_count":12}`))
	})

	res, err := c.ToggleFavorite(context.Background(), 9)
	require.NoError(t, err)
	require.NotNil(t, res.State)
	assert.True(t, *res.State)
	require.NotNil(t, res.Favorites)
	assert.Equal(t, 12, *res.Favorites)
}

func TestToggleFavorite_AlternateFieldNames(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true,"favorite":false,"favorites":3}`))
	})

	res, err := c.ToggleFavorite(context.Background(), 9)
	require.NoError(t, err)
	require.NotNil(t, res.State)
	assert.False(t, *res.State)
	require.NotNil(t, res.Favorites)
	assert.Equal(t, 3, *res.Favorites)
}

func TestToggleFavorite_BareAckLeavesDerivationToCaller(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	res, err := c.ToggleFavorite(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, res.State)
	assert.Nil(t, res.Favorites)
}

func TestToggleFavorite_NoAuth(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without init data")
	})

	_, err := c.ToggleFavorite(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNoAuth)
}

func TestRecordCopy_CounterChain(t *testing.T) {
	cases := []struct {
		body string
		want int
	}{
		{`{"copies_by_user":5}`, 5},
		{`{"copies":4}`, 4},
		{`{"count":3}`, 3},
		{`{"ok":true}`, 1},
		{`{"copies_by_user":0}`, 1}, // zero is treated as absent
	}

	for _, tc := range cases {
		c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(tc.body))
		})
		got, err := c.RecordCopy(context.Background(), 1)
		require.NoError(t, err, "body=%s", tc.body)
		assert.Equal(t, tc.want, got, "body=%s", tc.body)
	}
}

func TestRecordCopy_NoAuth(t *testing.T) {
	c := newTestClient(t, "", nil)
	_, err := c.RecordCopy(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoAuth)
}
