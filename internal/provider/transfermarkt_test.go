package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players/search/Zidane", r.URL.Path)
		w.Write([]byte(`{"results": [{"id": "3111", "name": "Zinedine Zidane"}]}`))
	})

	candidates, err := client.Search(context.Background(), "Zidane")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "3111", candidates[0].ID)
	assert.Equal(t, "Zinedine Zidane", candidates[0].Name)
}

func TestSearchNoMatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	})

	candidates, err := client.Search(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players/28003/profile", r.URL.Path)
		w.Write([]byte(`{
			"id": "28003",
			"name": "Lionel Messi",
			"position": {"main": "Right Winger"},
			"club": {"name": "Inter Miami CF"},
			"citizenship": ["Argentina", "Spain"],
			"age": "37"
		}`))
	})

	rec, err := client.Profile(context.Background(), "28003")
	require.NoError(t, err)
	assert.Equal(t, "Lionel Messi", rec.Name)
	assert.Equal(t, "Right Winger", rec.Position)
	assert.Equal(t, "Inter Miami CF", rec.Club)
	assert.Equal(t, []string{"Argentina", "Spain"}, rec.Citizenship)
	assert.Equal(t, 37, rec.Age)
}

func TestProfileUnparseableAge(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "1", "name": "X", "position": {"main": "Striker"}, "age": "n/a"}`))
	})

	rec, err := client.Profile(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Age)
}

func TestProfileNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Profile(context.Background(), "1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Profile(context.Background(), "1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestProfileMalformedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 12`))
	})

	_, err := client.Profile(context.Background(), "1")
	assert.Error(t, err)
}

func TestAchievements(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players/28003/achievements", r.URL.Path)
		w.Write([]byte(`{"achievements": [
			{"title": "Winner Ballon d'Or", "count": 2, "details": [
				{"season": {"name": "1997/98"}},
				{"season": {"name": "1999/00"}}
			]}
		]}`))
	})

	achievements, err := client.Achievements(context.Background(), "28003")
	require.NoError(t, err)
	require.Len(t, achievements, 1)
	assert.Equal(t, "Winner Ballon d'Or", achievements[0].Title)
	assert.Equal(t, 2, achievements[0].Count)
	assert.Equal(t, []string{"1997/98", "1999/00"}, achievements[0].Seasons)
}

func TestAchievementsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"achievements": []}`))
	})

	achievements, err := client.Achievements(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, achievements)
}

func TestClubCountry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clubs/search/Real%20Madrid", r.URL.EscapedPath())
		w.Write([]byte(`{"results": [{"id": "418", "name": "Real Madrid", "country": "Spain"}]}`))
	})

	country, err := client.ClubCountry(context.Background(), "Real Madrid")
	require.NoError(t, err)
	assert.Equal(t, "Spain", country)
}

func TestClubCountryUnresolvable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	})

	_, err := client.ClubCountry(context.Background(), "Nowhere FC")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClubCountryEmptyName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for empty club name")
	})

	_, err := client.ClubCountry(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	client.httpc.Timeout = 50 * time.Millisecond

	_, err := client.Profile(context.Background(), "1")
	assert.Error(t, err)
}
