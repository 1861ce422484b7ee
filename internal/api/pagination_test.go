package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawel123789/peopleclient/internal/types"
)

func TestPageCount(t *testing.T) {
	t.Parallel()
	cases := []struct{ total, limit, want int }{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{60, 60, 1},
		{1000, 60, 17},
		{1020, 60, 17},
		{1021, 60, 18},
		{5, 1, 5},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PageCount(c.total, c.limit), "total=%d limit=%d", c.total, c.limit)
	}
}

// pagedServer serves all in json-server style: _limit/_page slicing and X-Total-Count.
func pagedServer(t *testing.T, all []types.Person, rec *recorder) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.add(r)
		limit, _ := strconv.Atoi(r.URL.Query().Get("_limit"))
		page := 1
		if p := r.URL.Query().Get("_page"); p != "" {
			page, _ = strconv.Atoi(p)
		}
		start := (page - 1) * limit
		end := start + limit
		if start > len(all) {
			start = len(all)
		}
		if end > len(all) {
			end = len(all)
		}
		w.Header().Set("X-Total-Count", strconv.Itoa(len(all)))
		writeJSON(t, w, http.StatusOK, all[start:end])
	}))
}

func TestListPeoplePaged_Remainder(t *testing.T) {
	t.Parallel()
	all := makePeople(25)
	rec := &recorder{}
	srv := pagedServer(t, all, rec)
	defer srv.Close()

	got, err := ListPeoplePaged(context.Background(), srv.Client(), srv.URL+"/people/", 10)
	require.NoError(t, err)
	assert.Equal(t, all, got)

	reqs := rec.all()
	require.Len(t, reqs, 3)
	assert.Equal(t, "10", reqs[0].URL.Query().Get("_limit"))
	assert.Empty(t, reqs[0].URL.Query().Get("_page"), "first request carries no _page")
	assert.Equal(t, "2", reqs[1].URL.Query().Get("_page"))
	assert.Equal(t, "3", reqs[2].URL.Query().Get("_page"))
}

func TestListPeoplePaged_ExactMultiple(t *testing.T) {
	t.Parallel()
	all := makePeople(20)
	rec := &recorder{}
	srv := pagedServer(t, all, rec)
	defer srv.Close()

	got, err := ListPeoplePaged(context.Background(), srv.Client(), srv.URL+"/people/", 10)
	require.NoError(t, err)
	assert.Equal(t, all, got)
	assert.Len(t, rec.all(), 2)
}

func TestListPeoplePaged_SinglePageAndEmpty(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	srv := pagedServer(t, makePeople(3), rec)
	defer srv.Close()
	got, err := ListPeoplePaged(context.Background(), srv.Client(), srv.URL, 60)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Len(t, rec.all(), 1)

	rec2 := &recorder{}
	empty := pagedServer(t, nil, rec2)
	defer empty.Close()
	got, err = ListPeoplePaged(context.Background(), empty.Client(), empty.URL, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Len(t, rec2.all(), 1)
}

func TestListPeoplePaged_RejectsNonPositiveLimit(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	for _, n := range []int{0, -3} {
		_, err := ListPeoplePaged(context.Background(), hc, "http://example.com/people/", n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrInvalidArgument), "limit %d: %v", n, err)
	}
}

func TestListPeoplePaged_MissingTotalCount(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, makePeople(2))
	}))
	defer srv.Close()
	_, err := ListPeoplePaged(context.Background(), srv.Client(), srv.URL, 2)
	assert.ErrorIs(t, err, types.ErrMissingTotalCount)
}

func TestListPeoplePaged_BadTotalCount(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Total-Count", "lots")
		writeJSON(t, w, http.StatusOK, makePeople(2))
	}))
	defer srv.Close()
	_, err := ListPeoplePaged(context.Background(), srv.Client(), srv.URL, 2)
	assert.ErrorIs(t, err, types.ErrMissingTotalCount)
}

func TestListPeoplePaged_LaterPageFails(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("_page") == "2" {
			writeJSON(t, w, http.StatusInternalServerError, map[string]string{"error": "db down"})
			return
		}
		w.Header().Set("X-Total-Count", "4")
		writeJSON(t, w, http.StatusOK, makePeople(2))
	}))
	defer srv.Close()
	_, err := ListPeoplePaged(context.Background(), srv.Client(), srv.URL, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestPageURL_PreservesExistingQuery(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "http://h/people?_limit=5", pageURL("http://h/people", 5, 0))
	assert.Equal(t, "http://h/people?_limit=5&_page=2", pageURL("http://h/people", 5, 2))
	assert.Equal(t, "http://h/people?x=1&_limit=5", pageURL("http://h/people?x=1", 5, 0))
}
