package monitor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axellelanca/linkbundles/internal/models"
)

type listerFunc func(ctx context.Context) ([]models.LinkBundle, error)

func (f listerFunc) ListAll(ctx context.Context) ([]models.LinkBundle, error) {
	return f(ctx)
}

func staticLister(bundles ...models.LinkBundle) BundleLister {
	return listerFunc(func(context.Context) ([]models.LinkBundle, error) {
		return bundles, nil
	})
}

func TestCheckOnce_RecordsStates(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer up.Close()
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	m := NewLinkMonitor(staticLister(models.LinkBundle{
		ID:        "b1",
		VanityURL: "reading",
		Links: []models.Link{
			{ID: "1", URL: up.URL},
			{ID: "2", URL: down.URL},
			{ID: "3"},
		},
	}), time.Minute, 2)

	checked := m.CheckOnce(context.Background())

	assert.Equal(t, 2, checked)
	accessible, known := m.State("b1", up.URL)
	assert.True(t, known)
	assert.True(t, accessible)
	accessible, known = m.State("b1", down.URL)
	assert.True(t, known)
	assert.False(t, accessible)
	_, known = m.State("b1", "")
	assert.False(t, known)
}

func TestCheckOnce_TracksTransitions(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		if healthy.Load() {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	m := NewLinkMonitor(staticLister(models.LinkBundle{ID: "b1", Links: []models.Link{{URL: srv.URL}}}), time.Minute, 1)

	m.CheckOnce(context.Background())
	accessible, _ := m.State("b1", srv.URL)
	assert.True(t, accessible)

	healthy.Store(false)
	m.CheckOnce(context.Background())
	accessible, _ = m.State("b1", srv.URL)
	assert.False(t, accessible)
}

func TestCheckOnce_UnreachableAndInvalidURLs(t *testing.T) {
	m := NewLinkMonitor(staticLister(models.LinkBundle{ID: "b1", Links: []models.Link{
		{URL: "http://127.0.0.1:1"},
		{URL: "://bad"},
	}}), time.Minute, 0)

	assert.Equal(t, 2, m.CheckOnce(context.Background()))
	for _, u := range []string{"http://127.0.0.1:1", "://bad"} {
		accessible, known := m.State("b1", u)
		assert.True(t, known)
		assert.False(t, accessible)
	}
}

func TestCheckOnce_ListFailure(t *testing.T) {
	m := NewLinkMonitor(listerFunc(func(context.Context) ([]models.LinkBundle, error) {
		return nil, errors.New("database is locked")
	}), time.Minute, 2)

	assert.Equal(t, 0, m.CheckOnce(context.Background()))
}

func TestStart_StopsOnCancel(t *testing.T) {
	var calls atomic.Int32
	m := NewLinkMonitor(listerFunc(func(context.Context) ([]models.LinkBundle, error) {
		calls.Add(1)
		return nil, nil
	}), 10*time.Millisecond, 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop after cancel")
	}
}
