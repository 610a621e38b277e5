package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ytsandesh670-cpu/Shopping/internal/shop/catalog"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestManager(t *testing.T, clock *fixedClock) *Manager {
	t.Helper()

	mgr, err := NewManager(Config{
		CookieName:  "test_session",
		HashKey:     []byte("0123456789ABCDEF0123456789ABCDEF"),
		BlockKey:    []byte("ABCDEF0123456789ABCDEF0123456789"),
		PageSize:    4,
		IdleTimeout: 10 * time.Minute,
		Lifetime:    2 * time.Hour,
		Now:         clock.Now,
	})
	require.NoError(t, err)
	return mgr
}

func TestNewManagerValidatesKeys(t *testing.T) {
	t.Parallel()

	_, err := NewManager(Config{})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewManager(Config{HashKey: []byte("hash"), BlockKey: []byte("short")})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewManager(Config{HashKey: GenerateKey(32)})
	require.NoError(t, err)
}

func TestManager_NewSessionLifecycle(t *testing.T) {
	t.Parallel()

	clock := &fixedClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	mgr := newTestManager(t, clock)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	sess, err := mgr.Load(req)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID())
	require.True(t, sess.Dirty())
	require.Equal(t, catalog.DefaultState(4), sess.View())
	require.Empty(t, sess.OverlayProductID())

	sess.SetView(sess.View().WithCategory("mens").WithSort(catalog.SortPriceDesc))
	sess.SetOverlayProductID("m1")

	rec := httptest.NewRecorder()
	require.NoError(t, mgr.Save(rec, sess))

	cookie := findCookie(rec.Result().Cookies(), "test_session")
	require.NotNil(t, cookie)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	clock.Advance(5 * time.Minute)
	req2 := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	req2.AddCookie(cookie)

	loaded, err := mgr.Load(req2)
	require.NoError(t, err)
	require.Equal(t, sess.ID(), loaded.ID())
	require.False(t, loaded.Dirty())
	require.Equal(t, "mens", loaded.View().Category)
	require.Equal(t, catalog.SortPriceDesc, loaded.View().Sort)
	require.Equal(t, 4, loaded.View().PageSize)
	require.Equal(t, "m1", loaded.OverlayProductID())
}

func TestManager_IdleTimeout(t *testing.T) {
	t.Parallel()

	clock := &fixedClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	mgr := newTestManager(t, clock)

	sess := mgr.New()
	rec := httptest.NewRecorder()
	require.NoError(t, mgr.Save(rec, sess))
	cookie := findCookie(rec.Result().Cookies(), "test_session")
	require.NotNil(t, cookie)

	clock.Advance(11 * time.Minute)
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	req.AddCookie(cookie)

	_, err := mgr.Load(req)
	require.True(t, errors.Is(err, ErrExpired))
}

func TestManager_TamperedCookieStartsFresh(t *testing.T) {
	t.Parallel()

	clock := &fixedClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	mgr := newTestManager(t, clock)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	req.AddCookie(&http.Cookie{Name: "test_session", Value: "garbage"})

	sess, err := mgr.Load(req)
	require.NoError(t, err)
	require.True(t, sess.Dirty())
	require.Equal(t, catalog.DefaultState(4), sess.View())
}

func TestSession_SetViewPinsPageSize(t *testing.T) {
	t.Parallel()

	clock := &fixedClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	mgr := newTestManager(t, clock)

	sess := mgr.sessionFromData(Data{ID: "abc", CreatedAt: clock.now, LastActive: clock.now})
	require.False(t, sess.Dirty())
	require.Equal(t, catalog.DefaultState(4), sess.View())

	sess.SetView(catalog.DefaultState(4))
	require.False(t, sess.Dirty())

	state := catalog.DefaultState(50)
	state.Page = 2
	sess.SetView(state)
	require.True(t, sess.Dirty())
	require.Equal(t, 4, sess.View().PageSize)
	require.Equal(t, 2, sess.View().Page)
}

func TestManager_Destroy(t *testing.T) {
	t.Parallel()

	clock := &fixedClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	mgr := newTestManager(t, clock)

	rec := httptest.NewRecorder()
	mgr.Destroy(rec)

	cookie := findCookie(rec.Result().Cookies(), "test_session")
	require.NotNil(t, cookie)
	require.Equal(t, -1, cookie.MaxAge)
	require.Empty(t, cookie.Value)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestNewManagerSameSite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   http.SameSite
		want http.SameSite
	}{
		{name: "zero value defaults to lax", in: 0, want: http.SameSiteLaxMode},
		{name: "default mode becomes lax", in: http.SameSiteDefaultMode, want: http.SameSiteLaxMode},
		{name: "explicit strict is kept", in: http.SameSiteStrictMode, want: http.SameSiteStrictMode},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mgr, err := NewManager(Config{
				CookieName:     "test_session",
				HashKey:        GenerateKey(32),
				CookieSameSite: tc.in,
			})
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			require.NoError(t, mgr.Save(rec, mgr.New()))

			cookie := findCookie(rec.Result().Cookies(), "test_session")
			require.NotNil(t, cookie)
			require.Equal(t, tc.want, cookie.SameSite)
			require.Contains(t, rec.Header().Get("Set-Cookie"), "SameSite=")
		})
	}
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
