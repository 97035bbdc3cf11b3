package handlers_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"github.com/manoslocales/marketwatch/internal/api/middleware"
	"github.com/manoslocales/marketwatch/internal/session"
	"github.com/manoslocales/marketwatch/internal/store/mocks"
	domain "github.com/manoslocales/marketwatch/pkg/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubFeed struct {
	ch chan []domain.Product
}

func newStubFeed() *stubFeed {
	return &stubFeed{ch: make(chan []domain.Product, 8)}
}

func (f *stubFeed) Run(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (f *stubFeed) Updates() <-chan []domain.Product {
	return f.ch
}

// expectSessionStart registers the store calls every session start makes.
func expectSessionStart(
	ms *mocks.MockStore,
	userID string,
	productFavs, providerFavs []domain.FavoriteEntry,
	snaps []domain.Snapshot,
) {
	ms.EXPECT().
		ListFavorites(mock.Anything, userID, domain.KindProduct).
		Return(productFavs, nil).
		Once()
	ms.EXPECT().
		ListFavorites(mock.Anything, userID, domain.KindProvider).
		Return(providerFavs, nil).
		Once()
	ms.EXPECT().
		ListSnapshots(mock.Anything, userID).
		Return(snaps, nil).
		Once()
}

func newManager(t *testing.T, ms *mocks.MockStore) *session.Manager {
	t.Helper()
	m := session.NewManager(ms, newStubFeed(), testLogger())
	t.Cleanup(m.Shutdown)
	return m
}

// waitForSession polls until the manager has a session for userID.
func waitForSession(t *testing.T, m *session.Manager, userID string) (*session.Session, bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if sess, ok := m.Get(userID); ok {
			return sess, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

// doRequest runs a request through Identity middleware and the handler,
// returning the recorder.
func doRequest(
	method, target, userID, body string,
	handler echo.HandlerFunc,
) *httptest.ResponseRecorder {
	e := echo.New()

	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := middleware.Identity()(handler)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}
