package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/manoslocales/marketwatch/internal/api/handlers"
	"github.com/manoslocales/marketwatch/internal/store/mocks"
	domain "github.com/manoslocales/marketwatch/pkg/types"
)

// paramContext builds an echo context with a single :id path parameter.
func paramContext(method, target, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			id:   "prod-1",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetProduct(mock.Anything, "prod-1").
					Return(&domain.Product{
						ID:         "prod-1",
						ProviderID: "prov-1",
						Name:       "Pan de yema",
						Price:      34.50,
						Currency:   "MXN",
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Pan de yema"`,
		},
		{
			name: "not found",
			id:   "prod-missing",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					GetProduct(mock.Anything, "prod-missing").
					Return(nil, errors.New("no rows")).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "product not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewCatalogHandler(ms)

			c, rec := paramContext(http.MethodGet, "/api/v1/products/"+tt.id, tt.id)
			require.NoError(t, h.GetProduct(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestCatalogHandler_UpsertProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid product",
			body: `{"id":"prod-1","provider_id":"prov-1","name":"Mole negro","price":180}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					UpsertProduct(mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
						return p.ID == "prod-1" && p.Name == "Mole negro"
					})).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Mole negro"`,
		},
		{
			name:       "missing provider_id",
			body:       `{"id":"prod-1","name":"Mole negro"}`,
			setupMock:  func(_ *mocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "id, name and provider_id are required",
		},
		{
			name: "store error",
			body: `{"id":"prod-1","provider_id":"prov-1","name":"Mole negro"}`,
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					UpsertProduct(mock.Anything, mock.Anything).
					Return(errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "upserting product",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewCatalogHandler(ms)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/products",
				strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, h.UpsertProduct(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestCatalogHandler_GetProvider(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	ms.EXPECT().
		GetProvider(mock.Anything, "prov-1").
		Return(&domain.Provider{ID: "prov-1", Name: "Panadería La Espiga", City: "Oaxaca"}, nil).
		Once()

	h := handlers.NewCatalogHandler(ms)

	c, rec := paramContext(http.MethodGet, "/api/v1/providers/prov-1", "prov-1")
	require.NoError(t, h.GetProvider(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Panadería La Espiga")
}

func TestCatalogHandler_UpsertProvider_Validation(t *testing.T) {
	t.Parallel()

	ms := mocks.NewMockStore(t)
	h := handlers.NewCatalogHandler(ms)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/providers",
		strings.NewReader(`{"id":"prov-1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.UpsertProvider(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "id and name are required")
}

func TestCatalogHandler_ListProviderProducts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*mocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns products",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					ListProductsByProvider(mock.Anything, "prov-1").
					Return([]domain.Product{
						{ID: "prod-1", ProviderID: "prov-1", Name: "Pan de yema"},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Pan de yema"`,
		},
		{
			name: "empty catalog returns empty array",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					ListProductsByProvider(mock.Anything, "prov-1").
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "store error",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().
					ListProductsByProvider(mock.Anything, "prov-1").
					Return(nil, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing products",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := mocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewCatalogHandler(ms)

			c, rec := paramContext(http.MethodGet, "/api/v1/providers/prov-1/products", "prov-1")
			require.NoError(t, h.ListProviderProducts(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
