package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dimitrije/mirror-api/pkg/dto"
	"github.com/dimitrije/mirror-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_Backfill(t *testing.T) {
	mockSync := new(testutil.MockSyncService)
	provider := new(testutil.MockProviderDirectory)
	handler := NewAdminHandler(mockSync, provider)

	mockSync.On("Backfill", mock.Anything, provider).Return(42, nil)

	app := drift.New()
	app.Post("/admin/backfill", handler.Backfill)

	req := httptest.NewRequest(http.MethodPost, "/admin/backfill", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.BackfillResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 42, response.Applied)

	mockSync.AssertExpectations(t)
}

func TestAdminHandler_Backfill_NoProviderConfigured(t *testing.T) {
	mockSync := new(testutil.MockSyncService)
	handler := NewAdminHandler(mockSync, nil)

	app := drift.New()
	app.Post("/admin/backfill", handler.Backfill)

	req := httptest.NewRequest(http.MethodPost, "/admin/backfill", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockSync.AssertNotCalled(t, "Backfill", mock.Anything, mock.Anything)
}

func TestAdminHandler_Backfill_Error(t *testing.T) {
	mockSync := new(testutil.MockSyncService)
	provider := new(testutil.MockProviderDirectory)
	handler := NewAdminHandler(mockSync, provider)

	mockSync.On("Backfill", mock.Anything, provider).Return(0, assert.AnError)

	app := drift.New()
	app.Post("/admin/backfill", handler.Backfill)

	req := httptest.NewRequest(http.MethodPost, "/admin/backfill", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "backfill failed")
	mockSync.AssertExpectations(t)
}
