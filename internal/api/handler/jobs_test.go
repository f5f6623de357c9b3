package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiendt120702/shopee-ads-sync/internal/domain"
	"github.com/kiendt120702/shopee-ads-sync/pkg/apiErrors"
	"github.com/kiendt120702/shopee-ads-sync/pkg/middleware"
)

func newJobRequest(t *testing.T, body string, claims *domain.Claims) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}
	return req
}

func decodeJobResponse(t *testing.T, rec *httptest.ResponseRecorder) *JobResponse {
	t.Helper()

	var resp JobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return &resp
}

func adminClaims() *domain.Claims {
	return &domain.Claims{UserID: 1, UserName: "admin", Role: "admin"}
}

func TestRunJob_SemPrivilegioDeAdmin(t *testing.T) {
	rec := httptest.NewRecorder()
	req := newJobRequest(t, `{"action":"status"}`, &domain.Claims{UserID: 2, Role: "viewer"})

	RunJob(JobServices{})(rec, req)

	// O transporte é sempre 200; o erro vai no corpo
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJobResponse(t, rec)
	assert.False(t, resp.OK)
	require.NotNil(t, resp.Error)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, resp.Error.Code)
}

func TestRunJob_CorpoInvalido(t *testing.T) {
	rec := httptest.NewRecorder()
	req := newJobRequest(t, `{nao e json`, adminClaims())

	RunJob(JobServices{})(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJobResponse(t, rec)
	assert.False(t, resp.OK)
	require.NotNil(t, resp.Error)
	assert.Equal(t, apiErrors.ErrInvalidRequest, resp.Error.Code)
}

func TestRunJob_AcaoDesconhecida(t *testing.T) {
	rec := httptest.NewRecorder()
	req := newJobRequest(t, `{"action":"reprocess_everything"}`, adminClaims())

	RunJob(JobServices{})(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJobResponse(t, rec)
	assert.False(t, resp.OK)
	require.NotNil(t, resp.Error)
	assert.Equal(t, apiErrors.ErrUnknownAction, resp.Error.Code)
	assert.NotEmpty(t, resp.JobID)
}

func TestRunJob_ValidacaoDeParametrosObrigatorios(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "sync_chunk sem shop_id", body: `{"action":"sync_chunk"}`},
		{name: "sync_day sem date", body: `{"action":"sync_day","shop_id":400123}`},
		{name: "backfill sem month", body: `{"action":"backfill","shop_id":400123}`},
		{name: "run-now sem schedule_id", body: `{"action":"run-now"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := newJobRequest(t, tt.body, adminClaims())

			RunJob(JobServices{})(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			resp := decodeJobResponse(t, rec)
			assert.False(t, resp.OK)
			require.NotNil(t, resp.Error)
			assert.Equal(t, apiErrors.ErrMissingRequiredData, resp.Error.Code)
		})
	}
}

func TestRunJob_FormatoDeDataInvalido(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "sync_day com data fora do formato", body: `{"action":"sync_day","shop_id":400123,"date":"15/01/2026"}`},
		{name: "backfill com mês fora do formato", body: `{"action":"backfill","shop_id":400123,"month":"jan-2026"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := newJobRequest(t, tt.body, adminClaims())

			RunJob(JobServices{})(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			resp := decodeJobResponse(t, rec)
			assert.False(t, resp.OK)
			require.NotNil(t, resp.Error)
			assert.Equal(t, apiErrors.ErrInvalidFormat, resp.Error.Code)
		})
	}
}
