package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-sales-api/infrastructure/repository/memory"
	"github.com/vfg2006/influencer-sales-api/internal/config"
	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/accepting"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/affiliate"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/sales"
	"github.com/vfg2006/influencer-sales-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-sales-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type fakeSyncJob struct {
	triggered int
}

func (f *fakeSyncJob) TriggerManualSync() { f.triggered++ }

func (f *fakeSyncJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": false}
}

// fakeCodeSender guarda o último código em vez de enviar o email
type fakeCodeSender struct {
	to   string
	code string
}

func (f *fakeCodeSender) SendVerificationCode(_ context.Context, to string, code string, _ time.Duration) error {
	f.to = to
	f.code = code
	return nil
}

type testAPI struct {
	t           *testing.T
	handler     http.Handler
	store       *memory.Store
	auth        authenticating.Authenticator
	sync        *fakeSyncJob
	mail        *fakeCodeSender
	masterToken string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	log.SetupTestLogger()

	cfg := &config.Config{
		SecretKey: "segredo-de-teste",
		Server:    config.Server{AllowedOrigins: []string{"http://painel.local"}},
	}

	store := memory.New()
	auth := authenticating.NewService(cfg)
	sync := &fakeSyncJob{}
	sender := &fakeCodeSender{}

	handler := NewHandler(cfg, Dependencies{
		Sales:         sales.NewService(store.Affiliates(), store.Sales(), nil, cfg),
		Affiliates:    affiliate.NewService(store.Affiliates(), nil),
		Authenticator: auth,
		Terms:         accepting.NewService(store.Acceptances(), store.Affiliates(), sender, accepting.Terms{Version: "parceria-v1", Hash: "abc123"}, 5*time.Minute),
		SummarySync:   sync,
	})

	masterToken, err := auth.GenerateToken(1, "master", domain.RoleMaster)
	require.NoError(t, err)

	return &testAPI{t: t, handler: handler, store: store, auth: auth, sync: sync, mail: sender, masterToken: masterToken}
}

func (a *testAPI) influencerToken(userID int64) string {
	a.t.Helper()

	token, err := a.auth.GenerateToken(userID, "influenciadora", domain.RoleInfluencer)
	require.NoError(a.t, err)

	return token
}

func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&payload).Encode(body))
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	return rec
}

func (a *testAPI) seedAffiliate(name, coupon string, rate float64, linkedUser *int64) *domain.Affiliate {
	a.t.Helper()

	created := &domain.Affiliate{Name: name, Instagram: "@" + name, Coupon: coupon, CommissionRate: rate, LinkedUserID: linkedUser}
	require.NoError(a.t, a.store.Affiliates().Create(context.Background(), created))

	return created
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func TestAPI_HealthcheckIsPublic(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/healthcheck", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]any](t, rec)["status"])
}

func TestAPI_Authorization(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
		wantCode   string
	}{
		{"sem token", http.MethodGet, "/v1/affiliates", "", http.StatusUnauthorized, apiErrors.ErrInvalidToken},
		{"token adulterado", http.MethodGet, "/v1/affiliates", "abc.def.ghi", http.StatusUnauthorized, apiErrors.ErrInvalidToken},
		{"influenciadora cadastrando venda", http.MethodPost, "/v1/sales", api.influencerToken(7), http.StatusForbidden, apiErrors.ErrInsufficientPrivilege},
		{"influenciadora na consulta geral", http.MethodGet, "/v1/consultation", api.influencerToken(7), http.StatusForbidden, apiErrors.ErrInsufficientPrivilege},
		{"rota inexistente", http.MethodGet, "/v1/nada", api.masterToken, http.StatusNotFound, apiErrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(tt.method, tt.path, tt.token, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decode[apiErrors.APIError](t, rec).Code)
		})
	}
}

func TestAPI_CorsPreflight(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/sales", nil)
	req.Header.Set("Origin", "http://painel.local")
	rec := httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://painel.local", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPI_SaleLifecycle(t *testing.T) {
	api := newTestAPI(t)
	api.seedAffiliate("ana", "ANA10", 10, nil)

	// Nomes históricos dos campos e valores numéricos no JSON
	rec := api.do(http.MethodPost, "/v1/sales", api.masterToken, map[string]any{
		"orderCode":     "ped-10",
		"cupom":         "ana10",
		"date":          "01/10/2025",
		"gross_value":   1000,
		"discountValue": "100,00",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[domain.Sale](t, rec)
	assert.Equal(t, "PED-10", created.OrderNumber)
	assert.Equal(t, "2025-10-01", created.Date)
	assert.Equal(t, 900.0, created.NetValue)
	assert.Equal(t, 90.0, created.Commission)

	rec = api.do(http.MethodPost, "/v1/sales", api.masterToken, map[string]any{
		"orderNumber": "PED-10",
		"cupom":       "ANA10",
		"date":        "2025-10-02",
		"grossValue":  50,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apiErrors.ErrSaleDuplicate, decode[apiErrors.APIError](t, rec).Code)

	rec = api.do(http.MethodPut, fmt.Sprintf("/v1/sales/%d", created.ID), api.masterToken, map[string]any{
		"orderNumber": "PED-10",
		"cupom":       "ANA10",
		"date":        "2025-10-02",
		"grossValue":  500,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 50.0, decode[domain.Sale](t, rec).Commission)

	rec = api.do(http.MethodPost, "/v1/sales/check-orders", api.masterToken, map[string]any{
		"orders": []any{"ped-10", "PED-99", 123},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	checked := decode[[]map[string]any](t, rec)
	require.Len(t, checked, 1)
	assert.Equal(t, "PED-10", checked[0]["order_code"])
	assert.Equal(t, "ANA10", checked[0]["cupom"])

	rec = api.do(http.MethodDelete, fmt.Sprintf("/v1/sales/%d", created.ID), api.masterToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Venda removida com sucesso.", decode[map[string]any](t, rec)["message"])

	rec = api.do(http.MethodDelete, fmt.Sprintf("/v1/sales/%d", created.ID), api.masterToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodDelete, "/v1/sales/abc", api.masterToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ID invalido.", decode[apiErrors.APIError](t, rec).Message)
}

func TestAPI_SaleValidationAndUnknownCoupon(t *testing.T) {
	api := newTestAPI(t)
	api.seedAffiliate("ana", "ANA10", 10, nil)

	rec := api.do(http.MethodPost, "/v1/sales", api.masterToken, map[string]any{
		"orderNumber": "PED-1",
		"cupom":       "ANA10",
		"date":        "31/02/2024",
		"grossValue":  10,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrSaleValidation, decode[apiErrors.APIError](t, rec).Code)

	rec = api.do(http.MethodPost, "/v1/sales", api.masterToken, map[string]any{
		"orderNumber": "PED-1",
		"cupom":       "SUMIDO",
		"date":        "01/10/2025",
		"grossValue":  10,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cupom nao encontrado.", decode[apiErrors.APIError](t, rec).Message)

	req := httptest.NewRequest(http.MethodPost, "/v1/sales", bytes.NewBufferString("{quebrado"))
	req.Header.Set("Authorization", "Bearer "+api.masterToken)
	bad := httptest.NewRecorder()
	api.handler.ServeHTTP(bad, req)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decode[apiErrors.APIError](t, bad).Code)
}

func TestAPI_ImportConflictCarriesAnalysis(t *testing.T) {
	api := newTestAPI(t)
	api.seedAffiliate("ana", "ANA10", 10, nil)

	text := "pedido;cupom;data;valor bruto;desconto\nPED-1;ANA10;01/10/2025;100;0\nPED-1;ANA10;02/10/2025;200;0"

	rec := api.do(http.MethodPost, "/v1/sales/import/preview", api.masterToken, map[string]any{"text": text})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	preview := decode[domain.ImportAnalysis](t, rec)
	assert.True(t, preview.HasErrors)
	assert.True(t, preview.HasHeader)
	assert.Equal(t, 2, preview.ErrorCount)

	rec = api.do(http.MethodPost, "/v1/sales/import/confirm", api.masterToken, map[string]any{"text": text})
	require.Equal(t, http.StatusConflict, rec.Code)

	var conflict struct {
		Code    string                `json:"code"`
		Details domain.ImportAnalysis `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conflict))
	assert.Equal(t, apiErrors.ErrImportHasConflicts, conflict.Code)
	require.Len(t, conflict.Details.Rows, 2)
	assert.NotEmpty(t, conflict.Details.Rows[0].Errors)
	assert.Equal(t, 0, api.store.SaleCount())

	rec = api.do(http.MethodPost, "/v1/sales/import/preview", api.masterToken, map[string]any{"text": "  \n "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_ImportConfirmInsertsOnce(t *testing.T) {
	api := newTestAPI(t)
	api.seedAffiliate("ana", "ANA10", 10, nil)

	body := map[string]any{"text": "PED-2;ANA10;05/10/2025;1000;100"}

	rec := api.do(http.MethodPost, "/v1/sales/import/confirm", api.masterToken, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	result := decode[domain.ImportResult](t, rec)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 900.0, result.Summary.TotalNet)
	assert.Equal(t, 90.0, result.Summary.TotalCommission)

	rec = api.do(http.MethodPost, "/v1/sales/import/confirm", api.masterToken, body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 1, api.store.SaleCount())
}

func TestAPI_AffiliateCreateValidation(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/v1/affiliates", api.masterToken, map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var missing struct {
		Message string              `json:"message"`
		Details map[string][]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &missing))
	assert.Equal(t, "Campos obrigatorios faltando.", missing.Message)
	assert.Equal(t, []string{"name", "instagram"}, missing.Details["campos"])

	// Formulário antigo com nomes em português
	rec = api.do(http.MethodPost, "/v1/affiliates", api.masterToken, map[string]any{
		"nome":              "Bia",
		"instagram":         "bia",
		"cupom":             "BIA5",
		"commissionPercent": "12,5",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[domain.Affiliate](t, rec)
	assert.Equal(t, "@bia", created.Instagram)
	assert.Equal(t, 12.5, created.CommissionRate)

	rec = api.do(http.MethodPost, "/v1/affiliates", api.masterToken, map[string]any{
		"name":      "Outra Bia",
		"instagram": "@bia",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Instagram ja cadastrado.", decode[apiErrors.APIError](t, rec).Message)
}

func TestAPI_InfluencerSeesOnlyOwnData(t *testing.T) {
	api := newTestAPI(t)
	userID := int64(7)
	own := api.seedAffiliate("ana", "ANA10", 10, &userID)
	other := api.seedAffiliate("bia", "BIA5", 5, nil)
	token := api.influencerToken(userID)

	rec := api.do(http.MethodGet, "/v1/affiliates", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decode[[]domain.Affiliate](t, rec)
	require.Len(t, listed, 1)
	assert.Equal(t, own.ID, listed[0].ID)

	rec = api.do(http.MethodGet, "/v1/affiliates", api.influencerToken(99), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]domain.Affiliate](t, rec))

	rec = api.do(http.MethodGet, fmt.Sprintf("/v1/affiliates/%d", other.ID), token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Acesso negado.", decode[apiErrors.APIError](t, rec).Message)

	rec = api.do(http.MethodGet, fmt.Sprintf("/v1/sales/summary/%d", other.ID), token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(http.MethodGet, fmt.Sprintf("/v1/sales/summary/%d", own.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, own.ID, decode[domain.AffiliateSalesSummary](t, rec).AffiliateID)

	rec = api.do(http.MethodGet, fmt.Sprintf("/v1/affiliates/%d/sales", own.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]domain.Sale](t, rec))

	rec = api.do(http.MethodGet, "/v1/affiliates/999", api.masterToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_InfluencerUpdateKeepsCommercialTerms(t *testing.T) {
	api := newTestAPI(t)
	userID := int64(7)
	own := api.seedAffiliate("ana", "ANA10", 10, &userID)

	rec := api.do(http.MethodPut, fmt.Sprintf("/v1/affiliates/%d", own.ID), api.influencerToken(userID), map[string]any{
		"name":           "Ana Souza",
		"instagram":      "@ana",
		"coupon":         "ANA50",
		"commissionRate": 50,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decode[domain.Affiliate](t, rec)
	assert.Equal(t, "Ana Souza", updated.Name)
	assert.Equal(t, "ANA10", updated.Coupon)
	assert.Equal(t, 10.0, updated.CommissionRate)
}

func TestAPI_DeleteAffiliate(t *testing.T) {
	api := newTestAPI(t)
	ana := api.seedAffiliate("ana", "ANA10", 10, nil)

	rec := api.do(http.MethodDelete, fmt.Sprintf("/v1/affiliates/%d", ana.ID), api.masterToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Influenciadora removida com sucesso.", decode[map[string]any](t, rec)["message"])

	rec = api.do(http.MethodDelete, fmt.Sprintf("/v1/affiliates/%d", ana.ID), api.masterToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_Consultation(t *testing.T) {
	api := newTestAPI(t)
	api.seedAffiliate("bia", "BIA5", 5, nil)
	api.seedAffiliate("ana", "ANA10", 10, nil)

	rec := api.do(http.MethodPost, "/v1/sales/import/confirm", api.masterToken, map[string]any{
		"text": "PED-1;ANA10;01/10/2025;100,10;0\nPED-2;ANA10;02/10/2025;200,20;0",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = api.do(http.MethodGet, "/v1/consultation", api.masterToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rows := decode[[]domain.ConsultationRow](t, rec)
	require.Len(t, rows, 2)
	assert.Equal(t, "ana", rows[0].Name)
	assert.Equal(t, 2, rows[0].SalesCount)
	assert.Equal(t, 300.3, rows[0].SalesTotalNet)
	assert.Equal(t, 0, rows[1].SalesCount)
}

func TestAPI_CronJobs(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/v1/cron/summaries/run", api.masterToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, api.sync.triggered)

	rec = api.do(http.MethodPost, "/v1/cron/meta/run", api.masterToken, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, api.sync.triggered)

	rec = api.do(http.MethodGet, "/v1/cron/status", api.masterToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode[map[string]any](t, rec), "summaries")
}

func TestAPI_TermsAcceptance(t *testing.T) {
	api := newTestAPI(t)
	userID := int64(42)
	created := &domain.Affiliate{Name: "ana", Instagram: "@ana", Email: "ana@exemplo.com", LinkedUserID: &userID}
	require.NoError(t, api.store.Affiliates().Create(context.Background(), created))
	token := api.influencerToken(userID)

	rec := api.do(http.MethodGet, "/v1/terms/status", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode[map[string]any](t, rec)["aceito"])

	rec = api.do(http.MethodPost, "/v1/terms/send-code", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "ana@exemplo.com", api.mail.to)
	require.Len(t, api.mail.code, 6)

	rec = api.do(http.MethodPost, "/v1/terms/validate-code", token, map[string]any{"codigo": "12"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrAcceptanceValidation, decode[map[string]any](t, rec)["code"])

	wrong := "000000"
	if api.mail.code == wrong {
		wrong = "111111"
	}
	rec = api.do(http.MethodPost, "/v1/terms/validate-code", token, map[string]any{"codigo": wrong})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrAcceptanceCode, decode[map[string]any](t, rec)["code"])

	rec = api.do(http.MethodPost, "/v1/terms/validate-code", token, map[string]any{"token": api.mail.code})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Aceite registrado com sucesso.", decode[map[string]any](t, rec)["message"])

	rec = api.do(http.MethodGet, "/v1/terms/status", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode[map[string]any](t, rec)
	assert.Equal(t, true, status["aceito"])
	assert.Equal(t, "parceria-v1", status["versaoAtual"])
	assert.NotNil(t, status["registro"])

	latest, err := api.store.Acceptances().LatestAcceptance(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "192.0.2.1", latest.IPAddress)

	rec = api.do(http.MethodPost, "/v1/terms/send-code", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode[map[string]any](t, rec)["jaAceito"])

	rec = api.do(http.MethodPost, "/v1/terms/send-code", api.masterToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(http.MethodGet, "/v1/terms/status", api.masterToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "master", decode[map[string]any](t, rec)["role"])
}
