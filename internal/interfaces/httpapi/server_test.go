package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/infootball/internal/domain/competition"
	"github.com/riskibarqy/infootball/internal/domain/transfer"
	"github.com/riskibarqy/infootball/internal/infrastructure/repository/memory"
	competitionmock "github.com/riskibarqy/infootball/internal/mocks/domain/competition"
	fixturemock "github.com/riskibarqy/infootball/internal/mocks/domain/fixture"
	transfermock "github.com/riskibarqy/infootball/internal/mocks/domain/transfer"
	"github.com/riskibarqy/infootball/internal/usecase"
	"github.com/stretchr/testify/mock"
)

type testServer struct {
	router       http.Handler
	competitions *competitionmock.Provider
	fixtures     *fixturemock.Provider
	feed         *transfermock.FeedProvider
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	competitions := competitionmock.NewProvider(t)
	fixtures := fixturemock.NewProvider(t)
	feed := transfermock.NewFeedProvider(t)

	handler := NewHandler(
		usecase.NewCompetitionService(competitions, fixtures, nil),
		usecase.NewMatchService(fixtures),
		usecase.NewTransferService(
			memory.NewTransferRepository(memory.DefaultSeed()),
			feed,
			nil,
			usecase.TransferFeedConfig{TeamIDs: []int64{541}},
			nil,
		),
		nil,
	)
	return testServer{
		router:       NewRouter(handler, nil, true, nil),
		competitions: competitions,
		fixtures:     fixtures,
		feed:         feed,
	}
}

func (s testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		APIVersion string `json:"apiVersion"`
		Data       T      `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response body: %v body=%s", err, rec.Body.String())
	}
	if envelope.APIVersion != googleAPIVersion {
		t.Fatalf("unexpected apiVersion %q", envelope.APIVersion)
	}
	return envelope.Data
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rec := srv.do(t, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_CompetitionNotFound(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.competitions.On("FindCompetitions", mock.Anything, "999999").
		Return([]competition.Competition{}, nil).
		Once()

	rec := srv.do(t, http.MethodGet, "/api/v1/competitions/999999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRouter_SoftEmptyStandings(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.competitions.On("FetchStandings", mock.Anything, "39", "2023").
		Return(competition.EmptyStandings(), nil).
		Once()

	rec := srv.do(t, http.MethodGet, "/api/v1/competitions/39/standings?season=2023", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":{"standings":[]}`) {
		t.Fatalf("expected soft-empty standings, got %s", rec.Body.String())
	}
}

func TestRouter_UpstreamFailureIsBadGateway(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.competitions.On("FetchTopScorers", mock.Anything, "39", "2023").
		Return(nil, usecase.ErrUpstreamFailure).
		Once()

	rec := srv.do(t, http.MethodGet, "/api/v1/competitions/39/top-scorers?season=2023", "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestRouter_InvalidSeasonIsBadRequest(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rec := srv.do(t, http.MethodGet, "/api/v1/competitions/39/overview?season=20x3", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouter_MatchesByDateRequiresDate(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rec := srv.do(t, http.MethodGet, "/api/v1/matches", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRouter_LatestTransfers(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.feed.On("FetchTeamTransfers", mock.Anything, int64(541)).
		Return([]transfer.FeedItem{
			{ID: "1-2024-01-01", TransferDate: "2024-01-01", TransferType: "Loan"},
			{ID: "2-2024-06-01", TransferDate: "2024-06-01", TransferType: "Free"},
		}, nil).
		Once()

	rec := srv.do(t, http.MethodGet, "/api/v1/transfers/latest", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	items := decodeData[[]transfer.FeedItem](t, rec)
	if len(items) != 2 || items[0].ID != "2-2024-06-01" || items[0].Fee != transfer.FeeFree || items[1].Fee != transfer.DefaultLoanLabel {
		t.Fatalf("unexpected feed: %+v", items)
	}
}

func TestRouter_TransferCRUD(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/v1/transfers", `{
		"playerId": "5d1c7a8e-3f4b-4e2a-8c61-000000000184",
		"fromTeamId": "0b6f6a52-1d0e-4c1a-9a55-000000000157",
		"toTeamId": "0b6f6a52-1d0e-4c1a-9a55-000000000042",
		"transferDate": "2026-08-01",
		"transferFee": 75000000,
		"season": "2026"
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	created := decodeData[transferDTO](t, rec)
	if created.ID == "" || created.Player.Name != "Harry Kane" || created.ToTeam.Name != "Arsenal" || created.TransferDate != "2026-08-01" {
		t.Fatalf("unexpected created transfer: %+v", created)
	}

	rec = srv.do(t, http.MethodPut, "/api/v1/transfers/"+created.ID, `{"transferFee": 80000000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if updated := decodeData[transferDTO](t, rec); updated.TransferFee != 80000000 || updated.Season != "2026" {
		t.Fatalf("unexpected updated transfer: %+v", updated)
	}

	rec = srv.do(t, http.MethodGet, "/api/v1/transfers/top?limit=1", "")
	if top := decodeData[[]transferDTO](t, rec); len(top) != 1 || top[0].Player.Name != "Jude Bellingham" {
		t.Fatalf("unexpected top transfers: %+v", top)
	}

	rec = srv.do(t, http.MethodDelete, "/api/v1/transfers/"+created.ID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = srv.do(t, http.MethodGet, "/api/v1/transfers/"+created.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestRouter_CreateTransferRejectsBadPayloads(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	cases := map[string]string{
		"malformed json": `{"playerId":`,
		"unknown field":  `{"playerId":"5d1c7a8e-3f4b-4e2a-8c61-000000000184","extra":true}`,
		"same teams": `{"playerId":"5d1c7a8e-3f4b-4e2a-8c61-000000000184",
			"fromTeamId":"0b6f6a52-1d0e-4c1a-9a55-000000000042","toTeamId":"0b6f6a52-1d0e-4c1a-9a55-000000000042",
			"transferDate":"2026-08-01","season":"2026"}`,
		"unknown player": `{"playerId":"5d1c7a8e-3f4b-4e2a-8c61-000000000001",
			"fromTeamId":"0b6f6a52-1d0e-4c1a-9a55-000000000157","toTeamId":"0b6f6a52-1d0e-4c1a-9a55-000000000042",
			"transferDate":"2026-08-01","season":"2026"}`,
		"bad date": `{"playerId":"5d1c7a8e-3f4b-4e2a-8c61-000000000184",
			"fromTeamId":"0b6f6a52-1d0e-4c1a-9a55-000000000157","toTeamId":"0b6f6a52-1d0e-4c1a-9a55-000000000042",
			"transferDate":"01/08/2026","season":"2026"}`,
	}
	for name, body := range cases {
		rec := srv.do(t, http.MethodPost, "/api/v1/transfers", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d body=%s", name, rec.Code, rec.Body.String())
		}
	}
}

func TestRouter_ListTransfersPagination(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/v1/transfers?limit=2&offset=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if items := decodeData[[]transferDTO](t, rec); len(items) != 2 {
		t.Fatalf("expected 2 transfers, got %d", len(items))
	}

	for _, query := range []string{"limit=abc", "limit=-1", "limit=500", "offset=-3"} {
		rec := srv.do(t, http.MethodGet, "/api/v1/transfers?"+query, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", query, rec.Code)
		}
	}
}

func TestRouter_OpenAPIServedWhenEnabled(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	rec := srv.do(t, http.MethodGet, "/openapi.yaml", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "InFootball API") {
		t.Fatalf("expected openapi document, got %d", rec.Code)
	}
}
