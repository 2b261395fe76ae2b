package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sahityapandiri3/omnishop-search/internal/domain"
	"github.com/sahityapandiri3/omnishop-search/internal/domain/catalog"
	"github.com/sahityapandiri3/omnishop-search/internal/domain/search/query"
	"github.com/sahityapandiri3/omnishop-search/internal/lexicon"
	healthuc "github.com/sahityapandiri3/omnishop-search/internal/usecase/health"
	"github.com/sahityapandiri3/omnishop-search/internal/usecase/ranking"
	searchuc "github.com/sahityapandiri3/omnishop-search/internal/usecase/search"
)

// --- Mocks ---

type stubRepo struct {
	items []catalog.Item
	err   error
}

func (s *stubRepo) FetchCandidates(_ context.Context, _ catalog.Filters) ([]catalog.Candidate, error) {
	return nil, s.err
}

func (s *stubRepo) FetchByPredicate(_ context.Context, _ query.Predicate, _ catalog.Filters) ([]catalog.Item, error) {
	return s.items, s.err
}

func (s *stubRepo) FetchByIDs(_ context.Context, _ []int64) ([]catalog.Item, error) {
	return nil, s.err
}

type stubEmbedder struct{}

func (stubEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	return domain.EmbeddingResult{}, errors.New("unused in transport tests")
}

type stubHealth struct {
	err error
}

func (s *stubHealth) Ping(_ context.Context) error { return s.err }

func newTestServer(t *testing.T, repo *stubRepo, dbErr error) http.Handler {
	t.Helper()
	searchSvc := searchuc.New(
		repo, stubEmbedder{}, lexicon.Default(),
		ranking.New(ranking.DefaultWeights()),
		searchuc.DefaultConfig(), zap.NewNop(),
	)
	healthSvc := healthuc.New(&stubHealth{err: dbErr}, nil, nil)
	srv := NewServer(searchSvc, healthSvc, zap.NewNop())

	r := chirouter.NewRouter()
	srv.Routes(r)
	return r
}

func postSearch(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/v1/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// --- Tests ---

func TestSearchCatalog_Success(t *testing.T) {
	repo := &stubRepo{items: []catalog.Item{
		{ID: 1, Name: "Velvet Sofa", Price: 900, Available: true},
	}}
	h := newTestServer(t, repo, nil)

	rr := postSearch(t, h, `{"query": "sofa", "page": 1, "page_size": 10}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var resp searchResponseDTO
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Items) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Items[0].ID != 1 || resp.Items[0].Name != "Velvet Sofa" {
		t.Errorf("unexpected item: %+v", resp.Items[0])
	}
	if resp.Items[0].Score <= 0 {
		t.Errorf("score = %v, want > 0", resp.Items[0].Score)
	}
	if resp.Page != 1 || resp.PageSize != 10 {
		t.Errorf("page/pageSize = %d/%d, want 1/10", resp.Page, resp.PageSize)
	}
}

func TestSearchCatalog_InvalidBody(t *testing.T) {
	h := newTestServer(t, &stubRepo{}, nil)

	rr := postSearch(t, h, `{not json`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}

	var errResp errorResponseDTO
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if errResp.Code != codeBadRequest {
		t.Errorf("code = %s, want %s", errResp.Code, codeBadRequest)
	}
}

func TestSearchCatalog_ValidationError(t *testing.T) {
	h := newTestServer(t, &stubRepo{}, nil)

	rr := postSearch(t, h, `{"query": "sofa", "page": -1}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}

	var errResp errorResponseDTO
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if errResp.Code != codeValidationFailed {
		t.Errorf("code = %s, want %s", errResp.Code, codeValidationFailed)
	}
}

func TestSearchCatalog_Unavailable(t *testing.T) {
	repo := &stubRepo{err: errors.New("connection refused")}
	h := newTestServer(t, repo, nil)

	rr := postSearch(t, h, `{"query": "sofa"}`)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}

	var errResp errorResponseDTO
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if errResp.Code != codeSearchUnavailable {
		t.Errorf("code = %s, want %s", errResp.Code, codeSearchUnavailable)
	}
}

func TestHealthCheck_OK(t *testing.T) {
	h := newTestServer(t, &stubRepo{}, nil)

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp healthResponseDTO
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %s, want ok", resp.Status)
	}
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	h := newTestServer(t, &stubRepo{}, errors.New("down"))

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
}
