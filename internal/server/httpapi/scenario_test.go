package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/fintrack/internal/common"
	"github.com/dmitrijs2005/fintrack/internal/server/config"
	"github.com/dmitrijs2005/fintrack/internal/server/models"
	"github.com/dmitrijs2005/fintrack/internal/server/services"
	"github.com/stretchr/testify/require"
)

// In-memory repositories with the same contracts as the Postgres ones, so
// the full register → login → create → list → delete flow runs through the
// real services and the real route table.

type memUsersRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
}

func (r *memUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, common.ErrorEmailTaken
	}
	stored := *u
	stored.CreatedAt = time.Now()
	r.byEmail[u.Email] = &stored
	copied := stored
	return &copied, nil
}

func (r *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byEmail[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, common.ErrorNotFound
}

type memTransactionsRepo struct {
	mu   sync.Mutex
	rows map[string]*models.Transaction
}

func (r *memTransactionsRepo) Create(ctx context.Context, tr *models.Transaction) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *tr
	stored.CreatedAt = time.Now()
	r.rows[tr.ID] = &stored
	copied := stored
	return &copied, nil
}

func (r *memTransactionsRepo) SelectByOwner(ctx context.Context, userID string) ([]*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*models.Transaction
	for _, tr := range r.rows {
		if tr.UserID == userID {
			copied := *tr
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date.Time)
	})
	return result, nil
}

func (r *memTransactionsRepo) DeleteOwned(ctx context.Context, id string, userID string) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tr, ok := r.rows[id]
	if !ok || tr.UserID != userID {
		return nil, common.ErrorNotFound
	}
	delete(r.rows, id)
	return tr, nil
}

func TestFullFlow_RegisterLoginCreateListDelete(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{SecretKey: testSecret, TokenValidityDuration: 24 * time.Hour}
	authSvc := services.NewAuthService(&memUsersRepo{byEmail: map[string]*models.User{}}, cfg)
	ledgerSvc := services.NewLedgerService(&memTransactionsRepo{rows: map[string]*models.Transaction{}})
	h := newTestServer(t, authSvc, ledgerSvc).Handler()

	do := func(method, path, token, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	// register
	rec := do(http.MethodPost, "/auth/register", "", `{"name":"Ann","email":"ann@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var reg authResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&reg))
	require.NotEmpty(t, reg.Token)
	require.Equal(t, "ann@x.com", reg.User.Email)

	// login with the same credentials returns the same identity
	rec = do(http.MethodPost, "/auth/login", "", `{"email":"ann@x.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var login authResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))
	require.Equal(t, reg.User.ID, login.User.ID)

	// create a transaction
	rec = do(http.MethodPost, "/transactions", login.Token,
		`{"type":"income","amount":500,"category":"Salary","date":"2024-01-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created models.Transaction
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.Equal(t, reg.User.ID, created.UserID)

	// list returns exactly that one entry
	rec = do(http.MethodGet, "/transactions", login.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Transaction
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	require.Len(t, list, 1)
	require.Equal(t, created.ID, list[0].ID)

	// another user cannot delete it
	rec = do(http.MethodPost, "/auth/register", "", `{"name":"Bob","email":"bob@x.com","password":"secret2"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var bob authResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&bob))

	rec = do(http.MethodDelete, "/transactions/"+created.ID, bob.Token, "")
	require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())

	// the owner can
	rec = do(http.MethodDelete, "/transactions/"+created.ID, login.Token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// list is empty again
	rec = do(http.MethodGet, "/transactions", login.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}
