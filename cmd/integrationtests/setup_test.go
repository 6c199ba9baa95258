package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"name-market/internal/chain"
	market "name-market/internal/marketService"
	model "name-market/internal/models"
	"name-market/internal/repository"
	"name-market/internal/server"

	"github.com/gin-gonic/gin"
)

const contractAccount = "market"

// TestEnv is a full application stack over in-memory collaborators, with a
// manual clock so tests can close auctions deterministically.
type TestEnv struct {
	Router    *gin.Engine
	Ledger    *chain.MemoryLedger
	Directory *chain.MemoryDirectory
	Clock     *chain.ManualClock
}

// SetupTestEnv initializes the router with in-memory collaborators for
// integration testing. Accounts in balances are registered in the directory;
// the market contract account is always present.
func SetupTestEnv(balances map[string]int64) *TestEnv {
	gin.SetMode(gin.TestMode)

	accounts := []string{contractAccount}
	for account := range balances {
		accounts = append(accounts, account)
	}

	repo := repository.NewMemoryRepo()
	ledger := chain.NewMemoryLedger(balances)
	directory := chain.NewMemoryDirectory(accounts...)
	resources := chain.NewMemoryResources()
	clock := chain.NewManualClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	env := chain.NewMemoryEnv(clock, repo, ledger, directory, resources)

	service := market.NewMarketService(repo, env, ledger, directory, resources, contractAccount)
	return &TestEnv{
		Router:    server.SetupRouter(service),
		Ledger:    ledger,
		Directory: directory,
		Clock:     clock,
	}
}

// ExecuteRequestAndParse executes an HTTP request on the stack and parses the
// response envelope.
func (e *TestEnv) ExecuteRequestAndParse(t *testing.T, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	e.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

func auth(actor, permission string) model.PermissionLevel {
	return model.PermissionLevel{Actor: actor, Permission: permission}
}
