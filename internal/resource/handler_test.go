package resource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/mmynk/shoppinglist/internal/models"
	"github.com/mmynk/shoppinglist/internal/storage/memory"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(NewHandler(memory.NewResourceStore(models.DefaultCollection())))
	t.Cleanup(server.Close)
	return server
}

func doRequest(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestListAndGet(t *testing.T) {
	server := setupTestServer(t)

	resp := doRequest(t, http.MethodGet, server.URL+"/lists", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: expected 200, got %d", resp.StatusCode)
	}
	var all models.Collection
	if err := json.NewDecoder(resp.Body).Decode(&all); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("lists: expected 2, got %d", len(all))
	}

	resp = doRequest(t, http.MethodGet, server.URL+"/lists/2", "")
	var one models.ShoppingList
	if err := json.NewDecoder(resp.Body).Decode(&one); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if one.Name != "Office Supplies" {
		t.Errorf("name: expected 'Office Supplies', got %q", one.Name)
	}

	resp = doRequest(t, http.MethodGet, server.URL+"/lists/404", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status: expected 404, got %d", resp.StatusCode)
	}
}

func TestCreate(t *testing.T) {
	server := setupTestServer(t)

	body := `{"id":"3","name":"Party","owner":"Anna","members":[{"id":"anna","name":"Anna"}],"archived":false}`
	resp := doRequest(t, http.MethodPost, server.URL+"/lists", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status: expected 201, got %d", resp.StatusCode)
	}
	var created models.ShoppingList
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if created.Items == nil {
		t.Error("items should default to an empty array")
	}

	resp = doRequest(t, http.MethodPost, server.URL+"/lists", body)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate: expected 409, got %d", resp.StatusCode)
	}

	resp = doRequest(t, http.MethodPost, server.URL+"/lists", `{"name":"no id"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing id: expected 400, got %d", resp.StatusCode)
	}

	resp = doRequest(t, http.MethodPost, server.URL+"/lists", `not json`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad body: expected 400, got %d", resp.StatusCode)
	}
}

func TestPatchMergesFields(t *testing.T) {
	server := setupTestServer(t)

	resp := doRequest(t, http.MethodPatch, server.URL+"/lists/1", `{"archived":true,"unknown":1}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: expected 200, got %d", resp.StatusCode)
	}
	var patched models.ShoppingList
	if err := json.NewDecoder(resp.Body).Decode(&patched); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !patched.Archived {
		t.Error("expected archived list")
	}
	if patched.Name != "Weekend Shopping" || len(patched.Items) != 3 || len(patched.Members) != 3 {
		t.Errorf("unpatched fields changed: %+v", patched)
	}

	resp = doRequest(t, http.MethodPatch, server.URL+"/lists/404", `{"name":"x"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status: expected 404, got %d", resp.StatusCode)
	}
}

func TestDelete(t *testing.T) {
	server := setupTestServer(t)

	resp := doRequest(t, http.MethodDelete, server.URL+"/lists/1", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: expected 200, got %d", resp.StatusCode)
	}
	resp = doRequest(t, http.MethodDelete, server.URL+"/lists/1", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", resp.StatusCode)
	}
}

func TestAfterWrite(t *testing.T) {
	var calls atomic.Int32
	handler := NewHandler(memory.NewResourceStore(models.DefaultCollection()), WithAfterWrite(func(context.Context) error {
		calls.Add(1)
		return nil
	}))
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	doRequest(t, http.MethodGet, server.URL+"/lists", "")
	if n := calls.Load(); n != 0 {
		t.Fatalf("reads must not trigger the hook, got %d calls", n)
	}

	doRequest(t, http.MethodPost, server.URL+"/lists", `{"id":"3","name":"Party","owner":"Anna"}`)
	doRequest(t, http.MethodPatch, server.URL+"/lists/3", `{"name":"BBQ"}`)
	doRequest(t, http.MethodDelete, server.URL+"/lists/3", "")
	if n := calls.Load(); n != 3 {
		t.Errorf("calls: expected 3, got %d", n)
	}

	doRequest(t, http.MethodDelete, server.URL+"/lists/3", "")
	if n := calls.Load(); n != 3 {
		t.Errorf("failed delete must not trigger the hook, got %d calls", n)
	}
}
