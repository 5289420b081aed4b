// internal/app/features/collection/handler_test.go
package collection_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mzielinska/promyk/internal/app/features/collection"
	"github.com/mzielinska/promyk/internal/domain/models"
	"github.com/mzielinska/promyk/internal/testutil"
	"go.uber.org/zap"
)

func TestProjects_Lifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := collection.NewProjects(db, zap.NewNop())

	// Create: new records are active regardless of the payload.
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, testutil.JSONRequest(t, http.MethodPost, "/api/admin/projects", map[string]any{
		"title":       "Obóz letni",
		"description": "Tygodniowy obóz nad jeziorem",
		"isActive":    false,
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	var created models.Project
	testutil.DecodeJSON(t, rec, &created)
	if !created.IsActive {
		t.Error("new project must be active")
	}
	if created.ID.IsZero() {
		t.Fatal("expected assigned _id")
	}
	id := created.ID.Hex()

	// Update merges fields.
	rec = httptest.NewRecorder()
	req := testutil.JSONRequest(t, http.MethodPut, "/api/admin/projects/"+id, map[string]any{"title": "Obóz zimowy"})
	h.HandleUpdate(rec, testutil.WithChiURLParam(req, "id", id))
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}

	// Archive hides the record from the public listing only.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/admin/projects/"+id, nil)
	h.HandleArchive(rec, testutil.WithChiURLParam(req, "id", id))
	if rec.Code != http.StatusOK {
		t.Fatalf("archive status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.ServeActiveList(rec, httptest.NewRequest(http.MethodGet, "/api/public/projects", nil))
	var active []models.Project
	testutil.DecodeJSON(t, rec, &active)
	if len(active) != 0 {
		t.Errorf("archived project visible publicly: %v", active)
	}

	rec = httptest.NewRecorder()
	h.ServeList(rec, httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil))
	var all []models.Project
	testutil.DecodeJSON(t, rec, &all)
	if len(all) != 1 {
		t.Fatalf("admin listing lost the archived project: %v", all)
	}
	if all[0].Title != "Obóz zimowy" {
		t.Errorf("Title = %q, update not applied", all[0].Title)
	}
	if all[0].IsActive {
		t.Error("archived project should carry isActive=false")
	}
}

func TestHandleUpdate_InvalidID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := collection.NewEvents(db, zap.NewNop())

	rec := httptest.NewRecorder()
	req := testutil.JSONRequest(t, http.MethodPut, "/api/admin/events/nie-hex", map[string]any{"title": "x"})
	h.HandleUpdate(rec, testutil.WithChiURLParam(req, "id", "nie-hex"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Error != "Nieprawidłowy identyfikator" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestPartners_DuplicateNameRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := collection.NewPartners(db, zap.NewNop())

	rec := httptest.NewRecorder()
	h.HandleCreate(rec, testutil.JSONRequest(t, http.MethodPost, "/api/admin/partners", map[string]any{
		"name": "Fundacja Dobro",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("first create status = %d: %s", rec.Code, rec.Body.String())
	}

	// Same name with different casing collides on the folded key.
	rec = httptest.NewRecorder()
	h.HandleCreate(rec, testutil.JSONRequest(t, http.MethodPost, "/api/admin/partners", map[string]any{
		"name": "FUNDACJA DOBRO",
	}))
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate create status = %d, want 409: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Message != "Partner o tej nazwie już istnieje" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestPartners_RenameIntoTakenNameRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := collection.NewPartners(db, zap.NewNop())

	rec := httptest.NewRecorder()
	h.HandleCreate(rec, testutil.JSONRequest(t, http.MethodPost, "/api/admin/partners", map[string]any{
		"name": "Fundacja Dobro",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.HandleCreate(rec, testutil.JSONRequest(t, http.MethodPost, "/api/admin/partners", map[string]any{
		"name": "Inna Fundacja",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	var second models.Partner
	testutil.DecodeJSON(t, rec, &second)
	id := second.ID.Hex()

	// Renaming onto another partner's folded name is refused the same
	// way a duplicate create is.
	rec = httptest.NewRecorder()
	req := testutil.JSONRequest(t, http.MethodPut, "/api/admin/partners/"+id, map[string]any{"name": "fundacja dobro"})
	h.HandleUpdate(rec, testutil.WithChiURLParam(req, "id", id))
	if rec.Code != http.StatusConflict {
		t.Fatalf("rename onto taken name status = %d, want 409: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Message != "Partner o tej nazwie już istnieje" {
		t.Errorf("message = %q", resp.Message)
	}

	// A partner may keep (re-submit) its own name.
	rec = httptest.NewRecorder()
	req = testutil.JSONRequest(t, http.MethodPut, "/api/admin/partners/"+id, map[string]any{"name": "Inna Fundacja"})
	h.HandleUpdate(rec, testutil.WithChiURLParam(req, "id", id))
	if rec.Code != http.StatusOK {
		t.Errorf("re-submitting own name status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPartners_RenameRefoldsName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := collection.NewPartners(db, zap.NewNop())

	rec := httptest.NewRecorder()
	h.HandleCreate(rec, testutil.JSONRequest(t, http.MethodPost, "/api/admin/partners", map[string]any{
		"name": "Stara Nazwa",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	var created models.Partner
	testutil.DecodeJSON(t, rec, &created)
	id := created.ID.Hex()

	rec = httptest.NewRecorder()
	req := testutil.JSONRequest(t, http.MethodPut, "/api/admin/partners/"+id, map[string]any{"name": "Nowa Nazwa"})
	h.HandleUpdate(rec, testutil.WithChiURLParam(req, "id", id))
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}

	// A create under the old name is allowed again; the new name is taken.
	rec = httptest.NewRecorder()
	h.HandleCreate(rec, testutil.JSONRequest(t, http.MethodPost, "/api/admin/partners", map[string]any{
		"name": "stara nazwa",
	}))
	if rec.Code != http.StatusOK {
		t.Errorf("old name should be free after rename, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.HandleCreate(rec, testutil.JSONRequest(t, http.MethodPost, "/api/admin/partners", map[string]any{
		"name": "nowa nazwa",
	}))
	if rec.Code != http.StatusConflict {
		t.Errorf("renamed-to name should collide, got %d: %s", rec.Code, rec.Body.String())
	}
}
