// internal/app/features/sections/handler_test.go
package sections_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mzielinska/promyk/internal/app/features/sections"
	contentstore "github.com/mzielinska/promyk/internal/app/store/content"
	"github.com/mzielinska/promyk/internal/domain/models"
	"github.com/mzielinska/promyk/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHeroHandler(db *mongo.Database) *sections.Handler[models.HeroData, *models.HeroData] {
	return sections.NewHandler(contentstore.Hero(db), "heroData", zap.NewNop())
}

func TestServeGet_MissingSectionIsNull(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHeroHandler(db)

	rec := httptest.NewRecorder()
	h.ServeGet(rec, httptest.NewRequest(http.MethodGet, "/api/public/hero", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]json.RawMessage
	testutil.DecodeJSON(t, rec, &resp)
	raw, ok := resp["heroData"]
	if !ok {
		t.Fatal("response missing heroData key")
	}
	if string(raw) != "null" {
		t.Errorf("heroData = %s, want null", raw)
	}
}

func TestHandleUpsert_CreatesThenMerges(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHeroHandler(db)

	// First PUT creates the section.
	rec := httptest.NewRecorder()
	h.HandleUpsert(rec, testutil.JSONRequest(t, http.MethodPut, "/api/admin/hero", map[string]any{
		"mainTitle": "Razem możemy więcej",
		"subtitle":  "Stowarzyszenie Promyk",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}

	// Second PUT with a partial body merges; the subtitle survives.
	rec = httptest.NewRecorder()
	h.HandleUpsert(rec, testutil.JSONRequest(t, http.MethodPut, "/api/admin/hero", map[string]any{
		"mainTitle": "Nowy tytuł",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("merge status = %d: %s", rec.Code, rec.Body.String())
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	hero, found, err := contentstore.Hero(db).Get(ctx)
	if err != nil || !found {
		t.Fatalf("Get: found=%v err=%v", found, err)
	}
	if hero.MainTitle != "Nowy tytuł" {
		t.Errorf("MainTitle = %q", hero.MainTitle)
	}
	if hero.Subtitle != "Stowarzyszenie Promyk" {
		t.Errorf("Subtitle = %q, partial update dropped it", hero.Subtitle)
	}
}

func TestHandlePatchField(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHeroHandler(db)

	// No section yet: 404.
	rec := httptest.NewRecorder()
	h.HandlePatchField(rec, testutil.JSONRequest(t, http.MethodPatch, "/api/admin/hero/field", map[string]any{
		"field": "mainTitle", "value": "x",
	}))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("patch without section status = %d, want 404", rec.Code)
	}
	var errResp struct {
		Error string `json:"error"`
	}
	testutil.DecodeJSON(t, rec, &errResp)
	if errResp.Error != "Nie znaleziono danych" {
		t.Errorf("error = %q", errResp.Error)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	seed := models.HeroData{MainTitle: "Tytuł"}
	seed.Stats.Members = models.Stat{Value: "100", Label: "Członków"}
	if _, err := contentstore.Hero(db).Create(ctx, seed); err != nil {
		t.Fatalf("seed hero: %v", err)
	}

	// Nested dotted path updates one leaf and keeps siblings.
	rec = httptest.NewRecorder()
	h.HandlePatchField(rec, testutil.JSONRequest(t, http.MethodPatch, "/api/admin/hero/field", map[string]any{
		"field": "stats.members.value", "value": "120",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status = %d: %s", rec.Code, rec.Body.String())
	}

	hero, _, err := contentstore.Hero(db).Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if hero.Stats.Members.Value != "120" {
		t.Errorf("stats.members.value = %q", hero.Stats.Members.Value)
	}
	if hero.Stats.Members.Label != "Członków" {
		t.Errorf("sibling label lost: %q", hero.Stats.Members.Label)
	}
	if hero.MainTitle != "Tytuł" {
		t.Errorf("unrelated field changed: %q", hero.MainTitle)
	}
}

func TestHandlePatchField_MissingFieldName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newHeroHandler(db)

	rec := httptest.NewRecorder()
	h.HandlePatchField(rec, testutil.JSONRequest(t, http.MethodPatch, "/api/admin/hero/field", map[string]any{
		"value": "x",
	}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Error != "Pole jest wymagane" {
		t.Errorf("error = %q", resp.Error)
	}
}
