package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Newksitesfss/barbearia-criatech/internal/models"
)

// Preço em centavos: 4500 entra e sai como 4500, nunca 45.00.
func TestHaircutPriceInCentsRoundTrip(t *testing.T) {
	freshDB()

	_, token := registerUser(t, "dono@barbearia.com")

	w := do(jsonRequest("POST", "/api/me/haircuts", map[string]any{
		"name":        "Corte Social",
		"price":       4500,
		"description": "Tesoura e máquina",
	}, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = do(jsonRequest("GET", "/api/me/haircuts", nil, token))
	haircuts := parseResponseArray(w)
	if len(haircuts) != 1 {
		t.Fatalf("expected 1 haircut, got %d", len(haircuts))
	}
	if haircuts[0]["price"] != float64(4500) {
		t.Errorf("expected price 4500 cents, got %v", haircuts[0]["price"])
	}
}

func TestCreateHaircutRejectsNegativePrice(t *testing.T) {
	freshDB()

	_, token := registerUser(t, "dono@barbearia.com")

	w := do(jsonRequest("POST", "/api/me/haircuts", map[string]any{
		"name":  "Corte Grátis?",
		"price": -100,
	}, token))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative price, got %d", w.Code)
	}

	var count int64
	testDB.Model(&models.Haircut{}).Count(&count)
	if count != 0 {
		t.Error("rejected haircut must not be persisted")
	}
}

func TestCreateHaircutAllowsZeroPrice(t *testing.T) {
	freshDB()

	_, token := registerUser(t, "dono@barbearia.com")

	w := do(jsonRequest("POST", "/api/me/haircuts", map[string]any{
		"name":  "Cortesia",
		"price": 0,
	}, token))
	if w.Code != http.StatusOK {
		t.Fatalf("price 0 is valid, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateHaircut(t *testing.T) {
	freshDB()

	userID, token := registerUser(t, "dono@barbearia.com")
	haircut := seedHaircut(t, userID, "Corte Social", 4500)

	w := do(jsonRequest("PATCH", pathID("/api/me/haircuts/%d", haircut.ID), map[string]any{
		"name":  "Corte Premium",
		"price": 6000,
	}, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var reloaded models.Haircut
	testDB.First(&reloaded, haircut.ID)
	if reloaded.Name != "Corte Premium" || reloaded.Price != 6000 {
		t.Errorf("expected updated haircut, got %q %d", reloaded.Name, reloaded.Price)
	}
}

func TestToggleHaircutActiveFiltersListing(t *testing.T) {
	freshDB()

	userID, token := registerUser(t, "dono@barbearia.com")
	haircut := seedHaircut(t, userID, "Corte Social", 4500)

	w := do(jsonRequest("PATCH", pathID("/api/me/haircuts/%d/active", haircut.ID),
		map[string]any{"active": 0}, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = do(jsonRequest("GET", "/api/me/haircuts?active=true", nil, token))
	if got := len(parseResponseArray(w)); got != 0 {
		t.Errorf("inactive haircut must not appear in active listing, got %d", got)
	}

	// desativar não apaga
	w = do(jsonRequest("GET", "/api/me/haircuts", nil, token))
	if got := len(parseResponseArray(w)); got != 1 {
		t.Errorf("inactive haircut still exists, got %d rows", got)
	}
}

func TestDeleteHaircutCascadesAppointments(t *testing.T) {
	freshDB()

	userID, token := registerUser(t, "dono@barbearia.com")

	barber := seedBarber(t, userID, "Carlos")
	haircut := seedHaircut(t, userID, "Corte Social", 4500)
	survivor := seedHaircut(t, userID, "Barba", 2500)

	seedAppointment(t, userID, barber.ID, haircut.ID, utcDate(2026, time.September, 1, 10, 0), 4500)
	seedAppointment(t, userID, barber.ID, survivor.ID, utcDate(2026, time.September, 1, 11, 0), 2500)

	w := do(jsonRequest("DELETE", pathID("/api/me/haircuts/%d", haircut.ID), nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	testDB.Model(&models.Appointment{}).Where("haircut_id = ?", haircut.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected cascade delete, %d appointments left", count)
	}

	testDB.Model(&models.Appointment{}).Count(&count)
	if count != 1 {
		t.Errorf("appointments of other haircuts must survive, got %d", count)
	}
}

func TestHaircutListOrderedNewestFirst(t *testing.T) {
	freshDB()

	userID, token := registerUser(t, "dono@barbearia.com")

	seedHaircut(t, userID, "Primeiro", 1000)
	seedHaircut(t, userID, "Segundo", 2000)
	seedHaircut(t, userID, "Terceiro", 3000)

	w := do(jsonRequest("GET", "/api/me/haircuts", nil, token))
	haircuts := parseResponseArray(w)
	if len(haircuts) != 3 {
		t.Fatalf("expected 3 haircuts, got %d", len(haircuts))
	}

	if haircuts[0]["name"] != "Terceiro" || haircuts[2]["name"] != "Primeiro" {
		t.Errorf("expected newest first, got %v, %v, %v",
			haircuts[0]["name"], haircuts[1]["name"], haircuts[2]["name"])
	}
}
