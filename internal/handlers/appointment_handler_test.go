package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Newksitesfss/barbearia-criatech/internal/models"
)

func TestCreateAppointment(t *testing.T) {
	freshDB()

	userID, token := registerUser(t, "dono@barbearia.com")
	barber := seedBarber(t, userID, "Carlos")
	haircut := seedHaircut(t, userID, "Corte Social", 4500)

	w := do(jsonRequest("POST", "/api/me/appointments", map[string]any{
		"barber_id":        barber.ID,
		"haircut_id":       haircut.ID,
		"appointment_date": "2026-09-01 10:30",
		"price_paid":       4500,
		"notes":            "Cliente novo",
	}, token))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var ap models.Appointment
	if err := testDB.First(&ap).Error; err != nil {
		t.Fatalf("appointment not persisted: %v", err)
	}
	if ap.PricePaid != 4500 {
		t.Errorf("expected price_paid 4500, got %d", ap.PricePaid)
	}
	if ap.Notes != "Cliente novo" {
		t.Errorf("expected notes, got %q", ap.Notes)
	}
}

func TestCreateAppointmentRejectsUnknownReferences(t *testing.T) {
	freshDB()

	userID, token := registerUser(t, "dono@barbearia.com")
	barber := seedBarber(t, userID, "Carlos")
	haircut := seedHaircut(t, userID, "Corte Social", 4500)

	// barbeiro inexistente
	w := do(jsonRequest("POST", "/api/me/appointments", map[string]any{
		"barber_id":        9999,
		"haircut_id":       haircut.ID,
		"appointment_date": "2026-09-01 10:30",
		"price_paid":       4500,
	}, token))
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown barber: expected 404, got %d", w.Code)
	}

	// corte de outro usuário também é "inexistente"
	strangerID, _ := registerUser(t, "outro@barbearia.com")
	foreign := seedHaircut(t, strangerID, "Alheio", 1000)

	w = do(jsonRequest("POST", "/api/me/appointments", map[string]any{
		"barber_id":        barber.ID,
		"haircut_id":       foreign.ID,
		"appointment_date": "2026-09-01 10:30",
		"price_paid":       4500,
	}, token))
	if w.Code != http.StatusNotFound {
		t.Errorf("foreign haircut: expected 404, got %d", w.Code)
	}

	var count int64
	testDB.Model(&models.Appointment{}).Count(&count)
	if count != 0 {
		t.Error("no appointment may be written on failed validation")
	}
}

func TestCreateAppointmentRejectsNegativePrice(t *testing.T) {
	freshDB()

	userID, token := registerUser(t, "dono@barbearia.com")
	barber := seedBarber(t, userID, "Carlos")
	haircut := seedHaircut(t, userID, "Corte Social", 4500)

	w := do(jsonRequest("POST", "/api/me/appointments", map[string]any{
		"barber_id":        barber.ID,
		"haircut_id":       haircut.ID,
		"appointment_date": "2026-09-01 10:30",
		"price_paid":       -1,
	}, token))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

// price_paid é snapshot histórico: não acompanha o preço atual do corte.
func TestPricePaidIsIndependentSnapshot(t *testing.T) {
	freshDB()

	userID, token := registerUser(t, "dono@barbearia.com")
	barber := seedBarber(t, userID, "Carlos")
	haircut := seedHaircut(t, userID, "Corte Social", 4500)

	ap := seedAppointment(t, userID, barber.ID, haircut.ID, utcDate(2026, time.September, 1, 10, 0), 4000)

	do(jsonRequest("PATCH", pathID("/api/me/haircuts/%d", haircut.ID), map[string]any{
		"name":  "Corte Social",
		"price": 9900,
	}, token))

	var reloaded models.Appointment
	testDB.First(&reloaded, ap.ID)
	if reloaded.PricePaid != 4000 {
		t.Errorf("price_paid must stay 4000, got %d", reloaded.PricePaid)
	}
}

func TestListAppointmentsEnrichedWithNames(t *testing.T) {
	freshDB()

	userID, token := registerUser(t, "dono@barbearia.com")
	barber := seedBarber(t, userID, "Carlos")
	haircut := seedHaircut(t, userID, "Corte Social", 4500)

	seedAppointment(t, userID, barber.ID, haircut.ID, utcDate(2026, time.September, 1, 10, 0), 4500)

	w := do(jsonRequest("GET", "/api/me/appointments", nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	rows := parseResponseArray(w)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0]["barber_name"] != "Carlos" {
		t.Errorf("expected barber_name Carlos, got %v", rows[0]["barber_name"])
	}
	if rows[0]["haircut_name"] != "Corte Social" {
		t.Errorf("expected haircut_name Corte Social, got %v", rows[0]["haircut_name"])
	}
}

func TestListAppointmentsFilters(t *testing.T) {
	freshDB()

	userID, token := registerUser(t, "dono@barbearia.com")

	carlos := seedBarber(t, userID, "Carlos")
	pedro := seedBarber(t, userID, "Pedro")
	social := seedHaircut(t, userID, "Corte Social", 4500)
	barba := seedHaircut(t, userID, "Barba", 2500)

	seedAppointment(t, userID, carlos.ID, social.ID, utcDate(2026, time.September, 1, 10, 0), 4500)
	seedAppointment(t, userID, carlos.ID, barba.ID, utcDate(2026, time.September, 2, 11, 0), 2500)
	seedAppointment(t, userID, pedro.ID, social.ID, utcDate(2026, time.September, 3, 12, 0), 4500)

	// por barbeiro
	w := do(jsonRequest("GET", pathID("/api/me/appointments?barber_id=%d", carlos.ID), nil, token))
	rows := parseResponseArray(w)
	if len(rows) != 2 {
		t.Errorf("barber filter: expected 2, got %d", len(rows))
	}
	for _, row := range rows {
		if uint(row["barber_id"].(float64)) != carlos.ID {
			t.Errorf("barber filter leaked row %v", row)
		}
	}

	// por corte
	w = do(jsonRequest("GET", pathID("/api/me/appointments?haircut_id=%d", social.ID), nil, token))
	if got := len(parseResponseArray(w)); got != 2 {
		t.Errorf("haircut filter: expected 2, got %d", got)
	}

	// intervalo de datas, bordas inclusivas
	w = do(jsonRequest("GET",
		"/api/me/appointments?start_date=2026-09-01&end_date=2026-09-02", nil, token))
	if got := len(parseResponseArray(w)); got != 2 {
		t.Errorf("date range: expected 2, got %d", got)
	}

	// filtros combinados com AND
	w = do(jsonRequest("GET",
		pathID("/api/me/appointments?start_date=2026-09-01&end_date=2026-09-02&barber_id=%d", carlos.ID)+
			pathID("&haircut_id=%d", barba.ID),
		nil, token))
	rows = parseResponseArray(w)
	if len(rows) != 1 {
		t.Fatalf("combined filters: expected 1, got %d", len(rows))
	}
	if uint(rows[0]["haircut_id"].(float64)) != barba.ID {
		t.Errorf("combined filters returned wrong row: %v", rows[0])
	}
}

func TestListAppointmentsIsOwnershipScoped(t *testing.T) {
	freshDB()

	aliceID, aliceToken := registerUser(t, "alice@barbearia.com")
	bobID, _ := registerUser(t, "bob@barbearia.com")

	aliceBarber := seedBarber(t, aliceID, "Da Alice")
	aliceCut := seedHaircut(t, aliceID, "Corte", 4500)
	bobBarber := seedBarber(t, bobID, "Do Bob")
	bobCut := seedHaircut(t, bobID, "Corte", 4500)

	seedAppointment(t, aliceID, aliceBarber.ID, aliceCut.ID, utcDate(2026, time.September, 1, 10, 0), 4500)
	seedAppointment(t, bobID, bobBarber.ID, bobCut.ID, utcDate(2026, time.September, 1, 11, 0), 4500)

	w := do(jsonRequest("GET", "/api/me/appointments", nil, aliceToken))
	rows := parseResponseArray(w)
	if len(rows) != 1 {
		t.Fatalf("alice should see 1 appointment, got %d", len(rows))
	}
	if uint(rows[0]["barber_id"].(float64)) != aliceBarber.ID {
		t.Errorf("alice saw a foreign appointment: %v", rows[0])
	}
}

func TestUpdateAppointment(t *testing.T) {
	freshDB()

	userID, token := registerUser(t, "dono@barbearia.com")
	barber := seedBarber(t, userID, "Carlos")
	haircut := seedHaircut(t, userID, "Corte Social", 4500)
	other := seedHaircut(t, userID, "Barba", 2500)

	ap := seedAppointment(t, userID, barber.ID, haircut.ID, utcDate(2026, time.September, 1, 10, 0), 4500)

	w := do(jsonRequest("PATCH", pathID("/api/me/appointments/%d", ap.ID), map[string]any{
		"barber_id":        barber.ID,
		"haircut_id":       other.ID,
		"appointment_date": "2026-09-05 15:00",
		"price_paid":       2500,
		"notes":            "Trocou o serviço",
	}, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var reloaded models.Appointment
	testDB.First(&reloaded, ap.ID)
	if reloaded.HaircutID != other.ID || reloaded.PricePaid != 2500 {
		t.Errorf("expected updated appointment, got haircut=%d price=%d",
			reloaded.HaircutID, reloaded.PricePaid)
	}
}

func TestDeleteAppointment(t *testing.T) {
	freshDB()

	userID, token := registerUser(t, "dono@barbearia.com")
	barber := seedBarber(t, userID, "Carlos")
	haircut := seedHaircut(t, userID, "Corte Social", 4500)
	ap := seedAppointment(t, userID, barber.ID, haircut.ID, utcDate(2026, time.September, 1, 10, 0), 4500)

	w := do(jsonRequest("DELETE", pathID("/api/me/appointments/%d", ap.ID), nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var count int64
	testDB.Model(&models.Appointment{}).Count(&count)
	if count != 0 {
		t.Errorf("expected appointment removed, %d left", count)
	}
}
