package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mstolarz/fakturo/auth"
	"github.com/mstolarz/fakturo/internal/models"
	"github.com/mstolarz/fakturo/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupClientHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Client{}, &models.Invoice{}, &models.HistoryEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestClientHandler(t *testing.T) (*ClientHandler, *gorm.DB, models.User) {
	t.Helper()
	db := setupClientHandlerDB(t)
	user := models.User{Email: "h@test", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	svc := services.NewClientService(db, services.NewHistoryService(db))
	return NewClientHandler(svc), db, user
}

func authedRequest(user models.User, method, target, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(auth.WithUserID(req.Context(), user.ID))
}

const validClientBody = `{"companyName":"Acme","nip":"5213017228","email":"biuro@acme.pl","city":"Warszawa"}`

func createClient(t *testing.T, h *ClientHandler, user models.User, body string) services.ClientResult {
	t.Helper()
	w := httptest.NewRecorder()
	h.Create(w, authedRequest(user, http.MethodPost, "/clients", body))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var res services.ClientResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return res
}

func TestClientCreateAndGet(t *testing.T) {
	h, _, user := newTestClientHandler(t)

	res := createClient(t, h, user, validClientBody)
	if !res.IsSuccess || res.ID == "" || res.CompanyName != "Acme" {
		t.Fatalf("unexpected result: %+v", res)
	}

	req := authedRequest(user, http.MethodGet, "/clients/"+res.ID, "")
	req.SetPathValue("id", res.ID)
	w := httptest.NewRecorder()
	h.Get(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var client models.Client
	if err := json.Unmarshal(w.Body.Bytes(), &client); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if client.CompanyName != "Acme" || client.NIP != "5213017228" {
		t.Fatalf("unexpected client: %+v", client)
	}
}

func TestClientCreateDuplicateNIPForbidden(t *testing.T) {
	h, _, user := newTestClientHandler(t)
	createClient(t, h, user, validClientBody)

	w := httptest.NewRecorder()
	h.Create(w, authedRequest(user, http.MethodPost, "/clients", validClientBody))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Client is already exist!") {
		t.Fatalf("expected contract message, got %s", w.Body.String())
	}
}

func TestClientCreateInvalidDataForbidden(t *testing.T) {
	h, _, user := newTestClientHandler(t)

	w := httptest.NewRecorder()
	h.Create(w, authedRequest(user, http.MethodPost, "/clients", `{"companyName":"","nip":"5213017228"}`))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Invalid data!") {
		t.Fatalf("expected contract message, got %s", w.Body.String())
	}
}

func TestClientGetOtherTenantNotFound(t *testing.T) {
	h, db, user := newTestClientHandler(t)
	res := createClient(t, h, user, validClientBody)

	stranger := models.User{Email: "s@test", Password: "x"}
	if err := db.Create(&stranger).Error; err != nil {
		t.Fatalf("seed stranger: %v", err)
	}

	req := authedRequest(stranger, http.MethodGet, "/clients/"+res.ID, "")
	req.SetPathValue("id", res.ID)
	w := httptest.NewRecorder()
	h.Get(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestClientPatchSoftFailure(t *testing.T) {
	h, _, user := newTestClientHandler(t)
	res := createClient(t, h, user, validClientBody)

	req := authedRequest(user, http.MethodPatch, "/clients/"+res.ID, `{"companyName":""}`)
	req.SetPathValue("id", res.ID)
	w := httptest.NewRecorder()
	h.Patch(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("soft failure should be 200, got %d body=%s", w.Code, w.Body.String())
	}
	var out services.ClientResult
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.IsSuccess {
		t.Fatalf("expected isSuccess=false, got %+v", out)
	}
}

func TestClientDeleteBlockedByInvoice(t *testing.T) {
	h, db, user := newTestClientHandler(t)
	res := createClient(t, h, user, validClientBody)

	inv := models.Invoice{UserID: user.ID, ClientID: res.ID, Status: models.InvoiceStatusDraft}
	if err := db.Create(&inv).Error; err != nil {
		t.Fatalf("seed invoice: %v", err)
	}

	req := authedRequest(user, http.MethodDelete, "/clients/"+res.ID, "")
	req.SetPathValue("id", res.ID)
	w := httptest.NewRecorder()
	h.Delete(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Client remove is forbidden before remove client invoices!") {
		t.Fatalf("expected contract message, got %s", w.Body.String())
	}
}

func TestClientDelete(t *testing.T) {
	h, _, user := newTestClientHandler(t)
	res := createClient(t, h, user, validClientBody)

	req := authedRequest(user, http.MethodDelete, "/clients/"+res.ID, "")
	req.SetPathValue("id", res.ID)
	w := httptest.NewRecorder()
	h.Delete(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	getReq := authedRequest(user, http.MethodGet, "/clients/"+res.ID, "")
	getReq.SetPathValue("id", res.ID)
	getW := httptest.NewRecorder()
	h.Get(getW, getReq)
	if getW.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", getW.Code)
	}
}
