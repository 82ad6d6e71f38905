package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tablebook/booking-app/models"
	"github.com/tablebook/booking-app/router"
	"github.com/tablebook/booking-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestBookingEndToEnd menguji flow utama:
// 0. Seed admin + customer, login -> token
// 1. Admin membuat meja
// 2. Customer membuat booking -> meja BOOKED
// 3. Customer melihat daftar booking-nya
// 4. Customer cancel -> meja kembali AVAILABLE
// 5. Cancel kedua ditolak
func TestBookingEndToEnd(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)

	adminToken := loginTest(t, r, "admin@example.com", "secret123")
	customerToken := loginTest(t, r, "jane@example.com", "secret123")

	tableID := createTableTest(t, r, adminToken)
	bookingID := createBookingTest(t, r, customerToken, tableID)

	assertTableStatus(t, r, customerToken, tableID, models.TableStatusBooked)
	listBookingsTest(t, r, customerToken, 1)

	cancelBookingTest(t, r, customerToken, bookingID, http.StatusOK)
	assertTableStatus(t, r, customerToken, tableID, models.TableStatusAvailable)

	// Cancel kedua pada booking yang sama harus ditolak
	cancelBookingTest(t, r, customerToken, bookingID, http.StatusBadRequest)
}

// TestTableRoutesRequireAdmin memastikan mutasi meja tertutup untuk customer
// dan seluruh route booking tertutup tanpa token.
func TestTableRoutesRequireAdmin(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)

	customerToken := loginTest(t, r, "jane@example.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/tables", customerToken, map[string]interface{}{
		"name":     "T1",
		"capacity": 4,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestGlobalRateLimiterFires memastikan limiter per-IP benar-benar terpasang
// di handler chain: di atas 50 request per detik dari satu IP harus 429.
func TestGlobalRateLimiterFires(t *testing.T) {
	db := setupTestDB(t)
	r := router.SetupRouter(db)

	limited := false
	var last int
	for i := 0; i < 60; i++ {
		w := doJSON(t, r, http.MethodGet, "/ping", "", nil)
		last = w.Code
		if w.Code == http.StatusTooManyRequests {
			limited = true
		}
	}

	assert.True(t, limited, "limiter never fired")
	assert.Equal(t, http.StatusTooManyRequests, last)
}

// setupTestDB -> migrasi model di SQLite in-memory + seed user
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Table{}, &models.Booking{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&models.User{
		Name:     "Test Admin",
		Email:    "admin@example.com",
		Password: string(hashed),
		Role:     "admin",
	})
	db.Create(&models.User{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: string(hashed),
		Role:     "customer",
	})

	return db
}

func doJSON(t *testing.T, r *gin.Engine, method, url, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data, _ := response["data"].(map[string]interface{})
	return data
}

func loginTest(t *testing.T, r *gin.Engine, email, password string) string {
	w := doJSON(t, r, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	token, _ := data["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func createTableTest(t *testing.T, r *gin.Engine, token string) uint {
	w := doJSON(t, r, http.MethodPost, "/tables", token, map[string]interface{}{
		"name":     "T1",
		"capacity": 4,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, models.TableStatusAvailable, data["status"])
	return uint(data["id"].(float64))
}

func createBookingTest(t *testing.T, r *gin.Engine, token string, tableID uint) uint {
	w := doJSON(t, r, http.MethodPost, "/bookings", token, map[string]interface{}{
		"table_id":     tableID,
		"booking_date": time.Now().AddDate(0, 0, 3).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, models.BookingStatusActive, data["status"])
	return uint(data["id"].(float64))
}

func listBookingsTest(t *testing.T, r *gin.Engine, token string, expected int) {
	w := doJSON(t, r, http.MethodGet, "/bookings", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	data, _ := response["data"].([]interface{})
	assert.Len(t, data, expected)
}

func cancelBookingTest(t *testing.T, r *gin.Engine, token string, bookingID uint, expectedCode int) {
	url := "/bookings/" + strconv.Itoa(int(bookingID)) + "/cancel"
	w := doJSON(t, r, http.MethodPatch, url, token, nil)
	assert.Equal(t, expectedCode, w.Code)

	if expectedCode == http.StatusOK {
		data := decodeData(t, w)
		assert.Equal(t, models.BookingStatusCanceled, data["status"])
		assert.Nil(t, data["table_id"])
	}
}

func assertTableStatus(t *testing.T, r *gin.Engine, token string, tableID uint, expected string) {
	url := "/tables/" + strconv.Itoa(int(tableID))
	w := doJSON(t, r, http.MethodGet, url, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, expected, data["status"])
}
