package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/surya07-dot/Blood-Bank-Donation-Network/Models"
	"github.com/surya07-dot/Blood-Bank-Donation-Network/Routes"
	"github.com/surya07-dot/Blood-Bank-Donation-Network/Utils/Token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("API_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access underlying database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&Models.User{}, &Models.BloodStock{}, &Models.Donor{}, &Models.BloodRequest{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	Models.DB = db

	gin.SetMode(gin.TestMode)
	router := gin.New()
	Routes.ConfigRoutes(router)
	return router
}

func createUserToken(t *testing.T, name, email string) string {
	t.Helper()
	user := Models.User{Name: name, Email: email, Password: "secret123"}
	if _, err := user.SaveUser(); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	token, err := Token.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestManageRequestRequiresAdmin(t *testing.T) {
	router := setupTestRouter(t)

	// First account is the admin, the second is not
	createUserToken(t, "Admin", "admin@bloodlink.org")
	volunteerToken := createUserToken(t, "Volunteer", "volunteer@bloodlink.org")

	w := doJSON(router, "POST", "/api/protected/ManageRequest", volunteerToken, gin.H{
		"request_id": 1,
		"action":     "approve",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(router, "POST", "/api/protected/ManageRequest", "", gin.H{
		"request_id": 1,
		"action":     "approve",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestLifecycleOverHTTP(t *testing.T) {
	router := setupTestRouter(t)
	adminToken := createUserToken(t, "Admin", "admin@bloodlink.org")

	// Two O- donors stock up two units
	for i := 0; i < 2; i++ {
		w := doJSON(router, "POST", "/api/RegisterDonor", "", gin.H{
			"full_name":   "Asha Verma",
			"age":         29,
			"gender":      "Female",
			"blood_group": "O-",
			"phone":       fmt.Sprintf("+91123456789%d", i),
			"city":        "Pune",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(router, "POST", "/api/RequestBlood", "", gin.H{
		"patient_name":  "Ravi Kumar",
		"hospital_name": "City General Hospital",
		"blood_group":   "O-",
		"units":         2,
		"phone":         "+919876543210",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var submitted struct {
		Reference string `json:"reference"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitted))
	assert.NotEmpty(t, submitted.Reference)

	request, err := Models.FindRequestByReference(submitted.Reference)
	assert.NoError(t, err)

	w = doJSON(router, "POST", "/api/protected/ManageRequest", adminToken, gin.H{
		"request_id": request.ID,
		"action":     "approve",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "POST", "/api/CheckRequestStatus", "", gin.H{
		"reference": submitted.Reference,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var status struct {
		Status string `json:"status"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, Models.StatusApproved, status.Status)

	w = doJSON(router, "GET", "/api/FetchBloodStock", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var stockResponse struct {
		Stock []struct {
			BloodGroup string `json:"blood_group"`
			Units      uint   `json:"units"`
		} `json:"stock"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stockResponse))
	assert.Len(t, stockResponse.Stock, 1)
	assert.Equal(t, "O-", stockResponse.Stock[0].BloodGroup)
	assert.Equal(t, uint(0), stockResponse.Stock[0].Units)
}

func TestManageRequestInsufficientStock(t *testing.T) {
	router := setupTestRouter(t)
	adminToken := createUserToken(t, "Admin", "admin@bloodlink.org")

	request := Models.BloodRequest{
		PatientName:  "Ravi Kumar",
		HospitalName: "City General Hospital",
		BloodGroup:   "AB-",
		Units:        1,
		Phone:        "+919876543210",
	}
	assert.NoError(t, Models.SubmitRequest(&request))

	w := doJSON(router, "POST", "/api/protected/ManageRequest", adminToken, gin.H{
		"request_id": request.ID,
		"action":     "approve",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var pending Models.BloodRequest
	assert.NoError(t, Models.DB.First(&pending, request.ID).Error)
	assert.Equal(t, Models.StatusPending, pending.Status)
}

func TestManageRequestNotFound(t *testing.T) {
	router := setupTestRouter(t)
	adminToken := createUserToken(t, "Admin", "admin@bloodlink.org")

	w := doJSON(router, "POST", "/api/protected/ManageRequest", adminToken, gin.H{
		"request_id": 4242,
		"action":     "reject",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
