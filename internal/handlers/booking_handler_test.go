package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	infraRepo "github.com/hungrypaws/hungry-paws-api/internal/infra/repository"
	"github.com/hungrypaws/hungry-paws-api/internal/models"
	ucBooking "github.com/hungrypaws/hungry-paws-api/internal/usecase/booking"
)

func newBookingRouters(db *gorm.DB, ownerID uint) (owner *gin.Engine, admin *gin.Engine) {
	repo := infraRepo.NewBookingGormRepository(db)

	bookingHandler := NewBookingHandler(
		ucBooking.NewCreateBooking(repo, noopAudit{}),
		ucBooking.NewListOwnerBookings(repo),
		ucBooking.NewDeleteBooking(repo, noopAudit{}),
		ucBooking.NewGetOwnerBooking(repo),
		nil,
	)

	adminHandler := NewAdminBookingHandler(
		ucBooking.NewListAdminBookings(repo),
		ucBooking.NewDecideBooking(repo, noopAudit{}),
	)

	owner = gin.New()
	og := owner.Group("/api", asUser(ownerID, false))
	og.GET("/bookings", bookingHandler.List)
	og.POST("/bookings", bookingHandler.Create)
	og.DELETE("/bookings/:id", bookingHandler.Delete)

	admin = gin.New()
	ag := admin.Group("/api/admin", asUser(99, true))
	ag.GET("/bookings", adminHandler.List)
	ag.POST("/bookings/:id/approve", adminHandler.Approve)
	ag.POST("/bookings/:id/reject", adminHandler.Reject)

	return owner, admin
}

func seedOwnerWithPet(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustCreate(t, db, &models.User{
		FullName:     "Ana Cruz",
		Email:        "a@x.com",
		Contact:      "09171234567",
		PasswordHash: "x",
	})
	mustCreate(t, db, &models.Pet{UserID: 1, Name: "Rex", Breed: "Lab", Age: 3, Gender: "male"})
}

func groomingBody() gin.H {
	return gin.H{
		"type":            "grooming",
		"petIds":          []uint{1},
		"appointmentDate": "2026-09-10",
		"appointmentTime": "14:30",
		"antiRabiesDate":  "2026-08-01",
	}
}

func TestCreateGroomingBookingMissingAntiRabies(t *testing.T) {
	db := setupTestDB(t)
	seedOwnerWithPet(t, db)
	owner, _ := newBookingRouters(db, 1)

	body := groomingBody()
	delete(body, "antiRabiesDate")

	w, resp := doJSON(t, owner, http.MethodPost, "/api/bookings", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "anti_rabies_date_required", resp["error_code"])
}

func TestCreateHotelBookingMissingCheckout(t *testing.T) {
	db := setupTestDB(t)
	seedOwnerWithPet(t, db)
	owner, _ := newBookingRouters(db, 1)

	w, resp := doJSON(t, owner, http.MethodPost, "/api/bookings", gin.H{
		"type":            "hotel",
		"petIds":          []uint{1},
		"appointmentDate": "2026-09-10",
		"appointmentTime": "14:30",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "hotel_checkout_required", resp["error_code"])
}

func TestCreateBookingWithForeignPet(t *testing.T) {
	db := setupTestDB(t)
	seedOwnerWithPet(t, db)
	stranger, _ := newBookingRouters(db, 2)

	w, resp := doJSON(t, stranger, http.MethodPost, "/api/bookings", groomingBody())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "pet_not_found", resp["error_code"])
}

func TestBookingApprovalWorkflow(t *testing.T) {
	db := setupTestDB(t)
	seedOwnerWithPet(t, db)
	owner, admin := newBookingRouters(db, 1)

	// owner creates a grooming booking
	w, resp := doJSON(t, owner, http.MethodPost, "/api/bookings", groomingBody())
	require.Equal(t, http.StatusCreated, w.Code)

	created := resp["booking"].(map[string]any)
	assert.Equal(t, "pending", created["status"])
	assert.NotEmpty(t, created["reference"])

	// owner sees it with joined pets
	w, resp = doJSON(t, owner, http.MethodGet, "/api/bookings?type=grooming", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bookings := resp["bookings"].([]any)
	require.Len(t, bookings, 1)
	pets := bookings[0].(map[string]any)["pets"].([]any)
	require.Len(t, pets, 1)
	assert.Equal(t, "Rex", pets[0].(map[string]any)["name"])

	// hotel tab stays empty
	_, resp = doJSON(t, owner, http.MethodGet, "/api/bookings?type=hotel", nil)
	assert.Empty(t, resp["bookings"])

	// admin sees it under pending with owner info joined
	w, resp = doJSON(t, admin, http.MethodGet, "/api/admin/bookings?type=grooming&status=pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	adminBookings := resp["bookings"].([]any)
	require.Len(t, adminBookings, 1)

	entry := adminBookings[0].(map[string]any)
	assert.Equal(t, "Ana Cruz", entry["owner_name"])
	assert.Equal(t, "a@x.com", entry["owner_email"])
	assert.Equal(t, "Rex", entry["pets"].([]any)[0].(map[string]any)["name"])

	// approve; repeating the decision stays a success
	w, _ = doJSON(t, admin, http.MethodPost, "/api/admin/bookings/1/approve", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, admin, http.MethodPost, "/api/admin/bookings/1/approve", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Booking
	require.NoError(t, db.First(&stored, 1).Error)
	assert.Equal(t, "approved", stored.Status)
	assert.NotNil(t, stored.DecidedAt)

	// moved out of pending, visible under approved
	_, resp = doJSON(t, admin, http.MethodGet, "/api/admin/bookings?type=grooming&status=pending", nil)
	assert.Empty(t, resp["bookings"])

	_, resp = doJSON(t, admin, http.MethodGet, "/api/admin/bookings?type=grooming&status=approved", nil)
	assert.Len(t, resp["bookings"].([]any), 1)

	// admin can still flip the decision
	w, _ = doJSON(t, admin, http.MethodPost, "/api/admin/bookings/1/reject", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&stored, 1).Error)
	assert.Equal(t, "rejected", stored.Status)
}

func TestApproveUnknownBooking(t *testing.T) {
	db := setupTestDB(t)
	_, admin := newBookingRouters(db, 1)

	w, resp := doJSON(t, admin, http.MethodPost, "/api/admin/bookings/123/approve", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "booking_not_found", resp["error_code"])
}

func TestDeleteBookingScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	seedOwnerWithPet(t, db)
	owner, _ := newBookingRouters(db, 1)

	w, _ := doJSON(t, owner, http.MethodPost, "/api/bookings", groomingBody())
	require.Equal(t, http.StatusCreated, w.Code)

	stranger, _ := newBookingRouters(db, 2)
	w, resp := doJSON(t, stranger, http.MethodDelete, "/api/bookings/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "booking_not_found", resp["error_code"])

	w, resp = doJSON(t, owner, http.MethodDelete, "/api/bookings/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestAdminListRejectsUnknownFilters(t *testing.T) {
	db := setupTestDB(t)
	_, admin := newBookingRouters(db, 1)

	w, resp := doJSON(t, admin, http.MethodGet, "/api/admin/bookings?type=daycare&status=pending", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_type", resp["error_code"])

	w, resp = doJSON(t, admin, http.MethodGet, "/api/admin/bookings?type=grooming&status=done", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_status", resp["error_code"])
}
