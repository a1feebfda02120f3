package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hungrypaws/hungry-paws-api/internal/audit"
	"github.com/hungrypaws/hungry-paws-api/internal/httperr"
	"github.com/hungrypaws/hungry-paws-api/internal/httpresp"
	"github.com/hungrypaws/hungry-paws-api/internal/media"
	"github.com/hungrypaws/hungry-paws-api/internal/middleware"
	"github.com/hungrypaws/hungry-paws-api/internal/models"
)

type PetHandler struct {
	db     *gorm.DB
	audit  audit.Recorder
	photos media.Uploader
}

func NewPetHandler(db *gorm.DB, recorder audit.Recorder, photos media.Uploader) *PetHandler {
	return &PetHandler{
		db:     db,
		audit:  recorder,
		photos: photos,
	}
}

// --------- Requests ---------

type CreatePetRequest struct {
	Name   string `json:"name" binding:"required"`
	Breed  string `json:"breed" binding:"required"`
	Age    *int   `json:"age" binding:"required,min=0"`
	Gender string `json:"gender" binding:"required,oneof=male female"`
}

type UpdatePetRequest struct {
	Name   *string `json:"name,omitempty"`
	Breed  *string `json:"breed,omitempty"`
	Age    *int    `json:"age,omitempty"`
	Gender *string `json:"gender,omitempty"`
}

// --------- Handlers ---------

func (h *PetHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var pets []models.Pet
	if err := h.db.
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&pets).Error; err != nil {

		httperr.Internal(c, "failed_to_list_pets", "Server error.")
		return
	}

	httpresp.OK(c, gin.H{"pets": pets})
}

func (h *PetHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "All fields are required.")
		return
	}

	pet := models.Pet{
		UserID: ownerID,
		Name:   req.Name,
		Breed:  req.Breed,
		Age:    *req.Age,
		Gender: req.Gender,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pet", "Server error.")
		return
	}

	httpresp.Created(c, gin.H{"pet": pet})
}

func (h *PetHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var req UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid pet data.")
		return
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Breed != nil {
		fields["breed"] = *req.Breed
	}
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}

	if len(fields) == 0 {
		httperr.BadRequest(c, "empty_update", "Nothing to update.")
		return
	}

	// single conditional UPDATE: a zero row count covers both "no such pet"
	// and "not yours"
	res := h.db.
		Model(&models.Pet{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(fields)

	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_pet", "Server error.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "pet_not_found", "Pet not found.")
		return
	}

	var pet models.Pet
	if err := h.db.Where("id = ? AND user_id = ?", id, ownerID).First(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_get_pet", "Server error.")
		return
	}

	httpresp.OK(c, gin.H{"pet": pet})
}

func (h *PetHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Pet{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_pet", "Server error.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "pet_not_found", "Pet not found.")
		return
	}

	httpresp.OK(c, gin.H{})
}

func (h *PetHandler) UploadPhoto(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	if h.photos == nil {
		httperr.BadRequest(c, "uploads_disabled", "Photo uploads are not configured.")
		return
	}

	var pet models.Pet
	if err := h.db.Where("id = ? AND user_id = ?", id, ownerID).First(&pet).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "pet_not_found", "Pet not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_pet", "Server error.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "A photo file is required.")
		return
	}
	if file.Size > media.MaxUploadBytes {
		httperr.BadRequest(c, "photo_too_large", "Photo is too large.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Server error.")
		return
	}
	defer src.Close()

	encoded, err := media.NormalizeImage(src)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "Only JPEG and PNG photos are supported.")
			return
		}
		httperr.Internal(c, "failed_to_process_photo", "Server error.")
		return
	}

	url, err := h.photos.UploadPetPhoto(c.Request.Context(), pet.ID, encoded)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Server error.")
		return
	}

	pet.PhotoURL = url
	if err := h.db.Save(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pet", "Server error.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "pet_photo_uploaded",
		Entity:   "pet",
		EntityID: &pet.ID,
	})

	httpresp.OK(c, gin.H{"pet": pet})
}
