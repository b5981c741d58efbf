package image

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Hariharan358/rec-spo/internal/blob"
	"github.com/Hariharan358/rec-spo/pkg/responses"
	"github.com/Hariharan358/rec-spo/pkg/validator"
)

const (
	defaultPageSize = 10
	// Callers may not request arbitrarily large pages.
	maxPageSize = 100
)

// ImageController handles the image hosting API: uploads, metadata CRUD
// and paginated/filterable listings.
type ImageController struct {
	repo ImageRepository
	blob blob.Storage
}

func NewImageController(repo ImageRepository, blobStorage blob.Storage) *ImageController {
	return &ImageController{repo: repo, blob: blobStorage}
}

// ListImagesResponse is the listing envelope.
type ListImagesResponse struct {
	Images      []Image `json:"images"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
	Total       int64   `json:"total"`
}

// CategoryImagesResponse is the listing envelope for a category view.
type CategoryImagesResponse struct {
	ListImagesResponse
	Category string `json:"category"`
}

// SearchImagesResponse is the listing envelope for a search.
type SearchImagesResponse struct {
	ListImagesResponse
	Query string `json:"query"`
}

type UpdateImageRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        string `json:"tags"` // comma-separated
	Category    string `json:"category"`
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

// ListImages godoc
// @Summary List images
// @Description Paginated listing with optional exact-match category filter and full-text search over title/description/tags.
// @Tags Images
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(10)
// @Param category query string false "Exact-match category filter"
// @Param search query string false "Full-text search term"
// @Success 200 {object} ListImagesResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /images [get]
func (ic *ImageController) ListImages(c *gin.Context) {
	page, limit := parsePagination(c)

	images, total, err := ic.repo.List(c.Request.Context(), ListQuery{
		Page:     page,
		Limit:    limit,
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		responses.InternalServerError(c, "Error fetching images", err)
		return
	}

	c.JSON(http.StatusOK, ListImagesResponse{
		Images:      images,
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
		Total:       total,
	})
}

// GetImage godoc
// @Summary Fetch one image
// @Tags Images
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} Image
// @Failure 400 {object} responses.ErrorResponse "Invalid image ID"
// @Failure 404 {object} responses.ErrorResponse "Image not found"
// @Failure 500 {object} responses.ErrorResponse
// @Router /images/{id} [get]
func (ic *ImageController) GetImage(c *gin.Context) {
	img, err := ic.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrInvalidID) {
			responses.BadRequest(c, "Invalid image ID")
			return
		}
		responses.InternalServerError(c, "Error fetching image", err)
		return
	}
	if img == nil {
		responses.NotFound(c, "Image")
		return
	}
	c.JSON(http.StatusOK, img)
}

// UploadImage godoc
// @Summary Upload a new image
// @Description Streams the binary to the remote storage provider and persists a metadata record. Missing title/category/uploadedBy default to "Untitled"/"general"/"anonymous"; tags is a comma-separated string.
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file (JPEG/PNG/GIF/WebP, max 5MB)"
// @Param title formData string false "Title (max 100 chars)"
// @Param description formData string false "Description (max 500 chars)"
// @Param tags formData string false "Comma-separated tags (max 10, 30 chars each)"
// @Param category formData string false "Category"
// @Param uploadedBy formData string false "Uploader name"
// @Success 201 {object} Image
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /images [post]
func (ic *ImageController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		responses.BadRequest(c, "No image file provided")
		return
	}
	if err := validator.ValidateImageFile(fileHeader); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	tagsRaw := c.PostForm("tags")
	category := c.PostForm("category")
	uploadedBy := c.PostForm("uploadedBy")

	if err := validator.ValidateImageMeta(title, description, tagsRaw, category); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		responses.InternalServerError(c, "Error uploading image", err)
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	result, err := ic.blob.Upload(ctx, file, blob.UploadOptions{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
	})
	if err != nil {
		responses.InternalServerError(c, "Error uploading image", err)
		return
	}

	if title == "" {
		title = DefaultTitle
	}
	if category == "" {
		category = DefaultCategory
	}
	if uploadedBy == "" {
		uploadedBy = DefaultUploadedBy
	}

	img := &Image{
		Title:        title,
		Description:  description,
		CloudinaryID: result.PublicID,
		URL:          result.URL,
		SecureURL:    result.SecureURL,
		PublicID:     result.PublicID,
		Format:       result.Format,
		Width:        result.Width,
		Height:       result.Height,
		Bytes:        result.Bytes,
		Tags:         validator.SplitTags(tagsRaw),
		Category:     category,
		UploadedBy:   uploadedBy,
	}

	if err := ic.repo.Create(ctx, img); err != nil {
		// The binary is already stored remotely; remove it so a failed
		// metadata write doesn't leave an orphaned object behind.
		if destroyErr := ic.blob.Destroy(ctx, result.PublicID); destroyErr != nil {
			log.Printf("image: failed to clean up remote object %s after failed insert: %v", result.PublicID, destroyErr)
		}
		responses.InternalServerError(c, "Error uploading image", err)
		return
	}

	c.JSON(http.StatusCreated, img)
}

// UpdateImage godoc
// @Summary Update image metadata
// @Description Replaces title, description, tags and category. The stored binary is not touched.
// @Tags Images
// @Accept json
// @Produce json
// @Param id path string true "Image ID"
// @Param image body UpdateImageRequest true "Metadata"
// @Success 200 {object} Image
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse "Image not found"
// @Failure 500 {object} responses.ErrorResponse
// @Router /images/{id} [put]
func (ic *ImageController) UpdateImage(c *gin.Context) {
	var req UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid request payload")
		return
	}
	if err := validator.ValidateImageMeta(req.Title, req.Description, req.Tags, req.Category); err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	img, err := ic.repo.Update(c.Request.Context(), c.Param("id"), ImageUpdate{
		Title:       req.Title,
		Description: req.Description,
		Tags:        validator.SplitTags(req.Tags),
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidID) {
			responses.BadRequest(c, "Invalid image ID")
			return
		}
		responses.InternalServerError(c, "Error updating image", err)
		return
	}
	if img == nil {
		responses.NotFound(c, "Image")
		return
	}
	c.JSON(http.StatusOK, img)
}

// DeleteImage godoc
// @Summary Delete an image
// @Description Deletes the remote object and the metadata record. The existence check runs first so a missing id never triggers a remote deletion.
// @Tags Images
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} responses.MessageResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse "Image not found"
// @Failure 500 {object} responses.ErrorResponse
// @Router /images/{id} [delete]
func (ic *ImageController) DeleteImage(c *gin.Context) {
	ctx := c.Request.Context()

	img, err := ic.repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrInvalidID) {
			responses.BadRequest(c, "Invalid image ID")
			return
		}
		responses.InternalServerError(c, "Error deleting image", err)
		return
	}
	if img == nil {
		responses.NotFound(c, "Image")
		return
	}

	// A failed remote deletion is logged but does not stop the metadata
	// delete; the dangling object is accepted cleanup debt.
	if err := ic.blob.Destroy(ctx, img.PublicID); err != nil {
		log.Printf("image: failed to delete remote object %s: %v", img.PublicID, err)
	}

	if err := ic.repo.Delete(ctx, c.Param("id")); err != nil {
		responses.InternalServerError(c, "Error deleting image", err)
		return
	}
	responses.Message(c, http.StatusOK, "Image deleted successfully")
}

// ListImagesByCategory godoc
// @Summary List images in a category
// @Tags Images
// @Produce json
// @Param category path string true "Category"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(10)
// @Success 200 {object} CategoryImagesResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /images/categories/{category} [get]
func (ic *ImageController) ListImagesByCategory(c *gin.Context) {
	page, limit := parsePagination(c)
	category := c.Param("category")

	images, total, err := ic.repo.List(c.Request.Context(), ListQuery{
		Page:     page,
		Limit:    limit,
		Category: category,
	})
	if err != nil {
		responses.InternalServerError(c, "Error fetching images by category", err)
		return
	}

	c.JSON(http.StatusOK, CategoryImagesResponse{
		ListImagesResponse: ListImagesResponse{
			Images:      images,
			TotalPages:  totalPages(total, limit),
			CurrentPage: page,
			Total:       total,
		},
		Category: category,
	})
}

// SearchImages godoc
// @Summary Search images
// @Description Full-text search over title, description and tags, ranked by relevance.
// @Tags Images
// @Produce json
// @Param q query string true "Search query"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (max 100)" default(10)
// @Success 200 {object} SearchImagesResponse
// @Failure 400 {object} responses.ErrorResponse "Search query is required"
// @Failure 500 {object} responses.ErrorResponse
// @Router /images/search [get]
func (ic *ImageController) SearchImages(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		responses.BadRequest(c, "Search query is required")
		return
	}
	page, limit := parsePagination(c)

	images, total, err := ic.repo.List(c.Request.Context(), ListQuery{
		Page:   page,
		Limit:  limit,
		Search: q,
	})
	if err != nil {
		responses.InternalServerError(c, "Error searching images", err)
		return
	}

	c.JSON(http.StatusOK, SearchImagesResponse{
		ListImagesResponse: ListImagesResponse{
			Images:      images,
			TotalPages:  totalPages(total, limit),
			CurrentPage: page,
			Total:       total,
		},
		Query: q,
	})
}
