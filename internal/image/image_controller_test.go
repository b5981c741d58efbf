package image

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hariharan358/rec-spo/internal/blob"
)

// fakeImageRepo is an in-memory ImageRepository that records the last
// ListQuery it received.
type fakeImageRepo struct {
	images    []Image
	lastQuery ListQuery
	createErr error
}

func (f *fakeImageRepo) List(_ context.Context, query ListQuery) ([]Image, int64, error) {
	f.lastQuery = query

	filtered := make([]Image, 0)
	for _, img := range f.images {
		if query.Category != "" && img.Category != query.Category {
			continue
		}
		if query.Search != "" && !strings.Contains(strings.ToLower(img.Title), strings.ToLower(query.Search)) {
			continue
		}
		filtered = append(filtered, img)
	}

	total := int64(len(filtered))
	start := (query.Page - 1) * query.Limit
	if start >= len(filtered) {
		return []Image{}, total, nil
	}
	end := start + query.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], total, nil
}

func (f *fakeImageRepo) GetByID(_ context.Context, id string) (*Image, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	for _, img := range f.images {
		if img.ID == oid {
			found := img
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeImageRepo) Create(_ context.Context, img *Image) error {
	if f.createErr != nil {
		return f.createErr
	}
	img.ID = primitive.NewObjectID()
	img.CreatedAt = time.Now().UTC()
	img.UpdatedAt = img.CreatedAt
	f.images = append(f.images, *img)
	return nil
}

func (f *fakeImageRepo) Update(_ context.Context, id string, update ImageUpdate) (*Image, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	for i, img := range f.images {
		if img.ID == oid {
			img.Title = update.Title
			img.Description = update.Description
			img.Tags = update.Tags
			img.Category = update.Category
			img.UpdatedAt = time.Now().UTC()
			f.images[i] = img
			return &img, nil
		}
	}
	return nil, nil
}

func (f *fakeImageRepo) Delete(_ context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	for i, img := range f.images {
		if img.ID == oid {
			f.images = append(f.images[:i], f.images[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeBlobStorage records uploads and destroys without touching any
// remote provider.
type fakeBlobStorage struct {
	uploads   int
	destroyed []string
	uploadErr error
}

func (f *fakeBlobStorage) Upload(_ context.Context, file io.Reader, opts blob.UploadOptions) (*blob.UploadResult, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	if _, err := io.Copy(io.Discard, file); err != nil {
		return nil, err
	}
	f.uploads++
	return &blob.UploadResult{
		PublicID:  fmt.Sprintf("sports-gallery/upload-%d", f.uploads),
		URL:       "http://cdn.example.com/upload.png",
		SecureURL: "https://cdn.example.com/upload.png",
		Format:    "png",
		Width:     800,
		Height:    600,
		Bytes:     opts.Size,
	}, nil
}

func (f *fakeBlobStorage) Destroy(_ context.Context, publicID string) error {
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

func newTestRouter(repo ImageRepository, blobStorage blob.Storage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	RegisterImageRoutes(api, repo, blobStorage)
	return r
}

func seedImages(n int, category string) []Image {
	images := make([]Image, 0, n)
	for i := 0; i < n; i++ {
		images = append(images, Image{
			ID:       primitive.NewObjectID(),
			Title:    fmt.Sprintf("Image %d", i),
			PublicID: fmt.Sprintf("sports-gallery/img-%d", i),
			Category: category,
			Tags:     []string{},
		})
	}
	return images
}

// multipartImage builds a multipart body with an image part whose
// Content-Type passes file validation (CreateFormFile would declare
// application/octet-stream and be rejected).
func multipartImage(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="photo.png"`)
	header.Set("Content-Type", "image/png")
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("not a real png, but nobody decodes it"))
	require.NoError(t, err)

	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func doRequest(r *gin.Engine, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestListImagesPagination(t *testing.T) {
	repo := &fakeImageRepo{images: seedImages(25, "general")}
	r := newTestRouter(repo, &fakeBlobStorage{})

	rec := doRequest(r, http.MethodGet, "/api/images?page=3&limit=10", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListImagesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Images, 5)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 3, resp.CurrentPage)
	assert.Equal(t, int64(25), resp.Total)
}

func TestListImagesPastLastPageReturnsEmptyArray(t *testing.T) {
	repo := &fakeImageRepo{images: seedImages(25, "general")}
	r := newTestRouter(repo, &fakeBlobStorage{})

	rec := doRequest(r, http.MethodGet, "/api/images?page=4&limit=10", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"images":[]`)
}

func TestListImagesCapsLimit(t *testing.T) {
	repo := &fakeImageRepo{}
	r := newTestRouter(repo, &fakeBlobStorage{})

	rec := doRequest(r, http.MethodGet, "/api/images?limit=1000", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 100, repo.lastQuery.Limit)

	rec = doRequest(r, http.MethodGet, "/api/images?page=0&limit=-5", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, repo.lastQuery.Page)
	assert.Equal(t, 10, repo.lastQuery.Limit)
}

func TestGetImage(t *testing.T) {
	images := seedImages(1, "general")
	repo := &fakeImageRepo{images: images}
	r := newTestRouter(repo, &fakeBlobStorage{})

	rec := doRequest(r, http.MethodGet, "/api/images/"+images[0].ID.Hex(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got Image
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, images[0].ID, got.ID)
	assert.Equal(t, "Image 0", got.Title)
}

func TestGetImageInvalidID(t *testing.T) {
	r := newTestRouter(&fakeImageRepo{}, &fakeBlobStorage{})

	rec := doRequest(r, http.MethodGet, "/api/images/not-an-object-id", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid image ID")
}

func TestGetImageNotFound(t *testing.T) {
	r := newTestRouter(&fakeImageRepo{}, &fakeBlobStorage{})

	rec := doRequest(r, http.MethodGet, "/api/images/"+primitive.NewObjectID().Hex(), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Image not found")
}

func TestUploadImage(t *testing.T) {
	repo := &fakeImageRepo{}
	blobStore := &fakeBlobStorage{}
	r := newTestRouter(repo, blobStore)

	body, contentType := multipartImage(t, map[string]string{
		"title":       "Annual Meet",
		"description": "Opening ceremony",
		"tags":        "a, b ,c",
		"category":    "events",
		"uploadedBy":  "admin",
	})
	rec := doRequest(r, http.MethodPost, "/api/images", body, contentType)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created Image
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "Annual Meet", created.Title)
	assert.Equal(t, []string{"a", "b", "c"}, created.Tags)
	assert.Equal(t, "events", created.Category)
	assert.Equal(t, "admin", created.UploadedBy)
	assert.Equal(t, "png", created.Format)
	assert.Equal(t, created.PublicID, created.CloudinaryID)
	assert.Equal(t, 1, blobStore.uploads)
	assert.Len(t, repo.images, 1)
}

func TestUploadImageAppliesDefaults(t *testing.T) {
	repo := &fakeImageRepo{}
	r := newTestRouter(repo, &fakeBlobStorage{})

	body, contentType := multipartImage(t, nil)
	rec := doRequest(r, http.MethodPost, "/api/images", body, contentType)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created Image
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, DefaultTitle, created.Title)
	assert.Equal(t, DefaultCategory, created.Category)
	assert.Equal(t, DefaultUploadedBy, created.UploadedBy)
	assert.Equal(t, []string{}, created.Tags)
}

func TestUploadImageWithoutFile(t *testing.T) {
	blobStore := &fakeBlobStorage{}
	r := newTestRouter(&fakeImageRepo{}, blobStore)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("title", "no file"))
	require.NoError(t, w.Close())

	rec := doRequest(r, http.MethodPost, "/api/images", body, w.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No image file provided")
	assert.Equal(t, 0, blobStore.uploads)
}

func TestUploadImageRejectsNonImageFile(t *testing.T) {
	blobStore := &fakeBlobStorage{}
	r := newTestRouter(&fakeImageRepo{}, blobStore)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="notes.txt"`)
	header.Set("Content-Type", "text/plain")
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rec := doRequest(r, http.MethodPost, "/api/images", body, w.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid file type")
	assert.Equal(t, 0, blobStore.uploads)
}

func TestUploadImageCleansUpRemoteObjectOnInsertFailure(t *testing.T) {
	repo := &fakeImageRepo{createErr: errors.New("insert failed")}
	blobStore := &fakeBlobStorage{}
	r := newTestRouter(repo, blobStore)

	body, contentType := multipartImage(t, nil)
	rec := doRequest(r, http.MethodPost, "/api/images", body, contentType)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// The stored binary must not be orphaned by the failed metadata write.
	require.Len(t, blobStore.destroyed, 1)
	assert.Equal(t, "sports-gallery/upload-1", blobStore.destroyed[0])
}

func TestUpdateImageMetadata(t *testing.T) {
	images := seedImages(1, "general")
	repo := &fakeImageRepo{images: images}
	r := newTestRouter(repo, &fakeBlobStorage{})

	payload := `{"title":"Renamed","description":"New text","tags":"x, y","category":"team"}`
	rec := doRequest(r, http.MethodPut, "/api/images/"+images[0].ID.Hex(), strings.NewReader(payload), "application/json")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated Image
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, []string{"x", "y"}, updated.Tags)
	assert.Equal(t, "team", updated.Category)
	assert.Equal(t, images[0].PublicID, updated.PublicID) // binary untouched
}

func TestUpdateImageNotFound(t *testing.T) {
	r := newTestRouter(&fakeImageRepo{}, &fakeBlobStorage{})

	rec := doRequest(r, http.MethodPut, "/api/images/"+primitive.NewObjectID().Hex(),
		strings.NewReader(`{"title":"x"}`), "application/json")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateImageRejectsOversizedMeta(t *testing.T) {
	images := seedImages(1, "general")
	repo := &fakeImageRepo{images: images}
	r := newTestRouter(repo, &fakeBlobStorage{})

	payload := fmt.Sprintf(`{"title":%q}`, strings.Repeat("a", 101))
	rec := doRequest(r, http.MethodPut, "/api/images/"+images[0].ID.Hex(), strings.NewReader(payload), "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Title must be less than")
}

func TestDeleteImage(t *testing.T) {
	images := seedImages(1, "general")
	repo := &fakeImageRepo{images: images}
	blobStore := &fakeBlobStorage{}
	r := newTestRouter(repo, blobStore)

	rec := doRequest(r, http.MethodDelete, "/api/images/"+images[0].ID.Hex(), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Image deleted successfully")
	assert.Equal(t, []string{images[0].PublicID}, blobStore.destroyed)
	assert.Empty(t, repo.images)
}

func TestDeleteMissingImageSkipsRemoteDelete(t *testing.T) {
	blobStore := &fakeBlobStorage{}
	r := newTestRouter(&fakeImageRepo{}, blobStore)

	rec := doRequest(r, http.MethodDelete, "/api/images/"+primitive.NewObjectID().Hex(), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, blobStore.destroyed, "a missing id must never trigger a remote deletion")
}

func TestListImagesByCategory(t *testing.T) {
	images := append(seedImages(3, "events"), seedImages(2, "team")...)
	repo := &fakeImageRepo{images: images}
	r := newTestRouter(repo, &fakeBlobStorage{})

	rec := doRequest(r, http.MethodGet, "/api/images/categories/events", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CategoryImagesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "events", resp.Category)
	assert.Len(t, resp.Images, 3)
	assert.Equal(t, int64(3), resp.Total)
}

func TestSearchImages(t *testing.T) {
	images := seedImages(5, "general")
	images[2].Title = "Cricket finals"
	repo := &fakeImageRepo{images: images}
	r := newTestRouter(repo, &fakeBlobStorage{})

	rec := doRequest(r, http.MethodGet, "/api/images/search?q=cricket", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchImagesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cricket", resp.Query)
	assert.Len(t, resp.Images, 1)
	assert.Equal(t, "Cricket finals", resp.Images[0].Title)
}

func TestSearchImagesRequiresQuery(t *testing.T) {
	r := newTestRouter(&fakeImageRepo{}, &fakeBlobStorage{})

	rec := doRequest(r, http.MethodGet, "/api/images/search", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Search query is required")
}
