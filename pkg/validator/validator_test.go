package validator

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileHeader(contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: "photo.bin", Header: h, Size: size}
}

func TestValidateImageFile(t *testing.T) {
	assert.NoError(t, ValidateImageFile(fileHeader("image/png", 1024)))
	assert.NoError(t, ValidateImageFile(fileHeader("image/webp", MaxImageBytes)))

	err := ValidateImageFile(fileHeader("text/plain", 1024))
	assert.ErrorContains(t, err, "Invalid file type")

	err = ValidateImageFile(fileHeader("image/png", MaxImageBytes+1))
	assert.ErrorContains(t, err, "Maximum size is 5MB")
}

func TestValidateImageMeta(t *testing.T) {
	assert.NoError(t, ValidateImageMeta("Annual Sports Meet", "Group photo", "cricket, team", "events"))
	assert.NoError(t, ValidateImageMeta("", "", "", ""))

	err := ValidateImageMeta(strings.Repeat("a", MaxTitleLength+1), "", "", "")
	assert.ErrorContains(t, err, "Title must be less than 100 characters")

	err = ValidateImageMeta("", strings.Repeat("a", MaxDescriptionLength+1), "", "")
	assert.ErrorContains(t, err, "Description must be less than 500 characters")

	err = ValidateImageMeta("", "", strings.Repeat("t,", MaxTags+1), "")
	assert.ErrorContains(t, err, "Maximum 10 tags allowed")

	err = ValidateImageMeta("", "", strings.Repeat("x", MaxTagLength+1), "")
	assert.ErrorContains(t, err, "Each tag must be less than 30 characters")

	err = ValidateImageMeta("", "", "", strings.Repeat("a", MaxCategoryLength+1))
	assert.ErrorContains(t, err, "Category must be less than 50 characters")

	// Two violations are joined into one message.
	err = ValidateImageMeta(strings.Repeat("a", 101), strings.Repeat("b", 501), "", "")
	assert.ErrorContains(t, err, "Title must be less than")
	assert.ErrorContains(t, err, "Description must be less than")
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitTags("a, b ,c"))
	assert.Equal(t, []string{"cricket"}, SplitTags("cricket,"))
	assert.Equal(t, []string{"one two"}, SplitTags("  one two  "))
	assert.Empty(t, SplitTags(""))
	assert.Empty(t, SplitTags(" , ,, "))
}
