package validator

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
)

func ParseError(err error) map[string]string {
	errors := make(map[string]string)
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			errors[fe.Field()] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		}
	} else if err != nil { // Non-validator errors
		errors["error"] = err.Error()
	}
	return errors
}

// FlattenError turns a binding error into a single human-readable message.
func FlattenError(err error) string {
	parsed := ParseError(err)
	parts := make([]string, 0, len(parsed))
	for _, msg := range parsed {
		parts = append(parts, msg)
	}
	return strings.Join(parts, ", ")
}

// Limits for image metadata. These mirror the document schema but are
// enforced here so both the upload and update paths share one check.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxCategoryLength    = 50
	MaxTags              = 10
	MaxTagLength         = 30
	MaxImageBytes        = 5 * 1024 * 1024 // 5MB
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// ValidateImageFile checks the uploaded file's declared content type and size.
func ValidateImageFile(header *multipart.FileHeader) error {
	contentType := header.Header.Get("Content-Type")
	if _, ok := allowedImageTypes[contentType]; !ok {
		return errors.New("Invalid file type. Only JPEG, PNG, GIF, and WebP are allowed.")
	}
	if header.Size > MaxImageBytes {
		return errors.New("File size too large. Maximum size is 5MB.")
	}
	return nil
}

// ValidateImageMeta checks caller-supplied metadata against the schema
// limits. tags is the raw comma-separated form value.
func ValidateImageMeta(title, description, tags, category string) error {
	var errs []string

	if len(title) > MaxTitleLength {
		errs = append(errs, fmt.Sprintf("Title must be less than %d characters", MaxTitleLength))
	}
	if len(description) > MaxDescriptionLength {
		errs = append(errs, fmt.Sprintf("Description must be less than %d characters", MaxDescriptionLength))
	}
	if tags != "" {
		tagList := SplitTags(tags)
		if len(tagList) > MaxTags {
			errs = append(errs, fmt.Sprintf("Maximum %d tags allowed", MaxTags))
		}
		for _, tag := range tagList {
			if len(tag) > MaxTagLength {
				errs = append(errs, fmt.Sprintf("Each tag must be less than %d characters", MaxTagLength))
				break
			}
		}
	}
	if len(category) > MaxCategoryLength {
		errs = append(errs, fmt.Sprintf("Category must be less than %d characters", MaxCategoryLength))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, ", "))
	}
	return nil
}

// SplitTags splits a comma-separated tag string, trimming whitespace and
// dropping empty entries ("a, b ,c" -> ["a" "b" "c"]).
func SplitTags(s string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
