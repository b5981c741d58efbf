package image

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image is one uploaded image's metadata document. The binary lives in
// the remote storage provider; this record holds the provider
// identifiers plus caller-supplied metadata.
type Image struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	CloudinaryID string             `bson:"cloudinaryId" json:"cloudinaryId"`
	URL          string             `bson:"url" json:"url"`
	SecureURL    string             `bson:"secureUrl" json:"secureUrl"`
	PublicID     string             `bson:"publicId" json:"publicId"`
	Format       string             `bson:"format" json:"format"`
	Width        int                `bson:"width" json:"width"`
	Height       int                `bson:"height" json:"height"`
	Bytes        int64              `bson:"bytes" json:"bytes"`
	Tags         []string           `bson:"tags" json:"tags"`
	Category     string             `bson:"category" json:"category"`
	UploadedBy   string             `bson:"uploadedBy" json:"uploadedBy"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Defaults applied on upload when the caller omits a field.
const (
	DefaultTitle      = "Untitled"
	DefaultCategory   = "general"
	DefaultUploadedBy = "anonymous"
)

// ImageUpdate is the replacement metadata for a PUT. The binary and
// provider fields are never touched by an update.
type ImageUpdate struct {
	Title       string
	Description string
	Tags        []string
	Category    string
}

// ListQuery narrows and pages a listing. Category is an exact match;
// Search runs against the text index over title/description/tags.
type ListQuery struct {
	Page     int
	Limit    int
	Category string
	Search   string
}
