// internal/app/store/queries/publishpost/publishpost.go

// Package publishpost runs the multi-step flow that shares a recipe to the
// community feed: upload the image, create the post document, then award
// points to the author.
//
// The steps are deliberately not transactional. A failure stops the flow
// where it happened and earlier effects stay in place: an uploaded image
// with no post, or a live post whose author never got the points. Callers
// report the failure and let the user retry.
package publishpost

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/ecochef/ecochef/internal/domain/models"
)

/*───────────────────────────────────────────────────────────────────────────
  errors
───────────────────────────────────────────────────────────────────────────*/

var (
	ErrValidation   = errors.New("publishpost: invalid input")
	ErrUploadFailed = errors.New("publishpost: image upload failed")
	ErrCreateFailed = errors.New("publishpost: post create failed")
	ErrPointsFailed = errors.New("publishpost: points update failed")
)

/*───────────────────────────────────────────────────────────────────────────
  collaborators
───────────────────────────────────────────────────────────────────────────*/

// BlobUploader stores the image bytes under a key.
type BlobUploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
}

// PostCreator inserts the post document.
type PostCreator interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
}

// PointsAwarder resolves the author by email and adds the post bonus.
type PointsAwarder interface {
	AwardPostPoints(ctx context.Context, email string) (int, error)
}

/*───────────────────────────────────────────────────────────────────────────
  input / runner
───────────────────────────────────────────────────────────────────────────*/

// Input carries everything the flow needs. AuthorEmail is used for the
// points step; AuthorID and AuthorName go on the post document.
type Input struct {
	AuthorID    string
	AuthorName  string
	AuthorEmail string
	Message     string
	Image       []byte
	ImageName   string
	ContentType string
}

// Runner executes the publish flow against its three collaborators.
type Runner struct {
	Blobs  BlobUploader
	Posts  PostCreator
	Points PointsAwarder
	Log    *zap.Logger
}

// Run validates the input and executes upload, create, and points award in
// order. The returned post is non-nil whenever the document was created,
// even if the points step then failed; the caller can distinguish via
// errors.Is against ErrPointsFailed.
func (r *Runner) Run(ctx context.Context, in Input) (*models.Post, error) {
	authorID, err := validate(in)
	if err != nil {
		return nil, err
	}

	key := ObjectKey(in.ImageName)

	if err := r.Blobs.Upload(ctx, key, in.Image, in.ContentType); err != nil {
		r.Log.Error("post image upload failed",
			zap.String("key", key),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	post := &models.Post{
		UserID:     authorID,
		AuthorName: in.AuthorName,
		ImageID:    key,
		Message:    strings.TrimSpace(in.Message),
	}
	post, err = r.Posts.Create(ctx, post)
	if err != nil {
		// The image is already in the bucket with nothing pointing at it.
		r.Log.Error("post create failed, image orphaned",
			zap.String("key", key),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}

	if _, err := r.Points.AwardPostPoints(ctx, in.AuthorEmail); err != nil {
		// The post is live; only the bonus was lost.
		r.Log.Error("points award failed after post create",
			zap.String("post_id", post.ID.Hex()),
			zap.String("email", in.AuthorEmail),
			zap.Error(err))
		return post, fmt.Errorf("%w: %v", ErrPointsFailed, err)
	}

	return post, nil
}

func validate(in Input) (primitive.ObjectID, error) {
	if strings.TrimSpace(in.Message) == "" {
		return primitive.NilObjectID, fmt.Errorf("%w: message is required", ErrValidation)
	}
	if len(in.Image) == 0 {
		return primitive.NilObjectID, fmt.Errorf("%w: image is required", ErrValidation)
	}
	if in.AuthorEmail == "" || in.AuthorID == "" {
		return primitive.NilObjectID, fmt.Errorf("%w: author is required", ErrValidation)
	}
	authorID, err := primitive.ObjectIDFromHex(in.AuthorID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: bad author id", ErrValidation)
	}
	return authorID, nil
}

/*───────────────────────────────────────────────────────────────────────────
  object keys
───────────────────────────────────────────────────────────────────────────*/

// maxKeyLen matches the blob backend's file-ID limit.
const maxKeyLen = 36

// ObjectKey builds a storage key from an uploaded filename: a short random
// prefix, then the lowercased name with anything outside [a-z0-9._-]
// replaced by '_', truncated to 36 characters total.
func ObjectKey(filename string) string {
	name := strings.ToLower(strings.TrimSpace(filename))
	if name == "" {
		name = "upload"
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	key := uuid.NewString()[:8] + "-" + b.String()
	if len(key) > maxKeyLen {
		key = key[:maxKeyLen]
	}
	return key
}
