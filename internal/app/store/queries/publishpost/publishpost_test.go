package publishpost

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/ecochef/ecochef/internal/domain/models"
)

/*───────────────────────────────────────────────────────────────────────────
  fakes
───────────────────────────────────────────────────────────────────────────*/

type fakeBlobs struct {
	err      error
	uploaded []string
}

func (f *fakeBlobs) Upload(_ context.Context, key string, _ []byte, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.uploaded = append(f.uploaded, key)
	return nil
}

type fakePosts struct {
	err     error
	created *models.Post
}

func (f *fakePosts) Create(_ context.Context, post *models.Post) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	post.ID = primitive.NewObjectID()
	f.created = post
	return post, nil
}

type fakePoints struct {
	err     error
	awarded []string
}

func (f *fakePoints) AwardPostPoints(_ context.Context, email string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.awarded = append(f.awarded, email)
	return 10, nil
}

func validInput() Input {
	return Input{
		AuthorID:    primitive.NewObjectID().Hex(),
		AuthorName:  "Ada Lovelace",
		AuthorEmail: "ada@example.com",
		Message:     "Lentil soup turned out great",
		Image:       []byte{0xff, 0xd8, 0xff},
		ImageName:   "soup.jpg",
		ContentType: "image/jpeg",
	}
}

func newRunner(b *fakeBlobs, p *fakePosts, pts *fakePoints) *Runner {
	return &Runner{Blobs: b, Posts: p, Points: pts, Log: zap.NewNop()}
}

/*───────────────────────────────────────────────────────────────────────────
  tests
───────────────────────────────────────────────────────────────────────────*/

func TestRun_Success(t *testing.T) {
	blobs, posts, points := &fakeBlobs{}, &fakePosts{}, &fakePoints{}
	r := newRunner(blobs, posts, points)

	post, err := r.Run(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if post == nil || post.ID.IsZero() {
		t.Fatal("expected created post with ID")
	}
	if len(blobs.uploaded) != 1 {
		t.Errorf("expected 1 upload, got %d", len(blobs.uploaded))
	}
	if post.ImageID != blobs.uploaded[0] {
		t.Errorf("post image %q does not match uploaded key %q", post.ImageID, blobs.uploaded[0])
	}
	if len(points.awarded) != 1 || points.awarded[0] != "ada@example.com" {
		t.Errorf("expected points award for ada@example.com, got %v", points.awarded)
	}
}

func TestRun_ValidationStopsBeforeUpload(t *testing.T) {
	blobs, posts, points := &fakeBlobs{}, &fakePosts{}, &fakePoints{}
	r := newRunner(blobs, posts, points)

	in := validInput()
	in.Message = "   "

	_, err := r.Run(context.Background(), in)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(blobs.uploaded) != 0 {
		t.Error("upload ran despite validation failure")
	}
}

func TestRun_UploadFailureCreatesNothing(t *testing.T) {
	blobs := &fakeBlobs{err: errors.New("bucket down")}
	posts, points := &fakePosts{}, &fakePoints{}
	r := newRunner(blobs, posts, points)

	_, err := r.Run(context.Background(), validInput())
	if !errors.Is(err, ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
	if posts.created != nil {
		t.Error("post document created despite upload failure")
	}
	if len(points.awarded) != 0 {
		t.Error("points awarded despite upload failure")
	}
}

func TestRun_CreateFailureLeavesUploadedImage(t *testing.T) {
	blobs := &fakeBlobs{}
	posts := &fakePosts{err: errors.New("insert timeout")}
	points := &fakePoints{}
	r := newRunner(blobs, posts, points)

	_, err := r.Run(context.Background(), validInput())
	if !errors.Is(err, ErrCreateFailed) {
		t.Fatalf("expected ErrCreateFailed, got %v", err)
	}
	// The blob is not rolled back.
	if len(blobs.uploaded) != 1 {
		t.Errorf("expected orphaned upload to remain, got %d uploads", len(blobs.uploaded))
	}
	if len(points.awarded) != 0 {
		t.Error("points awarded despite create failure")
	}
}

func TestRun_PointsFailureStillReturnsPost(t *testing.T) {
	blobs, posts := &fakeBlobs{}, &fakePosts{}
	points := &fakePoints{err: errors.New("profile missing")}
	r := newRunner(blobs, posts, points)

	post, err := r.Run(context.Background(), validInput())
	if !errors.Is(err, ErrPointsFailed) {
		t.Fatalf("expected ErrPointsFailed, got %v", err)
	}
	if post == nil {
		t.Fatal("expected the created post back even though points failed")
	}
	if posts.created == nil {
		t.Fatal("post document was not created")
	}
}

func TestObjectKey(t *testing.T) {
	keyRe := regexp.MustCompile(`^[a-z0-9._-]+$`)

	key := ObjectKey("My Photo!!.PNG")
	if !keyRe.MatchString(key) {
		t.Errorf("key %q contains characters outside [a-z0-9._-]", key)
	}
	if len(key) > 36 {
		t.Errorf("key %q longer than 36 chars", key)
	}

	long := ObjectKey("a-very-long-filename-that-keeps-going-and-going.jpeg")
	if len(long) != 36 {
		t.Errorf("expected long name truncated to 36, got %d", len(long))
	}

	if a, b := ObjectKey("soup.jpg"), ObjectKey("soup.jpg"); a == b {
		t.Error("expected distinct keys for repeated uploads of the same name")
	}
}
