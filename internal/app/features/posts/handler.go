// internal/app/features/posts/handler.go

// Feature posts is the community feed: members share recipe photos and
// earn points for publishing.
package posts

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/ecochef/ecochef/internal/app/features/errors"
	poststore "github.com/ecochef/ecochef/internal/app/store/posts"
	"github.com/ecochef/ecochef/internal/app/store/queries/publishpost"
	"github.com/ecochef/ecochef/internal/app/system/auth"
	"github.com/ecochef/ecochef/internal/app/system/htmlsanitize"
	"github.com/ecochef/ecochef/internal/app/system/timeouts"
	"github.com/ecochef/ecochef/internal/app/system/viewdata"
)

const (
	maxUploadBytes = 10 << 20
	imageURLExpiry = 15 * time.Minute
)

// ImageURLer resolves a stored image key to a short-lived public URL.
type ImageURLer interface {
	URL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

type Handler struct {
	Posts   *poststore.Store
	Publish *publishpost.Runner
	Images  ImageURLer
	Log     *zap.Logger
}

func NewHandler(store *poststore.Store, publish *publishpost.Runner, images ImageURLer, logger *zap.Logger) *Handler {
	return &Handler{
		Posts:   store,
		Publish: publish,
		Images:  images,
		Log:     logger,
	}
}

type postVM struct {
	AuthorName string
	Message    string
	ImageURL   string
	CreatedAt  string
}

type listData struct {
	viewdata.BaseVM
	Posts []postVM
}

type formData struct {
	viewdata.BaseVM
	Message string
	Error   string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /posts – feed                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Posts.ListAll(ctx)
	if err != nil {
		h.Log.Error("posts: list", zap.Error(err))
		uierrors.RenderServerError(w, r, "Could not load the feed.", "/dashboard")
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Community posts", "/dashboard"),
		Posts:  make([]postVM, 0, len(all)),
	}
	for _, p := range all {
		vm := postVM{
			AuthorName: p.AuthorName,
			Message:    p.Message,
			CreatedAt:  p.CreatedAt.Format("02/01/2006"),
		}
		// Image resolution is best effort; a post renders without its
		// photo rather than failing the page.
		if url, err := h.Images.URL(ctx, p.ImageID, imageURLExpiry); err == nil {
			vm.ImageURL = url
		} else {
			h.Log.Warn("posts: image url", zap.String("image_id", p.ImageID), zap.Error(err))
		}
		data.Posts = append(data.Posts, vm)
	}

	templates.Render(w, r, "posts_list", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /posts/new – share form                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := formData{
		BaseVM:  viewdata.NewBaseVM(r, "Share a recipe", "/posts"),
		Message: r.URL.Query().Get("message"),
	}
	templates.Render(w, r, "posts_new", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /posts – publish                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	reRender := func(msg, message string) {
		data := formData{
			BaseVM:  viewdata.NewBaseVM(r, "Share a recipe", "/posts"),
			Message: message,
			Error:   msg,
		}
		templates.Render(w, r, "posts_new", data)
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		reRender("The upload was too large or malformed.", "")
		return
	}
	message := htmlsanitize.Strip(r.FormValue("message"))

	file, header, err := r.FormFile("image")
	if err != nil {
		reRender("A photo is required.", message)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		reRender("Could not read the uploaded photo.", message)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	_, err = h.Publish.Run(ctx, publishpost.Input{
		AuthorID:    u.ID,
		AuthorName:  u.Name,
		AuthorEmail: u.Email,
		Message:     message,
		Image:       image,
		ImageName:   header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		// One generic message regardless of which step failed.
		h.Log.Error("posts: publish failed", zap.String("user_id", u.ID), zap.Error(err))
		reRender("Could not publish your recipe. Please try again.", message)
		return
	}

	http.Redirect(w, r, "/posts", http.StatusSeeOther)
}
