package create

import (
	"context"
	"errors"
	"sync"

	"github.com/Gabrielcpmg93/sociarede/internal/caption"
	"github.com/Gabrielcpmg93/sociarede/internal/feed"
	"github.com/Gabrielcpmg93/sociarede/internal/imaging"
	"github.com/Gabrielcpmg93/sociarede/internal/view"
)

var (
	// ErrNoPendingImage rejects submit/caption attempts before an image is
	// selected.
	ErrNoPendingImage = errors.New("no pending image selected")
	// ErrCaptionInFlight rejects a caption request while another one is
	// outstanding for this workflow.
	ErrCaptionInFlight = errors.New("caption request already in flight")
)

// Generator is the captioning capability the workflow delegates to.
type Generator interface {
	Generate(ctx context.Context, image []byte, mimeType string) caption.Result
}

// Workflow orchestrates one post-creation session: image selection, optional
// AI captioning, and commit into the repository.
type Workflow struct {
	repo     *feed.Repository
	nav      *view.Controller
	captions Generator
	author   feed.User

	mu         sync.Mutex
	pending    *feed.ImagePayload
	caption    string
	inFlight   bool
	generation uint64
}

func NewWorkflow(author feed.User, repo *feed.Repository, nav *view.Controller, captions Generator) *Workflow {
	return &Workflow{
		repo:     repo,
		nav:      nav,
		captions: captions,
		author:   author,
	}
}

// SelectImage decodes the rendering surface's file input and stores it as the
// pending image. On decode failure the pending image is left untouched.
func (w *Workflow) SelectImage(input string) (feed.ImagePayload, error) {
	payload, err := imaging.Decode(input)
	if err != nil {
		return feed.ImagePayload{}, err
	}

	w.mu.Lock()
	w.pending = &payload
	w.mu.Unlock()
	return payload, nil
}

// SetCaption replaces the caption text, for manual edits.
func (w *Workflow) SetCaption(text string) {
	w.mu.Lock()
	w.caption = text
	w.mu.Unlock()
}

// RequestCaption asks the captioning service for text describing the pending
// image. Only one request may be outstanding per workflow. The network call
// runs outside the lock; if the workflow was reset while it was in flight the
// result is discarded rather than resurrecting the cleared session.
func (w *Workflow) RequestCaption(ctx context.Context) (caption.Result, error) {
	w.mu.Lock()
	if w.pending == nil {
		w.mu.Unlock()
		return caption.Result{}, ErrNoPendingImage
	}
	if w.inFlight {
		w.mu.Unlock()
		return caption.Result{}, ErrCaptionInFlight
	}
	w.inFlight = true
	gen := w.generation
	image := *w.pending
	w.mu.Unlock()

	result := w.captions.Generate(ctx, image.Data, image.MimeType)

	w.mu.Lock()
	w.inFlight = false
	if w.generation == gen {
		w.caption = result.Text
	}
	w.mu.Unlock()
	return result, nil
}

// Submit commits the pending image and caption as a new post, navigates back
// to the feed, and resets the workflow for its next use.
func (w *Workflow) Submit() (feed.Post, error) {
	w.mu.Lock()
	if w.pending == nil {
		w.mu.Unlock()
		return feed.Post{}, ErrNoPendingImage
	}
	image := *w.pending
	text := w.caption
	w.resetLocked()
	w.mu.Unlock()

	post := w.repo.CreatePost(w.author, imaging.DataURL(image), text)
	w.nav.Navigate(view.StateFeed)
	return post, nil
}

// Cancel abandons the creation session without creating a post.
func (w *Workflow) Cancel() {
	w.mu.Lock()
	w.resetLocked()
	w.mu.Unlock()

	w.nav.Navigate(view.StateFeed)
}

// Snapshot is the read-only projection of the workflow for rendering.
type Snapshot struct {
	HasImage   bool   `json:"has_image"`
	MimeType   string `json:"mime_type,omitempty"`
	Caption    string `json:"caption"`
	Generating bool   `json:"generating"`
}

func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snap := Snapshot{
		Caption:    w.caption,
		Generating: w.inFlight,
	}
	if w.pending != nil {
		snap.HasImage = true
		snap.MimeType = w.pending.MimeType
	}
	return snap
}

// resetLocked clears pending state and bumps the generation so a caption
// result still in flight is dropped on arrival. Callers hold w.mu.
func (w *Workflow) resetLocked() {
	w.pending = nil
	w.caption = ""
	w.generation++
}
