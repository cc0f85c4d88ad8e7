package feed

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrPostNotFound = errors.New("post not found")

// burstDuration is how long the like burst affordance stays visible.
const burstDuration = 300 * time.Millisecond

// Repository owns the canonical post collection for one session. The feed and
// own-posts lists are projections over the same backing slice, never separate
// copies, so a like toggled through any of them is visible through all.
type Repository struct {
	mu      sync.Mutex
	posts   []*Post // newest first
	stories []Story
	bursts  map[string]*time.Timer

	now       func() time.Time
	afterFunc func(time.Duration, func()) *time.Timer
}

func NewRepository(posts []Post, stories []Story) *Repository {
	r := &Repository{
		stories:   stories,
		bursts:    map[string]*time.Timer{},
		now:       time.Now,
		afterFunc: time.AfterFunc,
	}
	for i := range posts {
		p := posts[i]
		r.posts = append(r.posts, &p)
	}
	return r
}

// CreatePost allocates a new post for author and prepends it to the feed,
// so newest-first holds by construction.
func (r *Repository) CreatePost(author User, imageURL, caption string) Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	post := &Post{
		ID:        uuid.NewString(),
		UserID:    author.ID,
		User:      author,
		ImageURL:  imageURL,
		Caption:   caption,
		Likes:     0,
		Comments:  []Comment{},
		Timestamp: r.now(),
		LikedByMe: false,
	}
	r.posts = append([]*Post{post}, r.posts...)
	return *post
}

// ToggleLike flips the viewer's like on the shared entity. Likes move by
// exactly one per call and never go below zero.
func (r *Repository) ToggleLike(postID string) (Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post := r.find(postID)
	if post == nil {
		return Post{}, ErrPostNotFound
	}

	if post.LikedByMe {
		post.LikedByMe = false
		if post.Likes > 0 {
			post.Likes--
		}
	} else {
		post.LikedByMe = true
		post.Likes++
	}

	r.scheduleBurstClear(postID)
	return *post, nil
}

// Get returns a copy of the post with the given id.
func (r *Repository) Get(postID string) (Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post := r.find(postID)
	if post == nil {
		return Post{}, ErrPostNotFound
	}
	return *post, nil
}

// Feed returns the global feed, newest first.
func (r *Repository) Feed() []Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *p)
	}
	return out
}

// OwnPosts returns the posts authored by userID, newest first.
func (r *Repository) OwnPosts(userID string) []Post {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Post
	for _, p := range r.posts {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out
}

func (r *Repository) Stories() []Story {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Story, len(r.stories))
	copy(out, r.stories)
	return out
}

// BurstActive reports whether the transient like affordance for postID is
// still showing.
func (r *Repository) BurstActive(postID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.bursts[postID]
	return ok
}

// scheduleBurstClear arms the auto-clear for the like burst. A repeated
// toggle restarts the window; the pending timer is stopped first so it cannot
// clear the fresh burst early. Callers hold r.mu.
func (r *Repository) scheduleBurstClear(postID string) {
	if timer, ok := r.bursts[postID]; ok {
		timer.Stop()
	}
	r.bursts[postID] = r.afterFunc(burstDuration, func() {
		r.mu.Lock()
		delete(r.bursts, postID)
		r.mu.Unlock()
	})
}

func (r *Repository) find(postID string) *Post {
	for _, p := range r.posts {
		if p.ID == postID {
			return p
		}
	}
	return nil
}
