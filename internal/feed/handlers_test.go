package feed

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

type stubSessions struct {
	repo *Repository
	user User
}

func (s *stubSessions) ID(*fiber.Ctx) string { return "default" }

func (s *stubSessions) Repository(*fiber.Ctx) *Repository { return s.repo }

func (s *stubSessions) ActingUser(*fiber.Ctx) User { return s.user }

type stubNotifier struct {
	events []string
}

func (n *stubNotifier) Emit(_, event string, _ any) {
	n.events = append(n.events, event)
}

func newTestApp(repo *Repository, user User) (*fiber.App, *stubNotifier) {
	app := fiber.New()
	notifier := &stubNotifier{}
	RegisterRoutes(app.Group("/"), &stubSessions{repo: repo, user: user}, notifier)
	return app, notifier
}

func TestFeedHandler(t *testing.T) {
	repo := NewRepository(SeedPosts(time.Now()), SeedStories())
	app, _ := newTestApp(repo, testUser())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/feed", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("feed status: %v", err)
	}

	var posts []Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		t.Fatalf("decode feed: %v", err)
	}
	if len(posts) != 5 {
		t.Fatalf("expected seeded feed, got %d posts", len(posts))
	}
}

func TestStoriesHandler(t *testing.T) {
	repo := NewRepository(nil, SeedStories())
	app, _ := newTestApp(repo, testUser())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/stories", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("stories status: %v", err)
	}

	var stories []Story
	if err := json.NewDecoder(resp.Body).Decode(&stories); err != nil {
		t.Fatalf("decode stories: %v", err)
	}
	if len(stories) != 8 {
		t.Fatalf("expected 8 stories, got %d", len(stories))
	}
}

func TestProfileHandlers(t *testing.T) {
	repo := NewRepository(nil, nil)
	user := testUser()
	repo.CreatePost(user, "data:image/png;base64,AAAA", "minha foto")
	app, _ := newTestApp(repo, user)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profile", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("profile status: %v", err)
	}
	var got User
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("unexpected profile user")
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/profile/posts", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("own posts status: %v", err)
	}
	var posts []Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		t.Fatalf("decode own posts: %v", err)
	}
	if len(posts) != 1 || posts[0].Caption != "minha foto" {
		t.Fatalf("unexpected own posts")
	}
}

func TestLikeHandler(t *testing.T) {
	repo := NewRepository(nil, nil)
	post := repo.CreatePost(testUser(), "data:image/png;base64,AAAA", "")
	app, notifier := newTestApp(repo, testUser())

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/posts/"+post.ID+"/like", nil))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("like status: %v", err)
	}

	var body struct {
		Post        Post `json:"post"`
		BurstActive bool `json:"burst_active"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode like response: %v", err)
	}
	if body.Post.Likes != 1 || !body.Post.LikedByMe {
		t.Fatalf("unexpected like state: %d/%v", body.Post.Likes, body.Post.LikedByMe)
	}
	if !body.BurstActive {
		t.Fatalf("expected burst active right after toggle")
	}
	if len(notifier.events) != 1 || notifier.events[0] != "post.liked" {
		t.Fatalf("expected post.liked event, got %v", notifier.events)
	}
}

func TestLikeHandlerNotFound(t *testing.T) {
	app, _ := newTestApp(NewRepository(nil, nil), testUser())

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/posts/missing/like", nil))
	if err != nil {
		t.Fatalf("like request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
