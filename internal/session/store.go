package session

import (
	"sync"
	"time"

	"github.com/Gabrielcpmg93/sociarede/internal/create"
	"github.com/Gabrielcpmg93/sociarede/internal/feed"
	"github.com/Gabrielcpmg93/sociarede/internal/view"

	"github.com/gofiber/fiber/v2"
)

// HeaderName carries the rendering surface's session identity. Absent header
// means the shared default session.
const HeaderName = "X-Session-ID"

const defaultSessionID = "default"

// Session is one viewer's application core: an explicit acting user plus the
// state components every intent routes through. Nothing here survives the
// process.
type Session struct {
	User     feed.User
	Repo     *feed.Repository
	Nav      *view.Controller
	Workflow *create.Workflow
}

// Notifier receives navigation change events for a session.
type Notifier interface {
	Emit(sessionID, event string, payload any)
}

// Store creates sessions on first touch and hands their components to the
// HTTP handlers.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session

	appTitle string
	captions create.Generator
	notify   Notifier
	now      func() time.Time
}

func NewStore(appTitle string, captions create.Generator, notify Notifier) *Store {
	return &Store{
		sessions: map[string]*Session{},
		appTitle: appTitle,
		captions: captions,
		notify:   notify,
		now:      time.Now,
	}
}

// ID extracts the session identity from the request.
func (s *Store) ID(c *fiber.Ctx) string {
	if id := c.Get(HeaderName); id != "" {
		return id
	}
	return defaultSessionID
}

// Get returns the session for the request, creating and seeding it on first
// use.
func (s *Store) Get(c *fiber.Ctx) *Session {
	id := s.ID(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		return sess
	}

	user := feed.DefaultUser()
	repo := feed.NewRepository(feed.SeedPosts(s.now()), feed.SeedStories())
	nav := view.NewController(s.appTitle, func(state view.State, title string) {
		s.notify.Emit(id, "view.changed", fiber.Map{"state": state, "title": title})
	})

	sess := &Session{
		User:     user,
		Repo:     repo,
		Nav:      nav,
		Workflow: create.NewWorkflow(user, repo, nav, s.captions),
	}
	s.sessions[id] = sess
	return sess
}

func (s *Store) Repository(c *fiber.Ctx) *feed.Repository {
	return s.Get(c).Repo
}

func (s *Store) ActingUser(c *fiber.Ctx) feed.User {
	return s.Get(c).User
}

func (s *Store) Controller(c *fiber.Ctx) *view.Controller {
	return s.Get(c).Nav
}

func (s *Store) Workflow(c *fiber.Ctx) *create.Workflow {
	return s.Get(c).Workflow
}
