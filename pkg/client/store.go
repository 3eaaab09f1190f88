package client

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/andriwibowo/blognest/internal/domain/entity"
)

// Status tracks where an async action is in its lifecycle.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Resource is a value fetched or mutated through the API together with
// the state of the last action that touched it. Err carries the server
// message when Status is StatusFailed.
type Resource[T any] struct {
	Status Status
	Data   T
	Err    string
}

// Store holds client-side state behind a mutex: the session plus the
// blog and profile resources. Every action marks its resource pending,
// performs the call on a goroutine and settles the resource with the
// result; the returned channel receives the action's error (or nil)
// exactly once.
type Store struct {
	mu          sync.Mutex
	api         *Client
	sessionPath string

	session Resource[Session]
	blogs   Resource[[]entity.Blog]
	global  Resource[[]entity.Blog]
	blog    Resource[entity.Blog]
	profile Resource[entity.Profile]
}

// Option configures a Store.
type Option func(*Store)

// WithHTTPClient overrides the transport used for API calls.
func WithHTTPClient(h *Client) Option {
	return func(s *Store) { s.api = h }
}

// New builds a Store against baseURL. When sessionPath is non-empty a
// previously persisted session is loaded from it, so a restarted
// client keeps its login.
func New(baseURL, sessionPath string, opts ...Option) *Store {
	s := &Store{
		api:         NewClient(baseURL, nil),
		sessionPath: sessionPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	if sess, ok := loadSession(sessionPath); ok {
		s.session = Resource[Session]{Status: StatusSucceeded, Data: sess}
	}
	return s
}

func loadSession(path string) (Session, bool) {
	var sess Session
	if path == "" {
		return sess, false
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return sess, false
	}
	if err := json.Unmarshal(b, &sess); err != nil || sess.Token == "" {
		return sess, false
	}
	return sess, true
}

func (s *Store) saveSession(sess Session) {
	if s.sessionPath == "" {
		return
	}
	b, err := json.Marshal(sess)
	if err != nil {
		return
	}
	_ = os.WriteFile(s.sessionPath, b, 0o600)
}

// Close releases the transport's idle connections. The store runs no
// background goroutines beyond in-flight actions.
func (s *Store) Close() {
	s.api.HTTP.CloseIdleConnections()
}

// SessionState returns a snapshot of the session resource.
func (s *Store) SessionState() Resource[Session] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// BlogsState returns a snapshot of the caller's blog list.
func (s *Store) BlogsState() Resource[[]entity.Blog] {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.blogs
	out.Data = append([]entity.Blog(nil), s.blogs.Data...)
	return out
}

// GlobalState returns a snapshot of the global feed.
func (s *Store) GlobalState() Resource[[]entity.Blog] {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.global
	out.Data = append([]entity.Blog(nil), s.global.Data...)
	return out
}

// BlogState returns a snapshot of the selected blog.
func (s *Store) BlogState() Resource[entity.Blog] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blog
}

// ProfileState returns a snapshot of the loaded profile.
func (s *Store) ProfileState() Resource[entity.Profile] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *Store) token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Data.Token
}

// ErrNotLoggedIn is returned by actions that need a session token when
// none is held.
var ErrNotLoggedIn = errors.New("client: not logged in")

// run executes fn on a goroutine and settles res with its result via
// apply. R is the resource's type, T the call's result type; they
// differ for the list-mutating actions. Mark and settle hold the store
// mutex.
func run[R, T any](s *Store, res *Resource[R], fn func() (T, error), apply func(*Resource[R], T)) <-chan error {
	s.mu.Lock()
	res.Status = StatusPending
	res.Err = ""
	s.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		v, err := fn()
		s.mu.Lock()
		if err != nil {
			res.Status = StatusFailed
			res.Err = err.Error()
		} else {
			res.Status = StatusSucceeded
			apply(res, v)
		}
		s.mu.Unlock()
		done <- err
		close(done)
	}()
	return done
}

// fetch is run for the plain case where the call's result replaces the
// resource's data wholesale.
func fetch[T any](s *Store, res *Resource[T], fn func() (T, error)) <-chan error {
	return run(s, res, fn, func(res *Resource[T], v T) {
		res.Data = v
	})
}

// Register creates an account and stores the resulting session.
func (s *Store) Register(ctx context.Context, name, email, password string) <-chan error {
	return fetch(s, &s.session, func() (Session, error) {
		sess, err := s.api.Register(ctx, name, email, password)
		if err == nil {
			s.saveSession(sess)
		}
		return sess, err
	})
}

// Login authenticates and stores the resulting session.
func (s *Store) Login(ctx context.Context, email, password string) <-chan error {
	return fetch(s, &s.session, func() (Session, error) {
		sess, err := s.api.Login(ctx, email, password)
		if err == nil {
			s.saveSession(sess)
		}
		return sess, err
	})
}

// Logout drops the session and its persisted copy. Loaded blog and
// profile state is reset as well.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Resource[Session]{}
	s.blogs = Resource[[]entity.Blog]{}
	s.blog = Resource[entity.Blog]{}
	s.profile = Resource[entity.Profile]{}
	if s.sessionPath != "" {
		_ = os.Remove(s.sessionPath)
	}
}

// FetchBlogs loads the caller's own blogs.
func (s *Store) FetchBlogs(ctx context.Context) <-chan error {
	tok := s.token()
	return fetch(s, &s.blogs, func() ([]entity.Blog, error) {
		if tok == "" {
			return nil, ErrNotLoggedIn
		}
		return s.api.ListBlogs(ctx, tok)
	})
}

// FetchGlobal loads the public feed.
func (s *Store) FetchGlobal(ctx context.Context) <-chan error {
	return fetch(s, &s.global, func() ([]entity.Blog, error) {
		return s.api.ListGlobal(ctx)
	})
}

// FetchBlog loads a single blog into the selected slot.
func (s *Store) FetchBlog(ctx context.Context, id string) <-chan error {
	tok := s.token()
	return fetch(s, &s.blog, func() (entity.Blog, error) {
		if tok == "" {
			return entity.Blog{}, ErrNotLoggedIn
		}
		return s.api.GetBlog(ctx, tok, id)
	})
}

// CreateBlog creates a blog and appends it to the local list.
func (s *Store) CreateBlog(ctx context.Context, in BlogRequest) <-chan error {
	tok := s.token()
	return run(s, &s.blogs, func() (entity.Blog, error) {
		if tok == "" {
			return entity.Blog{}, ErrNotLoggedIn
		}
		return s.api.CreateBlog(ctx, tok, in)
	}, func(res *Resource[[]entity.Blog], b entity.Blog) {
		res.Data = append(res.Data, b)
	})
}

// UpdateBlog updates a blog and replaces the local copy by id.
func (s *Store) UpdateBlog(ctx context.Context, id string, in BlogRequest) <-chan error {
	tok := s.token()
	return run(s, &s.blogs, func() (entity.Blog, error) {
		if tok == "" {
			return entity.Blog{}, ErrNotLoggedIn
		}
		return s.api.UpdateBlog(ctx, tok, id, in)
	}, func(res *Resource[[]entity.Blog], b entity.Blog) {
		for i := range res.Data {
			if res.Data[i].ID == b.ID {
				res.Data[i] = b
				return
			}
		}
		res.Data = append(res.Data, b)
	})
}

// DeleteBlog deletes a blog and drops it from the local list.
func (s *Store) DeleteBlog(ctx context.Context, id string) <-chan error {
	tok := s.token()
	return run(s, &s.blogs, func() (entity.Blog, error) {
		if tok == "" {
			return entity.Blog{}, ErrNotLoggedIn
		}
		return entity.Blog{}, s.api.DeleteBlog(ctx, tok, id)
	}, func(res *Resource[[]entity.Blog], _ entity.Blog) {
		kept := res.Data[:0]
		for _, b := range res.Data {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		res.Data = kept
	})
}

// FetchProfile loads the profile for userID.
func (s *Store) FetchProfile(ctx context.Context, userID string) <-chan error {
	return fetch(s, &s.profile, func() (entity.Profile, error) {
		return s.api.GetProfile(ctx, userID)
	})
}

// CreateProfile creates the caller's profile.
func (s *Store) CreateProfile(ctx context.Context, in ProfileRequest) <-chan error {
	tok := s.token()
	return fetch(s, &s.profile, func() (entity.Profile, error) {
		if tok == "" {
			return entity.Profile{}, ErrNotLoggedIn
		}
		return s.api.CreateProfile(ctx, tok, in)
	})
}

// UpdateProfile edits the caller's profile; empty fields are kept.
func (s *Store) UpdateProfile(ctx context.Context, in ProfileRequest) <-chan error {
	tok := s.token()
	return fetch(s, &s.profile, func() (entity.Profile, error) {
		if tok == "" {
			return entity.Profile{}, ErrNotLoggedIn
		}
		return s.api.UpdateProfile(ctx, tok, in)
	})
}

// DeleteProfile removes the caller's profile and clears the local copy.
func (s *Store) DeleteProfile(ctx context.Context) <-chan error {
	tok := s.token()
	return run(s, &s.profile, func() (entity.Profile, error) {
		if tok == "" {
			return entity.Profile{}, ErrNotLoggedIn
		}
		return entity.Profile{}, s.api.DeleteProfile(ctx, tok)
	}, func(res *Resource[entity.Profile], _ entity.Profile) {
		*res = Resource[entity.Profile]{Status: StatusSucceeded}
	})
}
