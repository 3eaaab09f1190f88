package application

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andriwibowo/blognest/internal/domain/entity"
	"github.com/andriwibowo/blognest/internal/domain/repository"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// ---- in-memory repositories ----

type memUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]entity.User // by id
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	u.CreatedAt = time.Now()
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memBlogRepo struct {
	mu    sync.Mutex
	seq   int
	blogs map[string]entity.Blog
}

func newMemBlogRepo() *memBlogRepo {
	return &memBlogRepo{blogs: map[string]entity.Blog{}}
}

func (r *memBlogRepo) Create(_ context.Context, b *entity.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	b.ID = fmt.Sprintf("blog-%d", r.seq)
	b.CreatedAt = time.Now()
	r.blogs[b.ID] = *b
	return nil
}

func (r *memBlogRepo) GetByID(_ context.Context, id string) (*entity.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blogs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (r *memBlogRepo) ListByUser(_ context.Context, userID string) ([]entity.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Blog{}
	for _, b := range r.blogs {
		if b.User == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBlogRepo) ListAll(_ context.Context) ([]entity.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Blog{}
	for _, b := range r.blogs {
		out = append(out, b)
	}
	return out, nil
}

func (r *memBlogRepo) Update(_ context.Context, b *entity.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blogs[b.ID]; !ok {
		return repository.ErrNotFound
	}
	r.blogs[b.ID] = *b
	return nil
}

func (r *memBlogRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blogs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.blogs, id)
	return nil
}

type memProfileRepo struct {
	mu       sync.Mutex
	seq      int
	profiles map[string]entity.Profile // by owning user id
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: map[string]entity.Profile{}}
}

func (r *memProfileRepo) Create(_ context.Context, p *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[p.User]; ok {
		return repository.ErrDuplicate
	}
	r.seq++
	p.ID = fmt.Sprintf("profile-%d", r.seq)
	p.CreatedAt = time.Now()
	r.profiles[p.User] = *p
	return nil
}

func (r *memProfileRepo) GetByUser(_ context.Context, userID string) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *memProfileRepo) Update(_ context.Context, p *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[p.User]; !ok {
		return repository.ErrNotFound
	}
	r.profiles[p.User] = *p
	return nil
}

func (r *memProfileRepo) DeleteByUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[userID]; !ok {
		return repository.ErrNotFound
	}
	delete(r.profiles, userID)
	return nil
}

type fakePublisher struct {
	mu        sync.Mutex
	err       error
	published []any
}

func (p *fakePublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, body)
	return nil
}

var (
	_ repository.UserRepository    = (*memUserRepo)(nil)
	_ repository.BlogRepository    = (*memBlogRepo)(nil)
	_ repository.ProfileRepository = (*memProfileRepo)(nil)
	_ EmailPublisher               = (*fakePublisher)(nil)
)
