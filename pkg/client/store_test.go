package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriwibowo/blognest/internal/domain/entity"
)

const testToken = "test-token"

func writeEnvelope(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  status,
		"success": status < 400,
		"message": message,
		"data":    data,
	})
}

// newAPIServer serves just enough of the API for the store: login plus
// an in-memory blog collection keyed by a fixed bearer token.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	var (
		mu    sync.Mutex
		seq   int
		blogs = map[string]entity.Blog{}
	)

	authorized := func(r *http.Request) bool {
		return r.Header.Get("Authorization") == "Bearer "+testToken
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "alice@example.com" || req.Password != "password123" {
			writeEnvelope(w, http.StatusUnauthorized, nil, "invalid email or password")
			return
		}
		writeEnvelope(w, http.StatusOK, Session{
			ID: "user-1", Name: "Alice", Email: req.Email, Token: testToken,
		}, "login successful")
	})

	mux.HandleFunc("GET /api/blogs", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeEnvelope(w, http.StatusUnauthorized, nil, "missing bearer token")
			return
		}
		mu.Lock()
		out := []entity.Blog{}
		for _, b := range blogs {
			out = append(out, b)
		}
		mu.Unlock()
		writeEnvelope(w, http.StatusOK, out, "blogs")
	})

	mux.HandleFunc("GET /api/blogs/global", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		out := []entity.Blog{}
		for _, b := range blogs {
			out = append(out, b)
		}
		mu.Unlock()
		writeEnvelope(w, http.StatusOK, out, "blogs")
	})

	mux.HandleFunc("POST /api/blogs/create", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeEnvelope(w, http.StatusUnauthorized, nil, "missing bearer token")
			return
		}
		var b entity.Blog
		_ = json.NewDecoder(r.Body).Decode(&b)
		mu.Lock()
		seq++
		b.ID = fmt.Sprintf("blog-%d", seq)
		b.User = "user-1"
		blogs[b.ID] = b
		mu.Unlock()
		writeEnvelope(w, http.StatusCreated, b, "blog created")
	})

	mux.HandleFunc("PUT /api/blogs/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeEnvelope(w, http.StatusUnauthorized, nil, "missing bearer token")
			return
		}
		id := r.PathValue("id")
		mu.Lock()
		b, ok := blogs[id]
		if ok {
			var in entity.Blog
			_ = json.NewDecoder(r.Body).Decode(&in)
			if in.Title != "" {
				b.Title = in.Title
			}
			if in.Caption != "" {
				b.Caption = in.Caption
			}
			blogs[id] = b
		}
		mu.Unlock()
		if !ok {
			writeEnvelope(w, http.StatusNotFound, nil, "blog not found")
			return
		}
		writeEnvelope(w, http.StatusOK, b, "blog updated")
	})

	mux.HandleFunc("DELETE /api/blogs/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeEnvelope(w, http.StatusUnauthorized, nil, "missing bearer token")
			return
		}
		id := r.PathValue("id")
		mu.Lock()
		_, ok := blogs[id]
		delete(blogs, id)
		mu.Unlock()
		if !ok {
			writeEnvelope(w, http.StatusNotFound, nil, "blog not found")
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]bool{"deleted": true}, "blog deleted")
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func loginStore(t *testing.T, srv *httptest.Server, sessionPath string) *Store {
	t.Helper()
	s := New(srv.URL, sessionPath)
	require.NoError(t, <-s.Login(context.Background(), "alice@example.com", "password123"))
	return s
}

func TestStore_LoginPersistsSession(t *testing.T) {
	t.Parallel()

	srv := newAPIServer(t)
	path := filepath.Join(t.TempDir(), "session.json")

	s := loginStore(t, srv, path)

	sess := s.SessionState()
	assert.Equal(t, StatusSucceeded, sess.Status)
	assert.Equal(t, testToken, sess.Data.Token)
	assert.Equal(t, "Alice", sess.Data.Name)

	_, err := os.Stat(path)
	require.NoError(t, err, "session file should exist after login")

	// A fresh store on the same path picks the session up.
	restored := New(srv.URL, path)
	sess = restored.SessionState()
	assert.Equal(t, StatusSucceeded, sess.Status)
	assert.Equal(t, testToken, sess.Data.Token)
}

func TestStore_LoginFailure(t *testing.T) {
	t.Parallel()

	srv := newAPIServer(t)
	s := New(srv.URL, "")

	err := <-s.Login(context.Background(), "alice@example.com", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	sess := s.SessionState()
	assert.Equal(t, StatusFailed, sess.Status)
	assert.True(t, strings.Contains(sess.Err, "invalid email or password"), "got %q", sess.Err)
}

func TestStore_ActionsRequireLogin(t *testing.T) {
	t.Parallel()

	srv := newAPIServer(t)
	s := New(srv.URL, "")

	err := <-s.FetchBlogs(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Equal(t, StatusFailed, s.BlogsState().Status)

	// The global feed needs no session.
	require.NoError(t, <-s.FetchGlobal(context.Background()))
	assert.Equal(t, StatusSucceeded, s.GlobalState().Status)
}

func TestStore_BlogMutations(t *testing.T) {
	t.Parallel()

	srv := newAPIServer(t)
	s := loginStore(t, srv, "")
	ctx := context.Background()

	require.NoError(t, <-s.CreateBlog(ctx, BlogRequest{Title: "one", Caption: "c", Desc: "d", Category: "Technology"}))
	require.NoError(t, <-s.CreateBlog(ctx, BlogRequest{Title: "two", Caption: "c", Desc: "d", Category: "Lifestyle"}))

	st := s.BlogsState()
	require.Equal(t, StatusSucceeded, st.Status)
	require.Len(t, st.Data, 2)
	firstID := st.Data[0].ID

	// Update replaces the local copy in place.
	require.NoError(t, <-s.UpdateBlog(ctx, firstID, BlogRequest{Title: "renamed"}))
	st = s.BlogsState()
	require.Len(t, st.Data, 2)
	assert.Equal(t, "renamed", st.Data[0].Title)

	// Delete drops it from the local list.
	require.NoError(t, <-s.DeleteBlog(ctx, firstID))
	st = s.BlogsState()
	require.Len(t, st.Data, 1)
	assert.NotEqual(t, firstID, st.Data[0].ID)

	// A fresh fetch agrees with the server.
	require.NoError(t, <-s.FetchBlogs(ctx))
	assert.Len(t, s.BlogsState().Data, 1)
}

func TestStore_CreatePendingThenAppend(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/blogs/create", func(w http.ResponseWriter, r *http.Request) {
		<-release
		writeEnvelope(w, http.StatusCreated, entity.Blog{ID: "blog-1", Title: "one"}, "blog created")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	s := New(srv.URL, "")
	s.session = Resource[Session]{Status: StatusSucceeded, Data: Session{Token: testToken}}

	done := s.CreateBlog(context.Background(), BlogRequest{Title: "one"})

	// The list resource is pending while the call is in flight.
	assert.Equal(t, StatusPending, s.BlogsState().Status)
	close(release)

	require.NoError(t, <-done)
	st := s.BlogsState()
	assert.Equal(t, StatusSucceeded, st.Status)
	require.Len(t, st.Data, 1)
	assert.Equal(t, "blog-1", st.Data[0].ID)
}

func TestStore_UpdateFailureKeepsList(t *testing.T) {
	t.Parallel()

	srv := newAPIServer(t)
	s := loginStore(t, srv, "")
	ctx := context.Background()

	require.NoError(t, <-s.CreateBlog(ctx, BlogRequest{Title: "one", Caption: "c", Desc: "d", Category: "Technology"}))

	err := <-s.UpdateBlog(ctx, "no-such-blog", BlogRequest{Title: "x"})
	require.Error(t, err)

	st := s.BlogsState()
	assert.Equal(t, StatusFailed, st.Status)
	require.Len(t, st.Data, 1)
	assert.Equal(t, "one", st.Data[0].Title)
}

func TestStore_Logout(t *testing.T) {
	t.Parallel()

	srv := newAPIServer(t)
	path := filepath.Join(t.TempDir(), "session.json")
	s := loginStore(t, srv, path)

	require.NoError(t, <-s.FetchBlogs(context.Background()))

	s.Logout()

	assert.Equal(t, StatusIdle, s.SessionState().Status)
	assert.Empty(t, s.SessionState().Data.Token)
	assert.Equal(t, StatusIdle, s.BlogsState().Status)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "session file should be removed on logout")

	s.Close()
}
