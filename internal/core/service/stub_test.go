package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/hrc-navate/worklog/internal/core/domain"
	"github.com/hrc-navate/worklog/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo(users ...domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for i := range users {
		u := users[i]
		r.users[u.ID] = &u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	for _, existing := range r.users {
		if existing.Name == u.Name {
			return domain.ErrUserExists
		}
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByName(_ context.Context, name string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Name == name {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindBootstrap(_ context.Context) (*domain.User, error) {
	for _, u := range r.users {
		if u.Bootstrap {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubProjectRepo struct {
	projects map[string]*domain.Project
	seq      int
}

func newStubProjectRepo(projects ...domain.Project) *stubProjectRepo {
	r := &stubProjectRepo{projects: make(map[string]*domain.Project)}
	for i := range projects {
		p := projects[i]
		r.projects[p.ID] = &p
	}
	return r
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) error {
	r.seq++
	p.ID = fmt.Sprintf("project-%d", r.seq)
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.projects[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) List(_ context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type stubEntryRepo struct {
	entries map[string]*domain.WorkEntry
	seq     int
	filters []ports.EntryFilter
}

func newStubEntryRepo(entries ...domain.WorkEntry) *stubEntryRepo {
	r := &stubEntryRepo{entries: make(map[string]*domain.WorkEntry)}
	for i := range entries {
		e := entries[i]
		r.entries[e.ID] = &e
	}
	return r
}

func (r *stubEntryRepo) Create(_ context.Context, e *domain.WorkEntry) error {
	r.seq++
	e.ID = fmt.Sprintf("entry-%d", r.seq)
	clone := *e
	r.entries[e.ID] = &clone
	return nil
}

func (r *stubEntryRepo) Update(_ context.Context, e *domain.WorkEntry) error {
	if _, ok := r.entries[e.ID]; !ok {
		return domain.ErrEntryNotFound
	}
	clone := *e
	r.entries[e.ID] = &clone
	return nil
}

func (r *stubEntryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.entries[id]; !ok {
		return domain.ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *stubEntryRepo) FindByID(_ context.Context, id string) (*domain.WorkEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEntryRepo) Find(_ context.Context, f ports.EntryFilter) ([]domain.WorkEntry, error) {
	r.filters = append(r.filters, f)
	var out []domain.WorkEntry
	for _, e := range r.entries {
		if f.UserID != "" && e.UserID != f.UserID {
			continue
		}
		if f.ProjectID != "" && e.ProjectID != f.ProjectID {
			continue
		}
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *stubEntryRepo) DeleteByProject(_ context.Context, projectID string) (int64, error) {
	var n int64
	for id, e := range r.entries {
		if e.ProjectID == projectID {
			delete(r.entries, id)
			n++
		}
	}
	return n, nil
}

type stubRevoker struct {
	revoked map[string]time.Duration
}

func (s *stubRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if s.revoked == nil {
		s.revoked = make(map[string]time.Duration)
	}
	s.revoked[tokenID] = ttl
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := s.revoked[tokenID]
	return ok, nil
}

type stubDocumentRepo struct {
	docs      map[string]*domain.Document
	createErr error
	seq       int
}

func newStubDocumentRepo() *stubDocumentRepo {
	return &stubDocumentRepo{docs: make(map[string]*domain.Document)}
}

func (r *stubDocumentRepo) Create(_ context.Context, d *domain.Document) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	d.ID = fmt.Sprintf("doc-%d", r.seq)
	clone := *d
	r.docs[d.ID] = &clone
	return nil
}

func (r *stubDocumentRepo) FindByID(_ context.Context, id string) (*domain.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *stubDocumentRepo) ListByUser(_ context.Context, userID string) ([]domain.Document, error) {
	var out []domain.Document
	for _, d := range r.docs {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *stubDocumentRepo) List(_ context.Context) ([]domain.Document, error) {
	var out []domain.Document
	for _, d := range r.docs {
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDocumentRepo) Delete(_ context.Context, id string) error {
	delete(r.docs, id)
	return nil
}

type stubBlobStore struct {
	blobs map[string][]byte
}

func (s *stubBlobStore) Put(_ context.Context, name string, r io.Reader) (int64, error) {
	if s.blobs == nil {
		s.blobs = make(map[string][]byte)
	}
	var buf bytes.Buffer
	n, err := io.Copy(&buf, r)
	if err != nil {
		return 0, err
	}
	s.blobs[name] = buf.Bytes()
	return n, nil
}

func (s *stubBlobStore) Remove(_ context.Context, name string) error {
	delete(s.blobs, name)
	return nil
}

var (
	alice = domain.Viewer{UserID: "u1", DisplayName: "alice"}
	bob   = domain.Viewer{UserID: "u2", DisplayName: "bob"}
	admin = domain.Viewer{UserID: "adm", DisplayName: "admin", IsAdmin: true}
)
