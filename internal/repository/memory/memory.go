// Package memory holds map-backed stores with the same contracts as the
// PostgreSQL repositories. Handler and router tests run the real services on top of them.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"marketplace-api/internal/model"
)

// Store keeps users, products and contact messages. Setting Err makes every
// call fail with it, which is how tests simulate an unreachable database.
type Store struct {
	mu       sync.Mutex
	err      error
	nextID   int64
	users    map[string]model.User
	products []model.Product
	messages []model.ContactMessage
}

func New() *Store {
	return &Store{users: map[string]model.User{}}
}

func (s *Store) SetErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{s: s}
}

func (s *Store) Products() *ProductRepository {
	return &ProductRepository{s: s}
}

func (s *Store) Contacts() *ContactRepository {
	return &ContactRepository{s: s}
}

func (s *Store) Messages() []model.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ContactMessage(nil), s.messages...)
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

type UserRepository struct {
	s *Store
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return model.User{}, r.s.err
	}

	u, ok := r.s.users[email]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) FindByID(_ context.Context, id int64) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return model.User{}, r.s.err
	}

	for _, u := range r.s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return false, r.s.err
	}

	_, ok := r.s.users[email]
	return ok, nil
}

func (r *UserRepository) Create(_ context.Context, u model.User) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return model.User{}, r.s.err
	}

	if _, ok := r.s.users[u.Email]; ok {
		return model.User{}, model.ErrUserAlreadyExists
	}
	u.ID = r.s.id()
	u.CreatedAt = time.Now().UTC()
	r.s.users[u.Email] = u
	return u, nil
}

type ProductRepository struct {
	s *Store
}

func (r *ProductRepository) List(_ context.Context) ([]model.Product, error) {
	return r.filter(func(model.Product) bool { return true })
}

func (r *ProductRepository) ListByOwner(_ context.Context, ownerID int64) ([]model.Product, error) {
	return r.filter(func(p model.Product) bool { return p.OwnerID == ownerID })
}

func (r *ProductRepository) Create(_ context.Context, p model.Product) (model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return model.Product{}, r.s.err
	}

	p.ID = r.s.id()
	p.CreatedAt = time.Now().UTC()
	r.s.products = append(r.s.products, p)
	return p, nil
}

// filter returns matches newest first, like the SQL ORDER BY.
func (r *ProductRepository) filter(keep func(model.Product) bool) ([]model.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return nil, r.s.err
	}

	out := make([]model.Product, 0)
	for _, p := range r.s.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type ContactRepository struct {
	s *Store
}

func (r *ContactRepository) Create(_ context.Context, m model.ContactMessage) (model.ContactMessage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.err != nil {
		return model.ContactMessage{}, r.s.err
	}

	m.ID = r.s.id()
	m.CreatedAt = time.Now().UTC()
	r.s.messages = append(r.s.messages, m)
	return m, nil
}
