package usecase

import (
	"context"
	"fmt"
	"sync"

	"account-service/internal/data/entity"
	"account-service/internal/data/repository"

	"github.com/google/uuid"
)

// --- in-memory user repository ---

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	if u.ResetToken != nil {
		token := *u.ResetToken
		c.ResetToken = &token
	}
	return &c
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	f.users[user.ID] = cloneUser(user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var users []*entity.User
	for _, user := range f.users {
		users = append(users, cloneUser(user))
	}
	if offset >= len(users) {
		return nil, nil
	}
	end := offset + limit
	if end > len(users) {
		end = len(users)
	}
	return users[offset:end], nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("user %s not found", user.ID.String())
	}
	f.users[user.ID] = cloneUser(user)
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user %s not found", id.String())
	}
	delete(f.users, id)
	return nil
}

// raw returns the stored record without copying, for assertions on
// persisted state like token values.
func (f *fakeUserRepo) raw(id uuid.UUID) *entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.users[id]
}

// --- recording mailer ---

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (f *fakeMailer) Send(to, subject, htmlBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (f *fakeMailer) messages() []sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]sentMail, len(f.sent))
	copy(out, f.sent)
	return out
}
