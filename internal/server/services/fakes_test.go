package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/validation"
)

type fakeCodesRepo struct {
	mu      sync.Mutex
	records map[string]models.VerificationCode
	calls   int

	upsertErr error
	getErr    error
}

func newFakeCodesRepo() *fakeCodesRepo {
	return &fakeCodesRepo{records: map[string]models.VerificationCode{}}
}

func (f *fakeCodesRepo) Upsert(ctx context.Context, identifier string, code uint32, issuedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.records[identifier] = models.VerificationCode{Identifier: identifier, Code: code, IssuedAt: issuedAt}
	return nil
}

func (f *fakeCodesRepo) GetLatest(ctx context.Context, identifier string) (*models.VerificationCode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	rec, ok := f.records[identifier]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type fakeUsersRepo struct {
	mu    sync.Mutex
	users map[string]models.User
	calls int

	insertErr error
	findErr   error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: map[string]models.User{}}
}

func (f *fakeUsersRepo) Insert(ctx context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.insertErr != nil {
		return f.insertErr
	}
	if _, ok := f.users[u.Identifier]; ok {
		return common.ErrDuplicateIdentifier
	}
	f.users[u.Identifier] = *u
	return nil
}

func (f *fakeUsersRepo) FindByCredentials(ctx context.Context, identifier, digest string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.findErr != nil {
		return false, f.findErr
	}
	u, ok := f.users[identifier]
	return ok && u.PasswordDigest == digest, nil
}

type sentMessage struct {
	message     string
	destination string
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (f *fakeSender) Send(ctx context.Context, message, destination string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{message: message, destination: destination})
	return nil
}

type fixedGenerator struct {
	codes []uint32
	i     int
}

func (g *fixedGenerator) Generate() uint32 {
	c := g.codes[g.i%len(g.codes)]
	g.i++
	return c
}

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var errBoom = errors.New("boom")

type harness struct {
	codes  *fakeCodesRepo
	users  *fakeUsersRepo
	sender *fakeSender
	gen    *fixedGenerator
	clock  *manualClock
	deps   Deps
}

func newHarness(mode validation.Mode, issued ...uint32) *harness {
	if len(issued) == 0 {
		issued = []uint32{123456}
	}
	h := &harness{
		codes:  newFakeCodesRepo(),
		users:  newFakeUsersRepo(),
		sender: &fakeSender{},
		gen:    &fixedGenerator{codes: issued},
		clock:  &manualClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
	}
	h.deps = Deps{
		Codes:        h.codes,
		Users:        h.users,
		Sender:       h.sender,
		Generator:    h.gen,
		Hasher:       cryptox.NewSHA256Hasher(),
		Validator:    validation.NewValidator(mode, false),
		Clock:        h.clock.Now,
		CodeValidity: time.Hour,
	}
	return h
}
