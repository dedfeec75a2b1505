package usecases

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"clubs.backend/internal/domain/entities"
	domainerrors "clubs.backend/internal/domain/errors"
	"clubs.backend/internal/infrastructure/accounts"
	"clubs.backend/internal/infrastructure/storage"
)

// fakeGateway is an in-memory identity gateway for tests.
type fakeGateway struct {
	mu       sync.Mutex
	byID     map[string]*accounts.UserInfo
	byEmail  map[string]*accounts.UserInfo
	idErrors map[string]error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		byID:     make(map[string]*accounts.UserInfo),
		byEmail:  make(map[string]*accounts.UserInfo),
		idErrors: make(map[string]error),
	}
}

func (g *fakeGateway) addUser(info *accounts.UserInfo) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.byID[info.ID] = info
	if info.InnopolisSSO != nil {
		g.byEmail[info.InnopolisSSO.Email] = info
	}
}

func (g *fakeGateway) failFor(id string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.idErrors[id] = err
}

func (g *fakeGateway) GetUserByID(ctx context.Context, innohassleID string) (*accounts.UserInfo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.idErrors[innohassleID]; err != nil {
		return nil, err
	}
	return g.byID[innohassleID], nil
}

func (g *fakeGateway) GetUserByEmail(ctx context.Context, email string) (*accounts.UserInfo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.byEmail[email], nil
}

func gatewayUser(id, name, email, tgAlias string) *accounts.UserInfo {
	info := &accounts.UserInfo{ID: id}
	if name != "" || email != "" {
		info.InnopolisSSO = &accounts.InnopolisSSO{Name: name, Email: email}
	}
	if tgAlias != "" {
		info.Telegram = &accounts.Telegram{Username: tgAlias}
	}
	return info
}

// memClubRepo is an in-memory club repository for tests.
type memClubRepo struct {
	mu    sync.Mutex
	clubs map[uuid.UUID]*entities.Club
	order []uuid.UUID
}

func newMemClubRepo() *memClubRepo {
	return &memClubRepo{clubs: make(map[uuid.UUID]*entities.Club)}
}

func (r *memClubRepo) Create(ctx context.Context, club *entities.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clubs {
		if c.Slug == club.Slug {
			return domainerrors.ErrConflict
		}
	}
	cp := *club
	r.clubs[club.ID] = &cp
	r.order = append(r.order, club.ID)
	return nil
}

func (r *memClubRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	club, ok := r.clubs[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *club
	return &cp, nil
}

func (r *memClubRepo) GetBySlug(ctx context.Context, slug string) (*entities.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, club := range r.clubs {
		if club.Slug == slug {
			cp := *club
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *memClubRepo) ListByLeader(ctx context.Context, leaderInnohassleID string) ([]*entities.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.Club
	for _, id := range r.order {
		club := r.clubs[id]
		if club.LeaderInnohassleID.Valid && club.LeaderInnohassleID.String == leaderInnohassleID {
			cp := *club
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memClubRepo) List(ctx context.Context) ([]*entities.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entities.Club, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.clubs[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memClubRepo) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateClubInput) (*entities.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	club, ok := r.clubs[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	if input.Slug != nil {
		for otherID, c := range r.clubs {
			if otherID != id && c.Slug == *input.Slug {
				return nil, domainerrors.ErrConflict
			}
		}
		club.Slug = *input.Slug
	}
	if input.IsActive != nil {
		club.IsActive = *input.IsActive
	}
	if input.Title != nil {
		club.Title = *input.Title
	}
	if input.ShortDescription != nil {
		club.ShortDescription = *input.ShortDescription
	}
	if input.Description != nil {
		club.Description = *input.Description
	}
	if input.Type != nil {
		club.Type = *input.Type
	}
	if input.LeaderInnohassleID != nil {
		club.LeaderInnohassleID.SetValid(*input.LeaderInnohassleID)
	}
	if input.SportID != nil {
		club.SportID.SetValid(*input.SportID)
	}
	cp := *club
	return &cp, nil
}

func (r *memClubRepo) SetLogoFileID(ctx context.Context, id uuid.UUID, logoFileID string) (*entities.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	club, ok := r.clubs[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	club.LogoFileID.SetValid(logoFileID)
	cp := *club
	return &cp, nil
}

func (r *memClubRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clubs[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(r.clubs, id)
	for i, queued := range r.order {
		if queued == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// memUserRepo is an in-memory user repository for tests.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entities.User)}
}

func (r *memUserRepo) GetByInnohassleID(ctx context.Context, innohassleID string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[innohassleID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *memUserRepo) ChangeRole(ctx context.Context, innohassleID string, role entities.UserRole) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[innohassleID]
	if !ok {
		user = &entities.User{ID: uuid.New(), InnohassleID: innohassleID}
		r.users[innohassleID] = user
	}
	user.Role = role
	cp := *user
	return &cp, nil
}

// memLogoStore is an in-memory logo store. A non-empty publicURL makes it
// behave like the object-store backend.
type memLogoStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	publicURL string
}

func newMemLogoStore() *memLogoStore {
	return &memLogoStore{objects: make(map[string][]byte)}
}

func (s *memLogoStore) Put(ctx context.Context, fileID string, size int, data []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[storage.ObjectName(fileID, size)] = data
	return nil
}

func (s *memLogoStore) Get(ctx context.Context, fileID string, size int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[storage.ObjectName(fileID, size)]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return data, nil
}

func (s *memLogoStore) PublicURL(fileID string, size int) string {
	if s.publicURL == "" {
		return ""
	}
	return s.publicURL + "/" + storage.ObjectName(fileID, size)
}
