package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/more-experts/support-portal/internal/domain"
	"github.com/more-experts/support-portal/internal/repository"
	apperrors "github.com/more-experts/support-portal/pkg/util"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	clock time.Time
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		users: map[string]*domain.User{},
		clock: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *memUserRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = uuid.NewString()
	now := r.tick()
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, existing := range r.users {
		if id != user.ID && existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.UpdatedAt = r.tick()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *user
	return &out, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == strings.ToLower(email) {
			out := *user
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func strPtr(s string) *string { return &s }

func TestUserCreateHashesPasswordAndDefaults(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)

	user, err := svc.Create(context.Background(), UserCreateInput{
		Name:     "Dalia Hassan",
		Email:    "Dalia@Example.COM",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "dalia@example.com", user.Email)
	assert.Equal(t, domain.PackageNone, user.Package)
	assert.Equal(t, domain.UserStatusActive, user.Status)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
}

func TestUserCreateRejectsMissingFields(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), bcrypt.MinCost)

	for _, input := range []UserCreateInput{
		{Email: "a@b.c", Password: "x"},
		{Name: "A", Password: "x"},
		{Name: "A", Email: "a@b.c"},
	} {
		_, err := svc.Create(context.Background(), input)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	}
}

func TestUserCreateRejectsUnknownPackage(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), bcrypt.MinCost)

	_, err := svc.Create(context.Background(), UserCreateInput{
		Name: "A", Email: "a@b.c", Password: "x", Package: "Diamond",
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestUserCreateDuplicateEmailConflicts(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), bcrypt.MinCost)
	ctx := context.Background()

	_, err := svc.Create(ctx, UserCreateInput{Name: "A", Email: "dup@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, UserCreateInput{Name: "B", Email: "DUP@example.com", Password: "y"})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

// laxUserRepo stores whatever it is given, like a document store with no
// unique constraint in place.
type laxUserRepo struct {
	*memUserRepo
}

func (r *laxUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.NewString()
	now := r.tick()
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *laxUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	user.UpdatedAt = r.tick()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func TestUserCreateRejectsDuplicateWithoutStoreConstraint(t *testing.T) {
	repo := &laxUserRepo{memUserRepo: newMemUserRepo()}
	svc := NewUserService(repo, bcrypt.MinCost)
	ctx := context.Background()

	_, err := svc.Create(ctx, UserCreateInput{Name: "A", Email: "dup@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, UserCreateInput{Name: "B", Email: "Dup@Example.com", Password: "y"})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserPatchRejectsEmailCollisionWithoutStoreConstraint(t *testing.T) {
	repo := &laxUserRepo{memUserRepo: newMemUserRepo()}
	svc := NewUserService(repo, bcrypt.MinCost)
	ctx := context.Background()

	_, err := svc.Create(ctx, UserCreateInput{Name: "A", Email: "a@example.com", Password: "x"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, UserCreateInput{Name: "B", Email: "b@example.com", Password: "y"})
	require.NoError(t, err)

	_, err = svc.Patch(ctx, second.ID, UserPatch{Email: strPtr("A@example.com")})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)

	// Re-submitting your own email is not a collision.
	patched, err := svc.Patch(ctx, second.ID, UserPatch{Email: strPtr("B@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", patched.Email)
}

func TestUserPatchLeavesAbsentFieldsAlone(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)
	ctx := context.Background()

	user, err := svc.Create(ctx, UserCreateInput{
		Name:     "Maya",
		Email:    "maya@example.com",
		Password: "pw",
		Package:  domain.PackageGolden,
		Mobile:   "+4917612345678",
		Documents: domain.Documents{
			IDProof:  "https://files/id.pdf",
			Contract: "https://files/contract.pdf",
		},
	})
	require.NoError(t, err)

	pkg := domain.PackagePlatinum
	patched, err := svc.Patch(ctx, user.ID, UserPatch{
		Package: &pkg,
		Documents: &DocumentsPatch{
			ServiceGuide: strPtr("https://files/guide.pdf"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PackagePlatinum, patched.Package)
	assert.Equal(t, "Maya", patched.Name)
	assert.Equal(t, "+4917612345678", patched.Mobile)
	assert.Equal(t, "https://files/id.pdf", patched.Documents.IDProof)
	assert.Equal(t, "https://files/contract.pdf", patched.Documents.Contract)
	assert.Equal(t, "https://files/guide.pdf", patched.Documents.ServiceGuide)
}

func TestUserPatchRehashesPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)
	ctx := context.Background()

	user, err := svc.Create(ctx, UserCreateInput{Name: "Tim", Email: "tim@example.com", Password: "old"})
	require.NoError(t, err)
	oldHash := user.PasswordHash

	patched, err := svc.Patch(ctx, user.ID, UserPatch{Password: strPtr("new")})
	require.NoError(t, err)
	assert.NotEqual(t, oldHash, patched.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(patched.PasswordHash), []byte("new")))

	// empty password in the patch keeps the stored hash
	again, err := svc.Patch(ctx, user.ID, UserPatch{Password: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, patched.PasswordHash, again.PasswordHash)
}

func TestUserPatchUnknownID(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), bcrypt.MinCost)

	_, err := svc.Patch(context.Background(), "missing", UserPatch{Name: strPtr("X")})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestUserDelete(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost)
	ctx := context.Background()

	user, err := svc.Create(ctx, UserCreateInput{Name: "Del", Email: "del@example.com", Password: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.ID))

	err = svc.Delete(ctx, user.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
