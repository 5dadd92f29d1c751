package service

import (
	"context"
	"errors"
	"strings"

	"github.com/more-experts/support-portal/internal/auth"
	"github.com/more-experts/support-portal/internal/domain"
	"github.com/more-experts/support-portal/internal/repository"
	apperrors "github.com/more-experts/support-portal/pkg/util"
)

// UserService manages end-user records.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// UserCreateInput describes the signup payload.
type UserCreateInput struct {
	Name       string
	Email      string
	Password   string
	Package    domain.Package
	Status     domain.UserStatus
	DOB        string
	Gender     string
	Mobile     string
	LinkedIn   string
	Address    string
	ProfilePic string
	Documents  domain.Documents
}

// DocumentsPatch carries optional per-attachment updates.
type DocumentsPatch struct {
	IDProof      *string
	ServiceGuide *string
	Contract     *string
	CoverLetter  *string
}

// UserPatch carries the optional fields of a profile edit. Nil fields are left
// untouched, document attachments included.
type UserPatch struct {
	Name       *string
	Email      *string
	Password   *string
	Package    *domain.Package
	Status     *domain.UserStatus
	DOB        *string
	Gender     *string
	Mobile     *string
	LinkedIn   *string
	Address    *string
	ProfilePic *string
	Documents  *DocumentsPatch
}

// Create registers a new end-user. The email is checked for collisions up
// front; the store's unique constraint remains the backstop for concurrent
// signups.
func (s *UserService) Create(ctx context.Context, input UserCreateInput) (*domain.User, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, apperrors.NewValidationError("name, email, password required", nil)
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := s.checkEmailFree(ctx, email); err != nil {
		return nil, err
	}
	if input.Package == "" {
		input.Package = domain.PackageNone
	}
	if !domain.ValidPackage(input.Package) {
		return nil, apperrors.NewValidationError("unknown package", map[string]any{"package": input.Package})
	}
	if input.Status == "" {
		input.Status = domain.UserStatusActive
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Package:      input.Package,
		Status:       input.Status,
		DOB:          input.DOB,
		Gender:       input.Gender,
		Mobile:       input.Mobile,
		LinkedIn:     input.LinkedIn,
		Address:      input.Address,
		ProfilePic:   input.ProfilePic,
		Documents:    input.Documents,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("email already registered", map[string]any{"email": user.Email})
		}
		return nil, err
	}
	return user, nil
}

// checkEmailFree rejects an email address that already belongs to a user.
func (s *UserService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return apperrors.NewConflict("email already registered", map[string]any{"email": email})
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

// List returns all users newest-first.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Patch applies a partial profile edit. Fields absent from the patch keep
// their stored values; a package change never touches document attachments
// unless the patch names them explicitly.
func (s *UserService) Patch(ctx context.Context, id string, patch UserPatch) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, err
	}

	if patch.Name != nil {
		user.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		if email != user.Email {
			if err := s.checkEmailFree(ctx, email); err != nil {
				return nil, err
			}
		}
		user.Email = email
	}
	if patch.Password != nil && *patch.Password != "" {
		hash, err := auth.HashPassword(*patch.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if patch.Package != nil {
		if !domain.ValidPackage(*patch.Package) {
			return nil, apperrors.NewValidationError("unknown package", map[string]any{"package": *patch.Package})
		}
		user.Package = *patch.Package
	}
	if patch.Status != nil {
		user.Status = *patch.Status
	}
	if patch.DOB != nil {
		user.DOB = *patch.DOB
	}
	if patch.Gender != nil {
		user.Gender = *patch.Gender
	}
	if patch.Mobile != nil {
		user.Mobile = *patch.Mobile
	}
	if patch.LinkedIn != nil {
		user.LinkedIn = *patch.LinkedIn
	}
	if patch.Address != nil {
		user.Address = *patch.Address
	}
	if patch.ProfilePic != nil {
		user.ProfilePic = *patch.ProfilePic
	}
	if patch.Documents != nil {
		if patch.Documents.IDProof != nil {
			user.Documents.IDProof = *patch.Documents.IDProof
		}
		if patch.Documents.ServiceGuide != nil {
			user.Documents.ServiceGuide = *patch.Documents.ServiceGuide
		}
		if patch.Documents.Contract != nil {
			user.Documents.Contract = *patch.Documents.Contract
		}
		if patch.Documents.CoverLetter != nil {
			user.Documents.CoverLetter = *patch.Documents.CoverLetter
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("email already registered", map[string]any{"email": user.Email})
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, err
	}
	return user, nil
}

// Delete removes a user record.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return err
	}
	return nil
}
