package dto

import (
	"time"

	"github.com/more-experts/support-portal/internal/domain"
)

// DocumentsPayload carries the named attachment links.
type DocumentsPayload struct {
	IDProof      string `json:"idProof"`
	ServiceGuide string `json:"serviceGuide"`
	Contract     string `json:"contract"`
	CoverLetter  string `json:"coverLetter"`
}

// CreateUserRequest payload for the signup route.
type CreateUserRequest struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Password   string            `json:"password"`
	Package    domain.Package    `json:"package"`
	Status     domain.UserStatus `json:"status"`
	DOB        string            `json:"dob"`
	Gender     string            `json:"gender"`
	Mobile     string            `json:"mobile"`
	LinkedIn   string            `json:"linkedin"`
	Address    string            `json:"address"`
	ProfilePic string            `json:"profilePic"`
	Documents  DocumentsPayload  `json:"documents"`
}

// DocumentsPatchRequest updates individual attachments; absent fields are untouched.
type DocumentsPatchRequest struct {
	IDProof      *string `json:"idProof"`
	ServiceGuide *string `json:"serviceGuide"`
	Contract     *string `json:"contract"`
	CoverLetter  *string `json:"coverLetter"`
}

// PatchUserRequest payload for profile edits; absent fields are untouched.
type PatchUserRequest struct {
	Name       *string                `json:"name"`
	Email      *string                `json:"email"`
	Password   *string                `json:"password"`
	Package    *domain.Package        `json:"package"`
	Status     *domain.UserStatus     `json:"status"`
	DOB        *string                `json:"dob"`
	Gender     *string                `json:"gender"`
	Mobile     *string                `json:"mobile"`
	LinkedIn   *string                `json:"linkedin"`
	Address    *string                `json:"address"`
	ProfilePic *string                `json:"profilePic"`
	Documents  *DocumentsPatchRequest `json:"documents"`
}

// UserResponse never exposes the password hash.
type UserResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Package    domain.Package    `json:"package"`
	Status     domain.UserStatus `json:"status"`
	DOB        string            `json:"dob"`
	Gender     string            `json:"gender"`
	Mobile     string            `json:"mobile"`
	LinkedIn   string            `json:"linkedin"`
	Address    string            `json:"address"`
	ProfilePic string            `json:"profilePic"`
	Documents  DocumentsPayload  `json:"documents"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// NewUserResponse maps the domain model.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Package:    user.Package,
		Status:     user.Status,
		DOB:        user.DOB,
		Gender:     user.Gender,
		Mobile:     user.Mobile,
		LinkedIn:   user.LinkedIn,
		Address:    user.Address,
		ProfilePic: user.ProfilePic,
		Documents: DocumentsPayload{
			IDProof:      user.Documents.IDProof,
			ServiceGuide: user.Documents.ServiceGuide,
			Contract:     user.Documents.Contract,
			CoverLetter:  user.Documents.CoverLetter,
		},
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
