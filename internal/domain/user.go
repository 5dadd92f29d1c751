package domain

import "time"

// UserStatus represents lifecycle states for an end-user.
type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusInactive UserStatus = "Inactive"
)

// Package enumerates the subscription tiers sold to end-users.
type Package string

const (
	PackageSilver1  Package = "Silver 1"
	PackageSilver2  Package = "Silver 2"
	PackageGolden   Package = "Golden"
	PackagePlatinum Package = "Platinum"
	PackagePremium  Package = "Premium"
	PackageNone     Package = "None"
)

// ValidPackage reports whether p is one of the sold tiers (or the explicit "None").
func ValidPackage(p Package) bool {
	switch p {
	case PackageSilver1, PackageSilver2, PackageGolden, PackagePlatinum, PackagePremium, PackageNone:
		return true
	}
	return false
}

// Documents holds the named attachments kept per user.
type Documents struct {
	IDProof      string
	ServiceGuide string
	Contract     string
	CoverLetter  string
}

// User is the domain model for end-users of the mobile app.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Package      Package
	Status       UserStatus
	DOB          string
	Gender       string
	Mobile       string
	LinkedIn     string
	Address      string
	ProfilePic   string
	Documents    Documents
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
