package dto

import (
	"time"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
)

// UserResponse defines the user data returned by the API. Credentials are never included.
type UserResponse struct {
	UserID    int64     `json:"userID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// AREntityResponse defines the data returned for an A/R entity.
type AREntityResponse struct {
	ARID int64  `json:"arID"`
	Name string `json:"name"`
}

// SessionResponse describes the signed-in user and their entity selection.
type SessionResponse struct {
	User              UserResponse       `json:"user"`
	SelectedAREntity  *AREntityResponse  `json:"selectedAREntity,omitempty"`
	AllowedAREntities []AREntityResponse `json:"allowedAREntities"`
}

// SwitchARRequest selects another A/R entity for the session.
type SwitchARRequest struct {
	ARID int64 `json:"arID" binding:"required,gt=0"`
}

// AccessGrantRequest grants (allow=true) or revokes access to an A/R entity.
type AccessGrantRequest struct {
	Allow *bool `json:"allow" binding:"required"`
}

// UserAccessResponse is one row of the admin access matrix.
type UserAccessResponse struct {
	User       UserResponse       `json:"user"`
	AREntities []AREntityResponse `json:"arEntities"`
}

// AccessMatrixResponse lists every user with their grants and every entity that can be granted.
type AccessMatrixResponse struct {
	Users      []UserAccessResponse `json:"users"`
	AREntities []AREntityResponse   `json:"arEntities"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

func ToAREntityResponse(e domain.AREntity) AREntityResponse {
	return AREntityResponse{ARID: e.ARID, Name: e.Name}
}

// ToListAREntityResponse converts entities, returning an empty slice rather than nil.
func ToListAREntityResponse(entities []domain.AREntity) []AREntityResponse {
	res := make([]AREntityResponse, len(entities))
	for i, e := range entities {
		res[i] = ToAREntityResponse(e)
	}
	return res
}

func ToUserAccessResponse(access []domain.UserAccess) []UserAccessResponse {
	res := make([]UserAccessResponse, len(access))
	for i, a := range access {
		res[i] = UserAccessResponse{
			User:       ToUserResponse(&a.User),
			AREntities: ToListAREntityResponse(a.AREntities),
		}
	}
	return res
}
