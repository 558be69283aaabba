package response

import (
	"brainbox-retailplus/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StaffResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
}

type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	Staff       *StaffResponse `json:"staff"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

func FromStaffView(v *queries.AuthorizedStaffView) (*StaffResponse, error) {
	var res StaffResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
