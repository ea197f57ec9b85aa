package dto

import domainuser "staybook/internal/domain/user"

type UpsertUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

type UserListResponse struct {
	Items []UserResponse `json:"items"`
}

func MapUser(u *domainuser.User) UserResponse {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}
	return UserResponse{ID: int64(u.ID), Name: u.Name, Email: u.Email, Roles: roles}
}

func MapUsers(us []domainuser.User) UserListResponse {
	items := make([]UserResponse, 0, len(us))
	for i := range us {
		items = append(items, MapUser(&us[i]))
	}
	return UserListResponse{Items: items}
}
