package users

import "calcHub/internal/domain"

// UpdateProfileRequest — частичное обновление профиля: nil-поле не трогается.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Username  *string `json:"username"`
}

// Patch переводит запрос в доменный патч профиля.
func (r *UpdateProfileRequest) Patch() domain.ProfilePatch {
	return domain.ProfilePatch{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Username:  r.Username,
	}
}

// ErrorResponse — тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
