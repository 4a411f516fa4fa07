package dto

type UserResponse struct {
	ID       string  `json:"id"`
	Email    *string `json:"email"`
	Name     string  `json:"name"`
	ImageURL *string `json:"image_url"`
}
