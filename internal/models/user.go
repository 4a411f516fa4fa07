package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     *string   `json:"email,omitempty"`
	Name      string    `json:"name"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
