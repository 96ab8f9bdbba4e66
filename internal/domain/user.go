package domain

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	UserType string `json:"user_type,omitempty"`
	Region   string `json:"region,omitempty"`
	IsActive bool   `json:"is_active,omitempty"`
}

type Profile struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	FullName   string `json:"full_name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	Bio        string `json:"bio,omitempty"`
	PictureURL string `json:"picture_url,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}
