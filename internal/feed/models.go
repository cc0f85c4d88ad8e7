package feed

import "time"

type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio,omitempty"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
}

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	User      User      `json:"user"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption"`
	Likes     int       `json:"likes"`
	Comments  []Comment `json:"comments"`
	Timestamp time.Time `json:"timestamp"`
	LikedByMe bool      `json:"liked_by_me"`
}

type Story struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	HasUnseen bool   `json:"has_unseen"`
}

// ImagePayload is a decoded self-describing image: mime type plus raw bytes.
type ImagePayload struct {
	MimeType string
	Data     []byte
}
