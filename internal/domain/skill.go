package domain

type SkillCategory struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Skill struct {
	ID          int64        `json:"id"`
	CategoryID  int64        `json:"category_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Content     string       `json:"content,omitempty"`
	Videos      []SkillVideo `json:"videos,omitempty"`
	CreatedAt   Timestamp    `json:"created_at,omitempty"`
}

type SkillVideo struct {
	ID       int64  `json:"id"`
	SkillID  int64  `json:"skill_id"`
	Title    string `json:"title,omitempty"`
	VideoURL string `json:"video_url"`
}
