package domain

// Post types.
const (
	PostTypeProduct = "product"
	PostTypeNeed    = "need"
)

// Post statuses.
const (
	PostStatusActive   = "active"
	PostStatusClosed   = "closed"
	PostStatusPending  = "pending"
	PostStatusRejected = "rejected"
)

type MarketPost struct {
	ID            int64       `json:"id"`
	UserID        int64       `json:"user_id"`
	User          *User       `json:"user,omitempty"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Price         float64     `json:"price"`
	Quantity      float64     `json:"quantity"`
	Unit          string      `json:"unit"`
	Category      string      `json:"category"`
	Location      string      `json:"location"`
	Region        string      `json:"region"`
	Type          string      `json:"type"`
	Status        string      `json:"status"`
	Approved      bool        `json:"approved"`
	Priority      string      `json:"priority,omitempty"`
	InterestCount int         `json:"interest_count"`
	ViewCount     int         `json:"view_count"`
	Images        []PostImage `json:"images,omitempty"`
	CreatedAt     Timestamp   `json:"created_at"`
	UpdatedAt     Timestamp   `json:"updated_at,omitempty"`
}

type PostImage struct {
	ID           int64  `json:"id"`
	MarketPostID int64  `json:"market_post_id"`
	ImageURL     string `json:"image_url"`
	Caption      string `json:"caption,omitempty"`
}

type Interest struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	User      *User     `json:"user,omitempty"`
	Message   string    `json:"message,omitempty"`
	Accepted  bool      `json:"accepted"`
	CreatedAt Timestamp `json:"created_at"`
}

type MarketStats struct {
	TotalPosts       int `json:"total_posts"`
	ActivePosts      int `json:"active_posts"`
	PendingApprovals int `json:"pending_approvals"`
	TotalInterests   int `json:"total_interests"`
}
