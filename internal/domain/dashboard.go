package domain

// UserOverview is the /dashboard/user/overview payload.
type UserOverview struct {
	User          *User   `json:"user,omitempty"`
	ActivePosts   int     `json:"active_posts"`
	TotalInterest int     `json:"total_interests"`
	Memberships   int     `json:"sacco_memberships"`
	PendingOrders int     `json:"pending_orders"`
	TotalSavings  float64 `json:"total_savings"`
	UnreadCount   int     `json:"unread_messages"`
}

// AdminOverview is the /dashboard/admin/overview payload.
type AdminOverview struct {
	TotalUsers       int     `json:"total_users"`
	ActiveUsers      int     `json:"active_users"`
	TotalPosts       int     `json:"total_posts"`
	PendingApprovals int     `json:"pending_approvals"`
	TotalSaccos      int     `json:"total_saccos"`
	ActiveSaccos     int     `json:"active_saccos"`
	PendingLoans     int     `json:"pending_loans"`
	OrdersToday      int     `json:"orders_today"`
	Revenue          float64 `json:"revenue"`
}

type Policy struct {
	Title   string `json:"title"`
	Summary string `json:"summary,omitempty"`
}

type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Enabled     bool   `json:"enabled"`
}
