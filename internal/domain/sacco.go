package domain

type Sacco struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	RegistrationNumber string    `json:"registration_number"`
	Location           string    `json:"location"`
	Region             string    `json:"region"`
	FoundedDate        string    `json:"founded_date,omitempty"`
	TotalMembers       int       `json:"total_members"`
	TotalAssets        float64   `json:"total_assets"`
	ContactEmail       string    `json:"contact_email,omitempty"`
	ContactPhone       string    `json:"contact_phone,omitempty"`
	LogoURL            string    `json:"logo,omitempty"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          Timestamp `json:"created_at,omitempty"`
}

type Membership struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"user_id"`
	SaccoID        int64   `json:"sacco_id"`
	SaccoName      string  `json:"sacco_name,omitempty"`
	MembershipID   string  `json:"membership_id,omitempty"`
	JoinDate       string  `json:"join_date,omitempty"`
	MembershipType string  `json:"membership_type,omitempty"`
	Shares         int     `json:"shares"`
	Savings        float64 `json:"savings"`
	IsActive       bool    `json:"is_active"`
}

type Loan struct {
	ID              int64   `json:"id"`
	SaccoID         int64   `json:"sacco_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	InterestRate    float64 `json:"interest_rate"`
	MinAmount       float64 `json:"min_amount"`
	MaxAmount       float64 `json:"max_amount"`
	RepaymentPeriod int     `json:"repayment_period"`
	IsActive        bool    `json:"is_active"`
}

// Loan application statuses. Disbursed and rejected are terminal.
const (
	LoanStatusPending    = "pending"
	LoanStatusProcessing = "processing"
	LoanStatusApproved   = "approved"
	LoanStatusRejected   = "rejected"
	LoanStatusDisbursed  = "disbursed"
)

var loanTransitions = map[string][]string{
	LoanStatusPending:    {LoanStatusProcessing, LoanStatusApproved, LoanStatusRejected},
	LoanStatusProcessing: {LoanStatusApproved, LoanStatusRejected},
	LoanStatusApproved:   {LoanStatusDisbursed, LoanStatusRejected},
}

// LoanStatusTransitionAllowed reports whether a loan application may move from
// one status to another. Terminal states never leave.
func LoanStatusTransitionAllowed(from, to string) bool {
	for _, next := range loanTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type LoanApplication struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	User             *User     `json:"user,omitempty"`
	LoanID           int64     `json:"loan_id"`
	SaccoID          int64     `json:"sacco_id"`
	Amount           float64   `json:"amount"`
	Purpose          string    `json:"purpose"`
	Period           int       `json:"period,omitempty"`
	Status           string    `json:"status"`
	ApplicationDate  Timestamp `json:"application_date"`
	ApprovalDate     Timestamp `json:"approval_date,omitempty"`
	DisbursementDate Timestamp `json:"disbursement_date,omitempty"`
	Collateral       string    `json:"collateral,omitempty"`
}
