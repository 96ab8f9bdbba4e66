package mockapi

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/constants"
)

func (svc *Server) listSaccos(ctx echo.Context) error {
	region := ctx.QueryParam("region")
	activeOnly := ctx.QueryParam("active_only") == "true"

	svc.store.mu.RLock()
	defer svc.store.mu.RUnlock()

	saccos := make([]domain.Sacco, 0, len(svc.store.saccos))
	for _, sacco := range svc.store.saccos {
		if region != "" && sacco.Region != region {
			continue
		}
		if activeOnly && !sacco.IsActive {
			continue
		}
		saccos = append(saccos, *sacco)
	}
	sort.Slice(saccos, func(i, j int) bool { return saccos[i].ID < saccos[j].ID })

	return ctx.JSON(http.StatusOK, echo.Map{"saccos": saccos})
}

func (svc *Server) getSacco(ctx echo.Context) error {
	svc.store.mu.RLock()
	sacco := svc.store.saccos[pathID(ctx)]
	svc.store.mu.RUnlock()
	if sacco == nil {
		return constants.ErrNotFound
	}
	return ctx.JSON(http.StatusOK, echo.Map{"sacco": sacco})
}

func (svc *Server) createSacco(ctx echo.Context) error {
	name := ctx.FormValue("name")
	registration := ctx.FormValue("registration_number")
	if name == "" || registration == "" {
		return constants.NewCodedError(http.StatusBadRequest, "name and registration_number are required")
	}

	svc.store.mu.Lock()
	sacco := &domain.Sacco{
		ID:                 svc.store.id(),
		Name:               name,
		Description:        ctx.FormValue("description"),
		RegistrationNumber: registration,
		Location:           ctx.FormValue("location"),
		Region:             ctx.FormValue("region"),
		FoundedDate:        ctx.FormValue("founded_date"),
		ContactEmail:       ctx.FormValue("contact_email"),
		ContactPhone:       ctx.FormValue("contact_phone"),
		IsActive:           true,
		CreatedAt:          ts(0),
	}
	if file, err := ctx.FormFile("logo"); err == nil {
		sacco.LogoURL = "/uploads/" + file.Filename
	}
	svc.store.saccos[sacco.ID] = sacco
	svc.store.mu.Unlock()

	return ctx.JSON(http.StatusCreated, echo.Map{"sacco": sacco})
}

func (svc *Server) updateSacco(ctx echo.Context) error {
	svc.store.mu.Lock()
	defer svc.store.mu.Unlock()

	sacco := svc.store.saccos[pathID(ctx)]
	if sacco == nil {
		return constants.ErrNotFound
	}
	if v := ctx.FormValue("name"); v != "" {
		sacco.Name = v
	}
	if v := ctx.FormValue("description"); v != "" {
		sacco.Description = v
	}
	if v := ctx.FormValue("location"); v != "" {
		sacco.Location = v
	}
	if v := ctx.FormValue("region"); v != "" {
		sacco.Region = v
	}
	if v := ctx.FormValue("contact_email"); v != "" {
		sacco.ContactEmail = v
	}
	if v := ctx.FormValue("contact_phone"); v != "" {
		sacco.ContactPhone = v
	}
	if file, err := ctx.FormFile("logo"); err == nil {
		sacco.LogoURL = "/uploads/" + file.Filename
	}

	return ctx.JSON(http.StatusOK, echo.Map{"sacco": sacco})
}

// deactivateSacco is one-way; there is no route to reactivate.
func (svc *Server) deactivateSacco(ctx echo.Context) error {
	svc.store.mu.Lock()
	defer svc.store.mu.Unlock()

	sacco := svc.store.saccos[pathID(ctx)]
	if sacco == nil {
		return constants.ErrNotFound
	}
	sacco.IsActive = false
	return ctx.JSON(http.StatusOK, echo.Map{"sacco": sacco})
}

func (svc *Server) joinSacco(ctx echo.Context) error {
	var req struct {
		MembershipType string `json:"membership_type"`
	}
	_ = ctx.Bind(&req)
	if req.MembershipType == "" {
		req.MembershipType = "regular"
	}

	svc.store.mu.Lock()
	defer svc.store.mu.Unlock()

	sacco := svc.store.saccos[pathID(ctx)]
	if sacco == nil {
		return constants.ErrNotFound
	}
	userID := currentUserID(ctx)
	for _, m := range svc.store.memberships {
		if m.SaccoID == sacco.ID && m.UserID == userID {
			return constants.NewCodedError(http.StatusConflict, "already a member")
		}
	}

	membership := &domain.Membership{
		ID:             svc.store.id(),
		UserID:         userID,
		SaccoID:        sacco.ID,
		SaccoName:      sacco.Name,
		MembershipID:   newMembershipID(),
		MembershipType: req.MembershipType,
		IsActive:       true,
	}
	svc.store.memberships[membership.ID] = membership
	sacco.TotalMembers++

	return ctx.JSON(http.StatusCreated, echo.Map{"membership": membership})
}

func (svc *Server) memberships(ctx echo.Context) error {
	svc.store.mu.RLock()
	defer svc.store.mu.RUnlock()

	userID := currentUserID(ctx)
	memberships := make([]domain.Membership, 0)
	for _, m := range svc.store.memberships {
		if m.UserID == userID {
			memberships = append(memberships, *m)
		}
	}
	sort.Slice(memberships, func(i, j int) bool { return memberships[i].ID < memberships[j].ID })

	return ctx.JSON(http.StatusOK, echo.Map{"memberships": memberships})
}

func (svc *Server) saccoMembers(ctx echo.Context) error {
	svc.store.mu.RLock()
	defer svc.store.mu.RUnlock()

	saccoID := pathID(ctx)
	members := make([]domain.Membership, 0)
	for _, m := range svc.store.memberships {
		if m.SaccoID == saccoID {
			members = append(members, *m)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })

	return ctx.JSON(http.StatusOK, echo.Map{"members": members})
}

func (svc *Server) saccoLoans(ctx echo.Context) error {
	svc.store.mu.RLock()
	defer svc.store.mu.RUnlock()

	saccoID := pathID(ctx)
	loans := make([]domain.Loan, 0)
	for _, loan := range svc.store.loans {
		if loan.SaccoID == saccoID {
			loans = append(loans, *loan)
		}
	}
	sort.Slice(loans, func(i, j int) bool { return loans[i].ID < loans[j].ID })

	return ctx.JSON(http.StatusOK, echo.Map{"loans": loans})
}

func (svc *Server) loanApplications(ctx echo.Context) error {
	status := ctx.QueryParam("status")

	svc.store.mu.RLock()
	defer svc.store.mu.RUnlock()

	saccoID := pathID(ctx)
	applications := make([]domain.LoanApplication, 0)
	for _, app := range svc.store.applications {
		if app.SaccoID != saccoID {
			continue
		}
		if status != "" && app.Status != status {
			continue
		}
		applications = append(applications, *app)
	}
	sort.Slice(applications, func(i, j int) bool { return applications[i].ID < applications[j].ID })

	return ctx.JSON(http.StatusOK, echo.Map{"applications": applications})
}

type loanApplicationRequest struct {
	LoanID     int64   `json:"loan_id" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Purpose    string  `json:"purpose" validate:"required"`
	Period     int     `json:"period"`
	Collateral string  `json:"collateral"`
}

func (svc *Server) applyForLoan(ctx echo.Context) error {
	var req loanApplicationRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	svc.store.mu.Lock()
	defer svc.store.mu.Unlock()

	saccoID := pathID(ctx)
	if svc.store.saccos[saccoID] == nil {
		return constants.ErrNotFound
	}
	loan := svc.store.loans[req.LoanID]
	if loan == nil || loan.SaccoID != saccoID {
		return constants.NewCodedError(http.StatusBadRequest, "unknown loan product")
	}
	if req.Amount < loan.MinAmount || req.Amount > loan.MaxAmount {
		return constants.NewCodedError(http.StatusBadRequest, "amount outside loan limits")
	}

	app := &domain.LoanApplication{
		ID:              svc.store.id(),
		UserID:          currentUserID(ctx),
		LoanID:          req.LoanID,
		SaccoID:         saccoID,
		Amount:          req.Amount,
		Purpose:         req.Purpose,
		Period:          req.Period,
		Collateral:      req.Collateral,
		Status:          domain.LoanStatusPending,
		ApplicationDate: ts(0),
	}
	if user := svc.store.users[app.UserID]; user != nil {
		app.User = &user.User
	}
	svc.store.applications[app.ID] = app

	return ctx.JSON(http.StatusCreated, echo.Map{"application": app})
}

func (svc *Server) updateLoanStatus(ctx echo.Context) error {
	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	svc.store.mu.Lock()
	defer svc.store.mu.Unlock()

	app := svc.store.applications[pathID(ctx)]
	if app == nil {
		return constants.ErrNotFound
	}
	if !domain.LoanStatusTransitionAllowed(app.Status, req.Status) {
		return constants.NewCodedError(http.StatusConflict, "illegal loan status transition")
	}

	app.Status = req.Status
	switch req.Status {
	case domain.LoanStatusApproved:
		app.ApprovalDate = ts(0)
	case domain.LoanStatusDisbursed:
		app.DisbursementDate = ts(0)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"application": app})
}
