package mockapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/constants"
)

func (svc *Server) userOverview(ctx echo.Context) error {
	svc.store.mu.RLock()
	defer svc.store.mu.RUnlock()

	userID := currentUserID(ctx)
	user := svc.store.users[userID]
	if user == nil {
		return constants.ErrNotFound
	}

	overview := domain.UserOverview{User: &user.User}
	for _, post := range svc.store.posts {
		if post.UserID != userID {
			continue
		}
		if post.Status == domain.PostStatusActive {
			overview.ActivePosts++
		}
		overview.TotalInterest += post.InterestCount
	}
	for _, m := range svc.store.memberships {
		if m.UserID == userID {
			overview.Memberships++
			overview.TotalSavings += m.Savings
		}
	}

	return ctx.JSON(http.StatusOK, overview)
}

func (svc *Server) adminOverview(ctx echo.Context) error {
	svc.store.mu.RLock()
	defer svc.store.mu.RUnlock()

	var overview domain.AdminOverview
	for _, user := range svc.store.users {
		if user.UserType != constants.UserTypeUser {
			continue
		}
		overview.TotalUsers++
		if user.IsActive {
			overview.ActiveUsers++
		}
	}
	overview.TotalPosts = len(svc.store.posts)
	for _, post := range svc.store.posts {
		if !post.Approved {
			overview.PendingApprovals++
		}
	}
	overview.TotalSaccos = len(svc.store.saccos)
	for _, sacco := range svc.store.saccos {
		if sacco.IsActive {
			overview.ActiveSaccos++
		}
	}
	for _, app := range svc.store.applications {
		if app.Status == domain.LoanStatusPending {
			overview.PendingLoans++
		}
	}

	return ctx.JSON(http.StatusOK, overview)
}
