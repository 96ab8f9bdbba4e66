package mockapi

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/constants"
)

func pathID(ctx echo.Context) int64 {
	id, _ := strconv.ParseInt(ctx.Param("id"), 10, 64)
	return id
}

func (svc *Server) listPosts(ctx echo.Context) error {
	q := ctx.QueryParams()
	category := q.Get("category")
	region := q.Get("region")
	postType := q.Get("type")
	status := q.Get("status")
	userID, _ := strconv.ParseInt(q.Get("user_id"), 10, 64)
	approvedOnly := q.Get("approved_only") == "true"

	svc.store.mu.RLock()
	defer svc.store.mu.RUnlock()

	posts := make([]domain.MarketPost, 0, len(svc.store.posts))
	for _, post := range svc.store.posts {
		if category != "" && post.Category != category {
			continue
		}
		if region != "" && post.Region != region {
			continue
		}
		if postType != "" && post.Type != postType {
			continue
		}
		if status != "" && post.Status != status {
			continue
		}
		if userID != 0 && post.UserID != userID {
			continue
		}
		if approvedOnly && !post.Approved {
			continue
		}
		posts = append(posts, *post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })

	return ctx.JSON(http.StatusOK, echo.Map{"posts": posts})
}

func (svc *Server) getPost(ctx echo.Context) error {
	svc.store.mu.RLock()
	post := svc.store.posts[pathID(ctx)]
	svc.store.mu.RUnlock()
	if post == nil {
		return constants.ErrNotFound
	}
	return ctx.JSON(http.StatusOK, echo.Map{"post": post})
}

func (svc *Server) createPost(ctx echo.Context) error {
	title := ctx.FormValue("title")
	description := ctx.FormValue("description")
	if title == "" || description == "" {
		return constants.NewCodedError(http.StatusBadRequest, "title and description are required")
	}
	price, _ := strconv.ParseFloat(ctx.FormValue("price"), 64)
	quantity, _ := strconv.ParseFloat(ctx.FormValue("quantity"), 64)

	postType := ctx.FormValue("type")
	if postType == "" {
		postType = domain.PostTypeProduct
	}
	status := ctx.FormValue("status")
	if status == "" {
		status = domain.PostStatusPending
	}

	svc.store.mu.Lock()
	post := &domain.MarketPost{
		ID:          svc.store.id(),
		UserID:      currentUserID(ctx),
		Title:       title,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		Unit:        ctx.FormValue("unit"),
		Category:    ctx.FormValue("category"),
		Location:    ctx.FormValue("location"),
		Region:      ctx.FormValue("region"),
		Type:        postType,
		Status:      status,
		Priority:    ctx.FormValue("priority"),
		CreatedAt:   ts(0),
	}
	if form, err := ctx.MultipartForm(); err == nil {
		for _, file := range form.File["images"] {
			post.Images = append(post.Images, domain.PostImage{
				ID:           svc.store.id(),
				MarketPostID: post.ID,
				ImageURL:     "/uploads/" + file.Filename,
			})
		}
	}
	svc.store.posts[post.ID] = post
	svc.store.mu.Unlock()

	return ctx.JSON(http.StatusCreated, echo.Map{"post": post})
}

func (svc *Server) updatePost(ctx echo.Context) error {
	var fields map[string]interface{}
	if err := (&echo.DefaultBinder{}).BindBody(ctx, &fields); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}

	svc.store.mu.Lock()
	defer svc.store.mu.Unlock()

	post := svc.store.posts[pathID(ctx)]
	if post == nil {
		return constants.ErrNotFound
	}
	if v, ok := fields["title"].(string); ok {
		post.Title = v
	}
	if v, ok := fields["description"].(string); ok {
		post.Description = v
	}
	if v, ok := fields["status"].(string); ok {
		post.Status = v
	}
	if v, ok := fields["priority"].(string); ok {
		post.Priority = v
	}
	if v, ok := fields["price"].(float64); ok {
		post.Price = v
	}
	if v, ok := fields["quantity"].(float64); ok {
		post.Quantity = v
	}
	post.UpdatedAt = ts(0)

	return ctx.JSON(http.StatusOK, echo.Map{"post": post})
}

func (svc *Server) deletePost(ctx echo.Context) error {
	svc.store.mu.Lock()
	defer svc.store.mu.Unlock()

	id := pathID(ctx)
	if svc.store.posts[id] == nil {
		return constants.ErrNotFound
	}
	delete(svc.store.posts, id)
	return ctx.JSON(http.StatusOK, echo.Map{"success": true})
}

func (svc *Server) approvePost(ctx echo.Context) error {
	svc.store.mu.Lock()
	defer svc.store.mu.Unlock()

	post := svc.store.posts[pathID(ctx)]
	if post == nil {
		return constants.ErrNotFound
	}
	post.Approved = true
	post.Status = domain.PostStatusActive
	return ctx.JSON(http.StatusOK, echo.Map{"post": post})
}

func (svc *Server) expressInterest(ctx echo.Context) error {
	var req struct {
		Message string `json:"message"`
	}
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	svc.store.mu.Lock()
	defer svc.store.mu.Unlock()

	post := svc.store.posts[pathID(ctx)]
	if post == nil {
		return constants.ErrNotFound
	}
	user := svc.store.users[currentUserID(ctx)]

	interest := &domain.Interest{
		ID:        svc.store.id(),
		PostID:    post.ID,
		Message:   req.Message,
		CreatedAt: ts(0),
	}
	if user != nil {
		interest.User = &user.User
	}
	svc.store.interests[interest.ID] = interest
	post.InterestCount++

	return ctx.JSON(http.StatusCreated, echo.Map{"interest": interest})
}

func (svc *Server) postInterests(ctx echo.Context) error {
	svc.store.mu.RLock()
	defer svc.store.mu.RUnlock()

	id := pathID(ctx)
	interests := make([]domain.Interest, 0)
	for _, interest := range svc.store.interests {
		if interest.PostID == id {
			interests = append(interests, *interest)
		}
	}
	sort.Slice(interests, func(i, j int) bool { return interests[i].ID < interests[j].ID })

	return ctx.JSON(http.StatusOK, echo.Map{"interests": interests})
}

func (svc *Server) acceptInterest(ctx echo.Context) error {
	svc.store.mu.Lock()
	defer svc.store.mu.Unlock()

	interest := svc.store.interests[pathID(ctx)]
	if interest == nil {
		return constants.ErrNotFound
	}
	interest.Accepted = true
	if post := svc.store.posts[interest.PostID]; post != nil {
		post.Status = domain.PostStatusClosed
	}
	return ctx.JSON(http.StatusOK, echo.Map{"interest": interest})
}

func (svc *Server) marketStats(ctx echo.Context) error {
	svc.store.mu.RLock()
	defer svc.store.mu.RUnlock()

	var stats domain.MarketStats
	stats.TotalPosts = len(svc.store.posts)
	for _, post := range svc.store.posts {
		if post.Status == domain.PostStatusActive {
			stats.ActivePosts++
		}
		if !post.Approved {
			stats.PendingApprovals++
		}
	}
	stats.TotalInterests = len(svc.store.interests)

	return ctx.JSON(http.StatusOK, echo.Map{"stats": stats})
}

func (svc *Server) listNeeds(ctx echo.Context) error {
	status := ctx.QueryParam("status")
	if status == "" {
		status = domain.PostStatusActive
	}

	svc.store.mu.RLock()
	defer svc.store.mu.RUnlock()

	needs := make([]domain.MarketPost, 0)
	for _, post := range svc.store.posts {
		if post.Type != domain.PostTypeNeed || post.Status != status {
			continue
		}
		needs = append(needs, *post)
	}
	sort.Slice(needs, func(i, j int) bool { return needs[i].ID < needs[j].ID })

	return ctx.JSON(http.StatusOK, echo.Map{"needs": needs})
}
