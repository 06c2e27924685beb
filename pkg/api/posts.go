package api

import (
	"errors"
	"time"

	"miniblog/pkg/model"
	"miniblog/pkg/validate"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// postPayload is the full post body; like users, updates must carry every
// field.
type postPayload struct {
	Title   string     `json:"title" validate:"required"`
	Content string     `json:"content" validate:"required"`
	UserID  int64      `json:"userID" validate:"required,gt=0"`
	Date    *time.Time `json:"date"`
}

// ownerPayload carries the caller's claim of ownership on post mutation.
// The claim is an unauthenticated client-supplied value; anyone who knows
// the owner's id passes the check. Kept as-is because fixing it needs real
// authentication, which is out of scope.
type ownerPayload struct {
	UserID int64 `json:"userID"`
}

// CreatePost handles POST /api/posts. The referenced user must exist.
func (s *Server) CreatePost(ctx iris.Context) {
	var req postPayload
	if err := ctx.ReadJSON(&req); err != nil {
		fail(ctx, iris.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		fail(ctx, iris.StatusBadRequest, err.Error())
		return
	}

	if _, err := model.UserByID(s.db, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(ctx, iris.StatusNotFound, "user not found")
			return
		}
		s.storageFail(ctx, err)
		return
	}

	p := &model.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	}
	if req.Date != nil {
		p.Date = *req.Date
	}
	if err := model.CreatePost(s.db, p); err != nil {
		s.storageFail(ctx, err)
		return
	}

	ctx.JSON(p)
}

// UpdatePost handles PUT /api/posts/{id}. The body's userID must match the
// stored owner, else 403.
func (s *Server) UpdatePost(ctx iris.Context) {
	id, _ := ctx.Params().GetInt64("id")

	var req postPayload
	if err := ctx.ReadJSON(&req); err != nil {
		fail(ctx, iris.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		fail(ctx, iris.StatusBadRequest, err.Error())
		return
	}

	p, err := model.PostByID(s.db, id)
	if err != nil {
		s.lookupFail(ctx, err, "post not found")
		return
	}
	if p.UserID != req.UserID {
		fail(ctx, iris.StatusForbidden, "not the post owner")
		return
	}

	p.Title = req.Title
	p.Content = req.Content
	if req.Date != nil {
		p.Date = *req.Date
	}

	if err := model.SavePost(s.db, p); err != nil {
		s.storageFail(ctx, err)
		return
	}

	ctx.JSON(p)
}

// DeletePost handles DELETE /api/posts/{id}; same ownership rule, responds
// with the removed record.
func (s *Server) DeletePost(ctx iris.Context) {
	id, _ := ctx.Params().GetInt64("id")

	var req ownerPayload
	if err := ctx.ReadJSON(&req); err != nil {
		fail(ctx, iris.StatusBadRequest, "invalid request body")
		return
	}

	p, err := model.PostByID(s.db, id)
	if err != nil {
		s.lookupFail(ctx, err, "post not found")
		return
	}
	if p.UserID != req.UserID {
		fail(ctx, iris.StatusForbidden, "not the post owner")
		return
	}

	if err := model.DeletePost(s.db, p); err != nil {
		s.storageFail(ctx, err)
		return
	}

	ctx.JSON(p)
}

// ListPosts handles GET /api/posts.
func (s *Server) ListPosts(ctx iris.Context) {
	posts, err := model.AllPosts(s.db)
	if err != nil {
		s.storageFail(ctx, err)
		return
	}
	ctx.JSON(posts)
}

// ListPostsWithUsers handles GET /api/posts/withUsers, expanding each
// post's owner to the full user record.
func (s *Server) ListPostsWithUsers(ctx iris.Context) {
	posts, err := model.PostsWithUsers(s.db)
	if err != nil {
		s.storageFail(ctx, err)
		return
	}
	ctx.JSON(posts)
}

// ListPostsByDate handles GET /api/posts/sort, most recent first.
func (s *Server) ListPostsByDate(ctx iris.Context) {
	posts, err := model.PostsByDateDesc(s.db)
	if err != nil {
		s.storageFail(ctx, err)
		return
	}
	ctx.JSON(posts)
}
