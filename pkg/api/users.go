package api

import (
	"errors"
	"strconv"

	"miniblog/pkg/model"
	"miniblog/pkg/validate"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// userPayload is the full user body. Updates re-validate the whole thing,
// so every field must be supplied even for a partial change.
type userPayload struct {
	UserName string `json:"userName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Age      *int64 `json:"age" validate:"required,gte=0"`
	Gender   string `json:"gender" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

// SignupUser handles POST /api/users/signup.
func (s *Server) SignupUser(ctx iris.Context) {
	var req userPayload
	if err := ctx.ReadJSON(&req); err != nil {
		fail(ctx, iris.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		fail(ctx, iris.StatusBadRequest, err.Error())
		return
	}

	taken, err := model.EmailTaken(s.db, req.Email)
	if err != nil {
		s.storageFail(ctx, err)
		return
	}
	if taken {
		fail(ctx, iris.StatusBadRequest, "email already exists")
		return
	}

	u := &model.User{
		UserName: req.UserName,
		Email:    req.Email,
		Password: s.cred.Seal(req.Password),
		Age:      *req.Age,
		Gender:   req.Gender,
		Phone:    req.Phone,
	}
	if err := model.CreateUser(s.db, u); err != nil {
		// a concurrent signup can slip past the pre-check; the unique
		// index still holds the invariant
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fail(ctx, iris.StatusBadRequest, "email already exists")
			return
		}
		s.storageFail(ctx, err)
		return
	}

	ctx.JSON(u)
}

// UpdateUser handles PUT /api/users/{id}.
func (s *Server) UpdateUser(ctx iris.Context) {
	id, _ := ctx.Params().GetInt64("id")

	var req userPayload
	if err := ctx.ReadJSON(&req); err != nil {
		fail(ctx, iris.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		fail(ctx, iris.StatusBadRequest, err.Error())
		return
	}

	u, err := model.UserByID(s.db, id)
	if err != nil {
		s.lookupFail(ctx, err, "user not found")
		return
	}

	u.UserName = req.UserName
	u.Email = req.Email
	u.Password = s.cred.Seal(req.Password)
	u.Age = *req.Age
	u.Gender = req.Gender
	u.Phone = req.Phone

	if err := model.SaveUser(s.db, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fail(ctx, iris.StatusBadRequest, "email already exists")
			return
		}
		s.storageFail(ctx, err)
		return
	}

	ctx.JSON(u)
}

// DeleteUser handles DELETE /api/users/{id}; responds with the removed record.
func (s *Server) DeleteUser(ctx iris.Context) {
	id, _ := ctx.Params().GetInt64("id")

	u, err := model.UserByID(s.db, id)
	if err != nil {
		s.lookupFail(ctx, err, "user not found")
		return
	}

	if err := model.DeleteUser(s.db, u); err != nil {
		s.storageFail(ctx, err)
		return
	}

	ctx.JSON(u)
}

// ListUsers handles GET /api/users.
func (s *Server) ListUsers(ctx iris.Context) {
	users, err := model.AllUsers(s.db)
	if err != nil {
		s.storageFail(ctx, err)
		return
	}
	ctx.JSON(users)
}

// SearchUsers handles GET /api/users/search?nameStartsWith=&maxAge=.
// Absent or unparsable parameters leave their clause unset: an empty prefix
// matches every name, a missing maxAge applies no age bound.
func (s *Server) SearchUsers(ctx iris.Context) {
	prefix := ctx.URLParam("nameStartsWith")
	maxAge := int64Param(ctx, "maxAge")

	users, err := model.SearchUsers(s.db, prefix, maxAge)
	if err != nil {
		s.storageFail(ctx, err)
		return
	}
	ctx.JSON(users)
}

// SearchUsersByAge handles GET /api/users/search/age?minAge=&maxAge=.
// Both bounds are inclusive.
func (s *Server) SearchUsersByAge(ctx iris.Context) {
	minAge := int64Param(ctx, "minAge")
	maxAge := int64Param(ctx, "maxAge")

	users, err := model.UsersByAgeRange(s.db, minAge, maxAge)
	if err != nil {
		s.storageFail(ctx, err)
		return
	}
	ctx.JSON(users)
}

// UserProfile handles GET /api/users/{id}/profile, returning the user with
// their posts resolved through the reverse lookup on Post.UserID.
func (s *Server) UserProfile(ctx iris.Context) {
	id, _ := ctx.Params().GetInt64("id")

	u, err := model.UserWithPosts(s.db, id)
	if err != nil {
		s.lookupFail(ctx, err, "user not found")
		return
	}

	ctx.JSON(u)
}

// int64Param returns the query parameter as an int64, or nil when it is
// absent or not a number.
func int64Param(ctx iris.Context, name string) *int64 {
	raw := ctx.URLParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
