// Package api exposes the JSON HTTP surface for users and posts.
package api

import (
	"errors"

	"miniblog/pkg/credential"
	"miniblog/pkg/info"
	"miniblog/pkg/xlog"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

var logger = xlog.GetLogger()

// Server holds what every handler needs: the database handle and the
// credential policy, passed in explicitly at construction.
type Server struct {
	db   *gorm.DB
	cred credential.Sealer
}

// NewApp builds the iris application with all routes registered.
func NewApp(db *gorm.DB, cred credential.Sealer) *iris.Application {
	s := &Server{db: db, cred: cred}

	app := iris.New()
	app.Use(RequestID)

	api := app.Party("/api")
	api.Get("/health", s.Health)

	users := api.Party("/users")
	users.Post("/signup", s.SignupUser)
	users.Get("/", s.ListUsers)
	users.Get("/search", s.SearchUsers)
	users.Get("/search/age", s.SearchUsersByAge)
	users.Get("/{id:int64}/profile", s.UserProfile)
	users.Put("/{id:int64}", s.UpdateUser)
	users.Delete("/{id:int64}", s.DeleteUser)

	posts := api.Party("/posts")
	posts.Post("/", s.CreatePost)
	posts.Get("/", s.ListPosts)
	posts.Get("/withUsers", s.ListPostsWithUsers)
	posts.Get("/sort", s.ListPostsByDate)
	posts.Put("/{id:int64}", s.UpdatePost)
	posts.Delete("/{id:int64}", s.DeletePost)

	return app
}

// Health reports liveness plus build info.
func (s *Server) Health(ctx iris.Context) {
	ctx.JSON(iris.Map{
		"status":   "ok",
		"version":  info.Version,
		"gitRev":   info.GitRev,
		"instance": info.InstanceID,
	})
}

// fail writes the error envelope and stops the handler chain.
func fail(ctx iris.Context, status int, msg string) {
	ctx.StopWithJSON(status, iris.Map{"message": msg})
}

// lookupFail maps a read error to 404 when the record is simply absent,
// and to a generic 500 otherwise.
func (s *Server) lookupFail(ctx iris.Context, err error, notFoundMsg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(ctx, iris.StatusNotFound, notFoundMsg)
		return
	}
	s.storageFail(ctx, err)
}

// storageFail logs the real error and leaks nothing to the caller.
func (s *Server) storageFail(ctx iris.Context, err error) {
	logger.Errorf("%s %s storage err:%s", ctx.Method(), ctx.Path(), err)
	fail(ctx, iris.StatusInternalServerError, "internal server error")
}
