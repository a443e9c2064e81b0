package router

import (
	"bloggers/internal/api/handler"
	"bloggers/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	followHandler *handler.FollowHandler,
	blogHandler *handler.BlogHandler,
	commentHandler *handler.CommentHandler,
	likeHandler *handler.LikeHandler,
	searchHandler *handler.SearchHandler,
) {
	// --- 认证 ---
	r.POST("/users", authHandler.Register)
	r.POST("/token", authHandler.Token)

	// --- 用户模块 ---
	users := r.Group("/users", middleware.AuthRequired())
	{
		users.GET("/me", authHandler.Me)
		users.POST("/me/avatar", userHandler.UploadAvatar)

		users.POST("/follow/:username", followHandler.Follow)
		users.DELETE("/unfollow/:username", followHandler.Unfollow)
	}

	// --- 博客模块 ---
	blogs := r.Group("/blogs")
	{
		// 公开接口（不需要登录）
		blogs.GET("/all-blogs", blogHandler.AllBlogs)
		blogs.GET("/search", searchHandler.Search)

		// 需要登录的接口
		blogsAuth := blogs.Group("", middleware.AuthRequired())
		{
			blogsAuth.POST("", blogHandler.Create)
			blogsAuth.GET("/my-blogs", blogHandler.MyBlogs)
			blogsAuth.GET("/timeline", blogHandler.Timeline)
			blogsAuth.GET("/:id", blogHandler.GetDetail)
			blogsAuth.DELETE("/:id", blogHandler.Delete)

			blogsAuth.POST("/comment/:id", commentHandler.Create)
			blogsAuth.POST("/like/:id", likeHandler.Like)
			blogsAuth.DELETE("/unlike/:id", likeHandler.Unlike)
		}
	}
}
