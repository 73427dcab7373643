package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/middleware"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/logger"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.UserHandler.Register)
			authGroup.POST("/login", group.UserHandler.Login)

			loggedGroup := authGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/logout", group.UserHandler.Logout)
				loggedGroup.GET("/me", group.UserHandler.Me)
			}
		}

		profileGroup := apiGroup.Group("/profile")
		profileGroup.Use(middleware.AuthMiddleware())
		{
			profileGroup.GET("", group.UserHandler.Me)
			profileGroup.PATCH("", group.UserHandler.UpdateProfile)
		}

		// Catalog endpoints are public.
		apiGroup.GET("/vehicles", group.VehicleHandler.ListVehicles)
		apiGroup.GET("/brand-models", group.VehicleHandler.ListBrandModels)
		apiGroup.GET("/issue-types", group.VehicleHandler.ListIssueTypes)

		myGroup := apiGroup.Group("/my")
		myGroup.Use(middleware.AuthMiddleware())
		{
			myGroup.GET("/vehicles", group.VehicleHandler.ListMyVehicles)
			myGroup.POST("/vehicles", group.VehicleHandler.CreateMyVehicle)
			myGroup.PATCH("/vehicles/:id", group.VehicleHandler.UpdateMyVehicle)
			myGroup.DELETE("/vehicles/:id", group.VehicleHandler.DeleteMyVehicle)

			myGroup.DELETE("/issues", group.IssueHandler.DeleteMyIssues)
			myGroup.GET("/follows", group.FollowHandler.ListMyFollows)
		}

		issueGroup := apiGroup.Group("/issues")
		{
			issueGroup.GET("", group.IssueHandler.ListIssues)
			issueGroup.POST("/similar", group.IssueHandler.FindSimilar)
			issueGroup.GET("/:id", group.IssueHandler.GetIssue)

			issueGroup.GET("/:id/comments", group.CommentHandler.ListComments)
			issueGroup.GET("/:id/updates", group.UpdateHandler.ListUpdates)
			issueGroup.GET("/:id/photos", group.MediaHandler.ListPhotos)
			issueGroup.GET("/:id/attachments", group.MediaHandler.ListAttachments)

			followGroup := issueGroup.Group("")
			followGroup.Use(middleware.AuthOptionalMiddleware())
			{
				followGroup.GET("/:id/follow", group.FollowHandler.GetFollowState)
			}

			writeGroup := issueGroup.Group("")
			writeGroup.Use(middleware.AuthMiddleware())
			{
				writeGroup.POST("", group.IssueHandler.CreateIssue)
				writeGroup.PATCH("/:id", group.IssueHandler.PatchIssue)
				writeGroup.DELETE("/:id", group.IssueHandler.DeleteIssue)

				writeGroup.POST("/:id/comments", group.CommentHandler.CreateComment)
				writeGroup.POST("/:id/updates", group.UpdateHandler.CreateUpdate)
				writeGroup.POST("/:id/photos", group.MediaHandler.UploadPhotos)
				writeGroup.POST("/:id/attachments", group.MediaHandler.UploadAttachments)

				writeGroup.POST("/:id/follow", group.FollowHandler.Follow)
				writeGroup.DELETE("/:id/follow", group.FollowHandler.Unfollow)
			}
		}

		apiGroup.GET("/users/:username/issues", group.IssueHandler.ListUserIssues)

		commentGroup := apiGroup.Group("/comments")
		commentGroup.Use(middleware.AuthMiddleware())
		{
			commentGroup.PATCH("/:commentId", group.CommentHandler.UpdateComment)
			commentGroup.DELETE("/:commentId", group.CommentHandler.DeleteComment)
		}

		updateGroup := apiGroup.Group("/updates")
		updateGroup.Use(middleware.AuthMiddleware())
		{
			updateGroup.PATCH("/:updateId", group.UpdateHandler.EditUpdate)
			updateGroup.DELETE("/:updateId", group.UpdateHandler.DeleteUpdate)
		}

		notificationGroup := apiGroup.Group("/me/notifications")
		notificationGroup.Use(middleware.AuthMiddleware())
		{
			notificationGroup.GET("", group.NotificationHandler.ListNotifications)
			notificationGroup.GET("/unread", group.NotificationHandler.UnreadCount)
			notificationGroup.POST("/read", group.NotificationHandler.MarkRead)
		}
	}

	return r
}
