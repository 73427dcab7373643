package wire

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cbozkurt0671/ev-problem-tracker/internal/api"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/api/handler"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/job"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/pkg/cron"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/repository"
	"github.com/cbozkurt0671/ev-problem-tracker/internal/service"
)

// ApplicationContainer holds every top level component the process runs.
type ApplicationContainer struct {
	Router      *gin.Engine
	DB          *gorm.DB
	CronManager *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	vehicleRepo := repository.NewVehicleRepo(db)
	userVehicleRepo := repository.NewUserVehicleRepo(db)
	issueRepo := repository.NewIssueRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	updateRepo := repository.NewIssueUpdateRepo(db)
	mediaRepo := repository.NewMediaRepo(db)
	followerRepo := repository.NewFollowerRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)

	notifierService := service.NewNotifierService(followerRepo, notificationRepo)
	userService := service.NewUserService(userRepo)
	vehicleService := service.NewVehicleService(vehicleRepo, userVehicleRepo)
	issueService := service.NewIssueService(
		issueRepo,
		vehicleRepo,
		userRepo,
		commentRepo,
		updateRepo,
		mediaRepo,
		followerRepo,
		notificationRepo,
		notifierService,
	)
	similarityService := service.NewSimilarityService(issueRepo)
	commentService := service.NewCommentService(commentRepo, issueRepo, notifierService)
	updateService := service.NewUpdateService(updateRepo, issueRepo, notifierService)
	mediaService := service.NewMediaService(mediaRepo, issueRepo, notifierService)
	followService := service.NewFollowService(followerRepo, issueRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		VehicleHandler:      handler.NewVehicleHandler(vehicleService),
		IssueHandler:        handler.NewIssueHandler(issueService, similarityService),
		CommentHandler:      handler.NewCommentHandler(commentService),
		UpdateHandler:       handler.NewUpdateHandler(updateService),
		MediaHandler:        handler.NewMediaHandler(mediaService),
		FollowHandler:       handler.NewFollowHandler(followService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
	}

	router := api.SetupRouter(handlers)

	orphanSweepJob := job.NewOrphanSweepJob(followerRepo, notificationRepo, updateRepo)
	cronManager := cron.NewCronManager(orphanSweepJob)

	return &ApplicationContainer{
		Router:      router,
		DB:          db,
		CronManager: cronManager,
	}, nil
}
