package controllers

import (
	"github.com/gin-gonic/gin"

	"sita-api/config"
	"sita-api/middleware"
	"sita-api/services"
	"sita-api/utils"
)

func notifications() *services.NotificationService {
	return services.NewNotificationService(config.DB)
}

// GetNotifications lists the caller's notifications, newest first.
func GetNotifications(c *gin.Context) {
	items, err := notifications().ListForUser(middleware.CurrentUserID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "", items)
}

func MarkNotificationRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	n, err := notifications().MarkRead(id, middleware.CurrentUserID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "Notification marked as read", n)
}

func MarkAllNotificationsRead(c *gin.Context) {
	if err := notifications().MarkAllRead(middleware.CurrentUserID(c)); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "All notifications marked as read", nil)
}

func GetUnreadCount(c *gin.Context) {
	count, err := notifications().UnreadCount(middleware.CurrentUserID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.OK(c, "", gin.H{"count": count})
}
