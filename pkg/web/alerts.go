package web

import (
	"github.com/gin-gonic/gin"
)

// alertsHandler summarizes user monitoring and startup subscriptions
func (s *Server) alertsHandler(c *gin.Context) {
	alerts := s.store.Alerts()
	startup := s.store.StartupAlerts()

	ok(c, gin.H{
		"user_monitoring": gin.H{
			"monitored_users": nonNilRawMap(alerts.MonitoredUsers),
			"user_states":     nonNilRawMap(alerts.UserStates),
			"total_monitored": len(alerts.MonitoredUsers),
		},
		"startup_alerts": gin.H{
			"subscribed_users": nonNilStrings(startup.SubscribedUsers),
			"total_subscribed": len(startup.SubscribedUsers),
			"last_startup":     startup.LastStartup,
		},
	})
}
