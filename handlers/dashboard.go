package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/models"
	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/session"
)

// How many metric rows the dashboard chart shows.
const dashboardWindow = 20

// metricSeries turns an oldest-first metric window into the two
// index-aligned sequences the chart consumes: date labels and exit
// velocities rounded to one decimal (missing readings chart as 0).
func metricSeries(pts []models.Metric) (labels []string, evVals []float64) {
	labels = make([]string, 0, len(pts))
	evVals = make([]float64, 0, len(pts))
	for _, m := range pts {
		labels = append(labels, m.TakenAt.Format("Jan 02"))
		v := 0.0
		if m.ExitVelocity != nil {
			v = *m.ExitVelocity
		}
		evVals = append(evVals, math.Round(v*10)/10)
	}
	return labels, evVals
}

func PlayerDashboard(conn *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := session.Current(c)
		if ident.Kind != session.KindPlayer {
			c.Redirect(http.StatusSeeOther, "/player")
			return
		}

		var player models.Player
		if err := conn.First(&player, ident.ID).Error; err != nil {
			// Stale session pointing at a deleted player: back to login.
			c.Redirect(http.StatusSeeOther, "/player")
			return
		}

		var pts []models.Metric
		err := conn.Where("player_id = ?", player.ID).
			Order("taken_at DESC").
			Limit(dashboardWindow).
			Find(&pts).Error
		if err != nil {
			c.String(http.StatusInternalServerError, "Database error")
			return
		}

		// Newest-first window reversed so the line runs left to right.
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}

		labels, evVals := metricSeries(pts)

		var latest *models.Metric
		if len(pts) > 0 {
			latest = &pts[len(pts)-1]
		}

		c.HTML(http.StatusOK, "player_dashboard.html", gin.H{
			"Title":  "Dashboard",
			"Player": player,
			"Labels": labels,
			"EVVals": evVals,
			"Latest": latest,
		})
	}
}
