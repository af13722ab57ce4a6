package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/db"
	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/models"
	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/session"
)

func Landing() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "landing.html", gin.H{
			"Title": "Hit4Power",
		})
	}
}

func InstructorLoginForm(conn *gorm.DB, defaultCode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// First-run seed so the deployment code works on a fresh database.
		db.SeedInstructor(conn, defaultCode)

		c.HTML(http.StatusOK, "instructor_login.html", gin.H{
			"Title": "Instructor Login",
		})
	}
}

func InstructorLogin(conn *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := strings.TrimSpace(c.PostForm("code"))

		var coach models.Instructor
		if err := conn.Where("login_code = ?", code).First(&coach).Error; err != nil {
			// One generic message whatever went wrong.
			c.HTML(http.StatusOK, "instructor_login.html", gin.H{
				"Title": "Instructor Login",
				"Error": "Invalid login code.",
			})
			return
		}

		session.SetInstructor(c, coach.ID)
		c.Redirect(http.StatusSeeOther, "/instructor/clients")
	}
}

func PlayerLoginForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "player_login.html", gin.H{
			"Title": "Player Login",
		})
	}
}

func PlayerLogin(conn *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := strings.TrimSpace(c.PostForm("code"))

		var player models.Player
		if err := conn.Where("login_code = ?", code).First(&player).Error; err != nil {
			c.HTML(http.StatusOK, "player_login.html", gin.H{
				"Title": "Player Login",
				"Error": "Invalid login code.",
			})
			return
		}

		session.SetPlayer(c, player.ID)
		c.Redirect(http.StatusSeeOther, "/player/dashboard")
	}
}

func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		session.Clear(c)
		c.Redirect(http.StatusSeeOther, "/")
	}
}
