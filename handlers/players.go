package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/auth"
	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/config"
	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/models"
	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/session"
)

func CreatePlayer(conn *gorm.DB, cfg *config.Config, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.Current(c).Kind != session.KindInstructor {
			c.Redirect(http.StatusSeeOther, "/instructor")
			return
		}

		firstName := strings.TrimSpace(c.PostForm("first_name"))
		lastName := strings.TrimSpace(c.PostForm("last_name"))

		ageGroup := c.PostForm("age_group")
		if !models.ValidAgeGroup(ageGroup) {
			ageGroup = models.AgeGroupDefault
		}

		var imageURL *string
		if file, err := c.FormFile("image"); err == nil && file.Filename != "" {
			name := auth.UploadName(file.Filename)
			if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
				log.Warn("upload dir not writable", zap.String("dir", cfg.UploadDir), zap.Error(err))
			} else if err := c.SaveUploadedFile(file, filepath.Join(cfg.UploadDir, name)); err != nil {
				log.Warn("saving player image failed", zap.String("file", name), zap.Error(err))
			} else {
				url := "/static/uploads/" + name
				imageURL = &url
			}
		}

		code, err := auth.NewLoginCode(conn)
		if err != nil {
			log.Error("minting login code failed", zap.Error(err))
			c.String(http.StatusInternalServerError, "Could not create player")
			return
		}

		player := models.Player{
			FirstName: firstName,
			LastName:  lastName,
			AgeGroup:  ageGroup,
			Email:     c.PostForm("email"),
			Phone:     c.PostForm("phone"),
			LoginCode: &code,
			ImageURL:  imageURL,
		}
		if err := conn.Create(&player).Error; err != nil {
			log.Error("creating player failed", zap.Error(err))
			c.String(http.StatusInternalServerError, "Could not create player")
			return
		}

		// Green banner on the clients page with the code to hand out.
		session.SetMessage(c, "Player created. Login code: "+code)
		c.Redirect(http.StatusSeeOther, "/instructor/clients")
	}
}
