package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/models"
	"github.com/road2gameday-tech/Hit4Power-Player-Development-Tool-1/session"
)

// ClientSummary is the wire shape for the "my clients" list returned
// by the favorite toggle.
type ClientSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	AgeGroup string `json:"age_group"`
}

// groupPlayersByAge files every player under exactly one display
// bucket. Unknown age groups land in "18+".
func groupPlayersByAge(players []models.Player) map[string][]models.Player {
	grouped := make(map[string][]models.Player, len(models.AgeGroups))
	for _, g := range models.AgeGroups {
		grouped[g] = []models.Player{}
	}
	for _, p := range players {
		key := p.AgeGroup
		if !models.ValidAgeGroup(key) {
			key = models.AgeGroupFallback
		}
		grouped[key] = append(grouped[key], p)
	}
	return grouped
}

func favoriteIDs(conn *gorm.DB, instructorID uint) (map[uint]bool, error) {
	var ids []uint
	err := conn.Model(&models.InstructorFavorite{}).
		Where("instructor_id = ?", instructorID).
		Pluck("player_id", &ids).Error
	if err != nil {
		return nil, err
	}
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func myClients(conn *gorm.DB, instructorID uint) ([]models.Player, error) {
	var players []models.Player
	err := conn.Model(&models.Player{}).
		Joins("JOIN instructor_favorites ON instructor_favorites.player_id = players.id").
		Where("instructor_favorites.instructor_id = ?", instructorID).
		Order("players.last_name, players.first_name").
		Find(&players).Error
	return players, err
}

func ClientsPage(conn *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := session.Current(c)
		if ident.Kind != session.KindInstructor {
			c.Redirect(http.StatusSeeOther, "/instructor")
			return
		}

		var players []models.Player
		if err := conn.Order("last_name, first_name").Find(&players).Error; err != nil {
			c.String(http.StatusInternalServerError, "Database error")
			return
		}

		favs, err := favoriteIDs(conn, ident.ID)
		if err != nil {
			c.String(http.StatusInternalServerError, "Database error")
			return
		}

		mine, err := myClients(conn, ident.ID)
		if err != nil {
			c.String(http.StatusInternalServerError, "Database error")
			return
		}

		c.HTML(http.StatusOK, "instructor_players.html", gin.H{
			"Title":     "Clients",
			"AgeGroups": models.AgeGroups,
			"Groups":    groupPlayersByAge(players),
			"FavIDs":    favs,
			"MyClients": mine,
			"Message":   session.Message(c),
		})
	}
}

func ToggleFavorite(conn *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := session.Current(c)
		if ident.Kind != session.KindInstructor {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "not_logged_in"})
			return
		}

		playerID, err := strconv.Atoi(c.Param("player_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "bad_player_id"})
			return
		}

		var favorited bool
		var fav models.InstructorFavorite
		err = conn.Where("instructor_id = ? AND player_id = ?", ident.ID, playerID).First(&fav).Error
		if err == nil {
			if err := conn.Delete(&fav).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
				return
			}
			favorited = false
		} else {
			fav = models.InstructorFavorite{InstructorID: ident.ID, PlayerID: uint(playerID)}
			if err := conn.Create(&fav).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
				return
			}
			favorited = true
		}

		mine, err := myClients(conn, ident.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}
		list := make([]ClientSummary, 0, len(mine))
		for _, p := range mine {
			list = append(list, ClientSummary{ID: p.ID, Name: p.FullName(), AgeGroup: p.AgeGroup})
		}

		c.JSON(http.StatusOK, gin.H{
			"ok":         true,
			"favorited":  favorited,
			"my_clients": list,
		})
	}
}
