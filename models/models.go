package models

import "time"

type Instructor struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null;default:Coach" json:"name"`
	LoginCode string `gorm:"uniqueIndex;not null" json:"-"`
}

type Player struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null" form:"first_name" json:"first_name"`
	LastName  string    `gorm:"not null" form:"last_name" json:"last_name"`
	AgeGroup  string    `gorm:"not null" form:"age_group" json:"age_group"`
	Email     string    `form:"email" json:"email"`
	Phone     string    `form:"phone" json:"phone"`
	LoginCode *string   `gorm:"uniqueIndex" json:"-"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`

	Metrics []Metric `gorm:"constraint:OnDelete:CASCADE;" json:"metrics,omitempty"`
}

func (p Player) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

type Metric struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PlayerID     uint      `gorm:"index;not null" json:"player_id"`
	TakenAt      time.Time `gorm:"index;autoCreateTime" json:"taken_at"`
	ExitVelocity *float64  `json:"exit_velocity"`
	SpinRate     *float64  `json:"spin_rate"`
	LaunchAngle  *float64  `json:"launch_angle"`
}

// One row per (instructor, player) pair.
type InstructorFavorite struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	InstructorID uint `gorm:"not null;uniqueIndex:uq_instructor_player" json:"instructor_id"`
	PlayerID     uint `gorm:"not null;uniqueIndex:uq_instructor_player" json:"player_id"`
}

// CoachNote has no handlers yet; kept in the schema for the notes feature.
type CoachNote struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	InstructorID     uint      `gorm:"not null" json:"instructor_id"`
	PlayerID         uint      `gorm:"not null" json:"player_id"`
	Text             string    `gorm:"not null" json:"text"`
	SharedWithPlayer bool      `gorm:"default:false" json:"shared_with_player"`
	CreatedAt        time.Time `json:"created_at"`
}

// Display buckets for the clients page, youngest first.
var AgeGroups = []string{"7-9", "10-12", "13-15", "16-18", "18+"}

const (
	// Bucket for players whose stored age group is not in AgeGroups.
	AgeGroupFallback = "18+"
	// Stored value when the create form submits an unknown age group.
	AgeGroupDefault = "13-15"
)

func ValidAgeGroup(g string) bool {
	for _, v := range AgeGroups {
		if v == g {
			return true
		}
	}
	return false
}
