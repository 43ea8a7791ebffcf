package models

// AuthProvider identifies which OAuth provider an account logged in with
type AuthProvider string

const (
	AuthProviderDiscord AuthProvider = "discord"
	AuthProviderGitHub  AuthProvider = "github"
)

// IsValid checks if the AuthProvider is valid
func (p AuthProvider) IsValid() bool {
	switch p {
	case AuthProviderDiscord, AuthProviderGitHub:
		return true
	}
	return false
}

// User represents a platform account created through OAuth login
type User struct {
	BaseModel
	DiscordID   string       `json:"discord_id" gorm:"size:30;uniqueIndex:idx_users_discord_id,where:discord_id <> ''"`
	Username    string       `json:"username" gorm:"not null;size:40" validate:"required,min=1,max=40"`
	DisplayName string       `json:"display_name" gorm:"size:100" validate:"max=100"`
	Email       string       `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	AvatarURL   string       `json:"avatar_url" gorm:"size:200" validate:"max=200"`
	RiotID      string       `json:"riot_id" gorm:"size:50" validate:"max=50"` // "GameName#Tag"
	Timezone    string       `json:"timezone" gorm:"size:50" validate:"max=50"`
	Provider    AuthProvider `json:"provider" gorm:"type:varchar(20);not null;default:'discord'"`
	IsActive    bool         `json:"is_active" gorm:"default:true"`

	// Relationships
	Memberships   []TeamMember   `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Conditions    []Condition    `json:"conditions,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Notifications []Notification `json:"notifications,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
