package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ClubType classifies a club in the catalog
type ClubType string

const (
	ClubTypeTech  ClubType = "tech"
	ClubTypeSport ClubType = "sport"
	ClubTypeHobby ClubType = "hobby"
	ClubTypeArt   ClubType = "art"
)

// Valid reports whether the club type is one of the known values.
func (t ClubType) Valid() bool {
	switch t {
	case ClubTypeTech, ClubTypeSport, ClubTypeHobby, ClubTypeArt:
		return true
	}
	return false
}

// LinkType classifies a club resource link
type LinkType string

const (
	LinkTypeTelegramChannel LinkType = "telegram_channel"
	LinkTypeTelegramChat    LinkType = "telegram_chat"
	LinkTypeTelegramUser    LinkType = "telegram_user"
	LinkTypeExternalURL     LinkType = "external_url"
)

// Valid reports whether the link type is one of the known values.
func (t LinkType) Valid() bool {
	switch t {
	case LinkTypeTelegramChannel, LinkTypeTelegramChat, LinkTypeTelegramUser, LinkTypeExternalURL:
		return true
	}
	return false
}

// Link is a club resource link (channel, chat, website). Order within a
// club's link list is meaningful: it is the display order.
type Link struct {
	Type  LinkType    `json:"type"`
	Link  string      `json:"link"`
	Label null.String `json:"label"`
}

// Club represents a student club entity
type Club struct {
	ID                 uuid.UUID   `json:"id"`
	IsActive           bool        `json:"isActive"`
	Slug               string      `json:"slug"`
	Title              string      `json:"title"`
	ShortDescription   string      `json:"shortDescription"`
	Description        string      `json:"description"`
	LogoFileID         null.String `json:"logoFileId"`
	Type               ClubType    `json:"type"`
	LeaderInnohassleID null.String `json:"leaderInnohassleId"`
	Links              []Link      `json:"links"`
	SportID            null.String `json:"sportId"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// LinkInput is the wire form of a club link
type LinkInput struct {
	Type  LinkType `json:"type" binding:"required"`
	Link  string   `json:"link" binding:"required"`
	Label *string  `json:"label"`
}

// CreateClubInput represents input for creating a club
type CreateClubInput struct {
	IsActive           *bool       `json:"isActive"`
	Slug               string      `json:"slug" binding:"required"`
	Title              string      `json:"title" binding:"required"`
	ShortDescription   string      `json:"shortDescription"`
	Description        string      `json:"description"`
	Type               ClubType    `json:"type" binding:"required"`
	LeaderInnohassleID *string     `json:"leaderInnohassleId"`
	Links              []LinkInput `json:"links"`
	SportID            *string     `json:"sportId"`
}

// UpdateClubInput represents a partial update: only non-nil fields
// overwrite the stored club. NewLeaderEmail is transient and write-only:
// the handler resolves it to LeaderInnohassleID through the identity
// gateway and discards it before the repository call.
type UpdateClubInput struct {
	IsActive           *bool        `json:"isActive"`
	Slug               *string      `json:"slug"`
	Title              *string      `json:"title"`
	ShortDescription   *string      `json:"shortDescription"`
	Description        *string      `json:"description"`
	Type               *ClubType    `json:"type"`
	LeaderInnohassleID *string      `json:"leaderInnohassleId"`
	Links              *[]LinkInput `json:"links"`
	SportID            *string      `json:"sportId"`
	NewLeaderEmail     *string      `json:"newLeaderEmail"`
}
