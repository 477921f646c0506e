// Package discord holds the subset of Discord API records needed to publish a
// guild's scheduled events as a calendar, and the mapping from those records
// to an iCalendar document.
package discord

import (
	"fmt"
	"time"

	"github.com/TheEnbyperor/discord-events-export/snowflake"
)

type User struct {
	ID            snowflake.Snowflake `json:"id"`
	Username      string              `json:"username"`
	Discriminator string              `json:"discriminator"`
	Avatar        *string             `json:"avatar"`
}

// Tag is the "username#discriminator" form shown to other users.
func (u *User) Tag() string {
	return u.Username + "#" + u.Discriminator
}

type Guild struct {
	ID              snowflake.Snowflake `json:"id"`
	Name            string              `json:"name"`
	Icon            *string             `json:"icon"`
	Splash          *string             `json:"splash"`
	DiscoverySplash *string             `json:"discovery_splash"`
	OwnerID         snowflake.Snowflake `json:"owner_id"`
	Description     *string             `json:"description"`
}

type Channel struct {
	ID      snowflake.Snowflake  `json:"id"`
	GuildID *snowflake.Snowflake `json:"guild_id,omitempty"`
	Name    *string              `json:"name,omitempty"`
	Topic   *string              `json:"topic,omitempty"`
}

type EntityMetadata struct {
	Location *string `json:"location"`
}

// ScheduledEvent is a guild scheduled event as returned by
// GET /guilds/{guild.id}/scheduled-events.
type ScheduledEvent struct {
	ID                 snowflake.Snowflake  `json:"id"`
	GuildID            snowflake.Snowflake  `json:"guild_id"`
	ChannelID          *snowflake.Snowflake `json:"channel_id"`
	CreatorID          *snowflake.Snowflake `json:"creator_id,omitempty"`
	Name               string               `json:"name"`
	Description        *string              `json:"description,omitempty"`
	Image              *string              `json:"image"`
	ScheduledStartTime time.Time            `json:"scheduled_start_time"`
	ScheduledEndTime   *time.Time           `json:"scheduled_end_time"`
	PrivacyLevel       PrivacyLevel         `json:"privacy_level"`
	Status             EventStatus          `json:"status"`
	EntityType         EntityType           `json:"entity_type"`
	EntityID           *string              `json:"entity_id"`
	EntityMetadata     *EntityMetadata      `json:"entity_metadata"`
	Creator            *User                `json:"creator,omitempty"`
}

type PrivacyLevel int

const (
	PrivacyLevelGuildOnly PrivacyLevel = 2
)

func (p PrivacyLevel) known() bool {
	return p == PrivacyLevelGuildOnly
}

func (p PrivacyLevel) String() string {
	switch p {
	case PrivacyLevelGuildOnly:
		return "GuildOnly"
	}
	return fmt.Sprintf("PrivacyLevel(%d)", int(p))
}

type EventStatus int

const (
	EventStatusScheduled EventStatus = 1
	EventStatusActive    EventStatus = 2
	EventStatusCompleted EventStatus = 3
	EventStatusCancelled EventStatus = 4
)

func (s EventStatus) known() bool {
	return s >= EventStatusScheduled && s <= EventStatusCancelled
}

func (s EventStatus) String() string {
	switch s {
	case EventStatusScheduled:
		return "Scheduled"
	case EventStatusActive:
		return "Active"
	case EventStatusCompleted:
		return "Completed"
	case EventStatusCancelled:
		return "Cancelled"
	}
	return fmt.Sprintf("EventStatus(%d)", int(s))
}

type EntityType int

const (
	EntityTypeStage    EntityType = 1
	EntityTypeVoice    EntityType = 2
	EntityTypeExternal EntityType = 3
)

func (t EntityType) known() bool {
	return t >= EntityTypeStage && t <= EntityTypeExternal
}

func (t EntityType) String() string {
	switch t {
	case EntityTypeStage:
		return "Stage"
	case EntityTypeVoice:
		return "Voice"
	case EntityTypeExternal:
		return "External"
	}
	return fmt.Sprintf("EntityType(%d)", int(t))
}
