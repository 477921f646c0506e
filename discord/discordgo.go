package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/TheEnbyperor/discord-events-export/snowflake"
)

// Records fetched through a discordgo session carry string ids and flatten
// nullable fields to "". The conversions below parse ids as snowflakes, map
// "" to absent and apply the same enum checks as the JSON decoders. An empty
// event description therefore reads as absent and falls back to the channel
// topic, which a record decoded with DecodeScheduledEvents does not do.

// FromDiscordgoGuild converts a guild held by a discordgo session.
func FromDiscordgoGuild(g *discordgo.Guild) (*Guild, error) {
	id, err := snowflake.Parse(g.ID)
	if err != nil {
		return nil, fmt.Errorf("guild id: %w", err)
	}
	out := &Guild{
		ID:              id,
		Name:            g.Name,
		Icon:            optional(g.Icon),
		Splash:          optional(g.Splash),
		DiscoverySplash: optional(g.DiscoverySplash),
		Description:     optional(g.Description),
	}
	if g.OwnerID != "" {
		if out.OwnerID, err = snowflake.Parse(g.OwnerID); err != nil {
			return nil, fmt.Errorf("guild owner id: %w", err)
		}
	}
	return out, nil
}

// FromDiscordgoChannels converts channels held by a discordgo session.
func FromDiscordgoChannels(channels []*discordgo.Channel) ([]Channel, error) {
	out := make([]Channel, 0, len(channels))
	for _, c := range channels {
		id, err := snowflake.Parse(c.ID)
		if err != nil {
			return nil, fmt.Errorf("channel id: %w", err)
		}
		guildID, err := optionalSnowflake(c.GuildID)
		if err != nil {
			return nil, fmt.Errorf("channel %s guild id: %w", id, err)
		}
		out = append(out, Channel{
			ID:      id,
			GuildID: guildID,
			Name:    optional(c.Name),
			Topic:   optional(c.Topic),
		})
	}
	return out, nil
}

// FromDiscordgoScheduledEvents converts scheduled events listed through a
// discordgo session, keeping their order.
func FromDiscordgoScheduledEvents(events []*discordgo.GuildScheduledEvent) ([]ScheduledEvent, error) {
	out := make([]ScheduledEvent, 0, len(events))
	for _, e := range events {
		se, err := fromDiscordgoScheduledEvent(e)
		if err != nil {
			return nil, fmt.Errorf("scheduled event %s: %w", e.ID, err)
		}
		out = append(out, se)
	}
	return out, nil
}

func fromDiscordgoScheduledEvent(e *discordgo.GuildScheduledEvent) (ScheduledEvent, error) {
	var (
		out ScheduledEvent
		err error
	)
	if out.ID, err = snowflake.Parse(e.ID); err != nil {
		return out, fmt.Errorf("id: %w", err)
	}
	if out.GuildID, err = snowflake.Parse(e.GuildID); err != nil {
		return out, fmt.Errorf("guild id: %w", err)
	}
	if out.ChannelID, err = optionalSnowflake(e.ChannelID); err != nil {
		return out, fmt.Errorf("channel id: %w", err)
	}
	if out.CreatorID, err = optionalSnowflake(e.CreatorID); err != nil {
		return out, fmt.Errorf("creator id: %w", err)
	}

	out.PrivacyLevel = PrivacyLevel(e.PrivacyLevel)
	if err := checkCode(int(e.PrivacyLevel), "privacy level", out.PrivacyLevel.known()); err != nil {
		return out, err
	}
	out.Status = EventStatus(e.Status)
	if err := checkCode(int(e.Status), "event status", out.Status.known()); err != nil {
		return out, err
	}
	out.EntityType = EntityType(e.EntityType)
	if err := checkCode(int(e.EntityType), "entity type", out.EntityType.known()); err != nil {
		return out, err
	}

	out.Name = e.Name
	out.Description = optional(e.Description)
	out.Image = optional(e.Image)
	out.ScheduledStartTime = e.ScheduledStartTime
	out.ScheduledEndTime = e.ScheduledEndTime
	out.EntityID = optional(e.EntityID)
	out.EntityMetadata = &EntityMetadata{Location: optional(e.EntityMetadata.Location)}

	if e.Creator != nil {
		id, err := snowflake.Parse(e.Creator.ID)
		if err != nil {
			return out, fmt.Errorf("creator: %w", err)
		}
		out.Creator = &User{
			ID:            id,
			Username:      e.Creator.Username,
			Discriminator: e.Creator.Discriminator,
			Avatar:        optional(e.Creator.Avatar),
		}
	}
	return out, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalSnowflake(s string) (*snowflake.Snowflake, error) {
	if s == "" {
		return nil, nil
	}
	id, err := snowflake.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
