package discord

import (
	"fmt"
	"strings"

	ics "github.com/TheEnbyperor/discord-events-export"
	"github.com/TheEnbyperor/discord-events-export/snowflake"
)

const (
	DefaultUIDDomain = "discord-events.magicalcodewit.ch"

	channelURLBase = "https//discord.com/channels/"
	cdnBase        = "https://cdn.discordapp.com"
)

// Exporter turns fetched guild records into a calendar feed.
type Exporter struct {
	// Product is written as the calendar PRODID.
	Product string
	// RootURL is the public base URL the feed is served from, without a
	// trailing slash.
	RootURL string
	// UIDDomain scopes generated UIDs, which take the form
	// <id>@c.<domain> for calendars and <id>@e.<domain> for events.
	UIDDomain string
}

// CalendarPath is the path a guild's feed is published under.
func CalendarPath(guildID snowflake.Snowflake) string {
	return "/guilds/" + guildID.String() + "/calendar.ics"
}

// BuildCalendar maps a guild and its scheduled events to a calendar. Events
// keep the order they are given in. channels is consulted for event
// locations and fallback descriptions; an event whose channel is missing
// from it is still exported.
func (x *Exporter) BuildCalendar(guild *Guild, events []ScheduledEvent, channels map[snowflake.Snowflake]Channel) *ics.Calendar {
	cal := ics.NewCalendar(x.Product)
	cal.Scale = ics.CalscaleGregorian
	cal.Name = guild.Name + " Events"
	cal.Description = deref(guild.Description)
	cal.Uid = fmt.Sprintf("%s@c.%s", guild.ID, x.uidDomain())
	cal.Url = strings.TrimSuffix(x.RootURL, "/") + CalendarPath(guild.ID)
	for i := range events {
		var channel *Channel
		if id := events[i].ChannelID; id != nil {
			if c, ok := channels[*id]; ok {
				channel = &c
			}
		}
		cal.AddEvent(x.BuildEvent(&events[i], channel))
	}
	return cal
}

// BuildEvent maps one scheduled event. channel may be nil when the event has
// no channel or it could not be fetched.
func (x *Exporter) BuildEvent(event *ScheduledEvent, channel *Channel) ics.Event {
	created := event.ID.Timestamp()
	e := ics.Event{
		Uid:       fmt.Sprintf("%s@e.%s", event.ID, x.uidDomain()),
		Timestamp: created,
		Start:     event.ScheduledStartTime,
		Created:   created,
		Summary:   event.Name,
		Organiser: organiser(event),
		Status:    status(event.Status),
	}
	if event.ScheduledEndTime != nil {
		e.End = *event.ScheduledEndTime
	}

	switch {
	case event.Description != nil:
		e.Description = *event.Description
	case channel != nil:
		e.Description = deref(channel.Topic)
	}

	switch event.EntityType {
	case EntityTypeExternal:
		if event.EntityMetadata != nil {
			e.Location = deref(event.EntityMetadata.Location)
		}
	case EntityTypeVoice, EntityTypeStage:
		if channel != nil && channel.Name != nil {
			e.Location = "#" + *channel.Name
		}
	}

	if event.Image != nil {
		e.Images = append(e.Images, ics.ImageURL(CoverImageURL(event.ID, *event.Image)))
	}
	return e
}

// ChannelIndex keys channels by id for BuildCalendar.
func ChannelIndex(channels []Channel) map[snowflake.Snowflake]Channel {
	m := make(map[snowflake.Snowflake]Channel, len(channels))
	for _, c := range channels {
		m[c.ID] = c
	}
	return m
}

// CoverImageURL is the CDN location of a scheduled event's cover image.
func CoverImageURL(eventID snowflake.Snowflake, hash string) string {
	return fmt.Sprintf("%s/guild-events/%s/%s.png", cdnBase, eventID, hash)
}

func organiser(event *ScheduledEvent) *ics.Organiser {
	o := &ics.Organiser{
		Address: channelURLBase + event.GuildID.String(),
	}
	if event.Creator != nil {
		o.CommonName = event.Creator.Tag()
		o.SentBy = channelURLBase + "@me/" + event.Creator.ID.String()
	}
	return o
}

func status(s EventStatus) ics.ObjectStatus {
	if s == EventStatusCancelled {
		return ics.ObjectStatusCancelled
	}
	return ics.ObjectStatusConfirmed
}

func (x *Exporter) uidDomain() string {
	if x.UIDDomain == "" {
		return DefaultUIDDomain
	}
	return x.UIDDomain
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
