package ics

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	goical "github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarMinimal(t *testing.T) {
	date := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	cal := NewCalendar("Test 1.0")
	cal.Name = "Test Cal"
	cal.AddEvent(Event{
		Uid:       "abc@example",
		Timestamp: date,
		Start:     date,
		Summary:   "Hi",
	})

	expected := "BEGIN:VCALENDAR\r\n" +
		"PRODID:Test 1.0\r\n" +
		"VERSION:2.0\r\n" +
		"NAME:Test Cal\r\n" +
		"X-WR-CALNAME:Test Cal\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:abc@example\r\n" +
		"DTSTAMP:20230101T000000Z\r\n" +
		"DTSTART:20230101T000000Z\r\n" +
		"SUMMARY:Hi\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"
	assert.Equal(t, expected, cal.Serialize())
}

func TestCalendarWithoutEvents(t *testing.T) {
	cal := &Calendar{ProductId: "p", Version: "2.0"}
	assert.Equal(t, "BEGIN:VCALENDAR\r\nPRODID:p\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n", cal.Serialize())
}

func TestCalendarPropertyOrder(t *testing.T) {
	cal := &Calendar{
		ProductId:   "-//Example//EN",
		Version:     "2.0",
		Scale:       CalscaleGregorian,
		Method:      MethodPublish,
		Name:        "Guild Events",
		Description: "All of them",
		Uid:         "1@c.example.org",
		Url:         "https://example.org/guilds/1/calendar.ics",
	}
	text := strings.ReplaceAll(cal.Serialize(), "\r\n", "\n")
	assert.Equal(t, `BEGIN:VCALENDAR
PRODID:-//Example//EN
VERSION:2.0
CALSCALE:GREGORIAN
METHOD:PUBLISH
NAME:Guild Events
X-WR-CALNAME:Guild Events
DESCRIPTION:All of them
UID:1@c.example.org
URL:https://example.org/guilds/1/calendar.ics
END:VCALENDAR
`, text)
}

func TestEventAllFields(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*60*60)
	e := Event{
		Uid:         "42@e.example.org",
		Timestamp:   time.Date(2022, 5, 1, 10, 0, 0, 0, time.UTC),
		Start:       time.Date(2022, 6, 1, 20, 30, 15, 999, berlin),
		End:         time.Date(2022, 6, 1, 22, 0, 0, 0, berlin),
		Created:     time.Date(2022, 5, 1, 10, 0, 0, 0, time.UTC),
		Description: "Bring snacks, drinks; and\nfriends",
		Summary:     "Game night",
		Location:    "#voice-chat",
		Organiser: &Organiser{
			Address:    "https//discord.com/channels/1",
			CommonName: "host#1234",
			SentBy:     "https//discord.com/channels/@me/7",
		},
		Status: ObjectStatusConfirmed,
		Images: []Image{
			ImageURL("https://cdn.example.org/cover.png"),
			ImageBinary("hi!"),
		},
	}
	text := strings.ReplaceAll(e.Serialize(), "\r\n", "\n")
	assert.Equal(t, `BEGIN:VEVENT
UID:42@e.example.org
DTSTAMP:20220501T100000Z
DTSTART:20220601T183015Z
DTEND:20220601T200000Z
CREATED:20220501T100000Z
DESCRIPTION:Bring snacks\, drinks\; and\nfriends
SUMMARY:Game night
LOCATION:#voice-chat
ORGANIZER;CN=host#1234;SENT-BY=https//discord.com/channels/@me/7:https//di
 scord.com/channels/1
STATUS:CONFIRMED
IMAGE;VALUE=URI:https://cdn.example.org/cover.png
IMAGE;VALUE=BINARY;ENCODING=BASE64:aGkh
END:VEVENT
`, text)
}

func TestEventOptionalFieldsOmitted(t *testing.T) {
	e := Event{Uid: "u"}
	lines := e.ContentLines()
	names := make([]string, 0, len(lines))
	for _, l := range lines {
		names = append(names, l.IANAToken)
	}
	assert.Equal(t, []string{"BEGIN", "UID", "DTSTAMP", "DTSTART", "END"}, names)
	// zero times are not validated, they are written as they are
	assert.Equal(t, "00010101T000000Z", lines[2].Value)
}

func TestOrganiserParameters(t *testing.T) {
	tests := []struct {
		name      string
		organiser Organiser
		output    string
	}{
		{name: "address only", organiser: Organiser{Address: "mailto:a@example.com"}, output: "ORGANIZER:mailto:a@example.com\r\n"},
		{name: "common name", organiser: Organiser{Address: "x", CommonName: "Doe, Jane"}, output: "ORGANIZER;CN=\"Doe, Jane\":x\r\n"},
		{name: "sent by", organiser: Organiser{Address: "x", SentBy: "mailto:b@example.com"}, output: "ORGANIZER;SENT-BY=\"mailto:b@example.com\":x\r\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.output, tc.organiser.ContentLine().String())
		})
	}
}

func TestEventsKeepInsertionOrder(t *testing.T) {
	cal := NewCalendar("p")
	late := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	early := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	cal.AddEvent(Event{Uid: "b", Start: late, Timestamp: late})
	cal.AddEvent(Event{Uid: "a", Start: early, Timestamp: early})
	cal.AddEvent(Event{Uid: "c", Start: early, Timestamp: early})

	var uids []string
	for _, l := range cal.ContentLines() {
		if l.IANAToken == string(PropertyUid) {
			uids = append(uids, l.Value)
		}
	}
	assert.Equal(t, []string{"b", "a", "c"}, uids)
}

type failingWriter struct {
	after int
}

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, errWrite
	}
	w.after--
	return len(p), nil
}

func TestSerializeToReportsWriterErrors(t *testing.T) {
	cal := NewCalendar("p")
	cal.AddEvent(Event{Uid: "u"})
	err := cal.SerializeTo(&failingWriter{after: 4})
	assert.ErrorIs(t, err, errWrite)
}

func TestSerializedCalendarIsReadableByOtherParsers(t *testing.T) {
	start := time.Date(2024, 3, 9, 18, 0, 0, 0, time.UTC)
	cal := NewCalendar("-//Example//Interop//EN")
	cal.Scale = CalscaleGregorian
	cal.Name = "Interop, with commas; and semicolons"
	cal.AddEvent(Event{
		Uid:         "interop@example.org",
		Timestamp:   start.Add(-48 * time.Hour),
		Start:       start,
		End:         start.Add(2 * time.Hour),
		Summary:     strings.Repeat("A long summary that must be folded, ", 4) + "end",
		Description: "Line one\nLine two\\three",
		Organiser:   &Organiser{Address: "mailto:host@example.org", CommonName: "Host, The"},
		Status:      ObjectStatusCancelled,
		Images:      []Image{ImageURL("https://example.org/i.png")},
	})

	dec := goical.NewDecoder(bytes.NewReader([]byte(cal.Serialize())))
	parsed, err := dec.Decode()
	require.NoError(t, err)

	name := parsed.Props.Get("X-WR-CALNAME")
	require.NotNil(t, name)
	assert.Equal(t, cal.Name, FromText(name.Value))

	events := parsed.Events()
	require.Len(t, events, 1)
	ev := events[0]

	summary, err := ev.Props.Text(goical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, cal.Events[0].Summary, summary)

	description, err := ev.Props.Text(goical.PropDescription)
	require.NoError(t, err)
	assert.Equal(t, cal.Events[0].Description, description)

	gotStart, err := ev.DateTimeStart(time.UTC)
	require.NoError(t, err)
	assert.True(t, start.Equal(gotStart), "start %v != %v", start, gotStart)

	organizer := ev.Props.Get(goical.PropOrganizer)
	require.NotNil(t, organizer)
	assert.Equal(t, "mailto:host@example.org", organizer.Value)
	assert.Equal(t, "Host, The", organizer.Params.Get(goical.ParamCommonName))

	image := ev.Props.Get("IMAGE")
	require.NotNil(t, image)
	assert.Equal(t, "URI", image.Params.Get(goical.ParamValue))
}
