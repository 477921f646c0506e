package ics

import (
	"encoding/base64"
	"io"
	"strings"
	"time"
)

const icalTimestampFormatUtc = "20060102T150405Z"

func formatDateTime(t time.Time) string {
	return t.UTC().Format(icalTimestampFormatUtc)
}

// Calendar represents a VCALENDAR object. Empty optional fields are left out
// of the output entirely, so a property with an empty value such as
// "DESCRIPTION:" cannot be produced.
type Calendar struct {
	ProductId   string
	Version     string
	Scale       string
	Method      Method
	Name        string
	Description string
	Uid         string
	Url         string
	Events      []Event
}

// NewCalendar returns a Calendar for the given PRODID with VERSION set to
// "2.0" as defined in RFC 5545 section 3.7.4.
func NewCalendar(productId string) *Calendar {
	return &Calendar{
		ProductId: productId,
		Version:   "2.0",
	}
}

// AddEvent appends e. Events are written in the order they were added.
func (cal *Calendar) AddEvent(e Event) {
	cal.Events = append(cal.Events, e)
}

// ContentLines returns the calendar as an ordered list of properties,
// including the BEGIN and END lines of every component.
func (cal *Calendar) ContentLines() []ContentLine {
	out := []ContentLine{
		NewContentLine(PropertyBegin, string(ComponentVCalendar)),
		NewContentLine(PropertyProductId, cal.ProductId),
		NewContentLine(PropertyVersion, cal.Version),
	}
	if cal.Scale != "" {
		out = append(out, NewContentLine(PropertyCalscale, cal.Scale))
	}
	if cal.Method != "" {
		out = append(out, NewContentLine(PropertyMethod, string(cal.Method)))
	}
	if cal.Name != "" {
		out = append(out,
			NewContentLine(PropertyName, cal.Name),
			NewContentLine(PropertyXWRCalName, cal.Name),
		)
	}
	if cal.Description != "" {
		out = append(out, NewContentLine(PropertyDescription, cal.Description))
	}
	if cal.Uid != "" {
		out = append(out, NewContentLine(PropertyUid, cal.Uid))
	}
	if cal.Url != "" {
		out = append(out, NewContentLine(PropertyUrl, cal.Url))
	}
	for i := range cal.Events {
		out = append(out, cal.Events[i].ContentLines()...)
	}
	return append(out, NewContentLine(PropertyEnd, string(ComponentVCalendar)))
}

func (cal *Calendar) Serialize() string {
	b := &strings.Builder{}
	// strings.Builder never fails a write.
	_ = cal.SerializeTo(b)
	return b.String()
}

func (cal *Calendar) SerializeTo(w io.Writer) error {
	for _, cl := range cal.ContentLines() {
		if err := cl.SerializeTo(w); err != nil {
			return err
		}
	}
	return nil
}

// Event maps to one VEVENT block. Timestamp and Start are always written;
// End and Created only when non-zero. Text fields follow Calendar: an empty
// string means the property is absent.
type Event struct {
	Uid         string
	Timestamp   time.Time
	Start       time.Time
	End         time.Time
	Created     time.Time
	Description string
	Summary     string
	Location    string
	Organiser   *Organiser
	Status      ObjectStatus
	Images      []Image
}

func (e *Event) ContentLines() []ContentLine {
	out := []ContentLine{
		NewContentLine(PropertyBegin, string(ComponentVEvent)),
		NewContentLine(PropertyUid, e.Uid),
		NewContentLine(PropertyDtstamp, formatDateTime(e.Timestamp)),
		NewContentLine(PropertyDtstart, formatDateTime(e.Start)),
	}
	if !e.End.IsZero() {
		out = append(out, NewContentLine(PropertyDtend, formatDateTime(e.End)))
	}
	if !e.Created.IsZero() {
		out = append(out, NewContentLine(PropertyCreated, formatDateTime(e.Created)))
	}
	if e.Description != "" {
		out = append(out, NewContentLine(PropertyDescription, e.Description))
	}
	if e.Summary != "" {
		out = append(out, NewContentLine(PropertySummary, e.Summary))
	}
	if e.Location != "" {
		out = append(out, NewContentLine(PropertyLocation, e.Location))
	}
	if e.Organiser != nil {
		out = append(out, e.Organiser.ContentLine())
	}
	if e.Status != "" {
		out = append(out, NewContentLine(PropertyStatus, string(e.Status)))
	}
	for _, img := range e.Images {
		out = append(out, img.ContentLine())
	}
	return append(out, NewContentLine(PropertyEnd, string(ComponentVEvent)))
}

// Serialize renders the VEVENT block on its own.
func (e *Event) Serialize() string {
	b := &strings.Builder{}
	for _, cl := range e.ContentLines() {
		_ = cl.SerializeTo(b)
	}
	return b.String()
}

// Organiser is the ORGANIZER of an event. CommonName and SentBy become the
// CN and SENT-BY parameters when set.
type Organiser struct {
	Address    string
	CommonName string
	SentBy     string
}

func (o *Organiser) ContentLine() ContentLine {
	var params []KeyValues
	if o.CommonName != "" {
		params = append(params, WithCN(o.CommonName))
	}
	if o.SentBy != "" {
		params = append(params, WithSentBy(o.SentBy))
	}
	return NewContentLine(PropertyOrganizer, o.Address, params...)
}

// Image is an RFC 7986 IMAGE property. It is either an ImageURL or an
// ImageBinary.
type Image interface {
	ContentLine() ContentLine
}

var (
	_ Image = ImageURL("")
	_ Image = ImageBinary(nil)
)

// ImageURL references an image by URI.
type ImageURL string

func (u ImageURL) ContentLine() ContentLine {
	return NewContentLine(PropertyImage, string(u), WithValue(ValueDataTypeUri))
}

// ImageBinary carries the image inline, base64 encoded.
type ImageBinary []byte

func (b ImageBinary) ContentLine() ContentLine {
	return NewContentLine(PropertyImage, base64.StdEncoding.EncodeToString(b),
		WithValue(ValueDataTypeBinary), WithEncoding(EncodingBase64))
}
