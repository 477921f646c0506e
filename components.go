package ics

// ComponentType enumerates the component names written by this package
// (RFC 5545 section 3.6).
type ComponentType string

const (
	// ComponentVCalendar is the VCALENDAR container component.
	ComponentVCalendar ComponentType = "VCALENDAR"
	// ComponentVEvent represents a VEVENT component.
	ComponentVEvent ComponentType = "VEVENT"
)

// Property enumerates the iCalendar property names emitted for calendars and
// events.
type Property string

const (
	PropertyBegin Property = "BEGIN"
	PropertyEnd   Property = "END"

	// PropertyCalscale corresponds to CALSCALE (section 3.7.1).
	PropertyCalscale Property = "CALSCALE"
	// PropertyMethod corresponds to METHOD (section 3.7.2).
	PropertyMethod Property = "METHOD"
	// PropertyProductId corresponds to PRODID (section 3.7.3).
	PropertyProductId Property = "PRODID"
	// PropertyVersion corresponds to VERSION (section 3.7.4).
	PropertyVersion Property = "VERSION"
	// PropertyName is the calendar display name from RFC 7986 section 5.1.
	PropertyName Property = "NAME"
	// PropertyXWRCalName is the Apple extension carrying the same display
	// name for clients that predate RFC 7986.
	PropertyXWRCalName Property = "X-WR-CALNAME"
	// PropertyImage is the RFC 7986 IMAGE property (section 5.10).
	PropertyImage Property = "IMAGE"

	PropertyDescription Property = "DESCRIPTION"
	PropertyUid         Property = "UID"
	PropertyUrl         Property = "URL"
	PropertyDtstamp     Property = "DTSTAMP"
	PropertyDtstart     Property = "DTSTART"
	PropertyDtend       Property = "DTEND"
	PropertyCreated     Property = "CREATED"
	PropertySummary     Property = "SUMMARY"
	PropertyLocation    Property = "LOCATION"
	PropertyOrganizer   Property = "ORGANIZER"
	PropertyStatus      Property = "STATUS"
)

// Parameter is a property parameter name (RFC 5545 section 3.2).
type Parameter string

const (
	// ParameterCn provides a common name (section 3.2.2).
	ParameterCn Parameter = "CN"
	// ParameterEncoding defines inline binary encoding (section 3.2.7).
	ParameterEncoding Parameter = "ENCODING"
	// ParameterSentBy gives the address acting on behalf of the organizer (section 3.2.18).
	ParameterSentBy Parameter = "SENT-BY"
	// ParameterValue sets the value data type of the property (section 3.2.20).
	ParameterValue Parameter = "VALUE"
)

type ValueDataType string

// ValueDataType lists the VALUE parameter types used for IMAGE properties.
const (
	ValueDataTypeBinary ValueDataType = "BINARY"
	ValueDataTypeUri    ValueDataType = "URI"
)

// EncodingBase64 is the only inline ENCODING this package writes.
const EncodingBase64 = "BASE64"

// CalscaleGregorian is the only calendar scale defined by RFC 5545.
const CalscaleGregorian = "GREGORIAN"

type ObjectStatus string

// ObjectStatus enumerates STATUS values for VEVENT components
// (RFC 5545 section 3.8.1.11).
const (
	ObjectStatusTentative ObjectStatus = "TENTATIVE"
	ObjectStatusConfirmed ObjectStatus = "CONFIRMED"
	ObjectStatusCancelled ObjectStatus = "CANCELLED"
)

type Method string

// Method enumerates the iTIP METHOD values a published feed may carry.
const (
	MethodPublish Method = "PUBLISH"
	MethodRequest Method = "REQUEST"
	MethodCancel  Method = "CANCEL"
)

// MIMEType is the media type of a serialized calendar.
const MIMEType = "text/calendar"
