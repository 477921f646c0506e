package ics

import (
	"io"
	"strings"
	"unicode/utf8"
)

const (
	crlf = "\r\n"

	// maxLineOctets is the RFC 5545 section 3.1 limit for a physical line,
	// excluding the line break.
	maxLineOctets = 75
)

// KeyValues is one property parameter: a name and its values in the order
// they were given.
type KeyValues struct {
	Key   string
	Value []string
}

func WithCN(cn string) KeyValues {
	return KeyValues{
		Key:   string(ParameterCn),
		Value: []string{cn},
	}
}

func WithSentBy(address string) KeyValues {
	return KeyValues{
		Key:   string(ParameterSentBy),
		Value: []string{address},
	}
}

func WithEncoding(encType string) KeyValues {
	return KeyValues{
		Key:   string(ParameterEncoding),
		Value: []string{encType},
	}
}

func WithValue(kind ValueDataType) KeyValues {
	return KeyValues{
		Key:   string(ParameterValue),
		Value: []string{string(kind)},
	}
}

// quoteParamValue wraps v in double quotes when it holds one of the
// parameter delimiters. Embedded double quotes are written as-is, so such a
// value does not survive a strict RFC 5545 parser.
func quoteParamValue(v string) string {
	if strings.ContainsAny(v, ":;,") {
		return `"` + v + `"`
	}
	return v
}

func (kv KeyValues) writeTo(b *strings.Builder) {
	b.WriteString(kv.Key)
	b.WriteByte('=')
	for i, v := range kv.Value {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quoteParamValue(v))
	}
}

func (kv KeyValues) String() string {
	b := &strings.Builder{}
	kv.writeTo(b)
	return b.String()
}

// ContentLine is a single logical property: a name, its parameters and an
// unescaped TEXT value.
type ContentLine struct {
	IANAToken      string
	ICalParameters []KeyValues
	Value          string
}

// NewContentLine builds a content line for a known property.
func NewContentLine(property Property, value string, params ...KeyValues) ContentLine {
	return ContentLine{
		IANAToken:      string(property),
		ICalParameters: params,
		Value:          value,
	}
}

// Unfolded returns the logical line before folding, without a line break.
func (cl ContentLine) Unfolded() string {
	b := &strings.Builder{}
	b.WriteString(cl.IANAToken)
	for _, p := range cl.ICalParameters {
		b.WriteByte(';')
		p.writeTo(b)
	}
	b.WriteByte(':')
	b.WriteString(ToText(cl.Value))
	return b.String()
}

// String renders the content line as folded physical lines, each terminated
// by CRLF.
func (cl ContentLine) String() string {
	return fold(cl.Unfolded())
}

func (cl ContentLine) SerializeTo(w io.Writer) error {
	_, err := io.WriteString(w, cl.String())
	return err
}

// fold splits s into physical lines of at most maxLineOctets octets. A break
// is taken before any character whose octets would bring the current line to
// maxLineOctets or more; continuation lines start with a single space. Bytes
// that are not valid UTF-8 count as one-octet characters.
func fold(s string) string {
	b := &strings.Builder{}
	b.Grow(len(s) + len(s)/(maxLineOctets-1)*3 + len(crlf))
	n := 0
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		if n > 0 && n+size >= maxLineOctets {
			b.WriteString(crlf)
			b.WriteByte(' ')
			n = 0
		}
		b.WriteString(s[i : i+size])
		n += size
		i += size
	}
	b.WriteString(crlf)
	return b.String()
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	"\n", `\n`,
)

// ToText escapes s for a property value of type TEXT (RFC 5545 section
// 3.3.11). Only backslash, semicolon, comma and line feed are escaped.
func ToText(s string) string {
	return textEscaper.Replace(s)
}

var textUnescaper = strings.NewReplacer(
	`\\`, `\`,
	`\n`, "\n",
	`\N`, "\n",
	`\;`, `;`,
	`\,`, `,`,
)

// FromText reverses ToText.
func FromText(s string) string {
	return textUnescaper.Replace(s)
}
