package domain

import (
	"slices"
	"time"
)

type MessageKind int

const (
	// MessageRegular is a plain user message. Joins, pins, replies and other
	// notices are MessageOther.
	MessageRegular MessageKind = iota
	MessageOther
)

// Message is an inbound chat message as seen by the dispatcher.
type Message struct {
	ID          string
	ChannelID   string
	GuildID     string
	AuthorID    string
	AuthorIsBot bool
	Kind        MessageKind
	Content     string
}

// IsFromGuild reports whether the message was posted in a guild channel rather than a direct message.
func (m *Message) IsFromGuild() bool {
	return m.GuildID != ""
}

// SentMessage identifies a message the bot posted, so it can be edited, reacted to or deleted later.
type SentMessage struct {
	ID        string
	ChannelID string
}

type User struct {
	ID        string
	Name      string
	AvatarURL string
}

type Category string

const (
	Developer Category = "Developer"
	General   Category = "General"
	Utility   Category = "Utility"
)

// IsPrivileged reports whether commands of this category are restricted to developers.
func (c Category) IsPrivileged() bool {
	return c == Developer
}

// Style is the visual treatment of a default reply.
type Style int

const (
	Success Style = iota
	Failure
	Confirmation
	Warning
)

func (s Style) String() string {
	switch s {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	case Confirmation:
		return "Confirmation"
	case Warning:
		return "Warning"
	default:
		return "Unknown"
	}
}

func (s Style) Color() int {
	switch s {
	case Failure:
		return FailureColor
	case Confirmation:
		return ConfirmationColor
	case Warning:
		return WarningColor
	default:
		return SuccessColor
	}
}

type Embed struct {
	Author      string
	AuthorIcon  string
	AuthorURL   string
	Color       int
	Description string
	Fields      []EmbedField
	Footer      string
	Timestamp   time.Time
}

type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// ReactionFilter selects which reactions an await accepts.
type ReactionFilter struct {
	ChannelID string
	MessageID string
	UserID    string
	Emojis    []string
}

// Matches reports whether a reaction with emoji by userID on the given message passes the filter.
func (f ReactionFilter) Matches(channelID, messageID, userID, emoji string) bool {
	return f.ChannelID == channelID &&
		f.MessageID == messageID &&
		f.UserID == userID &&
		slices.Contains(f.Emojis, emoji)
}

// Outcome labels a finished dispatch for metrics.
type Outcome string

const (
	OutcomeSuccess      Outcome = "success"
	OutcomeFailure      Outcome = "failure"
	OutcomeUnauthorized Outcome = "unauthorized"
)

// WeatherReport is the current weather at a location. Temperature is in Celsius, wind speed in m/s and
// pressure in hPa.
type WeatherReport struct {
	ID          int64
	Name        string
	Country     string
	Condition   string
	Temperature float64
	Humidity    float64
	Pressure    float64
	WindSpeed   float64
	WindDegree  float64
	Cloudiness  *int
	Sunrise     time.Time
	Sunset      time.Time
	// UTCOffset is the location's offset from UTC in seconds, nil when the provider did not report one.
	UTCOffset *int
}
