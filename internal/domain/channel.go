package domain

import "fmt"

type (
	// ChannelID identifies a voice channel.
	ChannelID uint64
	// SSRC correlates a participant with their live audio stream.
	SSRC uint32
)

func (id ChannelID) String() string { return fmt.Sprintf("%d", uint64(id)) }

type EventKind int

const (
	UserConnected EventKind = iota
	UserDisconnected
)

func (k EventKind) String() string {
	switch k {
	case UserConnected:
		return "connect"
	case UserDisconnected:
		return "disconnect"
	default:
		return "unknown"
	}
}

// VoiceEvent reports a user entering (Channel = destination) or
// leaving (Channel = source) a voice channel.
type VoiceEvent struct {
	Kind    EventKind
	User    UserID
	Channel ChannelID
}
