package session

import "github.com/dkeye/voicepanel/internal/domain"

// Message types exchanged with the voice signal server.
const (
	TypeJoin       = "join"
	TypeLeave      = "leave"
	TypePing       = "ping"
	TypeVoiceState = "voice_state"
	TypeOffer      = "offer"
	TypeCandidate  = "candidate"

	TypeRoomState    = "room_state"
	TypeMemberJoined = "member_joined"
	TypeMemberLeft   = "member_left"
	TypeMemberMoved  = "member_moved"
	TypeMemberUpdate = "member_updated"
	TypeSSRC         = "ssrc"
	TypeAnswer       = "answer"
	TypePong         = "pong"
	TypeError        = "error"
)

type envelope struct {
	Type string `json:"type"`
}

// MemberDTO is a member as the server describes it.
type MemberDTO struct {
	ID       domain.UserID `json:"id"`
	Username string        `json:"username"`
	Avatar   string        `json:"avatar,omitempty"`
	SSRC     domain.SSRC   `json:"ssrc,omitempty"`
}

type roomStatePayload struct {
	Type    string           `json:"type"`
	Channel domain.ChannelID `json:"channel"`
	Members []MemberDTO      `json:"members"`
}

type memberPayload struct {
	Type    string           `json:"type"`
	Channel domain.ChannelID `json:"channel"`
	User    MemberDTO        `json:"user"`
}

type memberMovedPayload struct {
	Type string           `json:"type"`
	From domain.ChannelID `json:"from"`
	To   domain.ChannelID `json:"to"`
	User MemberDTO        `json:"user"`
}

type ssrcPayload struct {
	Type string        `json:"type"`
	User domain.UserID `json:"user"`
	SSRC domain.SSRC   `json:"ssrc"`
}

type sdpPayload struct {
	Type string `json:"type"`
	SDP  string `json:"sdp"`
}

type candidatePayload struct {
	Type          string  `json:"type"`
	Candidate     string  `json:"candidate"`
	SDPMid        *string `json:"sdpMid,omitempty"`
	SDPMLineIndex *uint16 `json:"sdpMLineIndex,omitempty"`
}

type errorPayload struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

type joinPayload struct {
	Type    string           `json:"type"`
	Channel domain.ChannelID `json:"channel"`
}

type voiceStatePayload struct {
	Type     string `json:"type"`
	SelfMute bool   `json:"self_mute"`
	SelfDeaf bool   `json:"self_deaf"`
}
