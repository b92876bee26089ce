package session

import (
	"context"
	"encoding/json"

	"github.com/pion/webrtc/v4"
)

func (c *Client) handleMessage(ctx context.Context, data []byte) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		c.logger.Error().Err(err).Msg("bad json")
		return
	}

	switch env.Type {
	case TypeRoomState:
		var p roomStatePayload
		if !c.decode(data, &p) {
			return
		}
		c.logger.Info().Stringer("channel", p.Channel).Int("members", len(p.Members)).Msg("room state")
		c.emit(ctx, c.dir.replace(p.Channel, p.Members))
	case TypeMemberJoined:
		var p memberPayload
		if !c.decode(data, &p) {
			return
		}
		c.emit(ctx, c.dir.join(p.Channel, p.User))
	case TypeMemberLeft:
		var p memberPayload
		if !c.decode(data, &p) {
			return
		}
		c.emit(ctx, c.dir.leave(p.Channel, p.User.ID))
	case TypeMemberMoved:
		var p memberMovedPayload
		if !c.decode(data, &p) {
			return
		}
		evs := c.dir.leave(p.From, p.User.ID)
		c.emit(ctx, append(evs, c.dir.join(p.To, p.User)...))
	case TypeMemberUpdate:
		var p memberPayload
		if !c.decode(data, &p) {
			return
		}
		c.dir.update(p.User)
	case TypeSSRC:
		var p ssrcPayload
		if !c.decode(data, &p) {
			return
		}
		c.dir.setSSRC(p.User, p.SSRC)
	case TypeAnswer:
		var p sdpPayload
		if !c.decode(data, &p) {
			return
		}
		c.mu.RLock()
		fn := c.onAnswer
		c.mu.RUnlock()
		if fn != nil {
			fn(webrtc.SessionDescription{Type: webrtc.SDPTypeAnswer, SDP: p.SDP})
		}
	case TypeCandidate:
		var p candidatePayload
		if !c.decode(data, &p) {
			return
		}
		c.mu.RLock()
		fn := c.onCandidate
		c.mu.RUnlock()
		if fn != nil {
			fn(webrtc.ICECandidateInit{Candidate: p.Candidate, SDPMid: p.SDPMid, SDPMLineIndex: p.SDPMLineIndex})
		}
	case TypePong:
	case TypeError:
		var p errorPayload
		_ = json.Unmarshal(data, &p)
		c.logger.Warn().Str("error", p.Error).Msg("server error")
	default:
		c.logger.Warn().Str("type", env.Type).Msg("unknown message")
	}
}

func (c *Client) decode(data []byte, v any) bool {
	if err := json.Unmarshal(data, v); err != nil {
		c.logger.Error().Err(err).Msg("bad payload")
		return false
	}
	return true
}
