package core

import (
	"context"

	"github.com/pion/webrtc/v4"
)

// MediaConnection is the receive-only media leg that feeds remote levels.
type MediaConnection interface {
	// Start configures internal callbacks and binds the connection lifetime to ctx.
	Start(ctx context.Context) error
	// Close should stop all underlying media resources.
	Close()
	// CreateOffer builds the local offer and waits for ICE gathering.
	CreateOffer() (*webrtc.SessionDescription, error)
	ApplyAnswer(webrtc.SessionDescription) error
	AddICECandidate(webrtc.ICECandidateInit) error
	// OnClosed sets a callback invoked once the peer connection is gone.
	OnClosed(func())
}
