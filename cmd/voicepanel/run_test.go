package main

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pion/webrtc/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/dkeye/voicepanel/internal/core"
)

type fakeMedia struct {
	closed atomic.Int32
}

func (m *fakeMedia) Start(context.Context) error { return nil }
func (m *fakeMedia) Close()                      { m.closed.Add(1) }
func (m *fakeMedia) CreateOffer() (*webrtc.SessionDescription, error) {
	return &webrtc.SessionDescription{}, nil
}
func (m *fakeMedia) ApplyAnswer(webrtc.SessionDescription) error   { return nil }
func (m *fakeMedia) AddICECandidate(webrtc.ICECandidateInit) error { return nil }
func (m *fakeMedia) OnClosed(func())                               {}

func TestServeMediaDoesNotHoldUpOtherWork(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	gathering := make(chan struct{})
	media := &fakeMedia{}
	g.Go(func() error {
		return serveMedia(ctx, func(context.Context) (core.MediaConnection, error) {
			<-gathering
			return media, nil
		})
	})

	ran := make(chan struct{})
	g.Go(func() error {
		close(ran)
		<-ctx.Done()
		return nil
	})
	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("sibling did not start while media was negotiating")
	}

	close(gathering)
	cancel()
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), media.closed.Load())
}

func TestServeMediaFailureIsNotFatal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := serveMedia(ctx, func(context.Context) (core.MediaConnection, error) {
		return nil, errors.New("no route")
	})
	assert.NoError(t, err)
	assert.NoError(t, ctx.Err())
}
