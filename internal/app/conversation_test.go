package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginSend_EmptyMessageIsNoOp(t *testing.T) {
	a := newTestApp(t)
	activate(t, a, "sess-a")

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := a.BeginSend(text)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}
	assert.Empty(t, a.Sync.Messages())
	assert.False(t, a.Chat.InFlight())
}

func TestSend_SingleFlight(t *testing.T) {
	a := newTestApp(t)
	activate(t, a, "sess-a")

	first, err := a.BeginSend("hello")
	require.NoError(t, err)

	_, err = a.BeginSend("too soon")
	assert.ErrorIs(t, err, ErrSendInFlight)
	assert.Empty(t, a.Sync.Messages(), "rejected send must not touch the timeline")
	assert.True(t, a.Chat.Typing(), "rejected send must not disturb the indicator")

	_, err = a.CompleteSend(first, &ChatResponse{Message: "hi", SessionID: "sess-a"}, nil)
	require.NoError(t, err)

	// Slot is free again.
	_, err = a.BeginSend("next")
	assert.NoError(t, err)
}

func TestCompleteSend_AppendsAlternatingPairs(t *testing.T) {
	a := newTestApp(t)
	activate(t, a, "sess-a")

	for i, text := range []string{"first", "second", "third"} {
		ticket, err := a.BeginSend(text)
		require.NoError(t, err)
		_, err = a.CompleteSend(ticket, &ChatResponse{Message: "reply", SessionID: "sess-a"}, nil)
		require.NoError(t, err)
		assert.Len(t, a.Sync.Messages(), (i+1)*2, "timeline grows by exactly 2 per send")
	}

	for i, msg := range a.Sync.Messages() {
		wantUser := i%2 == 0
		assert.Equal(t, wantUser, msg.IsUser, "message %d", i)
	}
	assert.False(t, a.Chat.Typing())
}

func TestCompleteSend_FailureLeavesTimelineUntouched(t *testing.T) {
	a := newTestApp(t)
	activate(t, a, "sess-a")

	ticket, err := a.BeginSend("hello")
	require.NoError(t, err)

	netErr := &NetworkError{Op: "POST /chat", Err: errors.New("connection refused")}
	_, err = a.CompleteSend(ticket, nil, netErr)
	assert.ErrorIs(t, err, netErr)
	assert.Empty(t, a.Sync.Messages(), "failed send must not leave partial state")
	assert.False(t, a.Chat.Typing(), "indicator clears on failure")
	assert.False(t, a.Chat.InFlight())
}

func TestCompleteSend_AdoptsBackendMintedSession(t *testing.T) {
	a := newTestApp(t)

	// No session yet: the very first message is allowed through and the
	// backend mints the session.
	ticket, err := a.BeginSend("hello")
	require.NoError(t, err)
	assert.Empty(t, ticket.SessionID)

	_, err = a.CompleteSend(ticket, &ChatResponse{Message: "hi", SessionID: "minted-1"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "minted-1", a.Sessions.ActiveID())

	// Adopted id is durable.
	fresh := NewSessionManager(a.Sessions.store)
	assert.True(t, fresh.Resume())
	assert.Equal(t, "minted-1", fresh.ActiveID())
}

func TestCompleteSend_CrisisSignal(t *testing.T) {
	a := newTestApp(t)
	activate(t, a, "sess-a")

	ticket, err := a.BeginSend("a hard day")
	require.NoError(t, err)
	transition, err := a.CompleteSend(ticket, &ChatResponse{Message: "support", SessionID: "sess-a", CrisisDetected: true}, nil)
	require.NoError(t, err)
	assert.True(t, transition, "first crisis response transitions the safety state")
	assert.True(t, a.Safety.ModalOpen())

	a.Safety.CloseModal()

	// A later calm exchange never un-flags crisis.
	ticket, err = a.BeginSend("feeling better")
	require.NoError(t, err)
	transition, err = a.CompleteSend(ticket, &ChatResponse{Message: "glad", SessionID: "sess-a"}, nil)
	require.NoError(t, err)
	assert.False(t, transition)
	assert.True(t, a.Safety.Flagged())

	// And a repeat crisis response is not a second transition.
	ticket, err = a.BeginSend("struggling again")
	require.NoError(t, err)
	transition, err = a.CompleteSend(ticket, &ChatResponse{Message: "here", SessionID: "sess-a", CrisisDetected: true}, nil)
	require.NoError(t, err)
	assert.False(t, transition)
	assert.False(t, a.Safety.ModalOpen(), "modal is only forced open at the first transition")
}
