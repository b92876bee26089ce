package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser(101, "alice")
	require.NoError(t, err)
	assert.Equal(t, UserID(101), u.ID)
	assert.Equal(t, "alice", u.Username)

	_, err = NewUser(1, "")
	assert.ErrorIs(t, err, ErrUsernameEmpty)

	_, err = NewUser(1, strings.Repeat("x", MaxUsernameLen+1))
	assert.ErrorIs(t, err, ErrUsernameTooLong)
}

func TestSetUsernameKeepsOldOnError(t *testing.T) {
	u := &User{ID: 1, Username: "bob"}
	assert.ErrorIs(t, u.SetUsername(""), ErrUsernameEmpty)
	assert.Equal(t, "bob", u.Username)
}

func TestAvatarURL(t *testing.T) {
	u := &User{ID: 1, Username: "bob"}
	assert.Empty(t, u.AvatarURL("png", AvatarSize))

	u.Avatar = "https://cdn.example/avatars/1/abc"
	assert.Equal(t, "https://cdn.example/avatars/1/abc.png?size=32", u.AvatarURL("png", AvatarSize))
}
