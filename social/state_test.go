package social_test

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/hantong6/social-cli/social"
)

func TestSDK_Social_UserProfile_FollowKeepsDataLenInSync(t *testing.T) {
	t.Parallel()

	profile := social.NewUserProfile()
	require.Equal(t, uint16(0), profile.DataLen)

	a := solana.NewWallet().PublicKey()
	b := solana.NewWallet().PublicKey()

	profile.Follow(a)
	profile.Follow(b)

	require.Equal(t, uint16(2), profile.DataLen)
	require.Equal(t, []solana.PublicKey{a, b}, profile.Followers)
}

func TestSDK_Social_UserProfile_RoundTrip(t *testing.T) {
	t.Parallel()

	profile := social.NewUserProfile()
	profile.Follow(solana.NewWallet().PublicKey())
	profile.Follow(solana.NewWallet().PublicKey())
	profile.Follow(solana.NewWallet().PublicKey())

	buf := new(bytes.Buffer)
	require.NoError(t, profile.Serialize(buf))

	// 2 bytes count + 4 bytes vec length + 3*32 bytes keys
	require.Len(t, buf.Bytes(), 2+4+3*32)

	var got social.UserProfile
	require.NoError(t, got.Deserialize(buf.Bytes()))
	require.Equal(t, profile, &got)
}

func TestSDK_Social_UserProfile_EmptyAccount(t *testing.T) {
	t.Parallel()

	profile := social.NewUserProfile()

	buf := new(bytes.Buffer)
	require.NoError(t, profile.Serialize(buf))

	var got social.UserProfile
	require.NoError(t, got.Deserialize(buf.Bytes()))
	require.Equal(t, uint16(0), got.DataLen)
	require.Empty(t, got.Followers)
}

func TestSDK_Social_UserProfile_CountMismatch(t *testing.T) {
	t.Parallel()

	// DataLen says two followers, vec carries one.
	pk := solana.NewWallet().PublicKey()
	data := []byte{2, 0, 1, 0, 0, 0}
	data = append(data, pk[:]...)

	var got social.UserProfile
	err := got.Deserialize(data)
	require.ErrorIs(t, err, social.ErrMalformedPayload)
}

func TestSDK_Social_UserProfile_Truncated(t *testing.T) {
	t.Parallel()

	// Vec length says one follower but the key bytes are missing.
	data := []byte{1, 0, 1, 0, 0, 0, 0xAA}

	var got social.UserProfile
	err := got.Deserialize(data)
	require.ErrorIs(t, err, social.ErrMalformedPayload)
}

func TestSDK_Social_PostTracker_RoundTrip(t *testing.T) {
	t.Parallel()

	tracker := &social.PostTracker{PostCount: 42}

	buf := new(bytes.Buffer)
	require.NoError(t, tracker.Serialize(buf))
	require.Len(t, buf.Bytes(), 8)

	var got social.PostTracker
	require.NoError(t, got.Deserialize(buf.Bytes()))
	require.Equal(t, tracker, &got)
}

func TestSDK_Social_Post_RoundTrip(t *testing.T) {
	t.Parallel()

	post := &social.Post{
		Content:   "gm solana",
		Timestamp: 1_700_000_000,
	}

	buf := new(bytes.Buffer)
	require.NoError(t, post.Serialize(buf))

	var got social.Post
	require.NoError(t, got.Deserialize(buf.Bytes()))
	require.Equal(t, post, &got)
}

func TestSDK_Social_Post_TruncatedTimestamp(t *testing.T) {
	t.Parallel()

	data := []byte{2, 0, 0, 0, 'g', 'm', 1, 2}

	var got social.Post
	err := got.Deserialize(data)
	require.ErrorIs(t, err, social.ErrMalformedPayload)
}
