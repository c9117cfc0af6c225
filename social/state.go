package social

import (
	"fmt"
	"io"
	"strings"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// UserProfile mirrors the profile account owned by the social program. The
// client never mutates it on-chain directly; it decodes the account data
// when querying and uses the local shape in tests.
type UserProfile struct {
	// DataLen tracks the follower count, kept in sync with Followers.
	DataLen uint16 // 2

	// Followers holds the identities this user follows.
	Followers []solana.PublicKey // 4 + n*32
}

func NewUserProfile() *UserProfile {
	return &UserProfile{
		DataLen:   0,
		Followers: []solana.PublicKey{},
	}
}

// Follow appends a followed identity, mirroring the program's state
// transition.
func (p *UserProfile) Follow(target solana.PublicKey) {
	p.Followers = append(p.Followers, target)
	p.DataLen = uint16(len(p.Followers))
}

func (p *UserProfile) Serialize(w io.Writer) error {
	enc := bin.NewBorshEncoder(w)
	if err := enc.Encode(p.DataLen); err != nil {
		return err
	}
	return enc.Encode(p.Followers)
}

func (p *UserProfile) Deserialize(data []byte) error {
	dec := bin.NewBorshDecoder(data)
	if err := dec.Decode(&p.DataLen); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if err := dec.Decode(&p.Followers); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if int(p.DataLen) != len(p.Followers) {
		return fmt.Errorf("%w: follower count %d does not match data length %d", ErrMalformedPayload, len(p.Followers), p.DataLen)
	}
	return nil
}

func (p *UserProfile) String() string {
	keys := make([]string, 0, len(p.Followers))
	for _, f := range p.Followers {
		keys = append(keys, shortKey(f))
	}
	return fmt.Sprintf("profile(follows=%d: %s)", p.DataLen, strings.Join(keys, ","))
}

// PostTracker mirrors the post tracker account. PostCount is the next free
// post slot index.
type PostTracker struct {
	PostCount uint64 // 8
}

func (t *PostTracker) Serialize(w io.Writer) error {
	enc := bin.NewBorshEncoder(w)
	return enc.Encode(t.PostCount)
}

func (t *PostTracker) Deserialize(data []byte) error {
	dec := bin.NewBorshDecoder(data)
	if err := dec.Decode(&t.PostCount); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}

// Post mirrors a single post slot account.
type Post struct {
	// Content is the UTF-8 post body.
	Content string // 4 + len

	// Timestamp is the logical timestamp assigned by the program when the
	// post was written.
	Timestamp uint64 // 8
}

func (p *Post) Serialize(w io.Writer) error {
	enc := bin.NewBorshEncoder(w)
	if err := enc.Encode(p.Content); err != nil {
		return err
	}
	return enc.Encode(p.Timestamp)
}

func (p *Post) Deserialize(data []byte) error {
	dec := bin.NewBorshDecoder(data)
	if err := dec.Decode(&p.Content); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if err := dec.Decode(&p.Timestamp); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return nil
}

// shortKey renders a compact base58 form of a key for log and String output.
func shortKey(pk solana.PublicKey) string {
	s := base58.Encode(pk[:])
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
