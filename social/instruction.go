package social

import (
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

// Represents the type of social program instruction
type SocialInstructionType uint8

const (
	// Creates a profile or post tracker account for the caller
	InitInstructionIndex SocialInstructionType = 0
	// Adds a target identity to the caller's follow list
	FollowInstructionIndex SocialInstructionType = 1
	// Removes a target identity from the caller's follow list
	UnfollowInstructionIndex SocialInstructionType = 2
	// Reads back the caller's follow list on-chain
	QueryFollowsInstructionIndex SocialInstructionType = 3
	// Writes post content into the next post slot
	PostInstructionIndex SocialInstructionType = 4
	// Reads back a post slot on-chain
	QueryPostsInstructionIndex SocialInstructionType = 5
)

var (
	// ErrUnknownInstruction is returned when decoding a payload whose
	// discriminant does not match any social program instruction.
	ErrUnknownInstruction = errors.New("unknown instruction discriminant")

	// ErrMalformedPayload is returned when an instruction payload is
	// truncated or carries trailing bytes beyond its variant's fields.
	ErrMalformedPayload = errors.New("malformed instruction payload")
)

// SocialInstruction is a decoded social program instruction payload. Type
// selects the variant; only the fields belonging to that variant are set.
type SocialInstruction struct {
	Type SocialInstructionType

	// SeedType is set for Init and selects which account to create
	// (UserProfileSeed or UserPostSeed).
	SeedType string

	// Target is set for Follow and Unfollow.
	Target solana.PublicKey

	// Content is set for Post.
	Content string
}

// Serializes the instruction into its borsh wire form: a one-byte
// discriminant followed by the variant's fields.
func (ins *SocialInstruction) Serialize() ([]byte, error) {
	switch ins.Type {
	case InitInstructionIndex:
		return borsh.Serialize(struct {
			Discriminator uint8
			SeedType      string
		}{
			Discriminator: uint8(InitInstructionIndex),
			SeedType:      ins.SeedType,
		})
	case FollowInstructionIndex, UnfollowInstructionIndex:
		return borsh.Serialize(struct {
			Discriminator uint8
			Target        [32]byte
		}{
			Discriminator: uint8(ins.Type),
			Target:        ins.Target,
		})
	case QueryFollowsInstructionIndex, QueryPostsInstructionIndex:
		return borsh.Serialize(struct {
			Discriminator uint8
		}{
			Discriminator: uint8(ins.Type),
		})
	case PostInstructionIndex:
		return borsh.Serialize(struct {
			Discriminator uint8
			Content       string
		}{
			Discriminator: uint8(PostInstructionIndex),
			Content:       ins.Content,
		})
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownInstruction, ins.Type)
	}
}

// DeserializeInstruction decodes a borsh instruction payload back into a
// SocialInstruction. The decode is strict: an unknown discriminant fails
// with ErrUnknownInstruction, and a truncated payload or trailing bytes
// fail with ErrMalformedPayload. Variants are never partially populated.
func DeserializeInstruction(data []byte) (*SocialInstruction, error) {
	dec := bin.NewBorshDecoder(data)

	var disc uint8
	if err := dec.Decode(&disc); err != nil {
		return nil, fmt.Errorf("%w: missing discriminant", ErrMalformedPayload)
	}

	ins := &SocialInstruction{Type: SocialInstructionType(disc)}

	switch ins.Type {
	case InitInstructionIndex:
		if err := dec.Decode(&ins.SeedType); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
	case FollowInstructionIndex, UnfollowInstructionIndex:
		if err := dec.Decode(&ins.Target); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
	case QueryFollowsInstructionIndex, QueryPostsInstructionIndex:
		// No fields.
	case PostInstructionIndex:
		if err := dec.Decode(&ins.Content); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownInstruction, disc)
	}

	if dec.Remaining() > 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedPayload, dec.Remaining())
	}

	return ins, nil
}
