package social

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Derives the PDA holding a user's profile account
func DeriveProfileAddress(
	programID solana.PublicKey,
	authority solana.PublicKey,
) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{
		authority[:],
		[]byte(UserProfileSeed),
	}

	return solana.FindProgramAddress(seeds, programID)
}

// Derives the PDA holding a user's post tracker account. The tracker
// stores the number of posts written so far.
func DerivePostTrackerAddress(
	programID solana.PublicKey,
	authority solana.PublicKey,
) (solana.PublicKey, uint8, error) {
	seeds := [][]byte{
		authority[:],
		[]byte(UserPostSeed),
	}

	return solana.FindProgramAddress(seeds, programID)
}

// Derives the PDA holding a single post slot.
//
// The slot index is encoded as a single seed byte, which is what caps
// addressable slots at MaxPostSlots per user. Indexes at or beyond the cap
// are rejected rather than wrapped.
func DerivePostSlotAddress(
	programID solana.PublicKey,
	authority solana.PublicKey,
	index uint64,
) (solana.PublicKey, uint8, error) {
	if index >= MaxPostSlots {
		return solana.PublicKey{}, 0, fmt.Errorf("post slot index %d exceeds maximum of %d slots per user", index, MaxPostSlots)
	}

	seeds := [][]byte{
		authority[:],
		[]byte(UserPostSeed),
		{byte(index)},
	}

	return solana.FindProgramAddress(seeds, programID)
}
