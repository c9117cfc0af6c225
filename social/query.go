package social

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

type QueryFollowsInstructionConfig struct {
	AuthorityPK solana.PublicKey
}

func (c *QueryFollowsInstructionConfig) Validate() error {
	if c.AuthorityPK.IsZero() {
		return fmt.Errorf("authority public key is required")
	}
	return nil
}

// Builds the instruction that asks the program to read back the caller's
// follow list.
func BuildQueryFollowsInstruction(
	programID solana.PublicKey,
	config QueryFollowsInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	ins := SocialInstruction{Type: QueryFollowsInstructionIndex}
	data, err := ins.Serialize()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize args: %w", err)
	}

	pda, _, err := DeriveProfileAddress(programID, config.AuthorityPK)
	if err != nil {
		return nil, fmt.Errorf("failed to derive PDA: %w", err)
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: pda, IsSigner: false, IsWritable: true},
	}

	return &solana.GenericInstruction{
		ProgID:        programID,
		AccountValues: accounts,
		DataBytes:     data,
	}, nil
}

type QueryPostsInstructionConfig struct {
	AuthorityPK solana.PublicKey
	PostIndex   uint64
}

func (c *QueryPostsInstructionConfig) Validate() error {
	if c.AuthorityPK.IsZero() {
		return fmt.Errorf("authority public key is required")
	}
	if c.PostIndex >= MaxPostSlots {
		return fmt.Errorf("post slot index %d exceeds maximum of %d slots per user", c.PostIndex, MaxPostSlots)
	}
	return nil
}

// Builds the instruction that asks the program to read back a post slot.
func BuildQueryPostsInstruction(
	programID solana.PublicKey,
	config QueryPostsInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	ins := SocialInstruction{Type: QueryPostsInstructionIndex}
	data, err := ins.Serialize()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize args: %w", err)
	}

	trackerPDA, _, err := DerivePostTrackerAddress(programID, config.AuthorityPK)
	if err != nil {
		return nil, fmt.Errorf("failed to derive post tracker PDA: %w", err)
	}
	slotPDA, _, err := DerivePostSlotAddress(programID, config.AuthorityPK, config.PostIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to derive post slot PDA: %w", err)
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: trackerPDA, IsSigner: false, IsWritable: true},
		{PublicKey: slotPDA, IsSigner: false, IsWritable: true},
	}

	return &solana.GenericInstruction{
		ProgID:        programID,
		AccountValues: accounts,
		DataBytes:     data,
	}, nil
}
