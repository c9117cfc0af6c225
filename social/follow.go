package social

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

type FollowInstructionConfig struct {
	AuthorityPK solana.PublicKey
	TargetPK    solana.PublicKey
}

func (c *FollowInstructionConfig) Validate() error {
	if c.AuthorityPK.IsZero() {
		return fmt.Errorf("authority public key is required")
	}
	if c.TargetPK.IsZero() {
		return fmt.Errorf("target public key is required")
	}
	return nil
}

// Builds the instruction that adds the target to the caller's follow list.
// The target travels in the payload; the only account is the caller's
// profile PDA.
func BuildFollowInstruction(
	programID solana.PublicKey,
	config FollowInstructionConfig,
) (solana.Instruction, error) {
	return buildFollowListInstruction(programID, FollowInstructionIndex, config)
}

// Builds the instruction that removes the target from the caller's follow
// list. Same account shape as Follow.
func BuildUnfollowInstruction(
	programID solana.PublicKey,
	config FollowInstructionConfig,
) (solana.Instruction, error) {
	return buildFollowListInstruction(programID, UnfollowInstructionIndex, config)
}

func buildFollowListInstruction(
	programID solana.PublicKey,
	instructionType SocialInstructionType,
	config FollowInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	// Serialize the instruction data.
	ins := SocialInstruction{
		Type:   instructionType,
		Target: config.TargetPK,
	}
	data, err := ins.Serialize()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize args: %w", err)
	}

	// Derive the caller's profile PDA.
	pda, _, err := DeriveProfileAddress(programID, config.AuthorityPK)
	if err != nil {
		return nil, fmt.Errorf("failed to derive PDA: %w", err)
	}

	// Build accounts.
	accounts := []*solana.AccountMeta{
		{PublicKey: pda, IsSigner: false, IsWritable: true},
	}

	return &solana.GenericInstruction{
		ProgID:        programID,
		AccountValues: accounts,
		DataBytes:     data,
	}, nil
}
