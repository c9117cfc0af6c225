package social

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

type InitUserInstructionConfig struct {
	AuthorityPK solana.PublicKey
	SeedType    string
}

func (c *InitUserInstructionConfig) Validate() error {
	if c.AuthorityPK.IsZero() {
		return fmt.Errorf("authority public key is required")
	}
	if c.SeedType != UserProfileSeed && c.SeedType != UserPostSeed {
		return fmt.Errorf("seed type must be %q or %q", UserProfileSeed, UserPostSeed)
	}
	return nil
}

// Builds the instruction that creates the caller's profile or post tracker
// account, depending on the seed type.
func BuildInitUserInstruction(
	programID solana.PublicKey,
	config InitUserInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	// Serialize the instruction data.
	ins := SocialInstruction{
		Type:     InitInstructionIndex,
		SeedType: config.SeedType,
	}
	data, err := ins.Serialize()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize args: %w", err)
	}

	// Derive the PDA being created.
	pda, _, err := solana.FindProgramAddress([][]byte{
		config.AuthorityPK[:],
		[]byte(config.SeedType),
	}, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive PDA: %w", err)
	}

	// Build accounts. The authority funds the new account, so it signs and
	// is writable; the system program is invoked for the allocation.
	accounts := []*solana.AccountMeta{
		{PublicKey: config.AuthorityPK, IsSigner: true, IsWritable: true},
		{PublicKey: pda, IsSigner: false, IsWritable: true},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
	}

	return &solana.GenericInstruction{
		ProgID:        programID,
		AccountValues: accounts,
		DataBytes:     data,
	}, nil
}
