package social

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

type PostInstructionConfig struct {
	AuthorityPK solana.PublicKey
	Content     string

	// PostIndex is the slot the content is written into, normally the
	// post tracker's current PostCount. Must be below MaxPostSlots.
	PostIndex uint64
}

func (c *PostInstructionConfig) Validate() error {
	if c.AuthorityPK.IsZero() {
		return fmt.Errorf("authority public key is required")
	}
	if len(c.Content) == 0 {
		return fmt.Errorf("post content is required")
	}
	if len(c.Content) > MaxPostContentLength {
		return fmt.Errorf("post content exceeds %d bytes", MaxPostContentLength)
	}
	if c.PostIndex >= MaxPostSlots {
		return fmt.Errorf("post slot index %d exceeds maximum of %d slots per user", c.PostIndex, MaxPostSlots)
	}
	return nil
}

// Builds the instruction that writes post content into the given slot. The
// post tracker PDA comes first so the program can bump its count, then the
// slot PDA being created.
func BuildPostInstruction(
	programID solana.PublicKey,
	config PostInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	// Serialize the instruction data.
	ins := SocialInstruction{
		Type:    PostInstructionIndex,
		Content: config.Content,
	}
	data, err := ins.Serialize()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize args: %w", err)
	}

	// Derive the post tracker and post slot PDAs.
	trackerPDA, _, err := DerivePostTrackerAddress(programID, config.AuthorityPK)
	if err != nil {
		return nil, fmt.Errorf("failed to derive post tracker PDA: %w", err)
	}
	slotPDA, _, err := DerivePostSlotAddress(programID, config.AuthorityPK, config.PostIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to derive post slot PDA: %w", err)
	}

	// Build accounts.
	accounts := []*solana.AccountMeta{
		{PublicKey: config.AuthorityPK, IsSigner: true, IsWritable: true},
		{PublicKey: trackerPDA, IsSigner: false, IsWritable: true},
		{PublicKey: slotPDA, IsSigner: false, IsWritable: true},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
	}

	return &solana.GenericInstruction{
		ProgID:        programID,
		AccountValues: accounts,
		DataBytes:     data,
	}, nil
}
