package social_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/hantong6/social-cli/social"
)

func TestSDK_Social_InitUser_HappyPath(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	authority := solana.NewWallet().PublicKey()

	config := social.InitUserInstructionConfig{
		AuthorityPK: authority,
		SeedType:    social.UserProfileSeed,
	}

	ix, err := social.BuildInitUserInstruction(programID, config)
	require.NoError(t, err)
	require.NotNil(t, ix)
	require.Equal(t, programID, ix.ProgramID(), "program ID should match")

	profilePDA, _, err := social.DeriveProfileAddress(programID, authority)
	require.NoError(t, err)

	accounts := ix.Accounts()
	require.Len(t, accounts, 3)

	require.Equal(t, authority, accounts[0].PublicKey)
	require.True(t, accounts[0].IsSigner)
	require.True(t, accounts[0].IsWritable)

	require.Equal(t, profilePDA, accounts[1].PublicKey)
	require.False(t, accounts[1].IsSigner)
	require.True(t, accounts[1].IsWritable)

	require.Equal(t, solana.SystemProgramID, accounts[2].PublicKey)
	require.False(t, accounts[2].IsSigner)
	require.False(t, accounts[2].IsWritable)

	data, err := ix.Data()
	require.NoError(t, err)
	require.Equal(t, uint8(social.InitInstructionIndex), data[0], "discriminator mismatch")
}

func TestSDK_Social_InitUser_PostTrackerSeedDerivesTrackerPDA(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()
	authority := solana.NewWallet().PublicKey()

	ix, err := social.BuildInitUserInstruction(programID, social.InitUserInstructionConfig{
		AuthorityPK: authority,
		SeedType:    social.UserPostSeed,
	})
	require.NoError(t, err)

	trackerPDA, _, err := social.DerivePostTrackerAddress(programID, authority)
	require.NoError(t, err)
	require.Equal(t, trackerPDA, ix.Accounts()[1].PublicKey)
}

func TestSDK_Social_InitUser_InvalidConfig(t *testing.T) {
	t.Parallel()

	programID := solana.NewWallet().PublicKey()

	tests := []struct {
		name        string
		config      social.InitUserInstructionConfig
		expectError string
	}{
		{
			name: "missing_authority",
			config: social.InitUserInstructionConfig{
				SeedType: social.UserProfileSeed,
			},
			expectError: "authority public key is required",
		},
		{
			name: "empty_seed_type",
			config: social.InitUserInstructionConfig{
				AuthorityPK: solana.NewWallet().PublicKey(),
			},
			expectError: "seed type must be",
		},
		{
			name: "unknown_seed_type",
			config: social.InitUserInstructionConfig{
				AuthorityPK: solana.NewWallet().PublicKey(),
				SeedType:    "avatar",
			},
			expectError: "seed type must be",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := social.BuildInitUserInstruction(programID, tt.config)
			require.ErrorContains(t, err, tt.expectError)
		})
	}
}
