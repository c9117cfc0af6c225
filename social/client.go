package social

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
)

var (
	// ErrAccountNotFound is returned when a profile, tracker, or post slot
	// account does not exist on-chain yet.
	ErrAccountNotFound = errors.New("account not found")
)

// Client is a high-level client for the social program. All state lives
// on-chain; the client derives addresses, encodes instructions, and submits
// transactions signed by the configured authority.
type Client struct {
	log       *slog.Logger
	rpc       RPCClient
	executor  *executor
	programID solana.PublicKey
}

func New(log *slog.Logger, rpc RPCClient, signer *solana.PrivateKey, programID solana.PublicKey) *Client {
	return &Client{
		log:       log,
		rpc:       rpc,
		executor:  NewExecutor(log, rpc, signer, programID),
		programID: programID,
	}
}

func (c *Client) ProgramID() solana.PublicKey {
	return c.programID
}

func (c *Client) Signer() *solana.PrivateKey {
	if c.executor == nil {
		return nil
	}
	return c.executor.signer
}

// InitUser creates the caller's profile or post tracker account, selected
// by seed type (UserProfileSeed or UserPostSeed).
func (c *Client) InitUser(ctx context.Context, seedType string) (solana.Signature, *solanarpc.GetTransactionResult, error) {
	if c.executor.signer == nil {
		return solana.Signature{}, nil, ErrNoPrivateKey
	}

	instruction, err := BuildInitUserInstruction(c.programID, InitUserInstructionConfig{
		AuthorityPK: c.executor.signer.PublicKey(),
		SeedType:    seedType,
	})
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to build instruction: %w", err)
	}

	return c.executor.ExecuteTransaction(ctx, instruction, nil)
}

// Follow adds the target identity to the caller's follow list.
func (c *Client) Follow(ctx context.Context, target solana.PublicKey) (solana.Signature, *solanarpc.GetTransactionResult, error) {
	return c.updateFollowList(ctx, BuildFollowInstruction, target)
}

// Unfollow removes the target identity from the caller's follow list.
func (c *Client) Unfollow(ctx context.Context, target solana.PublicKey) (solana.Signature, *solanarpc.GetTransactionResult, error) {
	return c.updateFollowList(ctx, BuildUnfollowInstruction, target)
}

func (c *Client) updateFollowList(
	ctx context.Context,
	build func(solana.PublicKey, FollowInstructionConfig) (solana.Instruction, error),
	target solana.PublicKey,
) (solana.Signature, *solanarpc.GetTransactionResult, error) {
	if c.executor.signer == nil {
		return solana.Signature{}, nil, ErrNoPrivateKey
	}

	instruction, err := build(c.programID, FollowInstructionConfig{
		AuthorityPK: c.executor.signer.PublicKey(),
		TargetPK:    target,
	})
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to build instruction: %w", err)
	}

	return c.executor.ExecuteTransaction(ctx, instruction, nil)
}

// QueryFollows submits the query instruction that has the program read back
// the caller's follow list. For a purely local read, use GetProfile.
func (c *Client) QueryFollows(ctx context.Context) (solana.Signature, *solanarpc.GetTransactionResult, error) {
	if c.executor.signer == nil {
		return solana.Signature{}, nil, ErrNoPrivateKey
	}

	instruction, err := BuildQueryFollowsInstruction(c.programID, QueryFollowsInstructionConfig{
		AuthorityPK: c.executor.signer.PublicKey(),
	})
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to build instruction: %w", err)
	}

	return c.executor.ExecuteTransaction(ctx, instruction, nil)
}

// PostContent writes content into the caller's next free post slot. The
// slot index comes from the on-chain post tracker, so the tracker account
// must have been initialized first (InitUser with UserPostSeed).
func (c *Client) PostContent(ctx context.Context, content string) (solana.Signature, *solanarpc.GetTransactionResult, error) {
	if c.executor.signer == nil {
		return solana.Signature{}, nil, ErrNoPrivateKey
	}

	authority := c.executor.signer.PublicKey()

	// Reject bad content before touching the network.
	precheck := PostInstructionConfig{AuthorityPK: authority, Content: content}
	if err := precheck.Validate(); err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to validate config: %w", err)
	}

	tracker, err := c.GetPostTracker(ctx, authority)
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to get post tracker: %w", err)
	}

	instruction, err := BuildPostInstruction(c.programID, PostInstructionConfig{
		AuthorityPK: authority,
		Content:     content,
		PostIndex:   tracker.PostCount,
	})
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to build instruction: %w", err)
	}

	c.log.Debug("posting content", "authority", shortKey(authority), "slot", tracker.PostCount)

	return c.executor.ExecuteTransaction(ctx, instruction, nil)
}

// QueryPosts submits the query instruction that has the program read back
// the given post slot. For a purely local read, use GetPost.
func (c *Client) QueryPosts(ctx context.Context, index uint64) (solana.Signature, *solanarpc.GetTransactionResult, error) {
	if c.executor.signer == nil {
		return solana.Signature{}, nil, ErrNoPrivateKey
	}

	instruction, err := BuildQueryPostsInstruction(c.programID, QueryPostsInstructionConfig{
		AuthorityPK: c.executor.signer.PublicKey(),
		PostIndex:   index,
	})
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to build instruction: %w", err)
	}

	return c.executor.ExecuteTransaction(ctx, instruction, nil)
}

// GetProfile fetches and decodes a user's profile account.
func (c *Client) GetProfile(ctx context.Context, authority solana.PublicKey) (*UserProfile, error) {
	pda, _, err := DeriveProfileAddress(c.programID, authority)
	if err != nil {
		return nil, fmt.Errorf("failed to derive PDA: %w", err)
	}

	data, err := c.fetchAccountData(ctx, pda)
	if err != nil {
		return nil, err
	}

	var profile UserProfile
	if err := profile.Deserialize(data); err != nil {
		return nil, fmt.Errorf("failed to deserialize account data: %w", err)
	}

	return &profile, nil
}

// GetPostTracker fetches and decodes a user's post tracker account.
func (c *Client) GetPostTracker(ctx context.Context, authority solana.PublicKey) (*PostTracker, error) {
	pda, _, err := DerivePostTrackerAddress(c.programID, authority)
	if err != nil {
		return nil, fmt.Errorf("failed to derive PDA: %w", err)
	}

	data, err := c.fetchAccountData(ctx, pda)
	if err != nil {
		return nil, err
	}

	var tracker PostTracker
	if err := tracker.Deserialize(data); err != nil {
		return nil, fmt.Errorf("failed to deserialize account data: %w", err)
	}

	return &tracker, nil
}

// GetPost fetches and decodes a single post slot of a user.
func (c *Client) GetPost(ctx context.Context, authority solana.PublicKey, index uint64) (*Post, error) {
	pda, _, err := DerivePostSlotAddress(c.programID, authority, index)
	if err != nil {
		return nil, fmt.Errorf("failed to derive PDA: %w", err)
	}

	data, err := c.fetchAccountData(ctx, pda)
	if err != nil {
		return nil, err
	}

	var post Post
	if err := post.Deserialize(data); err != nil {
		return nil, fmt.Errorf("failed to deserialize account data: %w", err)
	}

	return &post, nil
}

func (c *Client) fetchAccountData(ctx context.Context, account solana.PublicKey) ([]byte, error) {
	res, err := c.rpc.GetAccountInfo(ctx, account)
	if err != nil {
		if errors.Is(err, solanarpc.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account data: %w", err)
	}
	if res == nil || res.Value == nil {
		return nil, ErrAccountNotFound
	}

	data := res.Value.Data.GetBinary()
	if len(data) == 0 {
		return nil, ErrAccountNotFound
	}
	return data, nil
}
