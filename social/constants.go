package social

// Social Program IDs
const (
	// SOCIAL_PROGRAM_ID_LOCALNET is the social program ID deployed on a local validator
	SOCIAL_PROGRAM_ID_LOCALNET = "7DGy2um3GUoptaPYbKfAknhvsjYt97noMKEcHZw7Eqgf"
)

// PDA seeds for the social program
const (
	// Seed for per-user profile PDAs
	UserProfileSeed = "profile"
	// Seed for per-user post tracker and post slot PDAs
	UserPostSeed = "post"
)

const (
	// MaxPostSlots is the maximum number of post slots addressable per user.
	//
	// Post slot PDAs are derived with a single-byte index seed, so the
	// on-chain addressing scheme caps out at 256 posts per user. The limit
	// is part of the wire contract with the social program; widening it
	// requires a coordinated change to the program's seed scheme.
	MaxPostSlots = 256

	// MaxPostContentLength is the maximum UTF-8 byte length of post content
	// accepted by a single transaction.
	//
	// Messages transmitted to Solana validators must not exceed the IPv6 MTU
	// size, leaving 1232 bytes for serialized transaction data. After the
	// transaction envelope, account list, and instruction header there is
	// comfortably room for 1KB of content.
	MaxPostContentLength = 1024
)
