package types

import (
	"time"
)

// ItemType represents the type of item in the unified table
type ItemType string

const (
	ItemTypeCredential ItemType = "CREDENTIAL"
)

// CredentialSortKey is the sort key of Tradier credential items
const CredentialSortKey = "TRADIER"

// ItemKey is the primary key of an item in the unified table
type ItemKey struct {
	PK string `dynamodbav:"pk"` // Partition key
	SK string `dynamodbav:"sk"` // Sort key
}

// CredentialKey returns the key of the Tradier credential stored for profile
func CredentialKey(profile string) ItemKey {
	return ItemKey{
		PK: string(ItemTypeCredential) + "#" + profile,
		SK: CredentialSortKey,
	}
}

// CredentialItem is a Tradier endpoint and access token stored in the unified table.
// AccessToken is plaintext here; it only exists while the item is being marshaled.
type CredentialItem struct {
	PK          string    `dynamodbav:"pk"`
	SK          string    `dynamodbav:"sk"`
	Type        ItemType  `dynamodbav:"type"`
	Profile     string    `dynamodbav:"profile"`
	Endpoint    string    `dynamodbav:"endpoint"`
	AccessToken string    `dynamodbav:"access_token"`
	CreatedAt   time.Time `dynamodbav:"created_at"`
	UpdatedAt   time.Time `dynamodbav:"updated_at"`
}
