// Package secret provides a string wrapper for credentials that redacts itself
// everywhere except an explicit Reveal call.
package secret

import (
	"fmt"
	"io"
	"runtime"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Redacted is printed in place of a secret's plaintext.
const Redacted = "[REDACTED]"

// Secret holds a sensitive string such as an API access token.
//
// Every default representation of a Secret (fmt verbs, JSON, text and
// DynamoDB marshaling) yields Redacted. The plaintext is only available
// through Reveal. Copies of a Secret share the same backing buffer, so
// passing one around never duplicates the plaintext.
type Secret struct {
	v *value
}

type value struct {
	b []byte
}

// New wraps token in a Secret.
func New(token string) Secret {
	v := &value{b: []byte(token)}
	runtime.AddCleanup(v, func(b []byte) { clear(b) }, v.b)
	return Secret{v: v}
}

// Reveal returns the plaintext. Call sites of Reveal are the only places
// a token can leave this package.
func (s Secret) Reveal() string {
	if s.v == nil {
		return ""
	}
	return string(s.v.b)
}

// IsEmpty reports whether the secret holds no plaintext, either because it
// was created empty or because it has been destroyed.
func (s Secret) IsEmpty() bool {
	return s.v == nil || len(s.v.b) == 0
}

// Destroy zeroes the backing buffer. Every copy of s is affected.
// Destroy must not be called concurrently with Reveal.
func (s Secret) Destroy() {
	if s.v == nil {
		return
	}
	clear(s.v.b)
	s.v.b = nil
}

func (s Secret) String() string {
	return Redacted
}

func (s Secret) GoString() string {
	return "secret.Secret(" + Redacted + ")"
}

// Format implements fmt.Formatter so that no verb, including %x and %#v,
// reaches the underlying buffer.
func (s Secret) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		io.WriteString(f, strconv.Quote(Redacted))
	case 'v':
		if f.Flag('#') {
			io.WriteString(f, s.GoString())
			return
		}
		io.WriteString(f, Redacted)
	default:
		io.WriteString(f, Redacted)
	}
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(Redacted)), nil
}

func (s Secret) MarshalText() ([]byte, error) {
	return []byte(Redacted), nil
}

// MarshalDynamoDBAttributeValue keeps a Secret embedded in an item from
// being written in plaintext. Store Reveal() explicitly when that is the intent.
func (s Secret) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberS{Value: Redacted}, nil
}
