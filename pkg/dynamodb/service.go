package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	log "github.com/sirupsen/logrus"

	"github.com/bluejacket-trading/bluejacket/pkg/tradier"
	"github.com/bluejacket-trading/bluejacket/pkg/types"
)

// API is the subset of the DynamoDB client used by Service
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Service stores Tradier credentials in a single DynamoDB table
type Service struct {
	client    API
	tableName string
	now       func() time.Time
}

// NewService creates a new DynamoDB service instance
func NewService(ctx context.Context, region, tableName string) (*Service, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewServiceWithClient(dynamodb.NewFromConfig(cfg), tableName), nil
}

// NewServiceWithClient creates a service on top of an existing client
func NewServiceWithClient(client API, tableName string) *Service {
	return &Service{
		client:    client,
		tableName: tableName,
		now:       time.Now,
	}
}

// LoadConfig reads the credential stored for profile. A missing item or
// empty token is reported as a *tradier.MissingCredentialError naming the
// item's partition key. An empty endpoint falls back to the sandbox.
func (d *Service) LoadConfig(ctx context.Context, profile string) (*tradier.Config, error) {
	item, err := d.getCredential(ctx, profile)
	if err != nil {
		return nil, err
	}

	key := types.CredentialKey(profile)
	if item == nil || item.AccessToken == "" {
		return nil, &tradier.MissingCredentialError{Variable: key.PK}
	}

	endpoint := item.Endpoint
	if endpoint == "" {
		endpoint = tradier.DefaultEndpoint()
	}

	log.WithFields(log.Fields{
		"table":    d.tableName,
		"profile":  profile,
		"endpoint": endpoint,
	}).Debug("Loaded Tradier API configuration from DynamoDB")

	return tradier.New(endpoint, item.AccessToken), nil
}

// SaveConfig stores cfg under profile, keeping the original creation time
// when the item already exists
func (d *Service) SaveConfig(ctx context.Context, profile string, cfg *tradier.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	existing, err := d.getCredential(ctx, profile)
	if err != nil {
		return err
	}

	now := d.now().UTC()
	key := types.CredentialKey(profile)
	item := types.CredentialItem{
		PK:          key.PK,
		SK:          key.SK,
		Type:        types.ItemTypeCredential,
		Profile:     profile,
		Endpoint:    cfg.Endpoint,
		AccessToken: cfg.AccessToken.Reveal(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if existing != nil && !existing.CreatedAt.IsZero() {
		item.CreatedAt = existing.CreatedAt
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put item: %w", err)
	}

	return nil
}

func (d *Service) getCredential(ctx context.Context, profile string) (*types.CredentialItem, error) {
	key, err := attributevalue.MarshalMap(types.CredentialKey(profile))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key: %w", err)
	}

	result, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.tableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if len(result.Item) == 0 {
		return nil, nil
	}

	var item types.CredentialItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}

	return &item, nil
}
