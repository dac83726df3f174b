package kvstore

import (
	"context"
	"fmt"

	"calcplanner/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the subset of *dynamodb.Client the store calls.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type kvItem struct {
	Key       string `dynamodbav:"doc_key"`
	Value     []byte `dynamodbav:"doc_value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoDBStore keeps one item per document; the table's partition key is
// the string attribute doc_key.
type DynamoDBStore struct {
	client    DynamoDBAPI
	tableName string
}

var _ interfaces.IKeyValueStore = (*DynamoDBStore)(nil)

func NewDynamoDBStore(client DynamoDBAPI, tableName string) *DynamoDBStore {
	return &DynamoDBStore{client: client, tableName: tableName}
}

func (s *DynamoDBStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            s.keyAttr(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, fmt.Errorf("dynamodb get %q: %w", key, err)
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}
	var item kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, false, fmt.Errorf("dynamodb decode %q: %w", key, err)
	}
	return item.Value, true, nil
}

func (s *DynamoDBStore) Put(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(kvItem{Key: key, Value: value, UpdatedAt: nowStamp()})
	if err != nil {
		return err
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("dynamodb put %q: %w", key, err)
	}
	return nil
}

func (s *DynamoDBStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       s.keyAttr(key),
	})
	return err
}

func (s *DynamoDBStore) Close() error { return nil }

func (s *DynamoDBStore) keyAttr(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		colKey: &types.AttributeValueMemberS{Value: key},
	}
}
