package kvstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	err   error

	lastGet *dynamodb.GetItemInput
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(key map[string]types.AttributeValue) string {
	if s, ok := key["doc_key"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastGet = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.items[keyOf(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	delete(f.items, keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func TestDynamoDBStore(t *testing.T) {
	fake := newFakeDynamo()
	s := NewDynamoDBStore(fake, "calcplanner_kv")

	exerciseStore(t, s)

	t.Run("reads are consistent and target the table", func(t *testing.T) {
		_, _, err := s.Get(context.Background(), "materials")
		require.NoError(t, err)
		assert.Equal(t, "calcplanner_kv", aws.ToString(fake.lastGet.TableName))
		assert.True(t, aws.ToBool(fake.lastGet.ConsistentRead))
	})

	t.Run("item carries updated_at", func(t *testing.T) {
		require.NoError(t, s.Put(context.Background(), "estimates", []byte("[]")))
		item := fake.items["estimates"]
		_, ok := item["updated_at"].(*types.AttributeValueMemberS)
		assert.True(t, ok)
	})

	t.Run("client errors propagate", func(t *testing.T) {
		boom := errors.New("throttled")
		f := newFakeDynamo()
		f.err = boom
		s := NewDynamoDBStore(f, "t")

		_, _, err := s.Get(context.Background(), "materials")
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, s.Put(context.Background(), "materials", nil), boom)
	})
}
