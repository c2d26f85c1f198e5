package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dankic7/dolgovi/internal/domain/account"
	commonErrors "github.com/dankic7/dolgovi/internal/domain/errors"
	"github.com/dankic7/dolgovi/internal/platform/dynamodb/client"
)

func TestGetAccountYear(t *testing.T) {
	t.Run("absent record is not found", func(t *testing.T) {
		mock := client.NewMockDynamoDBClient()
		mock.GetItemFn = func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, "CUSTOMER#cust-1", params.Key["PK"].(*types.AttributeValueMemberS).Value)
			assert.Equal(t, "ACCOUNT#2024", params.Key["SK"].(*types.AttributeValueMemberS).Value)
			return &dynamodb.GetItemOutput{}, nil
		}

		repo := NewDynamoDBAccountRepository(mock, "test-table")
		_, err := repo.GetAccountYear(context.Background(), "cust-1", 2024)
		assert.ErrorIs(t, err, commonErrors.NewNotFoundError(""))
	})

	t.Run("decodes the stored debt string", func(t *testing.T) {
		ay := account.AccountYear{
			CustomerID: "cust-1",
			Year:       2024,
			CreatedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		item, err := attributevalue.MarshalMap(AccountYearDDB{AccountYear: ay, InitialDebt: "1000.00"})
		require.NoError(t, err)

		mock := client.NewMockDynamoDBClient()
		mock.GetItemFn = func(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: item}, nil
		}

		repo := NewDynamoDBAccountRepository(mock, "test-table")
		got, err := repo.GetAccountYear(context.Background(), "cust-1", 2024)
		require.NoError(t, err)
		assert.Equal(t, 2024, got.Year)
		assert.Equal(t, "1000.00", got.InitialDebt.StringFixed(2))
	})
}

func TestUpsertAccountYear(t *testing.T) {
	var put *dynamodb.PutItemInput
	mock := client.NewMockDynamoDBClient()
	mock.PutItemFn = func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
		put = params
		return &dynamodb.PutItemOutput{}, nil
	}

	repo := NewDynamoDBAccountRepository(mock, "test-table")
	err := repo.UpsertAccountYear(context.Background(), &account.AccountYear{
		CustomerID:  "cust-1",
		Year:        2024,
		InitialDebt: decimal.RequireFromString("1000"),
	})
	require.NoError(t, err)

	require.NotNil(t, put)
	// unconditional put: overwriting an existing year is the upsert
	assert.Nil(t, put.ConditionExpression)
	assert.Equal(t, "ACCOUNT#2024", put.Item["SK"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "1000.00", put.Item["initialDebt"].(*types.AttributeValueMemberS).Value)
}
