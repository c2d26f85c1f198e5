package repository

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonErrors "github.com/dankic7/dolgovi/internal/domain/errors"
	"github.com/dankic7/dolgovi/internal/domain/payment"
	"github.com/dankic7/dolgovi/internal/platform/dynamodb/client"
)

func testPayment(id, date, amount string) *payment.Payment {
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	return &payment.Payment{
		PaymentID:  id,
		CustomerID: "cust-1",
		Year:       2024,
		Date:       date,
		Amount:     decimal.RequireFromString(amount),
		Note:       "test",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func marshalPayment(t *testing.T, p *payment.Payment) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(PaymentDDB{
		Payment: *p,
		Amount:  p.Amount.StringFixed(2),
	})
	require.NoError(t, err)
	item["PK"] = &types.AttributeValueMemberS{Value: customerPK(p.CustomerID)}
	item["SK"] = &types.AttributeValueMemberS{Value: paymentSK(p.Year, p.Date, p.PaymentID)}
	return item
}

func TestCreatePayment(t *testing.T) {
	t.Run("writes the item with a date-ordered sort key", func(t *testing.T) {
		var put *dynamodb.PutItemInput
		mock := client.NewMockDynamoDBClient()
		mock.PutItemFn = func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			put = params
			return &dynamodb.PutItemOutput{}, nil
		}

		repo := NewDynamoDBPaymentRepository(mock, "test-table", slog.Default())
		p, err := repo.CreatePayment(context.Background(), testPayment("01ABC", "2024-03-01", "200.00"))
		require.NoError(t, err)
		assert.Equal(t, "200", p.Amount.String())

		require.NotNil(t, put)
		assert.Equal(t, "test-table", *put.TableName)
		assert.Equal(t, "attribute_not_exists(PK)", *put.ConditionExpression)

		sk := put.Item["SK"].(*types.AttributeValueMemberS).Value
		assert.Equal(t, "PAYMENT#2024#2024-03-01#01ABC", sk)

		amount := put.Item["amount"].(*types.AttributeValueMemberS).Value
		assert.Equal(t, "200.00", amount)
	})

	t.Run("maps a conditional check failure to a conflict", func(t *testing.T) {
		mock := client.NewMockDynamoDBClient()
		mock.PutItemFn = func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}

		repo := NewDynamoDBPaymentRepository(mock, "test-table", slog.Default())
		_, err := repo.CreatePayment(context.Background(), testPayment("01ABC", "2024-03-01", "200.00"))
		assert.ErrorIs(t, err, commonErrors.NewConflictError(""))
	})
}

func TestListPayments(t *testing.T) {
	mock := client.NewMockDynamoDBClient()
	mock.QueryFn = func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
		return &dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{
				marshalPayment(t, testPayment("01A", "2024-01-05", "200.00")),
				marshalPayment(t, testPayment("01B", "2024-03-01", "-50.00")),
			},
		}, nil
	}

	repo := NewDynamoDBPaymentRepository(mock, "test-table", slog.Default())
	payments, err := repo.ListPayments(context.Background(), "cust-1", 2024)
	require.NoError(t, err)
	require.Len(t, payments, 2)

	assert.Equal(t, "2024-01-05", payments[0].Date)
	assert.Equal(t, "200.00", payments[0].Amount.StringFixed(2))
	assert.Equal(t, "-50.00", payments[1].Amount.StringFixed(2))
}

func TestGetPaymentNotFound(t *testing.T) {
	mock := client.NewMockDynamoDBClient()
	mock.QueryFn = func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
		return &dynamodb.QueryOutput{}, nil
	}

	repo := NewDynamoDBPaymentRepository(mock, "test-table", slog.Default())
	_, err := repo.GetPayment(context.Background(), "cust-1", 2024, "missing")
	assert.ErrorIs(t, err, commonErrors.NewNotFoundError(""))
}

func TestUpdatePaymentMovesItemWhenDateChanges(t *testing.T) {
	stored := testPayment("01A", "2024-01-05", "200.00")

	var deletedSK string
	var putSK string

	mock := client.NewMockDynamoDBClient()
	mock.QueryFn = func(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
		return &dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{marshalPayment(t, stored)},
		}, nil
	}
	mock.DeleteItemFn = func(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
		deletedSK = params.Key["SK"].(*types.AttributeValueMemberS).Value
		return &dynamodb.DeleteItemOutput{}, nil
	}
	mock.PutItemFn = func(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
		putSK = params.Item["SK"].(*types.AttributeValueMemberS).Value
		return &dynamodb.PutItemOutput{}, nil
	}

	repo := NewDynamoDBPaymentRepository(mock, "test-table", slog.Default())

	updated := testPayment("01A", "2024-02-10", "250.00")
	_, err := repo.UpdatePayment(context.Background(), updated)
	require.NoError(t, err)

	assert.Equal(t, "PAYMENT#2024#2024-01-05#01A", deletedSK)
	assert.Equal(t, "PAYMENT#2024#2024-02-10#01A", putSK)
}
