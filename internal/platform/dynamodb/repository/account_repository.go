package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"github.com/dankic7/dolgovi/internal/domain/account"
	commonErrors "github.com/dankic7/dolgovi/internal/domain/errors"
	"github.com/dankic7/dolgovi/internal/platform/dynamodb/client"
)

// DynamoDBAccountRepository implements the account.Repository interface
type DynamoDBAccountRepository struct {
	client client.Client
	table  string
}

// NewDynamoDBAccountRepository creates a new DynamoDBAccountRepository
func NewDynamoDBAccountRepository(client client.Client, table string) *DynamoDBAccountRepository {
	return &DynamoDBAccountRepository{
		client: client,
		table:  table,
	}
}

// AccountYearDDB mirrors account.AccountYear with the debt held as a string
// so DynamoDB never sees a binary float
type AccountYearDDB struct {
	account.AccountYear
	InitialDebt string `json:"initialDebt" dynamodbav:"initialDebt"`
}

func toAccountYear(item AccountYearDDB) (*account.AccountYear, error) {
	debt, err := decimal.NewFromString(item.InitialDebt)
	if err != nil {
		return nil, commonErrors.NewInternalError("stored initial debt is not a valid decimal", err)
	}
	ay := item.AccountYear
	ay.InitialDebt = debt
	return &ay, nil
}

// GetAccountYear retrieves the record for (customer, year), or NOT_FOUND
func (r *DynamoDBAccountRepository) GetAccountYear(ctx context.Context, customerID string, year int) (*account.AccountYear, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: customerPK(customerID)},
			"SK": &types.AttributeValueMemberS{Value: accountSK(year)},
		},
	})
	if err != nil {
		return nil, commonErrors.NewInternalError("failed to get account year", err)
	}
	if len(result.Item) == 0 {
		return nil, commonErrors.NewNotFoundError("account year not found")
	}

	var item AccountYearDDB
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, commonErrors.NewInternalError("failed to unmarshal account year", err)
	}
	return toAccountYear(item)
}

// UpsertAccountYear inserts or overwrites the record keyed on
// (customer, year). An unconditional PutItem is the upsert.
func (r *DynamoDBAccountRepository) UpsertAccountYear(ctx context.Context, ay *account.AccountYear) error {
	ay.PK = customerPK(ay.CustomerID)
	ay.SK = accountSK(ay.Year)

	item, err := attributevalue.MarshalMap(AccountYearDDB{
		AccountYear: *ay,
		InitialDebt: ay.InitialDebt.StringFixed(2),
	})
	if err != nil {
		return commonErrors.NewInternalError("failed to marshal account year", err)
	}
	item["PK"] = &types.AttributeValueMemberS{Value: ay.PK}
	item["SK"] = &types.AttributeValueMemberS{Value: ay.SK}
	item["Type"] = &types.AttributeValueMemberS{Value: "account_year"}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return commonErrors.NewInternalError("failed to upsert account year", err)
	}
	return nil
}

// ListAccountYears returns every recorded account year for a customer in
// ascending year order (the sort key encodes the year zero-padded)
func (r *DynamoDBAccountRepository) ListAccountYears(ctx context.Context, customerID string) ([]*account.AccountYear, error) {
	keyCondition := expression.Key("PK").Equal(expression.Value(customerPK(customerID))).
		And(expression.Key("SK").BeginsWith("ACCOUNT#"))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCondition).Build()
	if err != nil {
		return nil, commonErrors.NewInternalError("failed to build expression", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	years := make([]*account.AccountYear, 0)
	for {
		result, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, commonErrors.NewInternalError("failed to list account years", err)
		}
		for _, raw := range result.Items {
			var item AccountYearDDB
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				return nil, commonErrors.NewInternalError("failed to unmarshal account year", err)
			}
			ay, err := toAccountYear(item)
			if err != nil {
				return nil, err
			}
			years = append(years, ay)
		}
		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	return years, nil
}
