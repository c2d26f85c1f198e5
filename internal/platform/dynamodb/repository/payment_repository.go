package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	commonErrors "github.com/dankic7/dolgovi/internal/domain/errors"
	"github.com/dankic7/dolgovi/internal/domain/payment"
	"github.com/dankic7/dolgovi/internal/platform/dynamodb/client"
)

// DynamoDBPaymentRepository implements the payment.Repository interface
type DynamoDBPaymentRepository struct {
	client client.Client
	table  string
	logger *slog.Logger
}

// NewDynamoDBPaymentRepository creates a new DynamoDBPaymentRepository
func NewDynamoDBPaymentRepository(client client.Client, table string, logger *slog.Logger) *DynamoDBPaymentRepository {
	return &DynamoDBPaymentRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// PaymentDDB mirrors payment.Payment with the amount held as a string so
// DynamoDB never sees a binary float
type PaymentDDB struct {
	payment.Payment
	Amount string `json:"amount" dynamodbav:"amount"`
}

func toPayment(item PaymentDDB) (*payment.Payment, error) {
	amount, err := decimal.NewFromString(item.Amount)
	if err != nil {
		return nil, commonErrors.NewInternalError("stored amount is not a valid decimal", err)
	}
	p := item.Payment
	p.Amount = amount
	return &p, nil
}

func (r *DynamoDBPaymentRepository) putPayment(ctx context.Context, p *payment.Payment, conditionNew bool) error {
	item, err := attributevalue.MarshalMap(PaymentDDB{
		Payment: *p,
		Amount:  p.Amount.StringFixed(2),
	})
	if err != nil {
		return commonErrors.NewInternalError("failed to marshal payment", err)
	}
	item["PK"] = &types.AttributeValueMemberS{Value: customerPK(p.CustomerID)}
	item["SK"] = &types.AttributeValueMemberS{Value: paymentSK(p.Year, p.Date, p.PaymentID)}
	item["Type"] = &types.AttributeValueMemberS{Value: "payment"}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}
	if conditionNew {
		input.ConditionExpression = aws.String("attribute_not_exists(PK)")
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		var condCheckErr *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckErr) {
			return commonErrors.NewConflictError("payment already exists")
		}
		return commonErrors.NewInternalError("failed to write payment", err)
	}
	return nil
}

// CreatePayment writes a new payment item. The sort key embeds year, date
// and the ULID, which keeps the year's query in date order with stable ties.
func (r *DynamoDBPaymentRepository) CreatePayment(ctx context.Context, p *payment.Payment) (*payment.Payment, error) {
	if err := r.putPayment(ctx, p, true); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *DynamoDBPaymentRepository) queryYear(ctx context.Context, customerID string, year int) ([]*payment.Payment, error) {
	keyCondition := expression.Key("PK").Equal(expression.Value(customerPK(customerID))).
		And(expression.Key("SK").BeginsWith(paymentYearPrefix(year)))
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

	payments := make([]*payment.Payment, 0)
	for {
		result, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, commonErrors.NewInternalError("failed to query payments", err)
		}
		for _, raw := range result.Items {
			var item PaymentDDB
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				return nil, commonErrors.NewInternalError("failed to unmarshal payment", err)
			}
			p, err := toPayment(item)
			if err != nil {
				return nil, err
			}
			payments = append(payments, p)
		}
		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	return payments, nil
}

// ListPayments returns a year's payments ascending by date
func (r *DynamoDBPaymentRepository) ListPayments(ctx context.Context, customerID string, year int) ([]*payment.Payment, error) {
	return r.queryYear(ctx, customerID, year)
}

// GetPayment finds a single payment by ID within (customer, year)
func (r *DynamoDBPaymentRepository) GetPayment(ctx context.Context, customerID string, year int, paymentID string) (*payment.Payment, error) {
	payments, err := r.queryYear(ctx, customerID, year)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		if p.PaymentID == paymentID {
			return p, nil
		}
	}
	return nil, commonErrors.NewNotFoundError("payment not found")
}

// UpdatePayment rewrites a payment. The date is part of the sort key, so a
// date change moves the item: the stored copy is removed first and the new
// one written in its place.
func (r *DynamoDBPaymentRepository) UpdatePayment(ctx context.Context, p *payment.Payment) (*payment.Payment, error) {
	stored, err := r.GetPayment(ctx, p.CustomerID, p.Year, p.PaymentID)
	if err != nil {
		return nil, err
	}

	if stored.Date != p.Date {
		if err := r.deleteItem(ctx, p.CustomerID, p.Year, stored.Date, p.PaymentID); err != nil {
			return nil, err
		}
	}
	if err := r.putPayment(ctx, p, false); err != nil {
		return nil, err
	}

	r.logger.Info("updated payment", "customerId", p.CustomerID, "paymentId", p.PaymentID)
	return p, nil
}

// DeletePayment removes a payment
func (r *DynamoDBPaymentRepository) DeletePayment(ctx context.Context, customerID string, year int, paymentID string) error {
	stored, err := r.GetPayment(ctx, customerID, year, paymentID)
	if err != nil {
		return err
	}
	return r.deleteItem(ctx, customerID, year, stored.Date, paymentID)
}

func (r *DynamoDBPaymentRepository) deleteItem(ctx context.Context, customerID string, year int, date, paymentID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: customerPK(customerID)},
			"SK": &types.AttributeValueMemberS{Value: paymentSK(year, date, paymentID)},
		},
	})
	if err != nil {
		return commonErrors.NewInternalError("failed to delete payment", err)
	}
	return nil
}
