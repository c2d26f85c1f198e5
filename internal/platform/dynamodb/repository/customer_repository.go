package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/dankic7/dolgovi/internal/domain/customer"
	commonErrors "github.com/dankic7/dolgovi/internal/domain/errors"
	"github.com/dankic7/dolgovi/internal/platform/dynamodb/client"
)

// DynamoDBCustomerRepository implements the customer.Repository interface
type DynamoDBCustomerRepository struct {
	client client.Client
	table  string
	logger *slog.Logger
}

// NewDynamoDBCustomerRepository creates a new DynamoDBCustomerRepository
func NewDynamoDBCustomerRepository(client client.Client, table string, logger *slog.Logger) *DynamoDBCustomerRepository {
	return &DynamoDBCustomerRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// CreateCustomer creates a new customer profile item
func (r *DynamoDBCustomerRepository) CreateCustomer(ctx context.Context, cust *customer.Customer) (*customer.Customer, error) {
	cust.PK = customerPK(cust.CustomerID)
	cust.SK = profileSK

	item, err := attributevalue.MarshalMap(cust)
	if err != nil {
		return nil, commonErrors.NewInternalError("failed to marshal customer", err)
	}
	item["PK"] = &types.AttributeValueMemberS{Value: cust.PK}
	item["SK"] = &types.AttributeValueMemberS{Value: cust.SK}
	item["GSI1PK"] = &types.AttributeValueMemberS{Value: customerGSIPK}
	item["GSI1SK"] = &types.AttributeValueMemberS{Value: cust.CreatedAt.Format(time.RFC3339Nano)}
	item["Type"] = &types.AttributeValueMemberS{Value: "customer"}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		return nil, commonErrors.NewInternalError("failed to create customer", err)
	}

	return cust, nil
}

// GetCustomer retrieves a customer profile by ID
func (r *DynamoDBCustomerRepository) GetCustomer(ctx context.Context, customerID string) (*customer.Customer, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: customerPK(customerID)},
			"SK": &types.AttributeValueMemberS{Value: profileSK},
		},
	})
	if err != nil {
		return nil, commonErrors.NewInternalError("failed to get customer", err)
	}
	if len(result.Item) == 0 {
		return nil, commonErrors.NewNotFoundError("customer not found")
	}

	var cust customer.Customer
	if err := attributevalue.UnmarshalMap(result.Item, &cust); err != nil {
		return nil, commonErrors.NewInternalError("failed to unmarshal customer", err)
	}
	return &cust, nil
}

// ListCustomers queries the customer index newest first. A non-empty search
// term filters by substring match on name or phone, like the original
// ilike lookup.
func (r *DynamoDBCustomerRepository) ListCustomers(ctx context.Context, search string) ([]*customer.Customer, error) {
	keyCondition := expression.Key("GSI1PK").Equal(expression.Value(customerGSIPK))
	builder := expression.NewBuilder().WithKeyCondition(keyCondition)
	if search != "" {
		filter := expression.Contains(expression.Name("name"), search).
			Or(expression.Contains(expression.Name("phone"), search))
		builder = builder.WithFilter(filter)
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, commonErrors.NewInternalError("failed to build expression", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String("GSI1"),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(false), // newest first
	}

	customers := make([]*customer.Customer, 0)
	for {
		result, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, commonErrors.NewInternalError("failed to list customers", err)
		}
		for _, item := range result.Items {
			var cust customer.Customer
			if err := attributevalue.UnmarshalMap(item, &cust); err != nil {
				return nil, commonErrors.NewInternalError("failed to unmarshal customer", err)
			}
			customers = append(customers, &cust)
		}
		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	return customers, nil
}

// UpdateCustomer updates the profile fields of an existing customer
func (r *DynamoDBCustomerRepository) UpdateCustomer(ctx context.Context, customerID string, updateReq *customer.UpdateCustomerRequest) (*customer.Customer, error) {
	// attribute names follow the struct dynamodbav tags
	update := expression.Set(expression.Name("name"), expression.Value(updateReq.Name)).
		Set(expression.Name("phone"), expression.Value(updateReq.Phone)).
		Set(expression.Name("notes"), expression.Value(updateReq.Notes)).
		Set(expression.Name("updatedAt"), expression.Value(time.Now().UTC().Format(time.RFC3339Nano)))

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return nil, commonErrors.NewInternalError("failed to build expression", err)
	}

	result, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: customerPK(customerID)},
			"SK": &types.AttributeValueMemberS{Value: profileSK},
		},
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ConditionExpression:       aws.String("attribute_exists(PK)"),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, commonErrors.NewInternalError("failed to update customer", err)
	}

	var cust customer.Customer
	if err := attributevalue.UnmarshalMap(result.Attributes, &cust); err != nil {
		return nil, commonErrors.NewInternalError("failed to unmarshal customer", err)
	}
	return &cust, nil
}

// DeleteCustomer removes the profile and cascades over the whole partition,
// so the customer's account years and payments go with it. Orphan cleanup
// is deliberate: the partition query makes it one pass.
func (r *DynamoDBCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	keyCondition := expression.Key("PK").Equal(expression.Value(customerPK(customerID)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCondition).Build()
	if err != nil {
		return commonErrors.NewInternalError("failed to build expression", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ProjectionExpression:      aws.String("PK, SK"),
	}

	var writes []types.WriteRequest
	for {
		result, err := r.client.Query(ctx, input)
		if err != nil {
			return commonErrors.NewInternalError("failed to query customer items", err)
		}
		for _, item := range result.Items {
			writes = append(writes, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"PK": item["PK"],
						"SK": item["SK"],
					},
				},
			})
		}
		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	// BatchWriteItem takes at most 25 requests per call
	for start := 0; start < len(writes); start += 25 {
		end := start + 25
		if end > len(writes) {
			end = len(writes)
		}
		_, err := r.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				r.table: writes[start:end],
			},
		})
		if err != nil {
			return commonErrors.NewInternalError("failed to delete customer items", err)
		}
	}

	r.logger.Info("deleted customer partition", "customerId", customerID, "items", len(writes))
	return nil
}
