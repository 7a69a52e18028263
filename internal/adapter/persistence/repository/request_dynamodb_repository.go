package repository

import (
	"context"
	"errors"
	"time"

	"hiko_buyforme/internal/domain/entities"
	"hiko_buyforme/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultRequestsTableName = "buy_for_me_requests"
	requestsUserIDIndex      = "user_id-index"
	requestsStatusIndex      = "status-index"
	requestsHotdealIDIndex   = "hotdeal_id-index"
)

// DynamoAPI is the subset of *dynamodb.Client the repository uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	dynamodb.QueryAPIClient
}

type requestItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	HotdealID string `dynamodbav:"hotdeal_id,omitempty"`
	Status    string `dynamodbav:"status"`
	Payload   string `dynamodbav:"payload"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// RequestDynamoRepository persists BuyForMeRequest aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: status-index (PK: status)
//   - GSI: hotdeal_id-index (PK: hotdeal_id), sparse since the attribute is omitted when empty
//
// The full aggregate lives in the payload attribute (JSON); the other
// attributes exist for key lookups.
type RequestDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBuyForMeRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb DynamoAPI, tableName string) *RequestDynamoRepository {
	if tableName == "" {
		tableName = DefaultRequestsTableName
	}
	return &RequestDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *RequestDynamoRepository) Create(ctx context.Context, req entities.BuyForMeRequest) (entities.BuyForMeRequest, error) {
	err := r.put(ctx, req, "attribute_not_exists(#id)")
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BuyForMeRequest{}, ErrAlreadyExists
		}
		return entities.BuyForMeRequest{}, err
	}
	return req, nil
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.BuyForMeRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BuyForMeRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.BuyForMeRequest{}, nil
	}
	return decodeRequestItem(out.Item)
}

// Update replaces the stored aggregate. A missing id yields the zero value.
func (r *RequestDynamoRepository) Update(ctx context.Context, req entities.BuyForMeRequest) (entities.BuyForMeRequest, error) {
	err := r.put(ctx, req, "attribute_exists(#id)")
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BuyForMeRequest{}, nil
		}
		return entities.BuyForMeRequest{}, err
	}
	return req, nil
}

func (r *RequestDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.BuyForMeRequest, error) {
	return r.queryIndex(ctx, requestsUserIDIndex, "user_id", userID)
}

func (r *RequestDynamoRepository) ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.BuyForMeRequest, error) {
	return r.queryIndex(ctx, requestsStatusIndex, "status", string(status))
}

func (r *RequestDynamoRepository) ListByHotdealID(ctx context.Context, hotdealID string) ([]entities.BuyForMeRequest, error) {
	return r.queryIndex(ctx, requestsHotdealIDIndex, "hotdeal_id", hotdealID)
}

func (r *RequestDynamoRepository) CountByStatus(ctx context.Context) (map[entities.RequestStatus]int, error) {
	out := make(map[entities.RequestStatus]int, len(entities.AllStatuses))
	for _, s := range entities.AllStatuses {
		p := dynamodb.NewQueryPaginator(r.ddb, r.indexQuery(requestsStatusIndex, "status", string(s), types.SelectCount))
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			out[s] += int(page.Count)
		}
	}
	return out, nil
}

func (r *RequestDynamoRepository) put(ctx context.Context, req entities.BuyForMeRequest, condition string) error {
	it, err := toRequestItem(req)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *RequestDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.BuyForMeRequest, error) {
	items := make([]entities.BuyForMeRequest, 0)
	p := dynamodb.NewQueryPaginator(r.ddb, r.indexQuery(index, attr, value, ""))
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			req, err := decodeRequestItem(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, req)
		}
	}
	return items, nil
}

// indexQuery builds a GSI query; an empty sel returns the projected items.
func (r *RequestDynamoRepository) indexQuery(index, attr, value string, sel types.Select) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Select: sel,
	}
}

func toRequestItem(req entities.BuyForMeRequest) (requestItem, error) {
	payload, err := marshalPayload(req)
	if err != nil {
		return requestItem{}, err
	}
	return requestItem{
		ID:        req.ID,
		UserID:    req.UserID,
		HotdealID: req.HotdealID,
		Status:    string(req.Status),
		Payload:   string(payload),
		CreatedAt: formatTime(req.CreatedAt),
		UpdatedAt: formatTime(req.UpdatedAt),
	}, nil
}

func decodeRequestItem(raw map[string]types.AttributeValue) (entities.BuyForMeRequest, error) {
	var it requestItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.BuyForMeRequest{}, err
	}
	return fromRequestItem(it)
}

func fromRequestItem(it requestItem) (entities.BuyForMeRequest, error) {
	req, err := unmarshalPayload([]byte(it.Payload))
	if err != nil {
		return entities.BuyForMeRequest{}, err
	}
	// Indexed attributes win over the document if they ever disagree.
	req.ID = it.ID
	req.UserID = it.UserID
	req.Status = entities.RequestStatus(it.Status)
	if t, err := time.Parse(time.RFC3339Nano, it.UpdatedAt); err == nil {
		req.UpdatedAt = t
	}
	return req, nil
}
