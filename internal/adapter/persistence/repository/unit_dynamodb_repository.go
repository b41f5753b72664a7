package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"realnest_crm/internal/domain/entities"
	"realnest_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUnitsTableName = "units"
	unitsTowerIndex       = "tower-index"
)

type unitItem struct {
	ID         string `dynamodbav:"id"`
	ProjectID  string `dynamodbav:"project_id"`
	UnitNo     string `dynamodbav:"unit_no"`
	Floor      string `dynamodbav:"floor"`
	Tower      string `dynamodbav:"tower"`
	UnitType   string `dynamodbav:"unit_type"`
	Status     string `dynamodbav:"status"`
	CarpetArea string `dynamodbav:"carpet_area"`
	BasePrice  string `dynamodbav:"base_price"`
	BlockedBy  string `dynamodbav:"blocked_by,omitempty"`
	BlockedAt  string `dynamodbav:"blocked_at,omitempty"`
}

// UnitDynamoRepository persists Unit entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tower-index (PK: tower)
//
// Every status transition is a conditional update on the current status, so
// two agents racing for the same unit cannot both win: the loser gets
// interfaces.ErrUnitConflict and no state moves.

type UnitDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUnitRepository = (*UnitDynamoRepository)(nil)

func NewUnitDynamoRepository(ddb *dynamodb.Client) *UnitDynamoRepository {
	return &UnitDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("UNITS_TABLE", defaultUnitsTableName),
	}
}

func (r *UnitDynamoRepository) Create(ctx context.Context, u entities.Unit) (entities.Unit, error) {
	it := toUnitItem(u)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Unit{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Unit{}, err
	}
	return u, nil
}

func (r *UnitDynamoRepository) GetByID(ctx context.Context, id string) (entities.Unit, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Unit{}, err
	}
	if len(out.Item) == 0 {
		return entities.Unit{}, nil
	}

	var it unitItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Unit{}, err
	}
	return fromUnitItem(it), nil
}

func (r *UnitDynamoRepository) ListByTower(ctx context.Context, tower string) ([]entities.Unit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(unitsTowerIndex),
		KeyConditionExpression: aws.String("tower = :tower"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tower": &types.AttributeValueMemberS{Value: tower},
		},
	})
	if err != nil {
		return nil, err
	}

	units := make([]entities.Unit, 0, len(out.Items))
	for _, raw := range out.Items {
		var it unitItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		units = append(units, fromUnitItem(it))
	}
	return units, nil
}

func (r *UnitDynamoRepository) Block(ctx context.Context, id, blockedBy string) (entities.Unit, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	return r.transition(ctx, id, entities.UnitStatusAvailable, entities.UnitStatusBlocked,
		func(expr string, vals map[string]types.AttributeValue, names map[string]string) (string, map[string]types.AttributeValue, map[string]string) {
			expr += ", #blocked_by = :blocked_by, #blocked_at = :blocked_at"
			vals[":blocked_by"] = &types.AttributeValueMemberS{Value: blockedBy}
			vals[":blocked_at"] = &types.AttributeValueMemberS{Value: now}
			names["#blocked_by"] = "blocked_by"
			names["#blocked_at"] = "blocked_at"
			return expr, vals, names
		})
}

func (r *UnitDynamoRepository) Release(ctx context.Context, id string) (entities.Unit, error) {
	return r.transition(ctx, id, entities.UnitStatusBlocked, entities.UnitStatusAvailable,
		func(expr string, vals map[string]types.AttributeValue, names map[string]string) (string, map[string]types.AttributeValue, map[string]string) {
			expr += ", #blocked_by = :empty, #blocked_at = :empty"
			vals[":empty"] = &types.AttributeValueMemberS{Value: ""}
			names["#blocked_by"] = "blocked_by"
			names["#blocked_at"] = "blocked_at"
			return expr, vals, names
		})
}

func (r *UnitDynamoRepository) MarkSold(ctx context.Context, id string) (entities.Unit, error) {
	return r.transition(ctx, id, entities.UnitStatusBlocked, entities.UnitStatusSold, nil)
}

// transition performs the compare-and-swap: the update succeeds only if the
// unit still holds the expected prior status.
func (r *UnitDynamoRepository) transition(
	ctx context.Context,
	id string,
	from, to entities.UnitStatus,
	extend func(expr string, vals map[string]types.AttributeValue, names map[string]string) (string, map[string]types.AttributeValue, map[string]string),
) (entities.Unit, error) {
	expr := "SET #status = :to"
	vals := map[string]types.AttributeValue{
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":from": &types.AttributeValueMemberS{Value: string(from)},
	}
	names := map[string]string{
		"#status": "status",
		"#id":     "id",
	}
	if extend != nil {
		expr, vals, names = extend(expr, vals, names)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Unit{}, interfaces.ErrUnitConflict
		}
		return entities.Unit{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Unit{}, nil
	}
	var it unitItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Unit{}, err
	}
	return fromUnitItem(it), nil
}

func toUnitItem(u entities.Unit) unitItem {
	it := unitItem{
		ID:         u.ID,
		ProjectID:  u.ProjectID,
		UnitNo:     u.UnitNo,
		Floor:      floatToString(u.Floor),
		Tower:      u.Tower,
		UnitType:   u.UnitType,
		Status:     string(u.Status),
		CarpetArea: floatToString(u.CarpetArea),
		BasePrice:  floatToString(u.BasePrice),
		BlockedBy:  u.BlockedBy,
	}
	if !u.BlockedAt.IsZero() {
		it.BlockedAt = u.BlockedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromUnitItem(it unitItem) entities.Unit {
	floor, _ := strconv.ParseFloat(it.Floor, 64)
	carpetArea, _ := strconv.ParseFloat(it.CarpetArea, 64)
	basePrice, _ := strconv.ParseFloat(it.BasePrice, 64)
	blockedAt, _ := time.Parse(time.RFC3339Nano, it.BlockedAt)
	return entities.Unit{
		ID:         it.ID,
		ProjectID:  it.ProjectID,
		UnitNo:     it.UnitNo,
		Floor:      floor,
		Tower:      it.Tower,
		UnitType:   it.UnitType,
		Status:     entities.UnitStatus(it.Status),
		CarpetArea: carpetArea,
		BasePrice:  basePrice,
		BlockedBy:  it.BlockedBy,
		BlockedAt:  blockedAt,
	}
}
