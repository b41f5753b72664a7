package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"realnest_crm/internal/domain/entities"
	"realnest_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLeadsTableName = "leads"

// Quotes are kept as a DynamoDB list of JSON strings: each entry is one
// immutable quote snapshot, and AppendQuote uses list_append so the history
// is append-only at the storage level too.
type leadItem struct {
	ID       string   `dynamodbav:"id"`
	Name     string   `dynamodbav:"name"`
	Mobile   string   `dynamodbav:"mobile"`
	Email    string   `dynamodbav:"email,omitempty"`
	Stage    string   `dynamodbav:"stage"`
	SubStage string   `dynamodbav:"sub_stage,omitempty"`
	Quotes   []string `dynamodbav:"quotes"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	it, err := toLeadItem(l)
	if err != nil {
		return entities.Lead{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it)
}

func (r *LeadDynamoRepository) AppendQuote(ctx context.Context, leadID string, q entities.Quote) (entities.Lead, error) {
	encoded, err := json.Marshal(q)
	if err != nil {
		return entities.Lead{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: leadID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #quotes = list_append(if_not_exists(#quotes, :empty), :q)"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#quotes": "quotes",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":q": &types.AttributeValueMemberL{Value: []types.AttributeValue{
				&types.AttributeValueMemberS{Value: string(encoded)},
			}},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Lead{}, err
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it)
}

// UpdateQuoteStatus rewrites exactly one list element: the quote matched by
// id, with only its status changed. Every other history entry is untouched.
func (r *LeadDynamoRepository) UpdateQuoteStatus(ctx context.Context, leadID, quoteID string, status entities.QuoteStatus) (entities.Lead, error) {
	lead, err := r.GetByID(ctx, leadID)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.ID == "" {
		return entities.Lead{}, nil
	}

	idx := -1
	var target entities.Quote
	for i, q := range lead.Quotes {
		if q.ID == quoteID {
			idx = i
			target = q
			break
		}
	}
	if idx < 0 {
		return entities.Lead{}, nil
	}
	target.Status = status

	encoded, err := json.Marshal(target)
	if err != nil {
		return entities.Lead{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: leadID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String(fmt.Sprintf("SET #quotes[%d] = :q", idx)),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#quotes": "quotes",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q": &types.AttributeValueMemberS{Value: string(encoded)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Lead{}, err
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it)
}

func (r *LeadDynamoRepository) UpdateStage(ctx context.Context, leadID string, stage entities.LeadStage, subStage string) (entities.Lead, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: leadID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #stage = :stage, #sub_stage = :sub_stage"),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#stage":     "stage",
			"#sub_stage": "sub_stage",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":stage":     &types.AttributeValueMemberS{Value: string(stage)},
			":sub_stage": &types.AttributeValueMemberS{Value: subStage},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Lead{}, err
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it)
}

func toLeadItem(l entities.Lead) (leadItem, error) {
	quotes := make([]string, 0, len(l.Quotes))
	for _, q := range l.Quotes {
		encoded, err := json.Marshal(q)
		if err != nil {
			return leadItem{}, err
		}
		quotes = append(quotes, string(encoded))
	}
	return leadItem{
		ID:       l.ID,
		Name:     l.Name,
		Mobile:   l.Mobile,
		Email:    l.Email,
		Stage:    string(l.Stage),
		SubStage: l.SubStage,
		Quotes:   quotes,
	}, nil
}

func fromLeadItem(it leadItem) (entities.Lead, error) {
	quotes := make([]entities.Quote, 0, len(it.Quotes))
	for _, raw := range it.Quotes {
		var q entities.Quote
		if err := json.Unmarshal([]byte(raw), &q); err != nil {
			return entities.Lead{}, err
		}
		quotes = append(quotes, q)
	}
	return entities.Lead{
		ID:       it.ID,
		Name:     it.Name,
		Mobile:   it.Mobile,
		Email:    it.Email,
		Stage:    entities.LeadStage(it.Stage),
		SubStage: it.SubStage,
		Quotes:   quotes,
	}, nil
}
