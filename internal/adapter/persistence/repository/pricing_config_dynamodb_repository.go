package repository

import (
	"context"
	"strconv"

	"realnest_crm/internal/domain/entities"
	"realnest_crm/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPricingConfigsTableName = "pricing_configs"

type pricingConfigItem struct {
	ProjectID    string `dynamodbav:"project_id"`
	BaseRate     string `dynamodbav:"base_rate"`
	FloorRise    string `dynamodbav:"floor_rise"`
	Amenities    string `dynamodbav:"amenities"`
	ParkingRate  string `dynamodbav:"parking_rate"`
	StampDuty    string `dynamodbav:"stamp_duty"`
	Registration string `dynamodbav:"registration"`
	MaxDiscount  string `dynamodbav:"max_discount"`
}

// PricingConfigDynamoRepository persists the per-project rate card.
//
// Table requirements:
//   - PK: project_id (string), one rate card per project
//
// Put overwrites the card wholesale; quotes that already embed a cost sheet
// are unaffected by later rate changes.

type PricingConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingConfigRepository = (*PricingConfigDynamoRepository)(nil)

func NewPricingConfigDynamoRepository(ddb *dynamodb.Client) *PricingConfigDynamoRepository {
	return &PricingConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICING_CONFIGS_TABLE", defaultPricingConfigsTableName),
	}
}

func (r *PricingConfigDynamoRepository) GetByProjectID(ctx context.Context, projectID string) (entities.PricingConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"project_id": &types.AttributeValueMemberS{Value: projectID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PricingConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.PricingConfig{}, nil
	}

	var it pricingConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PricingConfig{}, err
	}
	return fromPricingConfigItem(it), nil
}

func (r *PricingConfigDynamoRepository) Put(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error) {
	av, err := attributevalue.MarshalMap(toPricingConfigItem(cfg))
	if err != nil {
		return entities.PricingConfig{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PricingConfig{}, err
	}
	return cfg, nil
}

func toPricingConfigItem(cfg entities.PricingConfig) pricingConfigItem {
	return pricingConfigItem{
		ProjectID:    cfg.ProjectID,
		BaseRate:     floatToString(cfg.BaseRate),
		FloorRise:    floatToString(cfg.FloorRise),
		Amenities:    floatToString(cfg.Amenities),
		ParkingRate:  floatToString(cfg.ParkingRate),
		StampDuty:    floatToString(cfg.StampDuty),
		Registration: floatToString(cfg.Registration),
		MaxDiscount:  floatToString(cfg.MaxDiscount),
	}
}

func fromPricingConfigItem(it pricingConfigItem) entities.PricingConfig {
	baseRate, _ := strconv.ParseFloat(it.BaseRate, 64)
	floorRise, _ := strconv.ParseFloat(it.FloorRise, 64)
	amenities, _ := strconv.ParseFloat(it.Amenities, 64)
	parkingRate, _ := strconv.ParseFloat(it.ParkingRate, 64)
	stampDuty, _ := strconv.ParseFloat(it.StampDuty, 64)
	registration, _ := strconv.ParseFloat(it.Registration, 64)
	maxDiscount, _ := strconv.ParseFloat(it.MaxDiscount, 64)
	return entities.PricingConfig{
		ProjectID:    it.ProjectID,
		BaseRate:     baseRate,
		FloorRise:    floorRise,
		Amenities:    amenities,
		ParkingRate:  parkingRate,
		StampDuty:    stampDuty,
		Registration: registration,
		MaxDiscount:  maxDiscount,
	}
}
