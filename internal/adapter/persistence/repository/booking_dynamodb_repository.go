package repository

import (
	"context"
	"encoding/json"
	"fmt"
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
	defaultBookingsTableName = "bookings"
	bookingsQuoteIDIndex     = "quote_id-index"
	bookingsLeadIDIndex      = "lead_id-index"
)

type bookingItem struct {
	ID             string   `dynamodbav:"id"`
	QuoteID        string   `dynamodbav:"quote_id"`
	LeadID         string   `dynamodbav:"lead_id"`
	CustomerName   string   `dynamodbav:"customer_name"`
	CustomerMobile string   `dynamodbav:"customer_mobile"`
	UnitID         string   `dynamodbav:"unit_id"`
	UnitNo         string   `dynamodbav:"unit_no"`
	Tower          string   `dynamodbav:"tower"`
	Floor          string   `dynamodbav:"floor"`
	CarpetArea     string   `dynamodbav:"carpet_area"`
	AgreementValue string   `dynamodbav:"agreement_value"`
	Taxes          string   `dynamodbav:"taxes"`
	OtherCharges   string   `dynamodbav:"other_charges"`
	TotalCost      string   `dynamodbav:"total_cost"`
	AmountPaid     string   `dynamodbav:"amount_paid"`
	BookingDate    string   `dynamodbav:"booking_date"`
	Status         string   `dynamodbav:"status"`
	Applicants     string   `dynamodbav:"applicants"`
	TokenPayment   string   `dynamodbav:"token_payment"`
	Milestones     []string `dynamodbav:"milestones"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id) backing the one-booking-per-quote
//     lookup
//   - GSI: lead_id-index (PK: lead_id)
//
// The financial fields are written once at create time and never touched by
// the update paths: a booking is an immutable financial contract.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	it, err := toBookingItem(b)
	if err != nil {
		return entities.Booking{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it)
}

func (r *BookingDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Items) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it)
}

func (r *BookingDynamoRepository) ListByLeadID(ctx context.Context, leadID string) ([]entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsLeadIDIndex),
		KeyConditionExpression: aws.String("lead_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: leadID},
		},
	})
	if err != nil {
		return nil, err
	}

	bookings := make([]entities.Booking, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		b, err := fromBookingItem(it)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it)
}

func (r *BookingDynamoRepository) UpdateMilestone(ctx context.Context, id string, milestoneIndex int, m entities.PaymentMilestone, amountPaid float64) (entities.Booking, error) {
	encoded, err := json.Marshal(m)
	if err != nil {
		return entities.Booking{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String(fmt.Sprintf("SET #milestones[%d] = :m, #amount_paid = :amount_paid", milestoneIndex)),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#milestones":  "milestones",
			"#amount_paid": "amount_paid",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":m":           &types.AttributeValueMemberS{Value: string(encoded)},
			":amount_paid": &types.AttributeValueMemberS{Value: floatToString(amountPaid)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Booking{}, err
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it)
}

func toBookingItem(b entities.Booking) (bookingItem, error) {
	applicants, err := json.Marshal(b.Applicants)
	if err != nil {
		return bookingItem{}, err
	}
	token, err := json.Marshal(b.TokenPayment)
	if err != nil {
		return bookingItem{}, err
	}
	milestones := make([]string, 0, len(b.Milestones))
	for _, m := range b.Milestones {
		encoded, err := json.Marshal(m)
		if err != nil {
			return bookingItem{}, err
		}
		milestones = append(milestones, string(encoded))
	}

	return bookingItem{
		ID:             b.ID,
		QuoteID:        b.QuoteID,
		LeadID:         b.LeadID,
		CustomerName:   b.CustomerName,
		CustomerMobile: b.CustomerMobile,
		UnitID:         b.UnitID,
		UnitNo:         b.UnitNo,
		Tower:          b.Tower,
		Floor:          floatToString(b.Floor),
		CarpetArea:     floatToString(b.CarpetArea),
		AgreementValue: floatToString(b.AgreementValue),
		Taxes:          floatToString(b.Taxes),
		OtherCharges:   floatToString(b.OtherCharges),
		TotalCost:      floatToString(b.TotalCost),
		AmountPaid:     floatToString(b.AmountPaid),
		BookingDate:    b.BookingDate.UTC().Format(time.RFC3339Nano),
		Status:         string(b.Status),
		Applicants:     string(applicants),
		TokenPayment:   string(token),
		Milestones:     milestones,
	}, nil
}

func fromBookingItem(it bookingItem) (entities.Booking, error) {
	var applicants []entities.Applicant
	if it.Applicants != "" {
		if err := json.Unmarshal([]byte(it.Applicants), &applicants); err != nil {
			return entities.Booking{}, err
		}
	}
	var token entities.PaymentTransaction
	if it.TokenPayment != "" {
		if err := json.Unmarshal([]byte(it.TokenPayment), &token); err != nil {
			return entities.Booking{}, err
		}
	}
	milestones := make([]entities.PaymentMilestone, 0, len(it.Milestones))
	for _, raw := range it.Milestones {
		var m entities.PaymentMilestone
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return entities.Booking{}, err
		}
		milestones = append(milestones, m)
	}

	floor, _ := strconv.ParseFloat(it.Floor, 64)
	carpetArea, _ := strconv.ParseFloat(it.CarpetArea, 64)
	agreementValue, _ := strconv.ParseFloat(it.AgreementValue, 64)
	taxes, _ := strconv.ParseFloat(it.Taxes, 64)
	otherCharges, _ := strconv.ParseFloat(it.OtherCharges, 64)
	totalCost, _ := strconv.ParseFloat(it.TotalCost, 64)
	amountPaid, _ := strconv.ParseFloat(it.AmountPaid, 64)
	bookingDate, _ := time.Parse(time.RFC3339Nano, it.BookingDate)

	return entities.Booking{
		ID:             it.ID,
		QuoteID:        it.QuoteID,
		LeadID:         it.LeadID,
		CustomerName:   it.CustomerName,
		CustomerMobile: it.CustomerMobile,
		UnitID:         it.UnitID,
		UnitNo:         it.UnitNo,
		Tower:          it.Tower,
		Floor:          floor,
		CarpetArea:     carpetArea,
		AgreementValue: agreementValue,
		Taxes:          taxes,
		OtherCharges:   otherCharges,
		TotalCost:      totalCost,
		AmountPaid:     amountPaid,
		BookingDate:    bookingDate,
		Status:         entities.BookingStatus(it.Status),
		Applicants:     applicants,
		TokenPayment:   token,
		Milestones:     milestones,
	}, nil
}
