package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"monhajj/internal/domain/entities"
	"monhajj/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const bookingsEmailIndex = "email-index"

type bookingItem struct {
	ID              string                  `dynamodbav:"id"`
	WizardID        string                  `dynamodbav:"wizard_id"`
	Email           string                  `dynamodbav:"email,omitempty"`
	Flow            string                  `dynamodbav:"flow"`
	OfferingID      string                  `dynamodbav:"offering_id"`
	TravelType      string                  `dynamodbav:"travel_type"`
	Category        string                  `dynamodbav:"category"`
	RoomType        string                  `dynamodbav:"room_type,omitempty"`
	NumberOfPeople  int                     `dynamodbav:"number_of_people"`
	Clients         []entities.ClientRecord `dynamodbav:"clients"`
	TotalPrice      string                  `dynamodbav:"total_price"`
	PaymentFraction string                  `dynamodbav:"payment_fraction"`
	PaymentAmount   string                  `dynamodbav:"payment_amount"`
	RemainingAmount string                  `dynamodbav:"remaining_amount"`
	Currency        string                  `dynamodbav:"currency"`
	PaymentIntentID string                  `dynamodbav:"payment_intent_id,omitempty"`
	ClientSecret    string                  `dynamodbav:"payment_client_secret,omitempty"`
	Status          string                  `dynamodbav:"status"`
	CreatedAt       string                  `dynamodbav:"created_at"`
	UpdatedAt       string                  `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email, lower-cased email of the lead traveler)
//
// Booking ids are derived from wizard ids, so the conditional put doubles as
// the guard against submitting the same wizard twice.
type BookingDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client, tableName string) *BookingDynamoRepository {
	return &BookingDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, interfaces.ErrBookingExists
		}
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
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListByEmail(ctx context.Context, email string) ([]entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: strings.ToLower(email)},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Booking, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingItem(it))
	}
	return items, nil
}

func (r *BookingDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}
	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:              b.ID,
		WizardID:        b.WizardID,
		Email:           strings.ToLower(strings.TrimSpace(b.ContactEmail())),
		Flow:            b.Flow,
		OfferingID:      b.OfferingID,
		TravelType:      string(b.TravelType),
		Category:        string(b.Category),
		RoomType:        string(b.RoomType),
		NumberOfPeople:  b.NumberOfPeople,
		Clients:         b.Clients,
		TotalPrice:      floatToString(b.TotalPrice),
		PaymentFraction: floatToString(b.PaymentFraction),
		PaymentAmount:   floatToString(b.PaymentAmount),
		RemainingAmount: floatToString(b.RemainingAmount),
		Currency:        b.Currency,
		PaymentIntentID: b.PaymentIntentID,
		ClientSecret:    b.PaymentClientSecret,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Booking{
		ID:                  it.ID,
		WizardID:            it.WizardID,
		Flow:                it.Flow,
		OfferingID:          it.OfferingID,
		TravelType:          entities.TravelType(it.TravelType),
		Category:            entities.Category(it.Category),
		RoomType:            entities.RoomType(it.RoomType),
		NumberOfPeople:      it.NumberOfPeople,
		Clients:             it.Clients,
		TotalPrice:          parseFloat(it.TotalPrice),
		PaymentFraction:     parseFloat(it.PaymentFraction),
		PaymentAmount:       parseFloat(it.PaymentAmount),
		RemainingAmount:     parseFloat(it.RemainingAmount),
		Currency:            it.Currency,
		PaymentIntentID:     it.PaymentIntentID,
		PaymentClientSecret: it.ClientSecret,
		Status:              entities.BookingStatus(it.Status),
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}
