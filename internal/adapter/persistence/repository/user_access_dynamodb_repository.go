package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/MBARUDI/menthorhub-backend/internal/domain/entities"
	"github.com/MBARUDI/menthorhub-backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUsersTableName = "users"

type userAccessItem struct {
	Email     string `dynamodbav:"email"`
	Name      string `dynamodbav:"name,omitempty"`
	IsPaid    bool   `dynamodbav:"is_paid"`
	Token     string `dynamodbav:"token,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at,omitempty"`
}

// UserAccessDynamoRepository persists UserAccessRecord entities in
// DynamoDB.
//
// Table requirements:
//   - PK: email (string)
//
// Rows are created by the signup service; this repository never
// inserts, it only reads and conditionally flips is_paid.

type UserAccessDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserAccessRepository = (*UserAccessDynamoRepository)(nil)

func NewUserAccessDynamoRepository(ddb *dynamodb.Client) *UserAccessDynamoRepository {
	return &UserAccessDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserAccessDynamoRepository) FindByEmail(ctx context.Context, email string) (entities.UserAccessRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.UserAccessRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserAccessRecord{}, nil
	}

	var it userAccessItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserAccessRecord{}, err
	}
	return fromUserAccessItem(it), nil
}

// GrantIfUnpaid is the single conditional write that makes the grant
// idempotent under concurrent or replayed deliveries: the update only
// takes effect while the row exists and is still unpaid, so of any
// number of concurrent writers exactly one observes applied=true.
func (r *UserAccessDynamoRepository) GrantIfUnpaid(ctx context.Context, email string, token string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		UpdateExpression:    aws.String("SET is_paid = :paid, #tk = :tk, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(email) AND (attribute_not_exists(is_paid) OR is_paid = :unpaid)"),
		ExpressionAttributeNames: map[string]string{
			"#tk": "token",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":   &types.AttributeValueMemberBOOL{Value: true},
			":unpaid": &types.AttributeValueMemberBOOL{Value: false},
			":tk":     &types.AttributeValueMemberS{Value: token},
			":now":    &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			// Row missing or already paid: a previous delivery won.
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func fromUserAccessItem(it userAccessItem) entities.UserAccessRecord {
	updatedAt, err := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	if err != nil && it.UpdatedAt != "" {
		log.Printf("[user-access][repository] malformed updated_at email=%s value=%q err=%v", it.Email, it.UpdatedAt, err)
	}
	return entities.UserAccessRecord{
		Email:     it.Email,
		Name:      it.Name,
		IsPaid:    it.IsPaid,
		Token:     it.Token,
		UpdatedAt: updatedAt,
	}
}
