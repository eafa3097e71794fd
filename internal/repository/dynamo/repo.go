package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/s21platform/meeting-service/internal/config"
	"github.com/s21platform/meeting-service/internal/model"
	"github.com/s21platform/meeting-service/internal/pkg/metrics"
)

const serviceName = "dynamodb"

type Repository struct {
	api   DynamoAPI
	table string
	now   func() time.Time
}

func New(awsCfg aws.Config, cfg *config.Config) *Repository {
	api := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		o.Region = cfg.AWS.DynamoRegion
	})

	return NewWithAPI(api, cfg.Sessions.Table)
}

func NewWithAPI(api DynamoAPI, table string) *Repository {
	return &Repository{
		api:   api,
		table: table,
		now:   time.Now,
	}
}

func (r *Repository) Get(ctx context.Context, title string) (_ *model.Session, err error) {
	defer observe("GetItem", time.Now(), &err)

	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            titleKey(title),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", title, err)
	}
	if len(out.Item) == 0 {
		return nil, model.ErrSessionNotFound
	}

	var item sessionItem
	if err = attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", title, err)
	}

	session, err := fromItem(item)
	if err != nil {
		return nil, err
	}

	// TTL deletion in DynamoDB is lazy, expired items can still be read.
	if session.Expired(r.now()) {
		return nil, model.ErrSessionNotFound
	}

	return session, nil
}

func (r *Repository) Put(ctx context.Context, session *model.Session) (err error) {
	defer observe("PutItem", time.Now(), &err)

	item, err := toItem(session)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", session.Title, err)
	}

	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to put session %s: %w", session.Title, err)
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, title string) (err error) {
	defer observe("DeleteItem", time.Now(), &err)

	_, err = r.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       titleKey(title),
	})
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", title, err)
	}

	return nil
}

// List scans the table until limit live sessions are collected. A limit of
// zero or less reads the whole table.
func (r *Repository) List(ctx context.Context, limit int) (_ model.SessionList, err error) {
	defer observe("Scan", time.Now(), &err)

	now := r.now()
	sessions := model.SessionList{}

	paginator := dynamodb.NewScanPaginator(r.api, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sessions: %w", err)
		}

		var items []sessionItem
		if err = attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sessions: %w", err)
		}

		for _, item := range items {
			session, err := fromItem(item)
			if err != nil {
				return nil, err
			}
			if session.Expired(now) {
				continue
			}

			sessions = append(sessions, *session)
			if limit > 0 && len(sessions) >= limit {
				return sessions, nil
			}
		}
	}

	return sessions, nil
}

// PurgeExpired deletes items whose TTL has passed but which DynamoDB has not
// swept yet.
func (r *Repository) PurgeExpired(ctx context.Context, now time.Time) (purged int, err error) {
	defer observe("PurgeExpired", time.Now(), &err)

	paginator := dynamodb.NewScanPaginator(r.api, &dynamodb.ScanInput{
		TableName:                aws.String(r.table),
		ProjectionExpression:     aws.String("Title"),
		FilterExpression:         aws.String("#ttl <= :now"),
		ExpressionAttributeNames: map[string]string{"#ttl": "TTL"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", now.Unix())},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return purged, fmt.Errorf("failed to scan expired sessions: %w", err)
		}

		for _, key := range page.Items {
			_, err = r.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName: aws.String(r.table),
				Key:       key,
			})
			if err != nil {
				return purged, fmt.Errorf("failed to delete expired session: %w", err)
			}
			purged++
		}
	}

	return purged, nil
}

func titleKey(title string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"Title": &types.AttributeValueMemberS{Value: title},
	}
}

func observe(operation string, started time.Time, err *error) {
	status := metrics.StatusSuccess
	switch {
	case *err == nil:
	case errors.Is(*err, model.ErrSessionNotFound):
		status = metrics.StatusNotFound
	default:
		status = metrics.StatusFailed
	}
	metrics.RecordRemoteCall(serviceName, operation, status, started)
}
