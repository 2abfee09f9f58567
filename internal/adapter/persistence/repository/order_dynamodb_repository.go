package repository

import (
	"context"

	"billreview/internal/domain/entities"
	"billreview/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName     = "orders"
	defaultOrderLinesTableName = "order_line_items"
	orderLinesOrderIDIndex     = "order_id-index"
)

type orderItem struct {
	OrderID        string `dynamodbav:"order_id"`
	LegacyRecordID string `dynamodbav:"legacy_record_id,omitempty"`
	BundleType     string `dynamodbav:"bundle_type,omitempty"`
	PatientName    string `dynamodbav:"patient_name"`
	PatientDOB     string `dynamodbav:"patient_dob,omitempty"`
	ClaimNumber    string `dynamodbav:"claim_number,omitempty"`
	ProviderID     string `dynamodbav:"provider_id,omitempty"`
	BillsReceived  int    `dynamodbav:"bills_received"`
	BillsPaid      int    `dynamodbav:"bills_paid"`
}

type orderLineItemItem struct {
	ID               string `dynamodbav:"id"`
	OrderID          string `dynamodbav:"order_id"`
	DateOfService    string `dynamodbav:"date_of_service,omitempty"`
	CPTCode          string `dynamodbav:"cpt_code"`
	Modifier         string `dynamodbav:"modifier,omitempty"`
	Units            int    `dynamodbav:"units"`
	Description      string `dynamodbav:"description,omitempty"`
	Charge           string `dynamodbav:"charge,omitempty"`
	LineNumber       int    `dynamodbav:"line_number"`
	ReviewedByBillID string `dynamodbav:"reviewed_by_bill_id,omitempty"`
	PaidRate         string `dynamodbav:"paid_rate,omitempty"`
}

// OrderDynamoRepository reads Order and OrderLineItem entities from DynamoDB.
// Orders are written by the referral intake system; the only field this
// service updates is reviewed_by_bill_id on order lines.
//
// Table requirements:
//   - orders: PK order_id (string)
//   - order_line_items: PK id (string), GSI order_id-index (PK: order_id)

type OrderDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	linesTableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		linesTableName: getenvDefault("ORDER_LINES_TABLE", defaultOrderLinesTableName),
	}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListLineItems(ctx context.Context, orderID string) ([]entities.OrderLineItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.linesTableName),
		IndexName:              aws.String(orderLinesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.OrderLineItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderLineItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromOrderLineItemItem(it))
	}
	return items, nil
}

func (r *OrderDynamoRepository) MarkLineItemsReviewed(ctx context.Context, orderID, billID string, cptCodes []string) error {
	if len(cptCodes) == 0 {
		return nil
	}
	codes := make(map[string]struct{}, len(cptCodes))
	for _, c := range cptCodes {
		codes[entities.NormalizeCPT(c)] = struct{}{}
	}

	lines, err := r.ListLineItems(ctx, orderID)
	if err != nil {
		return err
	}
	for _, li := range lines {
		if _, ok := codes[li.NormalizedCPT()]; !ok {
			continue
		}
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.linesTableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: li.ID},
			},
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression:    aws.String("SET #reviewed_by = :bid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":bid": &types.AttributeValueMemberS{Value: billID},
			},
			ExpressionAttributeNames: map[string]string{
				"#id":          "id",
				"#reviewed_by": "reviewed_by_bill_id",
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		OrderID:        it.OrderID,
		LegacyRecordID: it.LegacyRecordID,
		BundleType:     it.BundleType,
		PatientName:    it.PatientName,
		PatientDOB:     it.PatientDOB,
		ClaimNumber:    it.ClaimNumber,
		ProviderID:     it.ProviderID,
		BillsReceived:  it.BillsReceived,
		BillsPaid:      it.BillsPaid,
	}
}

func fromOrderLineItemItem(it orderLineItemItem) entities.OrderLineItem {
	charge, _ := parseFloat(it.Charge)
	li := entities.OrderLineItem{
		ID:               it.ID,
		OrderID:          it.OrderID,
		DateOfService:    it.DateOfService,
		CPTCode:          it.CPTCode,
		Modifier:         it.Modifier,
		Units:            it.Units,
		Description:      it.Description,
		Charge:           charge,
		LineNumber:       it.LineNumber,
		ReviewedByBillID: it.ReviewedByBillID,
	}
	if it.PaidRate != "" {
		if v, err := parseFloat(it.PaidRate); err == nil {
			li.PaidRate = &v
		}
	}
	return li
}
