package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"billreview/internal/domain/entities"
	"billreview/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBillsTableName     = "provider_bills"
	defaultBillLinesTableName = "bill_line_items"
	billsStatusIndex          = "status-index"
	billLinesBillIDIndex      = "bill_id-index"
)

type billItem struct {
	ID            string `dynamodbav:"id"`
	ClaimID       string `dynamodbav:"claim_id,omitempty"`
	OrderID       string `dynamodbav:"order_id,omitempty"`
	PatientName   string `dynamodbav:"patient_name"`
	PatientDOB    string `dynamodbav:"patient_dob,omitempty"`
	ProviderName  string `dynamodbav:"billing_provider_name"`
	AddrLine1     string `dynamodbav:"billing_address1,omitempty"`
	AddrLine2     string `dynamodbav:"billing_address2,omitempty"`
	AddrCity      string `dynamodbav:"billing_city,omitempty"`
	AddrState     string `dynamodbav:"billing_state,omitempty"`
	AddrZip       string `dynamodbav:"billing_zip,omitempty"`
	ProviderTIN   string `dynamodbav:"billing_provider_tin,omitempty"`
	ProviderNPI   string `dynamodbav:"billing_provider_npi,omitempty"`
	Network       string `dynamodbav:"provider_network,omitempty"`
	TotalCharge   string `dynamodbav:"total_charge"`
	AccountNumber string `dynamodbav:"account_number,omitempty"`
	Status        string `dynamodbav:"status"`
	Action        string `dynamodbav:"action,omitempty"`
	LastError     string `dynamodbav:"last_error,omitempty"`
	Paid          bool   `dynamodbav:"bill_paid"`
	CreatedAt     string `dynamodbav:"created_at"`
}

type billLineItemItem struct {
	ID               string `dynamodbav:"id"`
	BillID           string `dynamodbav:"bill_id"`
	CPTCode          string `dynamodbav:"cpt_code"`
	Modifier         string `dynamodbav:"modifier,omitempty"`
	Units            int    `dynamodbav:"units"`
	ChargeAmount     string `dynamodbav:"charge_amount"`
	AllowedAmount    string `dynamodbav:"allowed_amount,omitempty"`
	Decision         string `dynamodbav:"decision"`
	ReasonCode       string `dynamodbav:"reason_code,omitempty"`
	DateOfService    string `dynamodbav:"date_of_service,omitempty"`
	PlaceOfService   string `dynamodbav:"place_of_service,omitempty"`
	DiagnosisPointer string `dynamodbav:"diagnosis_pointer,omitempty"`
}

// BillDynamoRepository persists Bill and BillLineItem entities in DynamoDB.
//
// Table requirements:
//   - provider_bills: PK id (string), GSI status-index (PK: status, SK: created_at)
//   - bill_line_items: PK id (string), GSI bill_id-index (PK: bill_id)

type BillDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	linesTableName string
}

var _ interfaces.IBillRepository = (*BillDynamoRepository)(nil)

func NewBillDynamoRepository(ddb *dynamodb.Client) *BillDynamoRepository {
	return &BillDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("BILLS_TABLE", defaultBillsTableName),
		linesTableName: getenvDefault("BILL_LINES_TABLE", defaultBillLinesTableName),
	}
}

func (r *BillDynamoRepository) Create(ctx context.Context, b entities.Bill, items []entities.BillLineItem) (entities.Bill, error) {
	it := toBillItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Bill{}, err
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
		return entities.Bill{}, err
	}

	for _, li := range items {
		liAV, err := attributevalue.MarshalMap(toBillLineItemItem(li))
		if err != nil {
			return entities.Bill{}, err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.linesTableName),
			Item:      liAV,
		})
		if err != nil {
			return entities.Bill{}, err
		}
	}
	return b, nil
}

func (r *BillDynamoRepository) GetByID(ctx context.Context, id string) (entities.Bill, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bill{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bill{}, nil
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

func (r *BillDynamoRepository) ListByStatus(ctx context.Context, status entities.BillStatus, limit int) ([]entities.Bill, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(billsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	bills := make([]entities.Bill, 0, len(out.Items))
	for _, raw := range out.Items {
		var it billItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		bills = append(bills, fromBillItem(it))
	}
	return bills, nil
}

func (r *BillDynamoRepository) UpdateDisposition(ctx context.Context, id string, status entities.BillStatus, action entities.BillAction, lastError string) error {
	expr := "SET #status = :status, #action = :action, #last_error = :last_error"
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String(expr),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":action":     &types.AttributeValueMemberS{Value: string(action)},
			":last_error": &types.AttributeValueMemberS{Value: lastError},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#action":     "action",
			"#last_error": "last_error",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

// MarkPaid flips bill_paid only. The accounting collaborator advances the
// bill to COMPLETED once the payment actually clears.
func (r *BillDynamoRepository) MarkPaid(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, markPaidInput(r.tableName, id))
	return err
}

func markPaidInput(table, id string) *dynamodb.UpdateItemInput {
	return &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #bill_paid = :paid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid": &types.AttributeValueMemberBOOL{Value: true},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#bill_paid": "bill_paid",
		},
	}
}

func (r *BillDynamoRepository) ListLineItems(ctx context.Context, billID string) ([]entities.BillLineItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.linesTableName),
		IndexName:              aws.String(billLinesBillIDIndex),
		KeyConditionExpression: aws.String("bill_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: billID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.BillLineItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it billLineItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBillLineItemItem(it))
	}
	// GSI query order is not defined for our access pattern. CPT order feeds
	// deterministic keys downstream, so sort here.
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *BillDynamoRepository) UpdateLineDecision(ctx context.Context, lineID string, decision entities.LineDecision, allowedAmount *float64, reasonCode string) error {
	expr := "SET #decision = :decision, #reason_code = :reason_code"
	vals := map[string]types.AttributeValue{
		":decision":    &types.AttributeValueMemberS{Value: string(decision)},
		":reason_code": &types.AttributeValueMemberS{Value: reasonCode},
	}
	names := map[string]string{
		"#id":          "id",
		"#decision":    "decision",
		"#reason_code": "reason_code",
	}
	if allowedAmount != nil {
		expr += ", #allowed_amount = :allowed_amount"
		vals[":allowed_amount"] = &types.AttributeValueMemberN{Value: floatToString(*allowedAmount)}
		names["#allowed_amount"] = "allowed_amount"
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.linesTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: lineID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
	})
	return err
}

func toBillItem(b entities.Bill) billItem {
	return billItem{
		ID:            b.ID,
		ClaimID:       b.ClaimID,
		OrderID:       b.OrderID,
		PatientName:   b.PatientName,
		PatientDOB:    b.PatientDOB,
		ProviderName:  b.ProviderName,
		AddrLine1:     b.ProviderAddr.Line1,
		AddrLine2:     b.ProviderAddr.Line2,
		AddrCity:      b.ProviderAddr.City,
		AddrState:     b.ProviderAddr.State,
		AddrZip:       b.ProviderAddr.PostalCode,
		ProviderTIN:   b.ProviderTIN,
		ProviderNPI:   b.ProviderNPI,
		Network:       b.Network,
		TotalCharge:   floatToString(b.TotalCharge),
		AccountNumber: b.AccountNumber,
		Status:        string(b.Status),
		Action:        string(b.Action),
		LastError:     b.LastError,
		Paid:          b.Paid,
		CreatedAt:     b.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBillItem(it billItem) entities.Bill {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	total, _ := parseFloat(it.TotalCharge)
	return entities.Bill{
		ID:           it.ID,
		ClaimID:      it.ClaimID,
		OrderID:      it.OrderID,
		PatientName:  it.PatientName,
		PatientDOB:   it.PatientDOB,
		ProviderName: it.ProviderName,
		ProviderAddr: entities.Address{
			Line1:      it.AddrLine1,
			Line2:      it.AddrLine2,
			City:       it.AddrCity,
			State:      it.AddrState,
			PostalCode: it.AddrZip,
		},
		ProviderTIN:   it.ProviderTIN,
		ProviderNPI:   it.ProviderNPI,
		Network:       it.Network,
		TotalCharge:   total,
		AccountNumber: it.AccountNumber,
		Status:        entities.BillStatus(it.Status),
		Action:        entities.BillAction(it.Action),
		LastError:     it.LastError,
		Paid:          it.Paid,
		CreatedAt:     createdAt,
	}
}

func toBillLineItemItem(li entities.BillLineItem) billLineItemItem {
	it := billLineItemItem{
		ID:               li.ID,
		BillID:           li.BillID,
		CPTCode:          li.CPTCode,
		Modifier:         li.Modifier,
		Units:            li.Units,
		ChargeAmount:     floatToString(li.ChargeAmount),
		Decision:         string(li.Decision),
		ReasonCode:       li.ReasonCode,
		DateOfService:    li.DateOfService,
		PlaceOfService:   li.PlaceOfService,
		DiagnosisPointer: li.DiagnosisPointer,
	}
	if li.AllowedAmount != nil {
		it.AllowedAmount = floatToString(*li.AllowedAmount)
	}
	return it
}

func fromBillLineItemItem(it billLineItemItem) entities.BillLineItem {
	charge, _ := parseFloat(it.ChargeAmount)
	li := entities.BillLineItem{
		ID:               it.ID,
		BillID:           it.BillID,
		CPTCode:          it.CPTCode,
		Modifier:         it.Modifier,
		Units:            it.Units,
		ChargeAmount:     charge,
		Decision:         entities.LineDecision(it.Decision),
		ReasonCode:       it.ReasonCode,
		DateOfService:    it.DateOfService,
		PlaceOfService:   it.PlaceOfService,
		DiagnosisPointer: it.DiagnosisPointer,
	}
	if it.AllowedAmount != "" {
		if v, err := parseFloat(it.AllowedAmount); err == nil {
			li.AllowedAmount = &v
		}
	}
	return li
}
