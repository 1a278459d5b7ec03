package repository

import (
	"encoding/json"
	"time"

	"modular_homes/internal/domain/entities"
)

// Storage mirrors of the domain entities. Timestamps are RFC3339Nano
// strings; money fields are plain DynamoDB numbers.

type quoteItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
	Status     string `dynamodbav:"status"`

	Selections selectionsItem `dynamodbav:"selections"`

	ChangeOrderHistory []changeOrderItem `dynamodbav:"change_order_history,omitempty"`
	ScrubbHistory      []scrubbItem      `dynamodbav:"scrubb_history,omitempty"`
	ScrubbPayments     []paymentItem     `dynamodbav:"scrubb_payments,omitempty"`
	PermitEntries      []permitItem      `dynamodbav:"permit_entries,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// selectionsItem groups the priceable fields so UpdateSelections can
// replace them in one SET without touching status or the history lists.
type selectionsItem struct {
	HomeModelID   string         `dynamodbav:"home_model_id,omitempty"`
	HomeBasePrice float64        `dynamodbav:"home_base_price"`
	Dimensions    dimensionsItem `dynamodbav:"dimensions"`
	DriveMiles    float64        `dynamodbav:"drive_miles"`

	SelectedServices  map[string]bool    `dynamodbav:"selected_services,omitempty"`
	PriceOverrides    map[string]float64 `dynamodbav:"price_overrides,omitempty"`
	ServiceQuantities map[string]float64 `dynamodbav:"service_quantities,omitempty"`
	ServiceDays       map[string]float64 `dynamodbav:"service_days,omitempty"`

	MarkupRate      float64 `dynamodbav:"markup_rate"`
	ContingencyRate float64 `dynamodbav:"contingency_rate"`

	RemovedMaterials map[string]bool      `dynamodbav:"removed_materials,omitempty"`
	CustomMaterials  []customMaterialItem `dynamodbav:"custom_materials,omitempty"`
}

type dimensionsItem struct {
	WidthFt       float64 `dynamodbav:"width_ft"`
	LengthFt      float64 `dynamodbav:"length_ft"`
	DoubleWide    bool    `dynamodbav:"double_wide"`
	WalkDoors     int     `dynamodbav:"walk_doors"`
	IBeamHeightIn float64 `dynamodbav:"i_beam_height_in"`
}

type customMaterialItem struct {
	Name     string  `dynamodbav:"name"`
	Price    float64 `dynamodbav:"price"`
	Quantity float64 `dynamodbav:"quantity"`
}

type changeOrderItem struct {
	ChangeOrderNum int    `dynamodbav:"change_order_num"`
	Version        int    `dynamodbav:"version"`
	Status         string `dynamodbav:"status"`

	Additions   []changeOrderLineItem     `dynamodbav:"additions,omitempty"`
	Deletions   []changeOrderLineItem     `dynamodbav:"deletions,omitempty"`
	Adjustments map[string]adjustmentItem `dynamodbav:"adjustments,omitempty"`

	TotalChange        float64 `dynamodbav:"total_change"`
	ContingencyUsed    float64 `dynamodbav:"contingency_used"`
	ContingencyBalance float64 `dynamodbav:"contingency_balance"`

	IsReversal bool   `dynamodbav:"is_reversal"`
	CreatedAt  string `dynamodbav:"created_at"`
	CreatedBy  string `dynamodbav:"created_by,omitempty"`
}

type changeOrderLineItem struct {
	ServiceKey string  `dynamodbav:"service_key"`
	Name       string  `dynamodbav:"name"`
	Amount     float64 `dynamodbav:"amount"`
}

type adjustmentItem struct {
	Amount float64 `dynamodbav:"amount"`
}

type scrubbItem struct {
	ServiceKey    string  `dynamodbav:"service_key"`
	PreviousCost  float64 `dynamodbav:"previous_cost"`
	NewCost       float64 `dynamodbav:"new_cost"`
	ContractPrice float64 `dynamodbav:"contract_price"`
	Variance      float64 `dynamodbav:"variance"`

	IsAllowance           bool `dynamodbav:"is_allowance"`
	IsChangeOrderAddition bool `dynamodbav:"is_change_order_addition"`

	UpdatedAt string `dynamodbav:"updated_at"`
	UpdatedBy string `dynamodbav:"updated_by,omitempty"`
}

type paymentItem struct {
	ID                   string  `dynamodbav:"id"`
	Amount               float64 `dynamodbav:"amount"`
	Date                 string  `dynamodbav:"date"`
	IsContingencyPayment bool    `dynamodbav:"is_contingency_payment"`

	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	CreatedBy string `dynamodbav:"created_by,omitempty"`
}

type permitItem struct {
	ID          string  `dynamodbav:"id"`
	Description string  `dynamodbav:"description"`
	Amount      float64 `dynamodbav:"amount"`
	IssuedAt    string  `dynamodbav:"issued_at"`
	CreatedAt   string  `dynamodbav:"created_at"`
	CreatedBy   string  `dynamodbav:"created_by,omitempty"`
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:         q.ID,
		CustomerID: q.CustomerID,
		Status:     string(q.Status),
		Selections: selectionsItem{
			HomeModelID:   q.HomeModelID,
			HomeBasePrice: q.HomeBasePrice,
			Dimensions: dimensionsItem{
				WidthFt:       q.Dimensions.WidthFt,
				LengthFt:      q.Dimensions.LengthFt,
				DoubleWide:    q.Dimensions.DoubleWide,
				WalkDoors:     q.Dimensions.WalkDoors,
				IBeamHeightIn: q.Dimensions.IBeamHeightIn,
			},
			DriveMiles:        q.DriveMiles,
			SelectedServices:  q.SelectedServices,
			PriceOverrides:    q.PriceOverrides,
			ServiceQuantities: q.ServiceQuantities,
			ServiceDays:       q.ServiceDays,
			MarkupRate:        q.MarkupRate,
			ContingencyRate:   q.ContingencyRate,
			RemovedMaterials:  q.RemovedMaterials,
		},
		CreatedAt: timeToString(q.CreatedAt),
		UpdatedAt: timeToString(q.UpdatedAt),
	}

	for _, cm := range q.CustomMaterials {
		it.Selections.CustomMaterials = append(it.Selections.CustomMaterials, customMaterialItem(cm))
	}
	for _, e := range q.ChangeOrderHistory {
		it.ChangeOrderHistory = append(it.ChangeOrderHistory, toChangeOrderItem(e))
	}
	for _, e := range q.ScrubbHistory {
		it.ScrubbHistory = append(it.ScrubbHistory, toScrubbItem(e))
	}
	for _, p := range q.ScrubbPayments {
		it.ScrubbPayments = append(it.ScrubbPayments, toPaymentItem(p))
	}
	for _, p := range q.PermitEntries {
		it.PermitEntries = append(it.PermitEntries, toPermitItem(p))
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	q := entities.Quote{
		ID:            it.ID,
		CustomerID:    it.CustomerID,
		Status:        entities.QuoteStatus(it.Status),
		HomeModelID:   it.Selections.HomeModelID,
		HomeBasePrice: it.Selections.HomeBasePrice,
		Dimensions: entities.HomeDimensions{
			WidthFt:       it.Selections.Dimensions.WidthFt,
			LengthFt:      it.Selections.Dimensions.LengthFt,
			DoubleWide:    it.Selections.Dimensions.DoubleWide,
			WalkDoors:     it.Selections.Dimensions.WalkDoors,
			IBeamHeightIn: it.Selections.Dimensions.IBeamHeightIn,
		},
		DriveMiles:        it.Selections.DriveMiles,
		SelectedServices:  it.Selections.SelectedServices,
		PriceOverrides:    it.Selections.PriceOverrides,
		ServiceQuantities: it.Selections.ServiceQuantities,
		ServiceDays:       it.Selections.ServiceDays,
		MarkupRate:        it.Selections.MarkupRate,
		ContingencyRate:   it.Selections.ContingencyRate,
		RemovedMaterials:  it.Selections.RemovedMaterials,
		CreatedAt:         stringToTime(it.CreatedAt),
		UpdatedAt:         stringToTime(it.UpdatedAt),
	}

	for _, cm := range it.Selections.CustomMaterials {
		q.CustomMaterials = append(q.CustomMaterials, entities.CustomMaterial(cm))
	}
	for _, e := range it.ChangeOrderHistory {
		q.ChangeOrderHistory = append(q.ChangeOrderHistory, fromChangeOrderItem(e))
	}
	for _, e := range it.ScrubbHistory {
		q.ScrubbHistory = append(q.ScrubbHistory, fromScrubbItem(e))
	}
	for _, p := range it.ScrubbPayments {
		q.ScrubbPayments = append(q.ScrubbPayments, fromPaymentItem(p))
	}
	for _, p := range it.PermitEntries {
		q.PermitEntries = append(q.PermitEntries, fromPermitItem(p))
	}
	return q
}

func toChangeOrderItem(e entities.ChangeOrderEntry) changeOrderItem {
	it := changeOrderItem{
		ChangeOrderNum:     e.ChangeOrderNum,
		Version:            e.Version,
		Status:             string(e.Status),
		TotalChange:        e.TotalChange,
		ContingencyUsed:    e.ContingencyUsed,
		ContingencyBalance: e.ContingencyBalance,
		IsReversal:         e.IsReversal,
		CreatedAt:          timeToString(e.CreatedAt),
		CreatedBy:          e.CreatedBy,
	}
	for _, line := range e.Additions {
		it.Additions = append(it.Additions, changeOrderLineItem(line))
	}
	for _, line := range e.Deletions {
		it.Deletions = append(it.Deletions, changeOrderLineItem(line))
	}
	if len(e.Adjustments) > 0 {
		it.Adjustments = make(map[string]adjustmentItem, len(e.Adjustments))
		for key, adj := range e.Adjustments {
			it.Adjustments[key] = adjustmentItem(adj)
		}
	}
	return it
}

func fromChangeOrderItem(it changeOrderItem) entities.ChangeOrderEntry {
	e := entities.ChangeOrderEntry{
		ChangeOrderNum:     it.ChangeOrderNum,
		Version:            it.Version,
		Status:             entities.ChangeOrderStatus(it.Status),
		TotalChange:        it.TotalChange,
		ContingencyUsed:    it.ContingencyUsed,
		ContingencyBalance: it.ContingencyBalance,
		IsReversal:         it.IsReversal,
		CreatedAt:          stringToTime(it.CreatedAt),
		CreatedBy:          it.CreatedBy,
	}
	for _, line := range it.Additions {
		e.Additions = append(e.Additions, entities.ChangeOrderLine(line))
	}
	for _, line := range it.Deletions {
		e.Deletions = append(e.Deletions, entities.ChangeOrderLine(line))
	}
	if len(it.Adjustments) > 0 {
		e.Adjustments = make(map[string]entities.Adjustment, len(it.Adjustments))
		for key, adj := range it.Adjustments {
			e.Adjustments[key] = entities.Adjustment(adj)
		}
	}
	return e
}

func toScrubbItem(e entities.ScrubbHistoryEntry) scrubbItem {
	return scrubbItem{
		ServiceKey:            e.ServiceKey,
		PreviousCost:          e.PreviousCost,
		NewCost:               e.NewCost,
		ContractPrice:         e.ContractPrice,
		Variance:              e.Variance,
		IsAllowance:           e.IsAllowance,
		IsChangeOrderAddition: e.IsChangeOrderAddition,
		UpdatedAt:             timeToString(e.UpdatedAt),
		UpdatedBy:             e.UpdatedBy,
	}
}

func fromScrubbItem(it scrubbItem) entities.ScrubbHistoryEntry {
	return entities.ScrubbHistoryEntry{
		ServiceKey:            it.ServiceKey,
		PreviousCost:          it.PreviousCost,
		NewCost:               it.NewCost,
		ContractPrice:         it.ContractPrice,
		Variance:              it.Variance,
		IsAllowance:           it.IsAllowance,
		IsChangeOrderAddition: it.IsChangeOrderAddition,
		UpdatedAt:             stringToTime(it.UpdatedAt),
		UpdatedBy:             it.UpdatedBy,
	}
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                   p.ID,
		Amount:               p.Amount,
		Date:                 timeToString(p.Date),
		IsContingencyPayment: p.IsContingencyPayment,
		ProviderPaymentID:    p.ProviderPaymentID,
		ProviderPayloadRaw:   string(p.ProviderPayloadRaw),
		CreatedAt:            timeToString(p.CreatedAt),
		CreatedBy:            p.CreatedBy,
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:                   it.ID,
		Amount:               it.Amount,
		Date:                 stringToTime(it.Date),
		IsContingencyPayment: it.IsContingencyPayment,
		ProviderPaymentID:    it.ProviderPaymentID,
		CreatedAt:            stringToTime(it.CreatedAt),
		CreatedBy:            it.CreatedBy,
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return p
}

func toPermitItem(p entities.PermitEntry) permitItem {
	return permitItem{
		ID:          p.ID,
		Description: p.Description,
		Amount:      p.Amount,
		IssuedAt:    timeToString(p.IssuedAt),
		CreatedAt:   timeToString(p.CreatedAt),
		CreatedBy:   p.CreatedBy,
	}
}

func fromPermitItem(it permitItem) entities.PermitEntry {
	return entities.PermitEntry{
		ID:          it.ID,
		Description: it.Description,
		Amount:      it.Amount,
		IssuedAt:    stringToTime(it.IssuedAt),
		CreatedAt:   stringToTime(it.CreatedAt),
		CreatedBy:   it.CreatedBy,
	}
}

func timeToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
