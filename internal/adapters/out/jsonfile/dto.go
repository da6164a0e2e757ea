package jsonfile

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/plan"
	"dispatch/internal/core/domain/model/recon"
)

// courierDTO mirrors one entry of couriers.json. encoding/json matches keys
// case-insensitively, which covers the accepted spellings of the roster file.
type courierDTO struct {
	CourierID     string   `json:"courierId"`
	ZonesCovered  []string `json:"zonesCovered"`
	AcceptsCOD    bool     `json:"acceptsCOD"`
	DailyCapacity float64  `json:"dailyCapacity"`
	Priority      *int     `json:"priority"`
	Exclusions    []string `json:"exclusions"`
}

func (d courierDTO) toDomain() (*courier.Courier, error) {
	return courier.New(d.CourierID, d.ZonesCovered, d.AcceptsCOD, d.DailyCapacity, d.Priority, d.Exclusions)
}

// cleanOrderDTO mirrors one entry of clean_orders.json. The artifact keeps
// the lower-cased internal field names.
type cleanOrderDTO struct {
	OrderID     string  `json:"orderid"`
	City        string  `json:"city"`
	PaymentType string  `json:"paymenttype"`
	ProductType string  `json:"producttype"`
	Weight      float64 `json:"weight"`
	Deadline    string  `json:"deadline"`
	Address     string  `json:"address"`
}

type cleanOrdersDocument struct {
	Orders   []cleanOrderDTO `json:"orders"`
	Warnings []string        `json:"warnings"`
}

func cleanOrderFromDomain(o order.Order) cleanOrderDTO {
	return cleanOrderDTO{
		OrderID:     o.ID(),
		City:        o.City(),
		PaymentType: o.PaymentType(),
		ProductType: o.ProductType(),
		Weight:      o.Weight(),
		Deadline:    o.Deadline(),
		Address:     o.Address(),
	}
}

// assignmentDTO uses the camelCase boundary convention, intentionally
// different from the clean-order field casing.
type assignmentDTO struct {
	OrderID   string `json:"orderId"`
	CourierID string `json:"courierId"`
}

type planDocument struct {
	Assignments       []assignmentDTO    `json:"assignments"`
	Unassigned        []string           `json:"unassigned"`
	CapacityUsage     map[string]float64 `json:"capacityUsage"`
	UnassignedReasons map[string]string  `json:"unassignedReasons"`
}

func planFromDomain(p plan.Plan) planDocument {
	assignments := make([]assignmentDTO, len(p.Assignments))
	for i, a := range p.Assignments {
		assignments[i] = assignmentDTO{OrderID: a.OrderID, CourierID: a.CourierID}
	}

	return planDocument{
		Assignments:       assignments,
		Unassigned:        emptyIfNil(p.Unassigned),
		CapacityUsage:     p.CapacityUsage,
		UnassignedReasons: p.UnassignedReasons,
	}
}

type reconciliationDocument struct {
	Unexpected   []string `json:"unexpected"`
	Misassigned  []string `json:"misassigned"`
	Late         []string `json:"late"`
	Duplicate    []string `json:"duplicate"`
	NotDelivered []string `json:"notDelivered"`
}

func reconciliationFromDomain(r recon.Report) reconciliationDocument {
	return reconciliationDocument{
		Unexpected:   emptyIfNil(r.Unexpected),
		Misassigned:  emptyIfNil(r.Misassigned),
		Late:         emptyIfNil(r.Late),
		Duplicate:    emptyIfNil(r.Duplicate),
		NotDelivered: emptyIfNil(r.NotDelivered),
	}
}

// emptyIfNil keeps artifact lists serializing as [] rather than null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
