package http

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/plan"
	"dispatch/internal/core/domain/model/recon"
	"dispatch/internal/core/domain/model/scan"
	"dispatch/internal/core/domain/model/zone"
)

// runRequest carries one in-memory pipeline run: the same four inputs the
// batch binary reads from files. Scans may be omitted for plan-only callers.
type runRequest struct {
	Orders   []map[string]any `json:"orders"`
	Couriers []courierDTO     `json:"couriers"`
	Zones    []zoneAliasDTO   `json:"zones"`
	Scans    []scanDTO        `json:"scans"`
}

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

type zoneAliasDTO struct {
	Raw       string `json:"raw"`
	Canonical string `json:"canonical"`
}

func (d zoneAliasDTO) toDomain() zone.Alias {
	return zone.Alias{Raw: d.Raw, Canonical: d.Canonical}
}

type scanDTO struct {
	OrderID     string `json:"orderId"`
	CourierID   string `json:"courierId"`
	DeliveredAt string `json:"deliveredAt"`
}

func (d scanDTO) toDomain() scan.Record {
	return scan.Record{OrderID: d.OrderID, CourierID: d.CourierID, DeliveredAt: d.DeliveredAt}
}

// runResponse returns the three artifacts of a run, in the same shapes the
// file sinks write.
type runResponse struct {
	RunID          string                 `json:"runId"`
	CleanOrders    cleanOrdersResponse    `json:"cleanOrders"`
	Plan           planResponse           `json:"plan"`
	Reconciliation reconciliationResponse `json:"reconciliation"`
}

type cleanOrdersResponse struct {
	Orders   []cleanOrderDTO `json:"orders"`
	Warnings []string        `json:"warnings"`
}

type cleanOrderDTO struct {
	OrderID     string  `json:"orderid"`
	City        string  `json:"city"`
	PaymentType string  `json:"paymenttype"`
	ProductType string  `json:"producttype"`
	Weight      float64 `json:"weight"`
	Deadline    string  `json:"deadline"`
	Address     string  `json:"address"`
}

type assignmentDTO struct {
	OrderID   string `json:"orderId"`
	CourierID string `json:"courierId"`
}

type planResponse struct {
	Assignments       []assignmentDTO    `json:"assignments"`
	Unassigned        []string           `json:"unassigned"`
	CapacityUsage     map[string]float64 `json:"capacityUsage"`
	UnassignedReasons map[string]string  `json:"unassignedReasons"`
}

type reconciliationResponse struct {
	Unexpected   []string `json:"unexpected"`
	Misassigned  []string `json:"misassigned"`
	Late         []string `json:"late"`
	Duplicate    []string `json:"duplicate"`
	NotDelivered []string `json:"notDelivered"`
}

// errorResponse is the uniform error payload of the API.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func cleanOrdersFromDomain(orders []order.Order, warnings []string) cleanOrdersResponse {
	dtos := make([]cleanOrderDTO, len(orders))
	for i, o := range orders {
		dtos[i] = cleanOrderDTO{
			OrderID:     o.ID(),
			City:        o.City(),
			PaymentType: o.PaymentType(),
			ProductType: o.ProductType(),
			Weight:      o.Weight(),
			Deadline:    o.Deadline(),
			Address:     o.Address(),
		}
	}
	return cleanOrdersResponse{Orders: dtos, Warnings: emptyIfNil(warnings)}
}

func planFromDomain(p plan.Plan) planResponse {
	assignments := make([]assignmentDTO, len(p.Assignments))
	for i, a := range p.Assignments {
		assignments[i] = assignmentDTO{OrderID: a.OrderID, CourierID: a.CourierID}
	}
	return planResponse{
		Assignments:       assignments,
		Unassigned:        emptyIfNil(p.Unassigned),
		CapacityUsage:     p.CapacityUsage,
		UnassignedReasons: p.UnassignedReasons,
	}
}

func reconciliationFromDomain(r recon.Report) reconciliationResponse {
	return reconciliationResponse{
		Unexpected:   emptyIfNil(r.Unexpected),
		Misassigned:  emptyIfNil(r.Misassigned),
		Late:         emptyIfNil(r.Late),
		Duplicate:    emptyIfNil(r.Duplicate),
		NotDelivered: emptyIfNil(r.NotDelivered),
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
