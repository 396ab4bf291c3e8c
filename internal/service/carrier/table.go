package carrier

import (
	"strings"

	"rjcouriers-service-booking/internal/domain"
)

type statusTable struct {
	byStatus map[string]domain.ShipmentStatus
}

func newStatusTable() *statusTable {
	return &statusTable{
		byStatus: map[string]domain.ShipmentStatus{
			"created":          domain.StatusPending,
			"pending":          domain.StatusPending,
			"picked_up":        domain.StatusInTransit,
			"in_transit":       domain.StatusInTransit,
			"in-transit":       domain.StatusInTransit,
			"out_for_delivery": domain.StatusInTransit,
			"delivered":        domain.StatusDelivered,
		},
	}
}

func (t *statusTable) get(status string) (domain.ShipmentStatus, bool) {
	status = strings.ToLower(strings.TrimSpace(status))
	s, ok := t.byStatus[status]
	return s, ok
}
