// Package metrics defines all custom Prometheus metrics for the back office
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// LoginsTotal counts admin login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// EnquiriesSubmittedTotal counts enquiries accepted through the public form.
// Label:
//   - type: "callback", "property_enquiry", or "general"
var EnquiriesSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enquiries_submitted_total",
		Help:      "Total number of enquiries submitted, by enquiry type.",
	},
	[]string{"type"},
)

// TransactionsCreatedTotal counts recorded financial transactions.
// Label:
//   - type: "income" or "expense"
var TransactionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_created_total",
		Help:      "Total number of financial transactions recorded, by type.",
	},
	[]string{"type"},
)

// ReceiptsCreatedTotal counts issued receipts.
var ReceiptsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "receipts_created_total",
		Help:      "Total number of receipts issued.",
	},
)

// NotificationsQueueDepth tracks pending enquiry notifications per worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of enquiry notifications pending in each worker channel.",
	},
	[]string{"worker_id"},
)
