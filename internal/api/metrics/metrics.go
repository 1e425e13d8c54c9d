// Package metrics defines the custom Prometheus metrics for the classroom
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register with the default registry at import time via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "classroom"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts requests rejected by the access control gate.
// Label:
//   - reason: "missing_token", "invalid_token", "unknown_user", "role", "teacher_secret"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

// SubmissionsSavedTotal counts successfully stored submissions.
var SubmissionsSavedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_saved_total",
		Help:      "Total number of submissions stored.",
	},
)

// GradesRecordedTotal counts grading operations that found their submission.
var GradesRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "grades_recorded_total",
		Help:      "Total number of grades written, including re-grades.",
	},
)
