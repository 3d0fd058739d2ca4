// Package metrics defines and registers all custom Prometheus metrics for the
// recipe service. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on import.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/recipebox/recipe-service/internal/core/domain"
)

const namespace = "recipes"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - outcome: "ok", "duplicate_email", "password_mismatch", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"outcome"},
)

// SignInsTotal counts sign-in attempts.
// Label:
//   - outcome: "ok", "unknown_user", "invalid_credentials", or "error"
var SignInsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_ins_total",
		Help:      "Total number of sign-in attempts, by outcome.",
	},
	[]string{"outcome"},
)

// PasswordChangesTotal counts password change attempts.
// Label:
//   - outcome: "ok", "user_not_found", "invalid_credentials", "password_mismatch",
//     "password_reuse", or "error"
var PasswordChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_changes_total",
		Help:      "Total number of password change attempts, by outcome.",
	},
	[]string{"outcome"},
)

// SignOutsTotal counts completed sign-outs.
var SignOutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_outs_total",
		Help:      "Total number of sessions destroyed by sign-out.",
	},
)

// ── Recipe metrics ────────────────────────────────────────────────────────────

// RecipeWritesTotal counts recipe mutations.
// Labels:
//   - op: "create", "update", or "delete"
//   - outcome: "ok", "forbidden", "recipe_not_found", or "error"
var RecipeWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipe_writes_total",
		Help:      "Total number of recipe create/update/delete attempts.",
	},
	[]string{"op", "outcome"},
)

var outcomes = []struct {
	err   error
	label string
}{
	{domain.ErrDuplicateEmail, "duplicate_email"},
	{domain.ErrPasswordMismatch, "password_mismatch"},
	{domain.ErrUnknownUser, "unknown_user"},
	{domain.ErrUserNotFound, "user_not_found"},
	{domain.ErrInvalidCredentials, "invalid_credentials"},
	{domain.ErrPasswordReuse, "password_reuse"},
	{domain.ErrRecipeNotFound, "recipe_not_found"},
	{domain.ErrForbidden, "forbidden"},
}

// Outcome maps an operation's error to a low-cardinality label value.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	for _, o := range outcomes {
		if errors.Is(err, o.err) {
			return o.label
		}
	}
	return "error"
}
