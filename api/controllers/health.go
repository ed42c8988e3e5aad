package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/hotelops-backend/api/responses"
	pkgerrors "github.com/angelmondragon/hotelops-backend/pkg/errors"
	"github.com/angelmondragon/hotelops-backend/pkg/logger"
	"github.com/angelmondragon/hotelops-backend/pkg/types"
)

const readyTimeout = 2 * time.Second

// Pinger is satisfied by the db and redis clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthLive answers the raw {"status":"ok"} body existing clients poll.
func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteJSON(w, http.StatusOK, types.HealthStatus{Status: "ok"})
	}
}

// Dependency is one readiness check.
type Dependency struct {
	Name   string
	Pinger Pinger
}

// HealthReady pings every dependency in order. Nil pingers (redis disabled)
// are skipped.
func HealthReady(logg *logger.Logger, deps ...Dependency) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		for _, dep := range deps {
			if dep.Pinger == nil {
				continue
			}
			if err := dep.Pinger.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, dep.Name+" unavailable").WithDetails(map[string]any{"dependency": dep.Name}))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
