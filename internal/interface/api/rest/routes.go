package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	RouteUsers          = RouteApiV1 + "/users"
	RouteUserDeactivate = RouteUsers + "/:user_id/deactivate"

	// ops
	RouteHealth   = RouteApiV1 + "/healthz"
	RouteHealthDB = RouteHealth + "/db"
	RouteMetrics  = RouteApiV1 + "/metrics"
)
