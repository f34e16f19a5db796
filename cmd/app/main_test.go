package main

import (
	"context"
	"testing"
	"time"

	"dronedelivery/cmd"

	"github.com/stretchr/testify/require"
)

func TestServe_ReturnsDatabaseError(t *testing.T) {
	cfg := cmd.Config{
		HTTPPort:                    "0",
		DBHost:                      "127.0.0.1",
		DBPort:                      "1",
		DBUser:                      "orders",
		DBPassword:                  "orders",
		DBName:                      "orders",
		DBSslMode:                   "disable",
		EstimatorBaseURL:            "http://127.0.0.1:1",
		EstimatorTimeout:            time.Second,
		LogLevel:                    "error",
		PackageCodeMaxAttempts:      1,
		OverdueOrdersSchedule:       "0 */5 * * * *",
		ActiveOrdersSummarySchedule: "0 0 * * * *",
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := serve(ctx, cfg, false)

	require.ErrorContains(t, err, "connect to database")
}
