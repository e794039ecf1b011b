package storage

import (
	"github.com/VictoriaMetrics/metrics"
)

var (
	redisSetOK  = metrics.NewCounter(`keyboard_storage_operations_total{backend="redis",operation="set",status="ok"}`)
	redisSetErr = metrics.NewCounter(`keyboard_storage_operations_total{backend="redis",operation="set",status="error"}`)
	redisSetDur = metrics.NewHistogram(`keyboard_storage_operation_duration_seconds{backend="redis",operation="set"}`)

	redisGetOK   = metrics.NewCounter(`keyboard_storage_operations_total{backend="redis",operation="get",status="ok"}`)
	redisGetErr  = metrics.NewCounter(`keyboard_storage_operations_total{backend="redis",operation="get",status="error"}`)
	redisGetMiss = metrics.NewCounter(`keyboard_storage_operations_total{backend="redis",operation="get",status="miss"}`)
	redisGetDur  = metrics.NewHistogram(`keyboard_storage_operation_duration_seconds{backend="redis",operation="get"}`)

	redisDelOK  = metrics.NewCounter(`keyboard_storage_operations_total{backend="redis",operation="del",status="ok"}`)
	redisDelErr = metrics.NewCounter(`keyboard_storage_operations_total{backend="redis",operation="del",status="error"}`)

	memorySetErr  = metrics.NewCounter(`keyboard_storage_operations_total{backend="memory",operation="set",status="error"}`)
	memoryGetMiss = metrics.NewCounter(`keyboard_storage_operations_total{backend="memory",operation="get",status="miss"}`)
)
