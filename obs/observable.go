// Package obs 为 Container 提供观测装饰器：指标、日志、链路追踪
package obs

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hatlonely/soax/soa"
)

type ObservableContainerOptions struct {
	// EnableMetrics 是否启用指标收集
	EnableMetrics bool `cfg:"enableMetrics" def:"true"`

	// EnableLogging 是否启用日志记录
	EnableLogging bool `cfg:"enableLogging" def:"true"`

	// EnableTracing 是否启用分布式追踪
	EnableTracing bool `cfg:"enableTracing" def:"false"`

	// Name 组件名称标识，用于所有观测维度
	// - Metrics: 作为指标名前缀
	// - Logging: 作为 component 字段值
	// - Tracing: 作为 span 的 component 属性
	Name string `cfg:"name" def:"container"`

	// Logger 日志记录器，EnableLogging 时为空则使用 slog 默认实现
	Logger Logger
}

// ObservableMetrics 封装 prometheus 指标
type ObservableMetrics struct {
	operationCounter   *prometheus.CounterVec
	operationDuration  *prometheus.HistogramVec
	activeOperations   *prometheus.GaugeVec
	batchSizeHistogram *prometheus.HistogramVec
	sizeGauge          prometheus.Gauge
}

// NewObservableMetrics 创建指标收集器
func NewObservableMetrics(name string) *ObservableMetrics {
	metrics := &ObservableMetrics{
		operationCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: name + "_operations_total",
				Help: "Total number of container operations",
			},
			[]string{"operation", "status"},
		),
		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    name + "_operation_duration_seconds",
				Help:    "Duration of container operations in seconds",
				Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
			},
			[]string{"operation"},
		),
		activeOperations: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: name + "_active_operations",
				Help: "Number of active container operations",
			},
			[]string{"operation"},
		),
		batchSizeHistogram: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    name + "_batch_size",
				Help:    "Size of batch operations",
				Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 10000},
			},
			[]string{"operation"},
		),
		sizeGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: name + "_size",
				Help: "Current number of records in the container",
			},
		),
	}

	// 注册到默认 prometheus registry
	prometheus.MustRegister(
		metrics.operationCounter,
		metrics.operationDuration,
		metrics.activeOperations,
		metrics.batchSizeHistogram,
		metrics.sizeGauge,
	)

	return metrics
}

// ObservableContainer 装饰器，为 Container 的结构性操作添加观测能力
// 读取接口通过 Unwrap 直接走原容器，不加观测开销
type ObservableContainer struct {
	container *soa.Container

	logger        Logger
	metrics       *ObservableMetrics
	tracer        trace.Tracer
	name          string
	enableMetrics bool
	enableLogging bool
	enableTracing bool
}

func NewObservableContainerWithOptions(container *soa.Container, options *ObservableContainerOptions) (*ObservableContainer, error) {
	if container == nil {
		return nil, errors.New("container is nil")
	}
	if options == nil {
		return nil, errors.New("options is nil")
	}

	name := options.Name
	if name == "" {
		name = "container"
	}

	obs := &ObservableContainer{
		container:     container,
		name:          name,
		enableMetrics: options.EnableMetrics,
		enableLogging: options.EnableLogging,
		enableTracing: options.EnableTracing,
	}

	// 创建 logger（可选）
	if options.EnableLogging {
		if options.Logger != nil {
			obs.logger = options.Logger
		} else {
			obs.logger = NewSlogLogger(nil)
		}
	}

	// 创建 metrics（可选）
	if options.EnableMetrics {
		obs.metrics = NewObservableMetrics(name)
	}

	// 创建 tracer（可选）
	if options.EnableTracing {
		obs.tracer = otel.Tracer(fmt.Sprintf("container.%s", name))
	}

	return obs, nil
}

// Unwrap 被包装的原容器
func (obs *ObservableContainer) Unwrap() *soa.Container {
	return obs.container
}

// observeOperation 统一的操作观测逻辑
func (obs *ObservableContainer) observeOperation(ctx context.Context, operation string, batchSize int, fn func(context.Context) error) error {
	start := time.Now()

	// 创建 tracing span
	var span trace.Span
	if obs.enableTracing && obs.tracer != nil {
		ctx, span = obs.tracer.Start(ctx, fmt.Sprintf("container.%s", operation),
			trace.WithAttributes(
				attribute.String("component", obs.name),
				attribute.String("operation", operation),
				attribute.Int("batch_size", batchSize),
			),
		)
		defer span.End()
	}

	// 记录活跃操作数和批量大小
	if obs.enableMetrics && obs.metrics != nil {
		obs.metrics.activeOperations.WithLabelValues(operation).Inc()
		defer obs.metrics.activeOperations.WithLabelValues(operation).Dec()
		if batchSize > 1 {
			obs.metrics.batchSizeHistogram.WithLabelValues(operation).Observe(float64(batchSize))
		}
	}

	// 执行实际操作
	err := fn(ctx)
	duration := time.Since(start)

	// 更新 tracing span
	if obs.enableTracing && span != nil {
		span.SetAttributes(
			attribute.Int64("duration_us", duration.Microseconds()),
		)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			span.RecordError(err)
		} else {
			span.SetStatus(codes.Ok, "")
		}
	}

	// 记录指标
	if obs.enableMetrics && obs.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		obs.metrics.operationCounter.WithLabelValues(operation, status).Inc()
		obs.metrics.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
		obs.metrics.sizeGauge.Set(float64(obs.container.Len()))
	}

	// 记录日志
	if obs.enableLogging && obs.logger != nil {
		if err != nil {
			obs.logger.ErrorContext(ctx, "container operation failed",
				"component", obs.name,
				"operation", operation,
				"batch_size", batchSize,
				"size", obs.container.Len(),
				"error", err.Error(),
			)
		} else {
			obs.logger.InfoContext(ctx, "container operation completed",
				"component", obs.name,
				"operation", operation,
				"batch_size", batchSize,
				"size", obs.container.Len(),
			)
		}
	}

	return err
}

func (obs *ObservableContainer) PushBack(ctx context.Context, rec soa.Record) error {
	return obs.observeOperation(ctx, "push_back", 1, func(ctx context.Context) error {
		return obs.container.PushBack(rec)
	})
}

func (obs *ObservableContainer) EmplaceBack(ctx context.Context, vals ...any) error {
	return obs.observeOperation(ctx, "emplace_back", 1, func(ctx context.Context) error {
		return obs.container.EmplaceBack(vals...)
	})
}

func (obs *ObservableContainer) PopBack(ctx context.Context) error {
	return obs.observeOperation(ctx, "pop_back", 1, func(ctx context.Context) error {
		return obs.container.PopBack()
	})
}

func (obs *ObservableContainer) Insert(ctx context.Context, i int, rec soa.Record) (soa.Iterator, error) {
	var it soa.Iterator
	err := obs.observeOperation(ctx, "insert", 1, func(ctx context.Context) error {
		var opErr error
		it, opErr = obs.container.Insert(i, rec)
		return opErr
	})
	return it, err
}

func (obs *ObservableContainer) InsertN(ctx context.Context, i int, n int, rec soa.Record) (soa.Iterator, error) {
	var it soa.Iterator
	err := obs.observeOperation(ctx, "insert_n", n, func(ctx context.Context) error {
		var opErr error
		it, opErr = obs.container.InsertN(i, n, rec)
		return opErr
	})
	return it, err
}

func (obs *ObservableContainer) InsertFrom(ctx context.Context, i int, src soa.Collection) (soa.Iterator, error) {
	var it soa.Iterator
	err := obs.observeOperation(ctx, "insert_from", src.Len(), func(ctx context.Context) error {
		var opErr error
		it, opErr = obs.container.InsertFrom(i, src)
		return opErr
	})
	return it, err
}

func (obs *ObservableContainer) Erase(ctx context.Context, i int) (soa.Iterator, error) {
	var it soa.Iterator
	err := obs.observeOperation(ctx, "erase", 1, func(ctx context.Context) error {
		var opErr error
		it, opErr = obs.container.Erase(i)
		return opErr
	})
	return it, err
}

func (obs *ObservableContainer) EraseRange(ctx context.Context, lo, hi int) (soa.Iterator, error) {
	var it soa.Iterator
	err := obs.observeOperation(ctx, "erase_range", hi-lo, func(ctx context.Context) error {
		var opErr error
		it, opErr = obs.container.EraseRange(lo, hi)
		return opErr
	})
	return it, err
}

func (obs *ObservableContainer) Resize(ctx context.Context, n int, fill soa.Record) error {
	return obs.observeOperation(ctx, "resize", n, func(ctx context.Context) error {
		return obs.container.Resize(n, fill)
	})
}

func (obs *ObservableContainer) Assign(ctx context.Context, n int, rec soa.Record) error {
	return obs.observeOperation(ctx, "assign", n, func(ctx context.Context) error {
		return obs.container.Assign(n, rec)
	})
}

func (obs *ObservableContainer) AssignFrom(ctx context.Context, src soa.Collection) error {
	return obs.observeOperation(ctx, "assign_from", src.Len(), func(ctx context.Context) error {
		return obs.container.AssignFrom(src)
	})
}

func (obs *ObservableContainer) Clear(ctx context.Context) error {
	return obs.observeOperation(ctx, "clear", obs.container.Len(), func(ctx context.Context) error {
		obs.container.Clear()
		return nil
	})
}
