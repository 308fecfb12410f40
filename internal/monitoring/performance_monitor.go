// Package monitoring keeps frame and ray-cast timings for the frontends.
package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// DefaultMinFPS is the frame rate below which a low_fps alert fires.
	DefaultMinFPS = 30
	// DefaultMaxMemoryMB is the heap size above which a high_memory alert fires.
	DefaultMaxMemoryMB = 500

	smoothing = 0.1 // weight of the newest sample in the running averages
)

// PerformanceMonitor tracks frame and ray-cast metrics. Counters are atomic
// so the draw callback can read them while update writes.
type PerformanceMonitor struct {
	frameCount  atomic.Uint64
	frameTime   atomic.Uint64 // nanoseconds, last frame
	raycastTime atomic.Uint64 // nanoseconds, last frame

	raysCast atomic.Uint64 // last frame
	wallHits atomic.Uint64 // last frame

	mutex          sync.RWMutex
	avgFrameTime   float64 // nanoseconds
	avgRaycastTime float64 // nanoseconds
	peakMemoryMB   uint64
	startTime      time.Time
	minFPS         float64
	maxMemoryMB    float64
}

// NewPerformanceMonitor creates a monitor with the default alert thresholds.
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{
		startTime:   time.Now(),
		minFPS:      DefaultMinFPS,
		maxMemoryMB: DefaultMaxMemoryMB,
	}
}

// SetThresholds changes the alert limits; non-positive values keep the current one.
func (pm *PerformanceMonitor) SetThresholds(minFPS, maxMemoryMB float64) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	if minFPS > 0 {
		pm.minFPS = minFPS
	}
	if maxMemoryMB > 0 {
		pm.maxMemoryMB = maxMemoryMB
	}
}

// FrameTimer measures one frame.
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing.
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{monitor: pm, startTime: time.Now()}
}

// EndFrame records the time since StartFrame.
func (ft *FrameTimer) EndFrame() {
	ft.monitor.RecordFrameTime(time.Since(ft.startTime))
}

// RecordFrameTime stores d as the latest frame duration.
func (pm *PerformanceMonitor) RecordFrameTime(d time.Duration) {
	pm.frameTime.Store(uint64(d.Nanoseconds()))
	pm.frameCount.Add(1)

	pm.mutex.Lock()
	pm.avgFrameTime = runningAverage(pm.avgFrameTime, float64(d.Nanoseconds()))
	pm.mutex.Unlock()
}

// RaycastTimer measures the ray-cast and column pass of one frame.
type RaycastTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartRaycast begins ray-cast timing.
func (pm *PerformanceMonitor) StartRaycast() *RaycastTimer {
	return &RaycastTimer{monitor: pm, startTime: time.Now()}
}

// EndRaycast records the elapsed time together with the frame's ray and hit counts.
func (rt *RaycastTimer) EndRaycast(rays, hits int) {
	rt.monitor.RecordRaycast(time.Since(rt.startTime), rays, hits)
}

// RecordRaycast stores the latest ray-cast duration and counts.
func (pm *PerformanceMonitor) RecordRaycast(d time.Duration, rays, hits int) {
	pm.raycastTime.Store(uint64(d.Nanoseconds()))
	pm.raysCast.Store(uint64(max(rays, 0)))
	pm.wallHits.Store(uint64(max(hits, 0)))

	pm.mutex.Lock()
	pm.avgRaycastTime = runningAverage(pm.avgRaycastTime, float64(d.Nanoseconds()))
	pm.mutex.Unlock()
}

// runningAverage is an exponential moving average seeded by the first sample.
func runningAverage(avg, sample float64) float64 {
	if avg == 0 {
		return sample
	}
	return avg + smoothing*(sample-avg)
}

// FrameMetrics is a snapshot for the HUD.
type FrameMetrics struct {
	FramesPerSecond float64
	FrameTime       time.Duration
	RaycastTime     time.Duration
	AvgFrameTime    time.Duration
	RaysCast        uint64
	WallHits        uint64
	FrameCount      uint64
	MemoryUsageMB   uint64
}

// GetCurrentMetrics returns the latest metrics.
func (pm *PerformanceMonitor) GetCurrentMetrics() FrameMetrics {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	memoryMB := memStats.Alloc / 1024 / 1024

	pm.mutex.Lock()
	if memoryMB > pm.peakMemoryMB {
		pm.peakMemoryMB = memoryMB
	}
	avg := pm.avgFrameTime
	pm.mutex.Unlock()

	frameTime := pm.frameTime.Load()
	return FrameMetrics{
		FramesPerSecond: fps(frameTime),
		FrameTime:       time.Duration(frameTime),
		RaycastTime:     time.Duration(pm.raycastTime.Load()),
		AvgFrameTime:    time.Duration(avg),
		RaysCast:        pm.raysCast.Load(),
		WallHits:        pm.wallHits.Load(),
		FrameCount:      pm.frameCount.Load(),
		MemoryUsageMB:   memoryMB,
	}
}

func fps(frameNanos uint64) float64 {
	if frameNanos == 0 {
		return 0
	}
	return float64(time.Second) / float64(frameNanos)
}

// GetDetailedStats returns every tracked value keyed by name, for logging.
func (pm *PerformanceMonitor) GetDetailedStats() map[string]interface{} {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	pm.mutex.RLock()
	defer pm.mutex.RUnlock()

	return map[string]interface{}{
		"uptime_seconds":      time.Since(pm.startTime).Seconds(),
		"frame_count":         pm.frameCount.Load(),
		"avg_frame_time_ms":   pm.avgFrameTime / 1e6,
		"avg_raycast_time_ms": pm.avgRaycastTime / 1e6,
		"current_fps":         fps(pm.frameTime.Load()),
		"rays_cast":           pm.raysCast.Load(),
		"wall_hits":           pm.wallHits.Load(),
		"memory_alloc_mb":     memStats.Alloc / 1024 / 1024,
		"memory_peak_mb":      pm.peakMemoryMB,
		"gc_cycles":           memStats.NumGC,
		"goroutines":          runtime.NumGoroutine(),
	}
}

// PerformanceAlert represents a performance warning.
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckPerformanceAlerts reports frame rate and memory problems.
func (pm *PerformanceMonitor) CheckPerformanceAlerts() []PerformanceAlert {
	var alerts []PerformanceAlert
	now := time.Now()

	pm.mutex.RLock()
	minFPS, maxMemoryMB := pm.minFPS, pm.maxMemoryMB
	pm.mutex.RUnlock()

	if frameTime := pm.frameTime.Load(); frameTime > 0 {
		if f := fps(frameTime); f < minFPS {
			alerts = append(alerts, PerformanceAlert{
				Type:      "low_fps",
				Message:   "frame rate below threshold",
				Value:     f,
				Threshold: minFPS,
				Timestamp: now,
			})
		}
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	if memoryMB := float64(memStats.Alloc) / 1024 / 1024; memoryMB > maxMemoryMB {
		alerts = append(alerts, PerformanceAlert{
			Type:      "high_memory",
			Message:   "heap above threshold",
			Value:     memoryMB,
			Threshold: maxMemoryMB,
			Timestamp: now,
		})
	}
	return alerts
}
