package controllers

import (
	"fmt"
	"net/http"
	"sld/internal/services"
	"time"

	json "github.com/goccy/go-json"
)

type HealthController struct {
	resetService services.ResetServiceInterface
	startTime    time.Time
}

type healthResponse struct {
	Status        string    `json:"status"`
	Uptime        string    `json:"uptime"`
	UptimeSeconds float64   `json:"uptime_seconds"`
	NextReset     time.Time `json:"next_reset,omitempty"`
	ResetDue      bool      `json:"reset_due"`
	TaskScheduled bool      `json:"task_scheduled"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
	}

	if !hc.resetService.IsSystemReady(r.Context()) {
		resp.Status = "degraded"
	} else if status, err := hc.resetService.GetResetStatus(r.Context()); err == nil {
		resp.NextReset = status.NextReset
		resp.ResetDue = status.Due
		resp.TaskScheduled = status.TaskScheduled
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	statusCode := http.StatusOK
	if resp.Status != "ok" {
		statusCode = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(resetService services.ResetServiceInterface) *HealthController {
	return &HealthController{
		resetService: resetService,
		startTime:    time.Now(),
	}
}
