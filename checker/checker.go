package checker

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/host"

	"dashboard/logger"
)

// SystemStatus describes the host serving the dashboard.
type SystemStatus struct {
	Hostname     string `json:"hostname"`
	Platform     string `json:"platform"`
	Uptime       uint64 `json:"uptime_seconds"`
	UptimeString string `json:"uptime_string"`
}

// CheckSystem collects host details through gopsutil. Only the uptime is
// required; hostname and platform are left empty when unavailable.
func CheckSystem(ctx context.Context) (SystemStatus, error) {
	status := SystemStatus{}

	uptime, err := host.UptimeWithContext(ctx)
	if err != nil {
		return status, fmt.Errorf("reading uptime: %w", err)
	}
	status.Uptime = uptime
	status.UptimeString = FormatUptime(uptime)

	if name, err := os.Hostname(); err == nil {
		status.Hostname = name
	} else {
		logger.Debug("CheckSystem: hostname unavailable: %v", err)
	}

	if platform, _, version, err := host.PlatformInformationWithContext(ctx); err == nil {
		status.Platform = strings.TrimSpace(platform + " " + version)
	} else {
		logger.Debug("CheckSystem: platform unavailable: %v", err)
	}

	return status, nil
}

// FormatUptime renders seconds as "3d 4h 5m", dropping leading zero units.
// Anything under a minute renders as "<1m".
func FormatUptime(seconds uint64) string {
	d := time.Duration(seconds) * time.Second
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if days > 0 || hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if len(parts) > 0 || minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if len(parts) == 0 {
		return "<1m"
	}
	return strings.Join(parts, " ")
}
