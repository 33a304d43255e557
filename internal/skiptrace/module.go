// Package skiptrace provides the composition root for contact skip tracing.
package skiptrace

import (
	"skiptrace/internal/skiptrace/client"
	"skiptrace/internal/skiptrace/service"
	"skiptrace/platform/config"
	"skiptrace/platform/logger"
)

// Module wires the SkipEngine client into the lookup service.
type Module struct {
	service *service.Service
	enabled bool
}

// NewModule creates the skip trace module.
// The module is disabled when no API key is configured.
func NewModule(cfg config.SkipTraceConfig, log *logger.Logger) *Module {
	if !cfg.IsSkipTraceEnabled() {
		log.Info("skip trace module disabled: SKIPENGINE_API_KEY not configured")
		return &Module{enabled: false}
	}

	apiClient := client.New(cfg, log)
	svc := service.New(apiClient, log)

	log.Info("skip trace module initialized", "endpoint", apiClient.Endpoint(), "testKey", cfg.UseSkipEngineTestKey())

	return &Module{
		service: svc,
		enabled: true,
	}
}

// Service returns the lookup service, or nil if the module is disabled.
func (m *Module) Service() *service.Service {
	if m == nil || !m.enabled {
		return nil
	}
	return m.service
}

// IsEnabled returns true if the module is configured.
func (m *Module) IsEnabled() bool {
	return m != nil && m.enabled
}
