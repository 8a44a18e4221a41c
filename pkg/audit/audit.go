package audit

import (
	"encoding/json"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType identifies an auditable action
type EventType string

const (
	EventTalentSearch       EventType = "talent_search"
	EventTalentExport       EventType = "talent_export"
	EventGroupCreated       EventType = "talent_group_created"
	EventGroupDeleted       EventType = "talent_group_deleted"
	EventCVGenerated        EventType = "cv_generated"
	EventDocumentUploaded   EventType = "document_uploaded"
	EventAuthFailed         EventType = "auth_failed"
	EventUnauthorizedAccess EventType = "unauthorized_access"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
)

// Event is a structured audit record. Recruiter-facing actions (searches,
// exports, group changes) are audited so talent-pool access is traceable.
type Event struct {
	Timestamp   time.Time              `json:"timestamp"`
	Service     string                 `json:"service"`
	Environment string                 `json:"env"`
	Level       string                 `json:"level"`
	Event       EventType              `json:"event"`
	UserID      string                 `json:"user_id,omitempty"`
	IP          string                 `json:"ip,omitempty"`
	RequestID   string                 `json:"request_id,omitempty"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

// Logger provides structured audit logging backed by Zap.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var defaultLogger *Logger

// Init initializes the audit logger with Zap
func Init(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"

	// Stdout for container environments
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		// Fallback to a basic logger if config fails
		logger, _ = zap.NewProduction()
	}

	l := &Logger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
	defaultLogger = l
	return l
}

// Default returns the default audit logger instance
func Default() *Logger {
	if defaultLogger == nil {
		return Init("cv-match-backend", envName())
	}
	return defaultLogger
}

// Log writes an audit event
func (l *Logger) Log(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = l.serviceName
	event.Environment = l.environment

	level := zapcore.InfoLevel
	switch event.Event {
	case EventAuthFailed, EventRateLimitTriggered:
		level = zapcore.WarnLevel
	case EventUnauthorizedAccess:
		level = zapcore.ErrorLevel
	}
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
	}
	if event.UserID != "" {
		fields = append(fields, zap.String("user_id", event.UserID))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	l.zapLogger.Log(level, string(event.Event), fields...)
}

// LogTalentSearch records a recruiter search with its active filter summary.
func (l *Logger) LogTalentSearch(userID, requestID string, activeFilters int, results int) {
	l.Log(Event{
		Event:     EventTalentSearch,
		UserID:    userID,
		RequestID: requestID,
		Details:   map[string]interface{}{"active_filters": activeFilters, "results": results},
	})
}

// LogTalentExport records a talent pool export.
func (l *Logger) LogTalentExport(userID, requestID, format string, rows int) {
	l.Log(Event{
		Event:     EventTalentExport,
		UserID:    userID,
		RequestID: requestID,
		Details:   map[string]interface{}{"format": format, "rows": rows},
	})
}

// LogUnauthorized records an access attempt rejected by role checks.
func (l *Logger) LogUnauthorized(userID, requestID, resource string) {
	l.Log(Event{
		Event:     EventUnauthorizedAccess,
		UserID:    userID,
		RequestID: requestID,
		Details:   map[string]interface{}{"resource": resource},
	})
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

func envName() string {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		return env
	}
	return "development"
}
