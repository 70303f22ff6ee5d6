package services

import (
	"fmt"

	"github.com/custodia-labs/dbxloader/internal/core/domain"
	"github.com/custodia-labs/dbxloader/internal/logger"
)

// outcome accumulates one Load invocation's result. Every progress entry is
// appended to the trail; warnings additionally produce an ErrorRecord so
// callers can inspect faults without parsing log text. Entries are mirrored
// to the process logger for --verbose runs.
type outcome struct {
	result domain.LoadResult
}

func newOutcome() *outcome {
	return &outcome{}
}

// take returns the accumulated result. The outcome must not be used after.
func (o *outcome) take() *domain.LoadResult {
	return &o.result
}

func (o *outcome) debug(format string, args ...any) {
	logger.Debug(format, args...)
	o.log(domain.SeverityDebug, format, args...)
}

func (o *outcome) info(format string, args ...any) {
	logger.Info(format, args...)
	o.log(domain.SeverityInfo, format, args...)
}

// warnSession records a fatal session fault: one ErrorRecord with neither
// file nor folder scope.
func (o *outcome) warnSession(format string, args ...any) {
	o.warn(domain.ErrorRecord{Message: fmt.Sprintf(format, args...)})
}

// warnFile records a file-scoped fault.
func (o *outcome) warnFile(file, format string, args ...any) {
	o.warn(domain.ErrorRecord{Message: fmt.Sprintf(format, args...), File: file})
}

// warnFolder records an enumeration fault scoped to a folder.
func (o *outcome) warnFolder(folder, format string, args ...any) {
	o.warn(domain.ErrorRecord{Message: fmt.Sprintf(format, args...), Folder: folder})
}

func (o *outcome) warn(rec domain.ErrorRecord) {
	logger.Warn("%s", rec.Message)
	o.result.Errors = append(o.result.Errors, rec)
	o.result.Progress = append(o.result.Progress, domain.LogEntry{
		Message:  rec.Message,
		Severity: domain.SeverityWarning,
	})
}

// invalid records a path rejected by the extension allow-list. Not a fault.
func (o *outcome) invalid(path string) {
	o.result.InvalidFiles = append(o.result.InvalidFiles, path)
	o.debug("skipping %s: extension not in allow-list", path)
}

// add appends one extracted record.
func (o *outcome) add(rec domain.Record) {
	o.result.Records = append(o.result.Records, rec)
}

func (o *outcome) log(severity domain.Severity, format string, args ...any) {
	o.result.Progress = append(o.result.Progress, domain.LogEntry{
		Message:  fmt.Sprintf(format, args...),
		Severity: severity,
	})
}
