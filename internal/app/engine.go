package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/wizzomafizzo/hyprsettings/internal/history"
	"github.com/wizzomafizzo/hyprsettings/internal/hyprconf"
	"github.com/wizzomafizzo/hyprsettings/internal/logging"
	"github.com/wizzomafizzo/hyprsettings/internal/schema"
)

// ReadDomain returns the settings found for a domain by name. Unknown domains give
// an empty map.
func (a *App) ReadDomain(ctx context.Context, name string) schema.Map {
	d, err := schema.ParseDomain(name)
	if err != nil {
		logging.Get(ctx).Warn().Err(err).Msg("Cannot read settings")
		return schema.Map{}
	}
	return a.reader.Read(ctx, d)
}

// WriteDomain applies a delta to a domain by name and reports success. Failures are
// logged and recorded, never returned; a failed reload does not count as failure.
func (a *App) WriteDomain(ctx context.Context, name string, delta schema.Map) bool {
	_, err := a.write(ctx, name, delta)
	return err == nil
}

// WriteDomainResult is WriteDomain for callers that want the details.
func (a *App) WriteDomainResult(ctx context.Context, name string, delta schema.Map) (*hyprconf.Result, error) {
	return a.write(ctx, name, delta)
}

func (a *App) write(ctx context.Context, name string, delta schema.Map) (*hyprconf.Result, error) {
	logger := logging.Get(ctx)

	d, err := schema.ParseDomain(name)
	if err != nil {
		logger.Warn().Err(err).Msg("Cannot write settings")
		return nil, err //nolint:wrapcheck // already names the domain
	}

	result, err := a.writer.Write(ctx, d, delta)
	a.record(ctx, d, delta, result, err)
	if err != nil {
		logger.Error().Err(err).Str("domain", d.String()).Msg("Failed to write settings")
		return nil, fmt.Errorf("failed to write %s: %w", d.Label(), err)
	}

	if result.Reload.Attempted() && !result.Reload.OK() {
		logger.Warn().Str("outcome", string(result.Reload.Outcome)).Msg(result.Reload.Message())
	}
	return result, nil
}

// Summary aggregates an Apply call.
type Summary struct {
	Succeeded []schema.Domain
	Failed    []schema.Domain
}

// OK reports whether every group was applied.
func (s Summary) OK() bool {
	return len(s.Failed) == 0
}

// Message is the single line shown to the user after an apply.
func (s Summary) Message() string {
	if s.OK() {
		return "All settings applied successfully!"
	}
	labels := make([]string, 0, len(s.Failed))
	for _, d := range s.Failed {
		labels = append(labels, d.Label())
	}
	return fmt.Sprintf("Applied %d settings groups, failed: %s", len(s.Succeeded), strings.Join(labels, ", "))
}

// Apply writes each domain's changes in a fixed order: input, decoration, general,
// then animations. Domains without changes are left alone.
func (a *App) Apply(ctx context.Context, changes map[schema.Domain]schema.Map) Summary {
	var summary Summary
	for _, d := range schema.Domains() {
		delta, ok := changes[d]
		if !ok || len(delta) == 0 {
			continue
		}
		if a.WriteDomain(ctx, d.String(), delta) {
			summary.Succeeded = append(summary.Succeeded, d)
		} else {
			summary.Failed = append(summary.Failed, d)
		}
	}
	return summary
}

func (a *App) record(ctx context.Context, d schema.Domain, delta schema.Map, result *hyprconf.Result, writeErr error) {
	if a.history == nil {
		return
	}

	keys := delta.Keys()
	entry := history.Entry{
		Domain:  d.String(),
		Keys:    make([]string, 0, len(keys)),
		Success: writeErr == nil,
	}
	for _, k := range keys {
		entry.Keys = append(entry.Keys, k.String())
	}
	if writeErr != nil {
		entry.Error = writeErr.Error()
	}
	if result != nil {
		entry.Changed = result.Changed
		entry.Reload = string(result.Reload.Outcome)
	}

	if _, err := a.history.Record(ctx, entry); err != nil {
		logging.Get(ctx).Warn().Err(err).Msg("Failed to record history")
	}
}
