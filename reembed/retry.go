// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package reembed

import (
	"context"
	"log/slog"
	"time"
)

// RetryWithBackoff runs operation until it succeeds, the context ends, or
// cfg.MaxRetries attempts have failed. The wait between attempts starts at
// cfg.RetryDelay and doubles after each failure. A nil cfg uses
// DefaultConfig; the error of the last attempt is returned when every
// attempt fails.
func RetryWithBackoff(ctx context.Context, cfg *Config, operation func() error) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.MaxRetries <= 0 {
		return ErrInvalidMaxAttempts
	}

	delay := cfg.RetryDelay
	var lastErr error
	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = operation()
		if lastErr == nil {
			if attempt > 1 {
				slog.Debug("operation succeeded after retry", "attempt", attempt)
			}
			return nil
		}
		if attempt == cfg.MaxRetries {
			break
		}

		slog.Debug("operation failed, retrying",
			"attempt", attempt, "max", cfg.MaxRetries, "err", lastErr)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}

	return lastErr
}
