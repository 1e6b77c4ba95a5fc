package config

import (
	"errors"
	"fmt"
)

var validCollisionPolicies = map[string]struct{}{
	"rename":    {},
	"skip":      {},
	"overwrite": {},
}

var validLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
}

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateCleanup(); err != nil {
		return err
	}
	if err := c.validateWatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOrganize() error {
	if _, ok := validCollisionPolicies[c.Organize.OnCollision]; !ok {
		return fmt.Errorf("organize.on_collision must be one of rename, skip, overwrite (got %q)", c.Organize.OnCollision)
	}
	return nil
}

func (c *Config) validateCleanup() error {
	if c.Cleanup.MaxAgeDays <= 0 {
		return errors.New("cleanup.max_age_days must be a positive number of days")
	}
	return nil
}

func (c *Config) validateWatch() error {
	if c.Watch.PollInterval <= 0 {
		return errors.New("watch.poll_interval must be a positive number of seconds")
	}
	if c.Watch.SettleSeconds < 0 {
		return errors.New("watch.settle_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, ok := validLogFormats[c.Logging.Format]; !ok {
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	if _, ok := validLogLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	if c.Logging.RetentionDays < 0 {
		return errors.New("logging.retention_days must not be negative (0 disables pruning)")
	}
	return nil
}
