package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if err := c.Services.validate(); err != nil {
		return fmt.Errorf("services: %w", err)
	}
	return nil
}

func (c *CacheConfig) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity must be > 0 (got %d)", c.Capacity)
	}
	if c.NumShards <= 0 {
		return fmt.Errorf("num_shards must be > 0 (got %d)", c.NumShards)
	}
	if c.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 (got %v)", c.TTL)
	}
	if c.EvictionPercentage < 0 || c.EvictionPercentage > 100 {
		return fmt.Errorf("eviction_percentage must be in [0,100] (got %d)", c.EvictionPercentage)
	}
	if c.LatestLimit <= 0 {
		return fmt.Errorf("latest_limit must be > 0 (got %d)", c.LatestLimit)
	}
	return nil
}

func (c *ServicesConfig) validate() error {
	if err := validateURL("remarks_url", c.RemarksURL); err != nil {
		return err
	}
	if err := validateURL("users_url", c.UsersURL); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", c.Timeout)
	}
	return nil
}

func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL (got %q)", name, raw)
	}
	return nil
}
