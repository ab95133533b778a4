package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runHealth(ctx context.Context) error {
	resp, err := c.health.Health(ctx)
	if err != nil {
		return fmt.Errorf("server is unreachable: %w", err)
	}

	c.io.Printf("Server status: %s (version %s)\n", resp.Status, resp.Version)
	return nil
}
