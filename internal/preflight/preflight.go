// Package preflight validates the local docker setup before the wrapper
// starts doing real work.
package preflight

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/joshrotenberg/docker-wrapper-sub000/docker"
)

// Check verifies that the client's binary resolves on PATH and that the
// daemon answers a version query. Errors include the failing step so the
// user knows what to fix.
func Check(ctx context.Context, client *docker.Client) error {
	bin := client.Binary()
	if _, err := exec.LookPath(bin); err != nil {
		return fmt.Errorf("preflight: %q not found on PATH: %w", bin, err)
	}

	out, err := client.Version().WithFormat("json").Run(ctx)
	if err != nil {
		return fmt.Errorf("preflight: daemon not reachable: %w", err)
	}

	if out.Version != nil && out.Version.Server.Version == "" {
		return fmt.Errorf("preflight: %s responded but reported no server version", bin)
	}

	return nil
}

// Describe returns a one-line summary of the docker setup, for display
// after a successful Check.
func Describe(ctx context.Context, client *docker.Client) string {
	out, err := client.Version().WithFormat("json").Run(ctx)
	if err != nil || out.Version == nil {
		return client.Binary()
	}

	var parts []string
	parts = append(parts, "client "+out.Version.Client.Version)
	if out.Version.Server.Version != "" {
		parts = append(parts, "server "+out.Version.Server.Version)
	}
	return fmt.Sprintf("%s (%s)", client.Binary(), strings.Join(parts, ", "))
}
