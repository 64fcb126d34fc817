package aws

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

// maxIPEchoBody bounds how much of the echo response is read.
const maxIPEchoBody = 256

// GetPublicIP returns the caller's public IP address as reported by the IP
// echo endpoint. The body is trimmed and must parse as an IP address.
func (c *RealClient) GetPublicIP(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ipEchoURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build ip echo request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to query %s: %w", c.ipEchoURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("ip echo %s returned status %d", c.ipEchoURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxIPEchoBody))
	if err != nil {
		return "", fmt.Errorf("failed to read ip echo response: %w", err)
	}

	raw := strings.TrimSpace(string(body))
	ip := net.ParseIP(raw)
	if ip == nil {
		return "", fmt.Errorf("ip echo %s returned %q, which is not an IP address", c.ipEchoURL, raw)
	}
	return ip.String(), nil
}
