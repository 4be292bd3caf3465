// Package profile holds the configuration to start the main server.
package profile

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ShutdownTimeout bounds graceful HTTP shutdown.
const ShutdownTimeout = 10 * time.Second

// Profile is the configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev" or "demo"
	Mode string
	// Addr is the binding address for the server
	Addr string
	// Port is the binding port for the server
	Port int
	// DataFile is the xlsx workbook holding the airport reference tables
	DataFile string
	// CountryDirectoryURL is the endpoint listing valid country names
	CountryDirectoryURL string
	// SessionTimeout is how long an idle conversation survives
	SessionTimeout time.Duration
	// RateLimitRPS caps requests per second per client; 0 disables limiting
	RateLimitRPS float64
	// RateLimitBurst is the burst size for the rate limiter
	RateLimitBurst int
	// Version is the current version of the server
	Version string
}

// IsDev reports whether the profile runs in a non-production mode.
func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// Validate normalizes the profile and checks the data file is reachable.
func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}
	if p.SessionTimeout <= 0 {
		p.SessionTimeout = time.Hour
	}
	if p.RateLimitBurst <= 0 {
		p.RateLimitBurst = 20
	}

	if p.DataFile == "" {
		return errors.New("data file path is required")
	}
	if !filepath.IsAbs(p.DataFile) {
		abs, err := filepath.Abs(p.DataFile)
		if err != nil {
			return errors.Wrapf(err, "unable to resolve data file %s", p.DataFile)
		}
		p.DataFile = abs
	}
	p.DataFile = strings.TrimRight(p.DataFile, "\\/")
	if _, err := os.Stat(p.DataFile); err != nil {
		return errors.Wrapf(err, "unable to access data file %s", p.DataFile)
	}

	return nil
}
