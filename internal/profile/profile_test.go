package profile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "airport.xlsx")
	require.NoError(t, os.WriteFile(dataFile, []byte("stub"), 0o600))

	p := &Profile{Mode: "bogus", DataFile: dataFile}
	require.NoError(t, p.Validate())

	assert.Equal(t, "demo", p.Mode, "unknown mode falls back to demo")
	assert.Equal(t, time.Hour, p.SessionTimeout)
	assert.Equal(t, 20, p.RateLimitBurst)
	assert.True(t, p.IsDev())
}

func TestValidateMissingDataFile(t *testing.T) {
	p := &Profile{Mode: "dev"}
	assert.Error(t, p.Validate())

	p = &Profile{Mode: "dev", DataFile: filepath.Join(t.TempDir(), "absent.xlsx")}
	assert.Error(t, p.Validate())
}
