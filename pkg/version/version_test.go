package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionDefault(t *testing.T) {
	assert.Equal(t, "dev", GetVersion())
}
