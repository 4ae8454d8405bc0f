package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewESClientRequiresAddresses(t *testing.T) {
	_, err := NewESClient(nil, "", "")
	assert.Error(t, err)
}

func TestNewESClient(t *testing.T) {
	es, err := NewESClient([]string{"http://127.0.0.1:9200"}, "elastic", "secret")
	require.NoError(t, err)
	assert.NotNil(t, es)
}
