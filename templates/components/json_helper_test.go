package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, JSON(map[string]int{"a": 1}))
	assert.Equal(t, `"\u003c/script\u003e"`, JSON("</script>"))
	assert.Equal(t, "{}", JSON(func() {}))
}
