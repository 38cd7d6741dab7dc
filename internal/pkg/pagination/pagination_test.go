package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryFor(rawQuery string) Query {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return FromContext(c)
}

func TestFromContextDefaults(t *testing.T) {
	q := queryFor("")
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultSize, q.Size)
}

func TestFromContextParsesValues(t *testing.T) {
	q := queryFor("page=3&size=25")
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.Size)
	assert.Equal(t, 50, q.Offset())
}

func TestFromContextAcceptsLimitAlias(t *testing.T) {
	q := queryFor("page=2&limit=20")
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 20, q.Size)

	// size wins when both are present
	q = queryFor("size=5&limit=20")
	assert.Equal(t, 5, q.Size)
}

func TestFromContextClampsBadInput(t *testing.T) {
	q := queryFor("page=-1&size=0")
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultSize, q.Size)

	q = queryFor("page=abc&size=100000")
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, MaxSize, q.Size)
}
