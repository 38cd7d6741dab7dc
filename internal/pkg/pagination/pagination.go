package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hamzahushkiwork-byte/sctsinstitute-backend-mobile/internal/pkg/response"
)

const (
	DefaultSize = 10
	MaxSize     = 100
)

// Query holds validated pagination parameters. Admin list endpoints
// accept ?page and ?size, with ?limit kept as an alias for size.
type Query struct {
	Page int
	Size int
}

// Offset is the row offset of the current page.
func (q Query) Offset() int { return (q.Page - 1) * q.Size }

// FromContext reads pagination params from the request, clamping
// out-of-range values instead of rejecting the request.
func FromContext(c *gin.Context) Query {
	q := Query{
		Page: intQuery(c, 1, "page"),
		Size: intQuery(c, DefaultSize, "size", "limit"),
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Size < 1 {
		q.Size = DefaultSize
	}
	if q.Size > MaxSize {
		q.Size = MaxSize
	}
	return q
}

func intQuery(c *gin.Context, def int, names ...string) int {
	for _, name := range names {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return def
}

// Paginate counts the filtered set, fetches the requested page into
// dest, and builds the list metadata for the response envelope.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}
	if err := db.Offset(q.Offset()).Limit(q.Size).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	pages := int((total + int64(q.Size) - 1) / int64(q.Size))
	return response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   pages,
		Size:        q.Size,
		HasNextPage: q.Page < pages,
	}, nil
}
