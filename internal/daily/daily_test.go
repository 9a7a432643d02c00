package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2026, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-03-01", DateKey(d))
}

func TestBaseIndexDeterministic(t *testing.T) {
	d := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	a := BaseIndex(d, "salt", 17)
	assert.Equal(t, a, BaseIndex(d.Add(time.Hour), "salt", 17), "same day, same index")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 17)
}

func TestBaseIndexVariesAcrossDays(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for i := 0; i < 60; i++ {
		seen[BaseIndex(start.AddDate(0, 0, i), "salt", 17)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestBaseIndexLongSalt(t *testing.T) {
	long := string(make([]byte, 200))
	idx := BaseIndex(time.Now(), long, 5)
	assert.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, 5)
}

func TestBaseIndexEmpty(t *testing.T) {
	assert.Equal(t, 0, BaseIndex(time.Now(), "salt", 0))
	assert.Equal(t, "", Base(time.Now(), "salt", nil))
}

func TestBase(t *testing.T) {
	bases := []string{"abstract", "diligent", "kinetics"}
	assert.Contains(t, bases, Base(time.Now(), "salt", bases))
}
