package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentPlan(t *testing.T) {
	p := CurrentPlan()
	assert.Equal(t, "Pro", p.Name)
	assert.Equal(t, 9.99, p.Price)
}

func TestPaymentMethods_ExactlyOneDefault(t *testing.T) {
	defaults := 0
	for _, m := range PaymentMethods() {
		if m.Default {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestHistory_NewestFirst(t *testing.T) {
	h := History()
	for i := 1; i < len(h); i++ {
		assert.Greater(t, h[i-1].Date, h[i].Date)
	}
}
