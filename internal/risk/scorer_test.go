package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolfi/internal/domain/entity"
)

// clean returns a record with no risk indicators set.
func clean() *entity.TokenSecurity {
	return &entity.TokenSecurity{
		Address:      "0xabc",
		Chain:        "eth",
		IsOpenSource: true,
	}
}

func TestCleanTokenIsSafe(t *testing.T) {
	score, level, factors := Score(clean())
	assert.Equal(t, 0, score)
	assert.Equal(t, entity.RiskSafe, level)
	assert.Empty(t, factors)
}

func TestHoneypotIsCritical(t *testing.T) {
	sec := clean()
	sec.IsHoneypot = true

	score, level, factors := Score(sec)
	assert.Equal(t, 100, score)
	assert.Equal(t, entity.RiskCritical, level)
	require.Len(t, factors, 1)
	assert.Contains(t, factors[0], "Honeypot")
}

func TestBuyTaxOnly(t *testing.T) {
	sec := clean()
	sec.BuyTax = 0.15

	score, level, factors := Score(sec)
	assert.Equal(t, 15, score)
	assert.Equal(t, entity.RiskLow, level)
	require.Len(t, factors, 1)
	assert.Equal(t, "Buy tax: 15.0%", factors[0])
}

func TestSellTaxPlusMintable(t *testing.T) {
	sec := clean()
	sec.SellTax = 0.20
	sec.IsMintable = true

	score, level, _ := Score(sec)
	assert.Equal(t, 40, score)
	assert.Equal(t, entity.RiskMedium, level)
}

func TestTaxPenaltyIsCapped(t *testing.T) {
	sec := clean()
	sec.BuyTax = 0.95 // would be 95 points uncapped

	score, _, _ := Score(sec)
	assert.Equal(t, 30, score)
}

func TestScoreIsClamped(t *testing.T) {
	sec := clean()
	sec.IsHoneypot = true
	sec.OwnerChangeBalance = true
	sec.CanTakeBackOwnership = true

	score, level, _ := Score(sec)
	assert.Equal(t, 100, score)
	assert.Equal(t, entity.RiskCritical, level)
}

func TestFactorOrderFollowsTheTable(t *testing.T) {
	sec := clean()
	sec.IsProxy = true
	sec.IsOpenSource = false
	sec.HiddenOwner = true
	sec.BuyTax = 0.2

	_, _, factors := Score(sec)
	require.Len(t, factors, 4)
	assert.Contains(t, factors[0], "Buy tax")
	assert.Contains(t, factors[1], "Hidden owner")
	assert.Contains(t, factors[2], "not open source")
	assert.Contains(t, factors[3], "Proxy")
}

func TestApplySetsDerivedFields(t *testing.T) {
	sec := clean()
	sec.TransferPausable = true
	Apply(sec)

	assert.Equal(t, 15, sec.RiskScore)
	assert.Equal(t, entity.RiskLow, sec.RiskLevel)
	assert.Len(t, sec.RiskFactors, 1)
}

func TestLevelThresholds(t *testing.T) {
	cases := []struct {
		score int
		level entity.RiskLevel
	}{
		{0, entity.RiskSafe},
		{1, entity.RiskLow},
		{24, entity.RiskLow},
		{25, entity.RiskMedium},
		{49, entity.RiskMedium},
		{50, entity.RiskHigh},
		{79, entity.RiskHigh},
		{80, entity.RiskCritical},
		{100, entity.RiskCritical},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, entity.RiskLevelForScore(tc.score), "score %d", tc.score)
	}
}
