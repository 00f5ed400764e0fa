// Package risk derives a 0-100 risk score, a categorical level, and a list of
// human-readable risk factors from a token's security profile.
package risk

import (
	"fmt"
	"math"

	"toolfi/internal/domain/entity"
)

// Score evaluates the fixed scoring table against sec. The rules are additive
// and independent; the factor list preserves the table's order. The returned
// score is clamped to [0, 100].
//
// The weights and thresholds are a fixed policy. Changing any of them changes
// the published scores for every token, so treat edits as a breaking change.
func Score(sec *entity.TokenSecurity) (int, entity.RiskLevel, []string) {
	score := 0
	var factors []string

	if sec.IsHoneypot {
		score += 100
		factors = append(factors, "Honeypot contract - cannot sell!")
	}
	if sec.BuyTax > 0.1 {
		score += taxPenalty(sec.BuyTax)
		factors = append(factors, fmt.Sprintf("Buy tax: %.1f%%", sec.BuyTax*100))
	}
	if sec.SellTax > 0.1 {
		score += taxPenalty(sec.SellTax)
		factors = append(factors, fmt.Sprintf("Sell tax: %.1f%%", sec.SellTax*100))
	}
	if sec.IsMintable {
		score += 20
		factors = append(factors, "Supply is mintable")
	}
	if sec.CanTakeBackOwnership {
		score += 25
		factors = append(factors, "Ownership can be reclaimed")
	}
	if sec.OwnerChangeBalance {
		score += 30
		factors = append(factors, "Owner can modify balances")
	}
	if sec.HiddenOwner {
		score += 15
		factors = append(factors, "Hidden owner")
	}
	if sec.IsBlacklisted {
		score += 10
		factors = append(factors, "Blacklist capability")
	}
	if sec.TransferPausable {
		score += 15
		factors = append(factors, "Transfers can be paused")
	}
	if !sec.IsOpenSource {
		score += 20
		factors = append(factors, "Contract is not open source")
	}
	if sec.IsProxy {
		score += 10
		factors = append(factors, "Proxy contract")
	}

	if score > 100 {
		score = 100
	}
	return score, entity.RiskLevelForScore(score), factors
}

// Apply computes the derived risk fields and writes them onto sec.
// Call it exactly once, right after the record is built.
func Apply(sec *entity.TokenSecurity) {
	sec.RiskScore, sec.RiskLevel, sec.RiskFactors = Score(sec)
}

// taxPenalty converts a fractional tax rate to its score contribution,
// capped at 30.
func taxPenalty(tax float64) int {
	points := int(math.Round(tax * 100))
	if points > 30 {
		return 30
	}
	return points
}
