package usecase

import (
	"log"
	"math"
	"os"
	"strconv"
	"strings"
)

const defaultFeePercent = 10.0

// FeePolicy computes the platform fee withheld from the freelancer payout at
// settlement. The percentage is configuration-driven; the fee leg rounds
// half-up to cents and the payout is the remainder, so payment = fee + payout
// holds exactly for any configured percent.

type FeePolicy struct {
	Percent float64
}

// NewFeePolicyFromEnv reads PLATFORM_FEE_PERCENT (default 10).
func NewFeePolicyFromEnv() FeePolicy {
	raw := strings.TrimSpace(os.Getenv("PLATFORM_FEE_PERCENT"))
	if raw == "" {
		return FeePolicy{Percent: defaultFeePercent}
	}
	pct, err := strconv.ParseFloat(raw, 64)
	if err != nil || pct < 0 || pct >= 100 {
		log.Printf("[settlement][config] invalid PLATFORM_FEE_PERCENT=%q, using default %.1f", raw, defaultFeePercent)
		return FeePolicy{Percent: defaultFeePercent}
	}
	return FeePolicy{Percent: pct}
}

func (p FeePolicy) Fee(amount float64) float64 {
	return roundCents(amount * p.Percent / 100)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
