package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/PeakMNA/carmen-sub008/pkg/domain/entities"
)

// Ineligibility reasons attached to vendors excluded from ranking
const (
	ReasonItemLocked = "item locked to preferred vendor"
	ReasonMOQNotMet  = "MOQ not satisfied at requested quantity"
)

// ScoringWeights configures the weighted multi-criteria score.
// Weights need not sum to 1 but must both be non-negative.
type ScoringWeights struct {
	Preferred decimal.Decimal
	Price     decimal.Decimal
}

// DefaultScoringWeights returns the standard weighting of 0.3 for the
// preferred-vendor bonus and 0.7 for the normalized price score
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Preferred: decimal.NewFromFloat(0.3),
		Price:     decimal.NewFromFloat(0.7),
	}
}

// Validate rejects negative weights
func (w ScoringWeights) Validate() error {
	if w.Preferred.IsNegative() {
		return &entities.InvalidWeightError{Name: "preferred", Value: w.Preferred.String()}
	}
	if w.Price.IsNegative() {
		return &entities.InvalidWeightError{Name: "price", Value: w.Price.String()}
	}
	return nil
}

// RankResult is the scorer's output for one product/quantity: the full
// vendor set with eligible vendors ranked first, the recommendation, and
// MOQ alerts for vendors failing the requested quantity
type RankResult struct {
	// Vendors holds every option: eligible vendors in rank order, followed
	// by ineligible vendors with their exclusion reason
	Vendors []entities.RankedVendor
	// RecommendedVendor is the top ranked vendor, empty when no vendor is
	// eligible at the requested quantity
	RecommendedVendor entities.VendorID
	Alerts            []entities.MOQAlert
	// AllFailMOQ is set when options exist but none satisfies its MOQ
	AllFailMOQ bool
}

// Scorer ranks normalized vendor options using a weighted multi-criteria
// scoring function. Stateless apart from its configured weights.
//
// Scoring tiers, highest precedence first:
//  1. Preferred-item lock: a vendor flagged preferred-item is the sole
//     recommendation regardless of price.
//  2. Weighted score over eligible options:
//     score = w_preferred * isPreferred + w_price * (cheapest / price).
//  3. Tie-break chain: preferred-vendor flag, lower base-unit price, then
//     lexicographic vendor ID. Ranking is always a total order.
type Scorer struct {
	weights ScoringWeights
}

// NewScorer creates a scorer with the given weights
func NewScorer(weights ScoringWeights) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{weights: weights}, nil
}

// NewDefaultScorer creates a scorer with DefaultScoringWeights
func NewDefaultScorer() *Scorer {
	return &Scorer{weights: DefaultScoringWeights()}
}

// Weights returns the configured scoring weights
func (s *Scorer) Weights() ScoringWeights {
	return s.weights
}

// Rank orders a set of normalized vendor options for one product and
// requested base quantity. Vendors failing MOQ are excluded from ranking but
// retained in the output with an MOQAlert; if every vendor fails MOQ the
// result carries an empty recommendation rather than an error.
func (s *Scorer) Rank(
	options []entities.NormalizedVendorOption,
	requestedQtyBase decimal.Decimal,
) (*RankResult, error) {
	result := &RankResult{}
	if len(options) == 0 {
		return result, nil
	}

	if err := checkSingleCurrency(options); err != nil {
		return nil, err
	}

	result.Alerts = buildMOQAlerts(options, requestedQtyBase)

	// Tier 1: preferred-item lock
	if locked := lockedOptions(options); len(locked) > 0 {
		winner := locked[0]
		breakdown := s.breakdown(winner, winner.PricePerBaseUnit)
		result.RecommendedVendor = winner.Entry.VendorID
		result.Vendors = append(result.Vendors, entities.RankedVendor{
			Option:    winner,
			Score:     breakdown.Total,
			Breakdown: breakdown,
			Eligible:  true,
		})
		for _, opt := range sortedByIdentity(exclude(options, winner.Entry.VendorID)) {
			result.Vendors = append(result.Vendors, entities.RankedVendor{
				Option:           opt,
				Eligible:         false,
				IneligibleReason: ReasonItemLocked,
			})
		}
		return result, nil
	}

	// Tiers 2-3: weighted score over MOQ-eligible options
	var eligible, ineligible []entities.NormalizedVendorOption
	for _, opt := range options {
		if opt.MeetsMOQ {
			eligible = append(eligible, opt)
		} else {
			ineligible = append(ineligible, opt)
		}
	}

	if len(eligible) == 0 {
		result.AllFailMOQ = true
		for _, opt := range sortedByIdentity(ineligible) {
			result.Vendors = append(result.Vendors, entities.RankedVendor{
				Option:           opt,
				Eligible:         false,
				IneligibleReason: ReasonMOQNotMet,
			})
		}
		return result, nil
	}

	cheapest := cheapestPrice(eligible)
	ranked := make([]entities.RankedVendor, 0, len(eligible))
	for _, opt := range eligible {
		breakdown := s.breakdown(opt, cheapest)
		ranked = append(ranked, entities.RankedVendor{
			Option:    opt,
			Score:     breakdown.Total,
			Breakdown: breakdown,
			Eligible:  true,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return rankLess(ranked[i], ranked[j])
	})

	result.Vendors = ranked
	result.RecommendedVendor = ranked[0].VendorID()
	for _, opt := range sortedByIdentity(ineligible) {
		result.Vendors = append(result.Vendors, entities.RankedVendor{
			Option:           opt,
			Eligible:         false,
			IneligibleReason: ReasonMOQNotMet,
		})
	}
	return result, nil
}

// breakdown computes the weighted score decomposition for one option given
// the cheapest eligible base-unit price
func (s *Scorer) breakdown(
	opt entities.NormalizedVendorOption,
	cheapest entities.Money,
) entities.VendorScoreBreakdown {
	priceScore := cheapest.Amount.Div(opt.PricePerBaseUnit.Amount)
	b := entities.VendorScoreBreakdown{
		PriceScore:     priceScore,
		PriceComponent: s.weights.Price.Mul(priceScore),
	}
	if opt.Entry.PreferredVendor {
		b.PreferredComponent = s.weights.Preferred
	}
	b.Total = b.PriceComponent.Add(b.PreferredComponent)
	return b
}

// rankLess is the total-order comparator for eligible vendors: higher score
// first, then preferred-vendor flag, then lower base-unit price, then
// lexicographic vendor ID as the final deterministic tiebreak
func rankLess(a, b entities.RankedVendor) bool {
	if cmp := a.Score.Cmp(b.Score); cmp != 0 {
		return cmp > 0
	}
	if a.Option.Entry.PreferredVendor != b.Option.Entry.PreferredVendor {
		return a.Option.Entry.PreferredVendor
	}
	if cmp := a.Option.PricePerBaseUnit.Amount.Cmp(b.Option.PricePerBaseUnit.Amount); cmp != 0 {
		return cmp < 0
	}
	return a.VendorID() < b.VendorID()
}

// lockedOptions returns options flagged preferred-item, best first. More
// than one locked option is a data anomaly; the standard tie-break chain
// resolves it deterministically.
func lockedOptions(options []entities.NormalizedVendorOption) []entities.NormalizedVendorOption {
	var locked []entities.NormalizedVendorOption
	for _, opt := range options {
		if opt.Entry.PreferredItem {
			locked = append(locked, opt)
		}
	}
	sort.Slice(locked, func(i, j int) bool {
		a, b := locked[i], locked[j]
		if a.Entry.PreferredVendor != b.Entry.PreferredVendor {
			return a.Entry.PreferredVendor
		}
		if cmp := a.PricePerBaseUnit.Amount.Cmp(b.PricePerBaseUnit.Amount); cmp != 0 {
			return cmp < 0
		}
		return a.Entry.VendorID < b.Entry.VendorID
	})
	return locked
}

func buildMOQAlerts(
	options []entities.NormalizedVendorOption,
	requestedQtyBase decimal.Decimal,
) []entities.MOQAlert {
	var alerts []entities.MOQAlert
	for _, opt := range sortedByIdentity(options) {
		if opt.MeetsMOQ {
			continue
		}
		alerts = append(alerts, entities.MOQAlert{
			VendorID:      opt.Entry.VendorID,
			VendorName:    opt.Entry.VendorName,
			QuotedUnit:    opt.Entry.Unit,
			MOQBase:       opt.MOQBase,
			RequestedBase: requestedQtyBase,
			ShortfallBase: opt.MOQBase.Sub(requestedQtyBase),
		})
	}
	return alerts
}

func cheapestPrice(options []entities.NormalizedVendorOption) entities.Money {
	cheapest := options[0].PricePerBaseUnit
	for _, opt := range options[1:] {
		if opt.PricePerBaseUnit.Amount.Cmp(cheapest.Amount) < 0 {
			cheapest = opt.PricePerBaseUnit
		}
	}
	return cheapest
}

func checkSingleCurrency(options []entities.NormalizedVendorOption) error {
	currency := options[0].PricePerBaseUnit.Currency
	for _, opt := range options[1:] {
		if opt.PricePerBaseUnit.Currency != currency {
			return &entities.CurrencyMismatchError{
				Left:  currency,
				Right: opt.PricePerBaseUnit.Currency,
			}
		}
	}
	return nil
}

func exclude(
	options []entities.NormalizedVendorOption,
	vendorID entities.VendorID,
) []entities.NormalizedVendorOption {
	var rest []entities.NormalizedVendorOption
	for _, opt := range options {
		if opt.Entry.VendorID != vendorID {
			rest = append(rest, opt)
		}
	}
	return rest
}

func sortedByIdentity(options []entities.NormalizedVendorOption) []entities.NormalizedVendorOption {
	sorted := make([]entities.NormalizedVendorOption, len(options))
	copy(sorted, options)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Entry.VendorID < sorted[j].Entry.VendorID
	})
	return sorted
}
