package analytics

import (
	"context"
	"sort"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/product"
	"printdesk/internal/domain/ledger"
	"printdesk/pkg/logger"
)

const topListSize = 5

// Engine folds sale records into the dashboard report. It holds no state
// between runs; concurrent calls are safe.
type Engine struct {
	log *logger.Logger
}

// NewEngine creates an Engine. Referential-gap warnings are logged through
// the supplied logger in addition to being carried in the report.
func NewEngine(log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Default()
	}
	return &Engine{log: log.WithComponent("analytics")}
}

// Aggregate folds the sale list into totals, per-dimension rollups, and a
// zero-filled daily trend. The fold is commutative over the sale list:
// results do not depend on sale order except for the documented first-seen
// tie-break in rankings. Calling twice with identical inputs yields
// identical output.
func (e *Engine) Aggregate(ctx context.Context, in Input) (*Report, error) {
	start := truncateToDay(in.Start.UTC())
	end := truncateToDay(in.End.UTC())
	if end.Before(start) {
		return nil, apperror.NewInvalidDateRange("end date must not be before start date").
			WithDetail("startDate", start.Format(dateLayout)).
			WithDetail("endDate", end.Format(dateLayout))
	}

	// One bucket per calendar day, inclusive, so the trend has no gaps.
	days := int(end.Sub(start).Hours()/24) + 1
	buckets := make([]TrendBucket, days)
	bucketIdx := make(map[string]int, days)
	for i := 0; i < days; i++ {
		key := start.AddDate(0, 0, i).Format(dateLayout)
		buckets[i] = TrendBucket{
			Date:       key,
			Gross:      types.Zero(),
			Net:        types.Zero(),
			Commission: types.Zero(),
			Tax:        types.Zero(),
		}
		bucketIdx[key] = i
	}

	products := make(map[id.ID]*product.Product, len(in.Products))
	for i := range in.Products {
		products[in.Products[i].ID] = &in.Products[i]
	}
	linksByProduct := make(map[id.ID][]product.FilamentLink)
	for _, l := range in.Links {
		linksByProduct[l.ProductID] = append(linksByProduct[l.ProductID], l)
	}
	filamentNames := make(map[id.ID]string, len(in.Filaments))
	for i := range in.Filaments {
		filamentNames[in.Filaments[i].ID] = in.Filaments[i].Name
	}
	platformNames := make(map[id.ID]string, len(in.Platforms))
	for i := range in.Platforms {
		platformNames[in.Platforms[i].ID] = in.Platforms[i].Name
	}

	// First-seen ordered accumulators keep ranking ties deterministic.
	var productOrder []id.ID
	productAcc := make(map[id.ID]*ProductRollup)
	var platformOrder []id.ID
	platformAcc := make(map[id.ID]*PlatformRollup)
	var filamentOrder []id.ID
	filamentGrams := make(map[id.ID]types.Grams)

	report := &Report{
		Totals: Totals{
			Gross:      types.Zero(),
			Commission: types.Zero(),
			Tax:        types.Zero(),
			Net:        types.Zero(),
		},
	}
	totalUsedGrams := types.Grams(0)

	warn := func(saleID id.ID, dimension string, refID id.ID) {
		report.Warnings = append(report.Warnings, Warning{SaleID: saleID, Dimension: dimension, RefID: refID})
		e.log.WithContext(ctx).Warnw("sale references missing record",
			"sale_id", saleID,
			"dimension", dimension,
			"ref_id", refID,
		)
	}

	for i := range in.Sales {
		sale := &in.Sales[i]

		idx, ok := bucketIdx[sale.SaleDate.UTC().Format(dateLayout)]
		if !ok {
			// Outside the requested range; callers normally pre-filter.
			continue
		}

		entry := ledger.FromSnapshot(sale.Snapshot())

		b := &buckets[idx]
		b.Quantity += sale.Quantity
		b.Gross = b.Gross.Add(entry.Gross)
		b.Net = b.Net.Add(entry.Net)
		b.Commission = b.Commission.Add(entry.Commission)
		b.Tax = b.Tax.Add(entry.Tax)

		report.Totals.QuantitySold += sale.Quantity
		report.Totals.Gross = report.Totals.Gross.Add(entry.Gross)
		report.Totals.Commission = report.Totals.Commission.Add(entry.Commission)
		report.Totals.Tax = report.Totals.Tax.Add(entry.Tax)
		report.Totals.Net = report.Totals.Net.Add(entry.Net)

		// Product dimension (plus the filament consumption that hangs off
		// the product's bill of materials).
		if prod, found := products[sale.ProductID]; found {
			acc, seen := productAcc[sale.ProductID]
			if !seen {
				acc = &ProductRollup{
					ID:      prod.ID,
					Name:    prod.Name,
					Revenue: types.Zero(),
					Trend:   zeroTrend(days),
				}
				productAcc[sale.ProductID] = acc
				productOrder = append(productOrder, sale.ProductID)
			}
			acc.Quantity += sale.Quantity
			acc.Revenue = acc.Revenue.Add(entry.Gross)
			acc.Trend[idx] = acc.Trend[idx].Add(entry.Gross)

			for _, link := range linksByProduct[sale.ProductID] {
				if _, known := filamentNames[link.FilamentID]; !known {
					warn(sale.ID, "filament", link.FilamentID)
					continue
				}
				grams := link.Grams.MulInt(sale.Quantity)
				totalUsedGrams = totalUsedGrams.Add(grams)
				if _, seen := filamentGrams[link.FilamentID]; !seen {
					filamentOrder = append(filamentOrder, link.FilamentID)
				}
				filamentGrams[link.FilamentID] = filamentGrams[link.FilamentID].Add(grams)
			}
		} else {
			warn(sale.ID, "product", sale.ProductID)
		}

		// Platform dimension.
		if name, found := platformNames[sale.PlatformID]; found {
			acc, seen := platformAcc[sale.PlatformID]
			if !seen {
				acc = &PlatformRollup{
					ID:         sale.PlatformID,
					Name:       name,
					Revenue:    types.Zero(),
					Commission: types.Zero(),
					Trend:      zeroTrend(days),
				}
				platformAcc[sale.PlatformID] = acc
				platformOrder = append(platformOrder, sale.PlatformID)
			}
			acc.Revenue = acc.Revenue.Add(entry.Gross)
			acc.Commission = acc.Commission.Add(entry.Commission)
			acc.Trend[idx] = acc.Trend[idx].Add(entry.Gross)
		} else {
			warn(sale.ID, "platform", sale.PlatformID)
		}
	}

	// Rankings. Stable sorts keep first-seen order on ties.
	topProducts := make([]ProductRollup, 0, len(productOrder))
	for _, pid := range productOrder {
		topProducts = append(topProducts, *productAcc[pid])
	}
	sort.SliceStable(topProducts, func(i, j int) bool {
		return topProducts[i].Quantity > topProducts[j].Quantity
	})
	if len(topProducts) > topListSize {
		topProducts = topProducts[:topListSize]
	}
	report.TopProducts = topProducts

	ranking := make([]PlatformRollup, 0, len(platformOrder))
	for _, pid := range platformOrder {
		ranking = append(ranking, *platformAcc[pid])
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Revenue.GreaterThan(ranking[j].Revenue)
	})
	report.Platforms = ranking

	mostUsed := make([]FilamentUsage, 0, len(filamentOrder))
	for _, fid := range filamentOrder {
		mostUsed = append(mostUsed, FilamentUsage{
			ID:        fid,
			Name:      filamentNames[fid],
			GramsUsed: filamentGrams[fid],
		})
	}
	sort.SliceStable(mostUsed, func(i, j int) bool {
		return mostUsed[i].GramsUsed > mostUsed[j].GramsUsed
	})
	if len(mostUsed) > topListSize {
		mostUsed = mostUsed[:topListSize]
	}

	// Low stock reflects current stock levels, not the date range.
	var lowStock []LowStockEntry
	for i := range in.Filaments {
		f := &in.Filaments[i]
		if f.IsLowStock() {
			lowStock = append(lowStock, LowStockEntry{
				ID:           f.ID,
				Name:         f.Name,
				CurrentStock: f.CurrentStock,
			})
		}
	}

	report.Filaments = FilamentsSection{
		TotalUsedGrams: totalUsedGrams,
		MostUsed:       mostUsed,
		LowStock:       lowStock,
	}
	report.Trend = buckets

	return report, nil
}

func zeroTrend(days int) []types.Money {
	trend := make([]types.Money, days)
	for i := range trend {
		trend[i] = types.Zero()
	}
	return trend
}
