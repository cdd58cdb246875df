package tradelog

// PriceBook is a read-only reference price table keyed by (time-bucket,
// symbol). Buckets are epoch seconds as supplied by the reference data
// source. The book is populated once at load time and only queried during
// a validation run.
type PriceBook struct {
	prices map[priceKey]float64
}

type priceKey struct {
	bucket int64
	symbol string
}

// NewPriceBook returns an empty price book.
func NewPriceBook() *PriceBook {
	return &PriceBook{prices: make(map[priceKey]float64)}
}

// Add records the reference price for the given bucket and symbol,
// overwriting any previous value.
func (b *PriceBook) Add(bucket int64, symbol string, price float64) {
	b.prices[priceKey{bucket: bucket, symbol: symbol}] = price
}

// Price returns the reference price for the given bucket and symbol.
func (b *PriceBook) Price(bucket int64, symbol string) (float64, bool) {
	p, ok := b.prices[priceKey{bucket: bucket, symbol: symbol}]
	return p, ok
}

// Len returns the number of recorded prices.
func (b *PriceBook) Len() int {
	return len(b.prices)
}
