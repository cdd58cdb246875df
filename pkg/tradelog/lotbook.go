package tradelog

// LotBook is a read-only contract lot size table keyed by the instrument
// root symbol (the symbol with its expiry and strike suffix stripped). Like
// the price book it is populated once at load time and only queried during
// a validation run.
type LotBook struct {
	sizes map[string]float64
}

// NewLotBook returns an empty lot book.
func NewLotBook() *LotBook {
	return &LotBook{sizes: make(map[string]float64)}
}

// Add records the lot size for the given root symbol, overwriting any
// previous value.
func (b *LotBook) Add(symbol string, size float64) {
	b.sizes[symbol] = size
}

// Size returns the lot size for the given root symbol.
func (b *LotBook) Size(symbol string) (float64, bool) {
	s, ok := b.sizes[symbol]
	return s, ok
}

// Len returns the number of recorded lot sizes.
func (b *LotBook) Len() int {
	return len(b.sizes)
}
