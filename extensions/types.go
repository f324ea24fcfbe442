package extensions

// Number covers the numeric kinds the generic helpers operate on
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}
