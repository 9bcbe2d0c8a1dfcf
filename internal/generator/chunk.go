package generator

// Chunks splits 1..days into consecutive ranges of size, the last possibly shorter.
func Chunks(days, size int) []Range {
	if days <= 0 || size <= 0 {
		return nil
	}
	n := (days + size - 1) / size
	ranges := make([]Range, 0, n)
	for i := 0; i < n; i++ {
		ranges = append(ranges, Range{
			Start: i*size + 1,
			End:   min((i+1)*size, days),
		})
	}
	return ranges
}
