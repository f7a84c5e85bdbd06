package matching

// Bucket is a coarse departure window used by the search form.
type Bucket string

const (
	Madrugada Bucket = "madrugada" // 00:00-05:59
	Manana    Bucket = "manana"    // 06:00-11:59
	Tarde     Bucket = "tarde"     // 12:00-17:59
	Noche     Bucket = "noche"     // 18:00-23:59
)

var bucketStart = map[Bucket]int{
	Madrugada: 0,
	Manana:    6,
	Tarde:     12,
	Noche:     18,
}

// Valid reports whether b names a known window.
func (b Bucket) Valid() bool {
	_, ok := bucketStart[b]
	return ok
}

// Contains reports whether a wall-clock hour falls in the window. Unknown
// buckets contain nothing.
func (b Bucket) Contains(hour int) bool {
	start, ok := bucketStart[b]
	if !ok {
		return false
	}
	return hour >= start && hour < start+6
}

// BucketOf returns the window an hour belongs to.
func BucketOf(hour int) Bucket {
	switch {
	case hour < 6:
		return Madrugada
	case hour < 12:
		return Manana
	case hour < 18:
		return Tarde
	default:
		return Noche
	}
}
