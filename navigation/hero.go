package navigation

const (
	heroSlides = 5
	heroSide   = 3
)

// SplitHero divides a listing into the carousel slides (the first five items)
// and the side list (the three after them).
func SplitHero[T any](items []T) (slides, side []T) {
	slides = items[:min(len(items), heroSlides)]
	if len(items) > heroSlides {
		side = items[heroSlides:min(len(items), heroSlides+heroSide)]
	}
	return slides, side
}
