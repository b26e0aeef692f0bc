package awardsearch

import "fmt"

const awardHackerBase = "https://www.awardhacker.com"

// AwardHacker links to the mileage-gap calculator. Its parameters live in the
// URL fragment and are written verbatim; resolved codes and cabin letters are
// already URL-safe.
func (b *Builder) AwardHacker(p SearchParams) string {
	from, to := b.endpoints(p)
	o := 0
	if p.IsRoundTrip() {
		o = 1
	}
	return fmt.Sprintf("%s/#f=%s&t=%s&o=%d&c=%s&s=%d&p=1&a=mr",
		awardHackerBase, from, to, o, p.Cabin.code(), p.Stops)
}
